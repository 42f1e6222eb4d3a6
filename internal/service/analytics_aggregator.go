package service

import (
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/util"
	"math"
	"sort"
	"time"
)

// Named timeframes for scoping analytics. Unknown names fall back to month
// rather than erroring.
const (
	TimeframeWeek    = "week"
	TimeframeMonth   = "month"
	TimeframeQuarter = "quarter"
)

// ResolveWindow turns a named timeframe or an explicit date pair into a
// concrete [start, end] window. An explicit pair takes precedence over the
// timeframe name when both are supplied.
func ResolveWindow(timeframe string, start, end *time.Time, now time.Time) (time.Time, time.Time, error) {
	if start != nil && end != nil {
		if start.After(*end) {
			return time.Time{}, time.Time{}, util.ErrInvalidDateRange
		}
		return *start, *end, nil
	}

	days := 30
	switch timeframe {
	case TimeframeWeek:
		days = 7
	case TimeframeQuarter:
		days = 90
	case TimeframeMonth:
		days = 30
	}
	return now.AddDate(0, 0, -days), now, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SuccessRate is round(100*solved/total), 0 when total is 0.
func SuccessRate(solved, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(solved) / float64(total) * 100))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// minutesToHours converts summed minutes to hours rounded to one decimal.
func minutesToHours(minutes int) float64 {
	return round1(float64(minutes) / 60)
}

// CurrentStreak counts solved days walking backward from today. The walk
// starts only if a problem was solved today; days without a solved problem
// move the pointer without resetting the count, so gaps are skipped rather
// than breaking the streak. Only the date component is compared.
func CurrentStreak(problems []model.Problem, now time.Time) int {
	solvedDays := make(map[time.Time]bool)
	var earliest time.Time
	for _, p := range problems {
		if p.Outcome != model.OutcomeSolved {
			continue
		}
		day := dateOnly(p.Date)
		solvedDays[day] = true
		if earliest.IsZero() || day.Before(earliest) {
			earliest = day
		}
	}

	today := dateOnly(now)
	if !solvedDays[today] {
		return 0
	}

	streak := 0
	for day := today; !day.Before(earliest); day = day.AddDate(0, 0, -1) {
		if solvedDays[day] {
			streak++
		}
	}
	return streak
}

// DailyActivity reports the last 7 calendar days, oldest first: problems
// solved per day and learning hours logged per day (by the learning item's
// creation timestamp).
func DailyActivityLast7(problems []model.Problem, items []model.LearningItem, now time.Time) []model.DailyActivity {
	today := dateOnly(now)
	out := make([]model.DailyActivity, 0, 7)

	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)

		solved := 0
		for _, p := range problems {
			if p.Outcome == model.OutcomeSolved && sameDay(p.Date, day) {
				solved++
			}
		}

		minutes := 0
		for _, item := range items {
			if sameDay(item.CreatedAt, day) {
				minutes += item.TimeSpent
			}
		}

		out = append(out, model.DailyActivity{
			Date:          day.Format("2006-01-02"),
			SolvedCount:   solved,
			LearningHours: minutesToHours(minutes),
		})
	}
	return out
}

// WeeklyProgress reports the last 4 Sunday-Saturday weeks, oldest first.
// The success rate is computed over the already solved-filtered set, so any
// non-empty week reads 100. That mirrors the original report's behavior and
// is kept as is.
func WeeklyProgressLast4(problems []model.Problem, now time.Time) []model.WeeklyProgress {
	today := dateOnly(now)
	currentSunday := today.AddDate(0, 0, -int(today.Weekday()))

	out := make([]model.WeeklyProgress, 0, 4)
	for i := 3; i >= 0; i-- {
		weekStart := currentSunday.AddDate(0, 0, -7*i)
		weekEnd := weekStart.AddDate(0, 0, 7)

		solved := 0
		for _, p := range problems {
			if p.Outcome != model.OutcomeSolved {
				continue
			}
			if !p.Date.Before(weekStart) && p.Date.Before(weekEnd) {
				solved++
			}
		}

		out = append(out, model.WeeklyProgress{
			WeekStart:   weekStart.Format("2006-01-02"),
			SolvedCount: solved,
			SuccessRate: SuccessRate(solved, solved),
		})
	}
	return out
}

// AnalyzeTopics computes per-topic attempt stats, the strongest/weakest
// rankings and the topic distribution. Strongest is the top 5 by success
// rate; weakest is the bottom 5 reversed, worst first.
func AnalyzeTopics(problems []model.Problem) model.TopicAnalysis {
	type acc struct {
		total   int
		solved  int
		minutes int
	}
	byTopic := make(map[string]*acc)
	for _, p := range problems {
		a := byTopic[p.Topic]
		if a == nil {
			a = &acc{}
			byTopic[p.Topic] = a
		}
		a.total++
		if p.Outcome == model.OutcomeSolved {
			a.solved++
		}
		a.minutes += p.TimeSpent
	}

	topics := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	stats := make([]model.TopicStats, 0, len(topics))
	for _, topic := range topics {
		a := byTopic[topic]
		avgTime := 0
		if a.total > 0 {
			avgTime = int(math.Round(float64(a.minutes) / float64(a.total)))
		}
		stats = append(stats, model.TopicStats{
			Topic:        topic,
			TotalCount:   a.total,
			SolvedCount:  a.solved,
			SuccessRate:  SuccessRate(a.solved, a.total),
			AvgTimeSpent: avgTime,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].SuccessRate > stats[j].SuccessRate
	})

	top := 5
	if len(stats) < top {
		top = len(stats)
	}
	strongest := make([]model.TopicStats, top)
	copy(strongest, stats[:top])

	weakest := make([]model.TopicStats, top)
	copy(weakest, stats[len(stats)-top:])
	for i, j := 0, len(weakest)-1; i < j; i, j = i+1, j-1 {
		weakest[i], weakest[j] = weakest[j], weakest[i]
	}

	distribution := make([]model.TopicShare, 0, len(topics))
	for _, topic := range topics {
		a := byTopic[topic]
		distribution = append(distribution, model.TopicShare{
			Topic:      topic,
			Count:      a.total,
			Percentage: SuccessRate(a.total, len(problems)),
		})
	}

	return model.TopicAnalysis{
		StrongestTopics:   strongest,
		WeakestTopics:     weakest,
		TopicDistribution: distribution,
	}
}

// AnalyzeDifficulty fills the three fixed buckets; unmatched difficulty
// values are ignored rather than failing.
func AnalyzeDifficulty(problems []model.Problem) []model.DifficultyBucket {
	order := []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}

	buckets := make(map[model.Difficulty]*model.DifficultyBucket, len(order))
	for _, d := range order {
		buckets[d] = &model.DifficultyBucket{Difficulty: d}
	}

	for _, p := range problems {
		b, ok := buckets[p.Difficulty]
		if !ok {
			continue
		}
		b.TotalCount++
		if p.Outcome == model.OutcomeSolved {
			b.SolvedCount++
		}
	}

	out := make([]model.DifficultyBucket, 0, len(order))
	for _, d := range order {
		b := buckets[d]
		b.SuccessRate = SuccessRate(b.SolvedCount, b.TotalCount)
		out = append(out, *b)
	}
	return out
}

func AggregateLearning(items []model.LearningItem) model.LearningProgressStats {
	stats := model.LearningProgressStats{}
	minutes := 0
	for _, item := range items {
		switch item.Status {
		case model.LearningCompleted:
			stats.CompletedItems++
		case model.LearningInProgress:
			stats.InProgressItems++
		}
		minutes += item.TimeSpent
	}
	stats.TotalLearningHours = minutesToHours(minutes)
	return stats
}

func AggregateRoadmaps(roadmaps []model.Roadmap) model.RoadmapProgressStats {
	stats := model.RoadmapProgressStats{TotalRoadmaps: len(roadmaps)}
	for _, r := range roadmaps {
		if r.IsCompleted {
			stats.CompletedRoadmaps++
		}
	}
	stats.InProgressRoadmaps = stats.TotalRoadmaps - stats.CompletedRoadmaps
	return stats
}

// BuildReport reduces a user's problems, learning items and roadmaps into
// the full analytics report. Pure and side-effect free; empty inputs yield
// a well-formed all-zero report.
func BuildReport(problems []model.Problem, items []model.LearningItem, roadmaps []model.Roadmap, now time.Time) *model.AnalyticsReport {
	totalMinutesLearning := 0
	for _, item := range items {
		totalMinutesLearning += item.TimeSpent
	}

	solved := 0
	problemMinutes := 0
	topicSet := make(map[string]bool)
	for _, p := range problems {
		if p.Outcome == model.OutcomeSolved {
			solved++
		}
		problemMinutes += p.TimeSpent
		topicSet[p.Topic] = true
	}

	avgTime := 0
	if len(problems) > 0 {
		avgTime = int(math.Round(float64(problemMinutes) / float64(len(problems))))
	}

	roadmapStats := AggregateRoadmaps(roadmaps)

	return &model.AnalyticsReport{
		Overview: model.AnalyticsOverview{
			TotalProblems:      len(problems),
			SolvedProblems:     solved,
			SuccessRate:        SuccessRate(solved, len(problems)),
			TotalLearningHours: minutesToHours(totalMinutesLearning),
			AvgTimePerProblem:  avgTime,
			DistinctTopics:     len(topicSet),
			CurrentStreak:      CurrentStreak(problems, now),
			CompletedRoadmaps:  roadmapStats.CompletedRoadmaps,
		},
		DailyActivity:      DailyActivityLast7(problems, items, now),
		WeeklyProgress:     WeeklyProgressLast4(problems, now),
		TopicAnalysis:      AnalyzeTopics(problems),
		DifficultyAnalysis: AnalyzeDifficulty(problems),
		LearningProgress:   AggregateLearning(items),
		RoadmapProgress:    roadmapStats,
	}
}
