package service

import (
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solvedOn(topic string, day time.Time) model.Problem {
	return model.Problem{
		Topic:   topic,
		Outcome: model.OutcomeSolved,
		Date:    day,
	}
}

func attemptedOn(topic string, day time.Time) model.Problem {
	return model.Problem{
		Topic:   topic,
		Outcome: model.OutcomeAttempted,
		Date:    day,
	}
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, 0, SuccessRate(0, 0))
	assert.Equal(t, 0, SuccessRate(5, 0))
	assert.Equal(t, 33, SuccessRate(1, 3))
	assert.Equal(t, 67, SuccessRate(2, 3))
	assert.Equal(t, 50, SuccessRate(1, 2))
	assert.Equal(t, 100, SuccessRate(3, 3))
}

func TestResolveWindowNamedTimeframes(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		timeframe string
		days      int
	}{
		{TimeframeWeek, 7},
		{TimeframeMonth, 30},
		{TimeframeQuarter, 90},
		{"bogus", 30}, // unknown names fall back to month
		{"", 30},
	}

	for _, tt := range tests {
		start, end, err := ResolveWindow(tt.timeframe, nil, nil, now)
		require.NoError(t, err, "timeframe %q", tt.timeframe)
		assert.Equal(t, now, end)
		assert.Equal(t, now.AddDate(0, 0, -tt.days), start, "timeframe %q", tt.timeframe)
	}
}

func TestResolveWindowExplicitPairWins(t *testing.T) {
	now := date(2024, time.June, 15)
	s := date(2024, time.January, 1)
	e := date(2024, time.February, 1)

	start, end, err := ResolveWindow(TimeframeWeek, &s, &e, now)
	require.NoError(t, err)
	assert.Equal(t, s, start)
	assert.Equal(t, e, end)
}

func TestResolveWindowPartialPairIgnored(t *testing.T) {
	now := date(2024, time.June, 15)
	s := date(2024, time.January, 1)

	// only one bound supplied, the named timeframe applies
	start, end, err := ResolveWindow(TimeframeWeek, &s, nil, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), start)
	assert.Equal(t, now, end)
}

func TestResolveWindowInvertedRange(t *testing.T) {
	now := date(2024, time.June, 15)
	s := date(2024, time.March, 1)
	e := date(2024, time.February, 1)

	_, _, err := ResolveWindow(TimeframeMonth, &s, &e, now)
	assert.ErrorIs(t, err, util.ErrInvalidDateRange)
}

func TestCurrentStreakEmpty(t *testing.T) {
	now := date(2024, time.June, 15)
	assert.Equal(t, 0, CurrentStreak(nil, now))
}

func TestCurrentStreakRequiresTodaySolved(t *testing.T) {
	now := date(2024, time.June, 15)
	problems := []model.Problem{
		solvedOn("arrays", now.AddDate(0, 0, -1)),
		solvedOn("arrays", now.AddDate(0, 0, -2)),
	}
	assert.Equal(t, 0, CurrentStreak(problems, now))
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	now := date(2024, time.June, 15)
	problems := []model.Problem{
		solvedOn("arrays", now),
		solvedOn("dp", now.AddDate(0, 0, -1)),
		solvedOn("graphs", now.AddDate(0, 0, -2)),
	}
	assert.Equal(t, 3, CurrentStreak(problems, now))
}

func TestCurrentStreakSkipsGaps(t *testing.T) {
	now := date(2024, time.June, 15)
	problems := []model.Problem{
		solvedOn("arrays", now),
		solvedOn("dp", now.AddDate(0, 0, -2)),
		solvedOn("graphs", now.AddDate(0, 0, -5)),
		// non-solved outcomes never count
		attemptedOn("trees", now.AddDate(0, 0, -1)),
	}
	assert.Equal(t, 3, CurrentStreak(problems, now))
}

func TestDailyActivityLast7(t *testing.T) {
	now := date(2024, time.June, 15)

	problems := []model.Problem{
		solvedOn("arrays", now),
		solvedOn("dp", now),
		solvedOn("graphs", now.AddDate(0, 0, -3)),
		attemptedOn("trees", now), // not solved, excluded from counts
	}
	items := []model.LearningItem{
		{
			BaseModel: model.BaseModel{CreatedAt: now},
			TimeSpent: 90,
		},
	}

	activity := DailyActivityLast7(problems, items, now)
	require.Len(t, activity, 7)

	// oldest first, today last
	assert.Equal(t, now.AddDate(0, 0, -6).Format("2006-01-02"), activity[0].Date)
	assert.Equal(t, now.Format("2006-01-02"), activity[6].Date)

	assert.Equal(t, 2, activity[6].SolvedCount)
	assert.Equal(t, 1.5, activity[6].LearningHours)
	assert.Equal(t, 1, activity[3].SolvedCount)
	assert.Equal(t, 0, activity[0].SolvedCount)
	assert.Equal(t, 0.0, activity[0].LearningHours)
}

func TestWeeklyProgressLast4(t *testing.T) {
	// a Saturday, so the current week started June 9
	now := date(2024, time.June, 15)

	problems := []model.Problem{
		solvedOn("arrays", date(2024, time.June, 10)),
		solvedOn("dp", date(2024, time.June, 12)),
		solvedOn("graphs", date(2024, time.June, 3)), // previous week
	}

	weeks := WeeklyProgressLast4(problems, now)
	require.Len(t, weeks, 4)

	assert.Equal(t, "2024-05-19", weeks[0].WeekStart)
	assert.Equal(t, "2024-06-09", weeks[3].WeekStart)

	assert.Equal(t, 2, weeks[3].SolvedCount)
	assert.Equal(t, 1, weeks[2].SolvedCount)
	assert.Equal(t, 0, weeks[0].SolvedCount)

	// the rate is computed over the solved-filtered set, so any
	// non-empty week reads 100 and an empty week reads 0
	assert.Equal(t, 100, weeks[3].SuccessRate)
	assert.Equal(t, 100, weeks[2].SuccessRate)
	assert.Equal(t, 0, weeks[0].SuccessRate)
}

func TestAnalyzeTopics(t *testing.T) {
	now := date(2024, time.June, 15)
	problems := []model.Problem{
		solvedOn("arrays", now),
		solvedOn("arrays", now),
		solvedOn("dp", now),
		attemptedOn("dp", now),
		attemptedOn("dp", now),
	}

	analysis := AnalyzeTopics(problems)

	require.Len(t, analysis.StrongestTopics, 2)
	assert.Equal(t, "arrays", analysis.StrongestTopics[0].Topic)
	assert.Equal(t, 100, analysis.StrongestTopics[0].SuccessRate)
	assert.Equal(t, "dp", analysis.StrongestTopics[1].Topic)
	assert.Equal(t, 33, analysis.StrongestTopics[1].SuccessRate)

	// weakest is worst first
	require.Len(t, analysis.WeakestTopics, 2)
	assert.Equal(t, "dp", analysis.WeakestTopics[0].Topic)

	require.Len(t, analysis.TopicDistribution, 2)
	assert.Equal(t, "arrays", analysis.TopicDistribution[0].Topic)
	assert.Equal(t, 2, analysis.TopicDistribution[0].Count)
	assert.Equal(t, 40, analysis.TopicDistribution[0].Percentage)
	assert.Equal(t, 60, analysis.TopicDistribution[1].Percentage)
}

func TestAnalyzeTopicsEmpty(t *testing.T) {
	analysis := AnalyzeTopics(nil)
	assert.Empty(t, analysis.StrongestTopics)
	assert.Empty(t, analysis.WeakestTopics)
	assert.Empty(t, analysis.TopicDistribution)
}

func TestAnalyzeDifficulty(t *testing.T) {
	problems := []model.Problem{
		{Difficulty: model.DifficultyEasy, Outcome: model.OutcomeSolved},
		{Difficulty: model.DifficultyEasy, Outcome: model.OutcomeAttempted},
		{Difficulty: model.DifficultyHard, Outcome: model.OutcomeSolved},
		{Difficulty: "weird", Outcome: model.OutcomeSolved}, // ignored
	}

	buckets := AnalyzeDifficulty(problems)
	require.Len(t, buckets, 3)

	assert.Equal(t, model.DifficultyEasy, buckets[0].Difficulty)
	assert.Equal(t, 2, buckets[0].TotalCount)
	assert.Equal(t, 1, buckets[0].SolvedCount)
	assert.Equal(t, 50, buckets[0].SuccessRate)

	assert.Equal(t, model.DifficultyMedium, buckets[1].Difficulty)
	assert.Equal(t, 0, buckets[1].TotalCount)
	assert.Equal(t, 0, buckets[1].SuccessRate)

	assert.Equal(t, model.DifficultyHard, buckets[2].Difficulty)
	assert.Equal(t, 100, buckets[2].SuccessRate)
}

func TestAggregateLearning(t *testing.T) {
	items := []model.LearningItem{
		{Status: model.LearningCompleted, TimeSpent: 60},
		{Status: model.LearningInProgress, TimeSpent: 45},
		{Status: model.LearningNotStarted},
		{Status: model.LearningPaused, TimeSpent: 15},
	}

	stats := AggregateLearning(items)
	assert.Equal(t, 1, stats.CompletedItems)
	assert.Equal(t, 1, stats.InProgressItems)
	assert.Equal(t, 2.0, stats.TotalLearningHours)
}

func TestBuildReportEmptyInputs(t *testing.T) {
	now := date(2024, time.June, 15)

	report := BuildReport(nil, nil, nil, now)
	require.NotNil(t, report)

	assert.Equal(t, 0, report.Overview.TotalProblems)
	assert.Equal(t, 0, report.Overview.SolvedProblems)
	assert.Equal(t, 0, report.Overview.SuccessRate)
	assert.Equal(t, 0.0, report.Overview.TotalLearningHours)
	assert.Equal(t, 0, report.Overview.AvgTimePerProblem)
	assert.Equal(t, 0, report.Overview.CurrentStreak)

	assert.Len(t, report.DailyActivity, 7)
	assert.Len(t, report.WeeklyProgress, 4)
	assert.Len(t, report.DifficultyAnalysis, 3)
	assert.Equal(t, 0, report.RoadmapProgress.TotalRoadmaps)
}

func TestBuildReportOverview(t *testing.T) {
	now := date(2024, time.June, 15)

	problems := []model.Problem{
		{Topic: "arrays", Outcome: model.OutcomeSolved, TimeSpent: 30, Date: now},
		{Topic: "dp", Outcome: model.OutcomeAttempted, TimeSpent: 50, Date: now},
		{Topic: "arrays", Outcome: model.OutcomeSolved, TimeSpent: 10, Date: now.AddDate(0, 0, -1)},
	}
	items := []model.LearningItem{
		{Status: model.LearningInProgress, TimeSpent: 120},
	}
	roadmaps := []model.Roadmap{
		{IsCompleted: true},
		{IsCompleted: false},
	}

	report := BuildReport(problems, items, roadmaps, now)

	assert.Equal(t, 3, report.Overview.TotalProblems)
	assert.Equal(t, 2, report.Overview.SolvedProblems)
	assert.Equal(t, 67, report.Overview.SuccessRate)
	assert.Equal(t, 2.0, report.Overview.TotalLearningHours)
	assert.Equal(t, 30, report.Overview.AvgTimePerProblem)
	assert.Equal(t, 2, report.Overview.DistinctTopics)
	assert.Equal(t, 2, report.Overview.CurrentStreak)
	assert.Equal(t, 1, report.Overview.CompletedRoadmaps)

	assert.Equal(t, 2, report.RoadmapProgress.TotalRoadmaps)
	assert.Equal(t, 1, report.RoadmapProgress.CompletedRoadmaps)
	assert.Equal(t, 1, report.RoadmapProgress.InProgressRoadmaps)
}
