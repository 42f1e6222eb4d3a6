package model

// Report shapes returned by the analytics aggregator. All fields are
// derived; divisions with a zero denominator yield 0.

type AnalyticsOverview struct {
	TotalProblems      int     `json:"totalProblems"`
	SolvedProblems     int     `json:"solvedProblems"`
	SuccessRate        int     `json:"successRate"`        // round(solved/total*100)
	TotalLearningHours float64 `json:"totalLearningHours"` // sum(timeSpent)/60, 1 decimal
	AvgTimePerProblem  int     `json:"avgTimePerProblem"`  // minutes
	DistinctTopics     int     `json:"distinctTopics"`
	CurrentStreak      int     `json:"currentStreak"`
	CompletedRoadmaps  int     `json:"completedRoadmaps"`
}

type DailyActivity struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	SolvedCount   int     `json:"solvedCount"`
	LearningHours float64 `json:"learningHours"`
}

type WeeklyProgress struct {
	WeekStart   string `json:"weekStart"` // Sunday, YYYY-MM-DD
	SolvedCount int    `json:"solvedCount"`
	SuccessRate int    `json:"successRate"`
}

type TopicStats struct {
	Topic        string `json:"topic"`
	TotalCount   int    `json:"totalCount"`
	SolvedCount  int    `json:"solvedCount"`
	SuccessRate  int    `json:"successRate"`
	AvgTimeSpent int    `json:"avgTimeSpent"`
}

type TopicShare struct {
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type TopicAnalysis struct {
	StrongestTopics   []TopicStats `json:"strongestTopics"`
	WeakestTopics     []TopicStats `json:"weakestTopics"`
	TopicDistribution []TopicShare `json:"topicDistribution"`
}

type DifficultyBucket struct {
	Difficulty  Difficulty `json:"difficulty"`
	SolvedCount int        `json:"solvedCount"`
	TotalCount  int        `json:"totalCount"`
	SuccessRate int        `json:"successRate"`
}

type LearningProgressStats struct {
	CompletedItems     int     `json:"completedItems"`
	InProgressItems    int     `json:"inProgressItems"`
	TotalLearningHours float64 `json:"totalLearningHours"`
}

type RoadmapProgressStats struct {
	TotalRoadmaps      int `json:"totalRoadmaps"`
	CompletedRoadmaps  int `json:"completedRoadmaps"`
	InProgressRoadmaps int `json:"inProgressRoadmaps"`
}

type AnalyticsReport struct {
	Overview           AnalyticsOverview     `json:"overview"`
	DailyActivity      []DailyActivity       `json:"dailyActivity"`
	WeeklyProgress     []WeeklyProgress      `json:"weeklyProgress"`
	TopicAnalysis      TopicAnalysis         `json:"topicAnalysis"`
	DifficultyAnalysis []DifficultyBucket    `json:"difficultyAnalysis"`
	LearningProgress   LearningProgressStats `json:"learningProgress"`
	RoadmapProgress    RoadmapProgressStats  `json:"roadmapProgress"`
}

// ProblemStats is the per-user stats summary on the problems endpoint.
type ProblemStats struct {
	TotalProblems  int                `json:"totalProblems"`
	SolvedProblems int                `json:"solvedProblems"`
	SuccessRate    int                `json:"successRate"`
	TotalTimeSpent int                `json:"totalTimeSpent"` // minutes
	DistinctTopics int                `json:"distinctTopics"`
	CurrentStreak  int                `json:"currentStreak"`
	ByDifficulty   []DifficultyBucket `json:"byDifficulty"`
	ByPlatform     map[Platform]int   `json:"byPlatform"`
}

// Static insight content served by the insights provider. These are canned
// values, never produced by the aggregation path.
type InsightCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"kind"` // insight | prediction | recommendation
}

type ProductivitySlot struct {
	Label        string `json:"label"`
	Productivity int    `json:"productivity"` // percent
}

type InsightsReport struct {
	BestHours            []ProductivitySlot `json:"bestHours"`
	ProductivityPatterns []ProductivitySlot `json:"productivityPatterns"`
	Cards                []InsightCard      `json:"cards"`
}
