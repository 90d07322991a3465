package analytics

import "time"

// ProgressMetrics is the aggregate view of a user's interview history
// within a timeframe. All score fields are rounded to whole numbers.
type ProgressMetrics struct {
	TotalInterviews   int               `json:"totalInterviews"`
	AverageScore      int               `json:"averageScore"`
	BestScore         int               `json:"bestScore"`
	LatestScore       int               `json:"latestScore"`
	ImprovementRate   int               `json:"improvementRate"`
	Consistency       int               `json:"consistency"`
	StreakDays        int               `json:"streakDays"`
	ScoreDistribution ScoreDistribution `json:"scoreDistribution"`
	MonthlyProgress   []MonthlyBucket   `json:"monthlyProgress"`
	SkillProgress     SkillProgress     `json:"skillProgress"`
}

// ScoreDistribution counts overall scores per fixed bucket:
// excellent [90,100], good [70,89], average [50,69], poor [0,49].
type ScoreDistribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Average   int `json:"average"`
	Poor      int `json:"poor"`
}

// MonthlyBucket groups interviews by calendar month (UTC).
type MonthlyBucket struct {
	Month        string `json:"month"`
	Count        int    `json:"count"`
	AverageScore int    `json:"averageScore"`
}

// SkillProgress holds the per-skill rounded averages.
type SkillProgress struct {
	BodyLanguage int `json:"bodyLanguage"`
	Speech       int `json:"speech"`
	Content      int `json:"content"`
	Confidence   int `json:"confidence"`
}

// TrendDirection classifies a windowed metric comparison.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// Trend compares the recent window of a metric against the previous one.
type Trend struct {
	Metric          string         `json:"metric"`
	Direction       TrendDirection `json:"direction"`
	RecentAverage   float64        `json:"recentAverage"`
	PreviousAverage float64        `json:"previousAverage"`
	ChangePercent   float64        `json:"changePercent"`
}

// Insight is a human-readable note derived from a trend.
type Insight struct {
	Type    string `json:"type"`
	Metric  string `json:"metric"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// TrendReport bundles the tracked trends with their insights.
type TrendReport struct {
	FillerWords Trend     `json:"fillerWords"`
	Confidence  Trend     `json:"confidence"`
	Insights    []Insight `json:"insights"`
}

// Achievement is one evaluated rule from the fixed achievement table.
// Rules are recomputed from the full history on every call; there is no
// persisted unlock state.
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Unlocked    bool    `json:"unlocked"`
	Progress    float64 `json:"progress"`
	Target      float64 `json:"target"`
}

// BenchmarkComparison relates one user metric to its industry benchmark.
type BenchmarkComparison struct {
	Metric         string  `json:"metric"`
	UserScore      float64 `json:"userScore"`
	BenchmarkScore float64 `json:"benchmarkScore"`
	Difference     float64 `json:"difference"`
	DifferencePct  float64 `json:"differencePct"`
	Status         string  `json:"status"`
	Significance   string  `json:"significance,omitempty"`
}

// BenchmarkReport is the full benchmark comparison payload.
type BenchmarkReport struct {
	Comparisons []BenchmarkComparison `json:"comparisons"`
	Percentile  int                   `json:"percentile"`
}

// Dashboard is the combined analytics payload served by the dashboard
// endpoint and cached per user and timeframe.
type Dashboard struct {
	Timeframe    string          `json:"timeframe"`
	Progress     ProgressMetrics `json:"progress"`
	Trends       TrendReport     `json:"trends"`
	Achievements []Achievement   `json:"achievements"`
	Benchmarks   BenchmarkReport `json:"benchmarks"`
	GeneratedAt  time.Time       `json:"generatedAt"`
}
