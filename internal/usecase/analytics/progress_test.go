package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

var baseDay = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func scoredInterview(created time.Time, overall float64) *entities.Interview {
	return completedInterview(created, entities.InterviewAnalysis{OverallScore: overall})
}

func completedInterview(created time.Time, analysis entities.InterviewAnalysis) *entities.Interview {
	return &entities.Interview{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Status:    entities.InterviewStatusCompleted,
		Analysis:  &analysis,
		CreatedAt: created,
	}
}

func TestCalculateProgress_EmptyHistory(t *testing.T) {
	metrics := CalculateProgress(nil)

	if metrics.TotalInterviews != 0 || metrics.AverageScore != 0 || metrics.ImprovementRate != 0 {
		t.Errorf("expected zeroed metrics, got %+v", metrics)
	}
	if metrics.StreakDays != 0 {
		t.Errorf("expected streak 0, got %d", metrics.StreakDays)
	}
	if metrics.ScoreDistribution != (ScoreDistribution{}) {
		t.Errorf("expected empty distribution, got %+v", metrics.ScoreDistribution)
	}
	if metrics.MonthlyProgress == nil || len(metrics.MonthlyProgress) != 0 {
		t.Errorf("expected empty monthly progress, got %v", metrics.MonthlyProgress)
	}
}

func TestCalculateProgress_SingleRecord(t *testing.T) {
	metrics := CalculateProgress([]*entities.Interview{scoredInterview(baseDay, 75)})

	if metrics.TotalInterviews != 1 {
		t.Errorf("expected 1 interview, got %d", metrics.TotalInterviews)
	}
	if metrics.AverageScore != 75 || metrics.BestScore != 75 || metrics.LatestScore != 75 {
		t.Errorf("expected all score fields 75, got %+v", metrics)
	}
	if metrics.ImprovementRate != 0 {
		t.Errorf("expected improvement rate 0 for single record, got %d", metrics.ImprovementRate)
	}
	if metrics.StreakDays != 1 {
		t.Errorf("expected streak 1, got %d", metrics.StreakDays)
	}
}

func TestCalculateProgress_IdenticalScoresAreFullyConsistent(t *testing.T) {
	interviews := make([]*entities.Interview, 10)
	for i := range interviews {
		interviews[i] = scoredInterview(baseDay.AddDate(0, 0, i), 70)
	}

	metrics := CalculateProgress(interviews)

	if metrics.Consistency != 100 {
		t.Errorf("expected consistency 100 for identical scores, got %d", metrics.Consistency)
	}
	if metrics.AverageScore != 70 {
		t.Errorf("expected average 70, got %d", metrics.AverageScore)
	}
	if metrics.ImprovementRate != 0 {
		t.Errorf("expected improvement rate 0, got %d", metrics.ImprovementRate)
	}
	if metrics.ScoreDistribution.Good != 10 {
		t.Errorf("expected all 10 in good bucket, got %+v", metrics.ScoreDistribution)
	}
}

func TestCalculateProgress_MonotonicallyIncreasingScores(t *testing.T) {
	interviews := make([]*entities.Interview, 10)
	for i := range interviews {
		interviews[i] = scoredInterview(baseDay.AddDate(0, 0, i), float64(50+i*5))
	}

	metrics := CalculateProgress(interviews)

	// First half [50..70] averages 60, second half [75..95] averages 85.
	if metrics.ImprovementRate != 42 {
		t.Errorf("expected improvement rate 42, got %d", metrics.ImprovementRate)
	}
	if metrics.ImprovementRate <= 0 {
		t.Error("expected positive improvement rate for rising scores")
	}

	dist := metrics.ScoreDistribution
	if dist.Excellent != 2 || dist.Good != 4 || dist.Average != 4 || dist.Poor != 0 {
		t.Errorf("unexpected distribution: %+v", dist)
	}
	if metrics.StreakDays != 10 {
		t.Errorf("expected streak 10 for daily practice, got %d", metrics.StreakDays)
	}
	if metrics.BestScore != 95 || metrics.LatestScore != 95 {
		t.Errorf("expected best and latest 95, got %+v", metrics)
	}
}

func TestDistributeScores_BucketBoundaries(t *testing.T) {
	cases := []struct {
		score  float64
		bucket string
	}{
		{100, "excellent"},
		{90, "excellent"},
		{89, "good"},
		{70, "good"},
		{69, "average"},
		{50, "average"},
		{49, "poor"},
		{0, "poor"},
	}

	for _, tc := range cases {
		dist := distributeScores([]float64{tc.score})
		got := ""
		switch {
		case dist.Excellent == 1:
			got = "excellent"
		case dist.Good == 1:
			got = "good"
		case dist.Average == 1:
			got = "average"
		case dist.Poor == 1:
			got = "poor"
		}
		if got != tc.bucket {
			t.Errorf("score %.0f: expected bucket %s, got %s", tc.score, tc.bucket, got)
		}
	}
}

func TestDistributeScores_Idempotent(t *testing.T) {
	scores := []float64{95, 89, 72, 64, 50, 31}
	first := distributeScores(scores)
	second := distributeScores(scores)
	if first != second {
		t.Errorf("bucketing is not idempotent: %+v vs %+v", first, second)
	}
}

func TestCalculateProgress_MonthlyBuckets(t *testing.T) {
	interviews := []*entities.Interview{
		scoredInterview(time.Date(2026, 6, 3, 9, 0, 0, 0, time.UTC), 60),
		scoredInterview(time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC), 70),
		scoredInterview(time.Date(2026, 7, 5, 9, 0, 0, 0, time.UTC), 80),
	}

	metrics := CalculateProgress(interviews)

	if len(metrics.MonthlyProgress) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(metrics.MonthlyProgress))
	}
	june := metrics.MonthlyProgress[0]
	if june.Month != "2026-06" || june.Count != 2 || june.AverageScore != 65 {
		t.Errorf("unexpected june bucket: %+v", june)
	}
	july := metrics.MonthlyProgress[1]
	if july.Month != "2026-07" || july.Count != 1 || july.AverageScore != 80 {
		t.Errorf("unexpected july bucket: %+v", july)
	}
}

func TestStreakDays_GapBreaksStreak(t *testing.T) {
	interviews := []*entities.Interview{
		scoredInterview(baseDay, 70),
		scoredInterview(baseDay.AddDate(0, 0, 1), 70),
		scoredInterview(baseDay.AddDate(0, 0, 3), 70),
	}

	if got := streakDays(interviews); got != 1 {
		t.Errorf("expected streak 1 after a gap, got %d", got)
	}
}

func TestStreakDays_SameDayCollapses(t *testing.T) {
	interviews := []*entities.Interview{
		scoredInterview(baseDay, 70),
		scoredInterview(baseDay.AddDate(0, 0, 1).Add(2*time.Hour), 72),
		scoredInterview(baseDay.AddDate(0, 0, 1).Add(5*time.Hour), 74),
	}

	if got := streakDays(interviews); got != 2 {
		t.Errorf("expected streak 2 with same-day records collapsed, got %d", got)
	}
}

func TestCalculateProgress_SkillAverages(t *testing.T) {
	mk := func(body, clarity, content, confident float64) entities.InterviewAnalysis {
		return entities.InterviewAnalysis{
			OverallScore: 70,
			ClarityScore: clarity,
			ContentScore: content,
			BodyLanguage: entities.BodyLanguage{Score: body},
			Tonality:     entities.TonalitySummary{Confident: confident},
		}
	}
	interviews := []*entities.Interview{
		completedInterview(baseDay, mk(80, 90, 70, 0.75)),
		completedInterview(baseDay.AddDate(0, 0, 1), mk(70, 80, 60, 0.65)),
	}

	skills := CalculateProgress(interviews).SkillProgress

	want := SkillProgress{BodyLanguage: 75, Speech: 85, Content: 65, Confidence: 70}
	if skills != want {
		t.Errorf("expected %+v, got %+v", want, skills)
	}
}

func TestImprovementRate_ZeroFirstHalf(t *testing.T) {
	if got := improvementRate([]float64{0, 50}); got != 0 {
		t.Errorf("expected 0 when first half averages 0, got %d", got)
	}
}
