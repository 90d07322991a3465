package analytics

import (
	"testing"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

func benchmarkInterview(overall, body, clarity, content, confident float64) *entities.Interview {
	return completedInterview(baseDay, entities.InterviewAnalysis{
		OverallScore: overall,
		ClarityScore: clarity,
		ContentScore: content,
		BodyLanguage: entities.BodyLanguage{Score: body},
		Tonality:     entities.TonalitySummary{Confident: confident},
	})
}

func comparisonFor(t *testing.T, report BenchmarkReport, metric string) BenchmarkComparison {
	t.Helper()
	for _, c := range report.Comparisons {
		if c.Metric == metric {
			return c
		}
	}
	t.Fatalf("comparison %s not found", metric)
	return BenchmarkComparison{}
}

func TestCompareBenchmarks_AtBenchmarkIsOnPar(t *testing.T) {
	report := CompareBenchmarks([]*entities.Interview{
		benchmarkInterview(72, 70, 75, 71, 0.68),
	})

	if len(report.Comparisons) != 5 {
		t.Fatalf("expected 5 comparisons, got %d", len(report.Comparisons))
	}
	for _, c := range report.Comparisons {
		if c.Status != "on_par" {
			t.Errorf("%s: expected on_par, got %s", c.Metric, c.Status)
		}
		if c.Significance != "" {
			t.Errorf("%s: expected no significance, got %s", c.Metric, c.Significance)
		}
		if c.Difference != 0 {
			t.Errorf("%s: expected zero difference, got %.2f", c.Metric, c.Difference)
		}
	}
	if report.Percentile != 50 {
		t.Errorf("expected percentile 50 at the distribution mean, got %d", report.Percentile)
	}
}

func TestCompareBenchmarks_SignificanceTiers(t *testing.T) {
	// Overall 90 vs 72 is +25% (high); clarity 83 vs 75 is +10.67% (medium).
	report := CompareBenchmarks([]*entities.Interview{
		benchmarkInterview(90, 70, 83, 71, 0.68),
	})

	overall := comparisonFor(t, report, "overallScore")
	if overall.Status != "above" || overall.Significance != "high" {
		t.Errorf("expected above/high for overall, got %s/%s", overall.Status, overall.Significance)
	}
	if overall.Difference != 18 {
		t.Errorf("expected difference 18, got %.2f", overall.Difference)
	}

	speech := comparisonFor(t, report, "speech")
	if speech.Status != "above" || speech.Significance != "medium" {
		t.Errorf("expected above/medium for speech, got %s/%s", speech.Status, speech.Significance)
	}

	if report.Percentile != 93 {
		t.Errorf("expected percentile 93 for a score of 90, got %d", report.Percentile)
	}
}

func TestCompareBenchmarks_BelowBenchmark(t *testing.T) {
	report := CompareBenchmarks([]*entities.Interview{
		benchmarkInterview(50, 40, 75, 71, 0.68),
	})

	overall := comparisonFor(t, report, "overallScore")
	if overall.Status != "below" || overall.Significance != "high" {
		t.Errorf("expected below/high for overall, got %s/%s", overall.Status, overall.Significance)
	}
	body := comparisonFor(t, report, "bodyLanguage")
	if body.Status != "below" || body.Significance != "high" {
		t.Errorf("expected below/high for body language, got %s/%s", body.Status, body.Significance)
	}
}

func TestCompareBenchmarks_EmptyHistoryIsDeterministic(t *testing.T) {
	first := CompareBenchmarks(nil)
	second := CompareBenchmarks(nil)

	if first.Percentile != second.Percentile {
		t.Error("percentile must be deterministic")
	}
	if first.Percentile != 1 {
		t.Errorf("expected floor percentile 1 with no history, got %d", first.Percentile)
	}
	for _, c := range first.Comparisons {
		if c.UserScore != 0 {
			t.Errorf("%s: expected zero user score, got %.2f", c.Metric, c.UserScore)
		}
	}
}

func TestPercentile_ClampedAndMonotonic(t *testing.T) {
	if got := Percentile(0); got != 1 {
		t.Errorf("expected percentile 1 for score 0, got %d", got)
	}
	if got := Percentile(100); got != 99 {
		t.Errorf("expected percentile 99 for score 100, got %d", got)
	}

	previous := 0
	for score := 0; score <= 100; score += 5 {
		p := Percentile(float64(score))
		if p < 1 || p > 99 {
			t.Errorf("percentile %d for score %d outside [1,99]", p, score)
		}
		if p < previous {
			t.Errorf("percentile not monotonic: score %d gave %d after %d", score, p, previous)
		}
		previous = p
	}
}
