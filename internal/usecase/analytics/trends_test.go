package analytics

import (
	"testing"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

func trendInterviews(fillers []int, confidences []float64) []*entities.Interview {
	interviews := make([]*entities.Interview, len(fillers))
	for i := range fillers {
		interviews[i] = completedInterview(baseDay.AddDate(0, 0, i), entities.InterviewAnalysis{
			OverallScore:    70,
			ConfidenceScore: confidences[i],
			FillerWords:     entities.FillerWordsSummary{Count: fillers[i]},
		})
	}
	return interviews
}

func TestCalculateTrends_GettingStarted(t *testing.T) {
	for _, n := range []int{0, 1} {
		interviews := trendInterviews(make([]int, n), make([]float64, n))
		report := CalculateTrends(interviews)

		if report.FillerWords.Direction != TrendStable || report.Confidence.Direction != TrendStable {
			t.Errorf("n=%d: expected neutral trends, got %+v", n, report)
		}
		if len(report.Insights) != 1 {
			t.Fatalf("n=%d: expected exactly one insight, got %d", n, len(report.Insights))
		}
		if report.Insights[0].Title != "Getting started" {
			t.Errorf("n=%d: expected getting-started insight, got %q", n, report.Insights[0].Title)
		}
	}
}

func TestCalculateTrends_FillerDecreaseIsImproving(t *testing.T) {
	// Last three average 20% fewer filler words than the three before.
	report := CalculateTrends(trendInterviews(
		[]int{10, 10, 10, 8, 8, 8},
		[]float64{70, 70, 70, 70, 70, 70},
	))

	if report.FillerWords.Direction != TrendImproving {
		t.Errorf("expected filler trend improving, got %s", report.FillerWords.Direction)
	}
	if report.FillerWords.ChangePercent != -20 {
		t.Errorf("expected -20%% change, got %.2f", report.FillerWords.ChangePercent)
	}
	if report.Confidence.Direction != TrendStable {
		t.Errorf("expected confidence stable, got %s", report.Confidence.Direction)
	}
	if len(report.Insights) != 1 || report.Insights[0].Metric != metricFillerWords {
		t.Errorf("expected a single filler insight, got %+v", report.Insights)
	}
	if report.Insights[0].Type != "positive" {
		t.Errorf("expected positive insight, got %s", report.Insights[0].Type)
	}
}

func TestCalculateTrends_ConfidenceDropIsDeclining(t *testing.T) {
	report := CalculateTrends(trendInterviews(
		[]int{3, 3, 3, 3, 3, 3},
		[]float64{80, 80, 80, 70, 70, 70},
	))

	if report.Confidence.Direction != TrendDeclining {
		t.Errorf("expected confidence declining, got %s", report.Confidence.Direction)
	}
	if report.Confidence.ChangePercent != -12.5 {
		t.Errorf("expected -12.5%% change, got %.2f", report.Confidence.ChangePercent)
	}
	if len(report.Insights) != 1 || report.Insights[0].Type != "negative" {
		t.Errorf("expected a single negative insight, got %+v", report.Insights)
	}
}

func TestCalculateTrends_SmallChangesAreStable(t *testing.T) {
	report := CalculateTrends(trendInterviews(
		[]int{10, 10, 10, 10, 10, 10},
		[]float64{80, 80, 80, 82, 82, 82},
	))

	if report.Confidence.Direction != TrendStable {
		t.Errorf("expected +2.5%% confidence change to be stable, got %s", report.Confidence.Direction)
	}
	if report.FillerWords.Direction != TrendStable {
		t.Errorf("expected unchanged fillers to be stable, got %s", report.FillerWords.Direction)
	}
	if len(report.Insights) != 0 {
		t.Errorf("expected no insights for stable trends, got %+v", report.Insights)
	}
}

func TestCalculateTrends_ZeroPreviousAverageIsStable(t *testing.T) {
	// The previous window never used filler words; the comparison cannot
	// produce a percentage and stays neutral.
	report := CalculateTrends(trendInterviews(
		[]int{0, 0, 0, 5, 5, 5},
		[]float64{70, 70, 70, 70, 70, 70},
	))

	if report.FillerWords.Direction != TrendStable {
		t.Errorf("expected stable filler trend on zero baseline, got %s", report.FillerWords.Direction)
	}
}

func TestCalculateTrends_ShortHistoryWindows(t *testing.T) {
	// Five records: previous window is the two oldest, recent the last three.
	report := CalculateTrends(trendInterviews(
		[]int{9, 9, 3, 3, 3},
		[]float64{70, 70, 70, 70, 70},
	))

	if report.FillerWords.PreviousAverage != 9 {
		t.Errorf("expected previous average 9, got %.2f", report.FillerWords.PreviousAverage)
	}
	if report.FillerWords.RecentAverage != 3 {
		t.Errorf("expected recent average 3, got %.2f", report.FillerWords.RecentAverage)
	}
	if report.FillerWords.Direction != TrendImproving {
		t.Errorf("expected improving, got %s", report.FillerWords.Direction)
	}
}

func TestCalculateTrends_TwoRecordsHaveNoBaseline(t *testing.T) {
	report := CalculateTrends(trendInterviews(
		[]int{5, 3},
		[]float64{70, 80},
	))

	if report.FillerWords.Direction != TrendStable || report.Confidence.Direction != TrendStable {
		t.Errorf("expected stable trends without a previous window, got %+v", report)
	}
	if len(report.Insights) != 0 {
		t.Errorf("expected no insights, got %+v", report.Insights)
	}
}
