package analytics

import (
	"fmt"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

const (
	metricFillerWords = "fillerWords"
	metricConfidence  = "confidence"

	// Percentage change below this magnitude counts as stable.
	trendThresholdPct = 5.0
)

// CalculateTrends compares the last three interviews against the three
// before them for filler-word count (decrease = improving) and confidence
// score (increase = improving). Fewer than two records yields neutral
// trends and a single getting-started insight.
func CalculateTrends(interviews []*entities.Interview) TrendReport {
	report := TrendReport{
		FillerWords: Trend{Metric: metricFillerWords, Direction: TrendStable},
		Confidence:  Trend{Metric: metricConfidence, Direction: TrendStable},
		Insights:    []Insight{},
	}

	if len(interviews) < 2 {
		report.Insights = append(report.Insights, Insight{
			Type:    "neutral",
			Metric:  "general",
			Title:   "Getting started",
			Message: "Complete a few more interviews to unlock trend analysis.",
		})
		return report
	}

	recent, previous := splitWindows(interviews)

	report.FillerWords = compareWindows(metricFillerWords, recent, previous, fillerCount, false)
	report.Confidence = compareWindows(metricConfidence, recent, previous, confidenceScore, true)

	if insight, ok := fillerInsight(report.FillerWords); ok {
		report.Insights = append(report.Insights, insight)
	}
	if insight, ok := confidenceInsight(report.Confidence); ok {
		report.Insights = append(report.Insights, insight)
	}

	return report
}

// splitWindows takes the last three records as the recent window and the
// three before those as the previous window, shrinking both when the
// history is shorter.
func splitWindows(interviews []*entities.Interview) (recent, previous []*entities.Interview) {
	n := len(interviews)
	recentStart := n - 3
	if recentStart < 0 {
		recentStart = 0
	}
	previousStart := n - 6
	if previousStart < 0 {
		previousStart = 0
	}
	return interviews[recentStart:], interviews[previousStart:recentStart]
}

// compareWindows classifies the metric change between windows. A previous
// average of zero (including an empty previous window) is stable.
func compareWindows(metric string, recent, previous []*entities.Interview, extract func(*entities.Interview) float64, increaseIsGood bool) Trend {
	recentAvg := windowAverage(recent, extract)
	previousAvg := windowAverage(previous, extract)

	trend := Trend{
		Metric:          metric,
		Direction:       TrendStable,
		RecentAverage:   round2(recentAvg),
		PreviousAverage: round2(previousAvg),
	}
	if previousAvg == 0 {
		return trend
	}

	changePct := (recentAvg - previousAvg) / previousAvg * 100
	trend.ChangePercent = round2(changePct)

	switch {
	case changePct > trendThresholdPct:
		if increaseIsGood {
			trend.Direction = TrendImproving
		} else {
			trend.Direction = TrendDeclining
		}
	case changePct < -trendThresholdPct:
		if increaseIsGood {
			trend.Direction = TrendDeclining
		} else {
			trend.Direction = TrendImproving
		}
	}
	return trend
}

func windowAverage(interviews []*entities.Interview, extract func(*entities.Interview) float64) float64 {
	if len(interviews) == 0 {
		return 0
	}
	var sum float64
	for _, iv := range interviews {
		sum += extract(iv)
	}
	return sum / float64(len(interviews))
}

func fillerCount(iv *entities.Interview) float64 {
	return float64(analysisOf(iv).FillerWords.Count)
}

func confidenceScore(iv *entities.Interview) float64 {
	return analysisOf(iv).ConfidenceScore
}

func fillerInsight(trend Trend) (Insight, bool) {
	switch trend.Direction {
	case TrendImproving:
		return Insight{
			Type:    "positive",
			Metric:  metricFillerWords,
			Title:   "Filler words trending down",
			Message: fmt.Sprintf("Your recent interviews average %.1f filler words, down from %.1f. Keep it up!", trend.RecentAverage, trend.PreviousAverage),
		}, true
	case TrendDeclining:
		return Insight{
			Type:    "negative",
			Metric:  metricFillerWords,
			Title:   "Filler words creeping up",
			Message: fmt.Sprintf("Your recent interviews average %.1f filler words, up from %.1f. Try pausing instead of filling silence.", trend.RecentAverage, trend.PreviousAverage),
		}, true
	}
	return Insight{}, false
}

func confidenceInsight(trend Trend) (Insight, bool) {
	switch trend.Direction {
	case TrendImproving:
		return Insight{
			Type:    "positive",
			Metric:  metricConfidence,
			Title:   "Confidence on the rise",
			Message: fmt.Sprintf("Your confidence score climbed from %.1f to %.1f across recent interviews.", trend.PreviousAverage, trend.RecentAverage),
		}, true
	case TrendDeclining:
		return Insight{
			Type:    "negative",
			Metric:  metricConfidence,
			Title:   "Confidence dipped recently",
			Message: fmt.Sprintf("Your confidence score slipped from %.1f to %.1f. Revisit preparation routines that worked before.", trend.PreviousAverage, trend.RecentAverage),
		}, true
	}
	return Insight{}, false
}
