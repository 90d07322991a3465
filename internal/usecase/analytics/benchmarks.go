package analytics

import (
	"math"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// Industry benchmark averages the comparator measures against.
const (
	benchmarkOverall      = 72.0
	benchmarkBodyLanguage = 70.0
	benchmarkSpeech       = 75.0
	benchmarkContent      = 71.0
	benchmarkConfidence   = 68.0

	// Normal distribution parameters for the percentile estimate.
	percentileMean  = 72.0
	percentileSigma = 12.0
)

// CompareBenchmarks relates the user's averaged metrics to the static
// industry benchmark table and estimates a percentile for the overall
// average against a normal score distribution.
func CompareBenchmarks(interviews []*entities.Interview) BenchmarkReport {
	var overall, body, speech, content, confidence float64
	if n := float64(len(interviews)); n > 0 {
		for _, iv := range interviews {
			analysis := analysisOf(iv)
			overall += analysis.OverallScore
			body += analysis.BodyLanguage.Score
			speech += analysis.ClarityScore
			content += analysis.ContentScore
			confidence += analysis.Tonality.Confident * 100
		}
		overall /= n
		body /= n
		speech /= n
		content /= n
		confidence /= n
	}

	return BenchmarkReport{
		Comparisons: []BenchmarkComparison{
			compareMetric("overallScore", overall, benchmarkOverall),
			compareMetric("bodyLanguage", body, benchmarkBodyLanguage),
			compareMetric("speech", speech, benchmarkSpeech),
			compareMetric("content", content, benchmarkContent),
			compareMetric("confidence", confidence, benchmarkConfidence),
		},
		Percentile: Percentile(overall),
	}
}

func compareMetric(metric string, userScore, benchmark float64) BenchmarkComparison {
	diff := userScore - benchmark
	diffPct := diff / benchmark * 100

	status := "on_par"
	significance := ""
	if math.Abs(diffPct) > 10 {
		if diff > 0 {
			status = "above"
		} else {
			status = "below"
		}
		significance = "medium"
		if math.Abs(diffPct) > 20 {
			significance = "high"
		}
	}

	return BenchmarkComparison{
		Metric:         metric,
		UserScore:      round2(userScore),
		BenchmarkScore: benchmark,
		Difference:     round2(diff),
		DifferencePct:  round2(diffPct),
		Status:         status,
		Significance:   significance,
	}
}

// Percentile estimates where a score falls against a normal distribution
// of interview performance, clamped to [1, 99].
func Percentile(score float64) int {
	cdf := 0.5 * (1 + math.Erf((score-percentileMean)/(percentileSigma*math.Sqrt2)))
	p := int(math.Round(cdf * 100))
	if p < 1 {
		p = 1
	}
	if p > 99 {
		p = 99
	}
	return p
}
