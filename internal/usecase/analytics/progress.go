package analytics

import (
	"math"
	"time"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// CalculateProgress aggregates completed interviews (oldest first) into
// progress metrics. Degenerate input never errors: an empty history yields
// zeroed metrics and empty buckets.
func CalculateProgress(interviews []*entities.Interview) ProgressMetrics {
	metrics := ProgressMetrics{
		MonthlyProgress: []MonthlyBucket{},
	}
	if len(interviews) == 0 {
		return metrics
	}

	scores := overallScores(interviews)

	metrics.TotalInterviews = len(interviews)
	metrics.AverageScore = roundInt(mean(scores))
	metrics.BestScore = roundInt(maxOf(scores))
	metrics.LatestScore = roundInt(scores[len(scores)-1])
	metrics.ImprovementRate = improvementRate(scores)
	metrics.Consistency = consistency(scores)
	metrics.StreakDays = streakDays(interviews)
	metrics.ScoreDistribution = distributeScores(scores)
	metrics.MonthlyProgress = monthlyProgress(interviews)
	metrics.SkillProgress = skillProgress(interviews)

	return metrics
}

// improvementRate compares the first half of the sequence against the
// second half, split at floor(N/2). Zero when there is nothing to compare
// or the first half averaged zero.
func improvementRate(scores []float64) int {
	if len(scores) <= 1 {
		return 0
	}
	mid := len(scores) / 2
	firstHalfAvg := mean(scores[:mid])
	secondHalfAvg := mean(scores[mid:])
	if firstHalfAvg == 0 {
		return 0
	}
	return roundInt((secondHalfAvg - firstHalfAvg) / firstHalfAvg * 100)
}

// consistency maps the population standard deviation onto a 0-100 scale
// via max(0, 100 - stdDev/10). The divisor is a carried-over heuristic.
func consistency(scores []float64) int {
	avg := mean(scores)
	var variance float64
	for _, s := range scores {
		variance += (s - avg) * (s - avg)
	}
	variance /= float64(len(scores))
	stdDev := math.Sqrt(variance)
	return roundInt(math.Max(0, 100-stdDev/10))
}

func distributeScores(scores []float64) ScoreDistribution {
	var dist ScoreDistribution
	for _, s := range scores {
		switch {
		case s >= 90:
			dist.Excellent++
		case s >= 70:
			dist.Good++
		case s >= 50:
			dist.Average++
		default:
			dist.Poor++
		}
	}
	return dist
}

// monthlyProgress groups interviews by calendar month (UTC) in
// chronological order. Input ordering is preserved, so oldest-first input
// yields oldest-first buckets.
func monthlyProgress(interviews []*entities.Interview) []MonthlyBucket {
	buckets := []MonthlyBucket{}
	sums := []float64{}
	for _, iv := range interviews {
		month := iv.CreatedAt.UTC().Format("2006-01")
		if len(buckets) == 0 || buckets[len(buckets)-1].Month != month {
			buckets = append(buckets, MonthlyBucket{Month: month})
			sums = append(sums, 0)
		}
		last := len(buckets) - 1
		buckets[last].Count++
		sums[last] += analysisOf(iv).OverallScore
	}
	for i := range buckets {
		buckets[i].AverageScore = roundInt(sums[i] / float64(buckets[i].Count))
	}
	return buckets
}

func skillProgress(interviews []*entities.Interview) SkillProgress {
	var body, speech, content, confidence float64
	for _, iv := range interviews {
		analysis := analysisOf(iv)
		body += analysis.BodyLanguage.Score
		speech += analysis.ClarityScore
		content += analysis.ContentScore
		confidence += analysis.Tonality.Confident * 100
	}
	n := float64(len(interviews))
	return SkillProgress{
		BodyLanguage: roundInt(body / n),
		Speech:       roundInt(speech / n),
		Content:      roundInt(content / n),
		Confidence:   roundInt(confidence / n),
	}
}

// streakDays counts consecutive distinct calendar days (UTC) ending at the
// most recent interview's day. Same-day interviews collapse into one day;
// any gap larger than one day ends the streak.
func streakDays(interviews []*entities.Interview) int {
	days := []time.Time{}
	seen := map[string]bool{}
	for _, iv := range interviews {
		day := iv.CreatedAt.UTC().Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return 0
	}

	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i].Sub(days[i-1]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

func overallScores(interviews []*entities.Interview) []float64 {
	scores := make([]float64, len(interviews))
	for i, iv := range interviews {
		scores[i] = analysisOf(iv).OverallScore
	}
	return scores
}

// analysisOf unwraps the embedded analysis, substituting a zero value for
// records that somehow completed without one.
func analysisOf(iv *entities.Interview) entities.InterviewAnalysis {
	if iv.Analysis != nil {
		return *iv.Analysis
	}
	return entities.InterviewAnalysis{}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
