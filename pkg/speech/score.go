package speech

import "math"

// ClarityScore degrades from 100 by 5 points per filler word, floored at 50.
func ClarityScore(fillerCount int) int {
	score := 100 - fillerCount*5
	if score < 50 {
		return 50
	}
	return score
}

// ProfessionalismScore degrades from 90 by 5 points per hedge word,
// floored at 60.
func ProfessionalismScore(hedgeWords int) int {
	score := 90 - hedgeWords*5
	if score < 60 {
		return 60
	}
	return score
}

// OverallScore is the rounded mean of the confidence, clarity and
// professionalism scores.
func OverallScore(confidence float64, clarity, professionalism int) int {
	return int(math.Round((confidence + float64(clarity) + float64(professionalism)) / 3))
}

// SpeakingRate returns words per minute, 0 when the duration is unknown.
func SpeakingRate(wordCount int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return round1(float64(wordCount) / (duration / 60))
}

// Grade maps a 0-100 score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// Recommendations derives practice suggestions from the measured metrics.
func Recommendations(fillerCount int, confidenceScore float64, wordCount, hedgeWords int) []string {
	out := make([]string, 0, 4)
	if fillerCount > 3 {
		out = append(out, "Practice reducing filler words by pausing for 2-3 seconds before responding to questions")
	}
	if confidenceScore < 70 {
		out = append(out, "Work on using more confident language and decisive statements in your responses")
	}
	if wordCount < 50 {
		out = append(out, "Provide more detailed responses with specific examples to demonstrate your experience")
	}
	if hedgeWords > 2 {
		out = append(out, "Replace hedge words with more assertive language to sound more confident")
	}

	if len(out) == 0 {
		out = []string{
			"Continue practicing interview responses to maintain your current strong performance",
			"Consider recording yourself to identify any subtle areas for improvement",
			"Practice the STAR method for behavioral questions to structure your responses",
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
