// Package speech implements deterministic transcript analytics: filler-word
// detection, confidence-language scoring, composite quality scores and
// interview readiness. All functions are pure text and arithmetic passes,
// total over any input.
package speech

import (
	"fmt"
	"math"
	"strings"
)

// Result is the full analysis of one transcript.
type Result struct {
	WordCount       int                `json:"wordCount"`
	DurationSeconds float64            `json:"durationSeconds"`
	SpeakingRateWPM float64            `json:"speakingRateWpm"`
	Fillers         FillerAnalysis     `json:"fillerWords"`
	Confidence      ConfidenceAnalysis `json:"confidence"`
	ClarityScore    int                `json:"clarityScore"`
	Professionalism int                `json:"professionalismScore"`
	OverallScore    int                `json:"overallScore"`
	Grade           string             `json:"grade"`
	Readiness       Readiness          `json:"interviewReadiness"`
	Strengths       []string           `json:"strengths"`
	Improvements    []string           `json:"improvements"`
	Recommendations []string           `json:"recommendations"`
}

// Readiness summarizes how interview-ready the delivery is.
type Readiness struct {
	Score   int      `json:"score"`
	Level   string   `json:"level"` // advanced, intermediate, beginner
	KeyGaps []string `json:"keyGaps"`
}

// Analyze runs every pass over the transcript. duration is in seconds and
// may be zero when unknown.
func Analyze(text string, duration float64) Result {
	fillers := AnalyzeFillerWords(text, duration)
	confidence := AnalyzeConfidence(text)
	return Compose(text, duration, fillers, confidence)
}

// Compose assembles the full result from already-computed passes. Callers
// that run the passes individually (for staged progress reporting) use this
// to finish without repeating them.
func Compose(text string, duration float64, fillers FillerAnalysis, confidence ConfidenceAnalysis) Result {
	wordCount := len(strings.Fields(text))
	clarity := ClarityScore(fillers.TotalCount)
	professionalism := ProfessionalismScore(confidence.HedgeWords)
	overall := OverallScore(confidence.Score, clarity, professionalism)

	return Result{
		WordCount:       wordCount,
		DurationSeconds: duration,
		SpeakingRateWPM: SpeakingRate(wordCount, duration),
		Fillers:         fillers,
		Confidence:      confidence,
		ClarityScore:    clarity,
		Professionalism: professionalism,
		OverallScore:    overall,
		Grade:           Grade(float64(overall)),
		Readiness:       readiness(fillers, confidence, clarity),
		Strengths:       strengths(fillers.TotalCount, confidence.Score, wordCount),
		Improvements:    improvements(fillers.TotalCount, confidence.Score, wordCount),
		Recommendations: Recommendations(fillers.TotalCount, confidence.Score, wordCount, confidence.HedgeWords),
	}
}

func readiness(fillers FillerAnalysis, confidence ConfidenceAnalysis, clarity int) Readiness {
	level := "beginner"
	switch {
	case fillers.TotalCount < 2 && confidence.Score > 80:
		level = "advanced"
	case fillers.TotalCount < 5 && confidence.Score > 60:
		level = "intermediate"
	}

	gaps := make([]string, 0, 2)
	if fillers.TotalCount > 3 {
		gaps = append(gaps, "filler word usage")
	}
	if confidence.Score < 70 {
		gaps = append(gaps, "confidence in delivery")
	}

	return Readiness{
		Score:   int(math.Round((confidence.Score + float64(clarity)) / 2)),
		Level:   level,
		KeyGaps: gaps,
	}
}

func strengths(fillerCount int, confidenceScore float64, wordCount int) []string {
	out := make([]string, 0, 3)
	if fillerCount < 3 {
		out = append(out, "Demonstrates ability to communicate ideas clearly")
	} else {
		out = append(out, "Shows engagement in the conversation")
	}
	if confidenceScore > 60 {
		out = append(out, "Uses appropriate professional language")
	} else {
		out = append(out, "Maintains respectful communication tone")
	}
	if wordCount > 75 {
		out = append(out, "Provides thoughtful responses")
	} else {
		out = append(out, "Shows willingness to participate")
	}
	return out
}

func improvements(fillerCount int, confidenceScore float64, wordCount int) []string {
	out := make([]string, 0, 3)
	if fillerCount > 2 {
		out = append(out, fmt.Sprintf("Reduce filler word usage (currently %d instances)", fillerCount))
	} else {
		out = append(out, "Maintain current speech clarity")
	}
	if confidenceScore < 70 {
		out = append(out, fmt.Sprintf("Increase confidence in language (current score: %.0f)", confidenceScore))
	} else {
		out = append(out, "Continue building on strong communication foundation")
	}
	if wordCount < 100 {
		out = append(out, "Provide more detailed responses with specific examples")
	} else {
		out = append(out, "Maintain good response length")
	}
	return out
}
