package speech

import (
	"regexp"
	"strings"
)

// Confidence assessments.
const (
	AssessmentHigh   = "high"
	AssessmentMedium = "medium"
	AssessmentLow    = "low"
)

var confidentPhrases = []*regexp.Regexp{
	regexp.MustCompile(`\bi am confident\b`),
	regexp.MustCompile(`\bi believe\b`),
	regexp.MustCompile(`\bi know\b`),
	regexp.MustCompile(`\bclearly\b`),
	regexp.MustCompile(`\bobviously\b`),
	regexp.MustCompile(`\bdefinitely\b`),
	regexp.MustCompile(`\bcertainly\b`),
	regexp.MustCompile(`\bwithout a doubt\b`),
}

var uncertainPhrases = []*regexp.Regexp{
	regexp.MustCompile(`\bi think\b`),
	regexp.MustCompile(`\bmaybe\b`),
	regexp.MustCompile(`\bperhaps\b`),
	regexp.MustCompile(`\bi guess\b`),
	regexp.MustCompile(`\bkind of\b`),
	regexp.MustCompile(`\bsort of\b`),
	regexp.MustCompile(`\bi'm not sure\b`),
	regexp.MustCompile(`\bprobably\b`),
}

var hedgeWords = []*regexp.Regexp{
	regexp.MustCompile(`\bquite\b`),
	regexp.MustCompile(`\brather\b`),
	regexp.MustCompile(`\bsomewhat\b`),
	regexp.MustCompile(`\ba bit\b`),
	regexp.MustCompile(`\ba little\b`),
	regexp.MustCompile(`\bfairly\b`),
}

// ConfidenceAnalysis is the confidence-language pass over a transcript.
type ConfidenceAnalysis struct {
	Score            float64 `json:"score"`
	ConfidentPhrases int     `json:"confidentPhrases"`
	UncertainPhrases int     `json:"uncertainPhrases"`
	HedgeWords       int     `json:"hedgeWords"`
	Ratio            float64 `json:"ratio"`
	WordsAnalyzed    int     `json:"wordsAnalyzed"`
	Assessment       string  `json:"assessment"`
}

// AnalyzeConfidence scores the language by counting confident, uncertain
// and hedging phrases: 50 + confident*10 - uncertain*5 - hedges*3, clamped
// to [0, 100].
func AnalyzeConfidence(text string) ConfidenceAnalysis {
	lower := strings.ToLower(text)

	confident := countMatches(lower, confidentPhrases)
	uncertain := countMatches(lower, uncertainPhrases)
	hedges := countMatches(lower, hedgeWords)

	score := 50 + float64(confident)*10 - float64(uncertain)*5 - float64(hedges)*3
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	assessment := AssessmentLow
	switch {
	case score > 75:
		assessment = AssessmentHigh
	case score > 50:
		assessment = AssessmentMedium
	}

	denom := uncertain
	if denom < 1 {
		denom = 1
	}

	return ConfidenceAnalysis{
		Score:            round1(score),
		ConfidentPhrases: confident,
		UncertainPhrases: uncertain,
		HedgeWords:       hedges,
		Ratio:            round2(float64(confident) / float64(denom)),
		WordsAnalyzed:    len(strings.Fields(text)),
		Assessment:       assessment,
	}
}

func countMatches(lower string, patterns []*regexp.Regexp) int {
	total := 0
	for _, re := range patterns {
		total += len(re.FindAllStringIndex(lower, -1))
	}
	return total
}
