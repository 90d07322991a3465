package speech

import (
	"regexp"
	"sort"
	"strings"
)

// Filler severity levels based on frequency per 100 words.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// fillerPattern pairs a canonical filler name with its detection pattern.
// Order is significant: per-type results are reported in table order.
type fillerPattern struct {
	word string
	re   *regexp.Regexp
}

var fillerPatterns = []fillerPattern{
	{"um", regexp.MustCompile(`\bum+\b`)},
	{"uh", regexp.MustCompile(`\buh+\b`)},
	{"like", regexp.MustCompile(`\blike\b`)},
	{"you know", regexp.MustCompile(`\byou know\b`)},
	{"so", regexp.MustCompile(`\bso\b`)},
	{"well", regexp.MustCompile(`\bwell\b`)},
	{"actually", regexp.MustCompile(`\bactually\b`)},
	{"basically", regexp.MustCompile(`\bbasically\b`)},
	{"literally", regexp.MustCompile(`\bliterally\b`)},
	{"totally", regexp.MustCompile(`\btotally\b`)},
	{"right", regexp.MustCompile(`\bright\?`)}, // "right?" as a filler
	{"ok", regexp.MustCompile(`\b(ok|okay)\b`)},
	{"and stuff", regexp.MustCompile(`\band stuff\b`)},
	{"or whatever", regexp.MustCompile(`\bor whatever\b`)},
}

// FillerOccurrence is one detected filler with an estimated timestamp.
type FillerOccurrence struct {
	Word       string  `json:"word"`
	Timestamp  float64 `json:"timestamp"`
	Confidence float64 `json:"confidence"`
}

// FillerTypeCount aggregates one filler word across the transcript.
type FillerTypeCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FillerAnalysis is the filler-word pass over a transcript.
type FillerAnalysis struct {
	TotalCount           int                `json:"totalCount"`
	ByType               []FillerTypeCount  `json:"byType"`
	Occurrences          []FillerOccurrence `json:"occurrences"`
	FrequencyPer100Words float64            `json:"frequencyPer100Words"`
	FrequencyPerMinute   float64            `json:"frequencyPerMinute"`
	Severity             string             `json:"severity"`
}

// AnalyzeFillerWords counts filler words and estimates where in the
// recording each one occurred. Timestamps are interpolated from word
// position: position/wordCount x duration, or 0.5s per word when the
// duration is unknown.
func AnalyzeFillerWords(text string, duration float64) FillerAnalysis {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	analysis := FillerAnalysis{
		ByType:      make([]FillerTypeCount, 0, len(fillerPatterns)),
		Occurrences: make([]FillerOccurrence, 0),
		Severity:    SeverityLow,
	}

	for _, p := range fillerPatterns {
		matches := p.re.FindAllStringIndex(lower, -1)
		if len(matches) == 0 {
			continue
		}

		analysis.ByType = append(analysis.ByType, FillerTypeCount{Word: p.word, Count: len(matches)})
		analysis.TotalCount += len(matches)

		for _, m := range matches {
			wordsBefore := len(strings.Fields(lower[:m[0]]))

			var ts float64
			if duration > 0 && wordCount > 0 {
				ts = float64(wordsBefore) / float64(wordCount) * duration
			} else {
				ts = float64(wordsBefore) * 0.5
			}

			analysis.Occurrences = append(analysis.Occurrences, FillerOccurrence{
				Word:       p.word,
				Timestamp:  round2(ts),
				Confidence: 0.9,
			})
		}
	}

	sort.SliceStable(analysis.Occurrences, func(i, j int) bool {
		return analysis.Occurrences[i].Timestamp < analysis.Occurrences[j].Timestamp
	})

	if wordCount > 0 {
		analysis.FrequencyPer100Words = round2(float64(analysis.TotalCount) / float64(wordCount) * 100)
	}
	if duration > 0 {
		analysis.FrequencyPerMinute = round2(float64(analysis.TotalCount) / (duration / 60))
	}

	switch {
	case analysis.FrequencyPer100Words > 8:
		analysis.Severity = SeverityHigh
	case analysis.FrequencyPer100Words > 4:
		analysis.Severity = SeverityMedium
	}

	return analysis
}
