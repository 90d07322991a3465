package analysis

import (
	"encoding/json"
	"math"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/pkg/speech"
)

// Normalize projects raw engine output plus the ingest-time client
// assessments into the summary embedded on the interview row. Visual and
// content scores come from the client or default to zero: the engine only
// sees text and never invents scores for what it cannot observe.
func Normalize(result speech.Result, snapshot *entities.Analysis) entities.InterviewAnalysis {
	words := make([]string, 0, len(result.Fillers.ByType))
	for _, ft := range result.Fillers.ByType {
		words = append(words, ft.Word)
	}

	confident := round2(result.Confidence.Score / 100)

	normalized := entities.InterviewAnalysis{
		OverallScore: float64(result.OverallScore),
		FillerWords: entities.FillerWordsSummary{
			Count:       result.Fillers.TotalCount,
			Words:       words,
			PerMinute:   result.Fillers.FrequencyPerMinute,
			Per100Words: result.Fillers.FrequencyPer100Words,
			Severity:    result.Fillers.Severity,
		},
		Tonality: entities.TonalitySummary{
			Confident:  confident,
			Uncertain:  round2(1 - confident),
			Assessment: result.Confidence.Assessment,
		},
		ClarityScore:    float64(result.ClarityScore),
		ConfidenceScore: result.Confidence.Score,
		SpeakingRateWPM: result.SpeakingRateWPM,
		WordCount:       result.WordCount,
		Grade:           result.Grade,
		Strengths:       result.Strengths,
		Improvements:    result.Improvements,
		Recommendations: result.Recommendations,
	}

	if snapshot != nil {
		if snapshot.ContentScore != nil {
			normalized.ContentScore = *snapshot.ContentScore
		}
		if snapshot.BodyLanguageScore != nil {
			normalized.BodyLanguage.Score = *snapshot.BodyLanguageScore
		}
		if len(snapshot.BodyLanguageObservations) > 0 {
			var observations []string
			if err := json.Unmarshal(snapshot.BodyLanguageObservations, &observations); err == nil {
				normalized.BodyLanguage.Observations = observations
			}
		}
	}

	return normalized
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
