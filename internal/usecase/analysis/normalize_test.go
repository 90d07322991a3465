package analysis

import (
	"reflect"
	"testing"

	"gorm.io/datatypes"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/pkg/speech"
)

func engineResult() speech.Result {
	return speech.Result{
		WordCount:       150,
		DurationSeconds: 90,
		SpeakingRateWPM: 100,
		Fillers: speech.FillerAnalysis{
			TotalCount: 6,
			ByType: []speech.FillerTypeCount{
				{Word: "um", Count: 4},
				{Word: "like", Count: 2},
			},
			FrequencyPer100Words: 4.0,
			FrequencyPerMinute:   4.0,
			Severity:             "moderate",
		},
		Confidence: speech.ConfidenceAnalysis{
			Score:      85,
			Assessment: "high",
		},
		ClarityScore:    78,
		OverallScore:    81,
		Grade:           "B",
		Strengths:       []string{"Strong, assertive language"},
		Improvements:    []string{"Reduce filler words"},
		Recommendations: []string{"Record yourself and count fillers"},
	}
}

func TestNormalize_TonalityMapping(t *testing.T) {
	got := Normalize(engineResult(), nil)

	if got.Tonality.Confident != 0.85 {
		t.Errorf("Tonality.Confident = %v, want 0.85", got.Tonality.Confident)
	}
	if got.Tonality.Uncertain != 0.15 {
		t.Errorf("Tonality.Uncertain = %v, want 0.15", got.Tonality.Uncertain)
	}
	if got.Tonality.Assessment != "high" {
		t.Errorf("Tonality.Assessment = %q, want %q", got.Tonality.Assessment, "high")
	}
	if got.ConfidenceScore != 85 {
		t.Errorf("ConfidenceScore = %v, want 85", got.ConfidenceScore)
	}
}

func TestNormalize_EngineFields(t *testing.T) {
	got := Normalize(engineResult(), nil)

	if got.OverallScore != 81 {
		t.Errorf("OverallScore = %v, want 81", got.OverallScore)
	}
	if got.ClarityScore != 78 {
		t.Errorf("ClarityScore = %v, want 78", got.ClarityScore)
	}
	if got.FillerWords.Count != 6 {
		t.Errorf("FillerWords.Count = %d, want 6", got.FillerWords.Count)
	}
	if want := []string{"um", "like"}; !reflect.DeepEqual(got.FillerWords.Words, want) {
		t.Errorf("FillerWords.Words = %v, want %v", got.FillerWords.Words, want)
	}
	if got.FillerWords.Severity != "moderate" {
		t.Errorf("FillerWords.Severity = %q, want %q", got.FillerWords.Severity, "moderate")
	}
	if got.SpeakingRateWPM != 100 {
		t.Errorf("SpeakingRateWPM = %v, want 100", got.SpeakingRateWPM)
	}
	if got.WordCount != 150 {
		t.Errorf("WordCount = %d, want 150", got.WordCount)
	}
	if got.Grade != "B" {
		t.Errorf("Grade = %q, want %q", got.Grade, "B")
	}
}

func TestNormalize_ClientAssessments(t *testing.T) {
	bodyScore := 75.0
	contentScore := 82.0
	snapshot := &entities.Analysis{
		BodyLanguageScore:        &bodyScore,
		BodyLanguageObservations: datatypes.JSON(`["good posture","steady eye contact"]`),
		ContentScore:             &contentScore,
	}

	got := Normalize(engineResult(), snapshot)

	if got.BodyLanguage.Score != 75 {
		t.Errorf("BodyLanguage.Score = %v, want 75", got.BodyLanguage.Score)
	}
	if want := []string{"good posture", "steady eye contact"}; !reflect.DeepEqual(got.BodyLanguage.Observations, want) {
		t.Errorf("BodyLanguage.Observations = %v, want %v", got.BodyLanguage.Observations, want)
	}
	if got.ContentScore != 82 {
		t.Errorf("ContentScore = %v, want 82", got.ContentScore)
	}
}

func TestNormalize_MissingAssessmentsDefaultToZero(t *testing.T) {
	got := Normalize(engineResult(), &entities.Analysis{})

	if got.BodyLanguage.Score != 0 {
		t.Errorf("BodyLanguage.Score = %v, want 0", got.BodyLanguage.Score)
	}
	if got.BodyLanguage.Observations != nil {
		t.Errorf("BodyLanguage.Observations = %v, want nil", got.BodyLanguage.Observations)
	}
	if got.ContentScore != 0 {
		t.Errorf("ContentScore = %v, want 0", got.ContentScore)
	}
}

func TestNormalize_MalformedObservationsAreIgnored(t *testing.T) {
	snapshot := &entities.Analysis{
		BodyLanguageObservations: datatypes.JSON(`{"not":"a list"}`),
	}

	got := Normalize(engineResult(), snapshot)

	if got.BodyLanguage.Observations != nil {
		t.Errorf("BodyLanguage.Observations = %v, want nil", got.BodyLanguage.Observations)
	}
}
