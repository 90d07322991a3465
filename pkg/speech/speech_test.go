package speech

import "testing"

func TestAnalyze_CleanDelivery(t *testing.T) {
	got := Analyze("I am confident this project will succeed because preparation matters.", 30)

	if got.WordCount != 10 {
		t.Fatalf("expected 10 words got %d", got.WordCount)
	}
	if got.Fillers.TotalCount != 0 {
		t.Fatalf("expected no fillers got %d", got.Fillers.TotalCount)
	}
	if got.Confidence.Score != 60 {
		t.Fatalf("expected confidence 60 got %v", got.Confidence.Score)
	}
	if got.ClarityScore != 100 || got.Professionalism != 90 {
		t.Fatalf("expected clarity 100 / professionalism 90 got %d/%d", got.ClarityScore, got.Professionalism)
	}
	// round((60 + 100 + 90) / 3)
	if got.OverallScore != 83 {
		t.Fatalf("expected overall 83 got %d", got.OverallScore)
	}
	if got.Grade != "A-" {
		t.Fatalf("expected grade A- got %s", got.Grade)
	}
	if got.SpeakingRateWPM != 20 {
		t.Fatalf("expected 20 wpm got %v", got.SpeakingRateWPM)
	}
	if len(got.Strengths) != 3 || len(got.Improvements) != 3 {
		t.Fatalf("expected 3 strengths and 3 improvements got %d/%d", len(got.Strengths), len(got.Improvements))
	}
}

func TestAnalyze_HesitantDelivery(t *testing.T) {
	text := "Um, so I think we should, like, maybe try a bit of a different approach, you know? It is quite hard."
	got := Analyze(text, 60)

	if got.Fillers.TotalCount != 4 {
		t.Fatalf("expected 4 fillers got %d (%+v)", got.Fillers.TotalCount, got.Fillers.ByType)
	}
	if got.Confidence.UncertainPhrases != 2 || got.Confidence.HedgeWords != 2 {
		t.Fatalf("expected 2 uncertain / 2 hedges got %d/%d",
			got.Confidence.UncertainPhrases, got.Confidence.HedgeWords)
	}
	// 50 - 2*5 - 2*3
	if got.Confidence.Score != 34 {
		t.Fatalf("expected confidence 34 got %v", got.Confidence.Score)
	}
	if got.ClarityScore != 80 || got.Professionalism != 80 {
		t.Fatalf("expected clarity 80 / professionalism 80 got %d/%d", got.ClarityScore, got.Professionalism)
	}
	if got.OverallScore != 65 || got.Grade != "B-" {
		t.Fatalf("expected 65/B- got %d/%s", got.OverallScore, got.Grade)
	}

	if got.Readiness.Level != "beginner" {
		t.Fatalf("expected beginner level got %s", got.Readiness.Level)
	}
	if len(got.Readiness.KeyGaps) != 2 {
		t.Fatalf("expected both key gaps got %v", got.Readiness.KeyGaps)
	}
	if len(got.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations got %d: %v", len(got.Recommendations), got.Recommendations)
	}
}

func TestAnalyze_ReadinessLevels(t *testing.T) {
	advanced := Analyze("I am confident and clearly, definitely certain without a doubt.", 20)
	if advanced.Readiness.Level != "advanced" {
		t.Fatalf("expected advanced got %s (confidence %v)", advanced.Readiness.Level, advanced.Confidence.Score)
	}
	if len(advanced.Readiness.KeyGaps) != 0 {
		t.Fatalf("expected no key gaps got %v", advanced.Readiness.KeyGaps)
	}

	intermediate := Analyze("I believe this clearly works.", 20)
	if intermediate.Readiness.Level != "intermediate" {
		t.Fatalf("expected intermediate got %s (confidence %v)", intermediate.Readiness.Level, intermediate.Confidence.Score)
	}
	// round((70 + 100) / 2)
	if intermediate.Readiness.Score != 85 {
		t.Fatalf("expected readiness 85 got %d", intermediate.Readiness.Score)
	}
}
