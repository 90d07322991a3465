package speech

import "testing"

func TestAnalyzeConfidence_ConfidentLanguage(t *testing.T) {
	got := AnalyzeConfidence("I am confident this approach works. Clearly we know the requirements. Definitely ready.")

	if got.ConfidentPhrases != 3 {
		t.Fatalf("expected 3 confident phrases got %d", got.ConfidentPhrases)
	}
	if got.UncertainPhrases != 0 || got.HedgeWords != 0 {
		t.Fatalf("expected no uncertain/hedge matches got %d/%d", got.UncertainPhrases, got.HedgeWords)
	}
	if got.Score != 80 {
		t.Fatalf("expected score 80 got %v", got.Score)
	}
	if got.Assessment != AssessmentHigh {
		t.Fatalf("expected high assessment got %s", got.Assessment)
	}
	if got.Ratio != 3 {
		t.Fatalf("expected ratio 3 got %v", got.Ratio)
	}
}

func TestAnalyzeConfidence_MixedLanguage(t *testing.T) {
	got := AnalyzeConfidence("I think it is quite good, maybe even great, but I am confident overall.")

	if got.ConfidentPhrases != 1 || got.UncertainPhrases != 2 || got.HedgeWords != 1 {
		t.Fatalf("unexpected counts: %d confident, %d uncertain, %d hedges",
			got.ConfidentPhrases, got.UncertainPhrases, got.HedgeWords)
	}
	// 50 + 10 - 10 - 3
	if got.Score != 47 {
		t.Fatalf("expected score 47 got %v", got.Score)
	}
	if got.Assessment != AssessmentLow {
		t.Fatalf("expected low assessment got %s", got.Assessment)
	}
	if got.Ratio != 0.5 {
		t.Fatalf("expected ratio 0.5 got %v", got.Ratio)
	}
}

func TestAnalyzeConfidence_ScoreClamping(t *testing.T) {
	low := AnalyzeConfidence("maybe maybe maybe maybe maybe maybe maybe maybe maybe maybe maybe maybe")
	if low.Score != 0 {
		t.Fatalf("expected score clamped to 0 got %v", low.Score)
	}

	high := AnalyzeConfidence("definitely definitely definitely definitely definitely definitely definitely")
	if high.Score != 100 {
		t.Fatalf("expected score clamped to 100 got %v", high.Score)
	}
}

func TestAnalyzeConfidence_AssessmentBoundaries(t *testing.T) {
	// 50 + 30 - 5 = 75, not above the high threshold
	at75 := AnalyzeConfidence("definitely definitely definitely maybe")
	if at75.Score != 75 || at75.Assessment != AssessmentMedium {
		t.Fatalf("expected 75/medium got %v/%s", at75.Score, at75.Assessment)
	}

	// 50 + 10 - 10 = 50, not above the medium threshold
	at50 := AnalyzeConfidence("clearly maybe perhaps")
	if at50.Score != 50 || at50.Assessment != AssessmentLow {
		t.Fatalf("expected 50/low got %v/%s", at50.Score, at50.Assessment)
	}
}

func TestAnalyzeConfidence_EmptyText(t *testing.T) {
	got := AnalyzeConfidence("")

	if got.Score != 50 {
		t.Fatalf("expected baseline score 50 got %v", got.Score)
	}
	if got.Assessment != AssessmentLow {
		t.Fatalf("expected low assessment got %s", got.Assessment)
	}
	if got.WordsAnalyzed != 0 {
		t.Fatalf("expected 0 words analyzed got %d", got.WordsAnalyzed)
	}
}
