package speech

import "testing"

func TestClarityScore(t *testing.T) {
	cases := []struct {
		fillers int
		want    int
	}{
		{0, 100},
		{3, 85},
		{10, 50},
		{25, 50}, // floored
	}
	for _, c := range cases {
		if got := ClarityScore(c.fillers); got != c.want {
			t.Fatalf("ClarityScore(%d): expected %d got %d", c.fillers, c.want, got)
		}
	}
}

func TestProfessionalismScore(t *testing.T) {
	cases := []struct {
		hedges int
		want   int
	}{
		{0, 90},
		{3, 75},
		{6, 60},
		{12, 60}, // floored
	}
	for _, c := range cases {
		if got := ProfessionalismScore(c.hedges); got != c.want {
			t.Fatalf("ProfessionalismScore(%d): expected %d got %d", c.hedges, c.want, got)
		}
	}
}

func TestOverallScore(t *testing.T) {
	if got := OverallScore(80, 90, 85); got != 85 {
		t.Fatalf("expected 85 got %d", got)
	}
	// 250.5 / 3 rounds up
	if got := OverallScore(60.5, 100, 90); got != 84 {
		t.Fatalf("expected 84 got %d", got)
	}
}

func TestSpeakingRate(t *testing.T) {
	if got := SpeakingRate(150, 60); got != 150 {
		t.Fatalf("expected 150 wpm got %v", got)
	}
	if got := SpeakingRate(75, 30); got != 150 {
		t.Fatalf("expected 150 wpm got %v", got)
	}
	if got := SpeakingRate(47, 19); got != 148.4 {
		t.Fatalf("expected 148.4 wpm got %v", got)
	}
	if got := SpeakingRate(100, 0); got != 0 {
		t.Fatalf("expected 0 wpm for unknown duration got %v", got)
	}
}

func TestGrade(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{85, "A"},
		{84.9, "A-"},
		{80, "A-"},
		{75, "B+"},
		{70, "B"},
		{65, "B-"},
		{60, "C+"},
		{55, "C"},
		{50, "C-"},
		{49.9, "D"},
		{40, "D"},
		{39.9, "F"},
		{0, "F"},
	}
	for _, c := range cases {
		if got := Grade(c.score); got != c.want {
			t.Fatalf("Grade(%v): expected %s got %s", c.score, c.want, got)
		}
	}
}

func TestRecommendations(t *testing.T) {
	// Strong performance falls back to the standing suggestions.
	defaults := Recommendations(0, 85, 200, 0)
	if len(defaults) != 3 {
		t.Fatalf("expected 3 default recommendations got %d", len(defaults))
	}

	// Every trigger firing at once.
	all := Recommendations(5, 60, 40, 3)
	if len(all) != 4 {
		t.Fatalf("expected 4 recommendations got %d: %v", len(all), all)
	}
}
