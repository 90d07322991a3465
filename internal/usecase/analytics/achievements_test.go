package analytics

import (
	"testing"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

func achievementByID(t *testing.T, achievements []Achievement, id string) Achievement {
	t.Helper()
	for _, a := range achievements {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %s not found", id)
	return Achievement{}
}

func historyOf(scores []float64, fillers []int) []*entities.Interview {
	interviews := make([]*entities.Interview, len(scores))
	for i := range scores {
		interviews[i] = completedInterview(baseDay.AddDate(0, 0, i), entities.InterviewAnalysis{
			OverallScore: scores[i],
			FillerWords:  entities.FillerWordsSummary{Count: fillers[i]},
		})
	}
	return interviews
}

func TestEvaluateAchievements_EmptyHistory(t *testing.T) {
	achievements := EvaluateAchievements(nil)

	if len(achievements) != 5 {
		t.Fatalf("expected 5 achievements, got %d", len(achievements))
	}
	for _, a := range achievements {
		if a.Unlocked {
			t.Errorf("achievement %s unlocked with empty history", a.ID)
		}
	}
	first := achievementByID(t, achievements, "first_interview")
	if first.Progress != 0 || first.Target != 1 {
		t.Errorf("unexpected first_interview progress: %+v", first)
	}
}

func TestEvaluateAchievements_ConsistentLearnerNeedsFive(t *testing.T) {
	four := historyOf([]float64{70, 70, 70, 70}, []int{9, 9, 9, 9})
	if achievementByID(t, EvaluateAchievements(four), "consistent_learner").Unlocked {
		t.Error("consistent_learner unlocked with 4 interviews")
	}

	five := historyOf([]float64{70, 70, 70, 70, 70}, []int{9, 9, 9, 9, 9})
	learner := achievementByID(t, EvaluateAchievements(five), "consistent_learner")
	if !learner.Unlocked {
		t.Error("consistent_learner locked with 5 interviews")
	}
	if learner.Progress != 5 {
		t.Errorf("expected progress 5, got %.0f", learner.Progress)
	}
}

func TestEvaluateAchievements_FirstAndHighScorer(t *testing.T) {
	achievements := EvaluateAchievements(historyOf([]float64{80}, []int{0}))

	if !achievementByID(t, achievements, "first_interview").Unlocked {
		t.Error("first_interview locked after one interview")
	}
	high := achievementByID(t, achievements, "high_scorer")
	if !high.Unlocked {
		t.Error("high_scorer locked with a score of 80")
	}
	if high.Progress != 80 {
		t.Errorf("expected progress 80, got %.0f", high.Progress)
	}
	if achievementByID(t, achievements, "on_the_rise").Unlocked {
		t.Error("on_the_rise requires at least 3 interviews")
	}
	if achievementByID(t, achievements, "smooth_talker").Unlocked {
		t.Error("smooth_talker requires at least 3 interviews")
	}
}

func TestEvaluateAchievements_OnTheRise(t *testing.T) {
	// First half averages 50, second half 80: improvement rate 60%.
	achievements := EvaluateAchievements(historyOf(
		[]float64{50, 50, 80, 80},
		[]int{9, 9, 9, 9},
	))

	rise := achievementByID(t, achievements, "on_the_rise")
	if !rise.Unlocked {
		t.Error("on_the_rise locked despite 60% improvement")
	}
	if rise.Progress != 15 {
		t.Errorf("expected progress capped at target 15, got %.0f", rise.Progress)
	}
}

func TestEvaluateAchievements_SmoothTalker(t *testing.T) {
	noisy := historyOf([]float64{70, 70, 70}, []int{10, 10, 10})
	talker := achievementByID(t, EvaluateAchievements(noisy), "smooth_talker")
	if talker.Unlocked {
		t.Error("smooth_talker unlocked with 10 fillers per interview")
	}
	if talker.Progress != 10 {
		t.Errorf("expected progress 10, got %.1f", talker.Progress)
	}

	// Only the last three interviews count.
	smooth := historyOf([]float64{70, 70, 70, 70}, []int{20, 4, 4, 4})
	if !achievementByID(t, EvaluateAchievements(smooth), "smooth_talker").Unlocked {
		t.Error("smooth_talker locked despite recent average of 4")
	}
}
