package analytics

import (
	"math"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// EvaluateAchievements runs the fixed achievement rule table against the
// full interview history (oldest first). Every rule is stateless and
// recomputed per call.
func EvaluateAchievements(interviews []*entities.Interview) []Achievement {
	n := len(interviews)
	scores := overallScores(interviews)

	firstSteps := Achievement{
		ID:          "first_interview",
		Title:       "First Steps",
		Description: "Complete your first interview",
		Target:      1,
		Progress:    math.Min(float64(n), 1),
		Unlocked:    n >= 1,
	}

	consistentLearner := Achievement{
		ID:          "consistent_learner",
		Title:       "Consistent Learner",
		Description: "Complete 5 interviews",
		Target:      5,
		Progress:    math.Min(float64(n), 5),
		Unlocked:    n >= 5,
	}

	best := maxOf(scores)
	highScorer := Achievement{
		ID:          "high_scorer",
		Title:       "High Scorer",
		Description: "Score 80 or higher in an interview",
		Target:      80,
		Progress:    math.Min(best, 80),
		Unlocked:    best >= 80,
	}

	rate := float64(improvementRate(scores))
	onTheRise := Achievement{
		ID:          "on_the_rise",
		Title:       "On the Rise",
		Description: "Improve your average score by more than 15%",
		Target:      15,
		Progress:    math.Min(math.Max(rate, 0), 15),
		Unlocked:    n >= 3 && rate > 15,
	}

	recentFillers := recentFillerAverage(interviews)
	smoothTalker := Achievement{
		ID:          "smooth_talker",
		Title:       "Smooth Talker",
		Description: "Average fewer than 5 filler words across your last 3 interviews",
		Target:      5,
		Progress:    round2(recentFillers),
		Unlocked:    n >= 3 && recentFillers < 5,
	}

	return []Achievement{firstSteps, consistentLearner, highScorer, onTheRise, smoothTalker}
}

// recentFillerAverage averages filler-word counts over the last three
// records, or all of them when fewer exist.
func recentFillerAverage(interviews []*entities.Interview) float64 {
	n := len(interviews)
	if n == 0 {
		return 0
	}
	start := n - 3
	if start < 0 {
		start = 0
	}
	return windowAverage(interviews[start:], fillerCount)
}
