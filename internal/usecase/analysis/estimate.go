package analysis

import "time"

// Stage weights for the processing-time estimate, in seconds of work per
// minute of interview.
const (
	stageWeightFiller     = 0.1
	stageWeightTone       = 0.2
	stageWeightConfidence = 0.3
	stageWeightCompose    = 0.1

	defaultDurationSeconds = 60
)

// EstimateSeconds predicts how long a speech-analysis job will take for an
// interview of the given length. Unknown durations assume one minute.
func EstimateSeconds(durationSeconds int) int {
	if durationSeconds <= 0 {
		durationSeconds = defaultDurationSeconds
	}
	minutes := float64(durationSeconds) / 60
	total := (stageWeightFiller + stageWeightTone + stageWeightConfidence + stageWeightCompose) * minutes
	return int(total)
}

// RemainingSeconds projects the time left on a running job from its elapsed
// time and progress. Jobs that have not reported progress fall back to the
// original estimate.
func RemainingSeconds(elapsed time.Duration, progress float64, estimatedSeconds int) int {
	if progress <= 0 || elapsed <= 0 {
		return estimatedSeconds
	}
	remaining := elapsed.Seconds()/progress - elapsed.Seconds()
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining)
}
