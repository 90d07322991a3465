package analytics

import (
	"time"

	usecaseErrors "github.com/interviewai-team/interviewai-backend/internal/usecase/errors"
)

// Timeframe selects how far back the aggregation window reaches.
type Timeframe string

const (
	TimeframeOneMonth    Timeframe = "1month"
	TimeframeThreeMonths Timeframe = "3months"
	TimeframeSixMonths   Timeframe = "6months"
	TimeframeOneYear     Timeframe = "1year"
)

var timeframeDays = map[Timeframe]int{
	TimeframeOneMonth:    30,
	TimeframeThreeMonths: 90,
	TimeframeSixMonths:   180,
	TimeframeOneYear:     365,
}

// ParseTimeframe validates a timeframe query value. An empty value falls
// back to the three-month default; anything else unknown is rejected.
func ParseTimeframe(value string) (Timeframe, error) {
	if value == "" {
		return TimeframeThreeMonths, nil
	}
	tf := Timeframe(value)
	if _, ok := timeframeDays[tf]; !ok {
		return "", usecaseErrors.ErrInvalidTimeframe
	}
	return tf, nil
}

// Days returns the window length in days.
func (t Timeframe) Days() int {
	if days, ok := timeframeDays[t]; ok {
		return days
	}
	return timeframeDays[TimeframeThreeMonths]
}

// CutoffFrom returns the earliest creation time included in the window.
func (t Timeframe) CutoffFrom(now time.Time) time.Time {
	return now.Add(-time.Duration(t.Days()) * 24 * time.Hour)
}

func (t Timeframe) String() string {
	return string(t)
}
