package errors

import "errors"

// Pipeline errors
var (
	ErrWorkerPoolAlreadyRunning = errors.New("worker pool already running")
	ErrWorkerPoolNotRunning     = errors.New("worker pool not running")
	ErrJobAlreadyClaimed        = errors.New("job already claimed by another worker")
)

// Ingest errors
var (
	ErrEmptyTranscript   = errors.New("transcript is empty")
	ErrTranscriptTooLong = errors.New("transcript exceeds maximum length")
	ErrInvalidDuration   = errors.New("duration must not be negative")
)

// Export errors
var (
	ErrSnapshotNotArchived = errors.New("analysis snapshot has not been archived")
)

// Analytics errors
var (
	ErrInvalidTimeframe = errors.New("invalid timeframe")
)
