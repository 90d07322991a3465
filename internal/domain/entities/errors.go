package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidTier       = errors.New("invalid tier")

	// Interview errors
	ErrInterviewNotFound = errors.New("interview not found")
	ErrAnalysisNotFound  = errors.New("analysis not found")
	ErrInvalidDecision   = errors.New("invalid decision")

	// Job errors
	ErrJobNotFound       = errors.New("job not found")
	ErrJobNotCancellable = errors.New("job cannot be cancelled")
	ErrJobNotRetryable   = errors.New("job cannot be retried")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
