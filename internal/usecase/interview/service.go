package interview

import (
	"context"

	"github.com/google/uuid"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// Service defines the interface for interview use case
type Service interface {
	// Ingest stores a finished mock-interview transcript and queues its
	// analysis
	Ingest(ctx context.Context, input IngestInput) (*entities.Interview, *entities.AnalysisJob, error)

	// Get retrieves an interview owned by the user
	Get(ctx context.Context, userID, interviewID uuid.UUID) (*entities.Interview, error)

	// List retrieves the user's interviews, newest first
	List(ctx context.Context, input ListInput) ([]*entities.Interview, int64, error)

	// Delete removes an interview with its analysis snapshot and jobs
	Delete(ctx context.Context, userID, interviewID uuid.UUID) error

	// GetAnalysis retrieves the full analysis snapshot for an interview
	GetAnalysis(ctx context.Context, userID, interviewID uuid.UUID) (*entities.Analysis, error)

	// UpdateDecision records whether the user keeps or discards the analysis
	UpdateDecision(ctx context.Context, userID, interviewID uuid.UUID, decision entities.AnalysisDecision) (*entities.Analysis, error)

	// ExportURL returns a presigned download URL for the archived snapshot
	ExportURL(ctx context.Context, userID, interviewID uuid.UUID) (string, error)
}

// JobEnqueuer is the slice of the analysis pipeline needed at ingest.
type JobEnqueuer interface {
	EnqueueJob(ctx context.Context, interview *entities.Interview) (*entities.AnalysisJob, error)
}

// Ensure InterviewService implements Service interface
var _ Service = (*InterviewService)(nil)
