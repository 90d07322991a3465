package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// AnalysisRepository defines persistence operations for analysis snapshots
type AnalysisRepository interface {
	// Create creates a new analysis snapshot
	Create(ctx context.Context, analysis *entities.Analysis) error

	// FindByID retrieves an analysis by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Analysis, error)

	// FindByInterviewID retrieves the analysis for an interview
	FindByInterviewID(ctx context.Context, interviewID uuid.UUID) (*entities.Analysis, error)

	// Update updates an analysis snapshot
	Update(ctx context.Context, analysis *entities.Analysis) error

	// UpdateDecision updates only the decision field
	UpdateDecision(ctx context.Context, interviewID uuid.UUID, decision entities.AnalysisDecision) error

	// SetStorageKey records the archived object key
	SetStorageKey(ctx context.Context, analysisID uuid.UUID, key string) error

	// DeleteByInterviewID removes the analysis for an interview
	DeleteByInterviewID(ctx context.Context, interviewID uuid.UUID) error
}
