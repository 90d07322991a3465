package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// InterviewRepository defines the interface for interview data access
type InterviewRepository interface {
	// Create creates a new interview
	Create(ctx context.Context, interview *entities.Interview) error

	// FindByID retrieves an interview by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error)

	// FindByIDForUser retrieves an interview owned by the given user
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Interview, error)

	// Update updates an existing interview
	Update(ctx context.Context, interview *entities.Interview) error

	// UpdateStatus updates the interview status
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InterviewStatus) error

	// Delete removes an interview and its analysis artifacts
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves interviews with filters and pagination
	List(ctx context.Context, filters InterviewFilters) ([]*entities.Interview, int64, error)

	// FindCompletedSince retrieves completed interviews for a user created on
	// or after the cutoff, oldest first, excluding interviews whose analysis
	// was discarded. This is the analytics read path.
	FindCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entities.Interview, error)

	// CountByUser counts all interviews belonging to a user
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// InterviewFilters represents filter options for listing interviews
type InterviewFilters struct {
	UserID    *uuid.UUID
	Status    *entities.InterviewStatus
	Since     *time.Time
	Search    string // Search in title
	Limit     int
	Offset    int
	SortBy    string // "created_at", "completed_at", "title"
	SortOrder string // "asc", "desc"
}
