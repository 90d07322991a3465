package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/domain/repositories"
)

// interviewRepository implements the InterviewRepository interface
type interviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *gorm.DB) repositories.InterviewRepository {
	return &interviewRepository{db: db}
}

// Create creates a new interview
func (r *interviewRepository) Create(ctx context.Context, interview *entities.Interview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

// FindByID retrieves an interview by its ID
func (r *interviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	var interview entities.Interview
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&interview).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// FindByIDForUser retrieves an interview owned by the given user
func (r *interviewRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Interview, error) {
	var interview entities.Interview
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&interview).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// Update updates an existing interview
func (r *interviewRepository) Update(ctx context.Context, interview *entities.Interview) error {
	return r.db.WithContext(ctx).Save(interview).Error
}

// UpdateStatus updates the interview status
func (r *interviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InterviewStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// Delete removes an interview
func (r *interviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Interview{}, id).Error
}

// List retrieves interviews with filters and pagination
func (r *interviewRepository) List(ctx context.Context, filters repositories.InterviewFilters) ([]*entities.Interview, int64, error) {
	var interviews []*entities.Interview
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Interview{})

	// Apply filters
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Since != nil {
		query = query.Where("created_at >= ?", *filters.Since)
	}
	if filters.Search != "" {
		query = query.Where("title ILIKE ?", fmt.Sprintf("%%%s%%", filters.Search))
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting
	sortBy := "created_at"
	if filters.SortBy != "" {
		sortBy = filters.SortBy
	}
	sortOrder := "DESC"
	if filters.SortOrder != "" {
		sortOrder = filters.SortOrder
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&interviews).Error
	return interviews, total, err
}

// FindCompletedSince retrieves completed interviews for analytics, oldest
// first. Interviews whose analysis was discarded are excluded.
func (r *interviewRepository) FindCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entities.Interview, error) {
	var interviews []*entities.Interview
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND created_at >= ?", userID, entities.InterviewStatusCompleted, since).
		Where("NOT EXISTS (SELECT 1 FROM analyses WHERE analyses.interview_id = interviews.id AND analyses.decision = ?)", entities.DecisionDiscarded).
		Order("created_at ASC").
		Find(&interviews).Error

	if err != nil {
		return nil, err
	}
	return interviews, nil
}

// CountByUser counts all interviews belonging to a user
func (r *interviewRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Interview{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
