package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/domain/repositories"
)

// analysisRepository implements the AnalysisRepository interface
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) repositories.AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create creates a new analysis snapshot
func (r *analysisRepository) Create(ctx context.Context, analysis *entities.Analysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

// FindByID retrieves an analysis by its ID
func (r *analysisRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Analysis, error) {
	var analysis entities.Analysis
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&analysis).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

// FindByInterviewID retrieves the analysis for an interview
func (r *analysisRepository) FindByInterviewID(ctx context.Context, interviewID uuid.UUID) (*entities.Analysis, error) {
	var analysis entities.Analysis
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		First(&analysis).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

// Update updates an analysis snapshot
func (r *analysisRepository) Update(ctx context.Context, analysis *entities.Analysis) error {
	return r.db.WithContext(ctx).Save(analysis).Error
}

// UpdateDecision updates only the decision field
func (r *analysisRepository) UpdateDecision(ctx context.Context, interviewID uuid.UUID, decision entities.AnalysisDecision) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Analysis{}).
		Where("interview_id = ?", interviewID).
		Updates(map[string]interface{}{
			"decision":   decision,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrAnalysisNotFound
	}
	return nil
}

// SetStorageKey records the archived object key
func (r *analysisRepository) SetStorageKey(ctx context.Context, analysisID uuid.UUID, key string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Analysis{}).
		Where("id = ?", analysisID).
		Updates(map[string]interface{}{
			"storage_key": key,
			"updated_at":  time.Now(),
		}).Error
}

// DeleteByInterviewID removes the analysis for an interview
func (r *analysisRepository) DeleteByInterviewID(ctx context.Context, interviewID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Delete(&entities.Analysis{}).Error
}
