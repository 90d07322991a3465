package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// AnalysisJobRepository handles analysis job data operations
type AnalysisJobRepository struct {
	db *gorm.DB
}

// NewAnalysisJobRepository creates a new analysis job repository
func NewAnalysisJobRepository(db *gorm.DB) *AnalysisJobRepository {
	return &AnalysisJobRepository{db: db}
}

// GetDB exposes the underlying connection for conditional updates
func (r *AnalysisJobRepository) GetDB() *gorm.DB {
	return r.db
}

// CreateJob creates a new analysis job
func (r *AnalysisJobRepository) CreateJob(ctx context.Context, job *entities.AnalysisJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// GetJobByID retrieves an analysis job by ID
func (r *AnalysisJobRepository) GetJobByID(ctx context.Context, jobID uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetJobByIDForUser retrieves an analysis job owned by the given user
func (r *AnalysisJobRepository) GetJobByIDForUser(ctx context.Context, jobID, userID uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", jobID, userID).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetLatestJobByInterviewID retrieves the latest analysis job for an interview
func (r *AnalysisJobRepository) GetLatestJobByInterviewID(ctx context.Context, interviewID uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("created_at DESC").
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// ListJobsByUser retrieves analysis jobs for a user, newest first. Pass an
// empty status to list all.
func (r *AnalysisJobRepository) ListJobsByUser(ctx context.Context, userID uuid.UUID, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error) {
	var jobs []entities.AnalysisJob
	if limit == 0 {
		limit = 50
	}
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListJobsByStatus retrieves all analysis jobs with a specific status
func (r *AnalysisJobRepository) ListJobsByStatus(ctx context.Context, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error) {
	var jobs []entities.AnalysisJob
	if limit == 0 {
		limit = 100
	}
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobsForProcessing retrieves jobs that are ready for a worker
func (r *AnalysisJobRepository) GetJobsForProcessing(ctx context.Context, limit int) ([]entities.AnalysisJob, error) {
	var jobs []entities.AnalysisJob
	if limit == 0 {
		limit = 10
	}
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []entities.AnalysisJobStatus{entities.JobStatusPending, entities.JobStatusRetrying}).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetFailedJobs retrieves jobs that failed and can still be retried
func (r *AnalysisJobRepository) GetFailedJobs(ctx context.Context, limit int) ([]entities.AnalysisJob, error) {
	var jobs []entities.AnalysisJob
	if limit == 0 {
		limit = 10
	}
	if err := r.db.WithContext(ctx).
		Where("status = ? AND retry_count < max_retries", entities.JobStatusFailed).
		Order("updated_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJob updates an analysis job
func (r *AnalysisJobRepository) UpdateJob(ctx context.Context, job *entities.AnalysisJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", job.ID).
		Save(job).Error
}

// UpdateProgress records pipeline progress for a running job
func (r *AnalysisJobRepository) UpdateProgress(ctx context.Context, jobID uuid.UUID, progress float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"progress":   progress,
			"updated_at": time.Now(),
		}).Error
}

// MarkJobAsCompleted marks a job as completed
func (r *AnalysisJobRepository) MarkJobAsCompleted(ctx context.Context, jobID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":       entities.JobStatusCompleted,
			"progress":     1.0,
			"completed_at": now,
			"updated_at":   now,
		}).Error
}

// MarkJobAsFailed marks a job as failed with error message
func (r *AnalysisJobRepository) MarkJobAsFailed(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":        entities.JobStatusFailed,
			"error_message": errMsg,
			"updated_at":    now,
		}).Error
}

// IncrementRetryCount increments the retry count and requeues the job
func (r *AnalysisJobRepository) IncrementRetryCount(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"retry_count":   gorm.Expr("retry_count + 1"),
			"status":        entities.JobStatusRetrying,
			"error_message": errMsg,
			"updated_at":    now,
		}).Error
}

// CancelJob cancels a job if it has not been claimed yet. Returns false when
// the job was already claimed, finished, or does not exist.
func (r *AnalysisJobRepository) CancelJob(ctx context.Context, jobID uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ? AND status IN ?", jobID, []entities.AnalysisJobStatus{entities.JobStatusPending, entities.JobStatusRetrying}).
		Updates(map[string]interface{}{
			"status":       entities.JobStatusCancelled,
			"completed_at": now,
			"updated_at":   now,
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteJobsByInterviewID removes all jobs for an interview
func (r *AnalysisJobRepository) DeleteJobsByInterviewID(ctx context.Context, interviewID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Delete(&entities.AnalysisJob{}).Error
}
