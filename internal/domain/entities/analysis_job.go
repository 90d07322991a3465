package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalysisJobStatus represents the status of an analysis job
type AnalysisJobStatus string

const (
	JobStatusPending    AnalysisJobStatus = "pending"    // Waiting for a worker
	JobStatusProcessing AnalysisJobStatus = "processing" // Claimed by a worker
	JobStatusCompleted  AnalysisJobStatus = "completed"  // All processing done
	JobStatusFailed     AnalysisJobStatus = "failed"     // Processing failed
	JobStatusRetrying   AnalysisJobStatus = "retrying"   // Requeued after failure
	JobStatusCancelled  AnalysisJobStatus = "cancelled"  // Job was cancelled
)

// IsValid checks if the status is a known job status
func (s AnalysisJobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusCompleted,
		JobStatusFailed, JobStatusRetrying, JobStatusCancelled:
		return true
	}
	return false
}

// AnalysisJobType represents the type of analysis job
type AnalysisJobType string

const (
	JobTypeSpeechAnalysis AnalysisJobType = "speech_analysis" // Transcript analysis pipeline
)

// AnalysisJob represents one queued analysis run for an interview
type AnalysisJob struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InterviewID uuid.UUID         `json:"interview_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	JobType     AnalysisJobType   `json:"job_type" gorm:"type:varchar(50);not null;index"`
	Status      AnalysisJobStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'pending'"`

	// Processing details
	Progress         float64    `json:"progress" gorm:"type:numeric;default:0"` // 0..1
	EstimatedSeconds int        `json:"estimated_seconds" gorm:"type:integer;default:0"`
	StartedAt        *time.Time `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt      *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	RetryCount       int        `json:"retry_count" gorm:"type:integer;default:0"`
	MaxRetries       int        `json:"max_retries" gorm:"type:integer;default:3"`
	ErrorMessage     *string    `json:"error_message,omitempty" gorm:"type:text"`
	WorkerID         *string    `json:"worker_id,omitempty" gorm:"type:varchar(100)"`

	// Metadata
	Metadata JobMetadata `json:"metadata,omitempty" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// JobMetadata stores additional metadata for analysis jobs
type JobMetadata struct {
	Stage            string                 `json:"stage,omitempty"`
	TranscriptChars  int                    `json:"transcript_chars,omitempty"`
	DurationSeconds  int                    `json:"duration_seconds,omitempty"`
	ProcessingTimeMs int64                  `json:"processing_time_ms,omitempty"`
	ErrorDetails     map[string]interface{} `json:"error_details,omitempty"`
}

// Scan implements sql.Scanner interface for GORM
func (m *JobMetadata) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, &m)
}

// Value implements driver.Valuer interface for GORM
func (m JobMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// NewAnalysisJob creates a new analysis job
func NewAnalysisJob(interviewID, userID uuid.UUID) *AnalysisJob {
	return &AnalysisJob{
		ID:          uuid.New(),
		InterviewID: interviewID,
		UserID:      userID,
		JobType:     JobTypeSpeechAnalysis,
		Status:      JobStatusPending,
		RetryCount:  0,
		MaxRetries:  3,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// IsRetryable checks if job can be retried
func (j *AnalysisJob) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries && j.Status == JobStatusFailed
}

// IsTerminal checks if job has reached a final state
func (j *AnalysisJob) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusCancelled ||
		(j.Status == JobStatusFailed && !j.IsRetryable())
}

// CanBeClaimed checks if a worker may pick this job up
func (j *AnalysisJob) CanBeClaimed() bool {
	return j.Status == JobStatusPending || j.Status == JobStatusRetrying
}

// CanBeCancelled checks if the job is still cancellable
func (j *AnalysisJob) CanBeCancelled() bool {
	return j.Status == JobStatusPending || j.Status == JobStatusRetrying
}

// MarkAsProcessing marks job as claimed by a worker
func (j *AnalysisJob) MarkAsProcessing(workerID string) {
	j.Status = JobStatusProcessing
	j.WorkerID = &workerID
	now := time.Now()
	j.StartedAt = &now
	j.UpdatedAt = now
}

// SetProgress records pipeline progress, clamped to [0, 1]
func (j *AnalysisJob) SetProgress(progress float64, stage string) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	j.Progress = progress
	j.Metadata.Stage = stage
	j.UpdatedAt = time.Now()
}

// MarkAsCompleted marks job as completed successfully
func (j *AnalysisJob) MarkAsCompleted() {
	j.Status = JobStatusCompleted
	j.Progress = 1
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed marks job as failed with error message
func (j *AnalysisJob) MarkAsFailed(errMsg string) {
	j.Status = JobStatusFailed
	j.ErrorMessage = &errMsg
	j.UpdatedAt = time.Now()
}

// IncrementRetry increments retry count and requeues the job
func (j *AnalysisJob) IncrementRetry(errMsg string) {
	j.RetryCount++
	j.Status = JobStatusRetrying
	j.ErrorMessage = &errMsg
	j.UpdatedAt = time.Now()
}

// MarkAsCancelled marks job as cancelled
func (j *AnalysisJob) MarkAsCancelled() {
	j.Status = JobStatusCancelled
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// TableName specifies the table name for GORM
func (AnalysisJob) TableName() string {
	return "analysis_jobs"
}
