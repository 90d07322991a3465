package interview

import (
	"time"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// InterviewResponse represents an interview in responses. The analysis
// document reuses the entity type since it is already the client-facing
// camelCase shape.
type InterviewResponse struct {
	ID              string                      `json:"id"`
	Title           string                      `json:"title"`
	DurationSeconds int                         `json:"duration_seconds"`
	Status          string                      `json:"status"`
	Analysis        *entities.InterviewAnalysis `json:"analysis,omitempty"`
	CompletedAt     *time.Time                  `json:"completed_at,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// IngestResponse is returned from transcript ingest: the stored interview
// plus the queued analysis job
type IngestResponse struct {
	Interview *InterviewResponse   `json:"interview"`
	Job       *AnalysisJobResponse `json:"job"`
}

// AnalysisResponse represents the full analysis snapshot
type AnalysisResponse struct {
	ID              string                      `json:"id"`
	InterviewID     string                      `json:"interview_id"`
	Transcript      string                      `json:"transcript"`
	WordCount       int                         `json:"word_count"`
	DurationSeconds int                         `json:"duration_seconds"`
	Results         *entities.InterviewAnalysis `json:"results,omitempty"`
	Decision        string                      `json:"decision"`
	Archived        bool                        `json:"archived"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// AnalysisJobResponse represents a pipeline job with its progress and the
// projected time remaining
type AnalysisJobResponse struct {
	ID               string     `json:"id"`
	InterviewID      string     `json:"interview_id"`
	JobType          string     `json:"job_type"`
	Status           string     `json:"status"`
	Progress         float64    `json:"progress"`
	Stage            string     `json:"stage,omitempty"`
	EstimatedSeconds int        `json:"estimated_seconds"`
	RemainingSeconds *int       `json:"remaining_seconds,omitempty"`
	RetryCount       int        `json:"retry_count"`
	MaxRetries       int        `json:"max_retries"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	WorkerID         *string    `json:"worker_id,omitempty"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ExportResponse carries a presigned snapshot download URL
type ExportResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
