package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/interviewai-team/interviewai-backend/internal/adapter/repository"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/domain/repositories"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/storage"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/analysis"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/analytics"
	usecaseErrors "github.com/interviewai-team/interviewai-backend/internal/usecase/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ExportURLExpiry is how long a presigned snapshot download link stays valid.
const ExportURLExpiry = 15 * time.Minute

// InterviewService handles interview business logic
type InterviewService struct {
	interviewRepo repositories.InterviewRepository
	analysisRepo  repositories.AnalysisRepository
	jobRepo       *repository.AnalysisJobRepository
	enqueuer      JobEnqueuer
	storage       *storage.MinIOClient
	invalidator   analytics.DashboardInvalidator
}

// NewInterviewService creates a new interview service. storage and
// invalidator may be nil; export then reports storage unavailable and
// dashboard invalidation is skipped.
func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	analysisRepo repositories.AnalysisRepository,
	jobRepo *repository.AnalysisJobRepository,
	enqueuer JobEnqueuer,
	storageClient *storage.MinIOClient,
	invalidator analytics.DashboardInvalidator,
) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		analysisRepo:  analysisRepo,
		jobRepo:       jobRepo,
		enqueuer:      enqueuer,
		storage:       storageClient,
		invalidator:   invalidator,
	}
}

// IngestInput represents a finished transcript submitted for analysis. Body
// language and content scores are optional client-side assessments; the
// engine itself only sees text.
type IngestInput struct {
	UserID          uuid.UUID
	Title           string
	DurationSeconds int
	Transcript      string

	BodyLanguageScore        *float64
	BodyLanguageObservations []string
	ContentScore             *float64
}

// Ingest stores the interview and its analysis snapshot, then enqueues a
// speech-analysis job
func (s *InterviewService) Ingest(ctx context.Context, input IngestInput) (*entities.Interview, *entities.AnalysisJob, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, nil, entities.ErrInvalidRequest
	}
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return nil, nil, usecaseErrors.ErrEmptyTranscript
	}
	if len(transcript) > analysis.MaxTranscriptChars {
		return nil, nil, usecaseErrors.ErrTranscriptTooLong
	}
	if input.DurationSeconds < 0 {
		return nil, nil, usecaseErrors.ErrInvalidDuration
	}

	iv := entities.NewInterview(input.UserID, title, input.DurationSeconds)
	if err := s.interviewRepo.Create(ctx, iv); err != nil {
		return nil, nil, fmt.Errorf("failed to create interview: %w", err)
	}

	wordCount := len(strings.Fields(transcript))
	snapshot := entities.NewAnalysis(iv.ID, input.UserID, transcript, wordCount, input.DurationSeconds)

	var observations datatypes.JSON
	if len(input.BodyLanguageObservations) > 0 {
		raw, err := json.Marshal(input.BodyLanguageObservations)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode observations: %w", err)
		}
		observations = raw
	}
	snapshot.SetClientAssessments(input.BodyLanguageScore, observations, input.ContentScore)

	if err := s.analysisRepo.Create(ctx, snapshot); err != nil {
		return nil, nil, fmt.Errorf("failed to create analysis snapshot: %w", err)
	}

	job, err := s.enqueuer.EnqueueJob(ctx, iv)
	if err != nil {
		return nil, nil, err
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateDashboards(ctx, input.UserID)
	}
	return iv, job, nil
}

// Get retrieves an interview owned by the user
func (s *InterviewService) Get(ctx context.Context, userID, interviewID uuid.UUID) (*entities.Interview, error) {
	return s.interviewRepo.FindByIDForUser(ctx, interviewID, userID)
}

// ListInput represents filter options for listing interviews
type ListInput struct {
	UserID    uuid.UUID
	Timeframe string // empty lists everything
	Status    *entities.InterviewStatus
	Search    string
	Page      int
	PageSize  int
}

// List retrieves the user's interviews, newest first
func (s *InterviewService) List(ctx context.Context, input ListInput) ([]*entities.Interview, int64, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filters := repositories.InterviewFilters{
		UserID:    &input.UserID,
		Status:    input.Status,
		Search:    input.Search,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	if input.Timeframe != "" {
		tf, err := analytics.ParseTimeframe(input.Timeframe)
		if err != nil {
			return nil, 0, err
		}
		cutoff := tf.CutoffFrom(time.Now().UTC())
		filters.Since = &cutoff
	}

	interviews, total, err := s.interviewRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, total, nil
}

// Delete removes the interview, its analysis snapshot and any jobs
func (s *InterviewService) Delete(ctx context.Context, userID, interviewID uuid.UUID) error {
	iv, err := s.interviewRepo.FindByIDForUser(ctx, interviewID, userID)
	if err != nil {
		return err
	}

	if err := s.jobRepo.DeleteJobsByInterviewID(ctx, iv.ID); err != nil {
		return fmt.Errorf("failed to delete analysis jobs: %w", err)
	}
	if err := s.analysisRepo.DeleteByInterviewID(ctx, iv.ID); err != nil {
		return fmt.Errorf("failed to delete analysis snapshot: %w", err)
	}
	if err := s.interviewRepo.Delete(ctx, iv.ID); err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateDashboards(ctx, userID)
	}
	return nil
}

// GetAnalysis retrieves the full analysis snapshot for an interview
func (s *InterviewService) GetAnalysis(ctx context.Context, userID, interviewID uuid.UUID) (*entities.Analysis, error) {
	if _, err := s.interviewRepo.FindByIDForUser(ctx, interviewID, userID); err != nil {
		return nil, err
	}
	return s.analysisRepo.FindByInterviewID(ctx, interviewID)
}

// UpdateDecision records whether the user keeps or discards the analysis.
// Discarded analyses drop out of the analytics aggregations.
func (s *InterviewService) UpdateDecision(ctx context.Context, userID, interviewID uuid.UUID, decision entities.AnalysisDecision) (*entities.Analysis, error) {
	if !decision.IsValid() || decision == entities.DecisionPending {
		return nil, entities.ErrInvalidDecision
	}

	snapshot, err := s.GetAnalysis(ctx, userID, interviewID)
	if err != nil {
		return nil, err
	}

	if err := s.analysisRepo.UpdateDecision(ctx, interviewID, decision); err != nil {
		return nil, fmt.Errorf("failed to update decision: %w", err)
	}
	snapshot.Decision = decision

	if s.invalidator != nil {
		s.invalidator.InvalidateDashboards(ctx, userID)
	}
	return snapshot, nil
}

// ExportURL returns a presigned download URL for the archived snapshot
func (s *InterviewService) ExportURL(ctx context.Context, userID, interviewID uuid.UUID) (string, error) {
	snapshot, err := s.GetAnalysis(ctx, userID, interviewID)
	if err != nil {
		return "", err
	}
	if s.storage == nil || snapshot.StorageKey == nil {
		return "", usecaseErrors.ErrSnapshotNotArchived
	}

	url, err := s.storage.GetFileURL(ctx, *snapshot.StorageKey, ExportURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign snapshot url: %w", err)
	}
	return url, nil
}
