package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/interviewai-team/interviewai-backend/internal/adapter/repository"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/domain/repositories"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/storage"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/analytics"
	usecaseErrors "github.com/interviewai-team/interviewai-backend/internal/usecase/errors"
	"github.com/interviewai-team/interviewai-backend/pkg/config"
	"github.com/interviewai-team/interviewai-backend/pkg/jobcontext"
	"github.com/interviewai-team/interviewai-backend/pkg/speech"
)

// Processing stages reported through job progress.
const (
	stageClaimed    = "claimed"
	stageFillers    = "fillers"
	stageConfidence = "confidence"
	stageCompose    = "compose"
	stagePersist    = "persist"

	progressClaimed    = 0.1
	progressFillers    = 0.3
	progressConfidence = 0.5
	progressComposed   = 0.8
	progressPersisted  = 1.0

	deadJobInterval = 10 * time.Minute
)

// MaxTranscriptChars bounds accepted transcripts; roughly three hours of
// fast speech.
const MaxTranscriptChars = 200_000

// Service runs the speech-analysis pipeline: it enqueues jobs at ingest and
// owns the worker pool that drains them.
type Service interface {
	StartWorkerPool(ctx context.Context, workerCount int) error
	StopWorkerPool() error

	EnqueueJob(ctx context.Context, interview *entities.Interview) (*entities.AnalysisJob, error)
	EnqueueBatch(ctx context.Context, userID uuid.UUID, interviewIDs []uuid.UUID) ([]*entities.AnalysisJob, error)

	GetJob(ctx context.Context, userID, jobID uuid.UUID) (*entities.AnalysisJob, error)
	ListJobs(ctx context.Context, userID uuid.UUID, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error)
	CancelJob(ctx context.Context, userID, jobID uuid.UUID) (*entities.AnalysisJob, error)
	RetryJob(ctx context.Context, userID, jobID uuid.UUID) (*entities.AnalysisJob, error)

	QuickAnalyze(text string, durationSeconds int) (speech.Result, error)
}

type service struct {
	cfg           *config.Config
	logger        *zap.Logger
	jobRepo       *repository.AnalysisJobRepository
	interviewRepo repositories.InterviewRepository
	analysisRepo  repositories.AnalysisRepository
	storage       *storage.MinIOClient
	invalidator   analytics.DashboardInvalidator

	workerMutex         sync.Mutex
	isWorkerPoolRunning bool
	workerStopChan      chan struct{}
	workerWg            sync.WaitGroup
}

// NewService creates the analysis pipeline service. storage and invalidator
// may be nil; archiving and dashboard invalidation are then skipped.
func NewService(
	cfg *config.Config,
	logger *zap.Logger,
	jobRepo *repository.AnalysisJobRepository,
	interviewRepo repositories.InterviewRepository,
	analysisRepo repositories.AnalysisRepository,
	storageClient *storage.MinIOClient,
	invalidator analytics.DashboardInvalidator,
) Service {
	return &service{
		cfg:           cfg,
		logger:        logger,
		jobRepo:       jobRepo,
		interviewRepo: interviewRepo,
		analysisRepo:  analysisRepo,
		storage:       storageClient,
		invalidator:   invalidator,
	}
}

// QuickAnalyze runs the engine synchronously without persisting anything.
func (s *service) QuickAnalyze(text string, durationSeconds int) (speech.Result, error) {
	if strings.TrimSpace(text) == "" {
		return speech.Result{}, usecaseErrors.ErrEmptyTranscript
	}
	if len(text) > MaxTranscriptChars {
		return speech.Result{}, usecaseErrors.ErrTranscriptTooLong
	}
	return speech.Analyze(text, float64(durationSeconds)), nil
}

// EnqueueJob creates a speech-analysis job for an interview.
func (s *service) EnqueueJob(ctx context.Context, interview *entities.Interview) (*entities.AnalysisJob, error) {
	job := entities.NewAnalysisJob(interview.ID, interview.UserID)
	job.EstimatedSeconds = EstimateSeconds(interview.DurationSeconds)
	if s.cfg != nil && s.cfg.Pipeline.MaxRetries > 0 {
		job.MaxRetries = s.cfg.Pipeline.MaxRetries
	}

	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to enqueue analysis job: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("📋 Analysis job enqueued",
			zap.String("job_id", job.ID.String()),
			zap.String("interview_id", interview.ID.String()),
			zap.Int("estimated_seconds", job.EstimatedSeconds))
	}
	return job, nil
}

// EnqueueBatch re-enqueues analysis for a set of interviews owned by the
// user. Interviews that already have an active job are skipped.
func (s *service) EnqueueBatch(ctx context.Context, userID uuid.UUID, interviewIDs []uuid.UUID) ([]*entities.AnalysisJob, error) {
	jobs := make([]*entities.AnalysisJob, 0, len(interviewIDs))

	for _, interviewID := range interviewIDs {
		interview, err := s.interviewRepo.FindByIDForUser(ctx, interviewID, userID)
		if err != nil {
			return nil, err
		}

		latest, err := s.jobRepo.GetLatestJobByInterviewID(ctx, interviewID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing jobs: %w", err)
		}
		if latest != nil && !latest.IsTerminal() {
			if s.logger != nil {
				s.logger.Info("⏭️ Skipping re-enqueue, job still active",
					zap.String("interview_id", interviewID.String()),
					zap.String("job_status", string(latest.Status)))
			}
			continue
		}

		if err := s.interviewRepo.UpdateStatus(ctx, interviewID, entities.InterviewStatusPending); err != nil {
			return nil, fmt.Errorf("failed to reset interview status: %w", err)
		}

		job, err := s.EnqueueJob(ctx, interview)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if len(jobs) > 0 && s.invalidator != nil {
		s.invalidator.InvalidateDashboards(ctx, userID)
	}
	return jobs, nil
}

func (s *service) GetJob(ctx context.Context, userID, jobID uuid.UUID) (*entities.AnalysisJob, error) {
	job, err := s.jobRepo.GetJobByIDForUser(ctx, jobID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, entities.ErrJobNotFound
	}
	return job, nil
}

func (s *service) ListJobs(ctx context.Context, userID uuid.UUID, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error) {
	if status != "" && !status.IsValid() {
		return nil, entities.ErrInvalidRequest
	}
	return s.jobRepo.ListJobsByUser(ctx, userID, status, limit)
}

// CancelJob cancels a job that no worker has claimed yet.
func (s *service) CancelJob(ctx context.Context, userID, jobID uuid.UUID) (*entities.AnalysisJob, error) {
	job, err := s.GetJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.jobRepo.CancelJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel job: %w", err)
	}
	if !cancelled {
		return nil, entities.ErrJobNotCancellable
	}

	if s.logger != nil {
		s.logger.Info("🛑 Analysis job cancelled", zap.String("job_id", job.ID.String()))
	}
	return s.GetJob(ctx, userID, jobID)
}

// RetryJob re-queues a failed job that still has retry budget.
func (s *service) RetryJob(ctx context.Context, userID, jobID uuid.UUID) (*entities.AnalysisJob, error) {
	job, err := s.GetJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsRetryable() {
		return nil, entities.ErrJobNotRetryable
	}

	errMsg := ""
	if job.ErrorMessage != nil {
		errMsg = *job.ErrorMessage
	}
	if err := s.jobRepo.IncrementRetryCount(ctx, job.ID, errMsg); err != nil {
		return nil, fmt.Errorf("failed to re-queue job: %w", err)
	}
	if err := s.interviewRepo.UpdateStatus(ctx, job.InterviewID, entities.InterviewStatusPending); err != nil {
		return nil, fmt.Errorf("failed to reset interview status: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("🔄 Analysis job re-queued",
			zap.String("job_id", job.ID.String()),
			zap.Int("retry_count", job.RetryCount+1))
	}
	return s.GetJob(ctx, userID, jobID)
}

// StartWorkerPool launches the analysis workers plus the zombie-cleanup and
// dead-job tickers. Idempotence is guarded: a running pool refuses a second
// start.
func (s *service) StartWorkerPool(ctx context.Context, workerCount int) error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if s.isWorkerPoolRunning {
		return usecaseErrors.ErrWorkerPoolAlreadyRunning
	}
	if workerCount <= 0 {
		workerCount = 1
	}

	s.workerStopChan = make(chan struct{})
	s.isWorkerPoolRunning = true

	for i := 0; i < workerCount; i++ {
		s.workerWg.Add(1)
		go s.analysisWorker(ctx, i)
	}

	s.workerWg.Add(1)
	go s.zombieCleanupWorker(ctx)

	s.workerWg.Add(1)
	go s.deadJobWorker(ctx)

	if s.logger != nil {
		s.logger.Info("👷 Analysis worker pool started", zap.Int("workers", workerCount))
	}
	return nil
}

// StopWorkerPool signals all workers to stop and waits for them to drain.
func (s *service) StopWorkerPool() error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if !s.isWorkerPoolRunning {
		return usecaseErrors.ErrWorkerPoolNotRunning
	}

	close(s.workerStopChan)
	s.workerWg.Wait()
	s.isWorkerPoolRunning = false

	if s.logger != nil {
		s.logger.Info("✅ Analysis worker pool stopped")
	}
	return nil
}

func (s *service) analysisWorker(ctx context.Context, workerID int) {
	defer s.workerWg.Done()

	workerName := fmt.Sprintf("worker-%d", workerID)
	ticker := time.NewTicker(s.pollInterval())
	defer ticker.Stop()

	if s.logger != nil {
		s.logger.Info("👷 Analysis worker started", zap.String("worker", workerName))
	}

	for {
		select {
		case <-s.workerStopChan:
			if s.logger != nil {
				s.logger.Info("Analysis worker stopped", zap.String("worker", workerName))
			}
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.drainJobs(ctx, workerID, workerName)
		}
	}
}

// drainJobs claims and processes jobs until the queue is empty or the pool
// is stopping.
func (s *service) drainJobs(ctx context.Context, workerID int, workerName string) {
	jobs, err := s.jobRepo.GetJobsForProcessing(ctx, 0)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to poll for jobs", zap.Error(err))
		}
		return
	}

	for i := range jobs {
		select {
		case <-s.workerStopChan:
			return
		case <-ctx.Done():
			return
		default:
		}

		job := jobs[i]
		if !s.claimJob(ctx, &job, workerName) {
			continue
		}
		s.runJob(ctx, &job, workerID, workerName)
	}
}

// claimJob flips the job to processing with a conditional update; the first
// worker wins and everyone else sees zero rows affected.
func (s *service) claimJob(ctx context.Context, job *entities.AnalysisJob, workerName string) bool {
	now := time.Now()
	result := s.jobRepo.GetDB().WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ? AND status IN ?", job.ID, []entities.AnalysisJobStatus{entities.JobStatusPending, entities.JobStatusRetrying}).
		Updates(map[string]interface{}{
			"status":     entities.JobStatusProcessing,
			"worker_id":  workerName,
			"started_at": now,
			"progress":   progressClaimed,
			"updated_at": now,
		})
	if result.Error != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to claim job", zap.String("job_id", job.ID.String()), zap.Error(result.Error))
		}
		return false
	}
	if result.RowsAffected == 0 {
		if s.logger != nil {
			s.logger.Debug("⏭️ Job already claimed by another worker", zap.String("job_id", job.ID.String()))
		}
		return false
	}

	job.MarkAsProcessing(workerName)
	job.SetProgress(progressClaimed, stageClaimed)
	return true
}

func (s *service) runJob(ctx context.Context, job *entities.AnalysisJob, workerID int, workerName string) {
	start := time.Now()

	jobCtx, cancel := jobcontext.JobBegin(ctx, job.ID, string(job.JobType), workerID, s.jobTimeout())
	err := jobcontext.JobEnd(jobCtx, func(c context.Context) error {
		return s.processJob(c, job)
	})
	cancel()

	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Analysis job failed",
				zap.String("job_id", job.ID.String()),
				zap.String("worker", workerName),
				zap.Error(err))
		}
		s.failJob(ctx, job, err)
		return
	}

	if s.logger != nil {
		s.logger.Info("✅ Analysis job completed",
			zap.String("job_id", job.ID.String()),
			zap.String("worker", workerName),
			zap.Duration("took", time.Since(start)))
	}
}

// processJob runs the engine stages against the stored transcript and
// persists the results. The snapshot row gets the raw output, the interview
// row gets the normalized projection.
func (s *service) processJob(ctx context.Context, job *entities.AnalysisJob) error {
	snapshot, err := s.analysisRepo.FindByInterviewID(ctx, job.InterviewID)
	if err != nil {
		return fmt.Errorf("failed to load analysis snapshot: %w", err)
	}

	if err := s.interviewRepo.UpdateStatus(ctx, job.InterviewID, entities.InterviewStatusProcessing); err != nil {
		return fmt.Errorf("failed to mark interview processing: %w", err)
	}

	duration := float64(snapshot.DurationSeconds)

	fillers := speech.AnalyzeFillerWords(snapshot.Transcript, duration)
	s.updateStage(ctx, job, progressFillers, stageFillers)

	confidence := speech.AnalyzeConfidence(snapshot.Transcript)
	s.updateStage(ctx, job, progressConfidence, stageConfidence)

	result := speech.Compose(snapshot.Transcript, duration, fillers, confidence)
	normalized := Normalize(result, snapshot)
	s.updateStage(ctx, job, progressComposed, stageCompose)

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode engine output: %w", err)
	}
	results, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("failed to encode analysis results: %w", err)
	}

	snapshot.RawResponse = raw
	snapshot.Results = results
	if err := s.analysisRepo.Update(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist analysis snapshot: %w", err)
	}

	interview, err := s.interviewRepo.FindByID(ctx, job.InterviewID)
	if err != nil {
		return fmt.Errorf("failed to load interview: %w", err)
	}
	interview.MarkAsCompleted(&normalized)
	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return fmt.Errorf("failed to complete interview: %w", err)
	}

	job.Metadata.TranscriptChars = len(snapshot.Transcript)
	job.Metadata.DurationSeconds = snapshot.DurationSeconds
	if job.StartedAt != nil {
		job.Metadata.ProcessingTimeMs = time.Since(*job.StartedAt).Milliseconds()
	}

	// The final save carries the stage metadata; intermediate stages only
	// touch the progress column.
	job.SetProgress(progressPersisted, stagePersist)
	if err := s.jobRepo.UpdateJob(ctx, job); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to persist job metadata",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
	}

	if err := s.jobRepo.MarkJobAsCompleted(ctx, job.ID); err != nil {
		return fmt.Errorf("failed to mark job completed: %w", err)
	}

	s.archiveSnapshot(ctx, snapshot, raw)

	if s.invalidator != nil {
		s.invalidator.InvalidateDashboards(ctx, interview.UserID)
	}
	return nil
}

// failJob records the failure; the interview only flips to failed once the
// retry budget is spent, since the dead-job worker re-queues anything
// retryable.
func (s *service) failJob(ctx context.Context, job *entities.AnalysisJob, procErr error) {
	if err := s.jobRepo.MarkJobAsFailed(ctx, job.ID, procErr.Error()); err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to mark job failed", zap.String("job_id", job.ID.String()), zap.Error(err))
		}
		return
	}

	if job.RetryCount >= job.MaxRetries {
		if err := s.interviewRepo.UpdateStatus(ctx, job.InterviewID, entities.InterviewStatusFailed); err != nil && s.logger != nil {
			s.logger.Error("❌ Failed to mark interview failed", zap.String("interview_id", job.InterviewID.String()), zap.Error(err))
		}
	}
}

func (s *service) updateStage(ctx context.Context, job *entities.AnalysisJob, progress float64, stage string) {
	job.SetProgress(progress, stage)
	if err := s.jobRepo.UpdateProgress(ctx, job.ID, progress); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to update job progress",
			zap.String("job_id", job.ID.String()),
			zap.String("stage", stage),
			zap.Error(err))
	}
}

// archiveSnapshot uploads the raw engine output to object storage with
// retries. Failure is non-fatal: the analysis stays queryable from Postgres
// and storage_key remains null.
func (s *service) archiveSnapshot(ctx context.Context, snapshot *entities.Analysis, raw []byte) {
	if s.storage == nil {
		return
	}

	var key string
	operation := func() error {
		uploaded, err := s.storage.ArchiveSnapshot(ctx, snapshot.InterviewID, raw)
		if err != nil {
			return err
		}
		key = uploaded
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Snapshot archive failed",
				zap.String("interview_id", snapshot.InterviewID.String()),
				zap.Error(err))
		}
		return
	}

	snapshot.MarkArchived(key)
	if err := s.analysisRepo.SetStorageKey(ctx, snapshot.ID, key); err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to record storage key", zap.String("analysis_id", snapshot.ID.String()), zap.Error(err))
		}
		return
	}

	if s.logger != nil {
		s.logger.Info("✅ Snapshot archived", zap.String("key", key))
	}
}

// zombieCleanupWorker re-queues jobs stuck in processing, usually after a
// worker crash or deploy mid-job.
func (s *service) zombieCleanupWorker(ctx context.Context) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(s.zombieInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupZombieJobs(ctx)
		}
	}
}

func (s *service) cleanupZombieJobs(ctx context.Context) {
	jobs, err := s.jobRepo.ListJobsByStatus(ctx, entities.JobStatusProcessing, 0)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to list processing jobs", zap.Error(err))
		}
		return
	}

	deadline := time.Now().Add(-s.zombieAfter())
	for i := range jobs {
		job := jobs[i]
		if !job.UpdatedAt.Before(deadline) {
			continue
		}

		if s.logger != nil {
			s.logger.Warn("🧹 Cleaning up zombie job",
				zap.String("job_id", job.ID.String()),
				zap.Time("last_update", job.UpdatedAt))
		}

		if job.RetryCount < job.MaxRetries {
			if err := s.jobRepo.IncrementRetryCount(ctx, job.ID, "worker timed out"); err != nil && s.logger != nil {
				s.logger.Error("❌ Failed to re-queue zombie job", zap.String("job_id", job.ID.String()), zap.Error(err))
			}
			continue
		}

		if err := s.jobRepo.MarkJobAsFailed(ctx, job.ID, "worker timed out"); err != nil {
			if s.logger != nil {
				s.logger.Error("❌ Failed to fail zombie job", zap.String("job_id", job.ID.String()), zap.Error(err))
			}
			continue
		}
		if err := s.interviewRepo.UpdateStatus(ctx, job.InterviewID, entities.InterviewStatusFailed); err != nil && s.logger != nil {
			s.logger.Error("❌ Failed to mark interview failed", zap.String("interview_id", job.InterviewID.String()), zap.Error(err))
		}
	}
}

// deadJobWorker re-queues failed jobs with remaining budget and reports the
// ones beyond it.
func (s *service) deadJobWorker(ctx context.Context) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(deadJobInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.requeueFailedJobs(ctx)
		}
	}
}

func (s *service) requeueFailedJobs(ctx context.Context) {
	retryable, err := s.jobRepo.GetFailedJobs(ctx, 0)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to list failed jobs", zap.Error(err))
		}
		return
	}

	for i := range retryable {
		job := retryable[i]
		errMsg := ""
		if job.ErrorMessage != nil {
			errMsg = *job.ErrorMessage
		}
		if err := s.jobRepo.IncrementRetryCount(ctx, job.ID, errMsg); err != nil {
			if s.logger != nil {
				s.logger.Error("❌ Failed to re-queue job", zap.String("job_id", job.ID.String()), zap.Error(err))
			}
			continue
		}
		if s.logger != nil {
			s.logger.Info("🔄 Re-queued failed job",
				zap.String("job_id", job.ID.String()),
				zap.Int("retry_count", job.RetryCount+1))
		}
	}

	dead, err := s.jobRepo.ListJobsByStatus(ctx, entities.JobStatusFailed, 0)
	if err != nil {
		return
	}
	deadCount := 0
	for i := range dead {
		if !dead[i].IsRetryable() {
			deadCount++
		}
	}
	if deadCount > 0 && s.logger != nil {
		s.logger.Warn("💀 Dead jobs beyond retry budget", zap.Int("count", deadCount))
	}
}

func (s *service) pollInterval() time.Duration {
	if s.cfg != nil && s.cfg.Pipeline.PollInterval > 0 {
		return s.cfg.Pipeline.PollInterval
	}
	return 30 * time.Second
}

func (s *service) jobTimeout() time.Duration {
	if s.cfg != nil && s.cfg.Pipeline.JobTimeout > 0 {
		return s.cfg.Pipeline.JobTimeout
	}
	return 5 * time.Minute
}

func (s *service) zombieInterval() time.Duration {
	if s.cfg != nil && s.cfg.Pipeline.ZombieInterval > 0 {
		return s.cfg.Pipeline.ZombieInterval
	}
	return 5 * time.Minute
}

func (s *service) zombieAfter() time.Duration {
	if s.cfg != nil && s.cfg.Pipeline.ZombieAfter > 0 {
		return s.cfg.Pipeline.ZombieAfter
	}
	return 10 * time.Minute
}
