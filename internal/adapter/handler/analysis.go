package handler

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/interviewai-team/interviewai-backend/errors"
	analysisDTO "github.com/interviewai-team/interviewai-backend/internal/adapter/dto/analysis"
	interviewDTO "github.com/interviewai-team/interviewai-backend/internal/adapter/dto/interview"
	"github.com/interviewai-team/interviewai-backend/internal/adapter/presenter"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/http/middleware"
	analysisUsecase "github.com/interviewai-team/interviewai-backend/internal/usecase/analysis"
	usecaseErrors "github.com/interviewai-team/interviewai-backend/internal/usecase/errors"
)

// Analysis handles analysis and job-queue HTTP requests
type Analysis struct {
	analysisService analysisUsecase.Service
	logger          *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService analysisUsecase.Service, logger *zap.Logger) *Analysis {
	return &Analysis{
		analysisService: analysisService,
		logger:          logger,
	}
}

// QuickAnalyze handles POST /v1/analysis/quick
// @Summary      Analyze a transcript synchronously
// @Description  Runs the speech engine inline and returns the result document; nothing is persisted
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      analysis.QuickAnalyzeRequest  true  "Transcript"
// @Success      200      {object}  common.Response{data=speech.Result}
// @Failure      400      {object}  common.Response
// @Failure      401      {object}  common.Response
// @Router       /analysis/quick [post]
func (h *Analysis) QuickAnalyze(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	var req analysisDTO.QuickAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.analysisService.QuickAnalyze(req.Transcript, req.DurationSeconds)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, ""))
	}

	return HandleSuccess(h.logger, c, result)
}

// ListJobs handles GET /v1/analysis/jobs
// @Summary      List analysis jobs
// @Description  Returns the user's analysis jobs newest first, optionally filtered by status
// @Tags         Analysis
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter"  Enums(pending, processing, completed, failed, cancelled, retrying)
// @Param        limit   query     int     false  "Max jobs to return"
// @Success      200     {object}  common.Response{data=[]interview.AnalysisJobResponse}
// @Failure      400     {object}  common.Response
// @Failure      401     {object}  common.Response
// @Router       /analysis/jobs [get]
func (h *Analysis) ListJobs(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	var req analysisDTO.ListJobsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	jobs, err := h.analysisService.ListJobs(c.Request().Context(), userID, entities.AnalysisJobStatus(req.Status), req.Limit)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalysisJobListResponse(jobs))
}

// GetJob handles GET /v1/analysis/jobs/:id
// @Summary      Get an analysis job
// @Description  Returns job status, progress and the estimated seconds remaining
// @Tags         Analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  common.Response{data=interview.AnalysisJobResponse}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /analysis/jobs/{id} [get]
func (h *Analysis) GetJob(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid job id"))
	}

	job, err := h.analysisService.GetJob(c.Request().Context(), userID, jobID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, jobID.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalysisJobResponse(job))
}

// CancelJob handles POST /v1/analysis/jobs/:id/cancel
// @Summary      Cancel a queued analysis job
// @Description  Only jobs no worker has claimed yet can be cancelled
// @Tags         Analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  common.Response{data=interview.AnalysisJobResponse}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /analysis/jobs/{id}/cancel [post]
func (h *Analysis) CancelJob(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid job id"))
	}

	ctx := c.Request().Context()
	job, err := h.analysisService.CancelJob(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, entities.ErrJobNotCancellable) {
			status := ""
			if current, getErr := h.analysisService.GetJob(ctx, userID, jobID); getErr == nil {
				status = string(current.Status)
			}
			return HandleError(h.logger, c, apperrors.ErrJobNotCancellable(jobID.String(), status))
		}
		return HandleError(h.logger, c, h.mapError(err, jobID.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalysisJobResponse(job))
}

// RetryJob handles POST /v1/analysis/jobs/:id/retry
// @Summary      Retry a failed analysis job
// @Description  Re-queues a failed job that still has retry budget
// @Tags         Analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  common.Response{data=interview.AnalysisJobResponse}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /analysis/jobs/{id}/retry [post]
func (h *Analysis) RetryJob(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid job id"))
	}

	job, err := h.analysisService.RetryJob(c.Request().Context(), userID, jobID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, jobID.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalysisJobResponse(job))
}

// Batch handles POST /v1/analysis/batch
// @Summary      Re-enqueue analysis for multiple interviews
// @Description  Queues a fresh analysis job per interview; interviews with a still-active job are skipped
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      analysis.BatchAnalyzeRequest  true  "Interview IDs"
// @Success      200      {object}  common.Response
// @Failure      400      {object}  common.Response
// @Failure      401      {object}  common.Response
// @Failure      404      {object}  common.Response
// @Router       /analysis/batch [post]
func (h *Analysis) Batch(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	var req analysisDTO.BatchAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	interviewIDs := make([]uuid.UUID, 0, len(req.InterviewIDs))
	for _, raw := range req.InterviewIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid interview id: "+raw))
		}
		interviewIDs = append(interviewIDs, id)
	}

	jobs, err := h.analysisService.EnqueueBatch(c.Request().Context(), userID, interviewIDs)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, ""))
	}

	responses := make([]*interviewDTO.AnalysisJobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, presenter.ToAnalysisJobResponse(job))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"jobs":     responses,
		"enqueued": len(responses),
		"skipped":  len(interviewIDs) - len(responses),
	})
}

func (h *Analysis) mapError(err error, jobID string) error {
	switch {
	case errors.Is(err, entities.ErrJobNotFound):
		return apperrors.ErrJobNotFound(jobID)
	case errors.Is(err, entities.ErrJobNotRetryable):
		return apperrors.ErrJobNotRetryable(jobID)
	case errors.Is(err, entities.ErrInterviewNotFound):
		return apperrors.ErrNotFound("Interview")
	case errors.Is(err, usecaseErrors.ErrEmptyTranscript),
		errors.Is(err, usecaseErrors.ErrTranscriptTooLong),
		errors.Is(err, entities.ErrInvalidRequest):
		return apperrors.ErrInvalidArgument(err.Error())
	default:
		return err
	}
}
