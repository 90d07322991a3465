package handler

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/interviewai-team/interviewai-backend/errors"
	interviewDTO "github.com/interviewai-team/interviewai-backend/internal/adapter/dto/interview"
	"github.com/interviewai-team/interviewai-backend/internal/adapter/presenter"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/interviewai-team/interviewai-backend/internal/usecase/errors"
	interviewUsecase "github.com/interviewai-team/interviewai-backend/internal/usecase/interview"
)

// Interview handles interview HTTP requests
type Interview struct {
	interviewService interviewUsecase.Service
	logger           *zap.Logger
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(interviewService interviewUsecase.Service, logger *zap.Logger) *Interview {
	return &Interview{
		interviewService: interviewService,
		logger:           logger,
	}
}

// Ingest handles POST /v1/interviews
// @Summary      Submit an interview for analysis
// @Description  Stores the transcript and queues a speech-analysis job; analysis runs in the background
// @Tags         Interviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      interview.IngestInterviewRequest  true  "Interview transcript"
// @Success      202      {object}  common.Response{data=interview.IngestResponse}
// @Failure      400      {object}  common.Response
// @Failure      401      {object}  common.Response
// @Router       /interviews [post]
func (h *Interview) Ingest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	var req interviewDTO.IngestInterviewRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	iv, job, err := h.interviewService.Ingest(c.Request().Context(), interviewUsecase.IngestInput{
		UserID:                   userID,
		Title:                    req.Title,
		DurationSeconds:          req.DurationSeconds,
		Transcript:               req.Transcript,
		BodyLanguageScore:        req.BodyLanguageScore,
		BodyLanguageObservations: req.BodyLanguageObservations,
		ContentScore:             req.ContentScore,
	})
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, ""))
	}

	return HandleAccepted(h.logger, c, presenter.ToIngestResponse(iv, job))
}

// List handles GET /v1/interviews
// @Summary      List interviews
// @Description  Returns the user's interviews newest first; timeframe narrows to a recent window
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        timeframe  query     string  false  "Window"  Enums(1month, 3months, 6months, 1year)
// @Param        status     query     string  false  "Status filter"
// @Param        search     query     string  false  "Title search"
// @Param        page       query     int     false  "Page number"
// @Param        pageSize   query     int     false  "Items per page"
// @Success      200        {object}  common.Response{data=common.ListResponse}
// @Failure      400        {object}  common.Response
// @Failure      401        {object}  common.Response
// @Router       /interviews [get]
func (h *Interview) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	var req interviewDTO.ListInterviewsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	input := interviewUsecase.ListInput{
		UserID:    userID,
		Timeframe: req.Timeframe,
		Search:    req.Search,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
	if req.Status != "" {
		status := entities.InterviewStatus(req.Status)
		input.Status = &status
	}

	interviews, total, err := h.interviewService.List(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, ""))
	}

	// Echo back the page values the service actually used.
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return HandleSuccess(h.logger, c, presenter.ToInterviewListResponse(interviews, total, page, pageSize))
}

// Get handles GET /v1/interviews/:id
// @Summary      Get an interview
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  common.Response{data=interview.InterviewResponse}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /interviews/{id} [get]
func (h *Interview) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid interview id"))
	}

	iv, err := h.interviewService.Get(c.Request().Context(), userID, interviewID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, interviewID.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToInterviewResponse(iv))
}

// Delete handles DELETE /v1/interviews/:id
// @Summary      Delete an interview
// @Description  Removes the interview, its analysis snapshot and any queued jobs
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  common.Response
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /interviews/{id} [delete]
func (h *Interview) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid interview id"))
	}

	if err := h.interviewService.Delete(c.Request().Context(), userID, interviewID); err != nil {
		return HandleError(h.logger, c, h.mapError(err, interviewID.String()))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"deleted": true,
	})
}

// GetAnalysis handles GET /v1/interviews/:id/analysis
// @Summary      Get analysis results
// @Description  Returns the full analysis snapshot including the composed results document
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  common.Response{data=interview.AnalysisResponse}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /interviews/{id}/analysis [get]
func (h *Interview) GetAnalysis(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid interview id"))
	}

	snapshot, err := h.interviewService.GetAnalysis(c.Request().Context(), userID, interviewID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, interviewID.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponse(snapshot))
}

// UpdateDecision handles PATCH /v1/interviews/:id/analysis/decision
// @Summary      Keep or discard an analysis
// @Description  Saved analyses stay in analytics aggregations; discarded ones drop out
// @Tags         Interviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Interview ID"
// @Param        request  body      interview.UpdateDecisionRequest  true  "Decision"
// @Success      200      {object}  common.Response{data=interview.AnalysisResponse}
// @Failure      400      {object}  common.Response
// @Failure      401      {object}  common.Response
// @Failure      404      {object}  common.Response
// @Router       /interviews/{id}/analysis/decision [patch]
func (h *Interview) UpdateDecision(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid interview id"))
	}

	var req interviewDTO.UpdateDecisionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	snapshot, err := h.interviewService.UpdateDecision(c.Request().Context(), userID, interviewID, entities.AnalysisDecision(req.Decision))
	if err != nil {
		if errors.Is(err, entities.ErrInvalidDecision) {
			return HandleError(h.logger, c, apperrors.ErrInvalidDecision(req.Decision))
		}
		return HandleError(h.logger, c, h.mapError(err, interviewID.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponse(snapshot))
}

// Export handles GET /v1/interviews/:id/analysis/export
// @Summary      Export an analysis snapshot
// @Description  Returns a time-limited download URL for the archived snapshot document
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  common.Response{data=interview.ExportResponse}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /interviews/{id}/analysis/export [get]
func (h *Interview) Export(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid interview id"))
	}

	url, err := h.interviewService.ExportURL(c.Request().Context(), userID, interviewID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, interviewID.String()))
	}

	return HandleSuccess(h.logger, c, &interviewDTO.ExportResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(interviewUsecase.ExportURLExpiry),
	})
}

func (h *Interview) mapError(err error, interviewID string) error {
	switch {
	case errors.Is(err, entities.ErrInterviewNotFound):
		return apperrors.ErrInterviewNotFound(interviewID)
	case errors.Is(err, entities.ErrAnalysisNotFound):
		return apperrors.ErrAnalysisNotFound(interviewID)
	case errors.Is(err, usecaseErrors.ErrSnapshotNotArchived):
		return apperrors.ErrNotFound("Archived snapshot")
	case errors.Is(err, usecaseErrors.ErrInvalidTimeframe),
		errors.Is(err, usecaseErrors.ErrEmptyTranscript),
		errors.Is(err, usecaseErrors.ErrTranscriptTooLong),
		errors.Is(err, usecaseErrors.ErrInvalidDuration),
		errors.Is(err, entities.ErrInvalidRequest):
		return apperrors.ErrInvalidArgument(err.Error())
	default:
		return err
	}
}
