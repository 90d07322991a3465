package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/interviewai-team/interviewai-backend/errors"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/http/middleware"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/analytics"
)

// Analytics handles performance-analytics HTTP requests
type Analytics struct {
	analyticsService analytics.Service
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService analytics.Service, logger *zap.Logger) *Analytics {
	return &Analytics{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Progress handles GET /v1/analytics/progress
// @Summary      Get progress metrics
// @Description  Aggregates scores, filler trends and streaks over the timeframe
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        timeframe  query     string  false  "Window"  Enums(1month, 3months, 6months, 1year)  default(3months)
// @Success      200        {object}  common.Response{data=analytics.ProgressMetrics}
// @Failure      400        {object}  common.Response
// @Failure      401        {object}  common.Response
// @Router       /analytics/progress [get]
func (h *Analytics) Progress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	timeframe, err := analytics.ParseTimeframe(c.QueryParam("timeframe"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidTimeframe(c.QueryParam("timeframe")))
	}

	metrics, err := h.analyticsService.GetProgress(c.Request().Context(), userID, timeframe)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, metrics)
}

// Trends handles GET /v1/analytics/trends
// @Summary      Get trend lines
// @Description  Weekly score and filler-rate series with direction over the timeframe
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        timeframe  query     string  false  "Window"  Enums(1month, 3months, 6months, 1year)  default(3months)
// @Success      200        {object}  common.Response{data=analytics.TrendReport}
// @Failure      400        {object}  common.Response
// @Failure      401        {object}  common.Response
// @Router       /analytics/trends [get]
func (h *Analytics) Trends(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	timeframe, err := analytics.ParseTimeframe(c.QueryParam("timeframe"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidTimeframe(c.QueryParam("timeframe")))
	}

	report, err := h.analyticsService.GetTrends(c.Request().Context(), userID, timeframe)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, report)
}

// Achievements handles GET /v1/analytics/achievements
// @Summary      Get achievements
// @Description  Evaluates the achievement rules against the user's full history
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response{data=[]analytics.Achievement}
// @Failure      401  {object}  common.Response
// @Router       /analytics/achievements [get]
func (h *Analytics) Achievements(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	achievements, err := h.analyticsService.GetAchievements(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, achievements)
}

// Benchmarks handles GET /v1/analytics/benchmarks
// @Summary      Compare against benchmarks
// @Description  Positions the user's averages against the practice benchmark bands
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        timeframe  query     string  false  "Window"  Enums(1month, 3months, 6months, 1year)  default(3months)
// @Success      200        {object}  common.Response{data=analytics.BenchmarkReport}
// @Failure      400        {object}  common.Response
// @Failure      401        {object}  common.Response
// @Router       /analytics/benchmarks [get]
func (h *Analytics) Benchmarks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	timeframe, err := analytics.ParseTimeframe(c.QueryParam("timeframe"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidTimeframe(c.QueryParam("timeframe")))
	}

	report, err := h.analyticsService.GetBenchmarks(c.Request().Context(), userID, timeframe)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, report)
}

// Dashboard handles GET /v1/analytics/dashboard
// @Summary      Get the combined dashboard
// @Description  Progress, trends, achievements and benchmarks in one cached document
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        timeframe  query     string  false  "Window"  Enums(1month, 3months, 6months, 1year)  default(3months)
// @Success      200        {object}  common.Response{data=analytics.Dashboard}
// @Failure      400        {object}  common.Response
// @Failure      401        {object}  common.Response
// @Router       /analytics/dashboard [get]
func (h *Analytics) Dashboard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	timeframe, err := analytics.ParseTimeframe(c.QueryParam("timeframe"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidTimeframe(c.QueryParam("timeframe")))
	}

	dashboard, err := h.analyticsService.GetDashboard(c.Request().Context(), userID, timeframe)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dashboard)
}
