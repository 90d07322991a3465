package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/storage"
	"github.com/interviewai-team/interviewai-backend/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	userHandler      *User
	interviewHandler *Interview
	analysisHandler  *Analysis
	analyticsHandler *Analytics
	authMW           echo.MiddlewareFunc
	storage          *storage.MinIOClient
}

// NewRouter creates a new router with all handlers. storageClient may be
// nil; the health payload then omits the storage section.
func NewRouter(
	cfg *config.Config,
	userHandler *User,
	interviewHandler *Interview,
	analysisHandler *Analysis,
	analyticsHandler *Analytics,
	authMW echo.MiddlewareFunc,
	storageClient *storage.MinIOClient,
) *Router {
	return &Router{
		cfg:              cfg,
		userHandler:      userHandler,
		interviewHandler: interviewHandler,
		analysisHandler:  analysisHandler,
		analyticsHandler: analyticsHandler,
		authMW:           authMW,
		storage:          storageClient,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupUserRoutes(v1)
	rt.setupInterviewRoutes(v1)
	rt.setupAnalysisRoutes(v1)
	rt.setupAnalyticsRoutes(v1)
}

// setupUserRoutes configures account routes. Registration is the only
// unauthenticated endpoint besides health and swagger.
func (rt *Router) setupUserRoutes(g *echo.Group) {
	users := g.Group("/users")
	users.POST("", rt.userHandler.Create)

	me := users.Group("/me", rt.authMW)
	me.GET("", rt.userHandler.GetMe)
	me.PATCH("", rt.userHandler.UpdateMe)
}

// setupInterviewRoutes configures interview and analysis-snapshot routes
func (rt *Router) setupInterviewRoutes(g *echo.Group) {
	interviews := g.Group("/interviews", rt.authMW)

	interviews.POST("", rt.interviewHandler.Ingest)
	interviews.GET("", rt.interviewHandler.List)
	interviews.GET("/:id", rt.interviewHandler.Get)
	interviews.DELETE("/:id", rt.interviewHandler.Delete)
	interviews.GET("/:id/analysis", rt.interviewHandler.GetAnalysis)
	interviews.PATCH("/:id/analysis/decision", rt.interviewHandler.UpdateDecision)
	interviews.GET("/:id/analysis/export", rt.interviewHandler.Export)
}

// setupAnalysisRoutes configures the synchronous analyzer and the job queue
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	analysis := g.Group("/analysis", rt.authMW)

	analysis.POST("/quick", rt.analysisHandler.QuickAnalyze)
	analysis.POST("/batch", rt.analysisHandler.Batch)
	analysis.GET("/jobs", rt.analysisHandler.ListJobs)
	analysis.GET("/jobs/:id", rt.analysisHandler.GetJob)
	analysis.POST("/jobs/:id/cancel", rt.analysisHandler.CancelJob)
	analysis.POST("/jobs/:id/retry", rt.analysisHandler.RetryJob)
}

// setupAnalyticsRoutes configures the aggregation endpoints
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	analytics := g.Group("/analytics", rt.authMW)

	analytics.GET("/progress", rt.analyticsHandler.Progress)
	analytics.GET("/trends", rt.analyticsHandler.Trends)
	analytics.GET("/achievements", rt.analyticsHandler.Achievements)
	analytics.GET("/benchmarks", rt.analyticsHandler.Benchmarks)
	analytics.GET("/dashboard", rt.analyticsHandler.Dashboard)
}

// healthCheck returns health status, including object-storage reachability
// when a client is configured
func (rt *Router) healthCheck(c echo.Context) error {
	environment := "development"
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	payload := map[string]interface{}{
		"status":      "ok",
		"environment": environment,
	}
	if rt.storage != nil {
		info, err := rt.storage.GetBucketInfo(c.Request().Context())
		if err != nil {
			payload["storage"] = map[string]interface{}{"error": err.Error()}
		} else {
			payload["storage"] = info
		}
	}
	return c.JSON(http.StatusOK, payload)
}
