package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/interviewai-team/interviewai-backend/pkg/validator"

	_ "github.com/interviewai-team/interviewai-backend/docs"
	"github.com/interviewai-team/interviewai-backend/internal/adapter/handler"
	"github.com/interviewai-team/interviewai-backend/internal/adapter/repository"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/cache"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/database"
	httpmw "github.com/interviewai-team/interviewai-backend/internal/infrastructure/http/middleware"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/storage"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/analysis"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/analytics"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/interview"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/user"
	"github.com/interviewai-team/interviewai-backend/pkg/config"
	"github.com/interviewai-team/interviewai-backend/pkg/jwt"
)

// @title           InterviewAI API
// @version         1.0
// @description     Speech-analysis backend for mock interview practice: transcript ingestion, an asynchronous analysis pipeline, and performance analytics.

// @contact.name   API Support
// @contact.email  support@interviewai.dev

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Request IDs for log correlation
	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Disable it and manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying sql-migrate migrations (development only) ...")
		if err := database.AutoMigrate(db, cfg.Database.MigrationsDir); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; apply them with sql-migrate in CI/CD/production")
	}

	// Initialize cache store. Redis is optional; the in-memory store keeps
	// single-instance deployments dependency-free.
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient)
	} else {
		log.Println("📦 Redis disabled, using in-memory cache")
		store = cache.NewMemoryStore()
	}

	// Initialize object storage for snapshot archiving (optional)
	var storageClient *storage.MinIOClient
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		storageClient, err = storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
	} else {
		log.Println("🗄️  Object storage disabled; snapshot archiving and export are off")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	jobRepo := repository.NewAnalysisJobRepository(db)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Initialize services. Analytics comes first so the writers can
	// invalidate its dashboard cache.
	log.Println("✨ Initializing services...")
	analyticsService := analytics.NewService(cfg, interviewRepo, store, logger)
	analysisService := analysis.NewService(cfg, logger, jobRepo, interviewRepo, analysisRepo, storageClient, analyticsService)
	interviewService := interview.NewInterviewService(interviewRepo, analysisRepo, jobRepo, analysisService, storageClient, analyticsService)
	userService := user.NewService(userRepo)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	userHandler := handler.NewUserHandler(userService, logger)
	interviewHandler := handler.NewInterviewHandler(interviewService, logger)
	analysisHandler := handler.NewAnalysisHandler(analysisService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(jwtManager)
	router := handler.NewRouter(cfg, userHandler, interviewHandler, analysisHandler, analyticsHandler, authEchoMW, storageClient)
	router.Setup(e)

	// Start the analysis worker pool
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if err := analysisService.StartWorkerPool(workerCtx, cfg.Pipeline.WorkerCount); err != nil {
		log.Fatalf("Failed to start analysis worker pool: %v", err)
	}

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Let in-flight jobs finish before the HTTP listener closes so progress
	// updates still reach clients polling job status.
	if err := analysisService.StopWorkerPool(); err != nil {
		log.Printf("⚠️  Worker pool stop: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
