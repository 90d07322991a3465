package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/domain/repositories"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/cache"
	"github.com/interviewai-team/interviewai-backend/pkg/config"
)

const defaultDashboardCacheTTL = 5 * time.Minute

// Service exposes the analytics aggregations over a user's completed
// interviews. Every endpoint recomputes from storage except the dashboard,
// which is cached per user and timeframe.
type Service interface {
	GetProgress(ctx context.Context, userID uuid.UUID, timeframe Timeframe) (*ProgressMetrics, error)
	GetTrends(ctx context.Context, userID uuid.UUID, timeframe Timeframe) (*TrendReport, error)
	GetAchievements(ctx context.Context, userID uuid.UUID) ([]Achievement, error)
	GetBenchmarks(ctx context.Context, userID uuid.UUID, timeframe Timeframe) (*BenchmarkReport, error)
	GetDashboard(ctx context.Context, userID uuid.UUID, timeframe Timeframe) (*Dashboard, error)
	InvalidateDashboards(ctx context.Context, userID uuid.UUID)
}

// DashboardInvalidator is the slice of Service needed by writers that
// change a user's interview history.
type DashboardInvalidator interface {
	InvalidateDashboards(ctx context.Context, userID uuid.UUID)
}

type service struct {
	cfg           *config.Config
	interviewRepo repositories.InterviewRepository
	store         cache.Store
	logger        *zap.Logger
}

// NewService creates the analytics service
func NewService(cfg *config.Config, interviewRepo repositories.InterviewRepository, store cache.Store, logger *zap.Logger) Service {
	return &service{
		cfg:           cfg,
		interviewRepo: interviewRepo,
		store:         store,
		logger:        logger,
	}
}

func (s *service) GetProgress(ctx context.Context, userID uuid.UUID, timeframe Timeframe) (*ProgressMetrics, error) {
	interviews, err := s.completedWithin(ctx, userID, timeframe)
	if err != nil {
		return nil, err
	}
	metrics := CalculateProgress(interviews)
	return &metrics, nil
}

func (s *service) GetTrends(ctx context.Context, userID uuid.UUID, timeframe Timeframe) (*TrendReport, error) {
	interviews, err := s.completedWithin(ctx, userID, timeframe)
	if err != nil {
		return nil, err
	}
	report := CalculateTrends(interviews)
	return &report, nil
}

// GetAchievements evaluates the rule table against the full history; the
// endpoint takes no timeframe.
func (s *service) GetAchievements(ctx context.Context, userID uuid.UUID) ([]Achievement, error) {
	history, err := s.fullHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return EvaluateAchievements(history), nil
}

func (s *service) GetBenchmarks(ctx context.Context, userID uuid.UUID, timeframe Timeframe) (*BenchmarkReport, error) {
	interviews, err := s.completedWithin(ctx, userID, timeframe)
	if err != nil {
		return nil, err
	}
	report := CompareBenchmarks(interviews)
	return &report, nil
}

func (s *service) GetDashboard(ctx context.Context, userID uuid.UUID, timeframe Timeframe) (*Dashboard, error) {
	key := dashboardCacheKey(userID, timeframe)

	if s.store != nil {
		raw, found, err := s.store.Get(ctx, key)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Dashboard cache read failed", zap.Error(err))
			}
		} else if found {
			var cached Dashboard
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	interviews, err := s.completedWithin(ctx, userID, timeframe)
	if err != nil {
		return nil, err
	}
	history, err := s.fullHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Timeframe:    timeframe.String(),
		Progress:     CalculateProgress(interviews),
		Trends:       CalculateTrends(interviews),
		Achievements: EvaluateAchievements(history),
		Benchmarks:   CompareBenchmarks(interviews),
		GeneratedAt:  time.Now().UTC(),
	}

	if s.store != nil {
		if raw, err := json.Marshal(dashboard); err == nil {
			if err := s.store.Set(ctx, key, string(raw), s.cacheTTL()); err != nil && s.logger != nil {
				s.logger.Warn("⚠️ Dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return dashboard, nil
}

func (s *service) cacheTTL() time.Duration {
	if s.cfg != nil && s.cfg.Analytics.DashboardCacheTTL > 0 {
		return s.cfg.Analytics.DashboardCacheTTL
	}
	return defaultDashboardCacheTTL
}

// InvalidateDashboards drops every cached dashboard for the user. Called
// after ingest, analysis completion, and deletion; failures only log since
// a stale dashboard expires on its own within the TTL.
func (s *service) InvalidateDashboards(ctx context.Context, userID uuid.UUID) {
	if s.store == nil {
		return
	}
	for tf := range timeframeDays {
		if err := s.store.Delete(ctx, dashboardCacheKey(userID, tf)); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Dashboard cache invalidation failed",
				zap.String("user_id", userID.String()),
				zap.String("timeframe", tf.String()),
				zap.Error(err))
		}
	}
}

func (s *service) completedWithin(ctx context.Context, userID uuid.UUID, timeframe Timeframe) ([]*entities.Interview, error) {
	cutoff := timeframe.CutoffFrom(time.Now().UTC())
	interviews, err := s.interviewRepo.FindCompletedSince(ctx, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load interview history: %w", err)
	}
	return interviews, nil
}

func (s *service) fullHistory(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error) {
	interviews, err := s.interviewRepo.FindCompletedSince(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to load interview history: %w", err)
	}
	return interviews, nil
}

func dashboardCacheKey(userID uuid.UUID, timeframe Timeframe) string {
	return fmt.Sprintf("dashboard:%s:%s", userID, timeframe)
}
