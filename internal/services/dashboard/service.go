package dashboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"fraudguard/internal/models"
	"fraudguard/internal/repositories"
	"fraudguard/internal/repositories/cache"
)

const overviewCacheTTL = 30 * time.Second

type Service interface {
	GetOverview(ctx context.Context) (*models.DashboardStats, error)
	GetAnalytics(ctx context.Context, startDate, endDate time.Time) (map[string]interface{}, error)
}

type service struct {
	evalRepo repositories.EvaluationRepository
	cache    *cache.CacheService
}

func NewService(evalRepo repositories.EvaluationRepository, cacheService *cache.CacheService) Service {
	return &service{
		evalRepo: evalRepo,
		cache:    cacheService,
	}
}

func (s *service) GetOverview(ctx context.Context) (*models.DashboardStats, error) {
	cacheKey := "dashboard:overview"

	if s.cache != nil {
		var cached models.DashboardStats
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	count, avgRisk, err := s.evalRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation stats: %w", err)
	}

	verdictCounts, err := s.evalRepo.GetVerdictCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get verdict counts: %w", err)
	}

	byType, err := s.evalRepo.GetCountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get counts by type: %w", err)
	}

	recent, _, err := s.evalRepo.GetRecent(ctx, 10, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent evaluations: %w", err)
	}

	stats := &models.DashboardStats{
		TotalEvaluations:  count,
		FraudCount:        verdictCounts[models.VerdictFraud],
		SafeCount:         verdictCounts[models.VerdictSafe],
		AverageRiskScore:  avgRisk,
		VerdictCounts:     verdictCounts,
		EvaluationsByType: byType,
		RecentEvaluations: recent,
	}
	if count > 0 {
		stats.FraudRate = float64(verdictCounts[models.VerdictFraud]) / float64(count) * 100
	}

	last, err := s.evalRepo.GetLastEvaluation(ctx)
	if err == nil {
		stats.LastEvaluationAt = &last.CreatedAt
	} else if err != repositories.ErrEvaluationNotFound {
		return nil, fmt.Errorf("failed to get last evaluation: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, cacheKey, stats, overviewCacheTTL); err != nil {
			log.Printf("Failed to cache dashboard overview: %v", err)
		}
	}

	return stats, nil
}

func (s *service) GetAnalytics(ctx context.Context, startDate, endDate time.Time) (map[string]interface{}, error) {
	volumeOverTime, err := s.evalRepo.GetVolumeOverTime(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get volume over time: %w", err)
	}

	fraudRateOverTime, err := s.evalRepo.GetFraudRateOverTime(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get fraud rate over time: %w", err)
	}

	countByType, err := s.evalRepo.GetCountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get counts by type: %w", err)
	}

	return map[string]interface{}{
		"volume_over_time":     volumeOverTime,
		"fraud_rate_over_time": fraudRateOverTime,
		"count_by_type":        countByType,
	}, nil
}
