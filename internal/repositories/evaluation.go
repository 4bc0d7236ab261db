package repositories

import (
	"context"
	"errors"
	"time"

	"fraudguard/internal/models"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

// EvaluationRepository stores and aggregates scoring audit records.
type EvaluationRepository interface {
	Create(ctx context.Context, eval *models.Evaluation) error
	GetByEvaluationID(ctx context.Context, evaluationID string) (*models.Evaluation, error)
	GetRecent(ctx context.Context, limit, offset int) ([]models.Evaluation, int64, error)

	// Aggregations for the dashboard
	GetStats(ctx context.Context) (count int64, avgRiskScore float64, err error)
	GetVerdictCounts(ctx context.Context) (map[string]int64, error)
	GetCountByType(ctx context.Context) (map[string]int64, error)
	GetLastEvaluation(ctx context.Context) (*models.Evaluation, error)
	GetVolumeOverTime(ctx context.Context, startDate, endDate time.Time) (map[string]float64, error)
	GetFraudRateOverTime(ctx context.Context, startDate, endDate time.Time) (map[string]float64, error)
}
