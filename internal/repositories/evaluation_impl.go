package repositories

import (
	"context"
	"errors"
	"time"

	"fraudguard/internal/models"

	"gorm.io/gorm"
)

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{
		db: db,
	}
}

func (r *evaluationRepository) Create(ctx context.Context, eval *models.Evaluation) error {
	return r.db.WithContext(ctx).Create(eval).Error
}

func (r *evaluationRepository) GetByEvaluationID(ctx context.Context, evaluationID string) (*models.Evaluation, error) {
	var eval models.Evaluation
	err := r.db.WithContext(ctx).Where("evaluation_id = ?", evaluationID).First(&eval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	return &eval, nil
}

func (r *evaluationRepository) GetRecent(ctx context.Context, limit, offset int) ([]models.Evaluation, int64, error) {
	var evals []models.Evaluation
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Evaluation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&evals).Error

	return evals, total, err
}

func (r *evaluationRepository) GetStats(ctx context.Context) (count int64, avgRiskScore float64, err error) {
	row := r.db.WithContext(ctx).Model(&models.Evaluation{}).
		Select("COUNT(*) as count, COALESCE(AVG(risk_score), 0) as avg_risk_score").
		Row()

	err = row.Scan(&count, &avgRiskScore)
	return
}

func (r *evaluationRepository) GetVerdictCounts(ctx context.Context) (map[string]int64, error) {
	type Result struct {
		Verdict string
		Count   int64
	}
	var results []Result

	err := r.db.WithContext(ctx).Model(&models.Evaluation{}).
		Select("verdict, COUNT(*) as count").
		Group("verdict").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, res := range results {
		counts[res.Verdict] = res.Count
	}
	return counts, nil
}

func (r *evaluationRepository) GetCountByType(ctx context.Context) (map[string]int64, error) {
	type Result struct {
		Type  string
		Count int64
	}
	var results []Result

	err := r.db.WithContext(ctx).Model(&models.Evaluation{}).
		Select("type, COUNT(*) as count").
		Group("type").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, res := range results {
		counts[res.Type] = res.Count
	}
	return counts, nil
}

func (r *evaluationRepository) GetLastEvaluation(ctx context.Context) (*models.Evaluation, error) {
	var eval models.Evaluation
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&eval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	return &eval, nil
}

func (r *evaluationRepository) GetVolumeOverTime(ctx context.Context, startDate, endDate time.Time) (map[string]float64, error) {
	type Result struct {
		Date  string
		Total float64
	}
	var results []Result

	err := r.db.WithContext(ctx).Model(&models.Evaluation{}).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Select("DATE(created_at) as date, SUM(amount) as total").
		Group("DATE(created_at)").
		Order("date").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	volume := make(map[string]float64)
	for _, res := range results {
		volume[res.Date] = res.Total
	}
	return volume, nil
}

func (r *evaluationRepository) GetFraudRateOverTime(ctx context.Context, startDate, endDate time.Time) (map[string]float64, error) {
	type Result struct {
		Date string
		Rate float64
	}
	var results []Result

	err := r.db.WithContext(ctx).Model(&models.Evaluation{}).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Select("DATE(created_at) as date, AVG(CASE WHEN verdict = ? THEN 1.0 ELSE 0.0 END) as rate", models.VerdictFraud).
		Group("DATE(created_at)").
		Order("date").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rates := make(map[string]float64)
	for _, res := range results {
		rates[res.Date] = res.Rate
	}
	return rates, nil
}
