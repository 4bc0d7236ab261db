package scoring

import (
	"context"
	"fmt"
	"log"
	"math"

	"fraudguard/internal/models"

	"github.com/google/uuid"
)

type service struct {
	scorer  Scorer
	store   EvaluationStore
	signals SignalTracker
	metrics MetricsCollector
}

// NewService creates a new scoring service. A nil scorer puts the service in
// degraded mode: every Evaluate call fails with ErrArtifactsUnavailable and
// the collaborators are never invoked. Store and signals are optional; their
// failures are logged, not surfaced, because the audit trail is a write-behind
// of an already rendered result.
func NewService(scorer Scorer, store EvaluationStore, signals SignalTracker, metrics MetricsCollector) Service {
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		scorer:  scorer,
		store:   store,
		signals: signals,
		metrics: metrics,
	}
}

func (s *service) Available() bool {
	return s.scorer != nil
}

func (s *service) Evaluate(ctx context.Context, raw models.RawTransaction, operator string) (*Outcome, error) {
	if s.scorer == nil {
		s.metrics.RecordError("evaluate", "artifacts_unavailable")
		return nil, ErrArtifactsUnavailable
	}

	if err := validateRaw(raw); err != nil {
		s.metrics.RecordError("evaluate", "invalid_input")
		return nil, err
	}

	features := DeriveFeatures(raw)

	scaled, err := s.scorer.Scale(features.Values())
	if err != nil {
		s.metrics.RecordError("evaluate", "scale_failed")
		return nil, fmt.Errorf("scale features: %w", err)
	}

	probability, err := s.scorer.Predict(scaled)
	if err != nil {
		s.metrics.RecordError("evaluate", "predict_failed")
		return nil, fmt.Errorf("predict: %w", err)
	}

	result, err := RenderDecision(probability)
	if err != nil {
		s.metrics.RecordError("evaluate", "invalid_probability")
		return nil, err
	}

	s.metrics.RecordEvaluation(result.Verdict)
	s.metrics.RecordRiskScore(result.RiskScore)

	outcome := &Outcome{
		EvaluationID: uuid.NewString(),
		Result:       result,
		Gauge:        NewGauge(result.RiskScore),
		Features:     features,
	}

	s.persist(ctx, raw, operator, outcome)
	s.track(ctx, raw, outcome)

	return outcome, nil
}

// validateRaw enforces the declared input domain. Out-of-range values are
// rejected, never clamped.
func validateRaw(raw models.RawTransaction) error {
	if !models.IsValidTransactionType(raw.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, raw.Type)
	}
	if raw.Step < 0 || raw.Step > models.MaxStep {
		return fmt.Errorf("%w: step %d outside [0,%d]", ErrInvalidInput, raw.Step, models.MaxStep)
	}

	monetary := map[string]float64{
		"amount":           raw.Amount,
		"old_balance_orig": raw.OldBalanceOrig,
		"new_balance_orig": raw.NewBalanceOrig,
		"old_balance_dest": raw.OldBalanceDest,
		"new_balance_dest": raw.NewBalanceDest,
	}
	for field, value := range monetary {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, field)
		}
		if value < 0 {
			return fmt.Errorf("%w: %s is negative", ErrInvalidInput, field)
		}
	}

	return nil
}

func (s *service) persist(ctx context.Context, raw models.RawTransaction, operator string, outcome *Outcome) {
	if s.store == nil {
		return
	}

	eval := &models.Evaluation{
		EvaluationID:   outcome.EvaluationID,
		Operator:       operator,
		Type:           raw.Type,
		Step:           raw.Step,
		Amount:         raw.Amount,
		OldBalanceOrig: raw.OldBalanceOrig,
		NewBalanceOrig: raw.NewBalanceOrig,
		OldBalanceDest: raw.OldBalanceDest,
		NewBalanceDest: raw.NewBalanceDest,
		Probability:    outcome.Result.Probability,
		RiskScore:      outcome.Result.RiskScore,
		Verdict:        outcome.Result.Verdict,
		Status:         models.EvaluationStatusCompleted,
		Metadata: models.JSON{
			"hour_of_day":        outcome.Features.HourOfDay,
			"error_balance_orig": outcome.Features.ErrorBalanceOrig,
			"error_balance_dest": outcome.Features.ErrorBalanceDest,
		},
	}

	if err := s.store.Create(ctx, eval); err != nil {
		s.metrics.RecordError("persist", "store_failed")
		log.Printf("Failed to persist evaluation %s: %v", outcome.EvaluationID, err)
	}
}

func (s *service) track(ctx context.Context, raw models.RawTransaction, outcome *Outcome) {
	if s.signals == nil {
		return
	}

	signals, err := s.signals.Update(ctx, raw.Type, raw.Amount, outcome.Result.Verdict == models.VerdictFraud)
	if err != nil {
		s.metrics.RecordError("signals", "update_failed")
		log.Printf("Failed to update fraud signals for type %s: %v", raw.Type, err)
		return
	}
	outcome.Signals = signals
}
