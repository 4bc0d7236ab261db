package scoring

import (
	"context"

	"fraudguard/internal/models"
)

// Service defines the main scoring service interface
type Service interface {
	// Evaluate runs one derive -> scale -> predict -> render pass.
	Evaluate(ctx context.Context, raw models.RawTransaction, operator string) (*Outcome, error)

	// Available reports whether the scoring artifacts loaded at startup.
	Available() bool
}

// Scorer is the opaque pair of collaborators loaded from the artifact files.
// Both transforms are deterministic and must not mutate internal state.
type Scorer interface {
	Scale(input []float64) ([]float64, error)
	Predict(input []float64) (float64, error)
}

// EvaluationStore persists the audit record of a completed pass.
type EvaluationStore interface {
	Create(ctx context.Context, eval *models.Evaluation) error
}

// SignalTracker keeps rolling per-type fraud signals as advisory metadata.
type SignalTracker interface {
	Update(ctx context.Context, txType string, amount float64, fraud bool) (*models.FraudSignals, error)
}

// MetricsCollector receives instrumentation hooks from the service.
type MetricsCollector interface {
	RecordEvaluation(verdict string)
	RecordRiskScore(score float64)
	RecordError(op, kind string)
}

// Outcome is the full response of one scoring pass.
type Outcome struct {
	EvaluationID string               `json:"evaluation_id"`
	Result       models.ScoredResult  `json:"result"`
	Gauge        Gauge                `json:"gauge"`
	Features     models.FeatureVector `json:"features"`
	Signals      *models.FraudSignals `json:"signals,omitempty"`
}
