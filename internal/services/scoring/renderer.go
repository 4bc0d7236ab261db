package scoring

import (
	"fmt"
	"math"

	"fraudguard/internal/models"
)

// RenderDecision maps a fraud probability to the structured verdict report.
// The verdict is FRAUD only for probabilities strictly above the threshold;
// exactly 0.5 renders as SAFE.
func RenderDecision(probability float64) (models.ScoredResult, error) {
	if math.IsNaN(probability) || math.IsInf(probability, 0) {
		return models.ScoredResult{}, fmt.Errorf("%w: %v", ErrInvalidProbability, probability)
	}
	if probability < 0 || probability > 1 {
		return models.ScoredResult{}, fmt.Errorf("%w: %v outside [0,1]", ErrInvalidProbability, probability)
	}

	result := models.ScoredResult{
		Probability: probability,
		RiskScore:   probability * 100,
	}

	if probability > Threshold {
		result.Verdict = models.VerdictFraud
		result.Rationale = append([]string(nil), fraudRationale...)
		result.RecommendedAction = ActionBlock
	} else {
		result.Verdict = models.VerdictSafe
		result.Rationale = append([]string(nil), safeRationale...)
		result.RecommendedAction = ActionProcess
	}

	return result, nil
}
