package scoring

import (
	"math"
	"testing"

	"fraudguard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderDecision_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		wantVerdict string
	}{
		{name: "exactly at threshold is safe", probability: 0.5, wantVerdict: models.VerdictSafe},
		{name: "just above threshold is fraud", probability: 0.5000001, wantVerdict: models.VerdictFraud},
		{name: "zero probability is safe", probability: 0.0, wantVerdict: models.VerdictSafe},
		{name: "certain fraud", probability: 1.0, wantVerdict: models.VerdictFraud},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderDecision(tt.probability)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantVerdict, result.Verdict)
		})
	}
}

func TestRenderDecision_RiskScore(t *testing.T) {
	result, err := RenderDecision(1.0)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, result.RiskScore)

	result, err = RenderDecision(0.0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.RiskScore)

	result, err = RenderDecision(0.42)
	assert.NoError(t, err)
	assert.InDelta(t, 42.0, result.RiskScore, 1e-9)
}

func TestRenderDecision_RationaleIsStaticPerVerdict(t *testing.T) {
	fraud, err := RenderDecision(0.9)
	assert.NoError(t, err)
	safe, err2 := RenderDecision(0.1)
	assert.NoError(t, err2)

	assert.NotEqual(t, fraud.Rationale, safe.Rationale)
	assert.Equal(t, ActionBlock, fraud.RecommendedAction)
	assert.Equal(t, ActionProcess, safe.RecommendedAction)

	// Same verdict always carries the same fixed text.
	fraud2, _ := RenderDecision(0.6)
	assert.Equal(t, fraud.Rationale, fraud2.Rationale)
}

func TestRenderDecision_RejectsInvalidProbability(t *testing.T) {
	invalid := []float64{
		math.NaN(),
		math.Inf(1),
		math.Inf(-1),
		-0.01,
		1.01,
	}

	for _, p := range invalid {
		_, err := RenderDecision(p)
		assert.ErrorIs(t, err, ErrInvalidProbability, "probability %v", p)
	}
}
