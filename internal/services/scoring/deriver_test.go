package scoring

import (
	"testing"

	"fraudguard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFeatures_OneHotFlags(t *testing.T) {
	tests := []struct {
		name     string
		txType   string
		expected models.FeatureVector
	}{
		{
			name:     "cash out sets only its flag",
			txType:   models.TransactionTypeCashOut,
			expected: models.FeatureVector{IsCashOut: 1},
		},
		{
			name:     "debit sets only its flag",
			txType:   models.TransactionTypeDebit,
			expected: models.FeatureVector{IsDebit: 1},
		},
		{
			name:     "payment sets only its flag",
			txType:   models.TransactionTypePayment,
			expected: models.FeatureVector{IsPayment: 1},
		},
		{
			name:     "transfer sets only its flag",
			txType:   models.TransactionTypeTransfer,
			expected: models.FeatureVector{IsTransfer: 1},
		},
		{
			name:     "cash in is the baseline with all flags zero",
			txType:   models.TransactionTypeCashIn,
			expected: models.FeatureVector{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := models.RawTransaction{Type: tt.txType}
			f := DeriveFeatures(raw)

			assert.Equal(t, tt.expected.IsCashOut, f.IsCashOut)
			assert.Equal(t, tt.expected.IsDebit, f.IsDebit)
			assert.Equal(t, tt.expected.IsPayment, f.IsPayment)
			assert.Equal(t, tt.expected.IsTransfer, f.IsTransfer)

			flagSum := f.IsCashOut + f.IsDebit + f.IsPayment + f.IsTransfer
			assert.LessOrEqual(t, flagSum, 1.0, "at most one flag may be set")
		})
	}
}

func TestDeriveFeatures_HourOfDay(t *testing.T) {
	tests := []struct {
		step int
		want float64
	}{
		{step: 0, want: 0},
		{step: 1, want: 1},
		{step: 23, want: 23},
		{step: 24, want: 0},
		{step: 25, want: 1},
		{step: 744, want: 0},
	}

	for _, tt := range tests {
		f := DeriveFeatures(models.RawTransaction{Type: models.TransactionTypeCashIn, Step: tt.step})
		assert.Equal(t, tt.want, f.HourOfDay, "step %d", tt.step)
		assert.GreaterOrEqual(t, f.HourOfDay, 0.0)
		assert.LessOrEqual(t, f.HourOfDay, 23.0)
	}
}

func TestDeriveFeatures_BalanceDiscrepancies(t *testing.T) {
	raw := models.RawTransaction{
		Type:           models.TransactionTypePayment,
		Step:           1,
		Amount:         15000,
		OldBalanceOrig: 50000,
		NewBalanceOrig: 35000,
		OldBalanceDest: 0,
		NewBalanceDest: 0,
	}

	f := DeriveFeatures(raw)

	assert.Equal(t, []float64{0, 0, 1, 0, 0, 15000, 1}, f.Values())
}

func TestDeriveFeatures_IsPure(t *testing.T) {
	raw := models.RawTransaction{
		Type:           models.TransactionTypeTransfer,
		Step:           311,
		Amount:         1234.56,
		OldBalanceOrig: 9000.25,
		NewBalanceOrig: 7765.69,
		OldBalanceDest: 10,
		NewBalanceDest: 1244.56,
	}

	first := DeriveFeatures(raw)
	second := DeriveFeatures(raw)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Values(), second.Values())
}
