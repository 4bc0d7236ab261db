package validation

import (
	"math"
	"testing"

	"fraudguard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidator_RawTransaction(t *testing.T) {
	tests := []struct {
		name      string
		tx        models.RawTransaction
		wantValid bool
		wantField string
	}{
		{
			name: "valid payment",
			tx: models.RawTransaction{
				Type: models.TransactionTypePayment, Step: 1, Amount: 15000,
				OldBalanceOrig: 50000, NewBalanceOrig: 35000,
			},
			wantValid: true,
		},
		{
			name:      "zero values are inside the domain",
			tx:        models.RawTransaction{Type: models.TransactionTypeCashIn},
			wantValid: true,
		},
		{
			name:      "step at upper bound",
			tx:        models.RawTransaction{Type: models.TransactionTypeDebit, Step: 744},
			wantValid: true,
		},
		{
			name:      "unknown type",
			tx:        models.RawTransaction{Type: "WIRE", Step: 1},
			wantValid: false,
			wantField: "type",
		},
		{
			name:      "step above range",
			tx:        models.RawTransaction{Type: models.TransactionTypeDebit, Step: 745},
			wantValid: false,
			wantField: "step",
		},
		{
			name:      "negative amount",
			tx:        models.RawTransaction{Type: models.TransactionTypeDebit, Step: 1, Amount: -1},
			wantValid: false,
			wantField: "amount",
		},
		{
			name:      "non-finite balance",
			tx:        models.RawTransaction{Type: models.TransactionTypeDebit, Step: 1, OldBalanceDest: math.NaN()},
			wantValid: false,
			wantField: "old_balance_dest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.RawTransaction(&tt.tx)

			assert.Equal(t, tt.wantValid, v.Valid())
			if tt.wantField != "" {
				assert.Contains(t, v.Errors, tt.wantField)
			}
		})
	}
}

func TestValidator_Login(t *testing.T) {
	v := New()
	v.Login("ops@example.com", "hunter2!A")
	assert.True(t, v.Valid())

	v = New()
	v.Login("not-an-email", "hunter2!A")
	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors, "email")

	v = New()
	v.Login("ops@example.com", "")
	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors, "password")
}
