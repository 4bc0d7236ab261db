package validation

import (
	"fraudguard/internal/models"
)

// RawTransaction validates a scoring request against the declared input
// domain. Violations are reported per field; values are never clamped.
func (v *Validator) RawTransaction(tx *models.RawTransaction) {
	v.In("type", tx.Type, models.TransactionTypes)
	v.IntRange("step", tx.Step, 0, models.MaxStep)
	v.NonNegative("amount", tx.Amount)
	v.NonNegative("old_balance_orig", tx.OldBalanceOrig)
	v.NonNegative("new_balance_orig", tx.NewBalanceOrig)
	v.NonNegative("old_balance_dest", tx.OldBalanceDest)
	v.NonNegative("new_balance_dest", tx.NewBalanceDest)
}

// Login validates operator credentials presence
func (v *Validator) Login(email, password string) {
	v.Required("email", email)
	v.Email("email", email)
	v.Required("password", password)
}
