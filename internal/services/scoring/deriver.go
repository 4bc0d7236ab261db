package scoring

import "fraudguard/internal/models"

// DeriveFeatures converts a raw transaction into the fixed-order feature
// vector the artifacts were fitted on. It is a pure function: identical
// input always yields an identical vector.
//
// The one-hot encoding omits CASH_IN as the implicit baseline category, so
// a CASH_IN transaction leaves all four flags at zero.
func DeriveFeatures(raw models.RawTransaction) models.FeatureVector {
	f := models.FeatureVector{
		ErrorBalanceOrig: raw.NewBalanceOrig + raw.Amount - raw.OldBalanceOrig,
		ErrorBalanceDest: raw.OldBalanceDest + raw.Amount - raw.NewBalanceDest,
		HourOfDay:        float64(raw.Step % 24),
	}

	switch raw.Type {
	case models.TransactionTypeCashOut:
		f.IsCashOut = 1
	case models.TransactionTypeDebit:
		f.IsDebit = 1
	case models.TransactionTypePayment:
		f.IsPayment = 1
	case models.TransactionTypeTransfer:
		f.IsTransfer = 1
	}

	return f
}
