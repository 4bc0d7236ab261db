package models

// Transaction types (PaySim taxonomy)
const (
	TransactionTypeCashOut  = "CASH_OUT"
	TransactionTypePayment  = "PAYMENT"
	TransactionTypeCashIn   = "CASH_IN"
	TransactionTypeTransfer = "TRANSFER"
	TransactionTypeDebit    = "DEBIT"
)

// TransactionTypes lists every accepted transaction type.
var TransactionTypes = []string{
	TransactionTypeCashOut,
	TransactionTypePayment,
	TransactionTypeCashIn,
	TransactionTypeTransfer,
	TransactionTypeDebit,
}

// MaxStep is the last hour of a 31-day simulation month.
const MaxStep = 744

// RawTransaction holds the operator-supplied transaction fields.
// It is built fresh for every scoring request and never mutated afterwards.
type RawTransaction struct {
	Type           string  `json:"type"`
	Step           int     `json:"step"`
	Amount         float64 `json:"amount"`
	OldBalanceOrig float64 `json:"old_balance_orig"`
	NewBalanceOrig float64 `json:"new_balance_orig"`
	OldBalanceDest float64 `json:"old_balance_dest"`
	NewBalanceDest float64 `json:"new_balance_dest"`
}

// FeatureCount is the dimensionality the scaler and classifier expect.
const FeatureCount = 7

// FeatureVector is the fixed-order numeric input to the classifier.
// CASH_IN is the implicit baseline category: all four flags stay zero.
type FeatureVector struct {
	IsCashOut        float64 `json:"is_cash_out"`
	IsDebit          float64 `json:"is_debit"`
	IsPayment        float64 `json:"is_payment"`
	IsTransfer       float64 `json:"is_transfer"`
	ErrorBalanceOrig float64 `json:"error_balance_orig"`
	ErrorBalanceDest float64 `json:"error_balance_dest"`
	HourOfDay        float64 `json:"hour_of_day"`
}

// Values returns the vector in the order the artifacts were fitted on.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.IsCashOut,
		f.IsDebit,
		f.IsPayment,
		f.IsTransfer,
		f.ErrorBalanceOrig,
		f.ErrorBalanceDest,
		f.HourOfDay,
	}
}

// IsValidTransactionType reports whether t is in the closed type enum.
func IsValidTransactionType(t string) bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}
