package models

import "time"

// FraudSignals is a rolling aggregate kept per transaction type. It is
// advisory response metadata only and never feeds the classifier input.
type FraudSignals struct {
	FirstSeen   time.Time `json:"first_seen"`
	LastSeen    time.Time `json:"last_seen"`
	TxnCount    int       `json:"txn_count"`
	FraudCount  int       `json:"fraud_count"`
	TotalAmount float64   `json:"total_amount"`
	AvgAmount   float64   `json:"avg_amount"`
	MaxAmount   float64   `json:"max_amount"`
}
