package models

import (
	"time"
)

// Verdicts
const (
	VerdictFraud = "FRAUD"
	VerdictSafe  = "SAFE"
)

// Evaluation statuses
const (
	EvaluationStatusCompleted = "completed"
	EvaluationStatusRejected  = "rejected"
)

// ScoredResult is the structured outcome of one scoring pass.
type ScoredResult struct {
	Probability       float64  `json:"probability"`
	RiskScore         float64  `json:"risk_score"`
	Verdict           string   `json:"verdict"`
	Rationale         []string `json:"rationale"`
	RecommendedAction string   `json:"recommended_action"`
}

// Evaluation is the persisted audit record of a scoring pass.
// It is written after the result has been rendered; the scoring path
// itself never reads it back.
type Evaluation struct {
	ID             uint    `gorm:"primarykey"`
	EvaluationID   string  `gorm:"uniqueIndex;not null"` // External reference ID
	Operator       string  `gorm:"index"`
	Type           string  `gorm:"not null;index"`
	Step           int     `gorm:"not null"`
	Amount         float64 `gorm:"not null"`
	OldBalanceOrig float64
	NewBalanceOrig float64
	OldBalanceDest float64
	NewBalanceDest float64
	Probability    float64 `gorm:"not null"`
	RiskScore      float64 `gorm:"not null"`
	Verdict        string  `gorm:"not null;index"`
	Status         string  `gorm:"not null;default:'completed'"`
	Metadata       JSON    `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DashboardStats summarizes the evaluation history for the overview panel.
type DashboardStats struct {
	TotalEvaluations  int64            `json:"total_evaluations"`
	FraudCount        int64            `json:"fraud_count"`
	SafeCount         int64            `json:"safe_count"`
	FraudRate         float64          `json:"fraud_rate"`
	AverageRiskScore  float64          `json:"average_risk_score"`
	LastEvaluationAt  *time.Time       `json:"last_evaluation_at"`
	VerdictCounts     map[string]int64 `json:"verdict_counts"`
	EvaluationsByType map[string]int64 `json:"evaluations_by_type"`
	RecentEvaluations []Evaluation     `json:"recent_evaluations"`
}
