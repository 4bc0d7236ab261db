package repositories

import (
	"context"
	"fmt"
	"time"

	"fraudguard/internal/models"
	"fraudguard/internal/repositories/cache"
)

const signalTTL = 2 * time.Hour

// SignalTracker keeps rolling fraud signals per transaction type in Redis.
// The aggregates decorate scoring responses; the classifier never sees them.
type SignalTracker struct {
	cache *cache.CacheService
}

func NewSignalTracker(cacheService *cache.CacheService) *SignalTracker {
	return &SignalTracker{cache: cacheService}
}

func (t *SignalTracker) Update(ctx context.Context, txType string, amount float64, fraud bool) (*models.FraudSignals, error) {
	key := t.cache.GenerateKey("signals", "type", txType)

	var signals models.FraudSignals
	found, err := t.cache.Get(ctx, key, &signals)
	if err != nil {
		return nil, fmt.Errorf("get fraud signals: %w", err)
	}

	now := time.Now()
	if !found {
		signals = models.FraudSignals{
			FirstSeen:   now,
			TxnCount:    0,
			TotalAmount: 0,
		}
	}

	signals.LastSeen = now
	signals.TxnCount++
	signals.TotalAmount += amount
	signals.AvgAmount = signals.TotalAmount / float64(signals.TxnCount)
	if amount > signals.MaxAmount {
		signals.MaxAmount = amount
	}
	if fraud {
		signals.FraudCount++
	}

	if err := t.cache.SetWithTTL(ctx, key, &signals, signalTTL); err != nil {
		return nil, fmt.Errorf("set fraud signals: %w", err)
	}

	return &signals, nil
}
