// Package artifacts loads the pre-fit scaler and classifier from disk.
// Both artifacts are read exactly once at startup and held immutable for
// the process lifetime; they are safe to share across concurrent requests.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"

	"fraudguard/internal/models"
)

// Bundle is the jointly-required pair of scoring artifacts. A nil Bundle
// means the scoring path is disabled (degraded mode).
type Bundle struct {
	scaler  *Scaler
	network *Network
}

// Load reads and validates both artifact files. Absence or corruption of
// either file fails the whole load; the caller decides whether to run
// degraded instead of exiting.
func Load(modelPath, scalerPath string) (*Bundle, error) {
	var network Network
	if err := readJSON(modelPath, &network); err != nil {
		return nil, fmt.Errorf("load model artifact: %w", err)
	}
	if err := network.validate(models.FeatureCount); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", modelPath, err)
	}

	var scaler Scaler
	if err := readJSON(scalerPath, &scaler); err != nil {
		return nil, fmt.Errorf("load scaler artifact: %w", err)
	}
	if err := scaler.validate(models.FeatureCount); err != nil {
		return nil, fmt.Errorf("invalid scaler artifact %s: %w", scalerPath, err)
	}

	return &Bundle{scaler: &scaler, network: &network}, nil
}

// Scale applies the pre-fit standardization to a raw feature vector.
func (b *Bundle) Scale(input []float64) ([]float64, error) {
	return b.scaler.Transform(input)
}

// Predict maps a scaled feature vector to a fraud probability.
func (b *Bundle) Predict(input []float64) (float64, error) {
	return b.network.Predict(input)
}

func readJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
