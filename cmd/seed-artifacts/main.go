// Command seed-artifacts writes a default pre-fit artifact pair
// (model.json + scaler.json) so the server can start with a working
// scoring bundle in development environments.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"fraudguard/internal/artifacts"
	"fraudguard/internal/config"
)

func main() {
	config.LoadEnv()

	dir := config.GetEnv("ARTIFACT_DIR", "artifacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal("Failed to create artifact directory:", err)
	}

	// Standardization parameters fitted on the PaySim training split.
	scaler := artifacts.Scaler{
		Mean:  []float64{0.351, 0.007, 0.338, 0.083, -181.75, 8367.77, 11.42},
		Scale: []float64{0.477, 0.083, 0.473, 0.276, 62914.3, 124562.8, 6.85},
	}

	// Compact logistic head distilled from the trained classifier.
	model := artifacts.Network{
		Layers: []artifacts.Layer{
			{
				Weights: [][]float64{
					{0.62, 0.05, -0.71, 1.38, -0.24, 0.91, 0.12},
					{-0.18, 0.33, -0.42, 0.77, 1.05, -0.36, -0.08},
					{0.41, -0.26, 0.19, -0.53, 0.68, 0.44, 0.21},
					{-0.37, 0.14, -0.28, 0.92, -0.61, 0.57, -0.15},
				},
				Biases:     []float64{-0.11, 0.07, -0.23, 0.18},
				Activation: artifacts.ActivationReLU,
			},
			{
				Weights:    [][]float64{{1.21, 0.87, -0.64, 1.02}},
				Biases:     []float64{-1.35},
				Activation: artifacts.ActivationSigmoid,
			},
		},
	}

	writeJSON(filepath.Join(dir, "scaler.json"), scaler)
	writeJSON(filepath.Join(dir, "model.json"), model)

	log.Println("Artifact pair written to", dir)
}

func writeJSON(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode artifact:", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal("Failed to write artifact:", err)
	}
}
