package artifacts

import (
	"fmt"
	"math"
)

// Activation names accepted in a model artifact.
const (
	ActivationReLU    = "relu"
	ActivationSigmoid = "sigmoid"
	ActivationLinear  = "linear"
)

// Layer is one dense layer of the classifier. Weights is indexed
// [output unit][input unit].
type Layer struct {
	Weights    [][]float64 `json:"weights"`
	Biases     []float64   `json:"biases"`
	Activation string      `json:"activation"`
}

// Network is a feed-forward binary classifier with fixed weights.
// It holds no mutable state; Predict is safe for concurrent callers.
type Network struct {
	Layers []Layer `json:"layers"`
}

func (n *Network) validate(inputs int) error {
	if len(n.Layers) == 0 {
		return fmt.Errorf("model has no layers")
	}

	width := inputs
	for i, layer := range n.Layers {
		if len(layer.Weights) == 0 {
			return fmt.Errorf("layer %d has no units", i)
		}
		if len(layer.Biases) != len(layer.Weights) {
			return fmt.Errorf("layer %d has %d biases for %d units", i, len(layer.Biases), len(layer.Weights))
		}
		for u, row := range layer.Weights {
			if len(row) != width {
				return fmt.Errorf("layer %d unit %d has %d weights, want %d", i, u, len(row), width)
			}
		}
		switch layer.Activation {
		case ActivationReLU, ActivationSigmoid, ActivationLinear:
		default:
			return fmt.Errorf("layer %d has unknown activation %q", i, layer.Activation)
		}
		width = len(layer.Weights)
	}

	if width != 1 {
		return fmt.Errorf("output layer has %d units, want 1", width)
	}
	if n.Layers[len(n.Layers)-1].Activation != ActivationSigmoid {
		return fmt.Errorf("output layer activation must be %s", ActivationSigmoid)
	}
	return nil
}

// Predict runs the forward pass and returns the fraud probability.
func (n *Network) Predict(input []float64) (float64, error) {
	current := input
	for i := range n.Layers {
		layer := &n.Layers[i]
		if len(current) != len(layer.Weights[0]) {
			return 0, fmt.Errorf("layer %d expects %d inputs, got %d", i, len(layer.Weights[0]), len(current))
		}

		next := make([]float64, len(layer.Weights))
		for u, row := range layer.Weights {
			sum := layer.Biases[u]
			for j, w := range row {
				sum += w * current[j]
			}
			next[u] = activate(layer.Activation, sum)
		}
		current = next
	}
	return current[0], nil
}

func activate(name string, x float64) float64 {
	switch name {
	case ActivationReLU:
		return math.Max(0, x)
	case ActivationSigmoid:
		return 1 / (1 + math.Exp(-x))
	default:
		return x
	}
}
