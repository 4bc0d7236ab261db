package artifacts

import (
	"fmt"
)

// Scaler standardizes a feature vector using parameters fitted offline.
// Mean and Scale are fixed at load time and never refit per request.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *Scaler) validate(features int) error {
	if len(s.Mean) != features {
		return fmt.Errorf("scaler mean has %d entries, want %d", len(s.Mean), features)
	}
	if len(s.Scale) != features {
		return fmt.Errorf("scaler scale has %d entries, want %d", len(s.Scale), features)
	}
	for i, v := range s.Scale {
		if v == 0 {
			return fmt.Errorf("scaler scale[%d] is zero", i)
		}
	}
	return nil
}

// Transform returns (x - mean) / scale per dimension. The input is not mutated
// and the output has the same dimensionality.
func (s *Scaler) Transform(input []float64) ([]float64, error) {
	if len(input) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(input))
	}

	out := make([]float64, len(input))
	for i, v := range input {
		out[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}
