package artifacts

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name string, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func identityScaler() Scaler {
	return Scaler{
		Mean:  []float64{0, 0, 0, 0, 0, 0, 0},
		Scale: []float64{1, 1, 1, 1, 1, 1, 1},
	}
}

func logisticModel() Network {
	return Network{
		Layers: []Layer{
			{
				Weights:    [][]float64{{1, 0, 0, 0, 0, 0, 0}},
				Biases:     []float64{0},
				Activation: ActivationSigmoid,
			},
		},
	}
}

func TestLoad_ValidPair(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeArtifact(t, dir, "model.json", logisticModel())
	scalerPath := writeArtifact(t, dir, "scaler.json", identityScaler())

	bundle, err := Load(modelPath, scalerPath)
	require.NoError(t, err)

	prob, err := bundle.Predict([]float64{0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.5, prob)

	prob, err = bundle.Predict([]float64{2, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1/(1+math.Exp(-2)), prob, 1e-12)
}

func TestLoad_MissingArtifactFails(t *testing.T) {
	dir := t.TempDir()
	scalerPath := writeArtifact(t, dir, "scaler.json", identityScaler())

	_, err := Load(filepath.Join(dir, "missing.json"), scalerPath)
	assert.Error(t, err)

	modelPath := writeArtifact(t, dir, "model.json", logisticModel())
	_, err = Load(modelPath, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoad_CorruptArtifactFails(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(modelPath, []byte("{not json"), 0o644))
	scalerPath := writeArtifact(t, dir, "scaler.json", identityScaler())

	_, err := Load(modelPath, scalerPath)
	assert.Error(t, err)
}

func TestLoad_RejectsWrongDimensions(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeArtifact(t, dir, "model.json", logisticModel())

	badScaler := Scaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}}
	scalerPath := writeArtifact(t, dir, "scaler.json", badScaler)
	_, err := Load(modelPath, scalerPath)
	assert.Error(t, err)

	badModel := Network{
		Layers: []Layer{
			{
				Weights:    [][]float64{{1, 2, 3}},
				Biases:     []float64{0},
				Activation: ActivationSigmoid,
			},
		},
	}
	modelPath = writeArtifact(t, dir, "bad_model.json", badModel)
	scalerPath = writeArtifact(t, dir, "good_scaler.json", identityScaler())
	_, err = Load(modelPath, scalerPath)
	assert.Error(t, err)
}

func TestLoad_RejectsZeroScale(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeArtifact(t, dir, "model.json", logisticModel())

	scaler := identityScaler()
	scaler.Scale[3] = 0
	scalerPath := writeArtifact(t, dir, "scaler.json", scaler)

	_, err := Load(modelPath, scalerPath)
	assert.Error(t, err)
}

func TestLoad_RejectsNonSigmoidOutput(t *testing.T) {
	dir := t.TempDir()
	model := logisticModel()
	model.Layers[0].Activation = ActivationLinear
	modelPath := writeArtifact(t, dir, "model.json", model)
	scalerPath := writeArtifact(t, dir, "scaler.json", identityScaler())

	_, err := Load(modelPath, scalerPath)
	assert.Error(t, err)
}

func TestScaler_Transform(t *testing.T) {
	s := Scaler{
		Mean:  []float64{1, 2},
		Scale: []float64{2, 4},
	}

	out, err := s.Transform([]float64{3, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, out)

	// Input is left untouched.
	in := []float64{3, 10}
	_, err = s.Transform(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 10}, in)

	_, err = s.Transform([]float64{1})
	assert.Error(t, err)
}

func TestNetwork_PredictDeterministic(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeArtifact(t, dir, "model.json", Network{
		Layers: []Layer{
			{
				Weights:    [][]float64{{0.5, -0.5, 0, 0, 0, 0, 0}, {0, 0, 1, 1, 0, 0, 0}},
				Biases:     []float64{0.1, -0.1},
				Activation: ActivationReLU,
			},
			{
				Weights:    [][]float64{{1, -1}},
				Biases:     []float64{0.2},
				Activation: ActivationSigmoid,
			},
		},
	})
	scalerPath := writeArtifact(t, dir, "scaler.json", identityScaler())

	bundle, err := Load(modelPath, scalerPath)
	require.NoError(t, err)

	input := []float64{1, 0.5, 0.25, 0.25, 0, 0, 0}
	first, err := bundle.Predict(input)
	require.NoError(t, err)
	second, err := bundle.Predict(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0.0)
	assert.LessOrEqual(t, first, 1.0)

	// h1 = relu(0.5*1 - 0.5*0.5 + 0.1) = 0.35
	// h2 = relu(0.25 + 0.25 - 0.1) = 0.4
	// out = sigmoid(0.35 - 0.4 + 0.2) = sigmoid(0.15)
	assert.InDelta(t, 1/(1+math.Exp(-0.15)), first, 1e-12)
}
