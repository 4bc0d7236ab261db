package scoring

import "errors"

// Service errors
var (
	// ErrArtifactsUnavailable means the model or scaler artifact failed to
	// load at startup; scoring is refused until both are present.
	ErrArtifactsUnavailable = errors.New("scoring artifacts unavailable")

	// ErrInvalidInput means a raw field is outside its declared domain.
	ErrInvalidInput = errors.New("invalid transaction input")

	// ErrInvalidProbability means the classifier returned a value outside
	// [0,1] or a non-finite number.
	ErrInvalidProbability = errors.New("classifier returned invalid probability")
)
