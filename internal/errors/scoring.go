package errors

// DomainError is an API-visible error with a stable machine code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

var (
	ErrArtifactUnavailable = &DomainError{
		Code:    "ARTIFACT_UNAVAILABLE",
		Message: "scoring model artifacts are not loaded; prediction is disabled",
	}
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "transaction field outside its declared domain",
	}
	ErrInvalidProbability = &DomainError{
		Code:    "INVALID_PROBABILITY",
		Message: "classifier returned an out-of-range probability",
	}
)
