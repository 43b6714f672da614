package domain

import "errors"

// Error kinds shared by the reconciler, the predictor boundary and startup.
// Callers wrap these with context and classify them with errors.Is.
var (
	// Model or schema artifact missing or corrupt. Fatal at startup.
	ErrStartupLoad = errors.New("startup load failure")

	// Feature schema empty or malformed. Fatal at startup.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// A categorical selection outside its declared option set.
	ErrUnknownCategory = errors.New("unknown category")

	// A numeric field outside its allowed range.
	ErrInvalidInput = errors.New("invalid input")

	// The predictor failed for a well-formed vector. Not retried.
	ErrPredictionUnavailable = errors.New("prediction unavailable")
)
