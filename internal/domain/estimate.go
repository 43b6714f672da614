package domain

import (
	"math"
	"time"
)

// Represents the outcome of one reconcile+predict cycle.
// Minutes is rounded to two decimals for display; Raw keeps the model output.
type Estimate struct {
	Input    OrderInput
	Features FeatureVector
	Raw      float64
	Minutes  float64
	Cached   bool
}

// Represents a persisted prediction, written after each successful estimate.
type PredictionRecord struct {
	RequestID    string
	ModelVersion string
	Input        OrderInput
	Features     map[string]float64
	Minutes      float64
	CreatedAt    time.Time
}

// RoundMinutes rounds a prediction to two decimal places, half away from zero.
func RoundMinutes(v float64) float64 {
	return math.Round(v*100) / 100
}
