package ports

import (
	"context"
	"delivery-time-service/internal/domain"
)

// Contract for turning a schema-shaped feature vector into predicted minutes.
// Implementations are assumed deterministic for a fixed vector and loaded model.
type Predictor interface {
	// Return the raw model output for a single row.
	Predict(ctx context.Context, vector domain.FeatureVector) (float64, error)
}
