package ports

import (
	"context"
	"delivery-time-service/internal/domain"
)

// Optional read-through cache in front of a Predictor.
type PredictionCache interface {
	// Return a cached prediction and whether it was found.
	Get(ctx context.Context, vector domain.FeatureVector) (float64, bool, error)
	Put(ctx context.Context, vector domain.FeatureVector, prediction float64) error
}
