package ports

import (
	"context"
	"delivery-time-service/internal/domain"
)

// Port: a boundary for persisting served predictions.
type PredictionLog interface {
	Record(ctx context.Context, rec domain.PredictionRecord) error
	// Return the most recent records, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.PredictionRecord, error)
}
