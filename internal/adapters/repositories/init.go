package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for the prediction log.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPredictionsQuery := `
	CREATE TABLE IF NOT EXISTS predictions (
		id BIGSERIAL PRIMARY KEY,
		request_id TEXT NOT NULL DEFAULT '',
		model_version TEXT NOT NULL DEFAULT '',
		distance_km DOUBLE PRECISION NOT NULL,
		preparation_time_min INTEGER NOT NULL,
		courier_experience_yrs INTEGER NOT NULL,
		weather TEXT NOT NULL,
		traffic_level TEXT NOT NULL,
		time_of_day TEXT NOT NULL,
		vehicle_type TEXT NOT NULL,
		features JSONB NOT NULL,
		predicted_minutes DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_predictions_created_at
    ON predictions(created_at DESC);
	`

	statements := []string{
		createPredictionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
