package repositories

import (
	"context"
	"database/sql"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the PredictionLog port.
type SQLPredictionLog struct {
	DB *sql.DB
}

func NewSQLPredictionLog(db *sql.DB) *SQLPredictionLog {
	return &SQLPredictionLog{DB: db}
}

// Store a single served prediction.
func (s *SQLPredictionLog) Record(ctx context.Context, rec domain.PredictionRecord) (err error) {
	defer obs.Time(ctx, "prediction_log.Record")(&err)

	if s.DB == nil {
		return errors.New("prediction log: db is nil")
	}

	features, err := json.Marshal(rec.Features)
	if err != nil {
		return fmt.Errorf("insert prediction: encode features: %w", err)
	}

	q := `
	INSERT INTO predictions (
		request_id,
		model_version,
		distance_km,
		preparation_time_min,
		courier_experience_yrs,
		weather,
		traffic_level,
		time_of_day,
		vehicle_type,
		features,
		predicted_minutes,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	in := rec.Input
	if _, err := s.DB.ExecContext(ctx, q,
		rec.RequestID,
		rec.ModelVersion,
		in.DistanceKm,
		in.PreparationTimeMin,
		in.CourierExperienceYrs,
		string(in.Weather),
		string(in.TrafficLevel),
		string(in.TimeOfDay),
		string(in.VehicleType),
		features,
		rec.Minutes,
		rec.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert prediction request_id=%q: %w", rec.RequestID, err)
	}

	return nil
}

// Return the most recent predictions, newest first.
func (s *SQLPredictionLog) ListRecent(ctx context.Context, limit int) (_ []domain.PredictionRecord, err error) {
	defer obs.Time(ctx, "prediction_log.ListRecent")(&err)

	if s.DB == nil {
		return nil, errors.New("prediction log: db is nil")
	}
	if limit <= 0 {
		return []domain.PredictionRecord{}, nil
	}

	q := `
	SELECT
		request_id,
		model_version,
		distance_km,
		preparation_time_min,
		courier_experience_yrs,
		weather,
		traffic_level,
		time_of_day,
		vehicle_type,
		features,
		predicted_minutes,
		created_at
	FROM predictions
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: query predictions table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PredictionRecord, 0, limit)
	for rows.Next() {
		var (
			rec                                  domain.PredictionRecord
			weather, traffic, timeOfDay, vehicle string
			features                             []byte
		)
		if err := rows.Scan(
			&rec.RequestID,
			&rec.ModelVersion,
			&rec.Input.DistanceKm,
			&rec.Input.PreparationTimeMin,
			&rec.Input.CourierExperienceYrs,
			&weather,
			&traffic,
			&timeOfDay,
			&vehicle,
			&features,
			&rec.Minutes,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list predictions: scan row: %w", err)
		}

		rec.Input.Weather = domain.Weather(weather)
		rec.Input.TrafficLevel = domain.TrafficLevel(traffic)
		rec.Input.TimeOfDay = domain.TimeOfDay(timeOfDay)
		rec.Input.VehicleType = domain.VehicleType(vehicle)

		if err := json.Unmarshal(features, &rec.Features); err != nil {
			return nil, fmt.Errorf("list predictions: decode features: %w", err)
		}

		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list predictions: row iteration: %w", err)
	}

	return out, nil
}
