package services

import (
	"context"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/metrics"
	"delivery-time-service/internal/platform/obs"
	"delivery-time-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"math"
	"time"
)

type EstimatorConfig struct {
	Schema       domain.FeatureSchema
	Predictor    ports.Predictor
	ModelVersion string

	// Optional collaborators; nil disables them.
	Cache ports.PredictionCache
	Log   ports.PredictionLog
}

// Estimator runs one reconcile+predict cycle per call.
//
// It is built once at startup from the loaded schema and predictor and is
// never mutated afterwards, so it is safe for concurrent use.
type Estimator struct {
	schema       domain.FeatureSchema
	predictor    ports.Predictor
	modelVersion string
	cache        ports.PredictionCache
	log          ports.PredictionLog
	now          func() time.Time
}

func NewEstimator(cfg EstimatorConfig) (*Estimator, error) {
	if cfg.Schema.Len() == 0 {
		return nil, fmt.Errorf("new estimator: empty schema: %w", domain.ErrSchemaMismatch)
	}
	if cfg.Predictor == nil {
		return nil, errors.New("new estimator: predictor must be non-nil")
	}

	return &Estimator{
		schema:       cfg.Schema,
		predictor:    cfg.Predictor,
		modelVersion: cfg.ModelVersion,
		cache:        cfg.Cache,
		log:          cfg.Log,
		now:          time.Now,
	}, nil
}

func (e *Estimator) Schema() domain.FeatureSchema { return e.schema }

func (e *Estimator) ModelVersion() string { return e.modelVersion }

// Estimate validates the order, reconciles it against the schema and asks
// the predictor for a delivery time. Failures are request-level: the
// returned error wraps one of ErrInvalidInput, ErrUnknownCategory or
// ErrPredictionUnavailable, and the estimator stays usable.
func (e *Estimator) Estimate(ctx context.Context, input domain.OrderInput) (_ *domain.Estimate, err error) {
	defer obs.Time(ctx, "estimator.Estimate")(&err)
	defer func() { metrics.EstimatesTotal.WithLabelValues(outcome(err)).Inc() }()

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	vec, err := Reconcile(input, e.schema)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	raw, cached, err := e.predict(ctx, vec)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	est := &domain.Estimate{
		Input:    input,
		Features: vec,
		Raw:      raw,
		Minutes:  domain.RoundMinutes(raw),
		Cached:   cached,
	}
	metrics.PredictedMinutes.Observe(est.Minutes)

	e.record(ctx, est)

	return est, nil
}

// predict consults the cache, then the predictor. Cache failures are
// logged and treated as misses.
func (e *Estimator) predict(ctx context.Context, vec domain.FeatureVector) (float64, bool, error) {
	if e.cache != nil {
		v, ok, err := e.cache.Get(ctx, vec)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			log.Printf("req_id=%s prediction cache get failed: %v", obs.RequestID(ctx), err)
		case ok:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return v, true, nil
		default:
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()
	v, err := e.predictor.Predict(ctx, vec)
	metrics.PredictDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrPredictionUnavailable) {
			return 0, false, fmt.Errorf("predict: %w", err)
		}
		return 0, false, fmt.Errorf("predict: %w: %w", domain.ErrPredictionUnavailable, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("predict: non-finite model output %v: %w", v, domain.ErrPredictionUnavailable)
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, vec, v); err != nil {
			log.Printf("req_id=%s prediction cache put failed: %v", obs.RequestID(ctx), err)
		}
	}

	return v, false, nil
}

// record persists the estimate. A failed write never fails the request.
func (e *Estimator) record(ctx context.Context, est *domain.Estimate) {
	if e.log == nil {
		return
	}

	rec := domain.PredictionRecord{
		RequestID:    obs.RequestID(ctx),
		ModelVersion: e.modelVersion,
		Input:        est.Input,
		Features:     est.Features.Map(),
		Minutes:      est.Minutes,
		CreatedAt:    e.now().UTC(),
	}
	if err := e.log.Record(ctx, rec); err != nil {
		metrics.PredictionLogErrors.Inc()
		log.Printf("req_id=%s prediction log write failed: %v", rec.RequestID, err)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrPredictionUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
