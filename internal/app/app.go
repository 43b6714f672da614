package app

import (
	"context"
	"delivery-time-service/internal/adapters/cache"
	"delivery-time-service/internal/adapters/model"
	"delivery-time-service/internal/adapters/repositories"
	"delivery-time-service/internal/config"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/db"
	"delivery-time-service/internal/ports"
	"delivery-time-service/internal/services"
	"fmt"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

// App holds everything loaded once at startup.
// Nothing in it changes after Open returns.
type App struct {
	Estimator   *services.Estimator
	Predictions ports.PredictionLog

	closers []func() error
}

// Open loads the schema and model artifacts and connects the optional
// collaborators. Any artifact failure is returned; callers treat it as
// fatal and must not serve predictions.
func Open(ctx context.Context, cfg *config.Config) (_ *App, err error) {
	a := &App{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	schema, err := model.LoadSchema(cfg.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}

	if audit := services.AuditSchema(schema); !audit.Clean() {
		log.Printf("schema audit: path=%s columns=%d missing=%v unused=%v", cfg.SchemaPath, schema.Len(), audit.Missing, audit.Unused)
	}

	predictor, version, err := openPredictor(cfg, schema)
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}

	estCfg := services.EstimatorConfig{
		Schema:       schema,
		Predictor:    predictor,
		ModelVersion: version,
	}

	if strings.TrimSpace(cfg.RedisURL) != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open app: parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		a.closers = append(a.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			// The cache is an optimisation; run without it.
			log.Printf("prediction cache disabled: redis ping failed: %v", err)
		} else {
			estCfg.Cache = cache.NewRedisPredictionCache(client, version, cfg.CacheTTL)
			log.Printf("prediction cache enabled: ttl=%s", cfg.CacheTTL)
		}
	}

	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open app: %w", err)
		}
		a.closers = append(a.closers, conn.Close)

		if err := repositories.InitSchema(ctx, conn); err != nil {
			return nil, fmt.Errorf("open app: %w", err)
		}
		a.Predictions = repositories.NewSQLPredictionLog(conn)
		estCfg.Log = a.Predictions
		log.Printf("prediction log enabled")
	}

	a.Estimator, err = services.NewEstimator(estCfg)
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}

	log.Printf("model loaded: version=%q columns=%d", version, schema.Len())
	return a, nil
}

func openPredictor(cfg *config.Config, schema domain.FeatureSchema) (ports.Predictor, string, error) {
	if strings.TrimSpace(cfg.PredictorURL) != "" {
		p, err := model.NewRemotePredictor(cfg.PredictorURL, cfg.PredictorTimeout)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", domain.ErrStartupLoad, err)
		}
		version := cfg.ModelVersion
		if version == "" {
			version = "remote"
		}
		return p, version, nil
	}

	m, err := model.LoadLinearModel(cfg.ModelPath)
	if err != nil {
		return nil, "", err
	}
	if err := m.CheckSchema(schema); err != nil {
		return nil, "", fmt.Errorf("model %q against schema %q: %w", cfg.ModelPath, cfg.SchemaPath, err)
	}

	version := cfg.ModelVersion
	if version == "" {
		version = m.Version()
	}
	return m, version, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("close: %v", err)
		}
	}
	a.closers = nil
}
