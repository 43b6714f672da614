package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"port"`

	// Artifacts saved by the training notebook.
	ModelPath  string `mapstructure:"model_path"`
	SchemaPath string `mapstructure:"schema_path"`

	// When set, predictions go to this model server instead of ModelPath.
	PredictorURL     string        `mapstructure:"predictor_url"`
	PredictorTimeout time.Duration `mapstructure:"predictor_timeout"`
	ModelVersion     string        `mapstructure:"model_version"`

	// Optional collaborators; empty disables them.
	DatabaseURL string        `mapstructure:"database_url"`
	RedisURL    string        `mapstructure:"redis_url"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// Load reads .env (if present) and the environment, falling back to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load config: read .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("model_path", "artifacts/delivery_model.yaml")
	v.SetDefault("schema_path", "artifacts/model_columns.yaml")
	v.SetDefault("predictor_url", "")
	v.SetDefault("predictor_timeout", "10s")
	v.SetDefault("model_version", "")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("cache_ttl", "24h")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	if strings.TrimSpace(cfg.Port) == "" {
		return nil, fmt.Errorf("load config: PORT must be non-empty")
	}
	if cfg.PredictorURL == "" && strings.TrimSpace(cfg.ModelPath) == "" {
		return nil, fmt.Errorf("load config: one of MODEL_PATH or PREDICTOR_URL is required")
	}
	if strings.TrimSpace(cfg.SchemaPath) == "" {
		return nil, fmt.Errorf("load config: SCHEMA_PATH is required")
	}

	return &cfg, nil
}

// Get returns an environment variable or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
