package cache

import (
	"context"
	"delivery-time-service/internal/domain"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// Redis backed cache of model outputs keyed by feature vector.
// Keys include the model version so a redeployed model never reads
// predictions made by its predecessor.
type RedisPredictionCache struct {
	client  *redis.Client
	version string
	ttl     time.Duration
}

func NewRedisPredictionCache(client *redis.Client, modelVersion string, ttl time.Duration) *RedisPredictionCache {
	return &RedisPredictionCache{client: client, version: modelVersion, ttl: ttl}
}

// Key returns the cache key for a vector. Column names and values both
// feed the hash, so equal values under a different schema do not collide.
func (c *RedisPredictionCache) Key(vector domain.FeatureVector) string {
	h := xxhash.New()
	values := vector.Values()
	for i, col := range vector.Columns() {
		_, _ = h.WriteString(col)
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(strconv.FormatUint(math.Float64bits(values[i]), 16))
		_, _ = h.WriteString(";")
	}
	return fmt.Sprintf("delivery_time:prediction:%s:%016x", c.version, h.Sum64())
}

// Fetch a cached prediction for the vector.
func (c *RedisPredictionCache) Get(ctx context.Context, vector domain.FeatureVector) (float64, bool, error) {
	if c.client == nil {
		return 0, false, errors.New("prediction cache: client is nil")
	}

	s, err := c.client.Get(ctx, c.Key(vector)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get prediction cache: %w", err)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("get prediction cache: parse %q: %w", s, err)
	}

	return v, true, nil
}

// Store a prediction for the vector.
func (c *RedisPredictionCache) Put(ctx context.Context, vector domain.FeatureVector, prediction float64) error {
	if c.client == nil {
		return errors.New("prediction cache: client is nil")
	}

	val := strconv.FormatFloat(prediction, 'g', -1, 64)
	if err := c.client.Set(ctx, c.Key(vector), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert prediction cache: %w", err)
	}

	return nil
}
