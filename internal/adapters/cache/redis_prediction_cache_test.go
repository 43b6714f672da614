package cache

import (
	"context"
	"delivery-time-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func vector(t *testing.T, cols []string, values []float64) domain.FeatureVector {
	t.Helper()
	schema, err := domain.NewFeatureSchema(cols)
	require.NoError(t, err)
	vec, err := domain.NewFeatureVector(schema, values)
	require.NoError(t, err)
	return vec
}

func TestRedisPredictionCacheRoundTrip(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()
	c := NewRedisPredictionCache(client, "v1", time.Minute)

	vec := vector(t, []string{"Distance_km", "Weather_Sunny"}, []float64{5, 1})

	_, ok, err := c.Get(ctx, vec)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, vec, 31.4159))

	v, ok, err := c.Get(ctx, vec)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 31.4159, v)

	mr.FastForward(2 * time.Minute)

	_, ok, err = c.Get(ctx, vec)
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after ttl")
}

func TestRedisPredictionCacheKey(t *testing.T) {
	_, client := setupTestRedis(t)
	v1 := NewRedisPredictionCache(client, "v1", 0)
	v2 := NewRedisPredictionCache(client, "v2", 0)

	a := vector(t, []string{"a", "b"}, []float64{1, 0})
	b := vector(t, []string{"b", "a"}, []float64{1, 0})
	same := vector(t, []string{"a", "b"}, []float64{1, 0})

	assert.Equal(t, v1.Key(a), v1.Key(same))
	assert.NotEqual(t, v1.Key(a), v1.Key(b))
	assert.NotEqual(t, v1.Key(a), v2.Key(a))
}

func TestRedisPredictionCacheUnavailable(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisPredictionCache(client, "v1", time.Minute)
	mr.Close()

	_, _, err := c.Get(context.Background(), vector(t, []string{"a"}, []float64{1}))
	assert.Error(t, err)
}
