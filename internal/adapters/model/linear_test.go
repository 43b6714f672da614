package model

import (
	"context"
	"delivery-time-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func mustSchema(t *testing.T, cols ...string) domain.FeatureSchema {
	t.Helper()
	s, err := domain.NewFeatureSchema(cols)
	require.NoError(t, err)
	return s
}

func TestLoadSchema(t *testing.T) {
	t.Run("yaml list", func(t *testing.T) {
		path := writeFile(t, "columns.yaml", "- Distance_km\n- Weather_Sunny\n- Vehicle_Type_Bike\n")
		schema, err := LoadSchema(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Distance_km", "Weather_Sunny", "Vehicle_Type_Bike"}, schema.Columns())
	})

	t.Run("json list", func(t *testing.T) {
		path := writeFile(t, "columns.json", `["Distance_km", "Traffic_Level_Low"]`)
		schema, err := LoadSchema(path)
		require.NoError(t, err)
		assert.Equal(t, 2, schema.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSchema(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, domain.ErrStartupLoad)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := writeFile(t, "columns.json", `{"not": "a list"}`)
		_, err := LoadSchema(path)
		assert.ErrorIs(t, err, domain.ErrStartupLoad)
	})

	t.Run("empty list", func(t *testing.T) {
		path := writeFile(t, "columns.json", `[]`)
		_, err := LoadSchema(path)
		assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
	})
}

func TestLoadLinearModel(t *testing.T) {
	path := writeFile(t, "model.yaml", `
version: v1
intercept: 12.5
coefficients:
  Distance_km: 3
  Weather_Rainy: 4.5
`)
	m, err := LoadLinearModel(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", m.Version())

	schema := mustSchema(t, "Distance_km", "Weather_Rainy")
	require.NoError(t, m.CheckSchema(schema))

	vec, err := domain.NewFeatureVector(schema, []float64{2, 1})
	require.NoError(t, err)

	got, err := m.Predict(context.Background(), vec)
	require.NoError(t, err)
	assert.InDelta(t, 12.5+6+4.5, got, 1e-9)
}

func TestLoadLinearModelFailures(t *testing.T) {
	_, err := LoadLinearModel(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrStartupLoad)

	_, err = LoadLinearModel(writeFile(t, "model.yaml", "intercept: [1, 2"))
	assert.ErrorIs(t, err, domain.ErrStartupLoad)

	_, err = LoadLinearModel(writeFile(t, "model.yaml", "intercept: 1\n"))
	assert.ErrorIs(t, err, domain.ErrStartupLoad)
}

func TestLinearModelCheckSchema(t *testing.T) {
	m, err := NewLinearModel("v1", 0, map[string]float64{"a": 1, "b": 2})
	require.NoError(t, err)

	assert.ErrorIs(t, m.CheckSchema(mustSchema(t, "a")), domain.ErrSchemaMismatch)
	assert.ErrorIs(t, m.CheckSchema(mustSchema(t, "a", "b", "c")), domain.ErrSchemaMismatch)
	assert.NoError(t, m.CheckSchema(mustSchema(t, "b", "a")))
}

func TestLinearModelPredictUnknownColumn(t *testing.T) {
	m, err := NewLinearModel("v1", 0, map[string]float64{"a": 1})
	require.NoError(t, err)

	vec, err := domain.NewFeatureVector(mustSchema(t, "a", "b"), []float64{1, 1})
	require.NoError(t, err)

	_, err = m.Predict(context.Background(), vec)
	assert.ErrorIs(t, err, domain.ErrPredictionUnavailable)
}
