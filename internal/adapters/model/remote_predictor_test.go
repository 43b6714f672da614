package model

import (
	"context"
	"delivery-time-service/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemotePredictorPredict(t *testing.T) {
	var got predictRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"prediction": 37.25}`))
	}))
	defer srv.Close()

	p, err := NewRemotePredictor(srv.URL, time.Second)
	require.NoError(t, err)

	vec, err := domain.NewFeatureVector(mustSchema(t, "Distance_km", "Weather_Sunny"), []float64{5, 1})
	require.NoError(t, err)

	v, err := p.Predict(context.Background(), vec)
	require.NoError(t, err)
	assert.Equal(t, 37.25, v)
	assert.Equal(t, []string{"Distance_km", "Weather_Sunny"}, got.Columns)
	assert.Equal(t, []float64{5, 1}, got.Values)
}

func TestRemotePredictorFailuresAreNotRetried(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"unavailable", http.StatusServiceUnavailable, "down"},
		{"bad payload", http.StatusOK, "not json"},
		{"missing prediction", http.StatusOK, `{"other": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			p, err := NewRemotePredictor(srv.URL, time.Second)
			require.NoError(t, err)

			vec, err := domain.NewFeatureVector(mustSchema(t, "a"), []float64{1})
			require.NoError(t, err)

			_, err = p.Predict(context.Background(), vec)
			assert.ErrorIs(t, err, domain.ErrPredictionUnavailable)
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}

func TestNewRemotePredictorRequiresURL(t *testing.T) {
	_, err := NewRemotePredictor("  ", 0)
	assert.Error(t, err)
}
