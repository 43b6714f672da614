package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Estimates by outcome: ok, invalid_input, unknown_category, unavailable.
	EstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_time_estimates_total",
			Help: "Total number of delivery time estimates requested",
		},
		[]string{"outcome"},
	)

	PredictDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_time_predict_duration_seconds",
			Help:    "Duration of predictor calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PredictedMinutes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_time_predicted_minutes",
			Help:    "Distribution of predicted delivery times in minutes",
			Buckets: []float64{10, 20, 30, 45, 60, 90, 120, 180},
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_time_cache_lookups_total",
			Help: "Prediction cache lookups by result",
		},
		[]string{"result"},
	)

	PredictionLogErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_time_prediction_log_errors_total",
			Help: "Total number of failed prediction log writes",
		},
	)
)
