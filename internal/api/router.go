package api

import (
	"delivery-time-service/internal/api/handlers"
	"delivery-time-service/internal/ports"
	"delivery-time-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// predictions may be nil when the prediction log is disabled.
func NewRouter(estimator *services.Estimator, predictions ports.PredictionLog) http.Handler {
	mux := http.NewServeMux()

	formHandler := &handlers.FormHandler{Estimator: estimator}
	predictionHandler := &handlers.PredictionHandler{
		Estimator: estimator,
		Log:       predictions,
	}
	schemaHandler := &handlers.SchemaHandler{Schema: estimator.Schema()}
	healthHandler := &handlers.HealthHandler{
		ModelVersion: estimator.ModelVersion(),
		Columns:      estimator.Schema().Len(),
	}

	mux.HandleFunc("/", formHandler.Show)
	mux.HandleFunc("/predict", formHandler.Submit)
	mux.HandleFunc("/predictions", predictionHandler.Predictions)
	mux.HandleFunc("/schema", schemaHandler.Columns)
	mux.HandleFunc("/options", handlers.Options)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
