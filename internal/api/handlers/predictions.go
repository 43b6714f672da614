package handlers

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"delivery-time-service/internal/ports"
	"delivery-time-service/internal/services"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
)

type PredictionHandler struct {
	Estimator *services.Estimator
	// Optional; listing is disabled when nil.
	Log ports.PredictionLog
}

// Predictions serves the JSON API: POST estimates one order, GET lists
// recently served predictions.
func (h *PredictionHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *PredictionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	input := domain.DefaultOrderInput()
	if req.DistanceKm != nil {
		input.DistanceKm = *req.DistanceKm
	}
	if req.PreparationTimeMin != nil {
		input.PreparationTimeMin = *req.PreparationTimeMin
	}
	if req.CourierExperienceYrs != nil {
		input.CourierExperienceYrs = *req.CourierExperienceYrs
	}
	input.Weather = domain.Weather(req.Weather)
	input.TrafficLevel = domain.TrafficLevel(req.TrafficLevel)
	input.TimeOfDay = domain.TimeOfDay(req.TimeOfDay)
	input.VehicleType = domain.VehicleType(req.VehicleType)

	est, err := h.Estimator.Estimate(r.Context(), input)
	if err != nil {
		status, msg := estimateFailure(err)
		if status >= http.StatusInternalServerError {
			log.Printf("req_id=%s estimate failed: %v", obs.RequestID(r.Context()), err)
		}
		writeError(w, r, status, msg)
		return
	}

	columns := est.Features.Columns()
	values := est.Features.Values()
	res := dto.PredictionResponse{
		PredictedMinutes: est.Minutes,
		ModelVersion:     h.Estimator.ModelVersion(),
		Cached:           est.Cached,
		Input:            toSummary(est.Input),
		Features:         make([]dto.FeatureValue, 0, len(columns)),
	}
	for i, c := range columns {
		res.Features = append(res.Features, dto.FeatureValue{Column: c, Value: values[i]})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PredictionHandler) list(w http.ResponseWriter, r *http.Request) {
	if h.Log == nil {
		writeError(w, r, http.StatusNotFound, "prediction log is not enabled")
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	recs, err := h.Log.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("list predictions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPredictionsResponse{
		Predictions: make([]dto.PredictionRecordResponse, 0, len(recs)),
	}
	for _, rec := range recs {
		res.Predictions = append(res.Predictions, dto.PredictionRecordResponse{
			RequestID:        rec.RequestID,
			ModelVersion:     rec.ModelVersion,
			Input:            toSummary(rec.Input),
			PredictedMinutes: rec.Minutes,
			CreatedAt:        rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
