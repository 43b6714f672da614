package handlers

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// estimateFailure maps an estimate error to a status code and a message
// that is safe to show to the user.
func estimateFailure(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest, "unknown category: " + err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input: " + err.Error()
	case errors.Is(err, domain.ErrPredictionUnavailable):
		return http.StatusServiceUnavailable, "prediction unavailable, please try again"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func toSummary(in domain.OrderInput) dto.OrderSummary {
	return dto.OrderSummary{
		DistanceKm:           in.DistanceKm,
		PreparationTimeMin:   in.PreparationTimeMin,
		CourierExperienceYrs: in.CourierExperienceYrs,
		Weather:              string(in.Weather),
		TrafficLevel:         string(in.TrafficLevel),
		TimeOfDay:            string(in.TimeOfDay),
		VehicleType:          string(in.VehicleType),
	}
}

func enumStrings[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
