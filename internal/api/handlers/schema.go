package handlers

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/services"
	"net/http"
)

// SchemaHandler exposes the loaded feature columns and the form options.
type SchemaHandler struct {
	Schema domain.FeatureSchema
}

func (h *SchemaHandler) Columns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	audit := services.AuditSchema(h.Schema)
	res := dto.SchemaResponse{
		Columns: h.Schema.Columns(),
		Missing: append([]string{}, audit.Missing...),
		Unused:  append([]string{}, audit.Unused...),
	}

	writeJSON(w, r, http.StatusOK, res)
}

func Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.OptionsResponse{
		Weather:      enumStrings(domain.WeatherOptions()),
		TrafficLevel: enumStrings(domain.TrafficLevelOptions()),
		TimeOfDay:    enumStrings(domain.TimeOfDayOptions()),
		VehicleType:  enumStrings(domain.VehicleTypeOptions()),
		Defaults: dto.OrderDefaults{
			DistanceKm:           domain.DefaultDistanceKm,
			PreparationTimeMin:   domain.DefaultPreparationTimeMin,
			CourierExperienceYrs: domain.DefaultCourierExperienceYrs,
		},
	}

	writeJSON(w, r, http.StatusOK, res)
}
