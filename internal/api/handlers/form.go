package handlers

import (
	"bytes"
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"delivery-time-service/internal/services"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

type formPage struct {
	Options   dto.OptionsResponse
	Input     dto.OrderSummary
	Submitted bool
	Result    string
	Error     string
}

// FormHandler serves the interactive order form and its submissions.
// Errors are rendered on the page so the user can correct the input and
// submit again.
type FormHandler struct {
	Estimator *services.Estimator
}

func (h *FormHandler) Show(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	renderForm(w, r, http.StatusOK, newFormPage(domain.DefaultOrderInput()))
}

func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseForm(); err != nil {
		page := newFormPage(domain.DefaultOrderInput())
		page.Error = "could not read form submission"
		renderForm(w, r, http.StatusBadRequest, page)
		return
	}

	input, err := parseOrderForm(r)
	page := newFormPage(input)
	page.Submitted = true
	if err != nil {
		page.Error = err.Error()
		renderForm(w, r, http.StatusBadRequest, page)
		return
	}

	est, err := h.Estimator.Estimate(r.Context(), input)
	if err != nil {
		status, msg := estimateFailure(err)
		if status >= http.StatusInternalServerError {
			log.Printf("req_id=%s estimate failed: %v", obs.RequestID(r.Context()), err)
		}
		page.Error = msg
		renderForm(w, r, status, page)
		return
	}

	page.Result = strconv.FormatFloat(est.Minutes, 'f', 2, 64)
	renderForm(w, r, http.StatusOK, page)
}

func newFormPage(input domain.OrderInput) formPage {
	return formPage{
		Options: dto.OptionsResponse{
			Weather:      enumStrings(domain.WeatherOptions()),
			TrafficLevel: enumStrings(domain.TrafficLevelOptions()),
			TimeOfDay:    enumStrings(domain.TimeOfDayOptions()),
			VehicleType:  enumStrings(domain.VehicleTypeOptions()),
		},
		Input: toSummary(input),
	}
}

// parseOrderForm reads the form fields. Blank numeric fields take their
// defaults; enum values are passed through for the estimator to check.
func parseOrderForm(r *http.Request) (domain.OrderInput, error) {
	input := domain.DefaultOrderInput()

	if s := strings.TrimSpace(r.PostFormValue("distance_km")); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return input, fmt.Errorf("distance must be a number, got %q", s)
		}
		input.DistanceKm = v
	}
	if s := strings.TrimSpace(r.PostFormValue("preparation_time_min")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return input, fmt.Errorf("preparation time must be a whole number of minutes, got %q", s)
		}
		input.PreparationTimeMin = v
	}
	if s := strings.TrimSpace(r.PostFormValue("courier_experience_yrs")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return input, fmt.Errorf("courier experience must be a whole number of years, got %q", s)
		}
		input.CourierExperienceYrs = v
	}

	input.Weather = domain.Weather(r.PostFormValue("weather"))
	input.TrafficLevel = domain.TrafficLevel(r.PostFormValue("traffic_level"))
	input.TimeOfDay = domain.TimeOfDay(r.PostFormValue("time_of_day"))
	input.VehicleType = domain.VehicleType(r.PostFormValue("vehicle_type"))

	return input, nil
}

func renderForm(w http.ResponseWriter, r *http.Request, status int, page formPage) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, page); err != nil {
		log.Printf("render failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
