package dto

import "time"

// Numeric fields left out of the request take the form defaults.
type PredictionRequest struct {
	DistanceKm           *float64 `json:"distance_km"`
	PreparationTimeMin   *int     `json:"preparation_time_min"`
	CourierExperienceYrs *int     `json:"courier_experience_yrs"`
	Weather              string   `json:"weather"`
	TrafficLevel         string   `json:"traffic_level"`
	TimeOfDay            string   `json:"time_of_day"`
	VehicleType          string   `json:"vehicle_type"`
}

type OrderSummary struct {
	DistanceKm           float64 `json:"distance_km"`
	PreparationTimeMin   int     `json:"preparation_time_min"`
	CourierExperienceYrs int     `json:"courier_experience_yrs"`
	Weather              string  `json:"weather"`
	TrafficLevel         string  `json:"traffic_level"`
	TimeOfDay            string  `json:"time_of_day"`
	VehicleType          string  `json:"vehicle_type"`
}

type FeatureValue struct {
	Column string  `json:"column"`
	Value  float64 `json:"value"`
}

type PredictionResponse struct {
	PredictedMinutes float64        `json:"predicted_minutes"`
	ModelVersion     string         `json:"model_version,omitempty"`
	Cached           bool           `json:"cached"`
	Input            OrderSummary   `json:"input"`
	Features         []FeatureValue `json:"features"`
}

type PredictionRecordResponse struct {
	RequestID        string       `json:"request_id"`
	ModelVersion     string       `json:"model_version"`
	Input            OrderSummary `json:"input"`
	PredictedMinutes float64      `json:"predicted_minutes"`
	CreatedAt        time.Time    `json:"created_at"`
}

type ListPredictionsResponse struct {
	Predictions []PredictionRecordResponse `json:"predictions"`
}
