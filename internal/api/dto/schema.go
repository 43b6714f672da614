package dto

type SchemaResponse struct {
	Columns []string `json:"columns"`
	// Columns the encoder can produce that the model does not take.
	Missing []string `json:"missing"`
	// Model columns the encoder never fills; always 0.
	Unused []string `json:"unused"`
}

type OptionsResponse struct {
	Weather      []string      `json:"weather"`
	TrafficLevel []string      `json:"traffic_level"`
	TimeOfDay    []string      `json:"time_of_day"`
	VehicleType  []string      `json:"vehicle_type"`
	Defaults     OrderDefaults `json:"defaults"`
}

type OrderDefaults struct {
	DistanceKm           float64 `json:"distance_km"`
	PreparationTimeMin   int     `json:"preparation_time_min"`
	CourierExperienceYrs int     `json:"courier_experience_yrs"`
}
