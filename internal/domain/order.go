package domain

import (
	"fmt"
	"math"
)

type Weather string

const (
	WeatherSunny Weather = "Sunny"
	WeatherRainy Weather = "Rainy"
	WeatherFoggy Weather = "Foggy"
	WeatherSnowy Weather = "Snowy"
	WeatherWindy Weather = "Windy"
)

type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "Low"
	TrafficMedium TrafficLevel = "Medium"
	TrafficHigh   TrafficLevel = "High"
)

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "Morning"
	TimeAfternoon TimeOfDay = "Afternoon"
	TimeEvening   TimeOfDay = "Evening"
	TimeNight     TimeOfDay = "Night"
)

type VehicleType string

const (
	VehicleBike    VehicleType = "Bike"
	VehicleCar     VehicleType = "Car"
	VehicleVan     VehicleType = "Van"
	VehicleScooter VehicleType = "Scooter"
)

// Option sets in the order the form presents them.
var (
	weatherOptions = []Weather{WeatherSunny, WeatherRainy, WeatherFoggy, WeatherSnowy, WeatherWindy}
	trafficOptions = []TrafficLevel{TrafficLow, TrafficMedium, TrafficHigh}
	timeOptions    = []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening, TimeNight}
	vehicleOptions = []VehicleType{VehicleBike, VehicleCar, VehicleVan, VehicleScooter}
)

func WeatherOptions() []Weather           { return append([]Weather(nil), weatherOptions...) }
func TrafficLevelOptions() []TrafficLevel { return append([]TrafficLevel(nil), trafficOptions...) }
func TimeOfDayOptions() []TimeOfDay       { return append([]TimeOfDay(nil), timeOptions...) }
func VehicleTypeOptions() []VehicleType   { return append([]VehicleType(nil), vehicleOptions...) }

func (w Weather) Valid() bool      { return contains(weatherOptions, w) }
func (t TrafficLevel) Valid() bool { return contains(trafficOptions, t) }
func (t TimeOfDay) Valid() bool    { return contains(timeOptions, t) }
func (v VehicleType) Valid() bool  { return contains(vehicleOptions, v) }

// ParseWeather converts a form value into a Weather. Matching is exact.
func ParseWeather(s string) (Weather, error) {
	w := Weather(s)
	if !w.Valid() {
		return "", fmt.Errorf("parse weather %q: %w", s, ErrUnknownCategory)
	}
	return w, nil
}

func ParseTrafficLevel(s string) (TrafficLevel, error) {
	t := TrafficLevel(s)
	if !t.Valid() {
		return "", fmt.Errorf("parse traffic level %q: %w", s, ErrUnknownCategory)
	}
	return t, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t := TimeOfDay(s)
	if !t.Valid() {
		return "", fmt.Errorf("parse time of day %q: %w", s, ErrUnknownCategory)
	}
	return t, nil
}

func ParseVehicleType(s string) (VehicleType, error) {
	v := VehicleType(s)
	if !v.Valid() {
		return "", fmt.Errorf("parse vehicle type %q: %w", s, ErrUnknownCategory)
	}
	return v, nil
}

// Form defaults for a fresh order.
const (
	DefaultDistanceKm           = 5.0
	DefaultPreparationTimeMin   = 10
	DefaultCourierExperienceYrs = 2
)

// Represents the attributes of a single order as entered by the user.
// An OrderInput is built fresh for each prediction and never mutated.
type OrderInput struct {
	DistanceKm           float64
	PreparationTimeMin   int
	CourierExperienceYrs int
	Weather              Weather
	TrafficLevel         TrafficLevel
	TimeOfDay            TimeOfDay
	VehicleType          VehicleType
}

// DefaultOrderInput returns the values the form starts with.
func DefaultOrderInput() OrderInput {
	return OrderInput{
		DistanceKm:           DefaultDistanceKm,
		PreparationTimeMin:   DefaultPreparationTimeMin,
		CourierExperienceYrs: DefaultCourierExperienceYrs,
		Weather:              weatherOptions[0],
		TrafficLevel:         trafficOptions[0],
		TimeOfDay:            timeOptions[0],
		VehicleType:          vehicleOptions[0],
	}
}

// Validate checks numeric ranges and enum membership.
func (o OrderInput) Validate() error {
	if math.IsNaN(o.DistanceKm) || math.IsInf(o.DistanceKm, 0) || o.DistanceKm < 0 {
		return fmt.Errorf("validate order: distance_km must be a finite value >= 0, got %v: %w", o.DistanceKm, ErrInvalidInput)
	}
	if o.PreparationTimeMin < 0 {
		return fmt.Errorf("validate order: preparation_time_min must be >= 0, got %d: %w", o.PreparationTimeMin, ErrInvalidInput)
	}
	if o.CourierExperienceYrs < 0 {
		return fmt.Errorf("validate order: courier_experience_yrs must be >= 0, got %d: %w", o.CourierExperienceYrs, ErrInvalidInput)
	}

	if !o.Weather.Valid() {
		return fmt.Errorf("validate order: weather %q: %w", o.Weather, ErrUnknownCategory)
	}
	if !o.TrafficLevel.Valid() {
		return fmt.Errorf("validate order: traffic level %q: %w", o.TrafficLevel, ErrUnknownCategory)
	}
	if !o.TimeOfDay.Valid() {
		return fmt.Errorf("validate order: time of day %q: %w", o.TimeOfDay, ErrUnknownCategory)
	}
	if !o.VehicleType.Valid() {
		return fmt.Errorf("validate order: vehicle type %q: %w", o.VehicleType, ErrUnknownCategory)
	}

	return nil
}

func contains[T comparable](opts []T, v T) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
