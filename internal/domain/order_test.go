package domain

import (
	"errors"
	"math"
	"testing"
)

func TestOrderInputValidate(t *testing.T) {
	valid := DefaultOrderInput()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default order should validate, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(o *OrderInput)
		want   error
	}{
		{"negative distance", func(o *OrderInput) { o.DistanceKm = -0.1 }, ErrInvalidInput},
		{"nan distance", func(o *OrderInput) { o.DistanceKm = math.NaN() }, ErrInvalidInput},
		{"inf distance", func(o *OrderInput) { o.DistanceKm = math.Inf(1) }, ErrInvalidInput},
		{"negative prep", func(o *OrderInput) { o.PreparationTimeMin = -1 }, ErrInvalidInput},
		{"negative experience", func(o *OrderInput) { o.CourierExperienceYrs = -3 }, ErrInvalidInput},
		{"unknown weather", func(o *OrderInput) { o.Weather = "Hail" }, ErrUnknownCategory},
		{"unknown traffic", func(o *OrderInput) { o.TrafficLevel = "Jammed" }, ErrUnknownCategory},
		{"unknown time", func(o *OrderInput) { o.TimeOfDay = "Dawn" }, ErrUnknownCategory},
		{"unknown vehicle", func(o *OrderInput) { o.VehicleType = "Drone" }, ErrUnknownCategory},
		{"empty vehicle", func(o *OrderInput) { o.VehicleType = "" }, ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			if err := o.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	if w, err := ParseWeather("Foggy"); err != nil || w != WeatherFoggy {
		t.Fatalf("ParseWeather(Foggy) = %q, %v", w, err)
	}
	if _, err := ParseWeather("foggy"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("ParseWeather is case-sensitive, got %v", err)
	}
	if _, err := ParseTrafficLevel("Extreme"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("ParseTrafficLevel(Extreme) err = %v", err)
	}
	if v, err := ParseTimeOfDay("Night"); err != nil || v != TimeNight {
		t.Fatalf("ParseTimeOfDay(Night) = %q, %v", v, err)
	}
	if v, err := ParseVehicleType("Scooter"); err != nil || v != VehicleScooter {
		t.Fatalf("ParseVehicleType(Scooter) = %q, %v", v, err)
	}
}

func TestRoundMinutes(t *testing.T) {
	cases := map[float64]float64{
		42.0:     42.0,
		42.004:   42.0,
		42.006:   42.01,
		17.98765: 17.99,
	}
	for in, want := range cases {
		if got := RoundMinutes(in); got != want {
			t.Errorf("RoundMinutes(%v) = %v, want %v", in, got, want)
		}
	}
}
