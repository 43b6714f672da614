package services

import (
	"delivery-time-service/internal/domain"
	"fmt"
)

// Numeric feature columns. Values pass through unchanged.
const (
	ColumnDistanceKm           = "Distance_km"
	ColumnPreparationTimeMin   = "Preparation_Time_min"
	ColumnCourierExperienceYrs = "Courier_Experience_yrs"
)

// One-hot column per enum value. Every option of every categorical field
// must have an entry here; a value without one is an unknown category.
var (
	weatherColumns = map[domain.Weather]string{
		domain.WeatherSunny: "Weather_Sunny",
		domain.WeatherRainy: "Weather_Rainy",
		domain.WeatherFoggy: "Weather_Foggy",
		domain.WeatherSnowy: "Weather_Snowy",
		domain.WeatherWindy: "Weather_Windy",
	}

	trafficColumns = map[domain.TrafficLevel]string{
		domain.TrafficLow:    "Traffic_Level_Low",
		domain.TrafficMedium: "Traffic_Level_Medium",
		domain.TrafficHigh:   "Traffic_Level_High",
	}

	timeOfDayColumns = map[domain.TimeOfDay]string{
		domain.TimeMorning:   "Time_of_Day_Morning",
		domain.TimeAfternoon: "Time_of_Day_Afternoon",
		domain.TimeEvening:   "Time_of_Day_Evening",
		domain.TimeNight:     "Time_of_Day_Night",
	}

	vehicleColumns = map[domain.VehicleType]string{
		domain.VehicleBike:    "Vehicle_Type_Bike",
		domain.VehicleCar:     "Vehicle_Type_Car",
		domain.VehicleVan:     "Vehicle_Type_Van",
		domain.VehicleScooter: "Vehicle_Type_Scooter",
	}
)

// Reconcile encodes an order into the dense row the model expects.
//
// Numeric fields are copied under fixed column names and each categorical
// selection sets its one-hot column to 1. Every schema column the order
// does not produce is 0, and produced columns the schema lacks are dropped.
// The result always has exactly the schema's columns, in schema order.
//
// Range checks are the caller's job; only enum membership is enforced here.
func Reconcile(raw domain.OrderInput, schema domain.FeatureSchema) (domain.FeatureVector, error) {
	if schema.Len() == 0 {
		return domain.FeatureVector{}, fmt.Errorf("reconcile: empty schema: %w", domain.ErrSchemaMismatch)
	}

	sparse, err := sparseFeatures(raw)
	if err != nil {
		return domain.FeatureVector{}, fmt.Errorf("reconcile: %w", err)
	}

	values := make([]float64, schema.Len())
	for column, v := range sparse {
		if i, ok := schema.Index(column); ok {
			values[i] = v
		}
	}

	vec, err := domain.NewFeatureVector(schema, values)
	if err != nil {
		return domain.FeatureVector{}, fmt.Errorf("reconcile: %w", err)
	}
	return vec, nil
}

// sparseFeatures builds the column->value map for a single order.
// It fails before building anything if a category has no column.
func sparseFeatures(raw domain.OrderInput) (map[string]float64, error) {
	weather, ok := weatherColumns[raw.Weather]
	if !ok {
		return nil, fmt.Errorf("weather %q: %w", raw.Weather, domain.ErrUnknownCategory)
	}
	traffic, ok := trafficColumns[raw.TrafficLevel]
	if !ok {
		return nil, fmt.Errorf("traffic level %q: %w", raw.TrafficLevel, domain.ErrUnknownCategory)
	}
	timeOfDay, ok := timeOfDayColumns[raw.TimeOfDay]
	if !ok {
		return nil, fmt.Errorf("time of day %q: %w", raw.TimeOfDay, domain.ErrUnknownCategory)
	}
	vehicle, ok := vehicleColumns[raw.VehicleType]
	if !ok {
		return nil, fmt.Errorf("vehicle type %q: %w", raw.VehicleType, domain.ErrUnknownCategory)
	}

	return map[string]float64{
		ColumnDistanceKm:           raw.DistanceKm,
		ColumnPreparationTimeMin:   float64(raw.PreparationTimeMin),
		ColumnCourierExperienceYrs: float64(raw.CourierExperienceYrs),
		weather:                    1,
		traffic:                    1,
		timeOfDay:                  1,
		vehicle:                    1,
	}, nil
}

// SchemaAudit lists mismatches between the reconciler's columns and a schema.
// Neither list is an error: missing columns are dropped and unused ones are
// zero-filled, but both usually point at a model/form version skew.
type SchemaAudit struct {
	// Columns the reconciler can produce that the schema lacks.
	Missing []string
	// Schema columns the reconciler never produces.
	Unused []string
}

func (a SchemaAudit) Clean() bool { return len(a.Missing) == 0 && len(a.Unused) == 0 }

// KnownColumns returns every column the reconciler can produce, numeric
// columns first, then each categorical group in option order.
func KnownColumns() []string {
	cols := []string{ColumnDistanceKm, ColumnPreparationTimeMin, ColumnCourierExperienceYrs}
	for _, w := range domain.WeatherOptions() {
		cols = append(cols, weatherColumns[w])
	}
	for _, t := range domain.TrafficLevelOptions() {
		cols = append(cols, trafficColumns[t])
	}
	for _, t := range domain.TimeOfDayOptions() {
		cols = append(cols, timeOfDayColumns[t])
	}
	for _, v := range domain.VehicleTypeOptions() {
		cols = append(cols, vehicleColumns[v])
	}
	return cols
}

// AuditSchema compares a schema against KnownColumns.
func AuditSchema(schema domain.FeatureSchema) SchemaAudit {
	var audit SchemaAudit

	known := KnownColumns()
	knownSet := make(map[string]struct{}, len(known))
	for _, c := range known {
		knownSet[c] = struct{}{}
		if !schema.Has(c) {
			audit.Missing = append(audit.Missing, c)
		}
	}

	for _, c := range schema.Columns() {
		if _, ok := knownSet[c]; !ok {
			audit.Unused = append(audit.Unused, c)
		}
	}

	return audit
}
