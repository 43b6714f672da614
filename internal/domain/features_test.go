package domain

import (
	"errors"
	"testing"
)

func TestNewFeatureSchema(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"Distance_km", "Weather_Sunny", "Vehicle_Type_Bike"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schema.Len() != 3 {
		t.Fatalf("len = %d, want 3", schema.Len())
	}
	if i, ok := schema.Index("Weather_Sunny"); !ok || i != 1 {
		t.Fatalf("index of Weather_Sunny = %d,%v, want 1,true", i, ok)
	}
	if schema.Has("Weather_Rainy") {
		t.Fatalf("schema should not contain Weather_Rainy")
	}

	cols := schema.Columns()
	cols[0] = "mutated"
	if schema.Columns()[0] != "Distance_km" {
		t.Fatalf("Columns must return a copy")
	}
}

func TestNewFeatureSchemaRejectsMalformed(t *testing.T) {
	cases := map[string][]string{
		"empty":     {},
		"nil":       nil,
		"blank":     {"Distance_km", ""},
		"padded":    {" Distance_km"},
		"duplicate": {"Weather_Sunny", "Distance_km", "Weather_Sunny"},
	}

	for name, cols := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewFeatureSchema(cols)
			if !errors.Is(err, ErrSchemaMismatch) {
				t.Fatalf("err = %v, want ErrSchemaMismatch", err)
			}
		})
	}
}

func TestFeatureVectorAccessors(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewFeatureVector(schema, []float64{1}); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("short vector err = %v, want ErrSchemaMismatch", err)
	}

	in := []float64{1.5, 0}
	vec, err := NewFeatureVector(schema, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in[0] = 99

	if v, ok := vec.Get("a"); !ok || v != 1.5 {
		t.Fatalf("Get(a) = %v,%v, want 1.5,true", v, ok)
	}
	if _, ok := vec.Get("c"); ok {
		t.Fatalf("Get(c) should report missing column")
	}

	m := vec.Map()
	if len(m) != 2 || m["a"] != 1.5 || m["b"] != 0 {
		t.Fatalf("Map() = %v", m)
	}
}
