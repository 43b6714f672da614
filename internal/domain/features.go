package domain

import (
	"fmt"
	"strings"
)

// Represents the ordered list of feature columns a trained model expects.
// A FeatureSchema is loaded once at startup and is read-only afterwards;
// the zero value is an empty schema.
type FeatureSchema struct {
	columns []string
	index   map[string]int
}

// NewFeatureSchema validates and freezes a column list.
// Names must be non-empty, unique, and free of surrounding whitespace.
func NewFeatureSchema(columns []string) (FeatureSchema, error) {
	if len(columns) == 0 {
		return FeatureSchema{}, fmt.Errorf("new feature schema: no columns: %w", ErrSchemaMismatch)
	}

	cols := make([]string, len(columns))
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" || strings.TrimSpace(c) != c {
			return FeatureSchema{}, fmt.Errorf("new feature schema: invalid column name %q at index %d: %w", c, i, ErrSchemaMismatch)
		}
		if prev, ok := index[c]; ok {
			return FeatureSchema{}, fmt.Errorf("new feature schema: duplicate column %q at index %d and %d: %w", c, prev, i, ErrSchemaMismatch)
		}
		index[c] = i
		cols[i] = c
	}

	return FeatureSchema{columns: cols, index: index}, nil
}

func (s FeatureSchema) Len() int { return len(s.columns) }

// Columns returns a copy of the column names in schema order.
func (s FeatureSchema) Columns() []string { return append([]string(nil), s.columns...) }

// Index returns the position of a column in the schema.
func (s FeatureSchema) Index(column string) (int, bool) {
	i, ok := s.index[column]
	return i, ok
}

func (s FeatureSchema) Has(column string) bool {
	_, ok := s.index[column]
	return ok
}

// Represents a dense, schema-ordered row of model input.
type FeatureVector struct {
	schema FeatureSchema
	values []float64
}

// NewFeatureVector pairs values with the schema they are ordered by.
func NewFeatureVector(schema FeatureSchema, values []float64) (FeatureVector, error) {
	if len(values) != schema.Len() {
		return FeatureVector{}, fmt.Errorf("new feature vector: %d values for %d columns: %w", len(values), schema.Len(), ErrSchemaMismatch)
	}
	return FeatureVector{schema: schema, values: append([]float64(nil), values...)}, nil
}

func (v FeatureVector) Len() int { return len(v.values) }

func (v FeatureVector) Columns() []string { return v.schema.Columns() }

// Values returns a copy of the values in schema order.
func (v FeatureVector) Values() []float64 { return append([]float64(nil), v.values...) }

// Get returns the value stored for a column.
func (v FeatureVector) Get(column string) (float64, bool) {
	i, ok := v.schema.Index(column)
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// Map returns the vector keyed by column name.
func (v FeatureVector) Map() map[string]float64 {
	out := make(map[string]float64, len(v.values))
	for i, c := range v.schema.columns {
		out[c] = v.values[i]
	}
	return out
}
