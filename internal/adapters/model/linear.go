package model

import (
	"context"
	"delivery-time-service/internal/domain"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// linearArtifact is the on-disk form of a LinearModel.
type linearArtifact struct {
	Version      string             `yaml:"version"`
	Intercept    float64            `yaml:"intercept"`
	Coefficients map[string]float64 `yaml:"coefficients"`
}

// LinearModel predicts minutes as intercept + sum(weight[column] * value).
// Weights are keyed by column name so the artifact does not depend on the
// order the schema file happens to list columns in.
type LinearModel struct {
	version      string
	intercept    float64
	coefficients map[string]float64
}

func NewLinearModel(version string, intercept float64, coefficients map[string]float64) (*LinearModel, error) {
	if len(coefficients) == 0 {
		return nil, errors.New("new linear model: no coefficients")
	}
	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return nil, fmt.Errorf("new linear model: non-finite intercept %v", intercept)
	}

	w := make(map[string]float64, len(coefficients))
	for c, v := range coefficients {
		if c == "" {
			return nil, errors.New("new linear model: empty column name")
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("new linear model: non-finite weight for %q", c)
		}
		w[c] = v
	}

	return &LinearModel{version: version, intercept: intercept, coefficients: w}, nil
}

// LoadLinearModel reads a YAML or JSON model artifact.
func LoadLinearModel(path string) (*LinearModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: read %q: %w: %w", path, domain.ErrStartupLoad, err)
	}

	var a linearArtifact
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("load model: parse %q: %w: %w", path, domain.ErrStartupLoad, err)
	}

	m, err := NewLinearModel(a.Version, a.Intercept, a.Coefficients)
	if err != nil {
		return nil, fmt.Errorf("load model: %q: %w: %w", path, domain.ErrStartupLoad, err)
	}

	return m, nil
}

func (m *LinearModel) Version() string { return m.version }

// CheckSchema reports columns present on one side only. The model and the
// schema were saved together, so any difference means the pair is corrupt.
func (m *LinearModel) CheckSchema(schema domain.FeatureSchema) error {
	var missing, extra []string
	for _, c := range schema.Columns() {
		if _, ok := m.coefficients[c]; !ok {
			missing = append(missing, c)
		}
	}
	for c := range m.coefficients {
		if !schema.Has(c) {
			extra = append(extra, c)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	sort.Strings(extra)
	return fmt.Errorf("check schema: model lacks %v, schema lacks %v: %w", missing, extra, domain.ErrSchemaMismatch)
}

func (m *LinearModel) Predict(ctx context.Context, vector domain.FeatureVector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("linear predict: %w: %w", domain.ErrPredictionUnavailable, err)
	}
	if vector.Len() == 0 {
		return 0, fmt.Errorf("linear predict: empty vector: %w", domain.ErrPredictionUnavailable)
	}

	sum := m.intercept
	values := vector.Values()
	for i, c := range vector.Columns() {
		w, ok := m.coefficients[c]
		if !ok {
			return 0, fmt.Errorf("linear predict: unknown column %q: %w", c, domain.ErrPredictionUnavailable)
		}
		sum += w * values[i]
	}

	return sum, nil
}
