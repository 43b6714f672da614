package model

import (
	"delivery-time-service/internal/domain"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSchema reads the ordered feature column list saved next to the model.
// The file is a YAML (or JSON) sequence of strings.
func LoadSchema(path string) (domain.FeatureSchema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.FeatureSchema{}, fmt.Errorf("load schema: read %q: %w: %w", path, domain.ErrStartupLoad, err)
	}

	var columns []string
	if err := yaml.Unmarshal(b, &columns); err != nil {
		return domain.FeatureSchema{}, fmt.Errorf("load schema: parse %q: %w: %w", path, domain.ErrStartupLoad, err)
	}

	schema, err := domain.NewFeatureSchema(columns)
	if err != nil {
		return domain.FeatureSchema{}, fmt.Errorf("load schema: %q: %w", path, err)
	}

	return schema, nil
}
