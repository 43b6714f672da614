package main

import (
	"bytes"
	"delivery-time-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifacts(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	columns := filepath.Join(dir, "columns.json")
	model := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(columns, []byte(`["Distance_km", "Weather_Rainy", "Vehicle_Type_Van"]`), 0o600))
	require.NoError(t, os.WriteFile(model, []byte(`{"version": "cli", "intercept": 8, "coefficients": {"Distance_km": 2.5, "Weather_Rainy": 7, "Vehicle_Type_Van": 3}}`), 0o600))
	return columns, model
}

func TestPredictCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	columns, model := writeArtifacts(t)

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--columns", columns, "--model", model, "--distance", "4", "--weather", "Rainy", "--vehicle", "Van"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Predicted Delivery Time: 28.00 minutes\n", out.String())
}

func TestPredictCommandUnknownCategory(t *testing.T) {
	t.Chdir(t.TempDir())
	columns, model := writeArtifacts(t)

	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--columns", columns, "--model", model, "--vehicle", "Drone"})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}
