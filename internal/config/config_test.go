package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, 10, c.History.MaxEntries)
	assert.InDelta(t, 0.9, c.Defaults.PowerFactor, 1e-9)
	assert.InDelta(t, 0.12, c.Defaults.Rate, 1e-9)
	assert.InDelta(t, 1_000_000, c.Limits.VoltageMax, 1e-9)
}

func TestLoadOverlaysFileOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
history:
  max_entries: 25
defaults:
  rate: 0.30
limits:
  voltage_max: 600
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	// Overridden fields.
	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, 25, c.History.MaxEntries)
	assert.InDelta(t, 0.30, c.Defaults.Rate, 1e-9)
	assert.InDelta(t, 600, c.Limits.VoltageMax, 1e-9)

	// Untouched fields keep the defaults.
	assert.Equal(t, "./data", c.Storage.Dir)
	assert.InDelta(t, 0.9, c.Defaults.PowerFactor, 1e-9)
	assert.InDelta(t, 100_000, c.Limits.CurrentMax, 1e-9)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestValidateRejectsDefaultsOutsideLimits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"pf below configured minimum", func(c *Config) { c.Defaults.PowerFactor = 0.4 }},
		{"efficiency above maximum", func(c *Config) { c.Defaults.Efficiency = 120 }},
		{"negative rate", func(c *Config) { c.Defaults.Rate = -0.01 }},
		{"zero history cap", func(c *Config) { c.History.MaxEntries = 0 }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"empty storage dir", func(c *Config) { c.Storage.Dir = "" }},
		{"zero voltage max", func(c *Config) { c.Limits.VoltageMax = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestToRulesAppliesConfiguredBounds(t *testing.T) {
	c := Default()
	c.Limits.VoltageMax = 480
	c.Limits.PowerFactorMin = 0.7

	lim := c.Limits.ToRules()
	assert.InDelta(t, 480, lim.Voltage.Max, 1e-9)
	assert.InDelta(t, 0.7, lim.PowerFactor.Min, 1e-9)
	assert.True(t, lim.Voltage.Required, "required flags come from the standard table")
	assert.NotEmpty(t, lim.Voltage.Description)
}

func TestToModelDefaults(t *testing.T) {
	d := Default().Defaults.ToModelDefaults()
	assert.InDelta(t, 0.9, d.PowerFactor, 1e-9)
	assert.InDelta(t, 100, d.Efficiency, 1e-9)
	assert.InDelta(t, 0.12, d.Rate, 1e-9)
}
