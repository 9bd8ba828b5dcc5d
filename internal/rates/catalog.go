// Package rates holds the regional electricity rate presets the dashboard
// offers alongside manual rate entry.
package rates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Preset is one regional electricity rate.
type Preset struct {
	ID         string  `json:"id"`
	Region     string  `json:"region"`
	RatePerKWh float64 `json:"rate_per_kwh"`
	Note       string  `json:"note,omitempty"`
}

// Catalog is a collection of rate presets, optionally loaded from a JSON
// file maintained by cmd/update-rates.
type Catalog struct {
	UpdatedAt string   `json:"updated_at,omitempty"` // RFC 3339
	Presets   []Preset `json:"presets"`
}

// Builtin returns the bundled catalog, used when no rates file is
// configured. Figures are approximate residential averages; the update tool
// exists precisely because they drift.
func Builtin() *Catalog {
	return &Catalog{
		Presets: []Preset{
			{ID: "us_average", Region: "United States (average)", RatePerKWh: 0.17},
			{ID: "us_california", Region: "California", RatePerKWh: 0.30},
			{ID: "us_texas", Region: "Texas", RatePerKWh: 0.15},
			{ID: "us_washington", Region: "Washington", RatePerKWh: 0.11, Note: "hydro-heavy grid"},
			{ID: "us_hawaii", Region: "Hawaii", RatePerKWh: 0.42, Note: "highest US state rate"},
			{ID: "uk", Region: "United Kingdom", RatePerKWh: 0.27},
			{ID: "germany", Region: "Germany", RatePerKWh: 0.39},
			{ID: "india", Region: "India", RatePerKWh: 0.08},
		},
	}
}

// Load reads a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rates file: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse rates file: %w", err)
	}
	return &c, nil
}

// Save writes the catalog as indented JSON, creating the directory if
// needed.
func Save(c *Catalog, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create rates dir: %w", err)
	}
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rates: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write rates file: %w", err)
	}
	return nil
}

// DefaultPath returns the rates file location: $RATES_FILE when set, else
// ./data/rates.json.
func DefaultPath() string {
	if path := os.Getenv("RATES_FILE"); path != "" {
		return path
	}
	return "./data/rates.json"
}

// LoadOrBuiltin loads path when it exists; an empty or missing path falls
// back to the bundled catalog. Other errors propagate.
func LoadOrBuiltin(path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	c, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Builtin(), nil
		}
		return nil, err
	}
	return c, nil
}
