// Package config loads the server configuration: a YAML file overlaid on
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/validate"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	History  HistoryConfig  `yaml:"history"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Limits   LimitsConfig   `yaml:"limits"`
	// RatesFile points at a JSON rate-preset catalog; empty means the
	// bundled presets.
	RatesFile string `yaml:"rates_file"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type StorageConfig struct {
	Dir string `yaml:"dir"`
}

type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

// DefaultsConfig mirrors model.Defaults with YAML tags. These are the values
// substituted when a request leaves an optional field blank.
type DefaultsConfig struct {
	PowerFactor float64 `yaml:"power_factor"`
	Efficiency  float64 `yaml:"efficiency"`
	Rate        float64 `yaml:"rate"`
}

func (d DefaultsConfig) ToModelDefaults() model.Defaults {
	return model.Defaults{
		PowerFactor: d.PowerFactor,
		Efficiency:  d.Efficiency,
		Rate:        d.Rate,
	}
}

// LimitsConfig mirrors the validator rule bounds with YAML tags.
type LimitsConfig struct {
	VoltageMax     float64 `yaml:"voltage_max"`
	CurrentMax     float64 `yaml:"current_max"`
	PowerFactorMin float64 `yaml:"power_factor_min"`
	PowerFactorMax float64 `yaml:"power_factor_max"`
	EfficiencyMin  float64 `yaml:"efficiency_min"`
	EfficiencyMax  float64 `yaml:"efficiency_max"`
}

// ToRules builds the validator rule table, keeping the standard required
// flags and descriptions and applying the configured bounds.
func (l LimitsConfig) ToRules() validate.Limits {
	lim := validate.DefaultLimits()
	lim.Voltage.Max = l.VoltageMax
	lim.Current.Max = l.CurrentMax
	lim.PowerFactor.Min = l.PowerFactorMin
	lim.PowerFactor.Max = l.PowerFactorMax
	lim.Efficiency.Min = l.EfficiencyMin
	lim.Efficiency.Max = l.EfficiencyMax
	return lim
}

// Default returns the built-in configuration.
func Default() *Config {
	d := model.StandardDefaults()
	lim := validate.DefaultLimits()
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Storage: StorageConfig{Dir: "./data"},
		History: HistoryConfig{MaxEntries: history.DefaultMaxEntries},
		Defaults: DefaultsConfig{
			PowerFactor: d.PowerFactor,
			Efficiency:  d.Efficiency,
			Rate:        d.Rate,
		},
		Limits: LimitsConfig{
			VoltageMax:     lim.Voltage.Max,
			CurrentMax:     lim.Current.Max,
			PowerFactorMin: lim.PowerFactor.Min,
			PowerFactorMax: lim.PowerFactor.Max,
			EfficiencyMin:  lim.Efficiency.Min,
			EfficiencyMax:  lim.Efficiency.Max,
		},
	}
}

// Load reads a YAML file over the defaults: fields present in the file
// replace the default value, everything absent keeps it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrDefault loads path when given, otherwise returns the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate cross-checks the configuration. The configured defaults must
// themselves pass the configured limits: a default the validator would
// reject causes every request that relies on it to fail.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Storage.Dir == "" {
		return errors.New("storage.dir is required")
	}
	if c.History.MaxEntries <= 0 {
		return errors.New("history.max_entries must be > 0")
	}
	if c.Limits.VoltageMax <= 0 || c.Limits.CurrentMax <= 0 {
		return errors.New("limits.voltage_max and limits.current_max must be > 0")
	}
	if c.Defaults.Rate < 0 {
		return errors.New("defaults.rate must be >= 0")
	}
	lim := c.Limits.ToRules()
	if pf := c.Defaults.PowerFactor; !lim.PowerFactor.Check(&pf) {
		return fmt.Errorf("defaults.power_factor %v outside limits [%v, %v]",
			pf, lim.PowerFactor.Min, lim.PowerFactor.Max)
	}
	if eff := c.Defaults.Efficiency; !lim.Efficiency.Check(&eff) {
		return fmt.Errorf("defaults.efficiency %v outside limits [%v, %v]",
			eff, lim.Efficiency.Min, lim.Efficiency.Max)
	}
	return nil
}
