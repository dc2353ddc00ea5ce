// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Heart      HeartConfig      `yaml:"heart"`
	Blood      BloodConfig      `yaml:"blood"`
	Autonomic  AutonomicConfig  `yaml:"autonomic"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SimulationConfig holds the time-stepping parameters.
type SimulationConfig struct {
	DT       float64 `yaml:"dt"`        // seconds per tick
	MaxTicks int     `yaml:"max_ticks"` // 0 = run until interrupted
	Seed     int64   `yaml:"seed"`      // rng seed; 0 = time-based
}

// HeartConfig holds cardiac construction parameters.
type HeartConfig struct {
	NumLeads int `yaml:"num_leads"` // EKG leads, capped at 12
}

// BloodConfig holds the healthy resting baselines the patient starts at.
type BloodConfig struct {
	Systolic           float64 `yaml:"systolic"`             // mmHg
	Diastolic          float64 `yaml:"diastolic"`            // mmHg
	OxygenSaturation   float64 `yaml:"oxygen_saturation"`    // %
	CO2PartialPressure float64 `yaml:"co2_partial_pressure"` // mmHg
	Glucose            float64 `yaml:"glucose"`              // mg/dL
	Angiotensin        float64 `yaml:"angiotensin"`          // a.u.
	Toxins             float64 `yaml:"toxins"`               // a.u.
}

// AutonomicConfig holds the brain's reflex gains.
type AutonomicConfig struct {
	CO2Drive    float64 `yaml:"co2_drive"`    // breaths/min per mmHg hypercapnia
	O2Drive     float64 `yaml:"o2_drive"`     // breaths/min per % hypoxia
	RespSpeed   float64 `yaml:"resp_speed"`   // 1/s respiratory smoothing
	BaroGain    float64 `yaml:"baro_gain"`    // bpm per mmHg MAP error
	CardioSpeed float64 `yaml:"cardio_speed"` // 1/s heart-rate smoothing
}

// TelemetryConfig holds vitals collection parameters.
type TelemetryConfig struct {
	Window    int    `yaml:"window"`     // ticks per stats window
	OutputDir string `yaml:"output_dir"` // CSV output directory; empty disables
	LogStats  bool   `yaml:"log_stats"`  // log window stats via slog
}

// DerivedConfig holds values computed from loaded config.
type DerivedConfig struct {
	WindowDuration float64 // seconds covered by one stats window
}

var global *Config

// Init loads configuration and stores it globally. Pass "" to use only
// embedded defaults.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WindowDuration = float64(c.Telemetry.Window) * c.Simulation.DT
}

// WriteYAML saves the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
