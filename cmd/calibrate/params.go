// Package main provides CMA-ES calibration of the autonomic reflex gains.
package main

import (
	"github.com/pthm-cable/vitals/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of autonomic gains to calibrate.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "co2_drive", Path: "autonomic.co2_drive", Min: 0.1, Max: 2.0, Default: 0.5},
			{Name: "o2_drive", Path: "autonomic.o2_drive", Min: 0.1, Max: 3.0, Default: 0.8},
			{Name: "resp_speed", Path: "autonomic.resp_speed", Min: 0.05, Max: 2.0, Default: 0.5},
			{Name: "baro_gain", Path: "autonomic.baro_gain", Min: 0.05, Max: 2.0, Default: 0.4},
			{Name: "cardio_speed", Path: "autonomic.cardio_speed", Min: 0.05, Max: 2.0, Default: 0.4},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Autonomic.CO2Drive = clamped[0]
	cfg.Autonomic.O2Drive = clamped[1]
	cfg.Autonomic.RespSpeed = clamped[2]
	cfg.Autonomic.BaroGain = clamped[3]
	cfg.Autonomic.CardioSpeed = clamped[4]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Autonomic.CO2Drive,
		cfg.Autonomic.O2Drive,
		cfg.Autonomic.RespSpeed,
		cfg.Autonomic.BaroGain,
		cfg.Autonomic.CardioSpeed,
	}
}
