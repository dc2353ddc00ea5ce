package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/vitals/config"
)

func TestParamVector_NormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(raw))
	for i, spec := range pv.Specs {
		if math.Abs(back[i]-raw[i]) > 1e-12 {
			t.Errorf("%s: round trip %v != %v", spec.Name, back[i], raw[i])
		}
	}
}

func TestParamVector_DefaultsWithinBounds(t *testing.T) {
	pv := NewParamVector()
	for _, spec := range pv.Specs {
		if spec.Default < spec.Min || spec.Default > spec.Max {
			t.Errorf("%s: default %v outside [%v,%v]", spec.Name, spec.Default, spec.Min, spec.Max)
		}
	}
}

func TestParamVector_ClampEnforcesBounds(t *testing.T) {
	pv := NewParamVector()

	low := make([]float64, pv.Dim())
	high := make([]float64, pv.Dim())
	for i := range low {
		low[i] = -100
		high[i] = 100
	}

	for i, spec := range pv.Specs {
		if got := pv.Clamp(low)[i]; got != spec.Min {
			t.Errorf("%s: clamped low = %v, want %v", spec.Name, got, spec.Min)
		}
		if got := pv.Clamp(high)[i]; got != spec.Max {
			t.Errorf("%s: clamped high = %v, want %v", spec.Name, got, spec.Max)
		}
	}
}

func TestParamVector_ConfigRoundTrip(t *testing.T) {
	pv := NewParamVector()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	values := []float64{0.7, 1.2, 0.3, 0.6, 0.9}
	pv.ApplyToConfig(cfg, values)

	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if math.Abs(got[i]-values[i]) > 1e-12 {
			t.Errorf("%s: extracted %v, want %v", spec.Name, got[i], values[i])
		}
	}
}
