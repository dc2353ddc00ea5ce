package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Simulation.DT <= 0 {
		t.Errorf("default dt must be positive, got %f", cfg.Simulation.DT)
	}
	if cfg.Heart.NumLeads != 12 {
		t.Errorf("expected 12 default leads, got %d", cfg.Heart.NumLeads)
	}
	if cfg.Blood.OxygenSaturation != 98.0 {
		t.Errorf("expected default SpO2 98, got %f", cfg.Blood.OxygenSaturation)
	}
	if cfg.Autonomic.BaroGain == 0 {
		t.Error("autonomic gains should have non-zero defaults")
	}
}

func TestLoadOverridesSubset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("simulation:\n  dt: 0.05\nheart:\n  num_leads: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}

	if cfg.Simulation.DT != 0.05 {
		t.Errorf("expected overridden dt 0.05, got %f", cfg.Simulation.DT)
	}
	if cfg.Heart.NumLeads != 3 {
		t.Errorf("expected overridden leads 3, got %d", cfg.Heart.NumLeads)
	}
	// Untouched fields keep their defaults.
	if cfg.Blood.Glucose != 90.0 {
		t.Errorf("expected default glucose 90, got %f", cfg.Blood.Glucose)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDerivedWindowDuration(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := float64(cfg.Telemetry.Window) * cfg.Simulation.DT
	if cfg.Derived.WindowDuration != want {
		t.Errorf("window duration %f, want %f", cfg.Derived.WindowDuration, want)
	}
}
