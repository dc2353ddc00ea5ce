package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManager_DisabledWhenNoDir(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// Nil manager is safe to use.
	if err := om.WriteVitals(WindowStats{}); err != nil {
		t.Errorf("nil manager write should be a no-op, got %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil manager close should be a no-op, got %v", err)
	}
}

func TestOutputManager_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating manager: %v", err)
	}

	if err := om.WriteVitals(WindowStats{WindowEndTick: 50, HeartRateMean: 75}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteVitals(WindowStats{WindowEndTick: 100, HeartRateMean: 76}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "vitals.csv"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if strings.Count(content, "hr_mean") != 1 {
		t.Errorf("header should appear exactly once:\n%s", content)
	}
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header + 2 records, got %d lines", len(lines))
	}
	if !strings.Contains(content, "window_end") {
		t.Error("csv tags should drive the header names")
	}
}
