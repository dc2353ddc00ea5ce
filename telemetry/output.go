package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/vitals/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir        string
	vitalsFile *os.File

	vitalsHeaderWritten bool
}

// NewOutputManager creates an output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "vitals.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating vitals.csv: %w", err)
	}
	om.vitalsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML next to the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteVitals appends a window stats record to vitals.csv. The first write
// includes the header row.
func (om *OutputManager) WriteVitals(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.vitalsHeaderWritten {
		if err := gocsv.Marshal(records, om.vitalsFile); err != nil {
			return fmt.Errorf("writing vitals: %w", err)
		}
		om.vitalsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.vitalsFile); err != nil {
		return fmt.Errorf("writing vitals: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.vitalsFile.Close()
}
