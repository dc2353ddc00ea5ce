package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/vitals/config"
	"github.com/pthm-cable/vitals/patient"
	"github.com/pthm-cable/vitals/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	scenarioPath := flag.String("scenario", "", "Path to a scenario.yaml of timed events")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config, config 0 = time-based)")
	dt := flag.Float64("dt", 0, "Seconds per tick (0 = use config)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Force window stats via slog even if disabled in config")
	printSummary := flag.Bool("summary", false, "Print the full patient summary at the end")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *dt > 0 {
		cfg.Simulation.DT = *dt
	}
	if *maxTicks > 0 {
		cfg.Simulation.MaxTicks = *maxTicks
	}
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}
	if *logStats {
		cfg.Telemetry.LogStats = true
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var scenario *patient.Scenario
	if *scenarioPath != "" {
		s, err := patient.LoadScenario(*scenarioPath)
		if err != nil {
			slog.Error("failed to load scenario", "error", err)
			os.Exit(1)
		}
		scenario = s
	}

	om, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		slog.Error("failed to set up output", "error", err)
		os.Exit(1)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	p := patient.NewPatient(cfg)
	collector := telemetry.NewCollector(int64(cfg.Telemetry.Window))

	slog.Info("starting simulation",
		"patient", p.ID,
		"dt", cfg.Simulation.DT,
		"max_ticks", cfg.Simulation.MaxTicks,
		"seed", cfg.Simulation.Seed,
	)

	stepDT := cfg.Simulation.DT
	prevTime := -1.0 // so events at t=0 fire before the first tick
	for tick := 0; cfg.Simulation.MaxTicks == 0 || tick < cfg.Simulation.MaxTicks; tick++ {
		if scenario != nil {
			scenario.Apply(p, prevTime, p.Time())
		}
		prevTime = p.Time()

		p.Step(stepDT)
		collector.Record(telemetry.Snapshot(p))

		if collector.ShouldFlush(p.Tick()) {
			stats := collector.Flush(p.Tick(), p.Time())
			if cfg.Telemetry.LogStats {
				stats.LogStats()
			}
			if err := om.WriteVitals(stats); err != nil {
				slog.Error("failed to write vitals", "error", err)
				os.Exit(1)
			}
		}
	}

	slog.Info("simulation finished",
		"ticks", p.Tick(),
		"sim_time", p.Time(),
		"beats", p.Heart().BeatCount(),
		"breaths", p.Lungs().BreathCount(),
		"gcs", p.Brain().GCS(),
	)

	if *printSummary {
		os.Stdout.WriteString(p.Summary() + "\n")
	}
}
