package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/vitals/config"
	"github.com/pthm-cable/vitals/patient"
	"github.com/pthm-cable/vitals/telemetry"
)

// Resting vitals the calibration steers toward.
const (
	targetHeartRate = 75.0 // bpm
	targetRespRate  = 16.0 // breaths/min
	targetSpO2      = 97.0 // %
	targetCO2       = 40.0 // mmHg
	targetMAP       = 90.0 // mmHg
)

// Error component weights.
const (
	weightHeartRate = 0.25
	weightRespRate  = 0.20
	weightSpO2      = 0.20
	weightCO2       = 0.15
	weightMAP       = 0.10
	weightStability = 0.10

	warmupWindows = 3 // skip first N windows while vitals settle

	// Hypoxia challenge: lung compliance is reduced midway through the
	// run and slow SpO2 recovery is penalized.
	challengeDamage  = 0.2
	hypoxiaFloor     = 94.0
	hypoxiaPenalty   = 5.0
	statsWindowTicks = 100
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastError   float64 // error from most recent Evaluate call
	bestFitness float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastError returns the error score from the most recent evaluation.
func (fe *FitnessEvaluator) LastError() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastError
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel
	results := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			windows := fe.runSimulation(x, s)
			results[idx] = fe.computeError(windows)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	for _, r := range results {
		total += r
	}
	avg := total / float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastError = avg
	if avg < fe.bestFitness {
		fe.bestFitness = avg
	}
	fe.mu.Unlock()

	return avg
}

// runSimulation executes a single headless run and returns its window stats.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) []telemetry.WindowStats {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	cfg.Simulation.Seed = seed
	cfg.Simulation.MaxTicks = fe.maxTicks

	p := patient.NewPatient(cfg)
	collector := telemetry.NewCollector(statsWindowTicks)

	var windows []telemetry.WindowStats
	challengeTick := int64(fe.maxTicks / 2)

	for tick := 0; tick < fe.maxTicks; tick++ {
		if p.Tick() == challengeTick {
			p.Lungs().InflictDamage(challengeDamage)
		}
		p.Step(cfg.Simulation.DT)
		collector.Record(telemetry.Snapshot(p))
		if collector.ShouldFlush(p.Tick()) {
			windows = append(windows, collector.Flush(p.Tick(), p.Time()))
		}
	}

	return windows
}

// copyConfig creates a copy of the base config so each seed can mutate
// its own.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg, _ := config.Load("")

	cfg.Simulation = fe.baseConfig.Simulation
	cfg.Heart = fe.baseConfig.Heart
	cfg.Blood = fe.baseConfig.Blood
	cfg.Autonomic = fe.baseConfig.Autonomic
	cfg.Telemetry = fe.baseConfig.Telemetry

	return cfg
}

// computeError scores how far the run's vitals sit from resting targets
// (lower = better). Windows after the hypoxia challenge add a penalty
// whenever SpO2 dips below the floor, rewarding gains that recover fast.
func (fe *FitnessEvaluator) computeError(windows []telemetry.WindowStats) float64 {
	if len(windows) <= warmupWindows {
		return math.Inf(1)
	}
	valid := windows[warmupWindows:]
	challengeTime := valid[len(valid)/2].SimTimeSec

	var errSum float64
	for _, w := range valid {
		hrErr := (w.HeartRateMean - targetHeartRate) / targetHeartRate
		rrErr := (w.RespRateMean - targetRespRate) / targetRespRate
		spo2Err := (w.SpO2Mean - targetSpO2) / targetSpO2
		co2Err := (w.CO2Mean - targetCO2) / targetCO2
		mapErr := (w.MAPMean - targetMAP) / targetMAP
		stability := w.HeartRateStd / targetHeartRate

		e := weightHeartRate*hrErr*hrErr +
			weightRespRate*rrErr*rrErr +
			weightSpO2*spo2Err*spo2Err +
			weightCO2*co2Err*co2Err +
			weightMAP*mapErr*mapErr +
			weightStability*stability*stability

		if w.SimTimeSec > challengeTime && w.SpO2Min < hypoxiaFloor {
			e += hypoxiaPenalty * (hypoxiaFloor - w.SpO2Min) / hypoxiaFloor
		}

		errSum += e
	}

	return errSum / float64(len(valid))
}
