package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated vital signs for one time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Cardiovascular
	HeartRateMean float64 `csv:"hr_mean"`
	HeartRateStd  float64 `csv:"hr_std"`
	HeartRateP10  float64 `csv:"hr_p10"`
	HeartRateP90  float64 `csv:"hr_p90"`
	SystolicMean  float64 `csv:"sys_mean"`
	DiastolicMean float64 `csv:"dia_mean"`
	MAPMean       float64 `csv:"map_mean"`
	Beats         int64   `csv:"beats"`

	// Respiratory
	SpO2Mean     float64 `csv:"spo2_mean"`
	SpO2Min      float64 `csv:"spo2_min"`
	CO2Mean      float64 `csv:"paco2_mean"`
	RespRateMean float64 `csv:"rr_mean"`
	Breaths      int64   `csv:"breaths"`

	// Metabolic
	GlucoseMean float64 `csv:"glucose_mean"`
	GlucoseStd  float64 `csv:"glucose_std"`
	ToxinsEnd   float64 `csv:"toxins"`

	// Neuro and renal, sampled at window end
	GCSEnd              int     `csv:"gcs"`
	EjectionFractionEnd float64 `csv:"ef"`
	BladderVolumeEnd    float64 `csv:"bladder_ml"`
}

// summarize returns mean, std and the 10th/90th percentiles of values.
func summarize(values []float64) (mean, std, p10, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	mean = stat.Mean(values, nil)
	std = stat.StdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, std, p10, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("hr_mean", s.HeartRateMean),
		slog.Float64("hr_std", s.HeartRateStd),
		slog.Float64("sys_mean", s.SystolicMean),
		slog.Float64("dia_mean", s.DiastolicMean),
		slog.Float64("map_mean", s.MAPMean),
		slog.Int64("beats", s.Beats),
		slog.Float64("spo2_mean", s.SpO2Mean),
		slog.Float64("spo2_min", s.SpO2Min),
		slog.Float64("paco2_mean", s.CO2Mean),
		slog.Float64("rr_mean", s.RespRateMean),
		slog.Int64("breaths", s.Breaths),
		slog.Float64("glucose_mean", s.GlucoseMean),
		slog.Float64("toxins", s.ToxinsEnd),
		slog.Int("gcs", s.GCSEnd),
		slog.Float64("ef", s.EjectionFractionEnd),
		slog.Float64("bladder_ml", s.BladderVolumeEnd),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("vitals", "stats", s)
}
