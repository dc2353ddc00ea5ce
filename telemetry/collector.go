// Package telemetry aggregates per-tick vital signs into windowed
// statistics and writes them to structured logs and CSV output.
package telemetry

import (
	"github.com/pthm-cable/vitals/patient"
)

// Sample is one tick's worth of vital signs. Absent organs leave their
// fields at zero.
type Sample struct {
	HeartRate        float64
	Systolic         float64
	Diastolic        float64
	MAP              float64
	SpO2             float64
	CO2              float64
	RespRate         float64
	Glucose          float64
	Toxins           float64
	GCS              int
	EjectionFraction float64
	Beats            int64
	Breaths          int64
	BladderVolume    float64
}

// Snapshot reads the current vital signs off a patient.
func Snapshot(p *patient.Patient) Sample {
	s := Sample{
		Systolic:  p.Blood.Systolic,
		Diastolic: p.Blood.Diastolic,
		MAP:       p.Blood.MeanArterialPressure(),
		SpO2:      p.Blood.OxygenSaturation,
		CO2:       p.Blood.CO2PartialPressure,
		Glucose:   p.Blood.Glucose,
		Toxins:    p.Blood.Toxins,
	}
	if h := p.Heart(); h != nil {
		s.HeartRate = h.Rate()
		s.EjectionFraction = h.EjectionFraction()
		s.Beats = h.BeatCount()
	}
	if l := p.Lungs(); l != nil {
		s.RespRate = l.RespirationRate()
		s.Breaths = l.BreathCount()
	}
	if b := p.Brain(); b != nil {
		s.GCS = b.GCS()
	}
	if bl := p.Bladder(); bl != nil {
		s.BladderVolume = bl.Volume()
	}
	return s
}

// Collector accumulates samples within time windows and produces
// WindowStats.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	heartRates []float64
	systolics  []float64
	diastolics []float64
	maps       []float64
	spo2s      []float64
	co2s       []float64
	respRates  []float64
	glucoses   []float64

	beatsAtStart   int64
	breathsAtStart int64
	last           Sample
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// Record accumulates one tick's sample into the current window.
func (c *Collector) Record(s Sample) {
	if len(c.heartRates) == 0 {
		c.beatsAtStart = s.Beats
		c.breathsAtStart = s.Breaths
	}
	c.heartRates = append(c.heartRates, s.HeartRate)
	c.systolics = append(c.systolics, s.Systolic)
	c.diastolics = append(c.diastolics, s.Diastolic)
	c.maps = append(c.maps, s.MAP)
	c.spo2s = append(c.spo2s, s.SpO2)
	c.co2s = append(c.co2s, s.CO2)
	c.respRates = append(c.respRates, s.RespRate)
	c.glucoses = append(c.glucoses, s.Glucose)
	c.last = s
}

// ShouldFlush returns true once a full window of ticks has been recorded.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces the WindowStats for the completed window and resets the
// collector for the next one.
func (c *Collector) Flush(currentTick int64, simTime float64) WindowStats {
	hrMean, hrStd, hrP10, hrP90 := summarize(c.heartRates)
	sysMean, _, _, _ := summarize(c.systolics)
	diaMean, _, _, _ := summarize(c.diastolics)
	mapMean, _, _, _ := summarize(c.maps)
	spo2Mean, _, spo2Min, _ := summarizeWithMin(c.spo2s)
	co2Mean, _, _, _ := summarize(c.co2s)
	rrMean, _, _, _ := summarize(c.respRates)
	gluMean, gluStd, _, _ := summarize(c.glucoses)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      simTime,

		HeartRateMean: hrMean,
		HeartRateStd:  hrStd,
		HeartRateP10:  hrP10,
		HeartRateP90:  hrP90,
		SystolicMean:  sysMean,
		DiastolicMean: diaMean,
		MAPMean:       mapMean,
		Beats:         c.last.Beats - c.beatsAtStart,

		SpO2Mean:     spo2Mean,
		SpO2Min:      spo2Min,
		CO2Mean:      co2Mean,
		RespRateMean: rrMean,
		Breaths:      c.last.Breaths - c.breathsAtStart,

		GlucoseMean: gluMean,
		GlucoseStd:  gluStd,
		ToxinsEnd:   c.last.Toxins,

		GCSEnd:              c.last.GCS,
		EjectionFractionEnd: c.last.EjectionFraction,
		BladderVolumeEnd:    c.last.BladderVolume,
	}

	c.windowStartTick = currentTick
	c.heartRates = c.heartRates[:0]
	c.systolics = c.systolics[:0]
	c.diastolics = c.diastolics[:0]
	c.maps = c.maps[:0]
	c.spo2s = c.spo2s[:0]
	c.co2s = c.co2s[:0]
	c.respRates = c.respRates[:0]
	c.glucoses = c.glucoses[:0]

	return stats
}

// summarizeWithMin is summarize but the third return is the minimum
// instead of the 10th percentile.
func summarizeWithMin(values []float64) (mean, std, minimum, p90 float64) {
	mean, std, _, p90 = summarize(values)
	if len(values) == 0 {
		return mean, std, 0, p90
	}
	minimum = values[0]
	for _, v := range values[1:] {
		if v < minimum {
			minimum = v
		}
	}
	return mean, std, minimum, p90
}
