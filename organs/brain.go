package organs

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// BrainRegion is a named cortical or cerebellar region.
type BrainRegion struct {
	Name          string
	ActivityLevel float64 // 0-1
	BloodFlow     float64 // mL/100g/min
}

// AutonomicGains are the proportional gains and smoothing speeds of the
// chemoreceptor and baroreceptor reflexes. Exported so cmd/calibrate can
// tune them against target vitals.
type AutonomicGains struct {
	CO2Drive    float64 // breaths/min per mmHg of hypercapnia
	O2Drive     float64 // breaths/min per % of hypoxia
	RespSpeed   float64 // 1/s smoothing toward the respiratory target
	BaroGain    float64 // bpm per mmHg of MAP error
	CardioSpeed float64 // 1/s smoothing toward the heart-rate target
}

// DefaultAutonomicGains returns the resting reflex gains.
func DefaultAutonomicGains() AutonomicGains {
	return AutonomicGains{
		CO2Drive:    0.5,
		O2Drive:     0.8,
		RespSpeed:   0.5,
		BaroGain:    0.4,
		CardioSpeed: 0.4,
	}
}

// BrainInputs carries the cross-organ readings the Brain depends on.
// Absent organs are signalled by the Has flags; the Brain degrades to a
// stable default for each.
type BrainInputs struct {
	HasHeart       bool
	AorticPressure float64

	HasLungs         bool
	LungPeakPressure float64

	MotorPathwayImpaired bool
}

const (
	eegHistorySize = 200

	mapFallbackMin = 85.0
	mapFallbackMax = 95.0
	icpMin         = 8.0
	icpMax         = 12.0

	intubationPressureThreshold = 5.0 // cmH2O
)

// Brain models regional activity, intracranial pressures, consciousness
// scoring and the autonomic reflexes that steer Heart and Lungs.
type Brain struct {
	FrontalLobe   BrainRegion
	TemporalLobe  BrainRegion
	ParietalLobe  BrainRegion
	OccipitalLobe BrainRegion
	Cerebellum    BrainRegion

	Gains AutonomicGains

	gcsEye    int // 1-4
	gcsVerbal int // 1-5
	gcsMotor  int // 1-6

	intracranialPressure      float64 // mmHg
	cerebralPerfusionPressure float64 // mmHg
	meanArterialPressure      float64 // mmHg
	targetRespirationRate     float64 // breaths/min
	targetHeartRate           float64 // bpm
	totalTime                 float64

	eeg *Waveform
}

// NewBrain creates a fully conscious brain at resting autonomic targets.
func NewBrain() *Brain {
	return &Brain{
		FrontalLobe:   BrainRegion{Name: "Frontal Lobe", ActivityLevel: 0.8, BloodFlow: 50.0},
		TemporalLobe:  BrainRegion{Name: "Temporal Lobe", ActivityLevel: 0.7, BloodFlow: 50.0},
		ParietalLobe:  BrainRegion{Name: "Parietal Lobe", ActivityLevel: 0.7, BloodFlow: 50.0},
		OccipitalLobe: BrainRegion{Name: "Occipital Lobe", ActivityLevel: 0.8, BloodFlow: 55.0},
		Cerebellum:    BrainRegion{Name: "Cerebellum", ActivityLevel: 0.6, BloodFlow: 60.0},

		Gains: DefaultAutonomicGains(),

		gcsEye:    4,
		gcsVerbal: 5,
		gcsMotor:  6,

		intracranialPressure:      10.0,
		cerebralPerfusionPressure: 80.0,
		meanArterialPressure:      90.0,
		targetRespirationRate:     16.0,
		targetHeartRate:           75.0,

		eeg: NewWaveform(eegHistorySize),
	}
}

// Step advances pressures, activity, consciousness scoring, the autonomic
// targets and the EEG, and applies the brain's own metabolic load to the
// blood. The caller writes the updated target rates into Heart and Lungs.
func (b *Brain) Step(dt float64, blood *Blood, in BrainInputs, rng *rand.Rand) {
	b.totalTime += dt

	if in.HasHeart {
		b.meanArterialPressure = in.AorticPressure
	} else {
		// Without a heart, hold MAP steady around its resting band.
		b.meanArterialPressure += fluctuation(rng, 0.1)
		b.meanArterialPressure = clamp(b.meanArterialPressure, mapFallbackMin, mapFallbackMax)
	}

	b.FrontalLobe.ActivityLevel += fluctuation(rng, 0.005)
	b.FrontalLobe.ActivityLevel = clamp(b.FrontalLobe.ActivityLevel, 0.7, 0.9)

	b.intracranialPressure += fluctuation(rng, 0.01)
	b.intracranialPressure = clamp(b.intracranialPressure, icpMin, icpMax)
	b.cerebralPerfusionPressure = math.Max(0, b.meanArterialPressure-b.intracranialPressure)

	b.stepAutonomicControl(dt, blood)

	b.eeg.Push(b.eegValue(rng))

	// Metabolic load scales with mean regional activity.
	activity := (b.FrontalLobe.ActivityLevel + b.TemporalLobe.ActivityLevel +
		b.ParietalLobe.ActivityLevel + b.OccipitalLobe.ActivityLevel +
		b.Cerebellum.ActivityLevel) / 5.0
	blood.OxygenSaturation -= 0.1 * activity * dt
	blood.CO2PartialPressure += 0.08 * activity * dt

	b.stepGCS(blood, in)
}

func (b *Brain) stepAutonomicControl(dt float64, blood *Blood) {
	// Chemoreceptor reflex: breathe harder for high CO2 or low O2.
	co2Drive := math.Max(0, blood.CO2PartialPressure-40.0) * b.Gains.CO2Drive
	o2Drive := math.Max(0, 98.0-blood.OxygenSaturation) * b.Gains.O2Drive
	respTarget := 16.0 + co2Drive + o2Drive
	b.targetRespirationRate = relaxToward(b.targetRespirationRate, respTarget, b.Gains.RespSpeed, dt)
	b.targetRespirationRate = clamp(b.targetRespirationRate, 8.0, 35.0)

	// Baroreceptor reflex: raise heart rate when MAP falls below 90 mmHg.
	mapError := 90.0 - blood.MeanArterialPressure()
	hrTarget := 75.0 + mapError*b.Gains.BaroGain
	b.targetHeartRate = relaxToward(b.targetHeartRate, hrTarget, b.Gains.CardioSpeed, dt)
	b.targetHeartRate = clamp(b.targetHeartRate, 50.0, 160.0)
}

// stepGCS recomputes the Glasgow sub-scores from descending threshold
// ladders on oxygen, CO2 and perfusion, then applies the toxin, spinal
// and intubation confounders.
func (b *Brain) stepGCS(blood *Blood, in BrainInputs) {
	o2 := blood.OxygenSaturation
	co2 := blood.CO2PartialPressure
	cpp := b.cerebralPerfusionPressure

	switch {
	case o2 > 94.0 && cpp > 60:
		b.gcsEye = 4
	case o2 > 90.0 && cpp > 55:
		b.gcsEye = 3
	case o2 > 80.0 || cpp > 50:
		b.gcsEye = 2
	default:
		b.gcsEye = 1
	}

	switch {
	case co2 < 45.0 && o2 > 94.0:
		b.gcsVerbal = 5
	case co2 < 55.0 && o2 > 90.0:
		b.gcsVerbal = 4
	case co2 < 65.0 || o2 > 85.0:
		b.gcsVerbal = 3
	case co2 < 75.0 || o2 > 75.0:
		b.gcsVerbal = 2
	default:
		b.gcsVerbal = 1
	}

	switch {
	case cpp > 60 && o2 > 92.0:
		b.gcsMotor = 6
	case cpp > 55 && o2 > 88.0:
		b.gcsMotor = 5
	case cpp > 50 || o2 > 80.0:
		b.gcsMotor = 4
	case cpp > 45 || o2 > 70.0:
		b.gcsMotor = 3
	case cpp > 40 || o2 > 60.0:
		b.gcsMotor = 2
	default:
		b.gcsMotor = 1
	}

	if blood.Toxins > 50.0 {
		b.gcsEye = min(b.gcsEye, 2)
		b.gcsVerbal = min(b.gcsVerbal, 3)
		b.gcsMotor = min(b.gcsMotor, 4)
	}
	if blood.Toxins > 80.0 {
		b.gcsEye = 1
		b.gcsVerbal = min(b.gcsVerbal, 2)
		b.gcsMotor = min(b.gcsMotor, 3)
	}

	if in.MotorPathwayImpaired {
		b.gcsMotor = 1
	}

	// Airway pressure above the threshold implies mechanical ventilation,
	// so the verbal response is not testable.
	if in.HasLungs && in.LungPeakPressure > intubationPressureThreshold {
		b.gcsVerbal = 1
	}
}

// eegValue mixes alpha and beta band sines with noise, scaled to microvolts.
func (b *Brain) eegValue(rng *rand.Rand) float64 {
	alpha := 0.5 * math.Sin(2*math.Pi*10*b.totalTime)
	beta := 0.3 * math.Sin(2*math.Pi*20*b.totalTime)
	return (alpha + beta + fluctuation(rng, 0.1)) * 20
}

// GCS returns the total Glasgow Coma Scale score, 3-15.
func (b *Brain) GCS() int { return b.gcsEye + b.gcsVerbal + b.gcsMotor }

// GCSEye returns the eye-opening sub-score, 1-4.
func (b *Brain) GCSEye() int { return b.gcsEye }

// GCSVerbal returns the verbal sub-score, 1-5.
func (b *Brain) GCSVerbal() int { return b.gcsVerbal }

// GCSMotor returns the motor sub-score, 1-6.
func (b *Brain) GCSMotor() int { return b.gcsMotor }

// IntracranialPressure returns the ICP in mmHg.
func (b *Brain) IntracranialPressure() float64 { return b.intracranialPressure }

// CerebralPerfusionPressure returns the CPP in mmHg.
func (b *Brain) CerebralPerfusionPressure() float64 { return b.cerebralPerfusionPressure }

// MeanArterialPressure returns the MAP the brain last observed, in mmHg.
func (b *Brain) MeanArterialPressure() float64 { return b.meanArterialPressure }

// TargetHeartRate returns the autonomic heart-rate target in bpm.
func (b *Brain) TargetHeartRate() float64 { return b.targetHeartRate }

// TargetRespirationRate returns the autonomic respiratory target in
// breaths/min.
func (b *Brain) TargetRespirationRate() float64 { return b.targetRespirationRate }

// EEG returns the EEG history, newest first.
func (b *Brain) EEG() *Waveform { return b.eeg }

// Summary renders consciousness and perfusion state.
func (b *Brain) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Brain Summary ---\n")
	fmt.Fprintf(&s, "Glasgow Coma Scale (GCS): %d\n", b.GCS())
	fmt.Fprintf(&s, "Intracranial Pressure (ICP): %.1f mmHg\n", b.intracranialPressure)
	fmt.Fprintf(&s, "Mean Arterial Pressure (MAP): %.1f mmHg\n", b.meanArterialPressure)
	fmt.Fprintf(&s, "Cerebral Perfusion (CPP): %.1f mmHg\n", b.cerebralPerfusionPressure)
	return s.String()
}
