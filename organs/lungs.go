package organs

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// RespiratoryState is the phase of the breathing cycle.
type RespiratoryState uint8

const (
	RespPause RespiratoryState = iota
	RespInspiration
	RespExpiration
)

func (s RespiratoryState) String() string {
	switch s {
	case RespInspiration:
		return "INSPIRATION"
	case RespExpiration:
		return "EXPIRATION"
	default:
		return "PAUSE"
	}
}

// Lobe is one lung lobe; compliance scales how much volume a given
// pressure moves.
type Lobe struct {
	Name       string
	Volume     float64 // mL
	Compliance float64
}

// Bronchus carries the airway resistance.
type Bronchus struct {
	Name       string
	Resistance float64
}

const (
	totalLungCapacity   = 6000.0 // mL
	capnographySize     = 200
	inspirationFraction = 0.4 // I:E ratio of 1:1.5
	capnoPlateauStart   = 0.5
	capnoPlateauEnd     = 0.8
)

// Lungs models respiratory mechanics, gas relaxation and the capnogram,
// and performs the blood gas exchange. The respiration rate is set
// externally by the Brain's chemoreceptor reflex.
type Lungs struct {
	RightUpperLobe  Lobe
	RightMiddleLobe Lobe
	RightLowerLobe  Lobe
	LeftUpperLobe   Lobe
	LeftLowerLobe   Lobe
	MainBronchus    Bronchus

	respirationRate         float64 // breaths/min, set by the Brain
	oxygenSaturation        float64 // %, the lung-side O2 level
	tidalVolume             float64 // mL
	endTidalCO2             float64 // mmHg
	peakInspiratoryPressure float64 // cmH2O

	state         RespiratoryState
	cyclePosition float64
	totalTime     float64
	breathCount   int64

	capnography *Waveform
}

// NewLungs creates healthy lungs at a resting respiration rate.
func NewLungs() *Lungs {
	return &Lungs{
		RightUpperLobe:  Lobe{Name: "Right Upper Lobe", Compliance: 0.10},
		RightMiddleLobe: Lobe{Name: "Right Middle Lobe", Compliance: 0.07},
		RightLowerLobe:  Lobe{Name: "Right Lower Lobe", Compliance: 0.13},
		LeftUpperLobe:   Lobe{Name: "Left Upper Lobe", Compliance: 0.10},
		LeftLowerLobe:   Lobe{Name: "Left Lower Lobe", Compliance: 0.10},
		MainBronchus:    Bronchus{Name: "Main Bronchus", Resistance: 0.8},

		respirationRate:  16.0,
		oxygenSaturation: 98.0,
		tidalVolume:      500.0,
		endTidalCO2:      40.0,
		state:            RespPause,
		capnography:      NewWaveform(capnographySize),
	}
}

// Step advances respiratory mechanics and gas levels, records a capnogram
// sample, and exchanges gases with the blood.
func (l *Lungs) Step(dt float64, blood *Blood, rng *rand.Rand) {
	l.totalTime += dt

	l.stepMechanics(dt)
	l.stepGasLevels(dt, rng)
	l.capnography.Push(l.capnographyValue(rng))

	// Gas exchange scales with how well we are ventilating.
	ventilation := clamp((l.tidalVolume/500.0)*(l.respirationRate/16.0), 0.5, 1.5)

	// Blood O2 moves toward the lung-side O2 level.
	o2Gradient := l.oxygenSaturation - blood.OxygenSaturation
	blood.OxygenSaturation += o2Gradient * 0.8 * ventilation * dt
	blood.OxygenSaturation = clamp(blood.OxygenSaturation, 0.0, 100.0)

	// Blood CO2 moves toward the effective alveolar CO2, which drops as
	// ventilation rises.
	effectiveAlveolarCO2 := 40.0 / ventilation
	co2Gradient := blood.CO2PartialPressure - effectiveAlveolarCO2
	blood.CO2PartialPressure -= co2Gradient * 0.5 * dt
	blood.CO2PartialPressure = clamp(blood.CO2PartialPressure, 0.0, 200.0)
}

func (l *Lungs) stepMechanics(dt float64) {
	cycleDuration := 60.0 / l.respirationRate
	l.cyclePosition += dt

	inspirationDuration := cycleDuration * inspirationFraction

	switch {
	case l.cyclePosition <= inspirationDuration:
		l.state = RespInspiration
	case l.cyclePosition <= cycleDuration:
		l.state = RespExpiration
	default:
		l.cyclePosition -= cycleDuration
		l.state = RespInspiration
		l.breathCount++
	}

	totalCompliance := l.RightUpperLobe.Compliance + l.RightMiddleLobe.Compliance +
		l.RightLowerLobe.Compliance + l.LeftUpperLobe.Compliance + l.LeftLowerLobe.Compliance

	if l.state == RespInspiration {
		// Half-sine pressure ramp drives inflow against airway resistance.
		wave := math.Sin(math.Pi * (l.cyclePosition / inspirationDuration))
		l.peakInspiratoryPressure = 15.0 * wave
		flow := (l.peakInspiratoryPressure / l.MainBronchus.Resistance) * 100 * totalCompliance
		l.tidalVolume += flow * dt
	} else {
		// Passive recoil drives expiration.
		l.peakInspiratoryPressure = 0
		recoil := (l.tidalVolume / 500.0) * 5.0
		flow := -(recoil / l.MainBronchus.Resistance) * 100
		l.tidalVolume += flow * dt
	}

	l.tidalVolume = clamp(l.tidalVolume, 0.0, totalLungCapacity/2.0)
}

func (l *Lungs) stepGasLevels(dt float64, rng *rand.Rand) {
	ventilation := (l.tidalVolume / 500.0) * (l.respirationRate / 16.0)

	targetSpO2 := 98.0 * clamp(ventilation, 0.9, 1.0)
	l.oxygenSaturation += 0.1*(targetSpO2-l.oxygenSaturation)*dt + fluctuation(rng, 0.02)
	l.oxygenSaturation = clamp(l.oxygenSaturation, 94.0, 100.0)

	targetEtCO2 := 40.0 / clamp(ventilation, 0.8, 1.2)
	l.endTidalCO2 += 0.2*(targetEtCO2-l.endTidalCO2)*dt + fluctuation(rng, 0.05)
	l.endTidalCO2 = clamp(l.endTidalCO2, 35.0, 50.0)
}

// capnographyValue synthesizes one capnogram sample: zero during
// inspiration, then upstroke, noisy plateau and downstroke across the
// expiratory sub-phases.
func (l *Lungs) capnographyValue(rng *rand.Rand) float64 {
	cycleDuration := 60.0 / l.respirationRate
	t := math.Mod(l.cyclePosition, cycleDuration)
	inspirationEnd := cycleDuration * inspirationFraction
	plateauStart := cycleDuration * capnoPlateauStart
	plateauEnd := cycleDuration * capnoPlateauEnd

	if l.state == RespInspiration {
		return 0.0
	}
	switch {
	case t < plateauStart:
		return l.endTidalCO2 * ((t - inspirationEnd) / (plateauStart - inspirationEnd))
	case t < plateauEnd:
		return l.endTidalCO2 + fluctuation(rng, 0.1)
	default:
		return l.endTidalCO2 * (1.0 - (t-plateauEnd)/(cycleDuration-plateauEnd))
	}
}

// InflictDamage permanently reduces every lobe's compliance by the given
// fraction of its current value. There is no recovery path.
func (l *Lungs) InflictDamage(fraction float64) {
	factor := 1.0 - clamp(fraction, 0.0, 1.0)
	l.RightUpperLobe.Compliance *= factor
	l.RightMiddleLobe.Compliance *= factor
	l.RightLowerLobe.Compliance *= factor
	l.LeftUpperLobe.Compliance *= factor
	l.LeftLowerLobe.Compliance *= factor
}

// RespirationRate returns the current rate in breaths/min.
func (l *Lungs) RespirationRate() float64 { return l.respirationRate }

// SetRespirationRate sets the breathing rate. Non-positive rates are
// ignored.
func (l *Lungs) SetRespirationRate(bpm float64) {
	if bpm <= 0 {
		return
	}
	l.respirationRate = bpm
}

// OxygenSaturation returns the lung-side O2 level in percent.
func (l *Lungs) OxygenSaturation() float64 { return l.oxygenSaturation }

// TidalVolume returns the current tidal volume in mL.
func (l *Lungs) TidalVolume() float64 { return l.tidalVolume }

// EndTidalCO2 returns the end-tidal CO2 in mmHg.
func (l *Lungs) EndTidalCO2() float64 { return l.endTidalCO2 }

// PeakInspiratoryPressure returns the current airway pressure in cmH2O.
func (l *Lungs) PeakInspiratoryPressure() float64 { return l.peakInspiratoryPressure }

// State returns the current respiratory phase.
func (l *Lungs) State() RespiratoryState { return l.state }

// BreathCount returns completed breath cycles since construction.
func (l *Lungs) BreathCount() int64 { return l.breathCount }

// Capnography returns the capnogram history, newest first.
func (l *Lungs) Capnography() *Waveform { return l.capnography }

// Summary renders the key respiratory vitals.
func (l *Lungs) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Lungs Summary ---\n")
	fmt.Fprintf(&b, "Respiration Rate: %.1f breaths/min\n", l.respirationRate)
	fmt.Fprintf(&b, "Oxygen Saturation (SpO2): %.1f %%\n", l.oxygenSaturation)
	fmt.Fprintf(&b, "Tidal Volume: %.1f mL\n", l.tidalVolume)
	fmt.Fprintf(&b, "End-Tidal CO2 (etCO2): %.1f mmHg\n", l.endTidalCO2)
	fmt.Fprintf(&b, "Peak Airway Pressure: %.1f cmH2O\n", l.peakInspiratoryPressure)
	return b.String()
}
