package organs

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ChamberState marks whether a chamber is contracting or filling.
type ChamberState uint8

const (
	Diastole ChamberState = iota
	Systole
)

func (s ChamberState) String() string {
	if s == Systole {
		return "SYSTOLE"
	}
	return "DIASTOLE"
}

// ValveStatus is the open/closed position of a heart valve.
type ValveStatus uint8

const (
	ValveClosed ValveStatus = iota
	ValveOpen
)

func (s ValveStatus) String() string {
	if s == ValveOpen {
		return "OPEN"
	}
	return "CLOSED"
}

// Chamber is one of the four heart chambers.
type Chamber struct {
	Name               string
	State              ChamberState
	Volume             float64 // mL
	Pressure           float64 // mmHg
	EndDiastolicVolume float64 // mL, captured at the atrial-systole boundary
	EndSystolicVolume  float64 // mL, captured at the ventricular-systole boundary
}

// Valve is one of the four heart valves. Stenosis and Regurgitation are
// severity fields (0 = healthy); no pathology dynamics act on them yet.
type Valve struct {
	Name          string
	Status        ValveStatus
	Stenosis      float64
	Regurgitation float64
}

// Fixed cardiac-cycle fractions.
const (
	atrialSystoleEnd      = 0.15
	ventricularSystoleBeg = 0.20
	ventricularSystoleEnd = 0.50
	rPeakFraction         = 0.22

	chamberVolumeMin = 40.0  // mL
	chamberVolumeMax = 130.0 // mL

	ekgHistorySize = 200
)

// allLeadNames is the standard 12-lead set in attenuation order.
var allLeadNames = []string{
	"I", "II", "III", "aVR", "aVL", "aVF",
	"V1", "V2", "V3", "V4", "V5", "V6",
}

// Heart models the electrical and mechanical cardiac cycle. The target rate
// is set externally (by the Brain's baroreceptor reflex); the measured rate
// is derived from R-peak to R-peak timing.
type Heart struct {
	LeftAtrium     Chamber
	RightAtrium    Chamber
	LeftVentricle  Chamber
	RightVentricle Chamber

	MitralValve    Valve
	TricuspidValve Valve
	AorticValve    Valve
	PulmonaryValve Valve

	targetRate   float64 // bpm, set by the Brain
	measuredRate float64 // bpm, from R-peak spacing

	totalTime     float64
	cyclePosition float64 // seconds into the current cycle
	lastRPeakTime float64
	rPeakInCycle  bool
	beatCount     int64

	ejectionFraction float64

	leadNames []string
	ekg       map[string]*Waveform
}

// NewHeart creates a heart with the given number of EKG leads (capped at
// the standard twelve).
func NewHeart(numLeads int) *Heart {
	h := &Heart{
		LeftAtrium:     Chamber{Name: "Left Atrium", Volume: 50},
		RightAtrium:    Chamber{Name: "Right Atrium", Volume: 50},
		LeftVentricle:  Chamber{Name: "Left Ventricle", Volume: 120},
		RightVentricle: Chamber{Name: "Right Ventricle", Volume: 120},
		MitralValve:    Valve{Name: "Mitral Valve"},
		TricuspidValve: Valve{Name: "Tricuspid Valve"},
		AorticValve:    Valve{Name: "Aortic Valve"},
		PulmonaryValve: Valve{Name: "Pulmonary Valve"},

		targetRate:       75.0,
		measuredRate:     75.0,
		lastRPeakTime:    -1.0,
		ejectionFraction: 0.55,
		ekg:              make(map[string]*Waveform),
	}

	if numLeads > len(allLeadNames) {
		numLeads = len(allLeadNames)
	}
	for i := 0; i < numLeads; i++ {
		h.leadNames = append(h.leadNames, allLeadNames[i])
		h.ekg[allLeadNames[i]] = NewWaveform(ekgHistorySize)
	}
	return h
}

// Step advances the electrical and mechanical simulation and writes blood
// pressure back into the shared blood record.
func (h *Heart) Step(dt float64, blood *Blood, rng *rand.Rand) {
	h.totalTime += dt

	// Natural beat-to-beat variation on top of the brain-set rate.
	h.targetRate += fluctuation(rng, 0.01)
	cycleDuration := 60.0 / h.targetRate

	oldPosition := h.cyclePosition
	h.cyclePosition += dt

	// R-peak crossing updates the measured rate.
	rPeakTime := rPeakFraction * cycleDuration
	if oldPosition < rPeakTime && h.cyclePosition >= rPeakTime && !h.rPeakInCycle {
		if h.lastRPeakTime > 0 {
			h.measuredRate = 60.0 / (h.totalTime - h.lastRPeakTime)
		}
		h.lastRPeakTime = h.totalTime
		h.rPeakInCycle = true
		h.beatCount++
	}

	if h.cyclePosition > cycleDuration {
		h.cyclePosition -= cycleDuration
		h.rPeakInCycle = false
	}

	timeInCycle := h.cyclePosition / cycleDuration
	oldTimeInCycle := oldPosition / cycleDuration

	// EKG synthesis, attenuated per lead.
	base := ekgVoltage(timeInCycle)
	for i, name := range h.leadNames {
		h.ekg[name].Push(base * (1.0 - float64(i)*0.1))
	}

	// Pressures outside the heart.
	const pulmonaryArteryPressure = 20.0
	aorticPressure := h.AorticPressure()

	// Chamber states follow fixed cycle fractions.
	if timeInCycle < atrialSystoleEnd {
		h.LeftAtrium.State = Systole
		h.RightAtrium.State = Systole
	} else {
		h.LeftAtrium.State = Diastole
		h.RightAtrium.State = Diastole
		// End of ventricular filling: capture EDV once per cycle.
		if oldTimeInCycle < atrialSystoleEnd {
			h.LeftVentricle.EndDiastolicVolume = h.LeftVentricle.Volume
		}
	}

	if timeInCycle >= ventricularSystoleBeg && timeInCycle < ventricularSystoleEnd {
		h.LeftVentricle.State = Systole
		h.RightVentricle.State = Systole
	} else {
		h.LeftVentricle.State = Diastole
		h.RightVentricle.State = Diastole
		// End of ejection: capture ESV and recompute ejection fraction.
		if oldTimeInCycle < ventricularSystoleEnd && timeInCycle >= ventricularSystoleEnd {
			h.LeftVentricle.EndSystolicVolume = h.LeftVentricle.Volume
			if h.LeftVentricle.EndDiastolicVolume > 0 {
				h.ejectionFraction = (h.LeftVentricle.EndDiastolicVolume - h.LeftVentricle.EndSystolicVolume) /
					h.LeftVentricle.EndDiastolicVolume
			}
		}
	}

	// Chamber pressures, state dependent.
	h.LeftAtrium.Pressure = pick(h.LeftAtrium.State == Systole, 10.0, 5.0)
	h.RightAtrium.Pressure = pick(h.RightAtrium.State == Systole, 7.0, 2.0)
	systolicWave := math.Sin((timeInCycle - ventricularSystoleBeg) / 0.3 * math.Pi)
	h.LeftVentricle.Pressure = pick(h.LeftVentricle.State == Systole, 125.0*systolicWave, 5.0)
	h.RightVentricle.Pressure = pick(h.RightVentricle.State == Systole, 25.0*systolicWave, 2.0)

	// Valves open purely on pressure gradients.
	h.TricuspidValve.Status = valveFor(h.RightAtrium.Pressure > h.RightVentricle.Pressure)
	h.MitralValve.Status = valveFor(h.LeftAtrium.Pressure > h.LeftVentricle.Pressure)
	h.PulmonaryValve.Status = valveFor(h.RightVentricle.Pressure > pulmonaryArteryPressure)
	h.AorticValve.Status = valveFor(h.LeftVentricle.Pressure > aorticPressure)

	// Volumes integrate a fixed flow while the relevant valve is open.
	flow := 500.0 * dt
	if h.MitralValve.Status == ValveOpen {
		h.LeftVentricle.Volume += flow
	}
	if h.TricuspidValve.Status == ValveOpen {
		h.RightVentricle.Volume += flow
	}
	if h.AorticValve.Status == ValveOpen {
		h.LeftVentricle.Volume -= flow * 1.5
	}
	if h.PulmonaryValve.Status == ValveOpen {
		h.RightVentricle.Volume -= flow * 1.5
	}
	h.LeftVentricle.Volume = clamp(h.LeftVentricle.Volume, chamberVolumeMin, chamberVolumeMax)
	h.RightVentricle.Volume = clamp(h.RightVentricle.Volume, chamberVolumeMin, chamberVolumeMax)

	// Blood pressure from rate deviation plus angiotensin vasoconstriction.
	angiotensinEffect := blood.Angiotensin * 2.0
	systolic := 110.0 + (h.targetRate-75.0)*0.5 + angiotensinEffect
	diastolic := 75.0 + (h.targetRate-75.0)*0.25 + angiotensinEffect
	blood.Systolic = clamp(systolic, 80.0, 180.0)
	blood.Diastolic = clamp(diastolic, 50.0, 110.0)
}

// ekgVoltage synthesizes one EKG sample as the sum of five Gaussian pulses
// (P, Q, R, S, T) at fixed cycle fractions.
func ekgVoltage(timeInCycle float64) float64 {
	v := 0.15 * gaussian(timeInCycle, 0.10, 0.04)  // P
	v += -0.10 * gaussian(timeInCycle, 0.20, 0.02) // Q
	v += 1.00 * gaussian(timeInCycle, 0.22, 0.02)  // R
	v += -0.25 * gaussian(timeInCycle, 0.24, 0.02) // S
	v += 0.30 * gaussian(timeInCycle, 0.40, 0.06)  // T
	return v
}

// AorticPressure is ventricular pressure while the aortic valve is open,
// and an exponential decay toward the diastolic floor otherwise.
func (h *Heart) AorticPressure() float64 {
	if h.AorticValve.Status == ValveOpen {
		return h.LeftVentricle.Pressure
	}
	return 80.0 + 40.0*math.Exp(-h.cyclePosition)
}

// Rate returns the measured heart rate in bpm.
func (h *Heart) Rate() float64 { return h.measuredRate }

// TargetRate returns the externally set rate in bpm.
func (h *Heart) TargetRate() float64 { return h.targetRate }

// SetTargetRate sets the rate the cycle timing is based on. Non-positive
// rates are ignored; the cycle duration divides by this value.
func (h *Heart) SetTargetRate(bpm float64) {
	if bpm <= 0 {
		return
	}
	h.targetRate = bpm
}

// EjectionFraction returns (EDV-ESV)/EDV from the most recent cycle.
func (h *Heart) EjectionFraction() float64 { return h.ejectionFraction }

// BeatCount returns the number of R-peaks seen since construction.
func (h *Heart) BeatCount() int64 { return h.beatCount }

// LeadNames returns the configured EKG lead names in attenuation order.
func (h *Heart) LeadNames() []string { return h.leadNames }

// EKG returns the waveform history for a lead, or nil if the lead is not
// configured.
func (h *Heart) EKG(lead string) *Waveform { return h.ekg[lead] }

// Summary renders the key cardiac vitals.
func (h *Heart) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Heart Summary ---\n")
	fmt.Fprintf(&b, "Heart Rate (Measured): %.2f bpm\n", h.Rate())
	fmt.Fprintf(&b, "Ejection Fraction: %.2f%%\n", h.EjectionFraction()*100.0)
	fmt.Fprintf(&b, "Aortic Pressure: %.2f mmHg\n\n", h.AorticPressure())
	fmt.Fprintf(&b, "--- Chambers ---\n")
	fmt.Fprintf(&b, " LV Volume: %.2f mL\n", h.LeftVentricle.Volume)
	fmt.Fprintf(&b, " LV Pressure: %.2f mmHg\n", h.LeftVentricle.Pressure)
	fmt.Fprintf(&b, " RV Volume: %.2f mL\n", h.RightVentricle.Volume)
	fmt.Fprintf(&b, " RV Pressure: %.2f mmHg\n\n", h.RightVentricle.Pressure)
	fmt.Fprintf(&b, "--- Valves ---\n")
	fmt.Fprintf(&b, " Aortic Valve: %s\n", h.AorticValve.Status)
	fmt.Fprintf(&b, " Mitral Valve: %s\n", h.MitralValve.Status)
	return b.String()
}

// pick returns a when cond is true, else b.
func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// valveFor maps a pressure-gradient condition to a valve status.
func valveFor(open bool) ValveStatus {
	if open {
		return ValveOpen
	}
	return ValveClosed
}
