package organs

import (
	"fmt"
	"math/rand"
	"strings"
)

// SignalStatus is the conduction state of a spinal tract.
type SignalStatus uint8

const (
	SignalNormal SignalStatus = iota
	SignalImpaired
	SignalSevered
)

func (s SignalStatus) String() string {
	switch s {
	case SignalImpaired:
		return "Impaired"
	case SignalSevered:
		return "Severed"
	default:
		return "Normal"
	}
}

// NerveTract is one major spinal pathway.
type NerveTract struct {
	Name               string
	Status             SignalStatus
	ConductionVelocity float64 // m/s
}

// SpinalCord tracks the integrity of the motor and sensory pathways.
// Status never degrades on its own; an injury is applied externally by
// mutating the tract status.
type SpinalCord struct {
	MotorTract   NerveTract
	SensoryTract NerveTract

	reflexArcIntact bool
}

// NewSpinalCord creates an intact spinal cord.
func NewSpinalCord() *SpinalCord {
	return &SpinalCord{
		MotorTract:      NerveTract{Name: "Descending Motor Tract", Status: SignalNormal, ConductionVelocity: 75.0},
		SensoryTract:    NerveTract{Name: "Ascending Sensory Tract", Status: SignalNormal, ConductionVelocity: 65.0},
		reflexArcIntact: true,
	}
}

// Step drifts conduction velocities within their healthy bands and
// re-evaluates the reflex arc.
func (sc *SpinalCord) Step(dt float64, rng *rand.Rand) {
	sc.MotorTract.ConductionVelocity += fluctuation(rng, 0.1)
	sc.MotorTract.ConductionVelocity = clamp(sc.MotorTract.ConductionVelocity, 70.0, 80.0)

	sc.SensoryTract.ConductionVelocity += fluctuation(rng, 0.1)
	sc.SensoryTract.ConductionVelocity = clamp(sc.SensoryTract.ConductionVelocity, 60.0, 70.0)

	sc.reflexArcIntact = sc.MotorTract.Status == SignalNormal && sc.SensoryTract.Status == SignalNormal
}

// MotorPathwayStatus returns the motor tract status.
func (sc *SpinalCord) MotorPathwayStatus() SignalStatus { return sc.MotorTract.Status }

// SensoryPathwayStatus returns the sensory tract status.
func (sc *SpinalCord) SensoryPathwayStatus() SignalStatus { return sc.SensoryTract.Status }

// ReflexArcIntact reports whether both tracts conduct normally.
func (sc *SpinalCord) ReflexArcIntact() bool { return sc.reflexArcIntact }

// Summary renders tract integrity.
func (sc *SpinalCord) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Spinal Cord Summary ---\n")
	fmt.Fprintf(&s, "Motor Pathway (%s): %s (%.1f m/s)\n", sc.MotorTract.Name, sc.MotorTract.Status, sc.MotorTract.ConductionVelocity)
	fmt.Fprintf(&s, "Sensory Pathway (%s): %s (%.1f m/s)\n", sc.SensoryTract.Name, sc.SensoryTract.Status, sc.SensoryTract.ConductionVelocity)
	if sc.reflexArcIntact {
		fmt.Fprintf(&s, "Reflex Arc Intact: Yes\n")
	} else {
		fmt.Fprintf(&s, "Reflex Arc Intact: No\n")
	}
	return s.String()
}
