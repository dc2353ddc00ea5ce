package organs

import (
	"fmt"
	"math"
	"strings"
)

// GastricState is the stomach's digestion phase.
type GastricState uint8

const (
	GastricEmpty GastricState = iota
	GastricFilling
	GastricDigesting
	GastricEmptying
)

func (s GastricState) String() string {
	switch s {
	case GastricFilling:
		return "Filling"
	case GastricDigesting:
		return "Digesting"
	case GastricEmptying:
		return "Emptying"
	default:
		return "Empty"
	}
}

const (
	stomachCapacity  = 1500.0 // mL
	fillingDwell     = 2.0    // s before digestion starts
	digestionDwell   = 30.0   // s of active digestion
	gastricPHFloor   = 1.5
	gastricPHBase    = 4.5 // resting pH of an empty stomach
	bufferedPHCap    = 4.0 // food buffers acid up to this pH
	stomachEmptyRate = 0.5 // mL/s of chyme into the intestines
)

// Stomach is a gastric state machine over {EMPTY, FILLING, DIGESTING,
// EMPTYING}. Food arrives via AddSubstance; chyme leaves into the
// Intestines while emptying.
type Stomach struct {
	state         GastricState
	volume        float64 // mL
	ph            float64
	fillTime      float64 // s spent filling
	digestionTime float64 // s spent digesting
}

// NewStomach creates an empty resting stomach.
func NewStomach() *Stomach {
	return &Stomach{
		state: GastricEmpty,
		ph:    gastricPHBase,
	}
}

// Step advances the gastric state machine. Intestines may be nil; emptied
// chyme is then discarded.
func (st *Stomach) Step(dt float64, intestines *Intestines) {
	switch st.state {
	case GastricEmpty:
		// Waits for AddSubstance.

	case GastricFilling:
		st.fillTime += dt
		if st.fillTime > fillingDwell {
			st.state = GastricDigesting
			st.fillTime = 0
		}

	case GastricDigesting:
		// Acid secretion lowers pH toward the floor.
		st.ph = math.Max(gastricPHFloor, st.ph-0.5*dt)

		st.digestionTime += dt
		if st.digestionTime > digestionDwell {
			st.state = GastricEmptying
			st.digestionTime = 0
		}

	case GastricEmptying:
		emptied := math.Min(st.volume, stomachEmptyRate*dt)
		if intestines != nil {
			intestines.ReceiveChyme(emptied)
		}
		st.volume -= emptied
		if st.volume <= 0 {
			st.volume = 0
			st.state = GastricEmpty
			st.ph = gastricPHBase
		}
	}

	// Baseline gastric juice secretion, much higher while digesting.
	secretionRate := 0.1
	if st.state == GastricDigesting {
		secretionRate = 2.0
	}
	st.volume = clamp(st.volume+secretionRate*dt, 0, stomachCapacity)
}

// AddSubstance adds swallowed volume, buffers the acid and forces the
// FILLING state.
func (st *Stomach) AddSubstance(volume float64) {
	st.volume += volume
	st.ph = math.Min(bufferedPHCap, st.ph+0.5)
	st.state = GastricFilling
	st.fillTime = 0
}

// State returns the current gastric phase.
func (st *Stomach) State() GastricState { return st.state }

// Volume returns the gastric content volume in mL.
func (st *Stomach) Volume() float64 { return st.volume }

// Acidity returns the gastric pH.
func (st *Stomach) Acidity() float64 { return st.ph }

// Summary renders the gastric state.
func (st *Stomach) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Stomach Summary ---\n")
	fmt.Fprintf(&s, "State: %s\n", st.state)
	fmt.Fprintf(&s, "Volume: %.1f / %.1f mL\n", st.volume, stomachCapacity)
	fmt.Fprintf(&s, "Acidity (pH): %.1f\n", st.ph)
	return s.String()
}
