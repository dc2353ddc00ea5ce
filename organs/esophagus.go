package organs

import (
	"fmt"
	"strings"
)

// PeristalsisState is the esophageal contraction phase.
type PeristalsisState uint8

const (
	PeristalsisIdle PeristalsisState = iota
	PeristalsisContracting
)

func (s PeristalsisState) String() string {
	if s == PeristalsisContracting {
		return "Contracting"
	}
	return "Idle"
}

// Bolus is a swallowed volume in transit down the esophagus.
type Bolus struct {
	Position float64 // cm from the pharynx
	Volume   float64 // mL
}

const (
	esophagusLength  = 25.0 // cm
	peristalticSpeed = 3.0  // cm/s
)

// Esophagus transports swallowed boli to the Stomach by peristalsis.
// Several boli may be in transit at once.
type Esophagus struct {
	state PeristalsisState
	boli  []Bolus
}

// NewEsophagus creates an idle, empty esophagus.
func NewEsophagus() *Esophagus {
	return &Esophagus{state: PeristalsisIdle}
}

// Step advances every bolus in transit and delivers those reaching the
// stomach. Stomach may be nil; delivered boli are then discarded.
func (e *Esophagus) Step(dt float64, stomach *Stomach) {
	kept := e.boli[:0]
	for _, b := range e.boli {
		b.Position += peristalticSpeed * dt
		if b.Position >= esophagusLength {
			if stomach != nil {
				stomach.AddSubstance(b.Volume)
			}
			continue
		}
		kept = append(kept, b)
	}
	e.boli = kept

	if len(e.boli) > 0 {
		e.state = PeristalsisContracting
	} else {
		e.state = PeristalsisIdle
	}
}

// InitiateSwallow enqueues a bolus at the pharynx and starts peristalsis.
func (e *Esophagus) InitiateSwallow(volume float64) {
	e.boli = append(e.boli, Bolus{Position: 0, Volume: volume})
	e.state = PeristalsisContracting
}

// State returns the current peristalsis phase.
func (e *Esophagus) State() PeristalsisState { return e.state }

// BoliInTransit returns the number of boli currently travelling.
func (e *Esophagus) BoliInTransit() int { return len(e.boli) }

// Boli copies out the boli in transit.
func (e *Esophagus) Boli() []Bolus {
	out := make([]Bolus, len(e.boli))
	copy(out, e.boli)
	return out
}

// Summary renders the transit state.
func (e *Esophagus) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Esophagus Summary ---\n")
	fmt.Fprintf(&s, "State: %s\n", e.state)
	fmt.Fprintf(&s, "Boli In Transit: %d\n", len(e.boli))
	for _, b := range e.boli {
		fmt.Fprintf(&s, "  Bolus: %.1f mL at %.1f cm\n", b.Volume, b.Position)
	}
	return s.String()
}
