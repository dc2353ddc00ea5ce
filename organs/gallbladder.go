package organs

import (
	"fmt"
	"math"
	"strings"
)

// GallbladderState is the gallbladder's storage/release phase.
type GallbladderState uint8

const (
	GallbladderStoring GallbladderState = iota
	GallbladderContracting
)

func (s GallbladderState) String() string {
	if s == GallbladderContracting {
		return "Contracting (Releasing)"
	}
	return "Storing/Concentrating"
}

const (
	gallbladderCapacity   = 50.0 // mL
	bileReleaseRate       = 2.0  // mL/s
	contractionDuration   = 10.0 // s
	contractionEmptyLevel = 5.0  // mL, stop contracting when near empty
	concentrationCap      = 10.0
)

// Gallbladder stores and concentrates bile pushed from the Liver, and
// contracts to release it when the Intestines demand bile for digestion.
type Gallbladder struct {
	state           GallbladderState
	storedBile      float64 // mL
	concentration   float64 // x plasma
	contractionTime float64 // s in the current contraction
}

// NewGallbladder creates a gallbladder part-filled with concentrated bile.
func NewGallbladder() *Gallbladder {
	return &Gallbladder{
		state:         GallbladderStoring,
		storedBile:    30.0,
		concentration: 5.0,
	}
}

// Step advances concentration while storing, and ends a contraction when
// the gallbladder is near empty or the contraction has run its course.
func (g *Gallbladder) Step(dt float64) {
	switch g.state {
	case GallbladderStoring:
		g.concentration = math.Min(concentrationCap, g.concentration+0.05*dt)
	case GallbladderContracting:
		g.contractionTime += dt
		if g.storedBile < contractionEmptyLevel || g.contractionTime > contractionDuration {
			g.storedBile = math.Max(0, g.storedBile)
			g.concentration = 1.0 // fresh bile
			g.contractionTime = 0
			g.state = GallbladderStoring
		}
	}
}

// StoreBile accepts bile from the Liver while storing, clamped to capacity.
func (g *Gallbladder) StoreBile(volume float64) {
	if g.state != GallbladderStoring {
		return
	}
	g.storedBile = clamp(g.storedBile+volume, 0, gallbladderCapacity)
}

// ReleaseBile releases bile over dt seconds at the fixed contraction rate,
// up to the stored volume, and returns the effective bile delivered
// (volume scaled by concentration). An empty gallbladder releases nothing
// and stays in its storing state.
func (g *Gallbladder) ReleaseBile(dt float64) float64 {
	if g.storedBile <= 0 {
		return 0
	}
	if g.state != GallbladderContracting {
		g.state = GallbladderContracting
		g.contractionTime = 0
	}
	released := math.Min(g.storedBile, bileReleaseRate*dt)
	g.storedBile -= released
	return released * g.concentration
}

// State returns the current phase.
func (g *Gallbladder) State() GallbladderState { return g.state }

// StoredBileVolume returns the stored bile in mL.
func (g *Gallbladder) StoredBileVolume() float64 { return g.storedBile }

// BileConcentration returns the concentration factor.
func (g *Gallbladder) BileConcentration() float64 { return g.concentration }

// Summary renders the storage state.
func (g *Gallbladder) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Gallbladder Summary ---\n")
	fmt.Fprintf(&s, "State: %s\n", g.state)
	fmt.Fprintf(&s, "Volume: %.1f / %.1f mL\n", g.storedBile, gallbladderCapacity)
	fmt.Fprintf(&s, "Concentration: %.1fx\n", g.concentration)
	return s.String()
}
