package organs

import (
	"fmt"
	"strings"
)

// MicturitionState is the bladder's fill/void phase.
type MicturitionState uint8

const (
	BladderFilling MicturitionState = iota
	BladderFull
	BladderVoiding
)

func (s MicturitionState) String() string {
	switch s {
	case BladderFull:
		return "Full"
	case BladderVoiding:
		return "Voiding"
	default:
		return "Filling"
	}
}

const (
	bladderCapacity     = 500.0 // mL
	bladderFullFraction = 0.8
	pressureThreshold   = 40.0 // cmH2O
	fullDwell           = 10.0 // s in FULL before the sphincter opens
	voidingRate         = 15.0 // mL/s
)

// Bladder is a micturition state machine over {FILLING, FULL, VOIDING}.
// Urine arrives from the Kidneys via AddUrine.
type Bladder struct {
	state           MicturitionState
	volume          float64 // mL
	pressure        float64 // cmH2O
	sphincterClosed bool
	timeInFull      float64 // s
}

// NewBladder creates a part-filled bladder with a closed sphincter.
func NewBladder() *Bladder {
	return &Bladder{
		state:           BladderFilling,
		volume:          50.0,
		pressure:        5.0,
		sphincterClosed: true,
	}
}

// Step advances the micturition state machine.
func (bl *Bladder) Step(dt float64) {
	// Pressure rises linearly with fill fraction.
	bl.pressure = (bl.volume / bladderCapacity) * 60.0

	switch bl.state {
	case BladderFilling:
		if bl.volume > bladderCapacity*bladderFullFraction || bl.pressure > pressureThreshold {
			bl.state = BladderFull
			bl.timeInFull = 0
		}

	case BladderFull:
		bl.timeInFull += dt
		if bl.timeInFull > fullDwell {
			bl.state = BladderVoiding
			bl.sphincterClosed = false
			bl.timeInFull = 0
		}

	case BladderVoiding:
		bl.volume -= voidingRate * dt
		if bl.volume <= 0 {
			bl.volume = 0
			bl.state = BladderFilling
			bl.sphincterClosed = true
		}
	}
}

// AddUrine accepts urine from the Kidneys unless the bladder is voiding.
func (bl *Bladder) AddUrine(amount float64) {
	if bl.state == BladderVoiding {
		return
	}
	bl.volume = clamp(bl.volume+amount, 0, bladderCapacity)
}

// State returns the current micturition phase.
func (bl *Bladder) State() MicturitionState { return bl.state }

// Volume returns the stored urine volume in mL.
func (bl *Bladder) Volume() float64 { return bl.volume }

// Pressure returns the intravesical pressure in cmH2O.
func (bl *Bladder) Pressure() float64 { return bl.pressure }

// SphincterClosed reports whether the internal sphincter is closed.
func (bl *Bladder) SphincterClosed() bool { return bl.sphincterClosed }

// Summary renders the micturition state.
func (bl *Bladder) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Bladder Summary ---\n")
	fmt.Fprintf(&s, "State: %s\n", bl.state)
	fmt.Fprintf(&s, "Volume: %.1f / %.1f mL\n", bl.volume, bladderCapacity)
	fmt.Fprintf(&s, "Pressure: %.1f cmH2O\n", bl.pressure)
	return s.String()
}
