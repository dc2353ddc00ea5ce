package organs

import (
	"fmt"
	"math/rand"
	"strings"
)

// RedPulp filters blood and retires old red cells.
type RedPulp struct {
	FiltrationRate   float64
	RBCBreakdownRate float64
}

// WhitePulp is the immune compartment.
type WhitePulp struct {
	LymphocyteCount float64 // millions
	MacrophageCount float64 // millions
}

// Spleen drifts its pulp parameters within healthy bounds. It has no
// external coupling in the current model.
type Spleen struct {
	RedPulp   RedPulp
	WhitePulp WhitePulp
}

// NewSpleen creates a healthy spleen.
func NewSpleen() *Spleen {
	return &Spleen{
		RedPulp:   RedPulp{FiltrationRate: 1.0, RBCBreakdownRate: 0.5},
		WhitePulp: WhitePulp{LymphocyteCount: 1500.0, MacrophageCount: 500.0},
	}
}

// Step drifts the pulp parameters within their healthy bands.
func (sp *Spleen) Step(dt float64, rng *rand.Rand) {
	sp.RedPulp.FiltrationRate += fluctuation(rng, 0.01)
	sp.RedPulp.RBCBreakdownRate += fluctuation(rng, 0.005)
	sp.WhitePulp.LymphocyteCount += fluctuation(rng, 1.0)
	sp.WhitePulp.MacrophageCount += fluctuation(rng, 0.5)

	sp.RedPulp.FiltrationRate = clamp(sp.RedPulp.FiltrationRate, 0.9, 1.1)
	sp.RedPulp.RBCBreakdownRate = clamp(sp.RedPulp.RBCBreakdownRate, 0.45, 0.55)
	sp.WhitePulp.LymphocyteCount = clamp(sp.WhitePulp.LymphocyteCount, 1400.0, 1600.0)
	sp.WhitePulp.MacrophageCount = clamp(sp.WhitePulp.MacrophageCount, 450.0, 550.0)
}

// Summary renders the pulp state.
func (sp *Spleen) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Spleen Summary ---\n")
	fmt.Fprintf(&s, "--- Red Pulp ---\n")
	fmt.Fprintf(&s, "Filtration Rate: %.1f\n", sp.RedPulp.FiltrationRate)
	fmt.Fprintf(&s, "RBC Breakdown Rate: %.1f\n", sp.RedPulp.RBCBreakdownRate)
	fmt.Fprintf(&s, "--- White Pulp ---\n")
	fmt.Fprintf(&s, "Lymphocyte Count: %.1f million\n", sp.WhitePulp.LymphocyteCount)
	fmt.Fprintf(&s, "Macrophage Count: %.1f million\n", sp.WhitePulp.MacrophageCount)
	return s.String()
}
