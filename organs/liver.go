package organs

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// HepaticLobule is one representative metabolic unit.
type HepaticLobule struct {
	Name              string
	MetabolicActivity float64
	Damaged           bool
}

const lobuleCount = 100

// Liver aggregates a lobule population into a metabolic capacity, produces
// bile and glucose, filters toxins out of the blood and corrects glucose
// toward its healthy band. Bile output goes to the Gallbladder via the
// caller.
type Liver struct {
	Lobules []HepaticLobule

	bileProductionRate    float64 // mL/s
	glucoseProductionRate float64 // g/s
	alt                   float64 // U/L
	ast                   float64 // U/L
	bilirubin             float64 // mg/dL
	metabolicCapacity     float64
}

// NewLiver creates a healthy liver with a full lobule population.
func NewLiver() *Liver {
	l := &Liver{
		Lobules:               make([]HepaticLobule, lobuleCount),
		bileProductionRate:    0.0069,
		glucoseProductionRate: 0.001,
		alt:                   25.0,
		ast:                   25.0,
		bilirubin:             0.8,
		metabolicCapacity:     1.0,
	}
	for i := range l.Lobules {
		l.Lobules[i] = HepaticLobule{Name: fmt.Sprintf("Lobule %d", i), MetabolicActivity: 1.0}
	}
	return l
}

// Step advances production rates and labs, filters blood toxins and nudges
// glucose toward [80,120] mg/dL. It returns the bile volume produced this
// tick in mL.
func (l *Liver) Step(dt float64, blood *Blood, rng *rand.Rand) float64 {
	capacity := 0.0
	for i := range l.Lobules {
		if !l.Lobules[i].Damaged {
			capacity += l.Lobules[i].MetabolicActivity
		}
	}
	l.metabolicCapacity = capacity / float64(len(l.Lobules))

	baselineBile := 0.0069 * l.metabolicCapacity
	baselineGlucose := 0.001 * l.metabolicCapacity
	l.bileProductionRate += 0.02*(baselineBile-l.bileProductionRate)*dt + fluctuation(rng, 0.0001)
	l.glucoseProductionRate += 0.02*(baselineGlucose-l.glucoseProductionRate)*dt + fluctuation(rng, 0.00005)

	l.alt += fluctuation(rng, 0.1)
	l.ast += fluctuation(rng, 0.1)
	l.bilirubin += fluctuation(rng, 0.01)

	l.bileProductionRate = clamp(l.bileProductionRate, 0.005, 0.009)
	l.glucoseProductionRate = clamp(l.glucoseProductionRate, 0.0008, 0.0012)
	l.alt = clamp(l.alt, 10.0, 40.0)
	l.ast = clamp(l.ast, 10.0, 40.0)
	l.bilirubin = clamp(l.bilirubin, 0.3, 1.2)

	// Toxin clearance scales with metabolic capacity.
	blood.Toxins -= blood.Toxins * 0.1 * l.metabolicCapacity * dt
	blood.Toxins = math.Max(0, blood.Toxins)

	// Glucose correction outside the healthy band: uptake above 120,
	// gluconeogenesis below 80.
	switch {
	case blood.Glucose > 120.0:
		blood.Glucose -= (blood.Glucose - 120.0) * 0.1 * l.metabolicCapacity * dt
	case blood.Glucose < 80.0:
		blood.Glucose += (80.0 - blood.Glucose) * 0.1 * l.metabolicCapacity * dt
	}

	return l.bileProductionRate * dt
}

// BileProductionRate returns bile output in mL/s.
func (l *Liver) BileProductionRate() float64 { return l.bileProductionRate }

// GlucoseProductionRate returns glucose output in g/s.
func (l *Liver) GlucoseProductionRate() float64 { return l.glucoseProductionRate }

// ALT returns the alanine aminotransferase level in U/L.
func (l *Liver) ALT() float64 { return l.alt }

// AST returns the aspartate aminotransferase level in U/L.
func (l *Liver) AST() float64 { return l.ast }

// Bilirubin returns the bilirubin level in mg/dL.
func (l *Liver) Bilirubin() float64 { return l.bilirubin }

// MetabolicCapacity returns the aggregate lobule capacity, 0-1.
func (l *Liver) MetabolicCapacity() float64 { return l.metabolicCapacity }

// Summary renders hepatic production rates and labs.
func (l *Liver) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Liver Summary ---\n")
	fmt.Fprintf(&s, "Bile Production: %.3f mL/min\n", l.bileProductionRate*60.0)
	fmt.Fprintf(&s, "Glucose Production: %.3f g/min\n", l.glucoseProductionRate*60.0)
	fmt.Fprintf(&s, "ALT Level: %.3f U/L\n", l.alt)
	fmt.Fprintf(&s, "AST Level: %.3f U/L\n", l.ast)
	fmt.Fprintf(&s, "Bilirubin: %.3f mg/dL\n", l.bilirubin)
	return s.String()
}
