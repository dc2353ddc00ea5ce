package organs

import (
	"fmt"
	"math/rand"
	"strings"
)

// DigestiveEnzymes is the volume-and-concentration packet the Pancreas
// releases into the Intestines.
type DigestiveEnzymes struct {
	Volume  float64 // mL
	Amylase float64 // U/L
	Lipase  float64 // U/L
}

// Pancreas models endocrine hormone secretion driven by blood glucose and
// exocrine enzyme secretion released on demand into the Intestines.
type Pancreas struct {
	insulinSecretion  float64 // units/hr
	glucagonSecretion float64 // ng/hr
	amylaseSecretion  float64 // U/L
	lipaseSecretion   float64 // U/L
}

const enzymeReleaseRate = 0.1 // mL/s

// NewPancreas creates a pancreas at resting secretion baselines.
func NewPancreas() *Pancreas {
	return &Pancreas{
		insulinSecretion:  1.0,
		glucagonSecretion: 50.0,
		amylaseSecretion:  80.0,
		lipaseSecretion:   40.0,
	}
}

// Step advances hormone secretion from blood glucose and drifts the
// exocrine enzyme levels.
func (p *Pancreas) Step(dt float64, blood *Blood, rng *rand.Rand) {
	glucose := blood.Glucose

	// Insulin rises under hyperglycemia, decays otherwise.
	if glucose > 120.0 {
		p.insulinSecretion += (glucose - 120.0) * 0.1 * dt
	} else {
		p.insulinSecretion -= 0.5 * dt
	}

	// Glucagon rises under hypoglycemia, decays otherwise.
	if glucose < 80.0 {
		p.glucagonSecretion += (80.0 - glucose) * 0.2 * dt
	} else {
		p.glucagonSecretion -= 1.0 * dt
	}

	p.amylaseSecretion += fluctuation(rng, 0.2)
	p.lipaseSecretion += fluctuation(rng, 0.2)

	p.insulinSecretion = clamp(p.insulinSecretion, 0.5, 10.0)
	p.glucagonSecretion = clamp(p.glucagonSecretion, 20.0, 100.0)
	p.amylaseSecretion = clamp(p.amylaseSecretion, 60.0, 100.0)
	p.lipaseSecretion = clamp(p.lipaseSecretion, 20.0, 60.0)
}

// ReleaseEnzymes returns the enzyme packet secreted over dt seconds at the
// fixed exocrine release rate and the current concentrations.
func (p *Pancreas) ReleaseEnzymes(dt float64) DigestiveEnzymes {
	return DigestiveEnzymes{
		Volume:  enzymeReleaseRate * dt,
		Amylase: p.amylaseSecretion,
		Lipase:  p.lipaseSecretion,
	}
}

// InsulinSecretion returns insulin output in units/hr.
func (p *Pancreas) InsulinSecretion() float64 { return p.insulinSecretion }

// GlucagonSecretion returns glucagon output in ng/hr.
func (p *Pancreas) GlucagonSecretion() float64 { return p.glucagonSecretion }

// AmylaseSecretion returns the amylase concentration in U/L.
func (p *Pancreas) AmylaseSecretion() float64 { return p.amylaseSecretion }

// LipaseSecretion returns the lipase concentration in U/L.
func (p *Pancreas) LipaseSecretion() float64 { return p.lipaseSecretion }

// Summary renders endocrine and exocrine output.
func (p *Pancreas) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Pancreas Summary ---\n")
	fmt.Fprintf(&s, "--- Endocrine Function ---\n")
	fmt.Fprintf(&s, "Insulin Secretion: %.1f units/hr\n", p.insulinSecretion)
	fmt.Fprintf(&s, "Glucagon Secretion: %.1f ng/hr\n", p.glucagonSecretion)
	fmt.Fprintf(&s, "--- Exocrine Function ---\n")
	fmt.Fprintf(&s, "Amylase Secretion: %.1f U/L\n", p.amylaseSecretion)
	fmt.Fprintf(&s, "Lipase Secretion: %.1f U/L\n", p.lipaseSecretion)
	return s.String()
}
