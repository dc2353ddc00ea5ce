package organs

import (
	"fmt"
	"math/rand"
	"strings"
)

// Nephron is one representative filtration unit.
type Nephron struct {
	Name                 string
	FiltrationEfficiency float64
	Damaged              bool
}

const nephronCount = 100

// Kidneys aggregate a nephron population into a filtration capacity, track
// GFR and electrolytes, and drive the RAAS pressure feedback. Urine output
// is returned to the caller, who pushes it into the Bladder.
type Kidneys struct {
	Nephrons []Nephron

	gfr                float64 // mL/min
	urineOutput        float64 // mL/s
	bloodSodium        float64 // mEq/L
	bloodPotassium     float64 // mEq/L
	reninSecretion     float64 // ng/mL/hr
	filtrationCapacity float64
}

// NewKidneys creates healthy kidneys with a full nephron population.
func NewKidneys() *Kidneys {
	k := &Kidneys{
		Nephrons:           make([]Nephron, nephronCount),
		gfr:                125.0,
		urineOutput:        0.02,
		bloodSodium:        140.0,
		bloodPotassium:     4.0,
		reninSecretion:     1.0,
		filtrationCapacity: 1.0,
	}
	for i := range k.Nephrons {
		k.Nephrons[i] = Nephron{Name: fmt.Sprintf("Nephron %d", i), FiltrationEfficiency: 1.0}
	}
	return k
}

// Step advances filtration and the RAAS loop. aorticPressure comes from the
// Heart when present; hasHeart false falls back to a normal perfusion
// pressure. It returns the urine volume produced this tick in mL.
func (k *Kidneys) Step(dt float64, blood *Blood, aorticPressure float64, hasHeart bool, rng *rand.Rand) float64 {
	capacity := 0.0
	for i := range k.Nephrons {
		if !k.Nephrons[i].Damaged {
			capacity += k.Nephrons[i].FiltrationEfficiency
		}
	}
	k.filtrationCapacity = capacity / float64(len(k.Nephrons))

	perfusionPressure := 90.0
	if hasHeart {
		perfusionPressure = aorticPressure
	}
	pressureModifier := clamp(perfusionPressure/90.0, 0.5, 1.2)

	baselineGFR := 125.0 * k.filtrationCapacity * pressureModifier
	k.gfr += 0.1*(baselineGFR-k.gfr)*dt + fluctuation(rng, 0.5)

	k.urineOutput = k.gfr/60.0*0.01 + fluctuation(rng, 0.001)

	k.bloodSodium += fluctuation(rng, 0.05)
	k.bloodPotassium += fluctuation(rng, 0.01)

	// Renin rises under hypotension, decays toward baseline otherwise.
	mean := blood.MeanArterialPressure()
	if mean < 85.0 {
		k.reninSecretion += (85.0 - mean) * 0.1 * dt
	} else {
		k.reninSecretion -= (k.reninSecretion - 1.0) * 0.05 * dt
	}

	k.gfr = clamp(k.gfr, 90.0, 150.0)
	k.urineOutput = clamp(k.urineOutput, 0.01, 0.03)
	k.bloodSodium = clamp(k.bloodSodium, 135.0, 145.0)
	k.bloodPotassium = clamp(k.bloodPotassium, 3.5, 5.0)
	k.reninSecretion = clamp(k.reninSecretion, 0.5, 50.0)

	// Circulating angiotensin tracks renin, closing the loop back to the
	// Heart's vasoconstriction term.
	blood.Angiotensin = relaxToward(blood.Angiotensin, k.reninSecretion, 0.1, dt)
	blood.Angiotensin = clamp(blood.Angiotensin, 0.5, 50.0)

	return k.urineOutput * dt
}

// GFR returns the glomerular filtration rate in mL/min.
func (k *Kidneys) GFR() float64 { return k.gfr }

// UrineOutputRate returns the urine production rate in mL/s.
func (k *Kidneys) UrineOutputRate() float64 { return k.urineOutput }

// BloodSodium returns the serum sodium in mEq/L.
func (k *Kidneys) BloodSodium() float64 { return k.bloodSodium }

// BloodPotassium returns the serum potassium in mEq/L.
func (k *Kidneys) BloodPotassium() float64 { return k.bloodPotassium }

// ReninSecretionRate returns the renin secretion in ng/mL/hr.
func (k *Kidneys) ReninSecretionRate() float64 { return k.reninSecretion }

// FiltrationCapacity returns the aggregate nephron capacity, 0-1.
func (k *Kidneys) FiltrationCapacity() float64 { return k.filtrationCapacity }

// Summary renders renal function and electrolytes.
func (k *Kidneys) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Kidneys Summary ---\n")
	fmt.Fprintf(&s, "Glomerular Filtration Rate (GFR): %.1f mL/min\n", k.gfr)
	fmt.Fprintf(&s, "Urine Output: %.1f mL/hr\n", k.urineOutput*3600)
	fmt.Fprintf(&s, "Renin Secretion: %.1f ng/mL/hr\n", k.reninSecretion)
	fmt.Fprintf(&s, "Blood Sodium: %.1f mEq/L\n", k.bloodSodium)
	fmt.Fprintf(&s, "Blood Potassium: %.1f mEq/L\n", k.bloodPotassium)
	return s.String()
}
