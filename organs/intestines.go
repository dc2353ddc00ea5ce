package organs

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// IntestinalSegment is one functional stretch of bowel.
type IntestinalSegment struct {
	Name                   string
	Length                 float64 // m
	Motility               float64
	NutrientAbsorptionRate float64
	WaterAbsorptionRate    float64
}

// Intestines digest chyme delivered by the Stomach, pulling bile from the
// Gallbladder and enzymes from the Pancreas while chyme is present, and
// absorb glucose into the blood.
type Intestines struct {
	Duodenum IntestinalSegment
	Jejunum  IntestinalSegment
	Ileum    IntestinalSegment
	Colon    IntestinalSegment

	chymeVolume  float64 // mL
	bileVolume   float64 // mL
	enzymeVolume float64 // mL
	amylase      float64 // U/L
	lipase       float64 // U/L
}

// NewIntestines creates empty intestines with typical segment parameters.
func NewIntestines() *Intestines {
	return &Intestines{
		Duodenum: IntestinalSegment{Name: "Duodenum", Length: 0.25, Motility: 1.0, NutrientAbsorptionRate: 0.5, WaterAbsorptionRate: 0.1},
		Jejunum:  IntestinalSegment{Name: "Jejunum", Length: 2.5, Motility: 1.0, NutrientAbsorptionRate: 1.0, WaterAbsorptionRate: 0.3},
		Ileum:    IntestinalSegment{Name: "Ileum", Length: 3.0, Motility: 1.0, NutrientAbsorptionRate: 0.8, WaterAbsorptionRate: 0.5},
		Colon:    IntestinalSegment{Name: "Colon", Length: 1.5, Motility: 0.5, NutrientAbsorptionRate: 0.1, WaterAbsorptionRate: 1.0},
	}
}

// Step digests any present chyme. Gallbladder and Pancreas may be nil when
// those organs are absent; digestion then proceeds without bile or enzymes
// at baseline efficiency.
func (n *Intestines) Step(dt float64, blood *Blood, gallbladder *Gallbladder, pancreas *Pancreas, rng *rand.Rand) {
	if n.chymeVolume > 0 {
		if gallbladder != nil {
			n.ReceiveBile(gallbladder.ReleaseBile(dt))
		}
		if pancreas != nil {
			n.ReceiveEnzymes(pancreas.ReleaseEnzymes(dt))
		}

		// Emulsified, enzyme-assisted digestion is far more effective.
		digestionEfficiency := 1.0
		if n.bileVolume > 0 && n.enzymeVolume > 0 {
			digestionEfficiency = 5.0
		}

		nutrientRate := (n.Duodenum.NutrientAbsorptionRate + n.Jejunum.NutrientAbsorptionRate +
			n.Ileum.NutrientAbsorptionRate) * digestionEfficiency
		waterRate := n.Duodenum.WaterAbsorptionRate + n.Jejunum.WaterAbsorptionRate +
			n.Ileum.WaterAbsorptionRate + n.Colon.WaterAbsorptionRate

		blood.Glucose += nutrientRate * n.chymeVolume * 0.001 * dt

		n.chymeVolume -= (nutrientRate*0.01 + waterRate*0.1) * dt
		n.bileVolume -= 0.1 * n.bileVolume * dt
		n.enzymeVolume -= 0.1 * n.enzymeVolume * dt

		n.chymeVolume = math.Max(0, n.chymeVolume)
		n.bileVolume = math.Max(0, n.bileVolume)
		n.enzymeVolume = math.Max(0, n.enzymeVolume)

		if n.enzymeVolume == 0 {
			n.amylase = 0
			n.lipase = 0
		}
	}

	n.Duodenum.Motility += fluctuation(rng, 0.01)
	n.Duodenum.Motility = clamp(n.Duodenum.Motility, 0.9, 1.1)
}

// ReceiveChyme accepts chyme pushed from the Stomach.
func (n *Intestines) ReceiveChyme(volume float64) {
	n.chymeVolume += volume
}

// ReceiveBile accepts bile released by the Gallbladder.
func (n *Intestines) ReceiveBile(volume float64) {
	n.bileVolume += volume
}

// ReceiveEnzymes merges an enzyme packet, volume-weighting the resulting
// concentrations.
func (n *Intestines) ReceiveEnzymes(enzymes DigestiveEnzymes) {
	if enzymes.Volume <= 0 {
		return
	}
	total := n.enzymeVolume + enzymes.Volume
	n.amylase = (n.amylase*n.enzymeVolume + enzymes.Amylase*enzymes.Volume) / total
	n.lipase = (n.lipase*n.enzymeVolume + enzymes.Lipase*enzymes.Volume) / total
	n.enzymeVolume = total
}

// ChymeVolume returns the chyme currently in transit, in mL.
func (n *Intestines) ChymeVolume() float64 { return n.chymeVolume }

// BileVolume returns the bile available for digestion, in mL.
func (n *Intestines) BileVolume() float64 { return n.bileVolume }

// EnzymeVolume returns the enzyme volume available for digestion, in mL.
func (n *Intestines) EnzymeVolume() float64 { return n.enzymeVolume }

// Amylase returns the luminal amylase concentration in U/L.
func (n *Intestines) Amylase() float64 { return n.amylase }

// Lipase returns the luminal lipase concentration in U/L.
func (n *Intestines) Lipase() float64 { return n.lipase }

// Summary renders digestion state and segment parameters.
func (n *Intestines) Summary() string {
	var s strings.Builder
	fmt.Fprintf(&s, "--- Intestines Summary ---\n")
	fmt.Fprintf(&s, "Chyme Volume: %.2f mL\n", n.chymeVolume)
	fmt.Fprintf(&s, "Bile Volume: %.2f mL\n", n.bileVolume)
	fmt.Fprintf(&s, "Enzyme Volume: %.2f mL\n", n.enzymeVolume)
	fmt.Fprintf(&s, "Amylase: %.2f U/L\n", n.amylase)
	fmt.Fprintf(&s, "Lipase: %.2f U/L\n\n", n.lipase)
	fmt.Fprintf(&s, "--- Segments ---\n")
	fmt.Fprintf(&s, "%s: Motility %.2f\n", n.Duodenum.Name, n.Duodenum.Motility)
	fmt.Fprintf(&s, "%s: Nutrient Abs. %.2f\n", n.Jejunum.Name, n.Jejunum.NutrientAbsorptionRate)
	fmt.Fprintf(&s, "%s: Water Abs. %.2f\n", n.Ileum.Name, n.Ileum.WaterAbsorptionRate)
	fmt.Fprintf(&s, "%s: Water Abs. %.2f\n", n.Colon.Name, n.Colon.WaterAbsorptionRate)
	return s.String()
}
