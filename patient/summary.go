package patient

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/vitals/organs"
)

// OrganSummary returns the summary text of one organ, or "" when the organ
// is not attached.
func (p *Patient) OrganSummary(kind organs.Kind) string {
	switch kind {
	case organs.KindHeart:
		if h := p.Heart(); h != nil {
			return h.Summary()
		}
	case organs.KindLungs:
		if l := p.Lungs(); l != nil {
			return l.Summary()
		}
	case organs.KindBrain:
		if b := p.Brain(); b != nil {
			return b.Summary()
		}
	case organs.KindLiver:
		if l := p.Liver(); l != nil {
			return l.Summary()
		}
	case organs.KindKidneys:
		if k := p.Kidneys(); k != nil {
			return k.Summary()
		}
	case organs.KindBladder:
		if bl := p.Bladder(); bl != nil {
			return bl.Summary()
		}
	case organs.KindStomach:
		if st := p.Stomach(); st != nil {
			return st.Summary()
		}
	case organs.KindIntestines:
		if n := p.Intestines(); n != nil {
			return n.Summary()
		}
	case organs.KindGallbladder:
		if g := p.Gallbladder(); g != nil {
			return g.Summary()
		}
	case organs.KindPancreas:
		if pa := p.Pancreas(); pa != nil {
			return pa.Summary()
		}
	case organs.KindEsophagus:
		if e := p.Esophagus(); e != nil {
			return e.Summary()
		}
	case organs.KindSpleen:
		if sp := p.Spleen(); sp != nil {
			return sp.Summary()
		}
	case organs.KindSpinalCord:
		if sc := p.SpinalCord(); sc != nil {
			return sc.Summary()
		}
	}
	return ""
}

// OrganSummaryByTag returns the summary of the organ named by its type
// tag (e.g. "Heart"), or "" for unknown tags and absent organs.
func (p *Patient) OrganSummaryByTag(tag string) string {
	kind, ok := organs.KindFromString(tag)
	if !ok {
		return ""
	}
	return p.OrganSummary(kind)
}

// Summary concatenates the blood state and every attached organ's summary
// in update order.
func (p *Patient) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Patient %s (t=%.1fs) ===\n", p.ID, p.time)
	fmt.Fprintf(&b, "--- Blood ---\n")
	fmt.Fprintf(&b, "BP: %.0f/%.0f mmHg (MAP %.0f)\n", p.Blood.Systolic, p.Blood.Diastolic, p.Blood.MeanArterialPressure())
	fmt.Fprintf(&b, "SpO2: %.1f %%  PaCO2: %.1f mmHg\n", p.Blood.OxygenSaturation, p.Blood.CO2PartialPressure)
	fmt.Fprintf(&b, "Glucose: %.1f mg/dL  Angiotensin: %.2f a.u.  Toxins: %.2f a.u.\n", p.Blood.Glucose, p.Blood.Angiotensin, p.Blood.Toxins)

	for _, kind := range updateOrder {
		if s := p.OrganSummary(kind); s != "" {
			b.WriteString("\n")
			b.WriteString(s)
		}
	}
	return b.String()
}
