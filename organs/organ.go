// Package organs defines the organ components of the patient simulation.
//
// Each organ is a plain struct stored as an ECS component on its own
// entity. Organ dynamics are methods on the struct; cross-organ coupling
// (lookups, transfers, setter writes) lives in the patient package.
package organs

// Kind identifies a concrete organ type. At most one organ of each Kind
// exists per patient, which is what makes lookup-by-kind unambiguous.
type Kind uint8

const (
	KindHeart Kind = iota
	KindLungs
	KindBrain
	KindLiver
	KindKidneys
	KindBladder
	KindStomach
	KindIntestines
	KindGallbladder
	KindPancreas
	KindEsophagus
	KindSpleen
	KindSpinalCord
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	"Heart",
	"Lungs",
	"Brain",
	"Liver",
	"Kidneys",
	"Bladder",
	"Stomach",
	"Intestines",
	"Gallbladder",
	"Pancreas",
	"Esophagus",
	"Spleen",
	"SpinalCord",
}

// String returns the organ type tag.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// KindFromString resolves a type tag back to its Kind.
// The second return is false for unknown tags.
func KindFromString(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Meta is the identity component shared by every organ entity.
type Meta struct {
	ID   int
	Kind Kind
}
