// Package patient owns the shared blood compartment and the organ roster,
// and advances the whole physiological simulation tick by tick.
package patient

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vitals/organs"
)

// Patient aggregates the blood compartment and the organ entities. Organs
// live in an ECS world, one singleton entity per organ kind; the registry
// gives O(1) lookup by kind and absence simply means the organ was never
// attached.
type Patient struct {
	ID    string
	Blood organs.Blood

	world    *ecs.World
	rng      *rand.Rand
	registry map[organs.Kind]ecs.Entity

	nextOrganID int
	tick        int64
	time        float64

	heartMap       *ecs.Map1[organs.Heart]
	lungsMap       *ecs.Map1[organs.Lungs]
	brainMap       *ecs.Map1[organs.Brain]
	liverMap       *ecs.Map1[organs.Liver]
	kidneysMap     *ecs.Map1[organs.Kidneys]
	bladderMap     *ecs.Map1[organs.Bladder]
	stomachMap     *ecs.Map1[organs.Stomach]
	intestinesMap  *ecs.Map1[organs.Intestines]
	gallbladderMap *ecs.Map1[organs.Gallbladder]
	pancreasMap    *ecs.Map1[organs.Pancreas]
	esophagusMap   *ecs.Map1[organs.Esophagus]
	spleenMap      *ecs.Map1[organs.Spleen]
	spinalCordMap  *ecs.Map1[organs.SpinalCord]
}

// NewEmpty creates a patient with blood at the given baselines and no
// organs attached. Organs are added with the Attach methods; NewPatient
// builds the standard roster.
func NewEmpty(blood organs.Blood, seed int64) *Patient {
	world := ecs.NewWorld()

	p := &Patient{
		ID:       uuid.NewString(),
		Blood:    blood,
		world:    world,
		rng:      rand.New(rand.NewSource(seed)),
		registry: make(map[organs.Kind]ecs.Entity),

		heartMap:       ecs.NewMap1[organs.Heart](world),
		lungsMap:       ecs.NewMap1[organs.Lungs](world),
		brainMap:       ecs.NewMap1[organs.Brain](world),
		liverMap:       ecs.NewMap1[organs.Liver](world),
		kidneysMap:     ecs.NewMap1[organs.Kidneys](world),
		bladderMap:     ecs.NewMap1[organs.Bladder](world),
		stomachMap:     ecs.NewMap1[organs.Stomach](world),
		intestinesMap:  ecs.NewMap1[organs.Intestines](world),
		gallbladderMap: ecs.NewMap1[organs.Gallbladder](world),
		pancreasMap:    ecs.NewMap1[organs.Pancreas](world),
		esophagusMap:   ecs.NewMap1[organs.Esophagus](world),
		spleenMap:      ecs.NewMap1[organs.Spleen](world),
		spinalCordMap:  ecs.NewMap1[organs.SpinalCord](world),
	}
	return p
}

func (p *Patient) nextID() int {
	p.nextOrganID++
	return p.nextOrganID
}

// attach creates the singleton entity for one organ kind. At most one
// organ per kind exists; attaching a kind twice keeps the first and
// reports false.
func attach[T any](p *Patient, kind organs.Kind, organ *T) bool {
	if _, ok := p.registry[kind]; ok {
		return false
	}
	meta := organs.Meta{ID: p.nextID(), Kind: kind}
	mapper := ecs.NewMap2[organs.Meta, T](p.world)
	p.registry[kind] = mapper.NewEntity(&meta, organ)
	return true
}

// AttachHeart adds a heart with the given number of EKG leads.
func (p *Patient) AttachHeart(numLeads int) bool {
	return attach(p, organs.KindHeart, organs.NewHeart(numLeads))
}

// AttachLungs adds lungs.
func (p *Patient) AttachLungs() bool {
	return attach(p, organs.KindLungs, organs.NewLungs())
}

// AttachBrain adds a brain with the given autonomic gains.
func (p *Patient) AttachBrain(gains organs.AutonomicGains) bool {
	b := organs.NewBrain()
	b.Gains = gains
	return attach(p, organs.KindBrain, b)
}

// AttachLiver adds a liver.
func (p *Patient) AttachLiver() bool {
	return attach(p, organs.KindLiver, organs.NewLiver())
}

// AttachKidneys adds kidneys.
func (p *Patient) AttachKidneys() bool {
	return attach(p, organs.KindKidneys, organs.NewKidneys())
}

// AttachBladder adds a bladder.
func (p *Patient) AttachBladder() bool {
	return attach(p, organs.KindBladder, organs.NewBladder())
}

// AttachStomach adds a stomach.
func (p *Patient) AttachStomach() bool {
	return attach(p, organs.KindStomach, organs.NewStomach())
}

// AttachIntestines adds intestines.
func (p *Patient) AttachIntestines() bool {
	return attach(p, organs.KindIntestines, organs.NewIntestines())
}

// AttachGallbladder adds a gallbladder.
func (p *Patient) AttachGallbladder() bool {
	return attach(p, organs.KindGallbladder, organs.NewGallbladder())
}

// AttachPancreas adds a pancreas.
func (p *Patient) AttachPancreas() bool {
	return attach(p, organs.KindPancreas, organs.NewPancreas())
}

// AttachEsophagus adds an esophagus.
func (p *Patient) AttachEsophagus() bool {
	return attach(p, organs.KindEsophagus, organs.NewEsophagus())
}

// AttachSpleen adds a spleen.
func (p *Patient) AttachSpleen() bool {
	return attach(p, organs.KindSpleen, organs.NewSpleen())
}

// AttachSpinalCord adds a spinal cord.
func (p *Patient) AttachSpinalCord() bool {
	return attach(p, organs.KindSpinalCord, organs.NewSpinalCord())
}

// HasOrgan reports whether an organ of the given kind is attached.
func (p *Patient) HasOrgan(kind organs.Kind) bool {
	_, ok := p.registry[kind]
	return ok
}

// OrganCount returns the number of attached organs.
func (p *Patient) OrganCount() int { return len(p.registry) }

// Tick returns the number of completed simulation steps.
func (p *Patient) Tick() int64 { return p.tick }

// Time returns the simulated time in seconds.
func (p *Patient) Time() float64 { return p.time }

// Heart returns the heart, or nil when absent.
func (p *Patient) Heart() *organs.Heart {
	if e, ok := p.registry[organs.KindHeart]; ok {
		return p.heartMap.Get(e)
	}
	return nil
}

// Lungs returns the lungs, or nil when absent.
func (p *Patient) Lungs() *organs.Lungs {
	if e, ok := p.registry[organs.KindLungs]; ok {
		return p.lungsMap.Get(e)
	}
	return nil
}

// Brain returns the brain, or nil when absent.
func (p *Patient) Brain() *organs.Brain {
	if e, ok := p.registry[organs.KindBrain]; ok {
		return p.brainMap.Get(e)
	}
	return nil
}

// Liver returns the liver, or nil when absent.
func (p *Patient) Liver() *organs.Liver {
	if e, ok := p.registry[organs.KindLiver]; ok {
		return p.liverMap.Get(e)
	}
	return nil
}

// Kidneys returns the kidneys, or nil when absent.
func (p *Patient) Kidneys() *organs.Kidneys {
	if e, ok := p.registry[organs.KindKidneys]; ok {
		return p.kidneysMap.Get(e)
	}
	return nil
}

// Bladder returns the bladder, or nil when absent.
func (p *Patient) Bladder() *organs.Bladder {
	if e, ok := p.registry[organs.KindBladder]; ok {
		return p.bladderMap.Get(e)
	}
	return nil
}

// Stomach returns the stomach, or nil when absent.
func (p *Patient) Stomach() *organs.Stomach {
	if e, ok := p.registry[organs.KindStomach]; ok {
		return p.stomachMap.Get(e)
	}
	return nil
}

// Intestines returns the intestines, or nil when absent.
func (p *Patient) Intestines() *organs.Intestines {
	if e, ok := p.registry[organs.KindIntestines]; ok {
		return p.intestinesMap.Get(e)
	}
	return nil
}

// Gallbladder returns the gallbladder, or nil when absent.
func (p *Patient) Gallbladder() *organs.Gallbladder {
	if e, ok := p.registry[organs.KindGallbladder]; ok {
		return p.gallbladderMap.Get(e)
	}
	return nil
}

// Pancreas returns the pancreas, or nil when absent.
func (p *Patient) Pancreas() *organs.Pancreas {
	if e, ok := p.registry[organs.KindPancreas]; ok {
		return p.pancreasMap.Get(e)
	}
	return nil
}

// Esophagus returns the esophagus, or nil when absent.
func (p *Patient) Esophagus() *organs.Esophagus {
	if e, ok := p.registry[organs.KindEsophagus]; ok {
		return p.esophagusMap.Get(e)
	}
	return nil
}

// Spleen returns the spleen, or nil when absent.
func (p *Patient) Spleen() *organs.Spleen {
	if e, ok := p.registry[organs.KindSpleen]; ok {
		return p.spleenMap.Get(e)
	}
	return nil
}

// SpinalCord returns the spinal cord, or nil when absent.
func (p *Patient) SpinalCord() *organs.SpinalCord {
	if e, ok := p.registry[organs.KindSpinalCord]; ok {
		return p.spinalCordMap.Get(e)
	}
	return nil
}
