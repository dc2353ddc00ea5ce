package patient

import (
	"github.com/pthm-cable/vitals/organs"
)

// Step advances the whole patient by dt seconds. Organs update in the
// fixed roster order; every cross-organ influence happens in-line, so an
// organ later in the order sees upstream state as of this tick. Absent
// organs are skipped and their dependents fall back to stable defaults.
func (p *Patient) Step(dt float64) {
	p.stepHeart(dt)
	p.stepLungs(dt)
	p.stepBrain(dt)
	p.stepLiver(dt)
	p.stepKidneys(dt)
	p.stepBladder(dt)
	p.stepStomach(dt)
	p.stepIntestines(dt)
	p.stepGallbladder(dt)
	p.stepPancreas(dt)
	p.stepEsophagus(dt)
	p.stepSpleen(dt)
	p.stepSpinalCord(dt)

	p.tick++
	p.time += dt
}

func (p *Patient) stepHeart(dt float64) {
	if h := p.Heart(); h != nil {
		h.Step(dt, &p.Blood, p.rng)
	}
}

func (p *Patient) stepLungs(dt float64) {
	if l := p.Lungs(); l != nil {
		l.Step(dt, &p.Blood, p.rng)
	}
}

// stepBrain gathers the cross-organ readings the brain depends on, runs
// it, then writes the autonomic targets back into Heart and Lungs.
func (p *Patient) stepBrain(dt float64) {
	b := p.Brain()
	if b == nil {
		return
	}

	var in organs.BrainInputs
	if h := p.Heart(); h != nil {
		in.HasHeart = true
		in.AorticPressure = h.AorticPressure()
	}
	if l := p.Lungs(); l != nil {
		in.HasLungs = true
		in.LungPeakPressure = l.PeakInspiratoryPressure()
	}
	if sc := p.SpinalCord(); sc != nil {
		in.MotorPathwayImpaired = sc.MotorPathwayStatus() != organs.SignalNormal
	}

	b.Step(dt, &p.Blood, in, p.rng)

	if h := p.Heart(); h != nil {
		h.SetTargetRate(b.TargetHeartRate())
	}
	if l := p.Lungs(); l != nil {
		l.SetRespirationRate(b.TargetRespirationRate())
	}
}

// stepLiver runs the liver and pushes the produced bile into the
// gallbladder when present.
func (p *Patient) stepLiver(dt float64) {
	l := p.Liver()
	if l == nil {
		return
	}
	bile := l.Step(dt, &p.Blood, p.rng)
	if g := p.Gallbladder(); g != nil {
		g.StoreBile(bile)
	}
}

// stepKidneys runs the kidneys against the heart's perfusion pressure and
// pushes the produced urine into the bladder when present.
func (p *Patient) stepKidneys(dt float64) {
	k := p.Kidneys()
	if k == nil {
		return
	}
	var aortic float64
	hasHeart := false
	if h := p.Heart(); h != nil {
		aortic = h.AorticPressure()
		hasHeart = true
	}
	urine := k.Step(dt, &p.Blood, aortic, hasHeart, p.rng)
	if bl := p.Bladder(); bl != nil {
		bl.AddUrine(urine)
	}
}

func (p *Patient) stepBladder(dt float64) {
	if bl := p.Bladder(); bl != nil {
		bl.Step(dt)
	}
}

func (p *Patient) stepStomach(dt float64) {
	if st := p.Stomach(); st != nil {
		st.Step(dt, p.Intestines())
	}
}

func (p *Patient) stepIntestines(dt float64) {
	if n := p.Intestines(); n != nil {
		n.Step(dt, &p.Blood, p.Gallbladder(), p.Pancreas(), p.rng)
	}
}

func (p *Patient) stepGallbladder(dt float64) {
	if g := p.Gallbladder(); g != nil {
		g.Step(dt)
	}
}

func (p *Patient) stepPancreas(dt float64) {
	if pa := p.Pancreas(); pa != nil {
		pa.Step(dt, &p.Blood, p.rng)
	}
}

func (p *Patient) stepEsophagus(dt float64) {
	if e := p.Esophagus(); e != nil {
		e.Step(dt, p.Stomach())
	}
}

func (p *Patient) stepSpleen(dt float64) {
	if sp := p.Spleen(); sp != nil {
		sp.Step(dt, p.rng)
	}
}

func (p *Patient) stepSpinalCord(dt float64) {
	if sc := p.SpinalCord(); sc != nil {
		sc.Step(dt, p.rng)
	}
}
