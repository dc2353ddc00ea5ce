package organs

import (
	"testing"
)

// ---------- Stomach ----------

func TestStomach_AddSubstanceForcesFilling(t *testing.T) {
	st := NewStomach()
	if st.State() != GastricEmpty {
		t.Fatalf("new stomach should be empty, got %v", st.State())
	}

	st.AddSubstance(500)

	if st.State() != GastricFilling {
		t.Errorf("expected FILLING after AddSubstance, got %v", st.State())
	}
	if st.Volume() < 500 {
		t.Errorf("expected volume >= 500, got %f", st.Volume())
	}
	if st.Acidity() > bufferedPHCap {
		t.Errorf("buffered pH %f exceeds cap %f", st.Acidity(), bufferedPHCap)
	}
}

func TestStomach_FillingToDigestingAfterDwell(t *testing.T) {
	st := NewStomach()
	st.AddSubstance(300)

	for i := 0; i < 25; i++ { // 2.5 s > 2 s dwell
		st.Step(0.1, nil)
	}

	if st.State() != GastricDigesting {
		t.Errorf("expected DIGESTING after fill dwell, got %v", st.State())
	}
}

func TestStomach_DigestionLowersPHToFloor(t *testing.T) {
	st := NewStomach()
	st.AddSubstance(300)

	for i := 0; i < 300; i++ { // 30 s, well into digestion
		st.Step(0.1, nil)
	}

	if st.Acidity() < gastricPHFloor {
		t.Errorf("pH %f fell below floor %f", st.Acidity(), gastricPHFloor)
	}
	if st.Acidity() > 2.0 {
		t.Errorf("expected pH near floor after prolonged digestion, got %f", st.Acidity())
	}
}

func TestStomach_EmptiesChymeIntoIntestines(t *testing.T) {
	st := NewStomach()
	n := NewIntestines()
	st.AddSubstance(100)

	// Push through filling (2 s) and digestion (30 s) into emptying.
	for i := 0; i < 340; i++ {
		st.Step(0.1, n)
	}

	if st.State() != GastricEmptying {
		t.Fatalf("expected EMPTYING, got %v", st.State())
	}
	before := n.ChymeVolume()
	st.Step(0.1, n)
	if n.ChymeVolume() <= before {
		t.Error("expected chyme delivered to intestines while emptying")
	}
}

func TestStomach_VolumeNeverExceedsCapacity(t *testing.T) {
	st := NewStomach()
	st.AddSubstance(2000)
	st.Step(0.1, nil)
	if st.Volume() > stomachCapacity {
		t.Errorf("volume %f exceeds capacity %f", st.Volume(), stomachCapacity)
	}
}

// ---------- Bladder ----------

func TestBladder_FillingToFullOnThreshold(t *testing.T) {
	bl := NewBladder()

	for bl.State() == BladderFilling {
		bl.AddUrine(10)
		bl.Step(0.1)
		if bl.Volume() > bladderCapacity {
			t.Fatalf("volume %f exceeds capacity", bl.Volume())
		}
	}

	if bl.State() != BladderFull {
		t.Fatalf("expected FULL after threshold, got %v", bl.State())
	}
	if bl.Volume() <= bladderCapacity*bladderFullFraction && bl.Pressure() <= pressureThreshold {
		t.Errorf("FULL entered below both thresholds: vol=%f pressure=%f", bl.Volume(), bl.Pressure())
	}
}

func TestBladder_VoidsToEmptyThenRefills(t *testing.T) {
	bl := NewBladder()
	for bl.State() != BladderFull {
		bl.AddUrine(10)
		bl.Step(0.1)
	}

	// FULL holds for the dwell, then the sphincter opens.
	for i := 0; i < 110; i++ {
		bl.Step(0.1)
		if bl.State() == BladderVoiding {
			break
		}
	}
	if bl.State() != BladderVoiding {
		t.Fatal("expected VOIDING after the FULL dwell")
	}
	if bl.SphincterClosed() {
		t.Error("sphincter should be open while voiding")
	}

	// Urine added while voiding is rejected.
	v := bl.Volume()
	bl.AddUrine(50)
	if bl.Volume() != v {
		t.Error("AddUrine should be ignored while voiding")
	}

	prev := bl.Volume()
	for bl.State() == BladderVoiding {
		bl.Step(0.1)
		if bl.Volume() > prev {
			t.Fatal("volume must strictly decrease while voiding")
		}
		prev = bl.Volume()
	}

	if bl.Volume() != 0 {
		t.Errorf("expected exactly 0 mL after voiding, got %f", bl.Volume())
	}
	if bl.State() != BladderFilling {
		t.Errorf("expected return to FILLING, got %v", bl.State())
	}
	if !bl.SphincterClosed() {
		t.Error("sphincter should close after voiding")
	}
}

// ---------- Gallbladder ----------

func TestGallbladder_ReleaseOnEmptyIsNoOp(t *testing.T) {
	g := NewGallbladder()
	g.storedBile = 0

	released := g.ReleaseBile(1.0)

	if released != 0 {
		t.Errorf("expected exactly 0 from empty gallbladder, got %f", released)
	}
	if g.State() != GallbladderStoring {
		t.Errorf("state should remain STORING, got %v", g.State())
	}
}

func TestGallbladder_ReleaseEntersContracting(t *testing.T) {
	g := NewGallbladder()

	released := g.ReleaseBile(1.0)

	if released <= 0 {
		t.Fatal("expected bile released from a filled gallbladder")
	}
	if g.State() != GallbladderContracting {
		t.Errorf("expected CONTRACTING during release, got %v", g.State())
	}
}

func TestGallbladder_ReturnsToStoringNearEmpty(t *testing.T) {
	g := NewGallbladder()

	// Drain it below the near-empty level, then step.
	for i := 0; i < 20; i++ {
		g.ReleaseBile(1.0)
	}
	g.Step(0.1)

	if g.State() != GallbladderStoring {
		t.Errorf("expected STORING once near empty, got %v", g.State())
	}
	if g.BileConcentration() != 1.0 {
		t.Errorf("expected fresh bile concentration 1.0 after contraction, got %f", g.BileConcentration())
	}
}

func TestGallbladder_StoreClampedToCapacity(t *testing.T) {
	g := NewGallbladder()
	g.StoreBile(1000)
	if g.StoredBileVolume() > gallbladderCapacity {
		t.Errorf("stored volume %f exceeds capacity %f", g.StoredBileVolume(), gallbladderCapacity)
	}
}

func TestGallbladder_ConcentrationCappedWhileStoring(t *testing.T) {
	g := NewGallbladder()
	for i := 0; i < 5000; i++ {
		g.Step(0.1)
	}
	if g.BileConcentration() > concentrationCap {
		t.Errorf("concentration %f exceeds cap %f", g.BileConcentration(), concentrationCap)
	}
}

// ---------- Intestines ----------

func TestIntestines_DigestionAbsorbsGlucose(t *testing.T) {
	n := NewIntestines()
	g := NewGallbladder()
	p := NewPancreas()
	blood := NewBlood()
	rng := testRand()

	n.ReceiveChyme(200)
	start := blood.Glucose
	for i := 0; i < 50; i++ {
		n.Step(0.1, &blood, g, p, rng)
	}

	if blood.Glucose <= start {
		t.Error("expected glucose absorption into blood while digesting")
	}
	if n.ChymeVolume() >= 200 {
		t.Error("expected chyme volume to shrink during digestion")
	}
	if n.BileVolume() <= 0 || n.EnzymeVolume() <= 0 {
		t.Error("expected bile and enzymes pulled in while chyme present")
	}
}

func TestIntestines_ToleratesMissingHelpers(t *testing.T) {
	n := NewIntestines()
	blood := NewBlood()
	rng := testRand()

	n.ReceiveChyme(100)
	for i := 0; i < 20; i++ {
		n.Step(0.1, &blood, nil, nil, rng)
	}

	if n.BileVolume() != 0 || n.EnzymeVolume() != 0 {
		t.Error("no bile or enzymes should appear without gallbladder and pancreas")
	}
}

func TestIntestines_EnzymeConcentrationsResetWhenExhausted(t *testing.T) {
	n := NewIntestines()
	n.ReceiveEnzymes(DigestiveEnzymes{Volume: 1, Amylase: 80, Lipase: 40})
	if n.Amylase() != 80 || n.Lipase() != 40 {
		t.Fatalf("expected merged concentrations 80/40, got %f/%f", n.Amylase(), n.Lipase())
	}

	n.enzymeVolume = 0
	blood := NewBlood()
	n.ReceiveChyme(10)
	n.Step(0.1, &blood, nil, nil, testRand())

	if n.Amylase() != 0 || n.Lipase() != 0 {
		t.Error("concentrations should reset to zero once enzymes are exhausted")
	}
}

// ---------- Esophagus ----------

func TestEsophagus_BolusTransitDeliversToStomach(t *testing.T) {
	e := NewEsophagus()
	st := NewStomach()

	e.InitiateSwallow(30)
	if e.State() != PeristalsisContracting {
		t.Fatalf("expected CONTRACTING after swallow, got %v", e.State())
	}

	// 25 cm at 3 cm/s is under 9 s of transit.
	for i := 0; i < 100; i++ {
		e.Step(0.1, st)
	}

	if e.BoliInTransit() != 0 {
		t.Errorf("expected bolus delivered, %d still in transit", e.BoliInTransit())
	}
	if e.State() != PeristalsisIdle {
		t.Errorf("expected IDLE after delivery, got %v", e.State())
	}
	if st.State() != GastricFilling && st.State() != GastricDigesting {
		t.Errorf("stomach should have received the bolus, state %v", st.State())
	}
}

func TestEsophagus_MultipleBoliInTransit(t *testing.T) {
	e := NewEsophagus()
	e.InitiateSwallow(10)
	e.Step(1.0, nil)
	e.InitiateSwallow(10)

	if e.BoliInTransit() != 2 {
		t.Fatalf("expected 2 boli in transit, got %d", e.BoliInTransit())
	}
	boli := e.Boli()
	if boli[0].Position <= boli[1].Position {
		t.Error("earlier bolus should be further along")
	}
}
