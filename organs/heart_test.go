package organs

import (
	"math/rand"
	"strings"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestHeart_MeasuredRateFromRPeaks(t *testing.T) {
	h := NewHeart(3)
	blood := NewBlood()
	rng := testRand()

	// Run five seconds at 75 bpm nominal; at least 5 beats should land.
	dt := 0.01
	for i := 0; i < 500; i++ {
		h.Step(dt, &blood, rng)
	}

	if h.BeatCount() < 5 {
		t.Fatalf("expected at least 5 beats in 5 s, got %d", h.BeatCount())
	}
	if h.Rate() < 60 || h.Rate() > 90 {
		t.Errorf("measured rate %f bpm outside plausible band around 75", h.Rate())
	}
}

func TestHeart_EjectionFractionInRange(t *testing.T) {
	h := NewHeart(1)
	blood := NewBlood()
	rng := testRand()

	// More than one full cardiac cycle so both boundary volumes get captured.
	dt := 0.01
	for i := 0; i < 200; i++ {
		h.Step(dt, &blood, rng)
	}

	ef := h.EjectionFraction()
	if ef <= 0 || ef >= 1 {
		t.Errorf("ejection fraction %f outside (0,1)", ef)
	}

	edv := h.LeftVentricle.EndDiastolicVolume
	esv := h.LeftVentricle.EndSystolicVolume
	if edv <= 0 {
		t.Fatal("end-diastolic volume never captured")
	}
	want := (edv - esv) / edv
	if diff := ef - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ejection fraction %f does not match (EDV-ESV)/EDV = %f", ef, want)
	}
}

func TestHeart_ChamberVolumesStayClamped(t *testing.T) {
	h := NewHeart(1)
	blood := NewBlood()
	rng := testRand()

	for i := 0; i < 1000; i++ {
		h.Step(0.05, &blood, rng)
		for _, c := range []*Chamber{&h.LeftVentricle, &h.RightVentricle} {
			if c.Volume < chamberVolumeMin || c.Volume > chamberVolumeMax {
				t.Fatalf("%s volume %f outside [%f,%f]", c.Name, c.Volume, chamberVolumeMin, chamberVolumeMax)
			}
		}
	}
}

func TestHeart_BloodPressureClamped(t *testing.T) {
	h := NewHeart(1)
	blood := NewBlood()
	blood.Angiotensin = 100.0 // extreme vasoconstriction
	rng := testRand()

	h.Step(0.1, &blood, rng)

	if blood.Systolic > 180.0 || blood.Systolic < 80.0 {
		t.Errorf("systolic %f outside [80,180]", blood.Systolic)
	}
	if blood.Diastolic > 110.0 || blood.Diastolic < 50.0 {
		t.Errorf("diastolic %f outside [50,110]", blood.Diastolic)
	}
}

func TestHeart_SetTargetRateIgnoresNonPositive(t *testing.T) {
	h := NewHeart(1)
	h.SetTargetRate(100)
	if h.TargetRate() != 100 {
		t.Fatalf("expected target rate 100, got %f", h.TargetRate())
	}
	h.SetTargetRate(0)
	h.SetTargetRate(-10)
	if h.TargetRate() != 100 {
		t.Errorf("non-positive rate should be ignored, got %f", h.TargetRate())
	}
}

func TestHeart_LeadCountCapped(t *testing.T) {
	h := NewHeart(50)
	if got := len(h.LeadNames()); got != 12 {
		t.Errorf("expected 12 leads, got %d", got)
	}
	if h.EKG("I") == nil {
		t.Error("lead I should be configured")
	}
	if h.EKG("bogus") != nil {
		t.Error("unknown lead should return nil")
	}
}

func TestHeart_EKGBounded(t *testing.T) {
	h := NewHeart(2)
	blood := NewBlood()
	rng := testRand()

	for i := 0; i < ekgHistorySize*2; i++ {
		h.Step(0.01, &blood, rng)
	}
	for _, name := range h.LeadNames() {
		if got := h.EKG(name).Len(); got > ekgHistorySize {
			t.Errorf("lead %s history %d exceeds capacity %d", name, got, ekgHistorySize)
		}
	}
}

func TestHeart_SummaryContainsKeyFields(t *testing.T) {
	h := NewHeart(1)
	s := h.Summary()
	for _, want := range []string{"Heart Rate", "Ejection Fraction", "Aortic Pressure"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}
