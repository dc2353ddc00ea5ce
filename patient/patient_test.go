package patient

import (
	"strings"
	"testing"

	"github.com/pthm-cable/vitals/config"
	"github.com/pthm-cable/vitals/organs"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func TestNewPatient_FullRoster(t *testing.T) {
	p := NewPatient(testConfig(t))

	if p.OrganCount() != 13 {
		t.Fatalf("expected 13 organs, got %d", p.OrganCount())
	}
	for _, kind := range updateOrder {
		if !p.HasOrgan(kind) {
			t.Errorf("missing organ %v", kind)
		}
	}
	if p.ID == "" {
		t.Error("patient should get a non-empty id")
	}
	if p.Blood.OxygenSaturation != 98.0 {
		t.Errorf("blood not at configured baseline, SpO2 %f", p.Blood.OxygenSaturation)
	}
}

func TestAttachTwiceKeepsFirst(t *testing.T) {
	p := NewEmpty(organs.NewBlood(), 1)
	if !p.AttachHeart(3) {
		t.Fatal("first attach should succeed")
	}
	if p.AttachHeart(12) {
		t.Error("second attach of the same kind should report false")
	}
	if got := len(p.Heart().LeadNames()); got != 3 {
		t.Errorf("expected the first heart kept (3 leads), got %d leads", got)
	}
}

func TestAccessorsNilWhenAbsent(t *testing.T) {
	p := NewEmpty(organs.NewBlood(), 1)
	if p.Heart() != nil || p.Brain() != nil || p.Bladder() != nil {
		t.Error("accessors must return nil for absent organs")
	}
	if p.HasOrgan(organs.KindSpleen) {
		t.Error("empty patient should have no organs")
	}
}

func TestStep_FullRosterOneMinute(t *testing.T) {
	p := NewPatient(testConfig(t))

	dt := 0.1
	for i := 0; i < 600; i++ {
		p.Step(dt)

		b := p.Blood
		if b.OxygenSaturation < 0 || b.OxygenSaturation > 100 {
			t.Fatalf("tick %d: blood O2 %f outside [0,100]", i, b.OxygenSaturation)
		}
		if b.Systolic < 80 || b.Systolic > 180 {
			t.Fatalf("tick %d: systolic %f outside [80,180]", i, b.Systolic)
		}
		if b.Diastolic < 50 || b.Diastolic > 110 {
			t.Fatalf("tick %d: diastolic %f outside [50,110]", i, b.Diastolic)
		}
		if b.Toxins < 0 {
			t.Fatalf("tick %d: toxins %f negative", i, b.Toxins)
		}
	}

	if p.Tick() != 600 {
		t.Errorf("expected 600 ticks, got %d", p.Tick())
	}
	if p.Heart().BeatCount() < 30 {
		t.Errorf("expected a plausible number of beats in a minute, got %d", p.Heart().BeatCount())
	}
	if p.Lungs().BreathCount() < 5 {
		t.Errorf("expected a plausible number of breaths in a minute, got %d", p.Lungs().BreathCount())
	}
	// Ticks that end mid-inspiration read as ventilated (peak pressure
	// above the intubation threshold forces verbal 1), so the total flaps
	// between 14 and 11 while eye and motor stay maximal.
	if p.Brain().GCSEye() != 4 || p.Brain().GCSMotor() != 6 {
		t.Errorf("healthy patient should keep eye 4 / motor 6, got %d/%d",
			p.Brain().GCSEye(), p.Brain().GCSMotor())
	}
	if p.Brain().GCS() < 10 {
		t.Errorf("healthy patient should stay conscious, GCS %d", p.Brain().GCS())
	}
}

func TestStep_Deterministic(t *testing.T) {
	cfg := testConfig(t)
	a := NewPatient(cfg)
	b := NewPatient(cfg)

	for i := 0; i < 100; i++ {
		a.Step(0.1)
		b.Step(0.1)
	}

	if a.Blood != b.Blood {
		t.Errorf("same seed must give identical blood:\n%+v\n%+v", a.Blood, b.Blood)
	}
	if a.Heart().Rate() != b.Heart().Rate() {
		t.Error("same seed must give identical heart rate")
	}
}

func TestStep_BrainWithoutHeartHoldsMAP(t *testing.T) {
	p := NewEmpty(organs.NewBlood(), 7)
	p.AttachBrain(organs.DefaultAutonomicGains())
	p.AttachLungs()

	for i := 0; i < 500; i++ {
		p.Step(0.1)
		mapv := p.Brain().MeanArterialPressure()
		if mapv < 85.0 || mapv > 95.0 {
			t.Fatalf("tick %d: MAP %f escaped fallback band [85,95]", i, mapv)
		}
	}
}

func TestStep_KidneysWithoutBladderOrHeart(t *testing.T) {
	p := NewEmpty(organs.NewBlood(), 7)
	p.AttachKidneys()

	// Must not panic and must stay clamped with every collaborator absent.
	for i := 0; i < 100; i++ {
		p.Step(0.1)
	}
	if p.Kidneys().GFR() < 90 || p.Kidneys().GFR() > 150 {
		t.Errorf("GFR %f outside [90,150]", p.Kidneys().GFR())
	}
}

func TestStep_UrineReachesBladder(t *testing.T) {
	p := NewEmpty(organs.NewBlood(), 7)
	p.AttachHeart(1)
	p.AttachKidneys()
	p.AttachBladder()

	start := p.Bladder().Volume()
	for i := 0; i < 100; i++ {
		p.Step(0.1)
	}
	if p.Bladder().Volume() <= start {
		t.Errorf("expected bladder volume to rise from %f, got %f", start, p.Bladder().Volume())
	}
}

func TestStep_MealReachesBloodGlucose(t *testing.T) {
	p := NewPatient(testConfig(t))
	p.Esophagus().InitiateSwallow(300)

	// Transit (~8 s), filling (2 s), digestion (30 s), then emptying into
	// the intestines which absorb glucose. The liver pulls glucose back
	// toward its band, so compare against a no-meal twin.
	twin := NewPatient(testConfig(t))
	for i := 0; i < 1200; i++ {
		p.Step(0.1)
		twin.Step(0.1)
	}

	if p.Blood.Glucose <= twin.Blood.Glucose {
		t.Errorf("meal should raise glucose relative to fasting twin: %f vs %f",
			p.Blood.Glucose, twin.Blood.Glucose)
	}
}

func TestStep_SpinalInjuryPropagatesToGCS(t *testing.T) {
	p := NewPatient(testConfig(t))
	p.SpinalCord().MotorTract.Status = organs.SignalSevered

	p.Step(0.1)

	if p.Brain().GCSMotor() != 1 {
		t.Errorf("severed motor tract should force GCS motor 1, got %d", p.Brain().GCSMotor())
	}
	if p.SpinalCord().ReflexArcIntact() {
		t.Error("reflex arc should be broken")
	}
}

func TestStep_AutonomicTargetsWrittenBack(t *testing.T) {
	p := NewPatient(testConfig(t))

	for i := 0; i < 600; i++ {
		p.Step(0.1)
	}

	// After settling, the heart's target rate follows the brain's output.
	diff := p.Heart().TargetRate() - p.Brain().TargetHeartRate()
	if diff > 1.0 || diff < -1.0 {
		t.Errorf("heart target %f should track brain target %f",
			p.Heart().TargetRate(), p.Brain().TargetHeartRate())
	}

	// The measured rate, derived from R-peak spacing, settles on the same
	// target.
	measured := p.Heart().Rate()
	target := p.Brain().TargetHeartRate()
	if measured < target-5.0 || measured > target+5.0 {
		t.Errorf("measured rate %f should settle near brain target %f", measured, target)
	}
}

func TestSummary_ContainsEveryOrgan(t *testing.T) {
	p := NewPatient(testConfig(t))
	p.Step(0.1)

	s := p.Summary()
	for _, want := range []string{
		"Blood", "Heart Summary", "Lungs Summary", "Brain Summary",
		"Liver Summary", "Kidneys Summary", "Bladder Summary",
		"Stomach Summary", "Intestines Summary", "Gallbladder Summary",
		"Pancreas Summary", "Esophagus Summary", "Spleen Summary",
		"Spinal Cord Summary",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("patient summary missing %q", want)
		}
	}
}

func TestOrganSummary_AbsentIsEmpty(t *testing.T) {
	p := NewEmpty(organs.NewBlood(), 1)
	if s := p.OrganSummary(organs.KindHeart); s != "" {
		t.Errorf("expected empty summary for absent organ, got %q", s)
	}
}

func TestOrganSummaryByTag(t *testing.T) {
	p := NewPatient(testConfig(t))
	p.Step(0.1)

	if s := p.OrganSummaryByTag("Heart"); !strings.Contains(s, "Heart Summary") {
		t.Errorf("expected heart summary for tag %q, got %q", "Heart", s)
	}
	if s := p.OrganSummaryByTag("SpinalCord"); !strings.Contains(s, "Spinal Cord Summary") {
		t.Errorf("expected spinal cord summary for tag %q, got %q", "SpinalCord", s)
	}
	if s := p.OrganSummaryByTag("Femur"); s != "" {
		t.Errorf("expected empty summary for unknown tag, got %q", s)
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		height  float64
		want    float64
		wantErr bool
	}{
		{"normal", 70, 1.75, 22.857, false},
		{"zero weight", 0, 1.75, 0, true},
		{"negative weight", -10, 1.75, 0, true},
		{"zero height", 70, 0, 0, true},
		{"negative height", 70, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMI(tt.weight, tt.height)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got < tt.want-0.01 || got > tt.want+0.01 {
				t.Errorf("BMI = %f, want ~%f", got, tt.want)
			}
		})
	}
}
