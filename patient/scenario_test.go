package patient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/vitals/organs"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
events:
  - at: 5.0
    action: swallow
    amount: 200
  - at: 30.0
    action: toxins
    amount: 60
`)

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("loading scenario: %v", err)
	}
	if len(s.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(s.Events))
	}
	if s.Events[0].Action != ActionSwallow || s.Events[0].At != 5.0 {
		t.Errorf("unexpected first event: %+v", s.Events[0])
	}
}

func TestLoadScenario_RejectsUnknownAction(t *testing.T) {
	path := writeScenario(t, "events:\n  - at: 1.0\n    action: teleport\n    amount: 1\n")
	if _, err := LoadScenario(path); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestLoadScenario_RejectsNegativeTime(t *testing.T) {
	path := writeScenario(t, "events:\n  - at: -1.0\n    action: meal\n    amount: 100\n")
	if _, err := LoadScenario(path); err == nil {
		t.Error("expected error for negative event time")
	}
}

func TestScenarioApply_FiresInWindow(t *testing.T) {
	s := &Scenario{Events: []ScenarioEvent{
		{At: 1.0, Action: ActionMeal, Amount: 200},
		{At: 5.0, Action: ActionToxins, Amount: 60},
	}}

	p := NewEmpty(organs.NewBlood(), 1)
	p.AttachStomach()

	s.Apply(p, 0.0, 1.0)
	if p.Stomach().State() != organs.GastricFilling {
		t.Error("meal at t=1.0 should have fired in window (0,1]")
	}
	if p.Blood.Toxins != 0 {
		t.Error("toxin event at t=5.0 must not fire yet")
	}

	// Disjoint next window: the earlier event must not re-fire.
	vol := p.Stomach().Volume()
	s.Apply(p, 1.0, 5.0)
	if p.Stomach().Volume() != vol {
		t.Error("meal event fired twice across disjoint windows")
	}
	if p.Blood.Toxins != 60 {
		t.Errorf("expected toxins 60 after window (1,5], got %f", p.Blood.Toxins)
	}
}

func TestScenarioApply_MissingOrganDropped(t *testing.T) {
	s := &Scenario{Events: []ScenarioEvent{
		{At: 1.0, Action: ActionSwallow, Amount: 100},
		{At: 1.0, Action: ActionLungDamage, Amount: 0.5},
	}}

	p := NewEmpty(organs.NewBlood(), 1)
	// No esophagus, no lungs: must not panic.
	s.Apply(p, 0.0, 2.0)
}
