package patient

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario actions.
const (
	ActionSwallow    = "swallow"     // amount mL through the esophagus
	ActionMeal       = "meal"        // amount mL directly into the stomach
	ActionToxins     = "toxins"      // amount a.u. added to the blood
	ActionLungDamage = "lung_damage" // amount as a 0-1 compliance fraction
)

// ScenarioEvent is one timed intervention applied to the patient.
type ScenarioEvent struct {
	At     float64 `yaml:"at"`     // simulated seconds
	Action string  `yaml:"action"` // one of the Action constants
	Amount float64 `yaml:"amount"`
}

// Scenario is an ordered list of timed interventions, loaded from YAML.
type Scenario struct {
	Events []ScenarioEvent `yaml:"events"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	for i, ev := range s.Events {
		switch ev.Action {
		case ActionSwallow, ActionMeal, ActionToxins, ActionLungDamage:
		default:
			return nil, fmt.Errorf("scenario event %d: unknown action %q", i, ev.Action)
		}
		if ev.At < 0 {
			return nil, fmt.Errorf("scenario event %d: negative time %g", i, ev.At)
		}
	}
	return s, nil
}

// Apply fires every event with prev < At <= now at the patient. Events
// whose target organ is absent are dropped silently, matching the
// missing-organ policy everywhere else.
func (s *Scenario) Apply(p *Patient, prev, now float64) {
	for _, ev := range s.Events {
		if ev.At <= prev || ev.At > now {
			continue
		}
		switch ev.Action {
		case ActionSwallow:
			if e := p.Esophagus(); e != nil {
				e.InitiateSwallow(ev.Amount)
			}
		case ActionMeal:
			if st := p.Stomach(); st != nil {
				st.AddSubstance(ev.Amount)
			}
		case ActionToxins:
			p.Blood.Toxins += ev.Amount
		case ActionLungDamage:
			if l := p.Lungs(); l != nil {
				l.InflictDamage(ev.Amount)
			}
		}
	}
}
