package scenario

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/iotaledger/controlactions/ierrors"
)

// ControlReport is the state of a control after a scenario ran.
type ControlReport struct {
	Name      string `yaml:"name"`
	Actions   int    `yaml:"actions"`
	Events    string `yaml:"events,omitempty"`
	Released  bool   `yaml:"released"`
	Collected bool   `yaml:"collected"`
}

// ActionReport is the state of an action after a scenario ran.
type ActionReport struct {
	Name         string `yaml:"name"`
	Control      string `yaml:"control"`
	Events       string `yaml:"events"`
	TriggerCount int    `yaml:"triggerCount"`
	Removed      bool   `yaml:"removed"`
}

// Report is the result of a scenario run.
type Report struct {
	Name     string          `yaml:"name,omitempty"`
	Controls []ControlReport `yaml:"controls"`
	Actions  []ActionReport  `yaml:"actions"`
}

// Action returns the report of the action with the given name.
func (r *Report) Action(name string) (ActionReport, bool) {
	for _, action := range r.Actions {
		if action.Name == name {
			return action, true
		}
	}

	return ActionReport{}, false
}

// TriggerCounts returns the trigger counts of all actions keyed by their name.
func (r *Report) TriggerCounts() map[string]int {
	triggerCounts := make(map[string]int, len(r.Actions))
	for _, action := range r.Actions {
		triggerCounts[action.Name] = action.TriggerCount
	}

	return triggerCounts
}

// YAML returns the report encoded as YAML.
func (r *Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to encode report")
	}

	return out, nil
}

func (r *Report) String() string {
	var builder strings.Builder

	if r.Name != "" {
		fmt.Fprintf(&builder, "scenario %s\n", r.Name)
	}

	for _, c := range r.Controls {
		state := fmt.Sprintf("%d actions on %s", c.Actions, c.Events)
		if c.Released {
			state = "released"
			if c.Collected {
				state += ", collected"
			}
		}
		fmt.Fprintf(&builder, "control %-16s %s\n", c.Name, state)
	}

	for _, a := range r.Actions {
		removed := ""
		if a.Removed {
			removed = " (removed)"
		}
		fmt.Fprintf(&builder, "action  %-16s %-32s triggered %d%s\n", a.Name, a.Control+":"+a.Events, a.TriggerCount, removed)
	}

	return builder.String()
}
