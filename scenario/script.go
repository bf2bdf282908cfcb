// Package scenario runs declarative interaction scripts against buttons with closure actions.
package scenario

import (
	"strings"

	"github.com/iotaledger/controlactions/configuration"
	"github.com/iotaledger/controlactions/control"
	"github.com/iotaledger/controlactions/ierrors"
)

var (
	// ErrUnknownStep is returned if a step has an unknown operation.
	ErrUnknownStep = ierrors.New("unknown step")
	// ErrUnknownControl is returned if a name does not refer to a declared (and not yet released) control.
	ErrUnknownControl = ierrors.New("unknown control")
	// ErrUnknownAction is returned if a name does not refer to a declared action.
	ErrUnknownAction = ierrors.New("unknown action")
	// ErrDuplicateName is returned if a control or action name is declared more than once.
	ErrDuplicateName = ierrors.New("duplicate name")
	// ErrInvalidStep is returned if a step misses one of the fields its operation requires.
	ErrInvalidStep = ierrors.New("invalid step")
	// ErrEmptyScenario is returned if a file declares neither controls nor actions nor steps.
	ErrEmptyScenario = ierrors.New("empty scenario")
)

// Operation is the kind of interaction a Step performs.
type Operation string

const (
	OperationSend      Operation = "send"
	OperationTap       Operation = "tap"
	OperationCancel    Operation = "cancel"
	OperationRemove    Operation = "remove"
	OperationRemoveAll Operation = "removeall"
	OperationRelease   Operation = "release"
	OperationEnable    Operation = "enable"
	OperationDisable   Operation = "disable"
)

// ControlDefinition declares a named button.
type ControlDefinition struct {
	Name  string `koanf:"name"`
	Title string `koanf:"title"`
}

// ActionDefinition declares an action that counts how often it was triggered.
type ActionDefinition struct {
	Name            string   `koanf:"name"`
	Control         string   `koanf:"control"`
	Events          []string `koanf:"events"`
	MaxTriggerCount uint64   `koanf:"maxtriggercount"`

	events control.Event
}

// Step is a single interaction of a Script.
type Step struct {
	Op      Operation `koanf:"op"`
	Control string    `koanf:"control"`
	Event   string    `koanf:"event"`
	Action  string    `koanf:"action"`

	event control.Event
}

// Script is a parsed and validated scenario.
type Script struct {
	Name     string              `koanf:"name"`
	Controls []ControlDefinition `koanf:"controls"`
	Actions  []ActionDefinition  `koanf:"actions"`
	Steps    []Step              `koanf:"steps"`
}

// Load reads a JSON, YAML or TOML scenario file.
func Load(filePath string) (*Script, error) {
	config := configuration.New()
	if err := config.LoadFile(filePath); err != nil {
		return nil, ierrors.Wrap(err, "failed to load scenario")
	}

	return FromConfiguration(config)
}

// FromConfiguration unmarshals and validates the scenario contained in the given configuration.
func FromConfiguration(config *configuration.Configuration) (*Script, error) {
	if !config.Exists("controls") && !config.Exists("actions") && !config.Exists("steps") {
		return nil, ErrEmptyScenario
	}

	script := new(Script)
	if err := config.Koanf().Unmarshal("", script); err != nil {
		return nil, ierrors.Wrap(err, "failed to parse scenario")
	}

	if err := script.validate(); err != nil {
		return nil, err
	}

	return script, nil
}

// validate checks all names and resolves the event names of the actions and steps.
func (s *Script) validate() error {
	controls := make(map[string]struct{}, len(s.Controls))
	for _, definition := range s.Controls {
		if _, exists := controls[definition.Name]; exists {
			return ierrors.Wrapf(ErrDuplicateName, "control %q", definition.Name)
		}
		controls[definition.Name] = struct{}{}
	}

	actions := make(map[string]struct{}, len(s.Actions))
	for i := range s.Actions {
		definition := &s.Actions[i]

		if _, exists := actions[definition.Name]; exists {
			return ierrors.Wrapf(ErrDuplicateName, "action %q", definition.Name)
		}
		actions[definition.Name] = struct{}{}

		if _, exists := controls[definition.Control]; !exists {
			return ierrors.Wrapf(ErrUnknownControl, "action %q refers to %q", definition.Name, definition.Control)
		}

		events, err := control.ParseEvents(definition.Events)
		if err != nil {
			return ierrors.Wrapf(err, "action %q", definition.Name)
		}
		definition.events = events
	}

	for i := range s.Steps {
		if err := s.Steps[i].validate(controls, actions); err != nil {
			return ierrors.Wrapf(err, "step %d", i)
		}
	}

	return nil
}

// validate normalizes the operation and checks the fields it requires.
func (s *Step) validate(controls map[string]struct{}, actions map[string]struct{}) error {
	s.Op = Operation(strings.ToLower(string(s.Op)))

	switch s.Op {
	case OperationSend:
		if s.Event == "" {
			return ierrors.Wrapf(ErrInvalidStep, "%s requires an event", s.Op)
		}

		event, err := control.ParseEvent(s.Event)
		if err != nil {
			return err
		}
		s.event = event

		return requireName(controls, s.Control, ErrUnknownControl)
	case OperationTap, OperationCancel, OperationRemoveAll, OperationRelease, OperationEnable, OperationDisable:
		return requireName(controls, s.Control, ErrUnknownControl)
	case OperationRemove:
		return requireName(actions, s.Action, ErrUnknownAction)
	default:
		return ierrors.Wrapf(ErrUnknownStep, "%q", s.Op)
	}
}

func requireName(names map[string]struct{}, name string, err error) error {
	if _, exists := names[name]; !exists {
		return ierrors.Wrapf(err, "%q", name)
	}

	return nil
}

// String returns a short description of the step.
func (s Step) String() string {
	switch s.Op {
	case OperationSend:
		return string(s.Op) + " " + s.Event + " to " + s.Control
	case OperationRemove:
		return string(s.Op) + " " + s.Action
	default:
		return string(s.Op) + " " + s.Control
	}
}
