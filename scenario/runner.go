package scenario

import (
	"context"
	"runtime"
	"weak"

	"github.com/iotaledger/controlactions/actions"
	"github.com/iotaledger/controlactions/control"
	"github.com/iotaledger/controlactions/ierrors"
	"github.com/iotaledger/controlactions/logger"
	"github.com/iotaledger/controlactions/runtime/options"
)

// Runner executes a Script. A Runner can only be run once.
type Runner struct {
	script *Script

	// controls contains the strong references to the controls that were not released yet.
	controls map[string]*control.Button

	// controlRefs is used to report whether released controls were collected.
	controlRefs map[string]weak.Pointer[control.Control]

	handles map[string]*actions.Handle

	*logger.WrappedLogger
}

// WithLogger sets the logger of the Runner.
func WithLogger(l *logger.Logger) options.Option[Runner] {
	return func(r *Runner) {
		r.WrappedLogger = logger.NewWrappedLogger(l)
	}
}

// NewRunner creates a Runner for the given Script.
func NewRunner(script *Script, opts ...options.Option[Runner]) *Runner {
	return options.Apply(&Runner{
		script:        script,
		controls:      make(map[string]*control.Button, len(script.Controls)),
		controlRefs:   make(map[string]weak.Pointer[control.Control], len(script.Controls)),
		handles:       make(map[string]*actions.Handle, len(script.Actions)),
		WrappedLogger: logger.NewWrappedLogger(nil),
	}, opts)
}

// Run creates the controls, adds the actions and executes the steps in order. It stops at the first failing step or
// when the context is done.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	for _, definition := range r.script.Controls {
		title := definition.Title
		if title == "" {
			title = definition.Name
		}

		button := control.NewButton(title)
		r.controls[definition.Name] = button
		r.controlRefs[definition.Name] = weak.Make(button.Control)
	}

	for _, definition := range r.script.Actions {
		r.handles[definition.Name] = r.addAction(definition)
	}

	for i, step := range r.script.Steps {
		if err := ctx.Err(); err != nil {
			return r.report(), ierrors.Wrapf(err, "scenario aborted before step %d", i)
		}

		r.LogDebugf("step %d: %s", i, step)

		if err := r.execute(step); err != nil {
			r.LogErrorf("step %d (%s) failed: %s", i, step, err)

			return r.report(), ierrors.Wrapf(err, "step %d (%s) failed", i, step)
		}
	}

	report := r.report()
	for _, controlReport := range report.Controls {
		if controlReport.Released && !controlReport.Collected {
			r.LogWarnf("released control %s was not collected", controlReport.Name)
		}
	}

	r.LogInfof("scenario %s finished after %d steps", r.script.Name, len(r.script.Steps))

	return report, nil
}

// addAction registers an action that only logs, its trigger count is read from its Handle.
func (r *Runner) addAction(definition ActionDefinition) *actions.Handle {
	name := definition.Name
	log := r.WrappedLogger

	return actions.Add(r.controls[definition.Control], definition.events, func() {
		log.LogDebugf("action %s triggered", name)
	}, actions.WithMaxTriggerCount(definition.MaxTriggerCount), actions.WithPreTriggerFunc(func(event control.Event) {
		log.LogDebugf("action %s received %s", name, event)
	}))
}

func (r *Runner) execute(step Step) error {
	switch step.Op {
	case OperationRemove:
		handle, exists := r.handles[step.Action]
		if !exists {
			return ierrors.Wrapf(ErrUnknownAction, "%q", step.Action)
		}
		handle.Remove()

		return nil
	case OperationRelease:
		if _, exists := r.controls[step.Control]; !exists {
			return ierrors.Wrapf(ErrUnknownControl, "%q", step.Control)
		}
		delete(r.controls, step.Control)
		runtime.GC()

		return nil
	}

	button, exists := r.controls[step.Control]
	if !exists {
		return ierrors.Wrapf(ErrUnknownControl, "%q", step.Control)
	}

	switch step.Op {
	case OperationSend:
		button.SendActions(step.event)
	case OperationTap:
		button.Tap()
	case OperationCancel:
		button.Cancel()
	case OperationRemoveAll:
		r.LogDebugf("removed %d actions of %s", actions.RemoveAll(button), step.Control)
	case OperationEnable:
		button.SetEnabled(true)
	case OperationDisable:
		button.SetEnabled(false)
	default:
		return ierrors.Wrapf(ErrUnknownStep, "%q", step.Op)
	}

	return nil
}

func (r *Runner) report() *Report {
	report := &Report{
		Name:     r.script.Name,
		Controls: make([]ControlReport, 0, len(r.script.Controls)),
		Actions:  make([]ActionReport, 0, len(r.script.Actions)),
	}

	for _, definition := range r.script.Controls {
		_, alive := r.controls[definition.Name]
		controlRef, created := r.controlRefs[definition.Name]

		controlReport := ControlReport{
			Name:     definition.Name,
			Released: created && !alive,
		}
		if controlReport.Released {
			controlReport.Collected = controlRef.Value() == nil
		}
		if button, exists := r.controls[definition.Name]; exists {
			controlReport.Actions = actions.Count(button)
			controlReport.Events = button.AllControlEvents().String()
		}

		report.Controls = append(report.Controls, controlReport)
	}

	for _, definition := range r.script.Actions {
		actionReport := ActionReport{
			Name:    definition.Name,
			Control: definition.Control,
			Events:  definition.events.String(),
		}
		if handle, exists := r.handles[definition.Name]; exists {
			actionReport.TriggerCount = handle.TriggerCount()
			actionReport.Removed = handle.Removed()
		}

		report.Actions = append(report.Actions, actionReport)
	}

	return report
}
