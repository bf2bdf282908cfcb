package actions

import (
	"github.com/iotaledger/controlactions/control"
	"github.com/iotaledger/controlactions/runtime/options"
)

// Listener is the target object that binds one action to the events of one control.
//
// The Listener does not store its control; the control is passed to register and deregister.
type Listener struct {
	*hookState

	events         control.Event
	action         func()
	preTriggerFunc func(event control.Event)

	// handle is used by the Listener to remove itself once its max trigger count is reached.
	handle *Handle
}

// newListener creates a new unregistered Listener.
func newListener(id uint64, events control.Event, action func(), opts ...Option) *Listener {
	settings := options.Apply(new(triggerSettings), opts)

	if action == nil {
		action = func() {}
	}

	return &Listener{
		hookState:      newHookState(id, settings.maxTriggerCount),
		events:         events,
		action:         action,
		preTriggerFunc: settings.preTriggerFunc,
	}
}

// Events returns the event mask the Listener responds to.
func (l *Listener) Events() control.Event {
	return l.events
}

// HandleEvent runs the action. It is called synchronously by the control for every matching event.
func (l *Listener) HandleEvent(event control.Event) {
	if !l.isRegistered() {
		return
	}

	triggerCount, claimed := l.claimTrigger()
	if !claimed {
		return
	}

	if l.preTriggerFunc != nil {
		l.preTriggerFunc(event)
	}

	l.action()

	if l.isLastTrigger(triggerCount) {
		l.handle.Remove()
	}
}

// register adds the Listener as a target of the given control.
func (l *Listener) register(c *control.Control) {
	if l.markRegistered() {
		c.AddTarget(l, l.events)
	}
}

// deregister removes the Listener from the targets of the given control. It is safe to call it more than once.
func (l *Listener) deregister(c *control.Control) {
	c.RemoveTarget(l, l.events)
}
