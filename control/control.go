// Package control models the target-action mechanism of a touch UI toolkit: controls keep a table of targets that
// are called synchronously when one of the events they were added for occurs, and they can carry associated objects
// that live exactly as long as the control itself.
package control

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/iotaledger/controlactions/runtime/syncutils"
)

// Target is an object that can be added to a Control to receive its actions.
//
// Targets are identified by equality, so implementations should be pointer types.
type Target interface {
	// HandleEvent is called synchronously when one of the events the target was added for occurs.
	HandleEvent(event Event)
}

// Interface is implemented by every widget that is built on top of a Control.
type Interface interface {
	// ControlBase returns the Control that dispatches the events of the widget.
	ControlBase() *Control
}

// Control is the base of all widgets that emit interaction events. The zero value is an enabled Control without
// targets and ready to use.
type Control struct {
	// targets maps the added targets to the event mask they were added for (in the order they were added).
	targets *linkedhashmap.Map

	// associations holds the objects that were associated with the control.
	associations map[*AssociationKey]any

	// disabled is true if the control ignores simulated touches.
	disabled bool

	mutex syncutils.RWMutex
}

// New creates a new enabled Control without any targets.
func New() *Control {
	c := new(Control)
	c.initialize()

	return c
}

// ControlBase returns the Control itself (it makes widgets that embed a *Control implement Interface).
func (c *Control) ControlBase() *Control {
	return c
}

// AddTarget adds the target for the given events. Adding a target that was added before extends its event mask.
func (c *Control) AddTarget(target Target, events Event) {
	if target == nil || events == 0 {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.initialize()

	if existingEvents, exists := c.targets.Get(target); exists {
		//nolint:forcetypeassert // the table only contains event masks
		events = events.With(existingEvents.(Event))
	}

	c.targets.Put(target, events)
}

// RemoveTarget removes the given events from the mask of the target and drops the target once its mask is empty.
// A nil target removes the events from all targets. Removing a target that is not added is a no-op.
func (c *Control) RemoveTarget(target Target, events Event) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.targets == nil {
		return
	}

	if target == nil {
		for _, key := range c.targets.Keys() {
			//nolint:forcetypeassert // the table only contains targets
			c.removeTarget(key.(Target), events)
		}

		return
	}

	c.removeTarget(target, events)
}

// SendActions calls all targets whose event mask intersects the given event, in the order they were added.
//
// The targets are collected before the first one is called, so targets may add or remove targets while they are
// being called.
func (c *Control) SendActions(event Event) {
	for _, target := range c.targetsFor(event) {
		target.HandleEvent(event)
	}
}

// AllTargets returns all targets that are currently added to the control.
func (c *Control) AllTargets() []Target {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.targets == nil {
		return nil
	}

	targets := make([]Target, 0, c.targets.Size())
	c.targets.Each(func(key interface{}, _ interface{}) {
		//nolint:forcetypeassert // the table only contains targets
		targets = append(targets, key.(Target))
	})

	return targets
}

// Events returns the event mask the given target was added for (0 if it is not added).
func (c *Control) Events(target Target) Event {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.targets == nil {
		return 0
	}

	events, exists := c.targets.Get(target)
	if !exists {
		return 0
	}

	//nolint:forcetypeassert // the table only contains event masks
	return events.(Event)
}

// AllControlEvents returns the union of the event masks of all targets.
func (c *Control) AllControlEvents() (events Event) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.targets == nil {
		return 0
	}

	c.targets.Each(func(_ interface{}, value interface{}) {
		//nolint:forcetypeassert // the table only contains event masks
		events |= value.(Event)
	})

	return events
}

// IsEnabled returns true if the control reacts to simulated touches.
func (c *Control) IsEnabled() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return !c.disabled
}

// SetEnabled enables or disables the control.
func (c *Control) SetEnabled(enabled bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.disabled = !enabled
}

// initialize creates the target table and the association storage of a zero value Control (the caller holds the
// lock).
func (c *Control) initialize() {
	if c.targets == nil {
		c.targets = linkedhashmap.New()
	}

	if c.associations == nil {
		c.associations = make(map[*AssociationKey]any)
	}
}

// removeTarget removes the events from the mask of the target (the caller holds the lock).
func (c *Control) removeTarget(target Target, events Event) {
	existingEvents, exists := c.targets.Get(target)
	if !exists {
		return
	}

	//nolint:forcetypeassert // the table only contains event masks
	if remainingEvents := existingEvents.(Event).Without(events); remainingEvents != 0 {
		c.targets.Put(target, remainingEvents)
	} else {
		c.targets.Remove(target)
	}
}

// targetsFor returns a snapshot of the targets that are interested in the given event.
func (c *Control) targetsFor(event Event) []Target {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.targets == nil {
		return nil
	}

	targets := make([]Target, 0)
	c.targets.Each(func(key interface{}, value interface{}) {
		//nolint:forcetypeassert // the table only contains event masks
		if value.(Event).Has(event) {
			//nolint:forcetypeassert // the table only contains targets
			targets = append(targets, key.(Target))
		}
	})

	return targets
}
