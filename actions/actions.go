// Package actions lets controls run closures for their events instead of requiring a target object per action.
//
// Every call to Add returns a Handle that removes exactly that action again:
//
//	handle := actions.Add(button, control.TouchUpInside, func() { submitted++ })
//	...
//	handle.Remove()
//
// The Listeners of a control are owned by a Registry that is attached to the control itself, so dropping the last
// reference to a control releases all of its actions. Handles only hold weak references and never keep a control
// alive.
package actions

import (
	"go.uber.org/atomic"

	"github.com/iotaledger/controlactions/control"
	"github.com/iotaledger/controlactions/logger"
)

var (
	// registryKey is the key the Registry is associated with its control under.
	registryKey = control.NewAssociationKey("actions.registry")

	// idCounter is used to assign a unique ID to each Listener.
	idCounter = atomic.NewUint64(0)

	// wrappedLogger holds the *logger.WrappedLogger used by the package.
	wrappedLogger atomic.Value
)

func init() {
	wrappedLogger.Store(logger.NewWrappedLogger(nil))
}

// Add registers the action for the given events of the control and returns the Handle that removes it again.
//
// The action runs synchronously, exactly once for every matching event, until it is removed. Adding the same action
// more than once creates independent registrations. An empty event mask can never match, so the returned Handle is
// removed already and nothing is added to the control.
func Add(c control.Interface, events control.Event, action func(), opts ...Option) *Handle {
	if events == 0 {
		log().LogDebug("action with empty event mask ignored")

		return newDetachedHandle(newListener(idCounter.Inc(), events, action, opts...).hookState)
	}

	base := c.ControlBase()

	return registryOf(base).register(base, events, action, opts...).handle
}

// RemoveAll removes all actions of the control and returns how many were removed.
func RemoveAll(c control.Interface) int {
	registry, exists := lookupRegistry(c.ControlBase())
	if !exists || registry.IsEmpty() {
		return 0
	}

	return registry.unregisterAll()
}

// Count returns the number of actions that are currently registered for the control.
func Count(c control.Interface) int {
	registry, exists := lookupRegistry(c.ControlBase())
	if !exists {
		return 0
	}

	return registry.Size()
}

// SetLogger sets the logger the package emits its debug messages to (nil disables logging).
func SetLogger(l *logger.Logger) {
	if l != nil {
		l = l.Named("actions")
	}

	wrappedLogger.Store(logger.NewWrappedLogger(l))
}

// registryOf returns the Registry of the control and creates it if it does not exist yet.
func registryOf(c *control.Control) *Registry {
	object, created := c.AssociatedObjectOrInit(registryKey, func() any {
		return newRegistry(c)
	})

	if created {
		log().LogDebug("registry created")
	}

	//nolint:forcetypeassert // only Registries are stored under the registryKey
	return object.(*Registry)
}

// lookupRegistry returns the Registry of the control if it exists.
func lookupRegistry(c *control.Control) (*Registry, bool) {
	object, exists := c.AssociatedObject(registryKey)
	if !exists {
		return nil, false
	}

	//nolint:forcetypeassert // only Registries are stored under the registryKey
	return object.(*Registry), true
}

func log() *logger.WrappedLogger {
	//nolint:forcetypeassert // only WrappedLoggers are stored
	return wrappedLogger.Load().(*logger.WrappedLogger)
}
