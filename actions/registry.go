package actions

import (
	"weak"

	"github.com/iotaledger/controlactions/control"
	"github.com/iotaledger/controlactions/ds/orderedmap"
	"github.com/iotaledger/controlactions/runtime/syncutils"
)

// Registry owns the Listeners of a single control. It is stored as an associated object of its control, so it lives
// exactly as long as the control does.
type Registry struct {
	// control is a weak back-reference, the control owns the Registry and not the other way around.
	control weak.Pointer[control.Control]

	// listeners contains the live Listeners keyed by their id (in the order they were added).
	listeners *orderedmap.OrderedMap[uint64, *Listener]

	mutex syncutils.Mutex
}

// newRegistry creates a new empty Registry for the given control.
func newRegistry(c *control.Control) *Registry {
	return &Registry{
		control:   weak.Make(c),
		listeners: orderedmap.New[uint64, *Listener](),
	}
}

// Size returns the number of live Listeners.
func (r *Registry) Size() int {
	return r.listeners.Size()
}

// IsEmpty returns true if the Registry does not contain any live Listeners.
func (r *Registry) IsEmpty() bool {
	return r.listeners.IsEmpty()
}

// ForEach iterates over the live Listeners in the order they were added.
func (r *Registry) ForEach(consumer func(listener *Listener) bool) {
	r.listeners.ForEach(func(_ uint64, listener *Listener) bool {
		return consumer(listener)
	})
}

// register creates a new Listener for the action, adds it to the control and returns it.
func (r *Registry) register(c *control.Control, events control.Event, action func(), opts ...Option) *Listener {
	listener := newListener(idCounter.Inc(), events, action, opts...)
	listener.handle = newHandle(r, listener.hookState)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.listeners.Set(listener.id, listener)
	listener.register(c)

	log().LogDebugf("action %d added for %s", listener.id, events)

	return listener
}

// unregister removes the Listener with the given id from the Registry and from the control (if it is still alive).
// It returns false if the Listener was removed before.
func (r *Registry) unregister(id uint64) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	listener, exists := r.listeners.Delete(id)
	if !exists {
		return false
	}

	listener.markRemoved()

	c := r.control.Value()
	if c == nil {
		log().LogDebugf("action %d removed, control was collected", id)

		return true
	}

	listener.deregister(c)

	log().LogDebugf("action %d removed", id)

	return true
}

// unregisterAll removes all Listeners and returns how many were removed.
func (r *Registry) unregisterAll() (removed int) {
	for _, id := range r.listeners.Keys() {
		if r.unregister(id) {
			removed++
		}
	}

	return removed
}
