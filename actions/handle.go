package actions

import (
	"weak"
)

// Handle is returned for every added action and removes exactly that action.
type Handle struct {
	*hookState

	registry weak.Pointer[Registry]
}

// newHandle creates a Handle that removes the action with the given state from the given Registry.
func newHandle(registry *Registry, hookState *hookState) *Handle {
	return &Handle{
		hookState: hookState,
		registry:  weak.Make(registry),
	}
}

// newDetachedHandle creates a removed Handle for an action that was never added to a control.
func newDetachedHandle(hookState *hookState) *Handle {
	hookState.markRemoved()

	return &Handle{hookState: hookState}
}

// Remove removes the action, so it is never triggered again.
//
// Calling Remove more than once, or after the control was garbage collected, has no effect.
func (h *Handle) Remove() {
	if h == nil {
		return
	}

	registry := h.registry.Value()
	if registry == nil {
		if h.markRemoved() {
			log().LogDebugf("action %d: control was collected, nothing to deregister", h.id)
		}

		return
	}

	registry.unregister(h.id)
}
