package actions

import (
	"go.uber.org/atomic"
)

const (
	// stateUnregistered is the state of a Listener that was created but not added to its control yet.
	stateUnregistered uint32 = iota

	// stateRegistered is the state of a Listener that receives the events of its control.
	stateRegistered

	// stateRemoved is the final state of a Listener that was removed.
	stateRemoved
)

// hookState is the part of a Listener that is shared with its Handle.
//
// It must never reference the action or the control, so holding a Handle never keeps either of them alive.
type hookState struct {
	id              uint64
	state           atomic.Uint32
	triggerCount    atomic.Uint64
	maxTriggerCount uint64
}

// newHookState creates a new hookState in the unregistered state.
func newHookState(id uint64, maxTriggerCount uint64) *hookState {
	return &hookState{
		id:              id,
		maxTriggerCount: maxTriggerCount,
	}
}

// ID returns the unique identifier of the registered action.
func (h *hookState) ID() uint64 {
	return h.id
}

// WasTriggered returns true if the action was triggered at least once.
func (h *hookState) WasTriggered() bool {
	return h.triggerCount.Load() > 0
}

// TriggerCount returns the number of times the action was triggered.
func (h *hookState) TriggerCount() int {
	return int(h.triggerCount.Load())
}

// MaxTriggerCount returns the maximum number of times the action can be triggered (0 means unlimited).
func (h *hookState) MaxTriggerCount() int {
	return int(h.maxTriggerCount)
}

// Removed returns true if the action was removed.
func (h *hookState) Removed() bool {
	return h.state.Load() == stateRemoved
}

// isRegistered returns true if the action currently receives events.
func (h *hookState) isRegistered() bool {
	return h.state.Load() == stateRegistered
}

// markRegistered moves the state from unregistered to registered.
func (h *hookState) markRegistered() bool {
	return h.state.CAS(stateUnregistered, stateRegistered)
}

// markRemoved moves the state to its final value and returns false if it was removed before.
func (h *hookState) markRemoved() bool {
	return h.state.Swap(stateRemoved) != stateRemoved
}

// claimTrigger counts a trigger unless the max trigger count was reached already.
func (h *hookState) claimTrigger() (triggerCount uint64, claimed bool) {
	for {
		current := h.triggerCount.Load()
		if h.maxTriggerCount != 0 && current >= h.maxTriggerCount {
			return current, false
		}

		if h.triggerCount.CAS(current, current+1) {
			return current + 1, true
		}
	}
}

// isLastTrigger returns true if the given trigger count exhausts the max trigger count.
func (h *hookState) isLastTrigger(triggerCount uint64) bool {
	return h.maxTriggerCount != 0 && triggerCount == h.maxTriggerCount
}
