package actions

import (
	"github.com/iotaledger/controlactions/control"
	"github.com/iotaledger/controlactions/runtime/options"
)

// Option is a function that configures the trigger settings of a registered action.
type Option = options.Option[triggerSettings]

// WithMaxTriggerCount sets the maximum number of times an action shall be triggered (0 means unlimited). The action
// is removed automatically after it was triggered for the last time.
func WithMaxTriggerCount(maxTriggerCount uint64) Option {
	return func(triggerSettings *triggerSettings) {
		triggerSettings.maxTriggerCount = maxTriggerCount
	}
}

// WithPreTriggerFunc sets a function that is synchronously called with the concrete event before the action runs.
func WithPreTriggerFunc(preTriggerFunc func(event control.Event)) Option {
	return func(triggerSettings *triggerSettings) {
		triggerSettings.preTriggerFunc = preTriggerFunc
	}
}

// triggerSettings contains the settings that can be configured when an action is added.
type triggerSettings struct {
	maxTriggerCount uint64
	preTriggerFunc  func(event control.Event)
}
