package actions

import (
	"bytes"
	"testing"
	"weak"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/controlactions/control"
	"github.com/iotaledger/controlactions/testutil"
)

func TestRegistry_IsAssociatedWithControl(t *testing.T) {
	button := control.NewButton("registry")

	_, exists := lookupRegistry(button.Control)
	require.False(t, exists, "registry should be created lazily")

	Add(button, control.TouchUpInside, func() {})
	first, exists := lookupRegistry(button.Control)
	require.True(t, exists)

	Add(button, control.TouchUpOutside, func() {})
	second, _ := lookupRegistry(button.Control)
	require.Same(t, first, second, "all actions of a control share one registry")
	require.Equal(t, 2, first.Size())
	require.Same(t, button.Control, first.control.Value())
}

func TestRegistry_ListenersAreTargetsOfTheControl(t *testing.T) {
	button := control.NewButton("targets")

	handle := Add(button, control.TouchUpInside|control.TouchDown, func() {})

	registry, _ := lookupRegistry(button.Control)
	var listeners []*Listener
	registry.ForEach(func(listener *Listener) bool {
		listeners = append(listeners, listener)

		return true
	})
	require.Len(t, listeners, 1)
	require.Equal(t, handle.ID(), listeners[0].ID())
	require.Equal(t, control.TouchUpInside|control.TouchDown, listeners[0].Events())
	require.Equal(t, []control.Target{listeners[0]}, button.AllTargets())
	require.Equal(t, control.TouchUpInside|control.TouchDown, button.Events(listeners[0]))

	handle.Remove()
	require.Empty(t, button.AllTargets())
	require.Equal(t, 0, registry.Size())
	require.True(t, registry.IsEmpty())
}

func TestRegistry_UnregisterTwice(t *testing.T) {
	button := control.NewButton("unregister")
	registry := registryOf(button.Control)

	listener := registry.register(button.Control, control.TouchDown, func() {})
	require.True(t, registry.unregister(listener.id))
	require.False(t, registry.unregister(listener.id))
	require.True(t, listener.Removed())
}

func TestRegistry_IsCollectedWithControl(t *testing.T) {
	var registryRef weak.Pointer[Registry]
	var handle *Handle

	func() {
		button := control.NewButton("collected")
		handle = Add(button, control.TouchDown, func() {})

		registry, _ := lookupRegistry(button.Control)
		registryRef = weak.Make(registry)
	}()

	testutil.RequireCollected(t, registryRef)
	require.Nil(t, handle.registry.Value())

	handle.Remove()
	require.True(t, handle.Removed())
}

func TestListener_StateTransitions(t *testing.T) {
	button := control.NewButton("state")

	callCount := 0
	listener := newListener(1, control.TouchDown, func() { callCount++ })
	require.False(t, listener.isRegistered())

	// unregistered listeners ignore events
	listener.HandleEvent(control.TouchDown)
	require.Equal(t, 0, callCount)

	listener.register(button.Control)
	require.True(t, listener.isRegistered())
	button.SendActions(control.TouchDown)
	require.Equal(t, 1, callCount)

	require.True(t, listener.markRemoved())
	require.False(t, listener.markRemoved())
	require.False(t, listener.markRegistered(), "removed listeners can not be registered again")

	listener.HandleEvent(control.TouchDown)
	require.Equal(t, 1, callCount)
}

func TestListener_NilAction(t *testing.T) {
	button := control.NewButton("nil")

	handle := Add(button, control.TouchDown, nil)
	require.NotPanics(t, func() { button.SendActions(control.TouchDown) })
	require.Equal(t, 1, handle.TriggerCount())
}

func TestHookState_ClaimTrigger(t *testing.T) {
	state := newHookState(1, 2)

	triggerCount, claimed := state.claimTrigger()
	require.True(t, claimed)
	require.False(t, state.isLastTrigger(triggerCount))

	triggerCount, claimed = state.claimTrigger()
	require.True(t, claimed)
	require.True(t, state.isLastTrigger(triggerCount))

	_, claimed = state.claimTrigger()
	require.False(t, claimed)
	require.Equal(t, 2, state.TriggerCount())

	unlimited := newHookState(2, 0)
	for i := 0; i < 100; i++ {
		triggerCount, claimed = unlimited.claimTrigger()
		require.True(t, claimed)
		require.False(t, unlimited.isLastTrigger(triggerCount))
	}
}

func TestSetLogger(t *testing.T) {
	var buffer bytes.Buffer
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(&buffer), zapcore.DebugLevel)

	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(nil) })

	button := control.NewButton("logged")
	handle := Add(button, control.TouchUpInside, func() {})
	handle.Remove()

	output := buffer.String()
	require.Contains(t, output, "actions")
	require.Contains(t, output, "registry created")
	require.Contains(t, output, "added for touchUpInside")
	require.Regexp(t, `action \d+ removed`, output)
}
