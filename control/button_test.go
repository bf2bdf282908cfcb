package control

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButton_Touch(t *testing.T) {
	button := NewButton("OK")
	require.Equal(t, "OK", button.Title())
	require.Same(t, button.Control, button.ControlBase())

	target := &recordingTarget{}
	button.AddTarget(target, AllEvents)

	button.Tap()
	require.Equal(t, []Event{TouchDown, TouchUpInside, PrimaryActionTriggered}, target.received)

	target.received = nil
	button.Touch(false)
	require.Equal(t, []Event{TouchDown, TouchDragExit, TouchUpOutside}, target.received)

	target.received = nil
	button.Cancel()
	require.Equal(t, []Event{TouchDown, TouchCancel}, target.received)
}

func TestButton_Disabled(t *testing.T) {
	button := NewButton("OK")
	target := &recordingTarget{}
	button.AddTarget(target, AllEvents)

	button.SetEnabled(false)
	require.False(t, button.IsEnabled())

	button.Tap()
	button.Cancel()
	require.Empty(t, target.received)

	// programmatic dispatch is not affected by the enabled state
	button.SendActions(ValueChanged)
	require.Equal(t, []Event{ValueChanged}, target.received)

	button.SetEnabled(true)
	button.Tap()
	require.Len(t, target.received, 4)
}
