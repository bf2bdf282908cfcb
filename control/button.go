package control

// Button is a control that reacts to taps.
type Button struct {
	*Control

	title string
}

// NewButton creates a new enabled Button with the given title.
func NewButton(title string) *Button {
	return &Button{
		Control: New(),
		title:   title,
	}
}

// Title returns the title of the button.
func (b *Button) Title() string {
	return b.title
}

// Tap simulates a finger that touches the button and is lifted inside of its bounds.
func (b *Button) Tap() {
	b.Touch(true)
}

// Touch simulates a finger that touches the button and is lifted inside or outside of its bounds. Disabled buttons
// ignore touches.
func (b *Button) Touch(releasedInside bool) {
	if !b.IsEnabled() {
		return
	}

	b.SendActions(TouchDown)

	if !releasedInside {
		b.SendActions(TouchDragExit)
		b.SendActions(TouchUpOutside)

		return
	}

	b.SendActions(TouchUpInside)
	b.SendActions(PrimaryActionTriggered)
}

// Cancel simulates a touch that is cancelled by the system after it began.
func (b *Button) Cancel() {
	if !b.IsEnabled() {
		return
	}

	b.SendActions(TouchDown)
	b.SendActions(TouchCancel)
}
