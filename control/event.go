package control

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/iotaledger/controlactions/ierrors"
)

// ErrUnknownEvent is returned when an event name can not be parsed.
var ErrUnknownEvent = ierrors.New("unknown control event")

// Event is a bit mask of interaction events that can occur on a Control.
type Event uint64

const (
	TouchDown Event = 1 << iota
	TouchDownRepeat
	TouchDragInside
	TouchDragOutside
	TouchDragEnter
	TouchDragExit
	TouchUpInside
	TouchUpOutside
	TouchCancel
)

const (
	ValueChanged Event = 1 << (iota + 12)
	PrimaryActionTriggered
	MenuActionTriggered
)

const (
	EditingDidBegin Event = 1 << (iota + 16)
	EditingChanged
	EditingDidEnd
	EditingDidEndOnExit
)

const (
	// AllTouchEvents contains all touch related events.
	AllTouchEvents Event = 0x00000FFF

	// AllEditingEvents contains all editing related events.
	AllEditingEvents Event = 0x000F0000

	// ApplicationReserved is the range of events that is reserved for application specific use.
	ApplicationReserved Event = 0x0F000000

	// AllEvents contains every event.
	AllEvents Event = 0xFFFFFFFF
)

// eventNames maps the single bit events to their names.
var eventNames = map[Event]string{
	TouchDown:              "touchDown",
	TouchDownRepeat:        "touchDownRepeat",
	TouchDragInside:        "touchDragInside",
	TouchDragOutside:       "touchDragOutside",
	TouchDragEnter:         "touchDragEnter",
	TouchDragExit:          "touchDragExit",
	TouchUpInside:          "touchUpInside",
	TouchUpOutside:         "touchUpOutside",
	TouchCancel:            "touchCancel",
	ValueChanged:           "valueChanged",
	PrimaryActionTriggered: "primaryActionTriggered",
	MenuActionTriggered:    "menuActionTriggered",
	EditingDidBegin:        "editingDidBegin",
	EditingChanged:         "editingChanged",
	EditingDidEnd:          "editingDidEnd",
	EditingDidEndOnExit:    "editingDidEndOnExit",
}

// groupNames maps the event groups to their names (they are only used for parsing).
var groupNames = map[string]Event{
	"allTouchEvents":      AllTouchEvents,
	"allEditingEvents":    AllEditingEvents,
	"applicationReserved": ApplicationReserved,
	"allEvents":           AllEvents,
}

// Has returns true if the mask shares at least one event with the given events.
func (e Event) Has(events Event) bool {
	return e&events != 0
}

// With returns the mask extended by the given events.
func (e Event) With(events Event) Event {
	return e | events
}

// Without returns the mask with the given events cleared.
func (e Event) Without(events Event) Event {
	return e &^ events
}

// String returns the names of the events in the mask joined by "|".
func (e Event) String() string {
	if e == 0 {
		return "none"
	}

	names := make([]string, 0, bits.OnesCount64(uint64(e)))
	for remaining := e; remaining != 0; {
		bit := Event(1) << bits.TrailingZeros64(uint64(remaining))
		remaining &^= bit

		if name, exists := eventNames[bit]; exists {
			names = append(names, name)
		} else {
			names = append(names, "0x"+strconv.FormatUint(uint64(bit), 16))
		}
	}

	return strings.Join(names, "|")
}

// ParseEvent parses a single event or event group name (case-insensitive). Names can be combined with "|".
func ParseEvent(name string) (Event, error) {
	var parsed Event
	for _, part := range strings.Split(name, "|") {
		event, err := parseSingleEvent(strings.TrimSpace(part))
		if err != nil {
			return 0, err
		}

		parsed |= event
	}

	return parsed, nil
}

// ParseEvents parses all given names and returns the combined mask.
func ParseEvents(names []string) (Event, error) {
	var parsed Event
	for _, name := range names {
		event, err := ParseEvent(name)
		if err != nil {
			return 0, err
		}

		parsed |= event
	}

	return parsed, nil
}

func parseSingleEvent(name string) (Event, error) {
	for event, eventName := range eventNames {
		if strings.EqualFold(eventName, name) {
			return event, nil
		}
	}

	for groupName, group := range groupNames {
		if strings.EqualFold(groupName, name) {
			return group, nil
		}
	}

	return 0, ierrors.WithMessagef(ErrUnknownEvent, "%q", name)
}
