// Package input defines the decoded gesture events consumed by camera controls
// and the Source interface implemented by every event producer (GLFW window,
// ebiten game loop, websocket clients).
package input

import (
	"fmt"
	"strings"
)

// EventType identifies the kind of a decoded input event.
type EventType int

const (
	EventPointerDown EventType = iota
	EventPointerMove
	EventPointerUp
	EventWheel
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventKeyDown
)

var eventTypeNames = [...]string{
	EventPointerDown: "pointerdown",
	EventPointerMove: "pointermove",
	EventPointerUp:   "pointerup",
	EventWheel:       "wheel",
	EventTouchStart:  "touchstart",
	EventTouchMove:   "touchmove",
	EventTouchEnd:    "touchend",
	EventKeyDown:     "keydown",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return fmt.Sprintf("EventType(%d)", int(t))
	}
	return eventTypeNames[t]
}

// ParseEventType resolves an event name (case-insensitive) such as "pointerdown".
//
// Parameters:
//   - name: the event name
//
// Returns:
//   - EventType: the parsed type
//   - error: error if the name is unknown
func ParseEventType(name string) (EventType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range eventTypeNames {
		if n == name {
			return EventType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t EventType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return nil, fmt.Errorf("invalid event type %d", int(t))
	}
	return []byte(eventTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EventType) UnmarshalText(text []byte) error {
	parsed, err := ParseEventType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Touch is one active touch point, in surface pixels.
type Touch struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Event is a decoded gesture sample. Which fields are meaningful depends on Type:
// pointer events use Button, X and Y; wheel events use DeltaY (DOM sign
// convention: negative scrolls up); touch events carry every active touch point
// in Touches; key events use Key (GLFW key codes, see common.Key*).
type Event struct {
	Type    EventType `json:"type"`
	Button  int       `json:"button,omitempty"`
	X       float64   `json:"x,omitempty"`
	Y       float64   `json:"y,omitempty"`
	DeltaY  float64   `json:"deltaY,omitempty"`
	Touches []Touch   `json:"touches,omitempty"`
	Key     int       `json:"key,omitempty"`
}

// Handler receives decoded events.
type Handler func(ev Event)

// Subscription is a registered Handler. Unsubscribe is safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// Source is a producer of decoded input events bound to a drawing surface.
type Source interface {
	// Subscribe registers a handler for every event the source produces.
	//
	// Parameters:
	//   - h: the handler to register
	//
	// Returns:
	//   - Subscription: handle used to detach the handler
	Subscribe(h Handler) Subscription

	// Width returns the surface width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the surface height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}
