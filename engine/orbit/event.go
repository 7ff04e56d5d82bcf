package orbit

import (
	"slices"

	"github.com/google/uuid"
)

// EventType is the phase of a change notification.
type EventType int

const (
	// EventStart is emitted when a gesture session begins.
	EventStart EventType = iota
	// EventChange is emitted by every commit that moved the camera.
	EventChange
	// EventEnd is emitted when a gesture session ends.
	EventEnd
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventChange:
		return "change"
	case EventEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Event is a change notification. Session identifies the interaction that
// produced it; changes caused by damping or auto-rotation outside a session
// carry uuid.Nil.
type Event struct {
	Type    EventType
	Session uuid.UUID
}

// Listener receives change notifications.
type Listener func(ev Event)

type listenerEntry struct {
	id uint64
	fn Listener
}

// listeners is a small ordered registry owned by one Controls instance.
type listeners struct {
	nextID  uint64
	entries []listenerEntry
}

func (l *listeners) add(fn Listener) func() {
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		l.entries = slices.DeleteFunc(l.entries, func(e listenerEntry) bool { return e.id == id })
	}
}

func (l *listeners) emit(ev Event) {
	for _, e := range slices.Clone(l.entries) {
		e.fn(ev)
	}
}
