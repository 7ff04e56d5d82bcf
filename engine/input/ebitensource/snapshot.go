package ebitensource

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// snapshot is the input state sampled in one tick.
type snapshot struct {
	cursorX, cursorY float64
	buttons          [3]bool
	wheelY           float64
	touches          []input.Touch
	keys             []int
}

// apply dispatches the events that turn the previous snapshot into snap.
// Key presses go first, then buttons going down, cursor motion, buttons going
// up, the wheel, and finally touches.
func (s *Source) apply(snap snapshot) {
	prev := s.prev

	for _, key := range snap.keys {
		s.Dispatch(input.Event{Type: input.EventKeyDown, Key: key})
	}

	for b, down := range snap.buttons {
		if down && !prev.buttons[b] {
			s.Dispatch(input.Event{Type: input.EventPointerDown, Button: b, X: snap.cursorX, Y: snap.cursorY})
		}
	}

	if snap.cursorX != prev.cursorX || snap.cursorY != prev.cursorY {
		s.Dispatch(input.Event{Type: input.EventPointerMove, X: snap.cursorX, Y: snap.cursorY})
	}

	for b, down := range snap.buttons {
		if !down && prev.buttons[b] {
			s.Dispatch(input.Event{Type: input.EventPointerUp, Button: b, X: snap.cursorX, Y: snap.cursorY})
		}
	}

	// ebiten reports positive y for scrolling up; DOM deltaY is the opposite.
	if snap.wheelY != 0 {
		s.Dispatch(input.Event{Type: input.EventWheel, DeltaY: -snap.wheelY})
	}

	switch {
	case len(snap.touches) > len(prev.touches):
		s.Dispatch(input.Event{Type: input.EventTouchStart, Touches: slices.Clone(snap.touches)})
	case len(snap.touches) < len(prev.touches):
		s.Dispatch(input.Event{Type: input.EventTouchEnd, Touches: slices.Clone(snap.touches)})
	case len(snap.touches) > 0 && !slices.Equal(snap.touches, prev.touches):
		s.Dispatch(input.Event{Type: input.EventTouchMove, Touches: slices.Clone(snap.touches)})
	}

	snap.keys = nil
	s.prev = snap
}
