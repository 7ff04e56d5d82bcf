package ebitensource

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

func collect(s *Source) *[]input.Event {
	var events []input.Event
	s.Subscribe(func(ev input.Event) { events = append(events, ev) })
	return &events
}

func eventTypes(events []input.Event) []input.EventType {
	types := make([]input.EventType, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

func TestApplyMouseDrag(t *testing.T) {
	s := New(800, 600)
	events := collect(s)

	down := snapshot{cursorX: 10, cursorY: 10}
	down.buttons[common.MouseButtonLeft] = true
	s.apply(down)

	drag := down
	drag.cursorX = 50
	s.apply(drag)
	s.apply(drag)

	up := drag
	up.buttons[common.MouseButtonLeft] = false
	s.apply(up)

	want := []input.EventType{input.EventPointerDown, input.EventPointerMove, input.EventPointerMove, input.EventPointerUp}
	got := eventTypes(*events)
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if (*events)[2].X != 50 {
		t.Errorf("move X = %v, want 50", (*events)[2].X)
	}
	if (*events)[3].Button != common.MouseButtonLeft {
		t.Errorf("up button = %d", (*events)[3].Button)
	}
}

func TestApplyWheelSign(t *testing.T) {
	s := New(800, 600)
	events := collect(s)

	s.apply(snapshot{wheelY: 1})
	if len(*events) != 1 || (*events)[0].DeltaY != -1 {
		t.Errorf("events = %+v, want one wheel with DeltaY -1", *events)
	}
}

func TestApplyTouches(t *testing.T) {
	s := New(800, 600)
	events := collect(s)

	one := []input.Touch{{ID: 1, X: 0, Y: 0}}
	two := []input.Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 100, Y: 0}}
	spread := []input.Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 200, Y: 0}}

	s.apply(snapshot{touches: one})
	s.apply(snapshot{touches: two})
	s.apply(snapshot{touches: spread})
	s.apply(snapshot{touches: spread})
	s.apply(snapshot{})

	want := []input.EventType{input.EventTouchStart, input.EventTouchStart, input.EventTouchMove, input.EventTouchEnd}
	got := eventTypes(*events)
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if n := len((*events)[1].Touches); n != 2 {
		t.Errorf("second touchstart carries %d touches", n)
	}
}

func TestApplyKeys(t *testing.T) {
	s := New(800, 600)
	events := collect(s)

	s.apply(snapshot{keys: []int{common.KeyUp}})
	s.apply(snapshot{})

	if len(*events) != 1 || (*events)[0].Key != common.KeyUp {
		t.Errorf("events = %+v, want a single up key", *events)
	}
}

func TestSetSize(t *testing.T) {
	s := New(800, 600)
	s.SetSize(320, 240)
	if s.Width() != 320 || s.Height() != 240 {
		t.Errorf("size = %dx%d", s.Width(), s.Height())
	}
}
