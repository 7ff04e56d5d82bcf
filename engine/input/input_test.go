package input

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestEventTypeText(t *testing.T) {
	for i := EventPointerDown; i <= EventKeyDown; i++ {
		text, err := i.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error: %v", i, err)
		}
		var back EventType
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != i {
			t.Errorf("round trip of %v = %v", i, back)
		}
	}

	if _, err := ParseEventType("pinch"); err == nil {
		t.Error("ParseEventType(\"pinch\") returned nil error")
	}
	if got, err := ParseEventType(" TouchStart "); err != nil || got != EventTouchStart {
		t.Errorf("ParseEventType(\" TouchStart \") = %v, %v", got, err)
	}
	if got := EventType(42).String(); got != "EventType(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestEventJSON(t *testing.T) {
	raw := `{"type":"touchmove","touches":[{"id":1,"x":10,"y":20},{"id":2,"x":30,"y":40}]}`
	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if ev.Type != EventTouchMove {
		t.Errorf("Type = %v, want touchmove", ev.Type)
	}
	if len(ev.Touches) != 2 || ev.Touches[1].X != 30 {
		t.Errorf("Touches = %+v", ev.Touches)
	}
}

func TestDispatcherOrderAndUnsubscribe(t *testing.T) {
	var d Dispatcher
	var got []int

	s1 := d.Subscribe(func(Event) { got = append(got, 1) })
	d.Subscribe(func(Event) { got = append(got, 2) })

	d.Dispatch(Event{})
	s1.Unsubscribe()
	s1.Unsubscribe()
	d.Dispatch(Event{})

	want := []int{1, 2, 2}
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls = %v, want %v", got, want)
		}
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestQueueDrain(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Push(Event{Type: EventKeyDown, Key: i})
		}(i)
	}
	wg.Wait()

	if q.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", q.Len())
	}
	seen := make(map[int]bool)
	n := q.Drain(func(ev Event) { seen[ev.Key] = true })
	if n != 50 || len(seen) != 50 {
		t.Errorf("Drain delivered %d events (%d distinct), want 50", n, len(seen))
	}
	if q.Drain(func(Event) {}) != 0 {
		t.Error("second Drain delivered events")
	}

	q.Push(Event{Type: EventWheel, DeltaY: -1})
	var last Event
	if q.Drain(func(ev Event) { last = ev }) != 1 || last.DeltaY != -1 {
		t.Errorf("Drain after reuse delivered %+v", last)
	}
}
