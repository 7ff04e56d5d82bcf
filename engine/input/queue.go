package input

import "sync"

// Queue buffers events produced on other goroutines (network readers, OS
// callbacks on foreign threads) until the render thread drains them. Camera
// controls are single-threaded; a Queue is the only hand-off point.
type Queue struct {
	mu     sync.Mutex
	events []Event
	spare  []Event
}

// Push appends ev. Safe for concurrent use.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Drain delivers every pending event to h, in push order, on the caller's goroutine.
// Only one goroutine may drain a Queue.
//
// Parameters:
//   - h: the handler receiving each event
//
// Returns:
//   - int: number of events delivered
func (q *Queue) Drain(h Handler) int {
	q.mu.Lock()
	pending := q.events
	q.events = q.spare[:0]
	q.mu.Unlock()

	for _, ev := range pending {
		h(ev)
	}

	q.mu.Lock()
	clear(pending)
	q.spare = pending[:0]
	q.mu.Unlock()
	return len(pending)
}
