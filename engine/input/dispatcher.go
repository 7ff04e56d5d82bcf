package input

import (
	"slices"
	"sync"
)

// Dispatcher fans events out to subscribed handlers in subscription order.
// Sources embed it to implement Subscribe. The zero value is ready to use.
type Dispatcher struct {
	mu       sync.Mutex
	nextID   uint64
	handlers []handlerEntry
}

type handlerEntry struct {
	id uint64
	h  Handler
}

type subscription struct {
	once sync.Once
	d    *Dispatcher
	id   uint64
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.d.mu.Lock()
		defer s.d.mu.Unlock()
		s.d.handlers = slices.DeleteFunc(s.d.handlers, func(e handlerEntry) bool {
			return e.id == s.id
		})
	})
}

// Subscribe registers h and returns its subscription.
func (d *Dispatcher) Subscribe(h Handler) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	d.handlers = append(d.handlers, handlerEntry{id: id, h: h})
	return &subscription{d: d, id: id}
}

// Dispatch delivers ev to every handler. Handlers run on the caller's goroutine
// and may subscribe or unsubscribe while being called.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	handlers := slices.Clone(d.handlers)
	d.mu.Unlock()

	for _, e := range handlers {
		e.h(ev)
	}
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}
