package engine

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// relay re-publishes window input on the tick thread. Window callbacks fire
// on the OS thread running the message loop; the relay queues them and the
// tick loop pumps the queue before committing the controls.
type relay struct {
	input.Dispatcher

	queue         input.Queue
	width, height atomic.Int64
	subscription  input.Subscription
}

var _ input.Source = &relay{}

func (r *relay) attach(src input.Source) {
	r.resize(src.Width(), src.Height())
	r.subscription = src.Subscribe(r.queue.Push)
}

func (r *relay) resize(width, height int) {
	r.width.Store(int64(width))
	r.height.Store(int64(height))
}

func (r *relay) pump() int {
	return r.queue.Drain(r.Dispatch)
}

func (r *relay) Width() int {
	return int(r.width.Load())
}

func (r *relay) Height() int {
	return int(r.height.Load())
}
