package input

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/wayfinder/engine/monitoring"
)

const defaultQueueCapacity = 256

type queue struct {
	events  chan Event
	dropped atomic.Uint64
	name    string
}

// Queue carries input events from producer goroutines (window callbacks,
// terminal readers) to the single consumer that ticks the scene.
type Queue interface {
	// Push enqueues an event without blocking.
	// When the queue is full the event is dropped and counted.
	//
	// Parameters:
	//   - e: the event to enqueue
	//
	// Returns:
	//   - bool: false if the event was dropped
	Push(e Event) bool

	// Drain removes every queued event and passes each to fn in arrival order.
	// Events pushed while draining are left for the next call.
	//
	// Parameters:
	//   - fn: called once per event
	//
	// Returns:
	//   - int: the number of events delivered
	Drain(fn func(Event)) int

	// Len returns the number of events currently queued.
	//
	// Returns:
	//   - int: queued event count
	Len() int

	// Dropped returns how many events were discarded because the queue was full.
	//
	// Returns:
	//   - uint64: total dropped events
	Dropped() uint64
}

var _ Queue = &queue{}

// NewQueue creates an input Queue backed by a buffered channel.
//
// Parameters:
//   - options: functional options to configure the queue
//
// Returns:
//   - Queue: the newly created queue
func NewQueue(options ...QueueBuilderOption) Queue {
	cfg := queueConfig{capacity: defaultQueueCapacity, name: "input"}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.capacity <= 0 {
		cfg.capacity = defaultQueueCapacity
	}
	return &queue{
		events: make(chan Event, cfg.capacity),
		name:   cfg.name,
	}
}

func (q *queue) Push(e Event) bool {
	select {
	case q.events <- e:
		return true
	default:
		if q.dropped.Add(1) == 1 {
			monitoring.Logf("[Input] %s queue full (cap %d), dropping %s events", q.name, cap(q.events), e.Kind)
		}
		return false
	}
}

func (q *queue) Drain(fn func(Event)) int {
	n := len(q.events)
	for i := range n {
		select {
		case e := <-q.events:
			fn(e)
		default:
			return i
		}
	}
	return n
}

func (q *queue) Len() int {
	return len(q.events)
}

func (q *queue) Dropped() uint64 {
	return q.dropped.Load()
}
