package event

import "sync/atomic"

// EventQueue is a lock-free multi-producer single-consumer event ring.
// Producers claim a slot by CAS on the tail and mark it published after
// the write, so the consumer never observes a half-written event. When
// the ring is lapped the oldest unread events are dropped rather than
// blocking a producer mid-frame.
//
// The single consumer is the frame loop, which drains the ring once per
// frame before updaters run
type EventQueue struct {
	events    []GameEvent
	published []atomic.Bool // true = slot fully written
	mask      uint64
	head      atomic.Uint64 // read index
	tail      atomic.Uint64 // write index
}

// NewEventQueue allocates a ring holding at least capacity events,
// rounded up to a power of two so indexing is a mask instead of a
// modulo
func NewEventQueue(capacity int) *EventQueue {
	if capacity < 1 {
		capacity = 1
	}
	size := uint64(1)
	for size < uint64(capacity) {
		size <<= 1
	}
	return &EventQueue{
		events:    make([]GameEvent, size),
		published: make([]atomic.Bool, size),
		mask:      size - 1,
	}
}

func (eq *EventQueue) capacity() uint64 { return eq.mask + 1 }

// Push appends an event. Safe from any goroutine
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		if !eq.tail.CompareAndSwap(currentTail, currentTail+1) {
			continue
		}

		idx := currentTail & eq.mask
		eq.events[idx] = event
		eq.published[idx].Store(true) // MUST be after the write

		// Advance head past events this write just lapped
		currentHead := eq.head.Load()
		if currentTail+1-currentHead > eq.capacity() {
			eq.head.CompareAndSwap(currentHead, currentTail+1-eq.capacity())
		}
		return
	}
}

// Consume returns all pending events in FIFO order and advances the
// head. Single-consumer design; stops early at an unpublished slot so
// an in-flight Push is picked up next frame instead of read partially
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > eq.capacity() {
			available = eq.capacity()
			currentHead = currentTail - eq.capacity()
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & eq.mask

			if !eq.published[idx].Load() {
				break // writer incomplete
			}

			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
