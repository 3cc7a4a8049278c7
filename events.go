package inview

import (
	"sync"
	"sync/atomic"
)

// Unsubscribe is a handle to remove a listener. Calling it more than once
// is safe.
type Unsubscribe func()

// listener represents a registered callback.
type listener[T any] struct {
	fn     func(T)
	active atomic.Bool
}

// Events is a simple event bus. It is generic over the event type T.
// Listeners are called synchronously, in registration order, on the
// goroutine that calls Emit.
type Events[T any] struct {
	mu        sync.Mutex
	listeners []*listener[T]
}

// NewEvents creates a new event bus.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Emit sends an event to all active listeners.
func (e *Events[T]) Emit(event T) {
	e.mu.Lock()
	// Drop listeners that were unsubscribed since the last emit
	active := make([]*listener[T], 0, len(e.listeners))
	for _, l := range e.listeners {
		if l.active.Load() {
			active = append(active, l)
		}
	}
	e.listeners = active
	e.mu.Unlock()

	for _, l := range active {
		// A listener removed by an earlier listener in this emit is skipped.
		if l.active.Load() {
			l.fn(event)
		}
	}
}

// Subscribe adds a listener for events and returns a handle to remove it.
func (e *Events[T]) Subscribe(fn func(T)) Unsubscribe {
	l := &listener[T]{fn: fn}
	l.active.Store(true)

	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()

	return func() {
		l.active.Store(false)
	}
}

// Len returns the number of active listeners.
func (e *Events[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, l := range e.listeners {
		if l.active.Load() {
			n++
		}
	}
	return n
}
