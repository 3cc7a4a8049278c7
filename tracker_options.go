package inview

import (
	"fmt"
	"time"
)

// DefaultDebounce is the quiet period after the last scroll or resize
// signal before the tracker re-evaluates.
const DefaultDebounce = 100 * time.Millisecond

// TrackerOption is a functional option for configuring a Tracker.
type TrackerOption func(*Tracker) error

// WithDebounce sets the quiet period between the last signal and the
// evaluation it triggers. Default is 100ms. Must be positive.
func WithDebounce(d time.Duration) TrackerOption {
	return func(t *Tracker) error {
		if d <= 0 {
			return fmt.Errorf("debounce must be positive, got %s", d)
		}
		t.debounce = d
		return nil
	}
}

// WithClock sets the clock used to schedule debounce timers.
// Use a FakeClock in tests.
func WithClock(c Clock) TrackerOption {
	return func(t *Tracker) error {
		if c == nil {
			return fmt.Errorf("clock must not be nil")
		}
		t.clock = c
		return nil
	}
}

// WithEventQueue posts debounced evaluations to queue instead of running
// them on the timer goroutine. The host drains the queue on its own event
// loop, so evaluations and notifications happen there.
func WithEventQueue(queue chan<- func()) TrackerOption {
	return func(t *Tracker) error {
		if queue == nil {
			return fmt.Errorf("event queue must not be nil")
		}
		t.queue = queue
		return nil
	}
}

// WithObserver installs instrumentation hooks.
func WithObserver(o Observer) TrackerOption {
	return func(t *Tracker) error {
		if o == nil {
			return fmt.Errorf("observer must not be nil")
		}
		t.observer = o
		return nil
	}
}

// WithNotifyInitial controls whether the evaluation performed by
// Initialize notifies subscribers. Default is false: the initial state is
// read synchronously, not delivered as a change.
func WithNotifyInitial(notify bool) TrackerOption {
	return func(t *Tracker) error {
		t.notifyInitial = notify
		return nil
	}
}
