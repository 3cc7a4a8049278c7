package inview

import "time"

// Timer is a scheduled callback that can be canceled.
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was already stopped.
	Stop() bool
}

// Clock schedules debounce callbacks.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// wallClock is the default Clock backed by the time package.
type wallClock struct{}

// AfterFunc implements Clock.
func (wallClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// WallClock returns the Clock backed by real time.
func WallClock() Clock {
	return wallClock{}
}
