package inview

// Observer receives instrumentation callbacks from a Tracker.
// Callbacks run on the goroutine that triggered them and must not block.
type Observer interface {
	// SignalReceived is called for every raw scroll or resize signal.
	SignalReceived()
	// DebounceCanceled is called when a signal replaces a pending timer.
	DebounceCanceled()
	// Evaluated is called after every evaluation with the computed state
	// and whether subscribers were notified of a change.
	Evaluated(inViewport, notified bool)
}

type nopObserver struct{}

func (nopObserver) SignalReceived()      {}
func (nopObserver) DebounceCanceled()    {}
func (nopObserver) Evaluated(bool, bool) {}
