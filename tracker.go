package inview

import (
	"sync"
	"time"

	"github.com/grindlemire/go-inview/internal/debug"
)

// Tracker maintains the in-viewport state of one element and notifies
// subscribers when it flips.
//
// Lifecycle:
//
//	t, err := inview.NewTracker()
//	t.OnChange(func(visible bool) { ... })
//	t.Initialize(el, win)   // subscribes to win, evaluates once
//	...
//	t.Teardown()            // no evaluations or notifications after this
//
// Scroll and resize signals restart a single debounce timer; only the last
// signal in a burst triggers an evaluation, using the metrics it carried.
type Tracker struct {
	debounce      time.Duration
	clock         Clock
	queue         chan<- func()
	observer      Observer
	notifyInitial bool

	// evalMu serializes evaluations so notifications follow evaluation order.
	evalMu sync.Mutex

	mu          sync.Mutex
	element     Element
	window      Window
	unsubscribe Unsubscribe
	timer       Timer
	generation  uint64 // bumped on every signal and on teardown; stale timers compare against it
	inViewport  bool
	tornDown    bool
	stopCh      chan struct{}

	changes *Events[bool]
}

// NewTracker creates a tracker. It does nothing until Initialize is called.
func NewTracker(opts ...TrackerOption) (*Tracker, error) {
	t := &Tracker{
		debounce: DefaultDebounce,
		clock:    WallClock(),
		observer: nopObserver{},
		stopCh:   make(chan struct{}),
		changes:  NewEvents[bool](),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Initialize binds the tracker to el, subscribes to win's scroll and resize
// signal, and evaluates once with the current metrics. Calling it again
// re-binds: the previous subscription and any pending timer are released.
// It is a no-op after Teardown.
func (t *Tracker) Initialize(el Element, win Window) {
	t.mu.Lock()
	if t.tornDown {
		t.mu.Unlock()
		return
	}
	timer, unsub := t.releaseLocked()
	t.element = el
	t.window = win
	t.unsubscribe = win.Subscribe(func(m Metrics) {
		t.HandleViewportSignal(m.Height, m.Width, m.ScrollX, m.ScrollY)
	})
	t.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if unsub != nil {
		unsub()
	}

	m := win.Metrics()
	debug.Log("Tracker.Initialize: metrics %s", m)
	t.evaluate(m, t.notifyInitial)
}

// Evaluate recomputes the state from the element's live geometry and m.
// Subscribers are notified only if the state flips. It is a no-op before
// Initialize and after Teardown.
func (t *Tracker) Evaluate(m Metrics) {
	t.evaluate(m, true)
}

// Refresh evaluates immediately with the window's current metrics. Hosts
// call it when the element moves or resizes without a window signal.
func (t *Tracker) Refresh() {
	t.mu.Lock()
	win := t.window
	t.mu.Unlock()
	if win == nil {
		return
	}
	t.evaluate(win.Metrics(), true)
}

func (t *Tracker) evaluate(m Metrics, notify bool) {
	t.evalMu.Lock()
	defer t.evalMu.Unlock()

	t.mu.Lock()
	el := t.element
	if t.tornDown || el == nil {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	rect := el.Rect()
	in := Visible(rect, m)

	t.mu.Lock()
	if t.tornDown {
		t.mu.Unlock()
		return
	}
	changed := in != t.inViewport
	t.inViewport = in
	t.mu.Unlock()

	notified := changed && notify
	t.observer.Evaluated(in, notified)
	if !notified {
		return
	}
	debug.Log("Tracker.evaluate: %+v in %s -> %v", rect, m, in)
	t.changes.Emit(in)
}

// HandleViewportSignal is the entry point for every raw scroll or resize
// signal. It restarts the debounce timer; the evaluation runs once the
// signals have been quiet for the debounce period, with these metrics.
// Signals after Teardown are ignored.
func (t *Tracker) HandleViewportSignal(height, width, scrollX, scrollY int) {
	m := Metrics{Width: width, Height: height, ScrollX: scrollX, ScrollY: scrollY}

	t.mu.Lock()
	if t.tornDown {
		t.mu.Unlock()
		return
	}
	canceled := false
	if t.timer != nil {
		canceled = t.timer.Stop()
	}
	t.generation++
	gen := t.generation
	t.timer = t.clock.AfterFunc(t.debounce, func() {
		t.fire(gen, m)
	})
	t.mu.Unlock()

	t.observer.SignalReceived()
	if canceled {
		t.observer.DebounceCanceled()
	}
}

// fire runs when a debounce timer expires.
func (t *Tracker) fire(gen uint64, m Metrics) {
	t.mu.Lock()
	// A timer that already fired cannot be stopped, so a newer signal or
	// a teardown leaves it running; the generation check drops it.
	if t.tornDown || gen != t.generation {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	queue := t.queue
	stopCh := t.stopCh
	t.mu.Unlock()

	if queue == nil {
		t.evaluate(m, true)
		return
	}
	select {
	case queue <- func() { t.evaluate(m, true) }:
	case <-stopCh:
	}
}

// Teardown cancels any pending debounce timer and unsubscribes from the
// window. It is safe to call more than once, and before Initialize.
func (t *Tracker) Teardown() {
	t.mu.Lock()
	if t.tornDown {
		t.mu.Unlock()
		return
	}
	t.tornDown = true
	timer, unsub := t.releaseLocked()
	close(t.stopCh)
	t.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if unsub != nil {
		unsub()
	}
	debug.Log("Tracker.Teardown")
}

// releaseLocked detaches the pending timer and window subscription and
// invalidates in-flight timer callbacks. The caller stops and unsubscribes
// the returned handles after releasing t.mu.
func (t *Tracker) releaseLocked() (Timer, Unsubscribe) {
	timer, unsub := t.timer, t.unsubscribe
	t.timer = nil
	t.unsubscribe = nil
	t.generation++
	return timer, unsub
}

// InViewport reports the current state. It is false before Initialize.
func (t *Tracker) InViewport() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inViewport
}

// NotInViewport is the logical complement of InViewport.
func (t *Tracker) NotInViewport() bool {
	return !t.InViewport()
}

// TornDown reports whether Teardown has been called.
func (t *Tracker) TornDown() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tornDown
}

// OnChange registers fn to be called with the new state whenever it flips.
// Callbacks run on the goroutine that performed the evaluation: the timer
// goroutine by default, or the host loop when WithEventQueue is set.
// Callbacks must not call Evaluate or Initialize.
func (t *Tracker) OnChange(fn func(inViewport bool)) Unsubscribe {
	return t.changes.Subscribe(func(v bool) {
		if t.TornDown() {
			return
		}
		fn(v)
	})
}

// Changes returns a channel that receives the new state whenever it flips.
// When the channel is full the oldest pending value is dropped, so the
// latest state is always delivered. The channel is closed by the returned
// Unsubscribe.
func (t *Tracker) Changes(buffer int) (<-chan bool, Unsubscribe) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan bool, buffer)

	var mu sync.Mutex
	closed := false
	unsub := t.OnChange(func(v bool) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		for {
			select {
			case ch <- v:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	})

	return ch, func() {
		unsub()
		mu.Lock()
		defer mu.Unlock()
		if !closed {
			closed = true
			close(ch)
		}
	}
}
