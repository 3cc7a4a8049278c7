package inview

import (
	"sync"

	"github.com/grindlemire/go-inview/internal/debug"
)

// SimWindow is an in-memory Window. Resize and ScrollTo update the metrics
// and fire the signal to every subscriber.
type SimWindow struct {
	mu      sync.RWMutex
	metrics Metrics
	signals *Events[Metrics]
}

// Ensure SimWindow implements Window.
var _ Window = (*SimWindow)(nil)

// NewSimWindow creates a window with the given initial metrics.
func NewSimWindow(initial Metrics) *SimWindow {
	return &SimWindow{metrics: initial, signals: NewEvents[Metrics]()}
}

// Metrics implements Window.
func (w *SimWindow) Metrics() Metrics {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.metrics
}

// Subscribe implements Window.
func (w *SimWindow) Subscribe(fn func(Metrics)) Unsubscribe {
	return w.signals.Subscribe(fn)
}

// Subscribers returns the number of active subscriptions.
func (w *SimWindow) Subscribers() int {
	return w.signals.Len()
}

// Resize sets the viewport size and fires a resize signal.
func (w *SimWindow) Resize(width, height int) {
	w.update(func(m *Metrics) {
		m.Width = width
		m.Height = height
	})
}

// ScrollTo sets the scroll offsets and fires a scroll signal.
func (w *SimWindow) ScrollTo(x, y int) {
	w.update(func(m *Metrics) {
		m.ScrollX = x
		m.ScrollY = y
	})
}

func (w *SimWindow) update(fn func(*Metrics)) {
	w.mu.Lock()
	fn(&w.metrics)
	m := w.metrics
	w.mu.Unlock()

	debug.Log("SimWindow: signal %s", m)
	w.signals.Emit(m)
}
