package inview

import (
	"sync"

	"github.com/grindlemire/go-inview/internal/debug"
)

// ChannelWindow is a Window fed from a channel of metrics. A goroutine
// forwards every received value to subscribers; it starts with the first
// subscription and stops when the last one is removed or the channel closes.
type ChannelWindow struct {
	ch <-chan Metrics

	mu      sync.Mutex
	metrics Metrics
	signals *Events[Metrics]
	subs    int
	stopCh  chan struct{}
}

// Ensure ChannelWindow implements Window.
var _ Window = (*ChannelWindow)(nil)

// NewChannelWindow creates a window that reports initial until the first
// value arrives on ch.
//
// Example:
//
//	signals := make(chan inview.Metrics)
//	win := inview.NewChannelWindow(signals, inview.Metrics{Width: 1366, Height: 768})
//	tracker.Initialize(el, win)
//	signals <- inview.Metrics{Width: 1366, Height: 768, ScrollY: 500}
func NewChannelWindow(ch <-chan Metrics, initial Metrics) *ChannelWindow {
	return &ChannelWindow{
		ch:      ch,
		metrics: initial,
		signals: NewEvents[Metrics](),
	}
}

// Metrics implements Window.
func (w *ChannelWindow) Metrics() Metrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Subscribe implements Window.
func (w *ChannelWindow) Subscribe(fn func(Metrics)) Unsubscribe {
	unsub := w.signals.Subscribe(fn)

	w.mu.Lock()
	w.subs++
	if w.stopCh == nil {
		w.stopCh = make(chan struct{})
		go w.run(w.stopCh)
	}
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsub()
			w.mu.Lock()
			w.subs--
			if w.subs == 0 && w.stopCh != nil {
				close(w.stopCh)
				w.stopCh = nil
			}
			w.mu.Unlock()
		})
	}
}

func (w *ChannelWindow) run(stopCh <-chan struct{}) {
	debug.Log("ChannelWindow started")
	for {
		select {
		case <-stopCh:
			return
		case m, ok := <-w.ch:
			if !ok {
				return // Channel closed
			}
			w.mu.Lock()
			w.metrics = m
			w.mu.Unlock()
			select {
			case <-stopCh:
				return
			default:
			}
			w.signals.Emit(m)
		}
	}
}
