package inview

import "sync"

// Element supplies the tracked element's box in document coordinates.
// Rect is called on every evaluation; implementations should read live
// geometry rather than cache it.
type Element interface {
	Rect() Rect
}

// Window supplies viewport metrics and a signal that fires on scroll and
// resize.
type Window interface {
	// Metrics returns the current viewport size and scroll offsets.
	Metrics() Metrics
	// Subscribe registers fn to be called on every scroll or resize signal.
	Subscribe(fn func(Metrics)) Unsubscribe
}

// ElementFunc adapts a function to the Element interface.
type ElementFunc func() Rect

// Rect implements Element.
func (f ElementFunc) Rect() Rect {
	return f()
}

// StaticElement is an Element whose box is set explicitly.
// It is safe for concurrent use.
type StaticElement struct {
	mu   sync.RWMutex
	rect Rect
}

// Ensure StaticElement implements Element.
var _ Element = (*StaticElement)(nil)

// NewStaticElement creates an element with the given box.
func NewStaticElement(r Rect) *StaticElement {
	return &StaticElement{rect: r}
}

// Rect implements Element.
func (e *StaticElement) Rect() Rect {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rect
}

// SetRect moves or resizes the element. It does not signal any window;
// the new box is picked up by the next evaluation.
func (e *StaticElement) SetRect(r Rect) {
	e.mu.Lock()
	e.rect = r
	e.mu.Unlock()
}
