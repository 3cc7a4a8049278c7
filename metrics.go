package inview

import "fmt"

// Metrics describes the viewport: its size and scroll offsets.
type Metrics struct {
	Width, Height    int
	ScrollX, ScrollY int
}

// Bounds returns the visible region of the document as a Rect.
func (m Metrics) Bounds() Rect {
	return Rect{Top: m.ScrollY, Left: m.ScrollX, Width: m.Width, Height: m.Height}
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", m.Width, m.Height, m.ScrollX, m.ScrollY)
}

// Visible reports whether el overlaps the viewport described by m.
// Partial overlap counts. Degenerate boxes and viewports go through the same
// arithmetic, so an element without geometry (all zeros) is not visible
// from the scroll origin.
func Visible(el Rect, m Metrics) bool {
	return el.Top < m.ScrollY+m.Height &&
		el.Top+el.Height > m.ScrollY &&
		el.Left < m.ScrollX+m.Width &&
		el.Left+el.Width > m.ScrollX
}
