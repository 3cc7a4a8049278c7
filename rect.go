package inview

// Rect is an element box in document coordinates.
// Top and Left are the top-left corner; Width and Height are dimensions.
type Rect struct {
	Top, Left     int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(top, left, width, height int) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects returns true if the two rectangles overlap on both axes.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return r.Top < other.Bottom() && r.Bottom() > other.Top &&
		r.Left < other.Right() && r.Right() > other.Left
}
