package entity

// Rect is an axis-aligned box. X and Y locate its centre, y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect returns a box centred on (x, y).
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromTopLeft returns the box whose top-left corner is (left, top).
func RectFromTopLeft(left, top, w, h float64) Rect {
	return Rect{X: left + w/2, Y: top + h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X - r.W/2 }
func (r Rect) Right() float64  { return r.X + r.W/2 }
func (r Rect) Top() float64    { return r.Y - r.H/2 }
func (r Rect) Bottom() float64 { return r.Y + r.H/2 }

// Empty reports whether the box has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and o overlap by a positive amount on both axes.
// Boxes that only share an edge do not intersect, and an empty box intersects nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Size is a sprite's width and height.
type Size struct {
	W, H float64
}

// Screen is the visible play area in pixels.
type Screen struct {
	Width, Height float64
}
