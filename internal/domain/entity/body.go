package entity

// Body is the position and vertical motion shared by everything that falls.
// X and Y are the centre of the current sprite.
type Body struct {
	X, Y    float64
	VY      float64
	W, H    float64
	Gravity Gravity
}

func newBody(x, y float64, size Size, g Gravity) Body {
	return Body{X: x, Y: y, W: size.W, H: size.H, Gravity: g}
}

// Bounds returns the collision box.
func (b *Body) Bounds() Rect {
	return NewRect(b.X, b.Y, b.W, b.H)
}

// Feet returns a strip one unit tall directly under the bottom edge.
func (b *Body) Feet() Rect {
	return RectFromTopLeft(b.X-b.W/2, b.Bottom(), b.W, 1)
}

func (b *Body) Bottom() float64 { return b.Y + b.H/2 }

// SetBottom moves the body vertically so its bottom edge sits at bottom.
func (b *Body) SetBottom(bottom float64) {
	b.Y = bottom - b.H/2
}

// Fall applies one frame of gravity and moves by the resulting velocity.
func (b *Body) Fall() {
	b.VY = b.Gravity.Apply(b.VY)
	b.Y += b.VY
}

// RestOn places the body on a surface at y = top and stops it.
func (b *Body) RestOn(top float64) {
	b.SetBottom(top)
	b.VY = 0
}

// Resize changes the box dimensions keeping the bottom edge in place.
func (b *Body) Resize(size Size) {
	bottom := b.Bottom()
	b.W, b.H = size.W, size.H
	b.SetBottom(bottom)
}
