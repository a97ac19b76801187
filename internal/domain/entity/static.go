package entity

// Platform is a fixed solid surface.
type Platform struct {
	X, Y float64
	W, H float64
}

func NewPlatform(x, y float64, size Size) *Platform {
	return &Platform{X: x, Y: y, W: size.W, H: size.H}
}

func (p *Platform) Bounds() Rect {
	return NewRect(p.X, p.Y, p.W, p.H)
}

func (p *Platform) Top() float64 {
	return p.Y - p.H/2
}

// Ladder falls until it rests on a platform and can then be climbed.
type Ladder struct {
	Body
}

func NewLadder(x, y float64, size Size) *Ladder {
	return &Ladder{Body: newBody(x, y, size, LadderGravity)}
}

// Barrel falls onto a platform and kills the player on contact unless the hammer is held.
type Barrel struct {
	Body
	Destroyed bool

	// jump serial that last scored a jump-over, zero when none has
	lastJump int
}

func NewBarrel(x, y float64, size Size) *Barrel {
	return &Barrel{Body: newBody(x, y, size, BarrelGravity)}
}

// Bounds returns an empty box once the barrel has been destroyed.
func (b *Barrel) Bounds() Rect {
	if b.Destroyed {
		return Rect{X: b.X, Y: b.Y}
	}
	return b.Body.Bounds()
}

func (b *Barrel) Destroy() {
	b.Destroyed = true
}

// MarkJumped records that jump cleared this barrel. It reports false if the
// same jump was already counted.
func (b *Barrel) MarkJumped(jump int) bool {
	if jump == 0 || b.lastJump == jump {
		return false
	}
	b.lastJump = jump
	return true
}

// MaxDonkeyHealth is the number of bullet hits that defeat Donkey.
const MaxDonkeyHealth = 5

// Donkey is the level boss.
type Donkey struct {
	Body
	Health int
}

func NewDonkey(x, y float64, size Size) *Donkey {
	return &Donkey{Body: newBody(x, y, size, DonkeyGravity), Health: MaxDonkeyHealth}
}

func (d *Donkey) Dead() bool {
	return d.Health <= 0
}

// TakeHit removes one point of health and reports whether that hit was fatal.
func (d *Donkey) TakeHit() bool {
	if d.Health <= 0 {
		return false
	}
	d.Health--
	return d.Health == 0
}
