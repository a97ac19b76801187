package entity

// Weapon is the item the player currently holds.
type Weapon int

const (
	WeaponNone Weapon = iota
	WeaponHammer
	WeaponBlaster
)

func (w Weapon) String() string {
	switch w {
	case WeaponHammer:
		return "hammer"
	case WeaponBlaster:
		return "blaster"
	default:
		return "none"
	}
}

// DefaultBlasterAmmo is the stock of a blaster placed without an explicit count.
const DefaultBlasterAmmo = 5

// Pickup is a collectible lying in the level.
type Pickup struct {
	X, Y      float64
	W, H      float64
	Collected bool
}

// Bounds returns an empty box once collected.
func (p *Pickup) Bounds() Rect {
	if p.Collected {
		return Rect{X: p.X, Y: p.Y}
	}
	return NewRect(p.X, p.Y, p.W, p.H)
}

func (p *Pickup) Collect() {
	p.Collected = true
}

// Hammer lets the player smash barrels and enemies.
type Hammer struct {
	Pickup
}

func NewHammer(x, y float64, size Size) *Hammer {
	return &Hammer{Pickup: Pickup{X: x, Y: y, W: size.W, H: size.H}}
}

// Blaster lets the player fire bullets.
type Blaster struct {
	Pickup
	Ammo int
}

// NewBlaster places a blaster; ammo <= 0 gives the default stock.
func NewBlaster(x, y float64, ammo int, size Size) *Blaster {
	if ammo <= 0 {
		ammo = DefaultBlasterAmmo
	}
	return &Blaster{Pickup: Pickup{X: x, Y: y, W: size.W, H: size.H}, Ammo: ammo}
}
