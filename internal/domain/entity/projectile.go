package entity

import "math"

// ProjectileKind distinguishes enemy bananas from player bullets.
type ProjectileKind int

const (
	KindBanana ProjectileKind = iota
	KindBullet
)

const (
	BananaSpeed = 1.8
	BananaRange = 300.0
	BulletSpeed = 3.8
	BulletRange = 300.0
)

// Projectile travels horizontally at constant speed until it is spent.
type Projectile struct {
	Kind        ProjectileKind
	X, Y        float64
	W, H        float64
	FacingRight bool
	Speed       float64
	MaxRange    float64
	Travelled   float64
	Spent       bool
}

func NewBanana(x, y float64, facingRight bool, size Size) *Projectile {
	return &Projectile{
		Kind: KindBanana, X: x, Y: y, W: size.W, H: size.H,
		FacingRight: facingRight, Speed: BananaSpeed, MaxRange: BananaRange,
	}
}

func NewBullet(x, y float64, facingRight bool, size Size) *Projectile {
	return &Projectile{
		Kind: KindBullet, X: x, Y: y, W: size.W, H: size.H,
		FacingRight: facingRight, Speed: BulletSpeed, MaxRange: BulletRange,
	}
}

// Advance moves the projectile one frame. It is spent once the distance
// travelled reaches its range. Spent projectiles do not move.
func (p *Projectile) Advance() {
	if p.Spent {
		return
	}
	dx := p.Speed
	if !p.FacingRight {
		dx = -dx
	}
	p.X += dx
	p.Travelled += math.Abs(dx)
	if p.Travelled >= p.MaxRange {
		p.Spent = true
	}
}

// Bounds returns an empty box once spent, so spent projectiles never collide.
func (p *Projectile) Bounds() Rect {
	if p.Spent {
		return Rect{X: p.X, Y: p.Y}
	}
	return NewRect(p.X, p.Y, p.W, p.H)
}

func (p *Projectile) Expire() {
	p.Spent = true
}

func (p *Projectile) Sprite() Sprite {
	if p.Kind == KindBanana {
		return SpriteBanana
	}
	if p.FacingRight {
		return SpriteBulletRight
	}
	return SpriteBulletLeft
}

// CompactProjectiles drops spent projectiles, reusing the backing array.
func CompactProjectiles(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if !p.Spent {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps); i++ {
		ps[i] = nil
	}
	return kept
}
