package entity

import "math"

const (
	PlayerMoveSpeed    = 3.5
	PlayerClimbSpeed   = 2.0
	PlayerJumpStrength = -5.0

	// JumpOverAlign is how close the player's centre must be to a barrel's
	// centre, horizontally, for a jump to count as clearing it.
	JumpOverAlign = 1.0
)

// Player is Mario.
type Player struct {
	Body
	FacingRight bool
	Jumping     bool
	Weapon      Weapon
	Ammo        int

	// Jumps counts jumps started; the current jump is identified by it.
	Jumps int

	sizes Sizes
}

// NewPlayer places the player facing right with the empty-handed sprite.
func NewPlayer(x, y float64, sizes Sizes) *Player {
	p := &Player{FacingRight: true, sizes: sizes}
	p.Body = newBody(x, y, sizes.Of(p.Sprite()), PlayerGravity)
	return p
}

func (p *Player) HasHammer() bool  { return p.Weapon == WeaponHammer }
func (p *Player) HasBlaster() bool { return p.Weapon == WeaponBlaster }

// TakeHammer equips the hammer, dropping any blaster and its ammo.
func (p *Player) TakeHammer() {
	p.Weapon = WeaponHammer
	p.Ammo = 0
}

// TakeBlaster equips a blaster. Ammo from further blasters stacks; a held
// hammer is dropped.
func (p *Player) TakeBlaster(ammo int) {
	if p.Weapon != WeaponBlaster {
		p.Ammo = 0
	}
	p.Weapon = WeaponBlaster
	p.Ammo += ammo
}

// ConsumeAmmo spends one bullet. The blaster is dropped when it runs dry.
func (p *Player) ConsumeAmmo() bool {
	if p.Weapon != WeaponBlaster || p.Ammo <= 0 {
		return false
	}
	p.Ammo--
	if p.Ammo == 0 {
		p.Weapon = WeaponNone
		p.RefreshSprite()
	}
	return true
}

// Sprite returns the image for the current weapon and facing.
func (p *Player) Sprite() Sprite {
	switch p.Weapon {
	case WeaponHammer:
		if p.FacingRight {
			return SpriteMarioHammerRight
		}
		return SpriteMarioHammerLeft
	case WeaponBlaster:
		if p.FacingRight {
			return SpriteMarioBlasterRight
		}
		return SpriteMarioBlasterLeft
	default:
		if p.FacingRight {
			return SpriteMarioRight
		}
		return SpriteMarioLeft
	}
}

// RefreshSprite resizes the body to the current sprite, keeping the feet in place.
func (p *Player) RefreshSprite() {
	p.Resize(p.sizes.Of(p.Sprite()))
}

// StartJump launches a new jump.
func (p *Player) StartJump() {
	p.VY = PlayerJumpStrength
	p.Jumping = true
	p.Jumps++
}

// Land stops the player on a surface at y = top.
func (p *Player) Land(top float64) {
	p.RestOn(top)
	p.Jumping = false
}

// JumpClearance is the peak height of a jump.
func (p *Player) JumpClearance() float64 {
	return PlayerJumpStrength * PlayerJumpStrength / (2 * p.Gravity.Accel)
}

// ClearsBarrel reports whether the player is mid-jump directly above b and
// low enough that the jump has carried them over it.
func (p *Player) ClearsBarrel(b *Barrel) bool {
	if !p.Jumping || b.Destroyed {
		return false
	}
	if math.Abs(p.X-b.X) > JumpOverAlign || p.Y >= b.Y {
		return false
	}
	return p.Bottom() >= b.Bottom()-p.JumpClearance()-p.H/2
}
