package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/younwookim/shadowkong/internal/domain/entity"
)

// contactEpsilon absorbs float error when comparing edges that should coincide.
const contactEpsilon = 1e-6

// PlayerSystem applies one frame of input and physics to the player.
type PlayerSystem struct {
	world   *World
	physics *PhysicsSystem
	logger  *log.Logger
}

func NewPlayerSystem(w *World, physics *PhysicsSystem, logger *log.Logger) *PlayerSystem {
	return &PlayerSystem{world: w, physics: physics, logger: logger}
}

// Update runs the player's frame: walk, pick up, climb, fall, land, jump,
// fire, then keep inside the screen.
func (s *PlayerSystem) Update(in InputState) {
	p := s.world.Player

	if in.Left {
		p.X -= entity.PlayerMoveSpeed
		p.FacingRight = false
	} else if in.Right {
		p.X += entity.PlayerMoveSpeed
		p.FacingRight = true
	}

	s.pickUp(p)
	p.RefreshSprite()

	if !s.climb(p, in) {
		p.VY = p.Gravity.Apply(p.VY)
	}
	p.Y += p.VY

	if s.land(p) && in.Jump {
		p.StartJump()
	}

	if in.Fire && p.HasBlaster() && p.Ammo > 0 {
		s.world.Bullets = append(s.world.Bullets,
			entity.NewBullet(p.X, p.Y, p.FacingRight, s.world.Sizes.Of(bulletSprite(p.FacingRight))))
		p.ConsumeAmmo()
		s.logger.Debug("bullet fired", "ammo", p.Ammo)
	}

	s.clamp(p)
}

func (s *PlayerSystem) pickUp(p *entity.Player) {
	for _, h := range s.world.Hammers {
		if p.Bounds().Intersects(h.Bounds()) {
			h.Collect()
			p.TakeHammer()
			p.RefreshSprite()
			s.logger.Debug("hammer collected")
		}
	}
	for _, b := range s.world.Blasters {
		if p.Bounds().Intersects(b.Bounds()) {
			b.Collect()
			p.TakeBlaster(b.Ammo)
			p.RefreshSprite()
			s.logger.Debug("blaster collected", "ammo", p.Ammo)
		}
	}
}

// climb handles ladder movement and reports whether the player is on a ladder,
// in which case gravity is suspended for the frame.
func (s *PlayerSystem) climb(p *entity.Player, in InputState) bool {
	onLadder := false
	for _, l := range s.world.Ladders {
		lb := l.Bounds()
		aligned := p.X > lb.Left() && p.X < lb.Right()
		if !aligned {
			continue
		}
		bottom := p.Bottom()

		if !p.Bounds().Intersects(lb) {
			// Standing on the top of a ladder or resting at its foot.
			if !in.Down {
				continue
			}
			switch {
			case near(bottom, lb.Top()):
				p.Y += entity.PlayerClimbSpeed
				p.VY = 0
			case near(bottom, lb.Bottom()):
				p.VY = 0
			}
			continue
		}

		onLadder = true
		if !in.Up && !in.Down {
			p.VY = 0
		}
		if in.Up {
			p.Y -= entity.PlayerClimbSpeed
			p.VY = 0
		}
		if in.Down {
			switch next := bottom + entity.PlayerClimbSpeed; {
			case bottom > lb.Top() && next <= lb.Bottom():
				p.Y += entity.PlayerClimbSpeed
				p.VY = 0
			case near(bottom, lb.Bottom()):
				p.VY = 0
			case lb.Bottom()-bottom < entity.PlayerClimbSpeed:
				p.Y += lb.Bottom() - bottom
				p.VY = 0
			}
		}
	}
	return onLadder
}

// land rests a descending player on the first platform under its feet. A
// platform counts when it overlaps horizontally and its top lies between the
// player's bottom before and after this frame's move.
func (s *PlayerSystem) land(p *entity.Player) bool {
	if p.VY < 0 {
		return false
	}
	box := p.Bounds()
	for _, pl := range s.world.Platforms {
		pb := pl.Bounds()
		if box.Right() <= pb.Left() || pb.Right() <= box.Left() {
			continue
		}
		if box.Bottom() >= pb.Top()-contactEpsilon && box.Bottom() <= pb.Top()+p.VY+contactEpsilon {
			p.Land(pb.Top())
			return true
		}
	}
	return false
}

func (s *PlayerSystem) clamp(p *entity.Player) {
	screen := s.world.Screen
	if p.X-p.W/2 < 0 {
		p.X = p.W / 2
	}
	if p.X+p.W/2 > screen.Width {
		p.X = screen.Width - p.W/2
	}
	if p.Y-p.H/2 < 0 {
		p.Y = p.H / 2
		if p.VY < 0 {
			p.VY = 0
		}
	}
	if p.Bottom() > screen.Height {
		p.Land(screen.Height)
	}
}

func bulletSprite(facingRight bool) entity.Sprite {
	if facingRight {
		return entity.SpriteBulletRight
	}
	return entity.SpriteBulletLeft
}

func near(a, b float64) bool {
	return math.Abs(a-b) < contactEpsilon
}
