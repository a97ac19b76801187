package system

import "github.com/younwookim/shadowkong/internal/domain/entity"

// PatrolSystem walks enemies along their routes and makes intelligent ones throw.
type PatrolSystem struct {
	physics     *PhysicsSystem
	projectiles *ProjectileSystem
}

func NewPatrolSystem(physics *PhysicsSystem, projectiles *ProjectileSystem) *PatrolSystem {
	return &PatrolSystem{physics: physics, projectiles: projectiles}
}

// Update advances e by one frame. Bananas already thrown keep flying after
// their owner dies.
func (s *PatrolSystem) Update(e *entity.Enemy) {
	s.projectiles.AdvanceAll(e.Bananas)
	e.CompactBananas()

	if e.Dead {
		return
	}
	e.Landed = s.physics.FallFeet(&e.Body)
	if !e.Landed {
		return
	}
	s.walk(e)

	if e.Throws() {
		e.FireTimer++
		if e.FireTimer >= entity.BananaInterval {
			e.FireTimer = 0
			e.Throw()
		}
	}
}

func (s *PatrolSystem) walk(e *entity.Enemy) {
	step := e.Speed()
	next := e.X - step
	if e.FacingRight {
		next = e.X + step
	}

	if !s.physics.Supported(edgeProbe(e, next)) {
		e.TurnAround()
		return
	}

	e.X = next
	e.Travelled += step
	if e.Travelled >= e.LegLength() {
		e.TurnAround()
	}
}

// edgeProbe is a one-unit square just past the leading edge of e at x,
// level with its feet.
func edgeProbe(e *entity.Enemy, x float64) entity.Rect {
	left := x - e.W/2 - 1
	if e.FacingRight {
		left = x + e.W/2
	}
	return entity.RectFromTopLeft(left, e.Bottom(), 1, 1)
}
