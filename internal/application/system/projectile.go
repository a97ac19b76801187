package system

import "github.com/younwookim/shadowkong/internal/domain/entity"

// ProjectileSystem moves bananas and bullets.
type ProjectileSystem struct {
	physics *PhysicsSystem
	screen  entity.Screen
}

func NewProjectileSystem(physics *PhysicsSystem, screen entity.Screen) *ProjectileSystem {
	return &ProjectileSystem{physics: physics, screen: screen}
}

// Advance moves p one frame. Bullets are also spent when they leave the
// screen horizontally or hit a platform; bananas pass through platforms.
func (s *ProjectileSystem) Advance(p *entity.Projectile) {
	if p.Spent {
		return
	}
	p.Advance()
	if p.Kind != entity.KindBullet || p.Spent {
		return
	}
	if p.X < 0 || p.X > s.screen.Width || s.physics.Supported(p.Bounds()) {
		p.Expire()
	}
}

// AdvanceAll moves every projectile in ps.
func (s *ProjectileSystem) AdvanceAll(ps []*entity.Projectile) {
	for _, p := range ps {
		s.Advance(p)
	}
}
