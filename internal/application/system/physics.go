package system

import "github.com/younwookim/shadowkong/internal/domain/entity"

// PhysicsSystem integrates gravity for falling bodies and rests them on platforms.
type PhysicsSystem struct {
	platforms []*entity.Platform
}

func NewPhysicsSystem(platforms []*entity.Platform) *PhysicsSystem {
	return &PhysicsSystem{platforms: platforms}
}

// Fall moves b one frame and rests it on the first platform its box overlaps.
// It reports whether b landed.
func (s *PhysicsSystem) Fall(b *entity.Body) bool {
	return s.fall(b, b.Bounds)
}

// FallFeet is Fall for walkers, probing the strip directly under b's feet.
func (s *PhysicsSystem) FallFeet(b *entity.Body) bool {
	return s.fall(b, b.Feet)
}

func (s *PhysicsSystem) fall(b *entity.Body, probe func() entity.Rect) bool {
	b.Fall()
	box := probe()
	for _, p := range s.platforms {
		if box.Intersects(p.Bounds()) {
			b.RestOn(p.Top())
			return true
		}
	}
	return false
}

// Supported reports whether any platform intersects r.
func (s *PhysicsSystem) Supported(r entity.Rect) bool {
	for _, p := range s.platforms {
		if r.Intersects(p.Bounds()) {
			return true
		}
	}
	return false
}
