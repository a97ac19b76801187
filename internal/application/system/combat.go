package system

import (
	"github.com/charmbracelet/log"
	"github.com/younwookim/shadowkong/internal/domain/entity"
)

// CombatSystem resolves collisions between entities after everything has moved.
type CombatSystem struct {
	world  *World
	logger *log.Logger
}

func NewCombatSystem(w *World, logger *log.Logger) *CombatSystem {
	return &CombatSystem{world: w, logger: logger}
}

// Resolve runs the collision checks in priority order and returns what
// happened. Checking stops once the player is killed; a win does not stop
// it, so a death later in the same frame still counts.
func (s *CombatSystem) Resolve() []Event {
	var events []Event
	checks := []func([]Event) ([]Event, bool){
		s.barrels,
		s.bullets,
		s.bananas,
		s.enemies,
		s.boss,
	}
	for _, check := range checks {
		var killed bool
		events, killed = check(events)
		if killed {
			break
		}
	}
	return events
}

func (s *CombatSystem) barrels(events []Event) ([]Event, bool) {
	p := s.world.Player
	for _, b := range s.world.Barrels {
		if b.Destroyed {
			continue
		}
		if p.Bounds().Intersects(b.Bounds()) {
			if !p.HasHammer() {
				return append(events, PlayerKilled{Cause: "barrel"}), true
			}
			b.Destroy()
			s.logger.Debug("barrel destroyed", "x", b.X, "y", b.Y)
			events = append(events, BarrelDestroyed{Barrel: b})
			continue
		}
		if p.ClearsBarrel(b) && b.MarkJumped(p.Jumps) {
			events = append(events, BarrelJumped{Barrel: b})
		}
	}
	return events, false
}

func (s *CombatSystem) bullets(events []Event) ([]Event, bool) {
	d := s.world.Donkey
	for _, bullet := range s.world.Bullets {
		if bullet.Spent {
			continue
		}
		for _, e := range s.world.Enemies {
			if !e.Dead && bullet.Bounds().Intersects(e.Bounds()) {
				e.Kill()
				bullet.Expire()
				s.logger.Debug("monkey shot", "variant", e.Variant)
				events = append(events, EnemyKilled{Enemy: e, Weapon: entity.WeaponBlaster})
				break
			}
		}
		if bullet.Spent || d.Dead() {
			continue
		}
		if bullet.Bounds().Intersects(d.Bounds()) {
			bullet.Expire()
			fatal := d.TakeHit()
			events = append(events, BossHit{HealthLeft: d.Health})
			if fatal {
				s.logger.Debug("donkey defeated")
				events = append(events, BossDefeated{})
			}
		}
	}
	return events, false
}

func (s *CombatSystem) bananas(events []Event) ([]Event, bool) {
	p := s.world.Player
	for _, e := range s.world.Enemies {
		for _, b := range e.Bananas {
			if !b.Spent && p.Bounds().Intersects(b.Bounds()) {
				b.Expire()
				return append(events, PlayerKilled{Cause: "banana"}), true
			}
		}
	}
	return events, false
}

func (s *CombatSystem) enemies(events []Event) ([]Event, bool) {
	p := s.world.Player
	for _, e := range s.world.Enemies {
		if e.Dead || !p.Bounds().Intersects(e.Bounds()) {
			continue
		}
		if !p.HasHammer() {
			return append(events, PlayerKilled{Cause: "monkey"}), true
		}
		e.Kill()
		s.logger.Debug("monkey smashed", "variant", e.Variant)
		events = append(events, EnemyKilled{Enemy: e, Weapon: entity.WeaponHammer})
	}
	return events, false
}

func (s *CombatSystem) boss(events []Event) ([]Event, bool) {
	p, d := s.world.Player, s.world.Donkey
	if !p.Bounds().Intersects(d.Bounds()) {
		return events, false
	}
	if p.HasHammer() || d.Dead() {
		return append(events, BossDefeated{Reached: true}), false
	}
	return append(events, PlayerKilled{Cause: "donkey"}), true
}
