package system

import "github.com/younwookim/shadowkong/internal/domain/entity"

// Event is something the collision pass decided happened this frame.
type Event interface {
	isEvent()
}

// BarrelDestroyed is a barrel smashed with the hammer.
type BarrelDestroyed struct {
	Barrel *entity.Barrel
}

func (BarrelDestroyed) isEvent() {}

// BarrelJumped is a barrel cleared by a jump.
type BarrelJumped struct {
	Barrel *entity.Barrel
}

func (BarrelJumped) isEvent() {}

// EnemyKilled is a monkey destroyed by a bullet or the hammer.
type EnemyKilled struct {
	Enemy  *entity.Enemy
	Weapon entity.Weapon
}

func (EnemyKilled) isEvent() {}

// BossHit is a bullet striking Donkey.
type BossHit struct {
	HealthLeft int
}

func (BossHit) isEvent() {}

// PlayerKilled ends the level in a loss.
type PlayerKilled struct {
	Cause string
}

func (PlayerKilled) isEvent() {}

// BossDefeated ends the level in a win.
type BossDefeated struct {
	// Reached is set when the player touched Donkey rather than shooting him down.
	Reached bool
}

func (BossDefeated) isEvent() {}
