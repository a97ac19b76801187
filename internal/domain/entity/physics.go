package entity

// Gravity is the per-frame acceleration and terminal fall speed of an entity class.
type Gravity struct {
	Accel    float64
	Terminal float64
}

var (
	PlayerGravity = Gravity{Accel: 0.2, Terminal: 10}
	EnemyGravity  = Gravity{Accel: 0.4, Terminal: 5}
	BarrelGravity = Gravity{Accel: 0.4, Terminal: 5}
	LadderGravity = Gravity{Accel: 0.25, Terminal: 5}
	DonkeyGravity = Gravity{Accel: 0.4, Terminal: 5}
)

// Apply returns vy after one frame of acceleration, clamped to the terminal speed.
func (g Gravity) Apply(vy float64) float64 {
	vy += g.Accel
	if vy > g.Terminal {
		vy = g.Terminal
	}
	return vy
}
