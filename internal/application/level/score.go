package level

const (
	BarrelDestroyPoints = 100
	BarrelJumpPoints    = 30
	EnemyKillPoints     = 100
	SecondPoints        = 3
)

// Scorecard tallies the scoring events of one level.
type Scorecard struct {
	Start     int
	Destroyed int
	Jumped    int
	Killed    int
}

// Running is the score shown during play.
func (s Scorecard) Running() int {
	return s.Start +
		BarrelDestroyPoints*s.Destroyed +
		BarrelJumpPoints*s.Jumped +
		EnemyKillPoints*s.Killed
}

// Final is the score awarded when the level ends. Dying forfeits everything.
func (s Scorecard) Final(secondsLeft int, died bool) int {
	if died {
		return 0
	}
	if secondsLeft < 0 {
		secondsLeft = 0
	}
	return s.Running() + SecondPoints*secondsLeft
}
