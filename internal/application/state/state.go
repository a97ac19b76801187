package state

// GameState is the screen the game is showing.
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
	StateResult
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StateResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Outcome is how a level stands.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeTimeUp
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "Running"
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	case OutcomeTimeUp:
		return "TimeUp"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the level has ended.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// GameOver reports whether the level ended without a win.
func (o Outcome) GameOver() bool {
	return o == OutcomeLost || o == OutcomeTimeUp
}
