package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateTitle, "Title"},
		{StatePlaying, "Playing"},
		{StateResult, "Result"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
		terminal bool
		gameOver bool
	}{
		{OutcomeRunning, "Running", false, false},
		{OutcomeWon, "Won", true, false},
		{OutcomeLost, "Lost", true, true},
		{OutcomeTimeUp, "TimeUp", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.outcome.String())
			assert.Equal(t, tt.terminal, tt.outcome.Terminal())
			assert.Equal(t, tt.gameOver, tt.outcome.GameOver())
		})
	}
	assert.Equal(t, "Unknown", Outcome(42).String())
}
