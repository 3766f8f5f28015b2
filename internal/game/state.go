// Package game implements the duckhunt session controller: the game-state
// machine, the countdown clock, scoring, and the win/lose decision logic.
package game

// State is the session state machine position.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
	StateGameComplete
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	case StateGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the current play-through.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateGameComplete
}
