// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the default mode: the player explores the current floor.
	StatePlaying State = iota
	// StateQuit ends the main loop.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
