package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the desktop frontend)
	ScreenH  int   // Screen height in characters (or pixels for the desktop frontend)
	TickRate int   // Frames per second driving the simulation (default 60)
	Seed     int64 // RNG seed for particle effects
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Running  bool // Whether the simulation is armed
	GameOver bool // Whether the game has ended (win or loss)
	Paused   bool // Whether the game is paused
}

// EventKind identifies a notification produced by a simulation tick.
type EventKind int

const (
	EventScoreChanged EventKind = iota // Score increased
	EventExplosion                     // An enemy was destroyed
	EventGameEnded                     // The game reached win or loss
)

// Event is a notification for the platform (HUD, sound, dialogs).
type Event struct {
	Kind    EventKind
	Score   int    // New score for EventScoreChanged
	Won     bool   // Outcome for EventGameEnded
	Title   string // Dialog title for EventGameEnded
	Message string // Human-readable message for EventGameEnded
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
