package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The tick rate matches the fixed 100ms frame delay of the crossing loop.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WithSeed returns a copy of c with a time-based seed when Seed is 0.
// A non-zero seed is kept so runs can be replayed.
func (c RuntimeConfig) WithSeed() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level     int  // Current level, starts at 1
	Lives     int  // Remaining lives
	HighScore int  // Best level ever reached
	GameOver  bool // Whether the round has ended
	Paused    bool // Whether the game is paused
}

// Event is something notable that happened during a tick.
// Front ends use events for effects and persistence.
type Event int

const (
	EventNone         Event = iota
	EventHit                // Player was hit and lost a life
	EventLevelUp            // Player reached the finish line
	EventRoundOver          // Last life lost
	EventNewHighScore       // Round ended above the stored highscore
	EventRestart            // Round was reset by the player
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventHit:
		return "hit"
	case EventLevelUp:
		return "level_up"
	case EventRoundOver:
		return "round_over"
	case EventNewHighScore:
		return "new_highscore"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has returns true if the event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
