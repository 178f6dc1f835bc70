package crossing

// Snapshot contains the round state for logging and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         uint64
	Level        int
	Lives        int
	HighScore    int
	PlayerY      float64
	Speed        float64
	VehicleCount int
	GameOver     bool
	Paused       bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tickCount,
		Level:        g.score.Level(),
		Lives:        g.score.Lives(),
		HighScore:    g.score.HighScore(),
		PlayerY:      g.player.Pos().Y,
		Speed:        g.vehicles.Speed(),
		VehicleCount: len(g.vehicles.Vehicles()),
		GameOver:     g.score.GameOver(),
		Paused:       g.paused,
	}
}
