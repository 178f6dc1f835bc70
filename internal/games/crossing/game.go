// Package crossing implements the road crossing game.
// The player walks up a field of six traffic lanes while vehicles drive
// sideways and background animals wander across; every crossing raises the
// level, every collision costs a life.
//
// The simulation runs in world units (origin at the centre of the field,
// y pointing up) so it does not depend on the size of the terminal or window.
package crossing

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar  = '▲'
	VehicleChar = '█'
	AnimalChar  = '●'
	FinishChar  = '═'
)

// Game implements the crossing game logic.
type Game struct {
	cfg    config.CrossingConfig
	scaler *config.LevelScaler
	config core.RuntimeConfig

	rng      *rand.Rand
	player   *Player
	vehicles *VehicleManager
	animals  *AnimalHerd
	score    *ScoreState

	paused     bool
	flash      core.Color // Background flash colour, ColorDefault when none
	flashTicks int        // Ticks left before the flash clears
	tickCount  uint64
}

// New creates a game with the given configuration and stored highscore.
// The game is ready to play with a default runtime; platforms call Reset
// with their own.
func New(cfg config.CrossingConfig, highScore int) *Game {
	g := &Game{
		cfg:    cfg,
		scaler: config.NewLevelScaler(cfg.Vehicles, cfg.Difficulty),
		player: NewPlayer(cfg.Field, cfg.Player),
		score:  NewScoreState(cfg.Gameplay.Lives, highScore),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "crossing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Turtle Crossing Game"
}

// Reset reseeds the game and starts a fresh round. Background animals are
// scattered again; the highscore is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.animals = NewAnimalHerd(g.cfg.Animals, g.rng)
	g.vehicles = NewVehicleManager(g.cfg.Vehicles, g.scaler, g.rng)
	g.tickCount = 0
	g.restartRound()
}

// restartRound resets player, vehicles, level and lives.
// Background animals keep wandering.
func (g *Game) restartRound() {
	g.player.ResetPosition()
	g.vehicles.Reset()
	g.score.Reset()
	g.paused = false
	g.flash = core.ColorDefault
	g.flashTicks = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = core.ColorDefault
		}
	}

	if in.Has(core.ActionRestart) {
		g.restartRound()
		events = append(events, core.EventRestart)
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.score.GameOver() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tickCount++

	// Every press counts, also after the round is over
	for range in.Count(core.ActionUp) {
		g.player.MoveUp()
	}
	for range in.Count(core.ActionDown) {
		g.player.MoveDown()
	}

	g.animals.Move()

	if g.score.GameOver() {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.vehicles.Spawn(g.score.Level())
	g.vehicles.Move()

	events = g.checkCollisions(events)

	if !g.score.GameOver() && g.player.ReachedFinish() {
		g.player.ResetPosition()
		g.vehicles.IncreaseSpeed()
		g.score.NextLevel()
		g.startFlash(core.ColorGreen)
		events = append(events, core.EventLevelUp)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// checkCollisions tests the player against every vehicle, then every animal.
// Once the last life is gone the remaining checks are skipped.
func (g *Game) checkCollisions(events []core.Event) []core.Event {
	radius := g.cfg.Gameplay.HitRadius

	hit := func(pos core.Vec) bool {
		if pos.Dist(g.player.Pos()) >= radius {
			return false
		}
		events = append(events, core.EventHit)
		g.startFlash(core.ColorRed)
		roundOver := g.score.LoseLife()
		g.player.ResetPosition()
		if roundOver {
			events = append(events, core.EventRoundOver)
			if g.score.RecordHighScore() {
				events = append(events, core.EventNewHighScore)
			}
		}
		return roundOver
	}

	for _, v := range g.vehicles.Vehicles() {
		if hit(v.Pos) {
			return events
		}
	}
	for _, a := range g.animals.Animals() {
		if hit(a.Pos) {
			return events
		}
	}
	return events
}

func (g *Game) startFlash(c core.Color) {
	ticks := g.cfg.Gameplay.FlashTicks
	if ticks <= 0 {
		return
	}
	g.flash = c
	g.flashTicks = ticks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:     g.score.Level(),
		Lives:     g.score.Lives(),
		HighScore: g.score.HighScore(),
		GameOver:  g.score.GameOver(),
		Paused:    g.paused,
	}
}

// Scene is a read-only view of everything that is drawn, in world units.
// Graphical front ends draw from it.
type Scene struct {
	Field    config.FieldConfig
	Player   core.Vec
	Vehicles []Vehicle
	Animals  []Animal
	HUD      string
	Flash    core.Color
	GameOver bool
	Paused   bool

	VehicleLength float64
	VehicleHeight float64
	AnimalRadius  float64
}

// Scene returns the current scene. Slices are copies.
func (g *Game) Scene() Scene {
	return Scene{
		Field:         g.cfg.Field,
		Player:        g.player.Pos(),
		Vehicles:      append([]Vehicle(nil), g.vehicles.Vehicles()...),
		Animals:       append([]Animal(nil), g.animals.Animals()...),
		HUD:           g.score.HUD(),
		Flash:         g.flash,
		GameOver:      g.score.GameOver(),
		Paused:        g.paused,
		VehicleLength: g.cfg.Vehicles.Length,
		VehicleHeight: g.cfg.Vehicles.Height,
		AnimalRadius:  g.cfg.Animals.Radius,
	}
}

// Render draws the current game state to the screen.
// Row 0 holds the HUD, the field fills the remaining rows.
func (g *Game) Render(dst *core.Screen) {
	dst.SetBackground(g.flash)
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 1 {
		return
	}
	proj := newProjection(g.cfg.Field, w, h)

	// Finish line
	dst.DrawHLine(0, proj.row(g.cfg.Field.FinishY), w, FinishChar, core.ColorWhite)

	for _, a := range g.animals.Animals() {
		dst.SetColored(proj.col(a.Pos.X), proj.row(a.Pos.Y), AnimalChar, a.Color)
	}

	vehicleW := proj.width(g.cfg.Vehicles.Length)
	for _, v := range g.vehicles.Vehicles() {
		x := proj.col(v.Pos.X) - vehicleW/2
		dst.DrawHLine(x, proj.row(v.Pos.Y), vehicleW, VehicleChar, v.Color)
	}

	pos := g.player.Pos()
	dst.SetColored(proj.col(pos.X), proj.row(pos.Y), PlayerChar, core.ColorWhite)

	// Draw HUD
	dst.DrawText(1, 0, g.score.HUD())

	if g.score.GameOver() {
		drawBanner(dst, "GAME OVER", "Press R to restart")
	} else if g.paused {
		drawBanner(dst, "PAUSED", "Press P to resume")
	}
}

// drawBanner draws a boxed two-line message in the centre of the screen.
func drawBanner(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)
	dst.DrawTextCentered(box.Y+1, title, core.ColorRed)
	dst.DrawTextCentered(box.Y+2, subtitle, core.ColorWhite)
}

// projection maps world coordinates onto screen cells. Row 0 is reserved
// for the HUD.
type projection struct {
	field config.FieldConfig
	w, h  int
}

func newProjection(field config.FieldConfig, w, h int) projection {
	return projection{field: field, w: w, h: h}
}

func (p projection) col(x float64) int {
	c := int(math.Floor((x + p.field.Width/2) / p.field.Width * float64(p.w)))
	return core.Clamp(c, 0, p.w-1)
}

func (p projection) row(y float64) int {
	rows := p.h - 1
	r := 1 + int(math.Floor((p.field.Height/2-y)/p.field.Height*float64(rows)))
	return core.Clamp(r, 1, p.h-1)
}

func (p projection) width(length float64) int {
	return core.Max(1, int(math.Round(length/p.field.Width*float64(p.w))))
}
