// Package window provides a desktop front end for the crossing game built
// on ebiten. It draws the world at its native 1000x800 resolution.
package window

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/games/crossing"
	"github.com/vovakirdan/roadcross/internal/session"
)

// Sprite sizes in pixels
const (
	playerSize      = 20
	finishLineWidth = 3
	hudScale        = 1.5
	bannerScale     = 3.0
	glyphHeight     = 16.0 // bitmapfont line height at scale 1
)

// Game is the game logic driven by the window.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	Scene() crossing.Scene
}

// App implements ebiten.Game for the crossing game.
type App struct {
	game     Game
	recorder *session.Recorder
	ticker   *ticker
	input    core.InputFrame
	width    int
	height   int

	pixel  *ebiten.Image
	animal *ebiten.Image
	player *ebiten.Image
	face   text.Face
}

// NewApp resets the game with cfg and prepares the sprites.
// The window is sized to the game field.
func NewApp(game Game, recorder *session.Recorder, cfg core.RuntimeConfig) *App {
	if recorder == nil {
		recorder = session.NewRecorder(session.Options{Frontend: "window"})
	}

	cfg = startGame(game, recorder, cfg)
	scene := game.Scene()

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	radius := int(scene.AnimalRadius)
	if radius < 1 {
		radius = 1
	}

	app := &App{
		game:     game,
		recorder: recorder,
		ticker:   newTicker(cfg.TickRate, ebiten.DefaultTPS),
		input:    core.NewInputFrame(),
		width:    int(scene.Field.Width),
		height:   int(scene.Field.Height),
		pixel:    pixel,
		animal:   ebiten.NewImageFromImage(circleMask(radius)),
		player:   ebiten.NewImageFromImage(arrowMask(playerSize)),
		face:     text.NewGoXFace(bitmapfont.Face),
	}
	return app
}

// startGame seeds and resets the game and opens the session.
// It returns the config the game was reset with.
func startGame(game Game, recorder *session.Recorder, cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg = cfg.WithSeed()
	game.Reset(cfg)
	recorder.Start(game.State())
	return cfg
}

// Update polls input and steps the game at its own tick rate.
// A mouse click closes the window.
func (a *App) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ebiten.Termination
	}

	a.pollInput()

	if !a.ticker.advance() {
		return nil
	}

	result := a.game.Step(a.input)
	a.recorder.Record(result)
	a.input.Clear()
	return nil
}

// pollInput adds the keys pressed since the last update to the frame.
func (a *App) pollInput() {
	bindings := []struct {
		keys   []ebiten.Key
		action core.Action
	}{
		{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
		{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
		{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
		{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
	}

	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				a.input.Set(b.action)
			}
		}
	}
}

// Draw draws the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	scene := a.game.Scene()
	proj := newProjection(scene.Field)

	bg := rgba[core.ColorBlack]
	if scene.Flash != core.ColorDefault {
		bg = toRGBA(scene.Flash)
	}
	screen.Fill(bg)

	// Finish line
	a.fillRect(screen, 0, proj.y(scene.Field.FinishY)-finishLineWidth/2, float64(a.width), finishLineWidth, toRGBA(core.ColorWhite))

	for _, an := range scene.Animals {
		a.drawSprite(screen, a.animal, proj.x(an.Pos.X), proj.y(an.Pos.Y), toRGBA(an.Color))
	}

	for _, v := range scene.Vehicles {
		x := proj.x(v.Pos.X) - scene.VehicleLength/2
		y := proj.y(v.Pos.Y) - scene.VehicleHeight/2
		a.fillRect(screen, x, y, scene.VehicleLength, scene.VehicleHeight, toRGBA(v.Color))
	}

	a.drawSprite(screen, a.player, proj.x(scene.Player.X), proj.y(scene.Player.Y), toRGBA(core.ColorWhite))

	// HUD in the top-left corner
	a.drawText(screen, scene.HUD, 20, 20, hudScale, toRGBA(core.ColorWhite), false)

	if scene.GameOver {
		a.drawText(screen, "GAME OVER", float64(a.width)/2, float64(a.height)/2-30, bannerScale, toRGBA(core.ColorRed), true)
		a.drawText(screen, "Press R to restart", float64(a.width)/2, float64(a.height)/2+20, hudScale, toRGBA(core.ColorWhite), true)
	} else if scene.Paused {
		a.drawText(screen, "PAUSED", float64(a.width)/2, float64(a.height)/2-30, bannerScale, toRGBA(core.ColorWhite), true)
	}
}

// Layout returns the fixed field size; ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.width, a.height
}

// fillRect draws a solid rectangle by stretching a single pixel.
func (a *App) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(a.pixel, op)
}

// drawSprite draws a white mask centred on (cx, cy) tinted with clr.
func (a *App) drawSprite(screen, img *ebiten.Image, cx, cy float64, clr color.Color) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(b.Dx())/2, cy-float64(b.Dy())/2)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(img, op)
}

// drawText draws str at (x, y). With centered set, (x, y) is the centre
// of the text, otherwise its top-left corner.
func (a *App) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color, centered bool) {
	if centered {
		x -= text.Advance(str, a.face) * scale / 2
		y -= glyphHeight * scale / 2
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, a.face, op)
}

// Run opens the window and plays until it is closed.
func Run(game Game, recorder *session.Recorder, cfg core.RuntimeConfig) error {
	app := NewApp(game, recorder, cfg)

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(game.Title())

	// Returning ebiten.Termination from Update ends RunGame without error
	err := ebiten.RunGame(app)
	app.recorder.Finish(game.State())
	return err
}
