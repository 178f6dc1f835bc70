package window

import (
	"testing"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/games/crossing"
	"github.com/vovakirdan/roadcross/internal/session"
)

// seedGame remembers the config it was reset with.
type seedGame struct {
	resets int
	cfg    core.RuntimeConfig
}

func (g *seedGame) Title() string                           { return "Seed" }
func (g *seedGame) Reset(cfg core.RuntimeConfig)            { g.resets++; g.cfg = cfg }
func (g *seedGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *seedGame) State() core.GameState                   { return core.GameState{Level: 1, Lives: 3} }
func (g *seedGame) Scene() crossing.Scene                   { return crossing.Scene{} }

func TestStartGameSeedsFromClock(t *testing.T) {
	game := &seedGame{}
	rec := session.NewRecorder(session.Options{Frontend: "window"})

	cfg := startGame(game, rec, core.RuntimeConfig{TickRate: 10})
	if game.resets != 1 {
		t.Fatalf("game reset %d times, expected 1", game.resets)
	}
	if game.cfg.Seed == 0 {
		t.Error("game was reset with seed 0, expected a time-based seed")
	}
	if cfg.Seed != game.cfg.Seed {
		t.Errorf("startGame returned seed %d, game got %d", cfg.Seed, game.cfg.Seed)
	}

	fixed := &seedGame{}
	startGame(fixed, rec, core.RuntimeConfig{TickRate: 10, Seed: 7})
	if fixed.cfg.Seed != 7 {
		t.Errorf("game was reset with seed %d, expected explicit seed 7", fixed.cfg.Seed)
	}
}

func TestTickerDividesRate(t *testing.T) {
	tk := newTicker(10, 60)

	ticks := 0
	for i := 0; i < 600; i++ {
		if tk.advance() {
			ticks++
		}
	}
	if ticks != 100 {
		t.Errorf("10 seconds at 10 ticks/sec gave %d ticks, expected 100", ticks)
	}
}

func TestTickerUnevenRate(t *testing.T) {
	tk := newTicker(7, 60)

	ticks := 0
	for i := 0; i < 60; i++ {
		if tk.advance() {
			ticks++
		}
	}
	if ticks != 7 {
		t.Errorf("one second at 7 ticks/sec gave %d ticks", ticks)
	}
}

func TestTickerClampsRate(t *testing.T) {
	fast := newTicker(500, 60)
	for i := 0; i < 10; i++ {
		if !fast.advance() {
			t.Fatal("rate above display rate should tick on every update")
		}
	}

	zero := newTicker(0, 60)
	ticks := 0
	for i := 0; i < 120; i++ {
		if zero.advance() {
			ticks++
		}
	}
	if ticks != 2 {
		t.Errorf("zero rate should fall back to 1 tick/sec, got %d in 2 seconds", ticks)
	}
}

func TestProjection(t *testing.T) {
	p := newProjection(config.DefaultCrossingConfig().Field)

	tests := []struct {
		wx, wy float64
		px, py float64
	}{
		{0, 0, 500, 400},
		{-500, 400, 0, 0},
		{500, -400, 1000, 800},
		{0, -370, 500, 770},
		{0, 380, 500, 20},
	}

	for _, tc := range tests {
		if x, y := p.x(tc.wx), p.y(tc.wy); x != tc.px || y != tc.py {
			t.Errorf("(%v,%v) -> (%v,%v), expected (%v,%v)", tc.wx, tc.wy, x, y, tc.px, tc.py)
		}
	}
}

func TestPaletteCoversVehicleColors(t *testing.T) {
	for _, name := range config.DefaultCrossingConfig().Vehicles.Colors {
		c, ok := core.ParseColor(name)
		if !ok {
			t.Fatalf("default colour %q does not parse", name)
		}
		if _, ok := rgba[c]; !ok {
			t.Errorf("colour %q has no RGBA value", name)
		}
	}

	if toRGBA(core.ColorDefault) != rgba[core.ColorWhite] {
		t.Error("unmapped colours should fall back to white")
	}
}

func TestCircleMask(t *testing.T) {
	img := circleMask(10)

	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Fatalf("mask is %v, expected 20x20", img.Bounds())
	}
	if img.RGBAAt(10, 10).A != 255 {
		t.Error("centre should be opaque")
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("corner should be transparent")
	}
}

func TestArrowMask(t *testing.T) {
	img := arrowMask(20)

	// Narrow at the top, wide at the bottom
	if img.RGBAAt(2, 1).A != 0 {
		t.Error("top corner should be transparent")
	}
	if img.RGBAAt(10, 1).A != 255 {
		t.Error("tip should be opaque")
	}
	if img.RGBAAt(1, 19).A != 255 {
		t.Error("base should span the width")
	}
}
