package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/roadcross/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Level: 1", core.ColorWhite)
	s.SetColored(3, 1, '█', core.ColorOrange)
	s.SetColored(4, 1, '█', core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "Level: 1") {
		t.Errorf("text missing from output: %q", out)
	}
	if !strings.Contains(lines[1], "██") {
		t.Errorf("vehicle missing from output: %q", lines[1])
	}
}

func TestRenderScreenWithFlash(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetBackground(core.ColorRed)
	s.Clear()
	s.DrawText(0, 0, "ab")

	if !strings.Contains(RenderScreen(s), "ab") {
		t.Error("text missing from flashed output")
	}
}

func TestCellStyleUnknownColor(t *testing.T) {
	// Unmapped colours render unstyled
	if got := cellStyle(core.ColorDefault, core.ColorDefault).Render("x"); got != "x" {
		t.Errorf("default style rendered %q", got)
	}
}
