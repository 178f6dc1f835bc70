package core

import "testing"

func TestInputFrameCountsPresses(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionUp)
	f.Set(ActionDown)

	if f.Count(ActionUp) != 2 {
		t.Errorf("Count(Up) = %d, expected 2", f.Count(ActionUp))
	}
	if !f.Has(ActionDown) {
		t.Error("Has(Down) should be true")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(Restart) should be false")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Count(ActionDown) != 0 {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("Zero-value frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero-value frame should allocate")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventHit, EventRoundOver}}
	if !r.Has(EventRoundOver) {
		t.Error("Has(RoundOver) should be true")
	}
	if r.Has(EventLevelUp) {
		t.Error("Has(LevelUp) should be false")
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("orange")
	if !ok || c != ColorOrange {
		t.Errorf("ParseColor(orange) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
	if ColorPink.String() != "pink" {
		t.Errorf("ColorPink.String() = %q", ColorPink.String())
	}
}
