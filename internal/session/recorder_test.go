package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/storage"
)

type fakeHighScore struct {
	saved []int
	err   error
}

func (f *fakeHighScore) Save(score int) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, score)
	return nil
}

type fakeRounds struct {
	rounds []storage.Round
	err    error
}

func (f *fakeRounds) SaveRound(r storage.Round) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.rounds = append(f.rounds, r)
	return "round-id", nil
}

func roundOver(level, high int, newHigh bool) core.StepResult {
	events := []core.Event{core.EventHit, core.EventRoundOver}
	if newHigh {
		events = append(events, core.EventNewHighScore)
	}
	return core.StepResult{
		State:  core.GameState{Level: level, Lives: 0, HighScore: high, GameOver: true},
		Events: events,
	}
}

func TestRecorderSavesRoundAndHighScore(t *testing.T) {
	hs := &fakeHighScore{}
	rounds := &fakeRounds{}
	rec := NewRecorder(Options{HighScore: hs, Rounds: rounds, Preset: "hard", Frontend: "terminal"})

	rec.Record(roundOver(4, 4, true))

	if len(hs.saved) != 1 || hs.saved[0] != 4 {
		t.Errorf("highscore saves = %v, expected [4]", hs.saved)
	}
	if len(rounds.rounds) != 1 {
		t.Fatalf("rounds saved = %d, expected 1", len(rounds.rounds))
	}
	got := rounds.rounds[0]
	if got.Level != 4 || got.Preset != "hard" || got.Frontend != "terminal" {
		t.Errorf("saved round = %+v", got)
	}
}

func TestRecorderSkipsHighScoreWhenNotBeaten(t *testing.T) {
	hs := &fakeHighScore{}
	rounds := &fakeRounds{}
	rec := NewRecorder(Options{HighScore: hs, Rounds: rounds})

	rec.Record(roundOver(2, 6, false))

	if len(hs.saved) != 0 {
		t.Errorf("highscore saved %v without being beaten", hs.saved)
	}
	if len(rounds.rounds) != 1 {
		t.Errorf("round should still be recorded, got %d", len(rounds.rounds))
	}
}

func TestRecorderIgnoresOrdinarySteps(t *testing.T) {
	hs := &fakeHighScore{}
	rounds := &fakeRounds{}
	rec := NewRecorder(Options{HighScore: hs, Rounds: rounds})

	rec.Record(core.StepResult{State: core.GameState{Level: 1, Lives: 3}})
	rec.Record(core.StepResult{
		State:  core.GameState{Level: 2, Lives: 3},
		Events: []core.Event{core.EventLevelUp},
	})
	rec.Record(core.StepResult{
		State:  core.GameState{Level: 2, Lives: 2},
		Events: []core.Event{core.EventHit},
	})

	if len(hs.saved) != 0 || len(rounds.rounds) != 0 {
		t.Errorf("unexpected saves: highscore %v rounds %v", hs.saved, rounds.rounds)
	}
}

func TestRecorderLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	rec := NewRecorder(Options{
		HighScore: &fakeHighScore{err: errors.New("disk full")},
		Rounds:    &fakeRounds{err: errors.New("database locked")},
		Logger:    logger,
	})

	rec.Record(roundOver(3, 3, true))

	out := buf.String()
	if !strings.Contains(out, "could not save highscore") || !strings.Contains(out, "disk full") {
		t.Errorf("highscore failure not logged: %q", out)
	}
	if !strings.Contains(out, "could not save round") || !strings.Contains(out, "database locked") {
		t.Errorf("round failure not logged: %q", out)
	}
}

func TestRecorderWithoutStorage(t *testing.T) {
	rec := NewRecorder(Options{})

	// Must not panic
	rec.Start(core.GameState{Level: 1, Lives: 3})
	rec.Record(roundOver(5, 5, true))
	rec.Finish(core.GameState{Level: 5, HighScore: 5, GameOver: true})
}

func TestRecorderFinishLogsRoundCount(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	rec := NewRecorder(Options{Logger: logger, Frontend: "terminal"})

	rec.Record(roundOver(2, 6, false))
	rec.Record(roundOver(3, 6, false))
	rec.Finish(core.GameState{Level: 1, Lives: 3, HighScore: 6})

	out := buf.String()
	if !strings.Contains(out, "session ended") {
		t.Fatalf("session end not logged: %q", out)
	}
	if !strings.Contains(out, "rounds=2") {
		t.Errorf("session end should report 2 rounds: %q", out)
	}
}

func TestRecorderWithRealStorage(t *testing.T) {
	dir := t.TempDir()

	hs, err := storage.NewHighScoreFile(filepath.Join(dir, "highscore.txt"))
	if err != nil {
		t.Fatal(err)
	}
	store, err := storage.Open(filepath.Join(dir, "rounds.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	rec := NewRecorder(Options{HighScore: hs, Rounds: store, Preset: "normal", Frontend: "window"})
	rec.Record(roundOver(7, 7, true))

	score, err := hs.Load()
	if err != nil || score != 7 {
		t.Errorf("highscore file = %d, %v; expected 7", score, err)
	}
	best, err := store.BestLevel()
	if err != nil || best != 7 {
		t.Errorf("BestLevel() = %d, %v; expected 7", best, err)
	}
}
