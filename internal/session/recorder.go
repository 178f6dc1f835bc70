// Package session turns the events of a running game into persistence and
// log lines. Both front ends pass every step result through a Recorder.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/storage"
)

// HighScoreSaver persists the best level ever reached.
type HighScoreSaver interface {
	Save(score int) error
}

// RoundSaver records finished rounds.
type RoundSaver interface {
	SaveRound(r storage.Round) (string, error)
}

// Options configures a Recorder. Every field is optional.
type Options struct {
	HighScore HighScoreSaver
	Rounds    RoundSaver
	Logger    *log.Logger
	Preset    string // Difficulty preset stored with each round
	Frontend  string // "terminal" or "window"
}

// Recorder saves the highscore and finished rounds as events arrive.
// Storage failures are logged and never interrupt the game.
type Recorder struct {
	highScore HighScoreSaver
	rounds    RoundSaver
	logger    *log.Logger
	preset    string
	frontend  string

	roundsPlayed int
}

// NewRecorder creates a recorder. A nil logger discards log output.
func NewRecorder(opts Options) *Recorder {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		highScore: opts.HighScore,
		rounds:    opts.Rounds,
		logger:    logger,
		preset:    opts.Preset,
		frontend:  opts.Frontend,
	}
}

// Start logs the beginning of a game session.
func (r *Recorder) Start(state core.GameState) {
	r.logger.Info("round started",
		"frontend", r.frontend,
		"preset", r.preset,
		"highscore", state.HighScore,
	)
}

// Record handles the events of one step.
func (r *Recorder) Record(result core.StepResult) {
	state := result.State

	for _, ev := range result.Events {
		switch ev {
		case core.EventHit:
			r.logger.Debug("player hit", "lives", state.Lives, "level", state.Level)

		case core.EventLevelUp:
			r.logger.Info("level up", "level", state.Level)

		case core.EventRestart:
			r.logger.Info("round restarted")

		case core.EventRoundOver:
			r.roundsPlayed++
			r.saveRound(state)

		case core.EventNewHighScore:
			r.saveHighScore(state.HighScore)
		}
	}
}

// Finish logs the end of a game session with the final state.
func (r *Recorder) Finish(state core.GameState) {
	r.logger.Info("session ended",
		"frontend", r.frontend,
		"rounds", r.roundsPlayed,
		"level", state.Level,
		"highscore", state.HighScore,
	)
}

func (r *Recorder) saveRound(state core.GameState) {
	if r.rounds == nil {
		r.logger.Info("round over", "level", state.Level)
		return
	}

	id, err := r.rounds.SaveRound(storage.Round{
		Level:    state.Level,
		Preset:   r.preset,
		Frontend: r.frontend,
	})
	if err != nil {
		r.logger.Warn("could not save round", "level", state.Level, "error", err)
		return
	}
	r.logger.Info("round over", "level", state.Level, "round", id)
}

func (r *Recorder) saveHighScore(score int) {
	if r.highScore == nil {
		return
	}
	if err := r.highScore.Save(score); err != nil {
		r.logger.Error("could not save highscore", "highscore", score, "error", err)
		return
	}
	r.logger.Info("new highscore", "highscore", score)
}
