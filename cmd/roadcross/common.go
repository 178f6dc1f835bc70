package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/session"
	"github.com/vovakirdan/roadcross/internal/storage"
)

// gameSetup holds everything a front end needs to start playing.
type gameSetup struct {
	cfg       config.CrossingConfig
	highScore *storage.HighScoreFile
	best      int
	store     *storage.Store
	logger    *log.Logger
	logFile   *os.File
}

// loadConfig loads the game config and applies the --difficulty preset,
// or the preset named in the config file when the flag is unset.
// Skipped config files are reported on logger.
func loadConfig(logger *log.Logger) (config.CrossingConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CrossingConfig{}, err
	}

	cfg, err := config.LoadCrossing(flagConfig, logger)
	if err != nil {
		return cfg, err
	}
	config.SelectPreset(&cfg, preset)
	return cfg, nil
}

// stderrLogger reports startup problems before a front end owns the terminal.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "roadcross"})
}

// newLogger creates the game logger. Without --log, output goes to
// fallback, which is io.Discard while the terminal UI owns the screen.
func newLogger(fallback io.Writer) (*log.Logger, *os.File, error) {
	var w io.Writer = fallback
	var file *os.File

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, file = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadcross",
		Level:           log.DebugLevel,
	})
	return logger, file, nil
}

// newGameSetup loads config, highscore and round history.
// A malformed highscore file is fatal; a history database that cannot be
// opened only disables the history.
func newGameSetup(logOutput io.Writer) (*gameSetup, error) {
	if flagFPS <= 0 {
		return nil, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := loadConfig(stderrLogger())
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(logOutput)
	if err != nil {
		return nil, err
	}

	hs, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		closeFile(logFile)
		return nil, err
	}
	best, err := hs.Load()
	if err != nil {
		closeFile(logFile)
		if errors.Is(err, storage.ErrMalformedHighScore) {
			return nil, fmt.Errorf("%w (fix or delete the file, or run 'roadcross highscore --reset')", err)
		}
		return nil, err
	}
	logger.Info("highscore loaded", "path", hs.Path(), "highscore", best)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round history", "error", err)
		// Continue without history - game still works
		store = nil
	}

	return &gameSetup{
		cfg:       cfg,
		highScore: hs,
		best:      best,
		store:     store,
		logger:    logger,
		logFile:   logFile,
	}, nil
}

// recorder wires the highscore file and round history to a front end.
func (s *gameSetup) recorder(frontend string) *session.Recorder {
	opts := session.Options{
		HighScore: s.highScore,
		Logger:    s.logger,
		Preset:    string(s.cfg.Difficulty.Preset),
		Frontend:  frontend,
	}
	// Leave Rounds nil rather than a nil *Store
	if s.store != nil {
		opts.Rounds = s.store
	}
	return session.NewRecorder(opts)
}

// runtime returns the runtime config for a screen of the given size.
// The seed is resolved here so it can be logged and replayed with --seed.
func (s *gameSetup) runtime(width, height int) core.RuntimeConfig {
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}.WithSeed()
	s.logger.Info("game seeded", "seed", cfg.Seed)
	return cfg
}

// Close releases the history database and the log file.
func (s *gameSetup) Close() {
	if s.store != nil {
		s.store.Close()
	}
	closeFile(s.logFile)
}

func closeFile(f *os.File) {
	if f != nil {
		f.Close()
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
