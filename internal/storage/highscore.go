package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMalformedHighScore is returned when the highscore file does not hold
// a single non-negative decimal integer.
var ErrMalformedHighScore = errors.New("storage: malformed highscore file")

// HighScoreFile persists the best level ever reached as a decimal integer
// in a plain text file.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile returns a highscore file at the given path.
// A leading ~ is expanded to the home directory.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (h *HighScoreFile) Path() string {
	return h.path
}

// Load reads the highscore. A missing file means a highscore of 0.
func (h *HighScoreFile) Load() (int, error) {
	data, err := os.ReadFile(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read highscore %s: %w", h.path, err)
	}

	text := strings.TrimSpace(string(data))
	score, err := strconv.Atoi(text)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %s: %q", ErrMalformedHighScore, h.path, text)
	}
	return score, nil
}

// Save writes the highscore, replacing the previous value atomically.
func (h *HighScoreFile) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: refusing to save negative highscore %d", score)
	}

	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	if err := os.Rename(tmpName, h.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace highscore %s: %w", h.path, err)
	}
	return nil
}

// Reset removes the highscore file. A missing file is not an error.
func (h *HighScoreFile) Reset() error {
	if err := os.Remove(h.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove highscore %s: %w", h.path, err)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
