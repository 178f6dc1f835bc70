package crossing

import (
	"fmt"
	"strings"
)

// ScoreState tracks level, lives and the best level ever reached.
type ScoreState struct {
	level     int
	lives     int
	maxLives  int
	highScore int
}

// NewScoreState starts at level 1 with full lives.
func NewScoreState(lives, highScore int) *ScoreState {
	s := &ScoreState{maxLives: lives, highScore: highScore}
	s.Reset()
	return s
}

// NextLevel is called when the player reaches the finish line.
func (s *ScoreState) NextLevel() {
	s.level++
}

// LoseLife takes one life and reports whether that ended the round.
// Lives never drop below zero.
func (s *ScoreState) LoseLife() bool {
	if s.lives > 0 {
		s.lives--
	}
	return s.lives == 0
}

// GameOver reports whether the round has ended.
func (s *ScoreState) GameOver() bool {
	return s.lives == 0
}

// RecordHighScore raises the highscore to the current level if it was
// beaten. Returns true if the highscore changed.
func (s *ScoreState) RecordHighScore() bool {
	if s.level <= s.highScore {
		return false
	}
	s.highScore = s.level
	return true
}

// Reset starts a new round. The highscore is kept.
func (s *ScoreState) Reset() {
	s.level = 1
	s.lives = s.maxLives
}

// Level returns the current level.
func (s *ScoreState) Level() int { return s.level }

// Lives returns the remaining lives.
func (s *ScoreState) Lives() int { return s.lives }

// HighScore returns the best level ever reached.
func (s *ScoreState) HighScore() int { return s.highScore }

// HUD returns the status line, e.g. "Level: 2  ♥ ♥ ♥  Highscore: 5".
func (s *ScoreState) HUD() string {
	hearts := strings.TrimSpace(strings.Repeat("♥ ", s.lives))
	return fmt.Sprintf("Level: %d  %s  Highscore: %d", s.level, hearts, s.highScore)
}
