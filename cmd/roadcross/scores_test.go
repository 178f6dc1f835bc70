package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/roadcross/internal/storage"
)

// withScoreFlags resets the scores command flags for one test.
func withScoreFlags(t *testing.T) {
	t.Helper()
	plain, limit, id := flagPlain, flagLimit, flagID
	t.Cleanup(func() {
		flagPlain, flagLimit, flagID = plain, limit, id
	})
	flagPlain, flagLimit, flagID = true, 10, ""
}

func TestShowScoresMissingRoundReturnsError(t *testing.T) {
	withFlags(t)
	withScoreFlags(t)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	flagID = "missing"
	if err := showScores(store); !errors.Is(err, errRoundNotFound) {
		t.Errorf("showScores() error = %v, expected errRoundNotFound", err)
	}

	// The caller still owns an open store
	if _, err := store.BestLevel(); err != nil {
		t.Errorf("store unusable after showScores(): %v", err)
	}
}

func TestShowScoresPrintsRound(t *testing.T) {
	withFlags(t)
	withScoreFlags(t)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveRound(storage.Round{Level: 3, Preset: "normal", Frontend: "window"})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	flagID = id
	if err := showScores(store); err != nil {
		t.Errorf("showScores() with a known ID failed: %v", err)
	}

	flagID = ""
	if err := showScores(store); err != nil {
		t.Errorf("showScores() plain listing failed: %v", err)
	}
}

func TestClearHistory(t *testing.T) {
	withFlags(t)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveRound(storage.Round{Level: 5})
	store.Close()

	if err := clearHistory(flagDBPath); err != nil {
		t.Fatalf("clearHistory() failed: %v", err)
	}

	reopened, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer reopened.Close()
	if best, err := reopened.BestLevel(); err != nil || best != 0 {
		t.Errorf("BestLevel() after clearHistory() = %d, %v; expected 0", best, err)
	}
}
