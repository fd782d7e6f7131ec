package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickhero/internal/config"
	"github.com/vovakirdan/stickhero/internal/stick"
)

func TestBestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	best := NewBestScore(store, stick.ID, nil)

	if _, ok := best.ReadMaxScore(); ok {
		t.Fatal("nothing should be stored yet")
	}
	best.WriteMaxScore(6)
	if got, ok := best.ReadMaxScore(); !ok || got != 6 {
		t.Errorf("ReadMaxScore() = %d, %v; expected 6, true", got, ok)
	}
}

func TestBestScoreNilStore(t *testing.T) {
	best := NewBestScore(nil, stick.ID, nil)
	best.WriteMaxScore(3)
	if _, ok := best.ReadMaxScore(); ok {
		t.Error("a nil store should never report a stored score")
	}
}

func TestBestScoreLogsErrors(t *testing.T) {
	store := openTestStore(t)
	store.Close()

	var buf bytes.Buffer
	best := NewBestScore(store, stick.ID, log.New(&buf))

	if _, ok := best.ReadMaxScore(); ok {
		t.Error("a closed store should read as nothing stored")
	}
	best.WriteMaxScore(1)

	out := buf.String()
	if !strings.Contains(out, "Cannot read best score") || !strings.Contains(out, "Cannot write best score") {
		t.Errorf("expected both failures to be logged, got %q", out)
	}
}

// A landing persists the new best score through the adapter.
func TestBestScorePersistsLanding(t *testing.T) {
	store := openTestStore(t)
	cfg := config.DefaultStickConfig()
	g := stick.New(cfg, 1, stick.WithMaxScoreStore(NewBestScore(store, stick.ID, nil)))

	// Aim at the middle of the first generated platform.
	platforms := g.Platforms()
	target := platforms[1].X + platforms[1].Width/2 - g.ActiveStick().X

	g.Press()
	g.Tick(target * cfg.Speed.StretchMs)
	g.Release()
	g.Tick(90 * cfg.Speed.TurnMs)

	if g.Score() != 1 {
		t.Fatalf("expected a landing, score = %d", g.Score())
	}
	got, ok, err := store.ReadBest(stick.ID)
	if err != nil || !ok || got != 1 {
		t.Errorf("persisted best = %d, %v, %v; expected 1", got, ok, err)
	}

	// A new game reads it back.
	g2 := stick.New(cfg, 2, stick.WithMaxScoreStore(NewBestScore(store, stick.ID, nil)))
	if g2.MaxScore() != 1 {
		t.Errorf("new game MaxScore() = %d, expected 1", g2.MaxScore())
	}
}
