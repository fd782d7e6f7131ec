package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickhero/internal/config"
	"github.com/vovakirdan/stickhero/internal/stick"
	"github.com/vovakirdan/stickhero/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// land stretches the active stick to the middle of the next platform and
// plays until the hero waits again.
func land(t *testing.T, g *stick.Game, cfg config.StickConfig) {
	t.Helper()
	s := g.ActiveStick()
	for _, p := range g.Platforms() {
		if p.X > s.X {
			g.Press()
			g.Tick((p.X + p.Width/2 - s.X) * cfg.Speed.StretchMs)
			g.Release()
			for i := 0; i < 100 && g.Phase() != stick.PhaseWaiting; i++ {
				g.Tick(100)
			}
			return
		}
	}
	t.Fatal("no platform ahead")
}

// fall drops a short stick and plays until the game ends.
func fall(g *stick.Game) {
	g.Press()
	g.Tick(15)
	g.Release()
	for i := 0; i < 100 && !g.GameOver(); i++ {
		g.Tick(100)
	}
}

func TestNewGameSavesHistoryOnce(t *testing.T) {
	store := openStore(t)
	cfg := config.DefaultStickConfig()
	g := NewGame(cfg, 3, store, log.New(&bytes.Buffer{}))

	land(t, g, cfg)
	land(t, g, cfg)
	if g.Score() != 2 {
		t.Fatalf("expected two landings, score = %d", g.Score())
	}
	fall(g)
	if !g.GameOver() {
		t.Fatal("expected game over")
	}
	g.Tick(100)

	scores, err := store.TopScores(stick.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 2 {
		t.Errorf("history = %+v, expected one entry with score 2", scores)
	}
	if best, ok, _ := store.ReadBest(stick.ID); !ok || best != 2 {
		t.Errorf("best = %d (%v), expected 2", best, ok)
	}
}

func TestNewGameSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	g := NewGame(config.DefaultStickConfig(), 3, store, log.New(&bytes.Buffer{}))

	fall(g)
	if !g.GameOver() {
		t.Fatal("expected game over")
	}

	scores, _ := store.TopScores(stick.ID, 10)
	if len(scores) != 0 {
		t.Errorf("a zero score should not be recorded, got %+v", scores)
	}
}

func TestNewGameWithoutStore(t *testing.T) {
	cfg := config.DefaultStickConfig()
	g := NewGame(cfg, 3, nil, nil)

	land(t, g, cfg)
	fall(g)
	if !g.GameOver() || g.MaxScore() != 1 {
		t.Errorf("game without a store should still track the best score, got %d", g.MaxScore())
	}
}

func TestNewGameReadsStoredBest(t *testing.T) {
	store := openStore(t)
	if err := store.WriteBest(stick.ID, 11); err != nil {
		t.Fatalf("WriteBest() failed: %v", err)
	}

	g := NewGame(config.DefaultStickConfig(), 1, store, nil)
	if g.MaxScore() != 11 {
		t.Errorf("MaxScore() = %d, expected 11", g.MaxScore())
	}
}
