package stick

import (
	"strings"
	"testing"

	"github.com/vovakirdan/stickhero/internal/config"
	"github.com/vovakirdan/stickhero/internal/core"
)

func screenContains(s *core.Screen, r rune) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.ContainsRune(s.Row(y), r) {
			return true
		}
	}
	return false
}

func TestRenderStartingScreen(t *testing.T) {
	g := New(config.DefaultStickConfig(), 1)
	screen := core.NewScreen(80, 24)

	Render(screen, g.Snapshot())

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Max Score: 0") {
		t.Errorf("HUD row = %q, expected the max score", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "SPACE to stretch") {
		t.Error("introduction hint should be visible")
	}

	// Seed platform spans world x 50..100, i.e. columns 5..9 at 10 units per cell.
	bottom := screen.Height() - 1
	if c := screen.GetCell(5, bottom); c.Rune != PlatformChar || c.Color != core.ColorGray {
		t.Errorf("cell (5,%d) = %+v, expected a platform", bottom, c)
	}
	if got := screen.Get(2, bottom); got != ' ' {
		t.Errorf("cell (2,%d) = %q, expected empty space left of the seed platform", bottom, got)
	}
	if !screenContains(screen, BandChar) {
		t.Error("hero head band should be drawn")
	}
}

func TestRenderStickOrientation(t *testing.T) {
	g := newFixedGame(t, &MemoryBest{}, Platform{X: 50, Width: 50}, Platform{X: 150, Width: 100})
	screen := core.NewScreen(80, 24)

	g.Press()
	g.Tick(300)
	Render(screen, g.Snapshot())
	if !screenContains(screen, StickUp) {
		t.Error("a stretching stick should be drawn upright")
	}

	g.Release()
	g.Tick(360)
	Render(screen, g.Snapshot())
	if !screenContains(screen, StickFlat) {
		t.Error("a turned stick should be drawn flat")
	}
	if screenContains(screen, StickUp) {
		t.Error("no upright stick expected once it lies flat")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newFixedGame(t, &MemoryBest{}, Platform{X: 50, Width: 50}, Platform{X: 300, Width: 50})
	g.Press()
	g.Tick(30)
	g.Release()
	g.Tick(360)
	g.Tick(100)
	g.Tick(1000)

	screen := core.NewScreen(80, 24)
	Render(screen, g.Snapshot())

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over box missing")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("restart control should be shown after game over")
	}
	if strings.Contains(out, "SPACE to stretch") {
		t.Error("introduction hint should be hidden after game over")
	}
}

func TestRenderFollowsCamera(t *testing.T) {
	g := New(config.DefaultStickConfig(), 1)
	snap := g.Snapshot()
	snap.SceneOffset = 100 // seed platform ends exactly at the left edge

	screen := core.NewScreen(80, 24)
	Render(screen, snap)
	bottom := screen.Height() - 1
	if got := screen.Get(0, bottom); got == PlatformChar {
		t.Error("seed platform should have scrolled off screen")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultStickConfig(), 1)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {10, 3}} {
		screen := core.NewScreen(size[0], size[1])
		Render(screen, g.Snapshot()) // must not panic
	}
}

func TestStickRune(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, StickUp},
		{45, StickRising},
		{90, StickFlat},
		{135, StickFalling},
		{180, StickUp},
	}
	for _, tc := range tests {
		if got := stickRune(tc.rotation); got != tc.want {
			t.Errorf("stickRune(%v) = %q, expected %q", tc.rotation, got, tc.want)
		}
	}
}
