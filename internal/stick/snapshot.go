package stick

import "github.com/vovakirdan/stickhero/internal/config"

// Snapshot is everything the renderer needs for one frame. Slices are copies,
// so a snapshot stays valid after the game moves on.
type Snapshot struct {
	Phase        Phase
	Platforms    []Platform
	Sticks       []Stick
	HeroX        float64
	HeroY        float64
	SceneOffset  float64
	Score        int
	MaxScore     int
	GameOver     bool
	Introduction bool // Show the how-to-play hint
	Canvas       config.CanvasConfig
	Hero         config.HeroConfig
}

// Snapshot returns the current render state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:        g.phase,
		Platforms:    g.Platforms(),
		Sticks:       g.Sticks(),
		HeroX:        g.heroX,
		HeroY:        g.heroY,
		SceneOffset:  g.sceneOffset,
		Score:        g.score,
		MaxScore:     g.maxScore,
		GameOver:     g.gameOver,
		Introduction: g.introduction,
		Canvas:       g.cfg.Canvas,
		Hero:         g.cfg.Hero,
	}
}
