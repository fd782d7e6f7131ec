package stick

import (
	"github.com/vovakirdan/stickhero/internal/config"
	"github.com/vovakirdan/stickhero/internal/core"
)

// ID is the identifier used for score storage.
const ID = "stickhero"

// Title is the human-readable name of the game.
const Title = "Stick Hero"

// ScoreObserver receives the score and best score after every change.
type ScoreObserver func(score, maxScore int)

// GameOverObserver is called exactly once when the fall completes.
type GameOverObserver func(score, maxScore int)

// Option configures a Game at construction.
type Option func(*Game)

// WithMaxScoreStore sets where the best score is read from and written to.
func WithMaxScoreStore(s MaxScoreStore) Option {
	return func(g *Game) {
		if s != nil {
			g.best = s
		}
	}
}

// WithScoreObserver registers the score display collaborator.
func WithScoreObserver(fn ScoreObserver) Option {
	return func(g *Game) {
		g.onScore = fn
	}
}

// WithGameOverObserver registers a callback for the end of the game.
func WithGameOverObserver(fn GameOverObserver) Option {
	return func(g *Game) {
		g.onGameOver = fn
	}
}

// Game owns the complete simulation state. It is not safe for concurrent
// use; the host drives it from a single goroutine.
type Game struct {
	cfg config.StickConfig
	gen *Generator

	phase     Phase
	platforms []Platform
	sticks    []Stick

	heroX       float64 // Hero's right side in world coordinates
	heroY       float64 // Drop below the ground line, only grows while falling
	sceneOffset float64

	// landing is the platform the active stick resolved to when it finished
	// turning. The stick is frozen from then on, so it stays valid through
	// WALKING and TRANSITION.
	landing Platform
	landed  bool

	score        int
	maxScore     int
	gameOver     bool
	introduction bool

	best       MaxScoreStore
	onScore    ScoreObserver
	onGameOver GameOverObserver
}

// New creates a game and resets it to the starting layout.
func New(cfg config.StickConfig, seed int64, opts ...Option) *Game {
	g := &Game{
		cfg:  cfg,
		gen:  NewGenerator(seed, cfg.Layout),
		best: &MemoryBest{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset restores the starting layout: the seed platform plus freshly
// generated ones, a zero-length stick, score 0 and the persisted best score.
// It is accepted in every phase.
func (g *Game) Reset() {
	g.phase = PhaseWaiting

	g.platforms = make([]Platform, 0, g.cfg.Layout.InitialPlatforms+8)
	g.platforms = append(g.platforms, Platform{X: g.cfg.Layout.SeedX, Width: g.cfg.Layout.SeedWidth})
	for len(g.platforms) < g.cfg.Layout.InitialPlatforms {
		g.platforms = g.gen.Append(g.platforms)
	}

	first := g.platforms[0]
	g.heroX = first.Right() - g.cfg.Hero.EdgeMargin
	g.heroY = 0
	g.sceneOffset = 0
	g.sticks = []Stick{{X: first.Right()}}

	g.landing = Platform{}
	g.landed = false
	g.score = 0
	g.gameOver = false
	g.introduction = true

	g.maxScore = 0
	if stored, ok := g.best.ReadMaxScore(); ok && stored > 0 {
		g.maxScore = stored
	}
	g.notifyScore()
}

// Press starts stretching the stick. It reports whether the game left
// WAITING; presses in any other phase are ignored.
func (g *Game) Press() bool {
	if g.phase != PhaseWaiting {
		return false
	}
	g.phase = PhaseStretching
	return true
}

// Release stops stretching and lets the stick turn. Releases outside
// STRETCHING are ignored.
func (g *Game) Release() bool {
	if g.phase != PhaseStretching {
		return false
	}
	g.phase = PhaseTurning
	return true
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of successful landings in this game.
func (g *Game) Score() int {
	return g.score
}

// MaxScore returns the best score, including the current game.
func (g *Game) MaxScore() int {
	return g.maxScore
}

// GameOver reports whether the fall has completed.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// HeroX returns the hero's horizontal world position.
func (g *Game) HeroX() float64 {
	return g.heroX
}

// HeroY returns how far the hero has dropped below the ground line.
func (g *Game) HeroY() float64 {
	return g.heroY
}

// SceneOffset returns the camera shift.
func (g *Game) SceneOffset() float64 {
	return g.sceneOffset
}

// ActiveStick returns the stick currently being played.
func (g *Game) ActiveStick() Stick {
	return g.sticks[len(g.sticks)-1]
}

// Platforms returns a copy of the platform layout.
func (g *Game) Platforms() []Platform {
	return append([]Platform(nil), g.platforms...)
}

// Sticks returns a copy of all sticks, the active one last.
func (g *Game) Sticks() []Stick {
	return append([]Stick(nil), g.sticks...)
}

// State returns the score summary used by the host.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		MaxScore: g.maxScore,
		GameOver: g.gameOver,
	}
}

// activeStick returns a pointer to the last stick for in-place updates.
func (g *Game) activeStick() *Stick {
	return &g.sticks[len(g.sticks)-1]
}

// raiseMaxScore records the current score as the best one when it is higher.
func (g *Game) raiseMaxScore() bool {
	if g.score <= g.maxScore {
		return false
	}
	g.maxScore = g.score
	g.best.WriteMaxScore(g.maxScore)
	return true
}

func (g *Game) notifyScore() {
	if g.onScore != nil {
		g.onScore(g.score, g.maxScore)
	}
}
