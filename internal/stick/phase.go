package stick

import (
	"math"

	"github.com/vovakirdan/stickhero/internal/core"
)

const (
	flatRotation   = 90.0
	fallenRotation = 180.0
)

// Tick advances the simulation by elapsedMs milliseconds. Every phase moves
// one scalar by elapsedMs divided by its rate, so the outcome does not depend
// on how the time is split into frames, except at phase boundaries, where the
// remainder of a frame is dropped. Zero, negative and NaN deltas are no-ops.
func (g *Game) Tick(elapsedMs float64) {
	if !(elapsedMs > 0) || g.gameOver {
		return
	}

	switch g.phase {
	case PhaseWaiting:
		// Idle until Press
	case PhaseStretching:
		g.stepStretching(elapsedMs)
	case PhaseTurning:
		g.stepTurning(elapsedMs)
	case PhaseWalking:
		g.stepWalking(elapsedMs)
	case PhaseTransition:
		g.stepTransition(elapsedMs)
	case PhaseFalling:
		g.stepFalling(elapsedMs)
	}
}

func (g *Game) stepStretching(dt float64) {
	s := g.activeStick()
	s.Length += dt / g.cfg.Speed.StretchMs

	// Keep a platform under every point the stick could reach.
	g.platforms = g.gen.Cover(g.platforms, s.Tip())
}

func (g *Game) stepTurning(dt float64) {
	s := g.activeStick()
	s.Rotation += dt / g.cfg.Speed.TurnMs
	if s.Rotation < flatRotation {
		return
	}
	s.Rotation = flatRotation

	// Landing is decided exactly once, here.
	g.landing, g.landed = FindLandingPlatform(g.platforms, s.Tip())
	if g.landed {
		g.score++
		g.raiseMaxScore()
		g.platforms = g.gen.Append(g.platforms)
		g.notifyScore()
	}

	g.phase = PhaseWalking
}

func (g *Game) stepWalking(dt float64) {
	g.introduction = false
	next := g.heroX + dt/g.cfg.Speed.WalkMs

	if g.landed {
		// Stop just before the far edge of the landed platform.
		limit := g.landing.Right() - g.cfg.Hero.EdgeMargin
		if next > limit {
			next = math.Max(limit, g.heroX)
			g.phase = PhaseTransition
		}
	} else {
		// Walk to the end of the stick and drop.
		limit := g.ActiveStick().Tip()
		if next > limit {
			next = math.Max(limit, g.heroX)
			g.phase = PhaseFalling
			if g.raiseMaxScore() {
				g.notifyScore()
			}
		}
	}

	g.heroX = next
}

func (g *Game) stepTransition(dt float64) {
	g.sceneOffset += dt / g.cfg.Speed.TransitionMs

	edge := g.landing.Right()
	if edge-g.sceneOffset >= g.cfg.Thresholds.Camera {
		return
	}

	g.sticks = append(g.sticks, Stick{X: edge})
	g.landed = false
	g.phase = PhaseWaiting
	g.prune(edge)
}

func (g *Game) stepFalling(dt float64) {
	g.heroY += dt / g.cfg.Speed.FallMs

	s := g.activeStick()
	s.Rotation = core.ClampF(s.Rotation+dt/g.cfg.Speed.TurnMs, 0, fallenRotation)

	if g.heroY <= g.cfg.Canvas.PlatformHeight+g.cfg.Thresholds.Fall {
		return
	}
	g.gameOver = true
	if g.onGameOver != nil {
		g.onGameOver(g.score, g.maxScore)
	}
}

// prune drops platforms and sticks that have scrolled entirely off the left
// side. Everything from the platform under the hero onwards is kept, and so
// is the active stick, so landing resolution is unaffected.
func (g *Game) prune(heroPlatformRight float64) {
	drop := 0
	for drop < len(g.platforms)-1 {
		p := g.platforms[drop]
		if p.Right() >= g.sceneOffset || p.Right() >= heroPlatformRight {
			break
		}
		drop++
	}
	if drop > 0 {
		g.platforms = append([]Platform(nil), g.platforms[drop:]...)
	}

	drop = 0
	for drop < len(g.sticks)-1 && g.sticks[drop].Tip() < g.sceneOffset {
		drop++
	}
	if drop > 0 {
		g.sticks = append([]Stick(nil), g.sticks[drop:]...)
	}
}
