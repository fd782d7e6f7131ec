package stick

import (
	"time"

	"github.com/vovakirdan/stickhero/internal/core"
)

// Scheduler turns host frame callbacks into Game.Tick calls. The host asks
// for a frame, passes its timestamp to Frame, renders the returned snapshot
// and asks for another frame only while Frame reports true.
//
// The loop stops by itself in WAITING and after the fall completes; Handle
// restarts it when a press leaves WAITING.
type Scheduler struct {
	game       *Game
	maxFrameMs float64

	running bool
	hasLast bool
	last    time.Time
}

// NewScheduler creates a stopped scheduler for game. Deltas above maxFrameMs
// are clamped to it; 0 disables clamping.
func NewScheduler(game *Game, maxFrameMs float64) *Scheduler {
	return &Scheduler{
		game:       game,
		maxFrameMs: maxFrameMs,
	}
}

// Game returns the driven game.
func (s *Scheduler) Game() *Game {
	return s.game
}

// Running reports whether the host should keep requesting frames.
func (s *Scheduler) Running() bool {
	return s.running
}

// Handle applies a player action. It returns true when the host must start
// requesting frames again.
func (s *Scheduler) Handle(a core.Action) bool {
	switch a {
	case core.ActionPress:
		return s.press()
	case core.ActionRelease:
		s.game.Release()
	case core.ActionStretch:
		// Keyboards have no release event: the same key drops the stick.
		if s.game.Phase() == PhaseStretching {
			s.game.Release()
			return false
		}
		return s.press()
	case core.ActionReset:
		s.Reset()
	}
	return false
}

// Reset restarts the game and stops the loop until the next press.
func (s *Scheduler) Reset() {
	s.game.Reset()
	s.running = false
	s.hasLast = false
}

func (s *Scheduler) press() bool {
	if !s.game.Press() {
		return false
	}
	// Forget the old timestamp so the idle time is not simulated.
	s.hasLast = false
	if s.running {
		return false
	}
	s.running = true
	return true
}

// Frame advances the game to now. The first frame after a (re)start only
// records the timestamp. The returned bool tells the host whether to
// schedule another frame.
func (s *Scheduler) Frame(now time.Time) (Snapshot, bool) {
	if !s.running {
		return s.game.Snapshot(), false
	}

	if !s.hasLast {
		s.last = now
		s.hasLast = true
		return s.game.Snapshot(), true
	}

	elapsed := float64(now.Sub(s.last)) / float64(time.Millisecond)
	s.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if s.maxFrameMs > 0 && elapsed > s.maxFrameMs {
		elapsed = s.maxFrameMs
	}

	s.game.Tick(elapsed)

	if s.game.Phase() == PhaseWaiting || s.game.GameOver() {
		s.running = false
	}
	return s.game.Snapshot(), s.running
}
