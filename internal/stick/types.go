// Package stick implements Stick Hero: the hero stretches a stick, drops it
// across the gap, and walks over to the next platform until a stick falls
// short or overshoots.
//
// The package is pure simulation. Time enters only through Game.Tick and
// Scheduler.Frame, input only through Press/Release/Reset, and all I/O is
// delegated to the MaxScoreStore and observer callbacks.
package stick

// Phase is the current state of the per-frame control loop.
type Phase int

const (
	PhaseWaiting    Phase = iota // idle until the player presses
	PhaseStretching              // stick grows while the press is held
	PhaseTurning                 // stick rotates down towards 90 degrees
	PhaseWalking                 // hero walks along the stick
	PhaseTransition              // camera scrolls to the landed platform
	PhaseFalling                 // hero and stick fall, the game ends
)

var phaseNames = map[Phase]string{
	PhaseWaiting:    "WAITING",
	PhaseStretching: "STRETCHING",
	PhaseTurning:    "TURNING",
	PhaseWalking:    "WALKING",
	PhaseTransition: "TRANSITION",
	PhaseFalling:    "FALLING",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// Platform is a pillar the hero can stand on. X is the left edge in world
// coordinates.
type Platform struct {
	X     float64
	Width float64
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.Width
}

// Contains reports whether x lies strictly inside the platform.
// Touching either edge is not a landing.
func (p Platform) Contains(x float64) bool {
	return p.X < x && x < p.Right()
}

// Stick is a bridge anchored at X on the ground line. Rotation is in degrees:
// 0 points up, 90 lies flat towards the next platform, 180 hangs down.
type Stick struct {
	X        float64
	Length   float64
	Rotation float64
}

// Tip returns the x-coordinate of the stick's far end once it lies flat.
func (s Stick) Tip() float64 {
	return s.X + s.Length
}
