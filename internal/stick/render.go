package stick

import (
	"fmt"
	"math"

	"github.com/vovakirdan/stickhero/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	HeroChar     = '█'
	BandChar     = '▀'
	StickUp      = '│'
	StickRising  = '╱'
	StickFlat    = '─'
	StickFalling = '╲'
)

// hudRows is the number of rows reserved above the play field.
const hudRows = 1

// viewport maps world coordinates onto screen cells.
type viewport struct {
	offset       float64
	scaleX       float64 // cells per world unit
	scaleY       float64
	top          int
	cellW, cellH float64 // world units per cell
}

func newViewport(dst *core.Screen, s Snapshot) viewport {
	playH := float64(core.Max(dst.Height()-hudRows, 1))
	w := float64(core.Max(dst.Width(), 1))
	return viewport{
		offset: s.SceneOffset,
		scaleX: w / s.Canvas.Width,
		scaleY: playH / s.Canvas.Height,
		top:    hudRows,
		cellW:  s.Canvas.Width / w,
		cellH:  s.Canvas.Height / playH,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.offset) * v.scaleX))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.scaleY))
}

// Render draws a snapshot into dst. It only reads the snapshot.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}

	v := newViewport(dst, s)
	ground := s.Canvas.Height - s.Canvas.PlatformHeight

	for _, p := range s.Platforms {
		drawPlatform(dst, v, p, ground)
	}
	for i, st := range s.Sticks {
		color := core.ColorYellow
		if i == len(s.Sticks)-1 && s.Phase == PhaseStretching {
			color = core.ColorOrange
		}
		drawStick(dst, v, st, ground, color)
	}
	drawHero(dst, v, s, ground)
	drawHUD(dst, s)
}

func drawPlatform(dst *core.Screen, v viewport, p Platform, ground float64) {
	left, right := v.col(p.X), v.col(p.Right())
	if right <= left {
		right = left + 1
	}
	top := v.row(ground)
	dst.DrawRect(core.NewRect(left, top, right-left, dst.Height()-top), PlatformChar, core.ColorGray)
}

func drawHero(dst *core.Screen, v viewport, s Snapshot, ground float64) {
	left, right := v.col(s.HeroX-s.Hero.Width), v.col(s.HeroX)
	if right <= left {
		right = left + 1
	}
	bottom := v.row(ground + s.HeroY)
	top := v.row(ground - s.Hero.Height + s.HeroY)
	if bottom <= top {
		top = bottom - 1
	}

	dst.DrawRect(core.NewRect(left, top, right-left, bottom-top), HeroChar, core.ColorBrightWhite)
	// Head band
	dst.DrawHLine(left, top, right-left, BandChar, core.ColorRed)
}

func drawStick(dst *core.Screen, v viewport, st Stick, ground float64, color core.Color) {
	if st.Length <= 0 {
		return
	}

	ch := stickRune(st.Rotation)
	rad := st.Rotation * math.Pi / 180
	step := math.Min(v.cellW, v.cellH) / 2

	for d := 0.0; d <= st.Length; d += step {
		x := st.X + d*math.Sin(rad)
		y := ground - d*math.Cos(rad)
		// Lift by half a cell so a flat stick sits on top of the platforms.
		dst.SetColored(v.col(x), v.row(y-v.cellH/2), ch, color)
	}
}

// stickRune picks the line character closest to the stick's angle.
func stickRune(rotation float64) rune {
	switch {
	case rotation < 22.5:
		return StickUp
	case rotation < 67.5:
		return StickRising
	case rotation < 112.5:
		return StickFlat
	case rotation < 157.5:
		return StickFalling
	default:
		return StickUp
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorBrightWhite)

	best := fmt.Sprintf(" Max Score: %d ", s.MaxScore)
	bestColor := core.ColorYellow
	if s.Score > 0 && s.Score == s.MaxScore {
		bestColor = core.ColorGreen // New record in progress
	}
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, bestColor)

	if s.Introduction && !s.GameOver {
		dst.DrawTextCentered(hudRows+dst.Height()/5, "SPACE to stretch, SPACE again to drop (or hold the mouse)")
	}

	if s.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
