package stick

import (
	"math/rand"

	"github.com/vovakirdan/stickhero/internal/config"
)

// Generator produces platforms to the right of the existing layout.
// Gaps and widths are drawn uniformly from the configured half-open ranges.
type Generator struct {
	rng *rand.Rand
	cfg config.LayoutConfig
}

// NewGenerator creates a generator with its own seeded RNG, so the same seed
// always yields the same layout.
func NewGenerator(seed int64, cfg config.LayoutConfig) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Next returns the platform that follows last.
func (g *Generator) Next(last Platform) Platform {
	gap := g.cfg.MinGap + g.intn(g.cfg.MaxGap-g.cfg.MinGap)
	width := g.cfg.MinWidth + g.intn(g.cfg.MaxWidth-g.cfg.MinWidth)

	return Platform{
		X:     last.Right() + float64(gap),
		Width: float64(width),
	}
}

// Append generates one platform after the last element of platforms and
// returns the extended slice. platforms must not be empty.
func (g *Generator) Append(platforms []Platform) []Platform {
	return append(platforms, g.Next(platforms[len(platforms)-1]))
}

// Cover appends platforms until the layout reaches at least x.
func (g *Generator) Cover(platforms []Platform, x float64) []Platform {
	for {
		last := platforms[len(platforms)-1]
		if last.Right() >= x {
			return platforms
		}
		next := g.Next(last)
		if next.Right() <= last.Right() {
			// Zero-width ranges cannot make progress.
			return platforms
		}
		platforms = append(platforms, next)
	}
}

// intn draws from [0, n); an empty range yields 0.
func (g *Generator) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rng.Intn(n)
}
