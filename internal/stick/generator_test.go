package stick

import (
	"math"
	"testing"

	"github.com/vovakirdan/stickhero/internal/config"
)

func TestGeneratorBounds(t *testing.T) {
	cfg := config.DefaultStickConfig().Layout
	gen := NewGenerator(7, cfg)

	prev := Platform{X: 50, Width: 50}
	for i := 0; i < 1000; i++ {
		next := gen.Next(prev)

		gap := next.X - prev.Right()
		if gap < float64(cfg.MinGap) || gap >= float64(cfg.MaxGap) {
			t.Fatalf("platform %d: gap %v outside [%d, %d)", i, gap, cfg.MinGap, cfg.MaxGap)
		}
		if next.Width < float64(cfg.MinWidth) || next.Width >= float64(cfg.MaxWidth) {
			t.Fatalf("platform %d: width %v outside [%d, %d)", i, next.Width, cfg.MinWidth, cfg.MaxWidth)
		}
		if gap != math.Trunc(gap) || next.Width != math.Trunc(next.Width) {
			t.Fatalf("platform %d: expected whole-pixel gap and width, got %v and %v", i, gap, next.Width)
		}
		prev = next
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := config.DefaultStickConfig().Layout
	seed := []Platform{{X: 50, Width: 50}}

	a := append([]Platform(nil), seed...)
	b := append([]Platform(nil), seed...)
	genA := NewGenerator(12345, cfg)
	genB := NewGenerator(12345, cfg)
	for i := 0; i < 50; i++ {
		a = genA.Append(a)
		b = genB.Append(b)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("platform %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratorDegenerateRange(t *testing.T) {
	cfg := config.LayoutConfig{MinGap: 60, MaxGap: 60, MinWidth: 30, MaxWidth: 30}
	gen := NewGenerator(1, cfg)

	next := gen.Next(Platform{X: 0, Width: 10})
	if next.X != 70 || next.Width != 30 {
		t.Errorf("Next() = %+v, expected {X:70 Width:30}", next)
	}
}

func TestGeneratorAppendOnlyAddsOne(t *testing.T) {
	gen := NewGenerator(3, config.DefaultStickConfig().Layout)
	platforms := []Platform{{X: 50, Width: 50}, {X: 150, Width: 40}}

	out := gen.Append(platforms)
	if len(out) != 3 {
		t.Fatalf("Append() returned %d platforms, expected 3", len(out))
	}
	if out[0] != platforms[0] || out[1] != platforms[1] {
		t.Error("Append() must not modify existing platforms")
	}
	if out[2].X <= out[1].Right() {
		t.Errorf("new platform %+v overlaps %+v", out[2], out[1])
	}
}

func TestGeneratorCover(t *testing.T) {
	cfg := config.DefaultStickConfig().Layout
	gen := NewGenerator(99, cfg)

	platforms := gen.Cover([]Platform{{X: 50, Width: 50}}, 5000)
	if last := platforms[len(platforms)-1]; last.Right() < 5000 {
		t.Errorf("Cover(5000) ended at %v", last.Right())
	}
	for i := 1; i < len(platforms); i++ {
		if platforms[i].X-platforms[i-1].Right() < float64(cfg.MinGap) {
			t.Fatalf("platforms %d and %d closer than the minimum gap", i-1, i)
		}
	}

	// Already covered: nothing appended
	before := len(platforms)
	platforms = gen.Cover(platforms, 100)
	if len(platforms) != before {
		t.Errorf("Cover() appended %d platforms for a covered point", len(platforms)-before)
	}
}

func TestGeneratorCoverZeroRangesTerminates(t *testing.T) {
	gen := NewGenerator(1, config.LayoutConfig{})
	platforms := gen.Cover([]Platform{{X: 0, Width: 10}}, 1000)
	if len(platforms) != 1 {
		t.Errorf("Cover() with empty ranges should give up, got %d platforms", len(platforms))
	}
}
