// Package config provides YAML-based game configuration loading and
// difficulty presets for Stick Hero.
package config

// StickConfig contains all tunables of the game. World units are the pixels
// of an 800x375 canvas; the terminal renderer scales them to cells.
type StickConfig struct {
	Canvas     CanvasConfig    `yaml:"canvas"`
	Layout     LayoutConfig    `yaml:"layout"`
	Hero       HeroConfig      `yaml:"hero"`
	Speed      SpeedConfig     `yaml:"speed"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Loop       LoopConfig      `yaml:"loop"`
}

// CanvasConfig defines the logical world viewport.
type CanvasConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PlatformHeight float64 `yaml:"platform_height"` // Platforms rise this far from the bottom edge
}

// LayoutConfig defines the seed platform and the random ranges of the generator.
// Ranges are half-open: [Min, Max).
type LayoutConfig struct {
	SeedX            float64 `yaml:"seed_x"`
	SeedWidth        float64 `yaml:"seed_width"`
	InitialPlatforms int     `yaml:"initial_platforms"` // Including the seed platform
	MinGap           int     `yaml:"min_gap"`
	MaxGap           int     `yaml:"max_gap"`
	MinWidth         int     `yaml:"min_width"`
	MaxWidth         int     `yaml:"max_width"`
}

// HeroConfig defines the hero's size and where it stops on a platform.
type HeroConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	EdgeMargin float64 `yaml:"edge_margin"` // Distance kept from a platform's right edge
}

// SpeedConfig holds animation rates in milliseconds per unit
// (per pixel, or per degree for turning).
type SpeedConfig struct {
	StretchMs    float64 `yaml:"stretch_ms"`
	TurnMs       float64 `yaml:"turn_ms"`
	WalkMs       float64 `yaml:"walk_ms"`
	TransitionMs float64 `yaml:"transition_ms"`
	FallMs       float64 `yaml:"fall_ms"`
}

// ThresholdConfig defines the points where TRANSITION and FALLING end.
type ThresholdConfig struct {
	Camera float64 `yaml:"camera"` // On-screen x the landed platform's right edge scrolls to
	Fall   float64 `yaml:"fall"`   // Depth below the platform height at which the game ends
}

// LoopConfig controls the frame scheduler.
type LoopConfig struct {
	MaxFrameMs float64 `yaml:"max_frame_ms"` // Largest accepted frame delta, 0 disables clamping
}

// DifficultyPreset represents a named set of generator ranges.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// Empty and unknown values return "" (keep the loaded ranges).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
