package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "stickhero.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.stickhero/configs/stickhero.yaml ->
// ./configs/stickhero.yaml -> embedded default.
// Files are merged onto the defaults, so a file may set only the keys it changes.
func Load(customPath string) (StickConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StickConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return StickConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultStickYAML)
	if err != nil {
		return DefaultStickConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates the result.
func Parse(data []byte) (StickConfig, error) {
	cfg := DefaultStickConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StickConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return StickConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg StickConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stickhero", "configs", filename)
}

// ApplyPreset rewrites the generator ranges for a difficulty preset.
// Only the uniform ranges change; timing and geometry are left alone.
func ApplyPreset(cfg *StickConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Layout.MinGap = 40
		cfg.Layout.MaxGap = 120
		cfg.Layout.MinWidth = 50
		cfg.Layout.MaxWidth = 110
	case DifficultyNormal:
		def := DefaultStickConfig()
		cfg.Layout.MinGap = def.Layout.MinGap
		cfg.Layout.MaxGap = def.Layout.MaxGap
		cfg.Layout.MinWidth = def.Layout.MinWidth
		cfg.Layout.MaxWidth = def.Layout.MaxWidth
	case DifficultyHard:
		cfg.Layout.MinGap = 80
		cfg.Layout.MaxGap = 240
		cfg.Layout.MinWidth = 15
		cfg.Layout.MaxWidth = 50
	}
}

// Validate reports every field that would break the simulation.
func (c StickConfig) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value float64
	}{
		{"canvas.width", c.Canvas.Width},
		{"canvas.height", c.Canvas.Height},
		{"canvas.platform_height", c.Canvas.PlatformHeight},
		{"layout.seed_width", c.Layout.SeedWidth},
		{"hero.width", c.Hero.Width},
		{"hero.height", c.Hero.Height},
		{"speed.stretch_ms", c.Speed.StretchMs},
		{"speed.turn_ms", c.Speed.TurnMs},
		{"speed.walk_ms", c.Speed.WalkMs},
		{"speed.transition_ms", c.Speed.TransitionMs},
		{"speed.fall_ms", c.Speed.FallMs},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.value))
		}
	}

	if c.Canvas.PlatformHeight >= c.Canvas.Height {
		errs = append(errs, fmt.Errorf("canvas.platform_height %v must be below canvas.height %v",
			c.Canvas.PlatformHeight, c.Canvas.Height))
	}
	if c.Layout.InitialPlatforms < 1 {
		errs = append(errs, fmt.Errorf("layout.initial_platforms must be at least 1, got %d", c.Layout.InitialPlatforms))
	}
	if c.Layout.MinGap < 0 || c.Layout.MinGap > c.Layout.MaxGap {
		errs = append(errs, fmt.Errorf("layout gap range [%d, %d) is invalid", c.Layout.MinGap, c.Layout.MaxGap))
	}
	if c.Layout.MinWidth <= 0 || c.Layout.MinWidth > c.Layout.MaxWidth {
		errs = append(errs, fmt.Errorf("layout width range [%d, %d) is invalid", c.Layout.MinWidth, c.Layout.MaxWidth))
	}
	if c.Hero.EdgeMargin < 0 {
		errs = append(errs, fmt.Errorf("hero.edge_margin must not be negative, got %v", c.Hero.EdgeMargin))
	}
	if c.Thresholds.Fall < 0 {
		errs = append(errs, fmt.Errorf("thresholds.fall must not be negative, got %v", c.Thresholds.Fall))
	}
	if c.Loop.MaxFrameMs < 0 {
		errs = append(errs, fmt.Errorf("loop.max_frame_ms must not be negative, got %v", c.Loop.MaxFrameMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
