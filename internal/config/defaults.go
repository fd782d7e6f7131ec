package config

import (
	_ "embed"
)

//go:embed defaults/stickhero.yaml
var defaultStickYAML []byte

// DefaultStickConfig returns the built-in configuration, matching the
// embedded YAML. It is the base every loaded file is merged onto.
func DefaultStickConfig() StickConfig {
	return StickConfig{
		Canvas: CanvasConfig{
			Width:          800,
			Height:         375,
			PlatformHeight: 100,
		},
		Layout: LayoutConfig{
			SeedX:            50,
			SeedWidth:        50,
			InitialPlatforms: 5,
			MinGap:           40,
			MaxGap:           200,
			MinWidth:         20,
			MaxWidth:         100,
		},
		Hero: HeroConfig{
			Width:      17,
			Height:     30,
			EdgeMargin: 5,
		},
		Speed: SpeedConfig{
			StretchMs:    3,
			TurnMs:       4,
			WalkMs:       3,
			TransitionMs: 2,
			FallMs:       2,
		},
		Thresholds: ThresholdConfig{
			Camera: 100,
			Fall:   100,
		},
		Loop: LoopConfig{
			MaxFrameMs: 250,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultStickYAML
}
