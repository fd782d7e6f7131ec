package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultStickConfig() {
		t.Errorf("embedded YAML and DefaultStickConfig() differ:\n%+v\n%+v", cfg, DefaultStickConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultStickConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "speed:\n  stretch_ms: 1.5\nlayout:\n  max_gap: 150\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.StretchMs != 1.5 {
		t.Errorf("StretchMs = %v, expected 1.5", cfg.Speed.StretchMs)
	}
	if cfg.Layout.MaxGap != 150 {
		t.Errorf("MaxGap = %d, expected 150", cfg.Layout.MaxGap)
	}
	// Untouched keys keep their defaults
	if cfg.Speed.TurnMs != 4 {
		t.Errorf("TurnMs = %v, expected default 4", cfg.Speed.TurnMs)
	}
	if cfg.Canvas.Width != 800 {
		t.Errorf("Canvas.Width = %v, expected default 800", cfg.Canvas.Width)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom file")
	}
	if !strings.Contains(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix, got %v", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "speed:\n  turn_ms: 0\nlayout:\n  min_gap: 300\n  max_gap: 100\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject an invalid config")
	}
	msg := err.Error()
	for _, want := range []string{"speed.turn_ms", "gap range"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("speed: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StickConfig)
		wantErr string
	}{
		{"defaults", func(*StickConfig) {}, ""},
		{"zero walk rate", func(c *StickConfig) { c.Speed.WalkMs = 0 }, "speed.walk_ms"},
		{"platform taller than canvas", func(c *StickConfig) { c.Canvas.PlatformHeight = 400 }, "platform_height"},
		{"no platforms", func(c *StickConfig) { c.Layout.InitialPlatforms = 0 }, "initial_platforms"},
		{"inverted widths", func(c *StickConfig) { c.Layout.MinWidth = 90; c.Layout.MaxWidth = 10 }, "width range"},
		{"zero width", func(c *StickConfig) { c.Layout.MinWidth = 0 }, "width range"},
		{"negative margin", func(c *StickConfig) { c.Hero.EdgeMargin = -1 }, "edge_margin"},
		{"negative frame cap", func(c *StickConfig) { c.Loop.MaxFrameMs = -5 }, "max_frame_ms"},
		{"degenerate range allowed", func(c *StickConfig) { c.Layout.MinGap = 60; c.Layout.MaxGap = 60 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStickConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultStickConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Layout.MinWidth != 50 || cfg.Layout.MaxGap != 120 {
		t.Errorf("easy preset not applied: %+v", cfg.Layout)
	}
	if cfg.Speed != DefaultStickConfig().Speed {
		t.Error("presets must not touch speeds")
	}

	ApplyPreset(&cfg, DifficultyNormal)
	if cfg.Layout != DefaultStickConfig().Layout {
		t.Errorf("normal preset should restore default ranges, got %+v", cfg.Layout)
	}

	ApplyPreset(&cfg, DifficultyHard)
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}
	if cfg.Layout.MinGap <= DefaultStickConfig().Layout.MinGap {
		t.Errorf("hard preset should widen gaps, got %+v", cfg.Layout)
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"":       "",
		"insane": "",
	}
	for in, want := range tests {
		if got := ParsePreset(in); got != want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultStickConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "stretch_ms") {
		t.Errorf("marshalled YAML should use snake_case keys:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config:\n%+v\n%+v", back, cfg)
	}
}
