package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.SetInterval(120)
	s.SetAutoClear(500)
	s.Mode = ModeBurst
	s.SetBurstCount(7)
	if err := s.SetSizeRange(20, 60); err != nil {
		t.Fatal(err)
	}
	s.EnabledShapes = map[ShapeType]bool{ShapeCircle: true, ShapeTriangle: true}
	s.OutlineOnly = true
	s.Mirror = true
	s.GridOverlay = true
	s.Background = mustHex("#102030")
	s.SetPaletteString("#ff0000,#00ff00")
	s.WatermarkEnabled = true
	s.WatermarkText = "wm"
	s.MemeText = "top text"
	s.SetMemeFontSize(40)
	s.SetSeedString("1234")
	s.SpecialMode = SpecialUltraRandom
	s.ChaosMode = true
	s.CanvasWidth = 1024
	s.CanvasHeight = 768

	path := filepath.Join(t.TempDir(), "settings.conf")
	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := DefaultSettings()
	if err := LoadSettings(path, loaded); err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Interval != 120 || loaded.AutoClearThreshold != 500 {
		t.Errorf("timing fields: %d/%d", loaded.Interval, loaded.AutoClearThreshold)
	}
	if loaded.Mode != ModeBurst || loaded.BurstCount != 7 {
		t.Errorf("mode fields: %v/%d", loaded.Mode, loaded.BurstCount)
	}
	if loaded.MinShapeSize != 20 || loaded.MaxShapeSize != 60 {
		t.Errorf("size fields: %d..%d", loaded.MinShapeSize, loaded.MaxShapeSize)
	}
	if !loaded.EnabledShapes[ShapeCircle] || !loaded.EnabledShapes[ShapeTriangle] ||
		loaded.EnabledShapes[ShapeLine] {
		t.Errorf("shape set: %v", loaded.EnabledShapes)
	}
	if !loaded.OutlineOnly || !loaded.Mirror || !loaded.GridOverlay {
		t.Errorf("style flags lost")
	}
	if loaded.Background.Hex() != "#102030" {
		t.Errorf("background: %s", loaded.Background.Hex())
	}
	if loaded.PaletteString() != "#ff0000,#00ff00" {
		t.Errorf("palette: %s", loaded.PaletteString())
	}
	if !loaded.WatermarkEnabled || loaded.WatermarkText != "wm" {
		t.Errorf("watermark fields lost")
	}
	if loaded.MemeText != "top text" || loaded.MemeFontSize != 40 {
		t.Errorf("meme fields: %q/%d", loaded.MemeText, loaded.MemeFontSize)
	}
	if loaded.Seed == nil || *loaded.Seed != 1234 {
		t.Errorf("seed: %v", loaded.Seed)
	}
	if loaded.SpecialMode != SpecialUltraRandom || !loaded.ChaosMode {
		t.Errorf("mode flags lost")
	}
	if loaded.CanvasWidth != 1024 || loaded.CanvasHeight != 768 {
		t.Errorf("canvas: %dx%d", loaded.CanvasWidth, loaded.CanvasHeight)
	}
}

func TestLoadSettingsClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.conf")
	content := `animation_speed = 999999
auto_clear_threshold = 0
burst_count = 50
meme_font_size = 1
min_shape_size = 90
max_shape_size = 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := DefaultSettings()
	if err := LoadSettings(path, s); err != nil {
		t.Fatalf("load: %v", err)
	}

	if s.Interval != maxInterval {
		t.Errorf("interval %d, want clamped to %d", s.Interval, maxInterval)
	}
	if s.AutoClearThreshold != minAutoClear {
		t.Errorf("auto-clear %d, want clamped to %d", s.AutoClearThreshold, minAutoClear)
	}
	if s.BurstCount != maxBurstCount {
		t.Errorf("burst %d, want clamped to %d", s.BurstCount, maxBurstCount)
	}
	if s.MemeFontSize != minMemeFontSize {
		t.Errorf("font size %d, want clamped to %d", s.MemeFontSize, minMemeFontSize)
	}
	if s.MinShapeSize > s.MaxShapeSize {
		t.Errorf("size range left inverted: %d..%d", s.MinShapeSize, s.MaxShapeSize)
	}
}

func TestLoadSettingsSkipsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.conf")
	content := `# a comment
this line has no equals sign
animation_speed = not-a-number
burst_count = 9
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := DefaultSettings()
	if err := LoadSettings(path, s); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Interval != 50 {
		t.Errorf("garbage line changed interval to %d", s.Interval)
	}
	if s.BurstCount != 9 {
		t.Errorf("valid line not applied: %d", s.BurstCount)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s := DefaultSettings()
	if err := LoadSettings(filepath.Join(t.TempDir(), "nope.conf"), s); err == nil {
		t.Errorf("missing file should report an error")
	}
}
