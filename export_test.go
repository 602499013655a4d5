package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testSurface(t *testing.T) *ImageSurface {
	t.Helper()
	s := NewImageSurface(160, 120)
	s.SetBackground(mustHex("#000000"))
	if _, err := s.CreatePrimitive(KindOval, []float64{20, 20, 80, 80}, Style{Color: mustHex("#ff4040")}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreatePrimitive(KindRectangle, []float64{90, 30, 140, 100}, Style{Color: mustHex("#40ff40"), OutlineOnly: true, LineWidth: 2}); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestScreenshotWritesPNG(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(&Config{SaveDirectory: dir})

	path, err := e.Screenshot(testSurface(t))
	if err != nil {
		t.Fatalf("screenshot: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(dir, "ext") {
		t.Errorf("screenshot path %s not under ext/", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("screenshot path %s has no .png suffix", path)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("screenshot file missing or empty: %v", err)
	}
	if imgs := e.SavedImages(); len(imgs) != 1 || imgs[0] != path {
		t.Errorf("saved-image history = %v", imgs)
	}
}

func TestSaveArtNaming(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(&Config{SaveDirectory: dir})
	surface := testSurface(t)

	tests := []struct {
		name     string
		input    string
		wantFile string
	}{
		{"Plain name", "masterpiece", "masterpiece.png"},
		{"Already suffixed", "other.png", "other.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := e.SaveArt(surface, tt.input)
			if err != nil {
				t.Fatalf("save: %v", err)
			}
			if filepath.Base(path) != tt.wantFile {
				t.Errorf("saved as %s, want %s", filepath.Base(path), tt.wantFile)
			}
		})
	}

	// Empty name falls back to a timestamped screenshot.
	path, err := e.SaveArt(surface, "  ")
	if err != nil {
		t.Fatalf("save with empty name: %v", err)
	}
	if !strings.Contains(filepath.Base(path), "art_") {
		t.Errorf("fallback name %s", filepath.Base(path))
	}
}

func TestEnhanceWritesSibling(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(&Config{SaveDirectory: dir})

	path, err := e.Screenshot(testSurface(t))
	if err != nil {
		t.Fatal(err)
	}
	enhanced, err := e.Enhance(path)
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !strings.HasSuffix(enhanced, "_enhanced.png") {
		t.Errorf("enhanced path %s", enhanced)
	}
	if info, err := os.Stat(enhanced); err != nil || info.Size() == 0 {
		t.Errorf("enhanced file missing or empty: %v", err)
	}
}

func TestEnhanceMissingFile(t *testing.T) {
	e := NewExporter(&Config{SaveDirectory: t.TempDir()})
	if _, err := e.Enhance(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("enhance on a missing file should fail")
	}
}
