package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Exporter captures the surface to image files and keeps the session's
// saved-image history. The core only triggers it; it never feeds pixels
// back into the engine.
type Exporter struct {
	config  *Config
	history []string
}

func NewExporter(config *Config) *Exporter {
	return &Exporter{config: config}
}

// SavedImages lists every artifact written this session, oldest first.
func (e *Exporter) SavedImages() []string {
	return append([]string(nil), e.history...)
}

func (e *Exporter) record(path string) {
	e.history = append(e.history, path)
	// Best effort; a headless box has no clipboard and that is fine.
	clipboard.WriteAll(path)
}

// Screenshot rasterizes the surface into ext/art_<unix>.png and returns
// the path.
func (e *Exporter) Screenshot(surface *ImageSurface) (string, error) {
	img, err := surface.Rasterize()
	if err != nil {
		return "", fmt.Errorf("capture failed: %w", err)
	}
	extDir := e.config.GetSavePath("ext")
	if err := os.MkdirAll(extDir, 0755); err != nil {
		return "", fmt.Errorf("capture failed: %w", err)
	}
	path := filepath.Join(extDir, fmt.Sprintf("art_%d.png", time.Now().Unix()))
	if err := gg.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("capture failed: %w", err)
	}
	e.record(path)
	return path, nil
}

// SaveArt writes the surface to a user-named PNG. An empty name falls back
// to the timestamped screenshot naming.
func (e *Exporter) SaveArt(surface *ImageSurface, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return e.Screenshot(surface)
	}
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	img, err := surface.Rasterize()
	if err != nil {
		return "", fmt.Errorf("save failed: %w", err)
	}
	path := e.config.GetSavePath(name)
	if err := gg.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("save failed: %w", err)
	}
	e.record(path)
	return path, nil
}

// Enhance runs the post-processing pass on a saved capture: saturation,
// contrast and sharpness boosts, written next to the original with an
// _enhanced suffix.
func (e *Exporter) Enhance(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("enhance failed: %w", err)
	}
	img = imaging.AdjustSaturation(img, 50)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.2)

	enhanced := strings.TrimSuffix(path, filepath.Ext(path)) + "_enhanced.png"
	if err := imaging.Save(img, enhanced); err != nil {
		return "", fmt.Errorf("enhance failed: %w", err)
	}
	e.record(enhanced)
	return enhanced, nil
}
