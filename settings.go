package main

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Settings is the single mutable configuration record every component reads.
// Interaction handlers write whole fields between ticks; the animation driver
// takes a Snapshot at the start of each tick so it never observes a
// half-written record.
type Settings struct {
	Interval           int // milliseconds between ticks
	AutoClearThreshold int // frames until the canvas wipes itself
	Mode               DrawingMode
	BurstCount         int

	MinShapeSize  int
	MaxShapeSize  int
	EnabledShapes map[ShapeType]bool
	OutlineOnly   bool
	Mirror        bool
	GridOverlay   bool

	Background colorful.Color
	Palette    []colorful.Color // empty = fully random color per shape

	WatermarkEnabled bool
	WatermarkText    string
	MemeText         string
	MemeFont         string
	MemeFontSize     int

	Seed *int64 // nil = unseeded

	SpecialMode SpecialMode
	ChaosMode   bool

	CanvasWidth  int
	CanvasHeight int
}

func DefaultSettings() *Settings {
	return &Settings{
		Interval:           50,
		AutoClearThreshold: 300,
		Mode:               ModeContinuous,
		BurstCount:         5,
		MinShapeSize:       10,
		MaxShapeSize:       100,
		EnabledShapes: map[ShapeType]bool{
			ShapeCircle:    true,
			ShapeLine:      true,
			ShapeArc:       true,
			ShapeRectangle: true,
			ShapeTriangle:  true,
		},
		Background:    colorful.Color{},
		WatermarkText: "My Watermark",
		MemeFont:      "Impact",
		MemeFontSize:  32,
		CanvasWidth:   defaultCanvasWidth,
		CanvasHeight:  defaultCanvasHeight,
	}
}

// Snapshot returns a deep copy safe to read for the rest of a tick while
// interaction handlers keep mutating the live record.
func (s *Settings) Snapshot() Settings {
	out := *s
	out.EnabledShapes = make(map[ShapeType]bool, len(s.EnabledShapes))
	for k, v := range s.EnabledShapes {
		out.EnabledShapes[k] = v
	}
	out.Palette = append([]colorful.Color(nil), s.Palette...)
	if s.Seed != nil {
		seed := *s.Seed
		out.Seed = &seed
	}
	return out
}

// EnabledShapeList returns the enabled types in fixed enum order, so a
// seeded run samples them deterministically.
func (s *Settings) EnabledShapeList() []ShapeType {
	var out []ShapeType
	for t := ShapeCircle; t <= ShapeTriangle; t++ {
		if s.EnabledShapes[t] {
			out = append(out, t)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Slider-backed fields clamp to their documented bounds.

func (s *Settings) SetInterval(ms int) {
	s.Interval = clampInt(ms, minInterval, maxInterval)
}

func (s *Settings) SetAutoClear(frames int) {
	s.AutoClearThreshold = clampInt(frames, minAutoClear, maxAutoClear)
}

func (s *Settings) SetBurstCount(n int) {
	s.BurstCount = clampInt(n, minBurstCount, maxBurstCount)
}

func (s *Settings) SetMemeFontSize(pt int) {
	s.MemeFontSize = clampInt(pt, minMemeFontSize, maxMemeFontSize)
}

// SetSizeRange rejects writes that would leave min above max or a
// non-positive size; the previous values are retained on error.
func (s *Settings) SetSizeRange(minSize, maxSize int) error {
	if minSize <= 0 || maxSize <= 0 || minSize > maxSize {
		return fmt.Errorf("size range %d..%d: %w", minSize, maxSize, ErrInvalidRange)
	}
	s.MinShapeSize = minSize
	s.MaxShapeSize = maxSize
	return nil
}

func (s *Settings) SetMinShapeSize(v int) error { return s.SetSizeRange(v, s.MaxShapeSize) }
func (s *Settings) SetMaxShapeSize(v int) error { return s.SetSizeRange(s.MinShapeSize, v) }

func (s *Settings) ToggleShape(t ShapeType) {
	s.EnabledShapes[t] = !s.EnabledShapes[t]
}

// SetSeedString parses a user-entered seed. A non-numeric value is rejected
// and the previous seed kept; an empty string clears the seed.
func (s *Settings) SetSeedString(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.Seed = nil
		return nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("seed %q: %w", raw, ErrInvalidRange)
	}
	s.Seed = &seed
	return nil
}

// SetPaletteString parses a comma-separated list of hex colors. An empty
// string clears the palette (fully random colors). Any unparsable entry
// rejects the whole write.
func (s *Settings) SetPaletteString(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.Palette = nil
		return nil
	}
	var palette []colorful.Color
	for _, tok := range strings.Split(raw, ",") {
		c, err := colorful.Hex(strings.TrimSpace(tok))
		if err != nil {
			return fmt.Errorf("palette entry %q: %w", tok, ErrInvalidRange)
		}
		palette = append(palette, c)
	}
	s.Palette = palette
	return nil
}

// PaletteString renders the palette back to the flat comma-separated form
// used by the settings file and the palette input field.
func (s *Settings) PaletteString() string {
	if len(s.Palette) == 0 {
		return ""
	}
	toks := make([]string, len(s.Palette))
	for i, c := range s.Palette {
		toks[i] = c.Hex()
	}
	return strings.Join(toks, ",")
}

// RandomizeStyle is the UltraRandom pre-step: it rerolls outline, mirror and
// palette on the live record before the tick snapshots it. The driver calls
// this explicitly; the generator itself stays a pure sampling path.
func (s *Settings) RandomizeStyle(rng *RNG) {
	s.OutlineOnly = rng.Bool()
	s.Mirror = rng.Bool()
	if rng.Bool() {
		palette := make([]colorful.Color, 3)
		for i := range palette {
			palette[i] = rng.Color()
		}
		s.Palette = palette
	} else {
		s.Palette = nil
	}
}
