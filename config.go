package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Config is the per-user rc record, separate from the art settings: where
// artifacts land and whether the screenshot API listens.
type Config struct {
	SaveDirectory string
	APIEnabled    bool
	APIPort       int
}

func loadConfig() *Config {
	config := &Config{
		SaveDirectory: "",
		APIEnabled:    false,
		APIPort:       defaultAPIPort,
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".genartrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "api", "api_enabled":
			config.APIEnabled = strings.ToLower(value) == "true"
		case "api_port", "apiport":
			if port, err := strconv.Atoi(value); err == nil && port > 0 && port < 65536 {
				config.APIPort = port
			}
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// SaveSettings writes the whole settings record as a flat key = value file.
func SaveSettings(path string, s *Settings) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "animation_speed = %d\n", s.Interval)
	fmt.Fprintf(w, "auto_clear_threshold = %d\n", s.AutoClearThreshold)
	mode := "continuous"
	if s.Mode == ModeBurst {
		mode = "burst"
	}
	fmt.Fprintf(w, "drawing_mode = %s\n", mode)
	fmt.Fprintf(w, "burst_count = %d\n", s.BurstCount)
	fmt.Fprintf(w, "min_shape_size = %d\n", s.MinShapeSize)
	fmt.Fprintf(w, "max_shape_size = %d\n", s.MaxShapeSize)
	var enabled []string
	for _, t := range s.EnabledShapeList() {
		enabled = append(enabled, t.String())
	}
	fmt.Fprintf(w, "shapes = %s\n", strings.Join(enabled, ","))
	fmt.Fprintf(w, "outline_only = %t\n", s.OutlineOnly)
	fmt.Fprintf(w, "mirror_drawing = %t\n", s.Mirror)
	fmt.Fprintf(w, "grid_overlay = %t\n", s.GridOverlay)
	fmt.Fprintf(w, "bg_color = %s\n", s.Background.Hex())
	fmt.Fprintf(w, "custom_palette = %s\n", s.PaletteString())
	fmt.Fprintf(w, "watermark_enabled = %t\n", s.WatermarkEnabled)
	fmt.Fprintf(w, "watermark_text = %s\n", s.WatermarkText)
	fmt.Fprintf(w, "meme_text = %s\n", s.MemeText)
	fmt.Fprintf(w, "meme_font = %s\n", s.MemeFont)
	fmt.Fprintf(w, "meme_font_size = %d\n", s.MemeFontSize)
	if s.Seed != nil {
		fmt.Fprintf(w, "random_seed = %d\n", *s.Seed)
	}
	special := "normal"
	if s.SpecialMode == SpecialUltraRandom {
		special = "ultrarandom"
	}
	fmt.Fprintf(w, "special_mode = %s\n", special)
	fmt.Fprintf(w, "chaos_mode = %t\n", s.ChaosMode)
	fmt.Fprintf(w, "canvas_width = %d\n", s.CanvasWidth)
	fmt.Fprintf(w, "canvas_height = %d\n", s.CanvasHeight)
	return w.Flush()
}

// LoadSettings reads a flat settings file into s. Out-of-range numbers are
// clamped to their documented bounds; unparsable lines are skipped so a
// hand-edited file cannot brick the app.
func LoadSettings(path string, s *Settings) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		switch key {
		case "animation_speed":
			if v, err := strconv.Atoi(value); err == nil {
				s.SetInterval(v)
			}
		case "auto_clear_threshold":
			if v, err := strconv.Atoi(value); err == nil {
				s.SetAutoClear(v)
			}
		case "drawing_mode":
			if strings.ToLower(value) == "burst" {
				s.Mode = ModeBurst
			} else {
				s.Mode = ModeContinuous
			}
		case "burst_count":
			if v, err := strconv.Atoi(value); err == nil {
				s.SetBurstCount(v)
			}
		case "min_shape_size":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				s.MinShapeSize = v
			}
		case "max_shape_size":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				s.MaxShapeSize = v
			}
		case "shapes":
			enabled := make(map[ShapeType]bool)
			for _, tok := range strings.Split(value, ",") {
				for t, name := range shapeNames {
					if strings.TrimSpace(strings.ToLower(tok)) == name {
						enabled[t] = true
					}
				}
			}
			if len(enabled) > 0 {
				s.EnabledShapes = enabled
			}
		case "outline_only":
			s.OutlineOnly = strings.ToLower(value) == "true"
		case "mirror_drawing":
			s.Mirror = strings.ToLower(value) == "true"
		case "grid_overlay":
			s.GridOverlay = strings.ToLower(value) == "true"
		case "bg_color":
			if c, err := colorful.Hex(value); err == nil {
				s.Background = c
			}
		case "custom_palette":
			s.SetPaletteString(value)
		case "watermark_enabled":
			s.WatermarkEnabled = strings.ToLower(value) == "true"
		case "watermark_text":
			s.WatermarkText = value
		case "meme_text":
			s.MemeText = value
		case "meme_font":
			s.MemeFont = value
		case "meme_font_size":
			if v, err := strconv.Atoi(value); err == nil {
				s.SetMemeFontSize(v)
			}
		case "random_seed":
			s.SetSeedString(value)
		case "special_mode":
			if strings.ToLower(value) == "ultrarandom" {
				s.SpecialMode = SpecialUltraRandom
			} else {
				s.SpecialMode = SpecialNormal
			}
		case "chaos_mode":
			s.ChaosMode = strings.ToLower(value) == "true"
		case "canvas_width":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				s.CanvasWidth = v
			}
		case "canvas_height":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				s.CanvasHeight = v
			}
		}
	}

	// A hand-edited file can cross the streams; repair rather than reject.
	if s.MinShapeSize > s.MaxShapeSize {
		s.MinShapeSize, s.MaxShapeSize = s.MaxShapeSize, s.MinShapeSize
	}
	return scanner.Err()
}
