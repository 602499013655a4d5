package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

var previewGlyphs = map[PrimitiveKind]rune{
	KindOval:      '●',
	KindLine:      '─',
	KindArc:       '◠',
	KindRectangle: '■',
	KindPolygon:   '▲',
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.uiMode == UIHistory {
		return m.historyView()
	}

	width := m.width
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("genart"))
	b.WriteString(dimStyle.Render("  evolving abstract art — ? for help"))
	b.WriteString("\n")

	previewRows := m.height - 9
	if previewRows < 1 {
		previewRows = 1
	}
	b.WriteString(m.previewView(width, previewRows))
	b.WriteString(m.panelView())

	if m.uiMode == UIInput {
		b.WriteString(fmt.Sprintf("%s %s█", labelStyle.Render(inputPrompt(m.inputField)), m.inputText))
	} else {
		b.WriteString(m.statusLine())
	}
	return b.String()
}

func inputPrompt(field InputField) string {
	switch field {
	case FieldMemeText:
		return "Meme text:"
	case FieldWatermarkText:
		return "Watermark text:"
	case FieldPalette:
		return "Palette (hex, comma separated):"
	case FieldBackground:
		return "Background color (hex):"
	case FieldSeed:
		return "Seed (int, empty to clear):"
	case FieldSaveName:
		return "Save name:"
	case FieldCanvasSize:
		return "Canvas size (WIDTHxHEIGHT):"
	}
	return ">"
}

// previewView plots every live primitive as a colored glyph scaled into the
// terminal viewport. It is a read-only window into the display list; the
// real art only exists at raster time.
func (m model) previewView(cols, rows int) string {
	canvasW, canvasH := m.surface.Bounds()
	grid := make([][]string, rows)
	for y := range grid {
		grid[y] = make([]string, cols)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	for _, p := range m.surface.Snapshot() {
		glyph, ok := previewGlyphs[p.Kind]
		if !ok || len(p.Coords) < 2 {
			continue
		}
		x, y := p.Coords[0], p.Coords[1]
		if len(p.Coords) >= 4 {
			x = (p.Coords[0] + p.Coords[2]) / 2
			y = (p.Coords[1] + p.Coords[3]) / 2
		}
		col := int(x / float64(canvasW) * float64(cols))
		row := int(y / float64(canvasH) * float64(rows))
		if col < 0 || col >= cols || row < 0 || row >= rows {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color.Hex()))
		grid[row][col] = style.Render(string(glyph))
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) panelView() string {
	s := m.settings

	mode := "continuous"
	if s.Mode == ModeBurst {
		mode = fmt.Sprintf("burst x%d", s.BurstCount)
	}
	special := "normal"
	if s.SpecialMode == SpecialUltraRandom {
		special = "ultrarandom"
	}

	var shapes []string
	for t := ShapeCircle; t <= ShapeTriangle; t++ {
		name := t.String()
		if !s.EnabledShapes[t] {
			name = dimStyle.Render(name)
		}
		shapes = append(shapes, name)
	}

	flags := []string{}
	if s.OutlineOnly {
		flags = append(flags, "outline")
	}
	if s.Mirror {
		flags = append(flags, "mirror")
	}
	if s.GridOverlay {
		flags = append(flags, "grid")
	}
	if s.ChaosMode {
		flags = append(flags, "chaos")
	}
	if s.WatermarkEnabled {
		flags = append(flags, "watermark")
	}
	flagText := "none"
	if len(flags) > 0 {
		flagText = strings.Join(flags, " ")
	}

	seed := "random"
	if s.Seed != nil {
		seed = fmt.Sprintf("%d", *s.Seed)
	}

	canvasW, canvasH := m.surface.Bounds()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		labelStyle.Render("speed:"), valueStyle.Render(fmt.Sprintf("%dms", s.Interval)),
		labelStyle.Render("auto-clear:"), valueStyle.Render(fmt.Sprintf("%d", s.AutoClearThreshold)),
		labelStyle.Render("mode:"), valueStyle.Render(mode))
	fmt.Fprintf(&b, "%s %s  %s %s\n",
		labelStyle.Render("shapes:"), strings.Join(shapes, " "),
		labelStyle.Render("size:"), valueStyle.Render(fmt.Sprintf("%d..%d", s.MinShapeSize, s.MaxShapeSize)))
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		labelStyle.Render("special:"), valueStyle.Render(special),
		labelStyle.Render("flags:"), valueStyle.Render(flagText),
		labelStyle.Render("seed:"), valueStyle.Render(seed))
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		labelStyle.Render("canvas:"), valueStyle.Render(fmt.Sprintf("%dx%d", canvasW, canvasH)),
		labelStyle.Render("frame:"), valueStyle.Render(fmt.Sprintf("%d", m.animator.FrameCount())),
		labelStyle.Render("history:"), valueStyle.Render(fmt.Sprintf("%d", m.animator.History().Len())))
	return b.String()
}

func (m model) statusLine() string {
	if m.errorMessage != "" {
		return errStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return okStyle.Render(m.successMessage)
	}
	if m.replay != nil {
		return okStyle.Render(fmt.Sprintf("Replaying... %d shapes left", m.replay.Remaining()))
	}
	if m.animator.State() == StatePaused {
		return dimStyle.Render("Paused")
	}
	return dimStyle.Render("Running")
}

func (m model) historyView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Saved images"))
	b.WriteString("\n\n")
	images := m.exporter.SavedImages()
	if len(images) == 0 {
		b.WriteString(dimStyle.Render("Nothing saved this session yet."))
		b.WriteString("\n")
	}
	for _, path := range images {
		b.WriteString("  " + path + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press q or escape to go back."))
	return b.String()
}

func (m model) helpView() string {
	lines := []string{
		"genart help",
		"===========",
		"",
		"Animation:",
		"  space            Pause / resume",
		"  - / =            Animation speed slower / faster",
		"  _ / +            Auto-clear threshold down / up",
		"  b                Toggle continuous / burst mode",
		"  , / .            Burst count down / up",
		"",
		"Shapes & style:",
		"  1..5             Toggle circle, line, arc, rectangle, triangle",
		"  [ / ]            Min shape size down / up",
		"  { / }            Max shape size down / up",
		"  o                Outline-only toggle",
		"  m                Mirror drawing toggle",
		"  g                Grid overlay toggle",
		"  U                Normal / UltraRandom special mode",
		"  C                Chaos mode toggle",
		"  P                Edit color palette",
		"  B                Set background color",
		"",
		"Overlays:",
		"  t                Edit meme text",
		"  f / F            Meme font size down / up",
		"  w                Watermark toggle",
		"  W                Edit watermark text",
		"",
		"History & output:",
		"  u                Undo last shape",
		"  R                Replay history",
		"  c                Clear canvas",
		"  s                Save art with a name",
		"  S                Save screenshot",
		"  e                Screenshot + enhancement pass",
		"  v                Show saved images",
		"",
		"Session:",
		"  d                Set random seed",
		"  z                Set canvas size",
		"  E / I            Export / import settings",
		"  q                Quit",
		"",
		"Press q, ? or escape to close this help.",
	}
	return strings.Join(lines, "\n")
}
