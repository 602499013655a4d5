package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const settingsFileName = "settings.conf"

func main() {
	config := loadConfig()
	session := openSessionLog(config.GetSavePath("session.log"))
	defer session.Close()

	settings := DefaultSettings()
	settingsPath := config.GetSavePath(settingsFileName)
	if err := LoadSettings(settingsPath, settings); err == nil {
		session.Printf("settings loaded from %s", settingsPath)
	}

	rng := NewRNG()
	if settings.Seed != nil {
		rng.Reseed(*settings.Seed)
	}

	surface := NewImageSurface(settings.CanvasWidth, settings.CanvasHeight)
	surface.SetBackground(settings.Background)

	animator := NewAnimator(surface, settings, rng)
	animator.SetLogger(session.Printf)

	m := initialModel(config, settings, rng, surface, animator, NewExporter(config), session)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if config.APIEnabled {
		startAPI(config.APIPort, func() (string, error) {
			reply := make(chan screenshotResult, 1)
			p.Send(screenshotRequestMsg{reply: reply})
			select {
			case res := <-reply:
				return res.path, res.err
			case <-time.After(5 * time.Second):
				return "", fmt.Errorf("screenshot collaborator unavailable")
			}
		}, session.Printf)
	}

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type tickMsg time.Time

type replayTickMsg time.Time

type screenshotResult struct {
	path string
	err  error
}

type screenshotRequestMsg struct {
	reply chan screenshotResult
}

type model struct {
	width  int
	height int

	config   *Config
	settings *Settings
	rng      *RNG
	surface  *ImageSurface
	animator *Animator
	exporter *Exporter
	session  *SessionLog

	replay *ReplaySession

	uiMode     UIMode
	inputField InputField
	inputText  string

	help bool

	errorMessage   string
	successMessage string
}

func initialModel(config *Config, settings *Settings, rng *RNG, surface *ImageSurface,
	animator *Animator, exporter *Exporter, session *SessionLog) model {
	return model{
		config:   config,
		settings: settings,
		rng:      rng,
		surface:  surface,
		animator: animator,
		exporter: exporter,
		session:  session,
	}
}

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.animator.Interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func replayCmd() tea.Cmd {
	return tea.Tick(replayInterval, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.animator.Tick()
		// Reschedule unconditionally: a paused driver keeps its scheduler
		// alive so resuming needs no restart, and the interval is read
		// fresh every time.
		return m, m.tickCmd()

	case replayTickMsg:
		if m.replay == nil {
			return m, nil
		}
		done, aborted := m.animator.ReplayStep(m.replay)
		switch {
		case aborted:
			m.replay = nil
			m.errorMessage = "Replay aborted: canvas was cleared"
			return m, nil
		case done:
			m.replay = nil
			m.successMessage = "Replay complete"
			return m, nil
		default:
			return m, replayCmd()
		}

	case screenshotRequestMsg:
		path, err := m.exporter.Screenshot(m.surface)
		msg.reply <- screenshotResult{path: path, err: err}
		if err != nil {
			m.session.Printf("remote screenshot failed: %v", err)
		} else {
			m.session.Printf("remote screenshot saved as %s", path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		switch msg.String() {
		case "escape", "q", "?":
			m.help = false
		}
		return m, nil
	}

	switch m.uiMode {
	case UIInput:
		return m.handleInputKey(msg)
	case UIHistory:
		switch msg.String() {
		case "escape", "q", "v":
			m.uiMode = UINormal
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.help = true

	case " ":
		if m.animator.TogglePause() == StatePaused {
			m.successMessage = "Paused"
		} else {
			m.successMessage = "Running"
		}

	case "u":
		if m.animator.Undo() {
			m.successMessage = "Last shape undone"
		} else {
			m.errorMessage = "No shapes to undo"
		}

	case "R":
		if m.replay != nil {
			m.errorMessage = "Replay already in progress"
			break
		}
		session, ok := m.animator.StartReplay()
		if !ok {
			m.errorMessage = "No history to replay"
			break
		}
		m.replay = session
		m.successMessage = "Replaying history..."
		return m, replayCmd()

	case "c":
		m.animator.ClearCanvas()
		m.successMessage = "Canvas cleared"

	case "s":
		return m.startInput(FieldSaveName, ""), nil

	case "S":
		if path, err := m.exporter.Screenshot(m.surface); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Screenshot saved as %s", path)
			m.session.Printf("screenshot saved as %s", path)
		}

	case "e":
		path, err := m.exporter.Screenshot(m.surface)
		if err != nil {
			m.errorMessage = err.Error()
			break
		}
		enhanced, err := m.exporter.Enhance(path)
		if err != nil {
			m.errorMessage = err.Error()
			break
		}
		m.successMessage = fmt.Sprintf("Enhanced image saved as %s", enhanced)
		m.session.Printf("enhanced image saved as %s", enhanced)

	case "E":
		path := m.config.GetSavePath(settingsFileName)
		if err := SaveSettings(path, m.settings); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting settings: %v", err)
		} else {
			m.successMessage = fmt.Sprintf("Settings exported to %s", path)
			m.session.Printf("settings exported to %s", path)
		}

	case "I":
		path := m.config.GetSavePath(settingsFileName)
		if err := LoadSettings(path, m.settings); err != nil {
			m.errorMessage = fmt.Sprintf("Error importing settings: %v", err)
		} else {
			m.surface.SetBackground(m.settings.Background)
			m.successMessage = fmt.Sprintf("Settings imported from %s", path)
			m.session.Printf("settings imported from %s", path)
		}

	case "-":
		m.settings.SetInterval(m.settings.Interval - 10)
	case "=":
		m.settings.SetInterval(m.settings.Interval + 10)
	case "_":
		m.settings.SetAutoClear(m.settings.AutoClearThreshold - 50)
	case "+":
		m.settings.SetAutoClear(m.settings.AutoClearThreshold + 50)

	case "b":
		if m.settings.Mode == ModeContinuous {
			m.settings.Mode = ModeBurst
		} else {
			m.settings.Mode = ModeContinuous
		}
	case ",":
		m.settings.SetBurstCount(m.settings.BurstCount - 1)
	case ".":
		m.settings.SetBurstCount(m.settings.BurstCount + 1)

	case "1", "2", "3", "4", "5":
		idx, _ := strconv.Atoi(msg.String())
		m.settings.ToggleShape(ShapeType(idx - 1))

	case "[":
		if err := m.settings.SetMinShapeSize(m.settings.MinShapeSize - 5); err != nil {
			m.errorMessage = err.Error()
		}
	case "]":
		if err := m.settings.SetMinShapeSize(m.settings.MinShapeSize + 5); err != nil {
			m.errorMessage = err.Error()
		}
	case "{":
		if err := m.settings.SetMaxShapeSize(m.settings.MaxShapeSize - 5); err != nil {
			m.errorMessage = err.Error()
		}
	case "}":
		if err := m.settings.SetMaxShapeSize(m.settings.MaxShapeSize + 5); err != nil {
			m.errorMessage = err.Error()
		}

	case "o":
		m.settings.OutlineOnly = !m.settings.OutlineOnly
	case "m":
		m.settings.Mirror = !m.settings.Mirror
	case "g":
		m.animator.ToggleGrid()

	case "U":
		if m.settings.SpecialMode == SpecialNormal {
			m.settings.SpecialMode = SpecialUltraRandom
		} else {
			m.settings.SpecialMode = SpecialNormal
		}
	case "C":
		m.settings.ChaosMode = !m.settings.ChaosMode

	case "t":
		return m.startInput(FieldMemeText, m.settings.MemeText), nil
	case "f":
		m.settings.SetMemeFontSize(m.settings.MemeFontSize - 2)
	case "F":
		m.settings.SetMemeFontSize(m.settings.MemeFontSize + 2)
	case "w":
		m.settings.WatermarkEnabled = !m.settings.WatermarkEnabled
	case "W":
		return m.startInput(FieldWatermarkText, m.settings.WatermarkText), nil

	case "P":
		return m.startInput(FieldPalette, m.settings.PaletteString()), nil
	case "B":
		return m.startInput(FieldBackground, m.settings.Background.Hex()), nil
	case "d":
		return m.startInput(FieldSeed, ""), nil
	case "z":
		w, h := m.surface.Bounds()
		return m.startInput(FieldCanvasSize, fmt.Sprintf("%dx%d", w, h)), nil

	case "v":
		m.uiMode = UIHistory
	}
	return m, nil
}

func (m model) startInput(field InputField, initial string) model {
	m.uiMode = UIInput
	m.inputField = field
	m.inputText = initial
	m.errorMessage = ""
	m.successMessage = ""
	return m
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "escape":
		m.uiMode = UINormal
		m.inputText = ""
		return m, nil
	case "enter":
		m.uiMode = UINormal
		return m.commitInput(), nil
	case "backspace":
		if len(m.inputText) > 0 {
			runes := []rune(m.inputText)
			m.inputText = string(runes[:len(runes)-1])
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.inputText += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.inputText += " "
		}
		return m, nil
	}
}

func (m model) commitInput() model {
	text := m.inputText
	m.inputText = ""

	switch m.inputField {
	case FieldMemeText:
		m.settings.MemeText = text
		m.successMessage = "Meme text updated"

	case FieldWatermarkText:
		m.settings.WatermarkText = strings.TrimSpace(text)
		m.successMessage = "Watermark text updated"

	case FieldPalette:
		if err := m.settings.SetPaletteString(text); err != nil {
			m.errorMessage = fmt.Sprintf("Invalid palette: %v", err)
		} else {
			m.successMessage = "Palette updated"
		}

	case FieldBackground:
		c, err := colorful.Hex(strings.TrimSpace(text))
		if err != nil {
			m.errorMessage = fmt.Sprintf("Invalid color %q", text)
		} else {
			m.settings.Background = c
			m.surface.SetBackground(c)
			m.successMessage = "Background color updated"
		}

	case FieldSeed:
		if err := m.settings.SetSeedString(text); err != nil {
			m.errorMessage = "Invalid seed value"
		} else if m.settings.Seed != nil {
			m.rng.Reseed(*m.settings.Seed)
			m.successMessage = fmt.Sprintf("Seed set to %d", *m.settings.Seed)
		} else {
			m.successMessage = "Seed cleared"
		}

	case FieldSaveName:
		path, err := m.exporter.SaveArt(m.surface, text)
		if err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Art saved as %s", path)
			m.session.Printf("art saved as %s", path)
		}

	case FieldCanvasSize:
		parts := strings.SplitN(strings.ToLower(strings.TrimSpace(text)), "x", 2)
		if len(parts) != 2 {
			m.errorMessage = "Canvas size must be WIDTHxHEIGHT"
			break
		}
		w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
		h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errW != nil || errH != nil || w <= 0 || h <= 0 {
			m.errorMessage = "Canvas size must be WIDTHxHEIGHT"
			break
		}
		m.animator.Resize(w, h)
		m.successMessage = fmt.Sprintf("Canvas size set to %d x %d", w, h)
	}
	return m
}
