package main

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	colorWhite     = colorful.Color{R: 1, G: 1, B: 1}
	colorWatermark = mustHex("#888888")
	colorGrid      = mustHex("#333333")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Animator drives the generation loop. It is the only timer-driven actor:
// every canvas mutation funnels through Tick, Undo, ClearCanvas or the
// replay stepper, all of which the caller invokes from one goroutine.
type Animator struct {
	surface  *ImageSurface
	settings *Settings
	rng      *RNG
	history  *History

	state      DriverState
	frameCount int

	memeHandle      Handle
	watermarkHandle Handle
	gridHandles     []Handle

	logf func(format string, args ...interface{})
}

func NewAnimator(surface *ImageSurface, settings *Settings, rng *RNG) *Animator {
	return &Animator{
		surface:  surface,
		settings: settings,
		rng:      rng,
		history:  NewHistory(surface),
		state:    StateRunning,
		logf:     func(string, ...interface{}) {},
	}
}

func (a *Animator) SetLogger(logf func(format string, args ...interface{})) {
	if logf != nil {
		a.logf = logf
	}
}

func (a *Animator) History() *History { return a.history }

func (a *Animator) State() DriverState { return a.state }

func (a *Animator) FrameCount() int { return a.frameCount }

// TogglePause flips Running <-> Paused. The change takes effect at the next
// tick boundary; an in-flight tick always finishes.
func (a *Animator) TogglePause() DriverState {
	if a.state == StateRunning {
		a.state = StatePaused
	} else {
		a.state = StateRunning
	}
	return a.state
}

// Interval reads the animation interval fresh from settings, so speed
// changes apply on the next reschedule without restarting the loop.
func (a *Animator) Interval() time.Duration {
	return time.Duration(a.settings.Interval) * time.Millisecond
}

// Tick runs one generation step. Ordering follows the driver contract:
// frame count, shapes, auto-clear, chaos, overlay reconciliation. Per-shape
// failures are logged and never stop the remaining burst or the loop.
func (a *Animator) Tick() {
	if a.state != StateRunning {
		return
	}
	a.frameCount++

	// UltraRandom rerolls style on the live record before the snapshot, so
	// this tick's shapes already see the new style.
	if a.settings.SpecialMode == SpecialUltraRandom {
		a.settings.RandomizeStyle(a.rng)
	}
	snap := a.settings.Snapshot()

	count := 1
	if snap.Mode == ModeBurst {
		count = snap.BurstCount
	}
	for i := 0; i < count; i++ {
		if err := a.drawOne(snap); err != nil {
			a.logf("render failed: %v", err)
		}
	}

	if a.frameCount >= snap.AutoClearThreshold {
		a.ClearCanvas()
	}
	if snap.ChaosMode && a.frameCount%chaosPeriod == 0 {
		a.surface.SetBackground(a.rng.Color())
	}
	a.reconcileOverlays(snap)
}

func (a *Animator) drawOne(snap Settings) error {
	width, height := a.surface.Bounds()
	desc := GenerateShape(snap, width, height, a.rng)
	return a.renderRecord(snap, desc)
}

func (a *Animator) renderRecord(snap Settings, desc ShapeDescriptor) error {
	width, _ := a.surface.Bounds()
	handles, err := RenderShape(a.surface, desc)
	if err != nil {
		return err
	}
	rec := ShapeRecord{Descriptor: desc, Handles: handles}
	if snap.Mirror {
		mirrored := MirrorDescriptor(desc, width)
		mirrorHandles, err := RenderShape(a.surface, mirrored)
		if err != nil {
			a.logf("mirror render failed: %v", err)
		} else {
			rec.MirrorHandles = mirrorHandles
		}
	}
	a.history.Append(rec)
	a.raiseOverlays()
	return nil
}

// Undo removes the most recent shape and its primitives. Reports whether
// there was anything to undo.
func (a *Animator) Undo() bool {
	_, ok := a.history.PopLast()
	return ok
}

// ClearCanvas wipes every primitive, forgets the history, and resets the
// frame counter, then puts the grid and overlays back.
func (a *Animator) ClearCanvas() {
	a.surface.ClearAll()
	a.history.Drop()
	a.frameCount = 0
	a.memeHandle = 0
	a.watermarkHandle = 0
	a.gridHandles = nil
	a.reconcileGrid()
	a.reconcileOverlays(a.settings.Snapshot())
}

// reconcileGrid creates or removes the dashed background grid to match the
// current setting.
func (a *Animator) reconcileGrid() {
	if !a.settings.GridOverlay {
		for _, h := range a.gridHandles {
			a.surface.DeletePrimitive(h)
		}
		a.gridHandles = nil
		return
	}
	if len(a.gridHandles) > 0 {
		return
	}
	width, height := a.surface.Bounds()
	style := Style{Color: colorGrid, LineWidth: 1, Dash: []float64{2, 4}}
	for x := 0; x < width; x += gridSpacing {
		h, err := a.surface.CreatePrimitive(KindLine, []float64{float64(x), 0, float64(x), float64(height)}, style)
		if err == nil {
			a.gridHandles = append(a.gridHandles, h)
		}
	}
	for y := 0; y < height; y += gridSpacing {
		h, err := a.surface.CreatePrimitive(KindLine, []float64{0, float64(y), float64(width), float64(y)}, style)
		if err == nil {
			a.gridHandles = append(a.gridHandles, h)
		}
	}
}

// ToggleGrid flips the setting and redraws.
func (a *Animator) ToggleGrid() {
	a.settings.GridOverlay = !a.settings.GridOverlay
	if a.settings.GridOverlay {
		// Force a rebuild so spacing matches the current bounds.
		for _, h := range a.gridHandles {
			a.surface.DeletePrimitive(h)
		}
		a.gridHandles = nil
	}
	a.reconcileGrid()
}

// reconcileOverlays maintains the meme and watermark text primitives:
// created once, updated in place, always above the shapes. The watermark is
// removed when its flag goes off; the meme text just stops updating.
func (a *Animator) reconcileOverlays(snap Settings) {
	width, height := a.surface.Bounds()
	if snap.MemeText != "" {
		if a.memeHandle == 0 {
			style := Style{
				Color:    colorWhite,
				Text:     snap.MemeText,
				FontSize: float64(snap.MemeFontSize),
				Bold:     true,
			}
			h, err := a.surface.CreatePrimitive(KindText, []float64{float64(width) / 2, float64(height) - 50}, style)
			if err != nil {
				a.logf("meme overlay failed: %v", err)
			} else {
				a.memeHandle = h
			}
		} else {
			a.surface.UpdateText(a.memeHandle, snap.MemeText)
		}
		if a.memeHandle != 0 {
			a.surface.RaiseToTop(a.memeHandle)
		}
	}
	if snap.WatermarkEnabled {
		if a.watermarkHandle == 0 {
			style := Style{
				Color:    colorWatermark,
				Text:     snap.WatermarkText,
				FontSize: 8,
				Italic:   true,
			}
			h, err := a.surface.CreatePrimitive(KindText, []float64{float64(width) - 80, float64(height) - 20}, style)
			if err != nil {
				a.logf("watermark overlay failed: %v", err)
			} else {
				a.watermarkHandle = h
			}
		} else {
			a.surface.UpdateText(a.watermarkHandle, snap.WatermarkText)
		}
		if a.watermarkHandle != 0 {
			a.surface.RaiseToTop(a.watermarkHandle)
		}
	} else if a.watermarkHandle != 0 {
		a.surface.DeletePrimitive(a.watermarkHandle)
		a.watermarkHandle = 0
	}
}

func (a *Animator) raiseOverlays() {
	if a.memeHandle != 0 {
		a.surface.RaiseToTop(a.memeHandle)
	}
	if a.watermarkHandle != 0 {
		a.surface.RaiseToTop(a.watermarkHandle)
	}
}

// Resize changes the canvas bounds and rebuilds bound-dependent elements.
func (a *Animator) Resize(width, height int) {
	a.surface.Resize(width, height)
	if a.settings.GridOverlay {
		for _, h := range a.gridHandles {
			a.surface.DeletePrimitive(h)
		}
		a.gridHandles = nil
		a.reconcileGrid()
	}
	a.settings.CanvasWidth, a.settings.CanvasHeight = a.surface.Bounds()
}

// ReplaySession walks a history snapshot shape by shape. It regenerates
// rather than repaints: the recorded type sequence is reproduced in order,
// geometry and color are sampled fresh.
type ReplaySession struct {
	snapshot []ShapeDescriptor
	index    int
	epoch    uint64
}

func (r *ReplaySession) Remaining() int { return len(r.snapshot) - r.index }

// StartReplay snapshots the history, clears the canvas, and returns the
// session. Reports false when there is no history to replay.
func (a *Animator) StartReplay() (*ReplaySession, bool) {
	if a.history.Len() == 0 {
		return nil, false
	}
	snapshot := a.history.Snapshot()
	a.ClearCanvas()
	return &ReplaySession{snapshot: snapshot, epoch: a.surface.Epoch()}, true
}

// ReplayStep renders the next recorded shape. done reports the snapshot is
// exhausted; aborted reports the surface was cleared by someone else while
// the replay was in flight, in which case the session ends gracefully.
func (a *Animator) ReplayStep(session *ReplaySession) (done, aborted bool) {
	if session.epoch != a.surface.Epoch() {
		return false, true
	}
	if session.index >= len(session.snapshot) {
		return true, false
	}
	snap := a.settings.Snapshot()
	width, height := a.surface.Bounds()
	desc := generateShapeOfType(snap, width, height, a.rng, session.snapshot[session.index].Type)
	if err := a.renderRecord(snap, desc); err != nil {
		a.logf("replay render failed: %v", err)
	}
	session.index++
	return session.index >= len(session.snapshot), false
}
