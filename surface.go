package main

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type primitive struct {
	handle Handle
	kind   PrimitiveKind
	coords []float64
	style  Style
}

// ImageSurface is a retained-mode canvas: primitives live in a display list
// in z-order and are only rasterized when an export or screenshot asks for
// pixels. Delete-by-handle keeps undo cheap because nothing has to repaint.
type ImageSurface struct {
	width      int
	height     int
	background colorful.Color
	prims      []primitive
	nextHandle Handle
	epoch      uint64
}

var _ Surface = (*ImageSurface)(nil)

func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		width:      width,
		height:     height,
		nextHandle: 1,
	}
}

func (s *ImageSurface) Bounds() (int, int) { return s.width, s.height }

// Resize changes the logical canvas bounds. Existing primitives keep their
// coordinates; the caller is expected to reconcile overlays and grid.
func (s *ImageSurface) Resize(width, height int) {
	if width > 0 {
		s.width = width
	}
	if height > 0 {
		s.height = height
	}
}

func (s *ImageSurface) SetBackground(c colorful.Color) { s.background = c }

func (s *ImageSurface) Background() colorful.Color { return s.background }

// Epoch increases every time the whole surface is cleared. Replay reads it
// to notice a clear it did not issue itself.
func (s *ImageSurface) Epoch() uint64 { return s.epoch }

// Count reports the number of live primitives.
func (s *ImageSurface) Count() int { return len(s.prims) }

func (s *ImageSurface) CreatePrimitive(kind PrimitiveKind, coords []float64, style Style) (Handle, error) {
	if kind != KindText && len(coords) < 4 {
		return 0, fmt.Errorf("primitive needs at least two points, got %d coords", len(coords))
	}
	h := s.nextHandle
	s.nextHandle++
	s.prims = append(s.prims, primitive{
		handle: h,
		kind:   kind,
		coords: append([]float64(nil), coords...),
		style:  style,
	})
	return h, nil
}

func (s *ImageSurface) find(h Handle) int {
	for i := range s.prims {
		if s.prims[i].handle == h {
			return i
		}
	}
	return -1
}

func (s *ImageSurface) DeletePrimitive(h Handle) error {
	i := s.find(h)
	if i < 0 {
		return fmt.Errorf("delete %d: %w", h, ErrUnknownHandle)
	}
	s.prims = append(s.prims[:i], s.prims[i+1:]...)
	return nil
}

func (s *ImageSurface) UpdateText(h Handle, text string) error {
	i := s.find(h)
	if i < 0 {
		return fmt.Errorf("update text %d: %w", h, ErrUnknownHandle)
	}
	s.prims[i].style.Text = text
	return nil
}

// RaiseToTop moves the primitive to the end of the display list so it draws
// above everything else.
func (s *ImageSurface) RaiseToTop(h Handle) error {
	i := s.find(h)
	if i < 0 {
		return fmt.Errorf("raise %d: %w", h, ErrUnknownHandle)
	}
	p := s.prims[i]
	s.prims = append(s.prims[:i], s.prims[i+1:]...)
	s.prims = append(s.prims, p)
	return nil
}

func (s *ImageSurface) ClearAll() {
	s.prims = s.prims[:0]
	s.epoch++
}

// PrimitiveInfo is the read-only view of one display-list entry exposed to
// the terminal preview.
type PrimitiveInfo struct {
	Kind   PrimitiveKind
	Coords []float64
	Color  colorful.Color
}

// Snapshot copies the display list in z-order. Coordinate slices are shared
// but never mutated.
func (s *ImageSurface) Snapshot() []PrimitiveInfo {
	out := make([]PrimitiveInfo, len(s.prims))
	for i, p := range s.prims {
		out[i] = PrimitiveInfo{Kind: p.kind, Coords: p.coords, Color: p.style.Color}
	}
	return out
}

var (
	fontRegular *truetype.Font
	fontBold    *truetype.Font
	fontItalic  *truetype.Font
)

func loadFonts() error {
	if fontRegular != nil {
		return nil
	}
	var err error
	if fontRegular, err = truetype.Parse(goregular.TTF); err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	if fontBold, err = truetype.Parse(gobold.TTF); err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	if fontItalic, err = truetype.Parse(goitalic.TTF); err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	return nil
}

func faceFor(style Style) font.Face {
	ttf := fontRegular
	if style.Bold {
		ttf = fontBold
	} else if style.Italic {
		ttf = fontItalic
	}
	size := style.FontSize
	if size <= 0 {
		size = 12
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// bbox normalizes a two-point coordinate list; mirrored primitives arrive
// with x1 > x2 and still have to rasterize the same.
func bbox(coords []float64) (x1, y1, x2, y2 float64) {
	x1 = math.Min(coords[0], coords[2])
	x2 = math.Max(coords[0], coords[2])
	y1 = math.Min(coords[1], coords[3])
	y2 = math.Max(coords[1], coords[3])
	return
}

// Rasterize paints the display list, in z-order, onto a fresh image.
func (s *ImageSurface) Rasterize() (image.Image, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	dc := gg.NewContext(s.width, s.height)
	dc.SetColor(s.background)
	dc.Clear()

	for _, p := range s.prims {
		drawPrimitive(dc, p)
	}
	return dc.Image(), nil
}

func drawPrimitive(dc *gg.Context, p primitive) {
	dc.SetColor(p.style.Color)
	switch p.kind {
	case KindOval:
		x1, y1, x2, y2 := bbox(p.coords)
		dc.DrawEllipse((x1+x2)/2, (y1+y2)/2, (x2-x1)/2, (y2-y1)/2)
		fillOrStroke(dc, p.style)
	case KindLine:
		if len(p.style.Dash) > 0 {
			dc.SetDash(p.style.Dash...)
		}
		dc.SetLineWidth(math.Max(p.style.LineWidth, 1))
		dc.DrawLine(p.coords[0], p.coords[1], p.coords[2], p.coords[3])
		dc.Stroke()
		if len(p.style.Dash) > 0 {
			dc.SetDash()
		}
	case KindArc:
		x1, y1, x2, y2 := bbox(p.coords)
		cx, cy := (x1+x2)/2, (y1+y2)/2
		r := (x2 - x1) / 2
		// Angles are counter-clockwise from 3 o'clock; gg's y axis points
		// down, so negate.
		a1 := -gg.Radians(p.style.StartAngle)
		a2 := -gg.Radians(p.style.StartAngle + p.style.Extent)
		if p.style.OutlineOnly {
			dc.SetLineWidth(math.Max(p.style.LineWidth, 1))
			dc.DrawArc(cx, cy, r, a1, a2)
			dc.Stroke()
		} else {
			dc.MoveTo(cx, cy)
			dc.DrawArc(cx, cy, r, a1, a2)
			dc.ClosePath()
			dc.Fill()
		}
	case KindRectangle:
		x1, y1, x2, y2 := bbox(p.coords)
		dc.DrawRectangle(x1, y1, x2-x1, y2-y1)
		fillOrStroke(dc, p.style)
	case KindPolygon:
		dc.MoveTo(p.coords[0], p.coords[1])
		for i := 2; i+1 < len(p.coords); i += 2 {
			dc.LineTo(p.coords[i], p.coords[i+1])
		}
		dc.ClosePath()
		fillOrStroke(dc, p.style)
	case KindText:
		dc.SetFontFace(faceFor(p.style))
		dc.DrawStringAnchored(p.style.Text, p.coords[0], p.coords[1], 0.5, 0.5)
	}
}

func fillOrStroke(dc *gg.Context, style Style) {
	if style.OutlineOnly {
		dc.SetLineWidth(math.Max(style.LineWidth, 1))
		dc.Stroke()
	} else {
		dc.Fill()
	}
}
