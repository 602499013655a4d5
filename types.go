package main

import (
	"errors"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrEmptyDomain is returned by Choice when asked to pick from nothing.
	ErrEmptyDomain = errors.New("empty domain")

	// ErrInvalidRange rejects settings writes that would break an invariant,
	// e.g. min size above max size. The previous value is retained.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnknownHandle reports a surface operation against a primitive that
	// is not live (already deleted or never created).
	ErrUnknownHandle = errors.New("unknown primitive handle")
)

// Handle identifies one live primitive on a Surface.
type Handle int

// Style carries everything a Surface needs to draw a primitive beyond its
// coordinates. Zero value means filled, hairline, no dash.
type Style struct {
	Color       colorful.Color
	OutlineOnly bool
	LineWidth   float64
	Dash        []float64

	// Arc sweep, degrees. Only read for KindArc.
	StartAngle float64
	Extent     float64

	// Only read for KindText.
	Text     string
	FontSize float64
	Bold     bool
	Italic   bool
}

// ShapeDescriptor is the transient output of one generation step. Coords is
// the flat primitive coordinate list (x,y pairs in draw order), so a mirror
// pass can operate on coordinates without per-type logic. Descriptors are
// never mutated after creation.
type ShapeDescriptor struct {
	Type        ShapeType
	Coords      []float64
	Size        float64
	Color       colorful.Color
	OutlineOnly bool
	LineWidth   float64
	StartAngle  float64
	Extent      float64
}

// Clone returns a copy with its own coordinate slice.
func (d ShapeDescriptor) Clone() ShapeDescriptor {
	out := d
	out.Coords = append([]float64(nil), d.Coords...)
	return out
}

// ShapeRecord ties a descriptor to the primitives it rendered as, plus the
// mirrored primitives when mirroring was on. Records live in the draw
// history until undo or clear removes them together with their primitives.
type ShapeRecord struct {
	Descriptor    ShapeDescriptor
	Handles       []Handle
	MirrorHandles []Handle
}

// Surface is the drawing boundary. The engine issues primitives and deletes
// them by handle; it never reads pixels back. Rasterization for export is an
// implementation concern of the concrete surface.
type Surface interface {
	CreatePrimitive(kind PrimitiveKind, coords []float64, style Style) (Handle, error)
	DeletePrimitive(h Handle) error
	UpdateText(h Handle, text string) error
	RaiseToTop(h Handle) error
	SetBackground(c colorful.Color)
	ClearAll()
	Bounds() (width, height int)
}
