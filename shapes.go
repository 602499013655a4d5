package main

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GenerateShape samples one shape descriptor from the given settings
// snapshot. It only samples; rendering and history bookkeeping are the
// caller's job so generation stays independently testable.
//
// When no shape type is enabled the generator falls back to a circle rather
// than surfacing ErrEmptyDomain.
func GenerateShape(s Settings, width, height int, rng *RNG) ShapeDescriptor {
	shapeType, err := Choice(rng, s.EnabledShapeList())
	if err != nil {
		shapeType = ShapeCircle
	}
	return generateShapeOfType(s, width, height, rng, shapeType)
}

// generateShapeOfType samples geometry and color for a fixed type. Replay
// uses this directly to reproduce a recorded type sequence.
func generateShapeOfType(s Settings, width, height int, rng *RNG, shapeType ShapeType) ShapeDescriptor {
	size := float64(rng.UniformInt(s.MinShapeSize, s.MaxShapeSize))
	x := float64(rng.UniformInt(0, width))
	y := float64(rng.UniformInt(0, height))

	var c colorful.Color
	if len(s.Palette) > 0 {
		c, _ = Choice(rng, s.Palette)
	} else {
		c = rng.Color()
	}

	desc := ShapeDescriptor{
		Type:        shapeType,
		Size:        size,
		Color:       c,
		OutlineOnly: s.OutlineOnly,
	}

	switch shapeType {
	case ShapeCircle:
		desc.Coords = []float64{x - size, y - size, x + size, y + size}
	case ShapeLine:
		x2 := float64(rng.UniformInt(0, width))
		y2 := float64(rng.UniformInt(0, height))
		desc.Coords = []float64{x, y, x2, y2}
		desc.LineWidth = float64(rng.UniformInt(1, 5))
	case ShapeArc:
		desc.Coords = []float64{x, y, x + size, y + size}
		desc.StartAngle = float64(rng.UniformInt(0, 359))
		desc.Extent = float64(rng.UniformInt(30, 179))
	case ShapeRectangle:
		desc.Coords = []float64{x, y, x + size, y + size}
	case ShapeTriangle:
		x2 := x + float64(rng.UniformInt(-int(size), int(size)))
		y2 := y + float64(rng.UniformInt(-int(size), int(size)))
		x3 := x + float64(rng.UniformInt(-int(size), int(size)))
		y3 := y + float64(rng.UniformInt(-int(size), int(size)))
		desc.Coords = []float64{x, y, x2, y2, x3, y3}
	}
	return desc
}

func primitiveKindFor(t ShapeType) PrimitiveKind {
	switch t {
	case ShapeCircle:
		return KindOval
	case ShapeLine:
		return KindLine
	case ShapeArc:
		return KindArc
	case ShapeRectangle:
		return KindRectangle
	default:
		return KindPolygon
	}
}

func styleFor(desc ShapeDescriptor) Style {
	style := Style{
		Color:       desc.Color,
		OutlineOnly: desc.OutlineOnly,
		LineWidth:   desc.LineWidth,
		StartAngle:  desc.StartAngle,
		Extent:      desc.Extent,
	}
	if desc.OutlineOnly && desc.Type != ShapeLine {
		style.LineWidth = 2
	}
	return style
}

// RenderShape issues the descriptor's primitives against the surface and
// returns their handles.
func RenderShape(surface Surface, desc ShapeDescriptor) ([]Handle, error) {
	h, err := surface.CreatePrimitive(primitiveKindFor(desc.Type), desc.Coords, styleFor(desc))
	if err != nil {
		return nil, err
	}
	return []Handle{h}, nil
}
