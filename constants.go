package main

import "time"

type DriverState int

const (
	StateRunning DriverState = iota
	StatePaused
)

type DrawingMode int

const (
	ModeContinuous DrawingMode = iota
	ModeBurst
)

type SpecialMode int

const (
	SpecialNormal SpecialMode = iota
	SpecialUltraRandom
)

type ShapeType int

const (
	ShapeCircle ShapeType = iota
	ShapeLine
	ShapeArc
	ShapeRectangle
	ShapeTriangle
)

var shapeNames = map[ShapeType]string{
	ShapeCircle:    "circle",
	ShapeLine:      "line",
	ShapeArc:       "arc",
	ShapeRectangle: "rectangle",
	ShapeTriangle:  "triangle",
}

func (s ShapeType) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

type PrimitiveKind int

const (
	KindOval PrimitiveKind = iota
	KindLine
	KindArc
	KindRectangle
	KindPolygon
	KindText
)

type UIMode int

const (
	UINormal UIMode = iota
	UIInput
	UIHistory
)

type InputField int

const (
	FieldMemeText InputField = iota
	FieldWatermarkText
	FieldPalette
	FieldBackground
	FieldSeed
	FieldSaveName
	FieldCanvasSize
)

const (
	minInterval = 1
	maxInterval = 5000

	minAutoClear = 1
	maxAutoClear = 10000

	minBurstCount = 1
	maxBurstCount = 20

	minMemeFontSize = 10
	maxMemeFontSize = 72

	chaosPeriod = 50 // frames between chaos background swaps
	gridSpacing = 50 // pixels

	replayInterval = 50 * time.Millisecond

	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600

	defaultAPIPort = 5000
)
