package main

import (
	"errors"
	"testing"
)

func TestPrimitiveLifecycle(t *testing.T) {
	s := NewImageSurface(800, 600)

	h1, err := s.CreatePrimitive(KindOval, []float64{0, 0, 10, 10}, Style{})
	if err != nil {
		t.Fatal(err)
	}
	h2, err := s.CreatePrimitive(KindLine, []float64{0, 0, 50, 50}, Style{})
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Fatalf("handles not unique: %d", h1)
	}
	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}

	if err := s.DeletePrimitive(h1); err != nil {
		t.Fatalf("delete live handle: %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("count = %d after delete, want 1", s.Count())
	}
	if err := s.DeletePrimitive(h1); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("double delete: got %v, want ErrUnknownHandle", err)
	}
}

func TestCreatePrimitiveRejectsShortCoords(t *testing.T) {
	s := NewImageSurface(100, 100)
	if _, err := s.CreatePrimitive(KindOval, []float64{1, 2}, Style{}); err == nil {
		t.Errorf("two-coordinate oval accepted")
	}
	// Text anchors on a single point.
	if _, err := s.CreatePrimitive(KindText, []float64{50, 50}, Style{Text: "hi"}); err != nil {
		t.Errorf("text primitive rejected: %v", err)
	}
}

func TestRaiseToTop(t *testing.T) {
	s := NewImageSurface(100, 100)
	h1, _ := s.CreatePrimitive(KindOval, []float64{0, 0, 10, 10}, Style{})
	s.CreatePrimitive(KindRectangle, []float64{0, 0, 10, 10}, Style{})

	if err := s.RaiseToTop(h1); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap[len(snap)-1].Kind != KindOval {
		t.Errorf("raised primitive is not last in z-order")
	}

	if err := s.RaiseToTop(Handle(999)); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("raising unknown handle: got %v", err)
	}
}

func TestUpdateText(t *testing.T) {
	s := NewImageSurface(100, 100)
	h, _ := s.CreatePrimitive(KindText, []float64{50, 50}, Style{Text: "before"})
	if err := s.UpdateText(h, "after"); err != nil {
		t.Fatal(err)
	}
	if s.prims[0].style.Text != "after" {
		t.Errorf("text not updated: %q", s.prims[0].style.Text)
	}
}

func TestClearAllBumpsEpoch(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.CreatePrimitive(KindOval, []float64{0, 0, 10, 10}, Style{})
	before := s.Epoch()
	s.ClearAll()
	if s.Count() != 0 {
		t.Errorf("count = %d after ClearAll", s.Count())
	}
	if s.Epoch() != before+1 {
		t.Errorf("epoch = %d, want %d", s.Epoch(), before+1)
	}
}

func TestRasterizeDimensions(t *testing.T) {
	s := NewImageSurface(320, 240)
	s.SetBackground(mustHex("#000000"))
	s.CreatePrimitive(KindOval, []float64{10, 10, 60, 60}, Style{Color: mustHex("#ff0000")})
	s.CreatePrimitive(KindLine, []float64{0, 0, 320, 240}, Style{Color: mustHex("#00ff00"), LineWidth: 3})
	s.CreatePrimitive(KindArc, []float64{100, 100, 150, 150}, Style{Color: mustHex("#0000ff"), StartAngle: 45, Extent: 90})
	s.CreatePrimitive(KindPolygon, []float64{200, 50, 250, 100, 180, 120}, Style{Color: mustHex("#ffff00"), OutlineOnly: true, LineWidth: 2})
	s.CreatePrimitive(KindText, []float64{160, 200}, Style{Color: mustHex("#ffffff"), Text: "hello", FontSize: 16, Bold: true})

	img, err := s.Rasterize()
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 240 {
		t.Errorf("image size %dx%d, want 320x240", bounds.Dx(), bounds.Dy())
	}
}

// Mirrored bounding boxes arrive with x1 > x2; rasterization has to
// normalize instead of drawing a negative-width shape.
func TestRasterizeMirroredBBox(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.CreatePrimitive(KindRectangle, MirrorCoords([]float64{10, 10, 40, 40}, 100), Style{Color: mustHex("#ff00ff")})
	if _, err := s.Rasterize(); err != nil {
		t.Fatalf("rasterize mirrored bbox: %v", err)
	}
}

func TestResizeKeepsPrimitives(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.CreatePrimitive(KindOval, []float64{0, 0, 10, 10}, Style{})
	s.Resize(200, 300)
	w, h := s.Bounds()
	if w != 200 || h != 300 {
		t.Errorf("bounds = %dx%d, want 200x300", w, h)
	}
	if s.Count() != 1 {
		t.Errorf("resize dropped primitives")
	}
}
