package main

// MirrorCoords reflects a flat coordinate list across the vertical center
// line of a canvas of the given width: every x becomes width-x, every y is
// left alone. The output preserves coordinate order so the mirrored
// primitive can be issued with the exact same render call as the original.
func MirrorCoords(coords []float64, width int) []float64 {
	out := make([]float64, len(coords))
	for i, v := range coords {
		if i%2 == 0 {
			out[i] = float64(width) - v
		} else {
			out[i] = v
		}
	}
	return out
}

// MirrorDescriptor derives the horizontally reflected twin of a descriptor.
// Only geometry changes; type, color and style carry over.
func MirrorDescriptor(desc ShapeDescriptor, width int) ShapeDescriptor {
	out := desc.Clone()
	out.Coords = MirrorCoords(desc.Coords, width)
	return out
}
