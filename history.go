package main

// History is the ordered log of rendered shapes, insertion order ==
// generation order. It owns the lifecycle of each record's primitives: a
// record leaves the history only together with its primitives, so no
// dangling handle ever outlives an undo or a clear.
type History struct {
	surface Surface
	records []ShapeRecord
}

func NewHistory(surface Surface) *History {
	return &History{surface: surface}
}

func (h *History) Len() int { return len(h.records) }

func (h *History) Append(rec ShapeRecord) {
	h.records = append(h.records, rec)
}

// PopLast removes the most recent record and deletes its primitives (and
// mirror primitives) from the surface. It reports false when there is
// nothing to undo.
func (h *History) PopLast() (ShapeRecord, bool) {
	if len(h.records) == 0 {
		return ShapeRecord{}, false
	}
	last := len(h.records) - 1
	rec := h.records[last]
	h.records = h.records[:last]
	for _, handle := range rec.Handles {
		h.surface.DeletePrimitive(handle)
	}
	for _, handle := range rec.MirrorHandles {
		h.surface.DeletePrimitive(handle)
	}
	return rec, true
}

// Clear deletes every record's primitives and empties the log.
func (h *History) Clear() {
	for _, rec := range h.records {
		for _, handle := range rec.Handles {
			h.surface.DeletePrimitive(handle)
		}
		for _, handle := range rec.MirrorHandles {
			h.surface.DeletePrimitive(handle)
		}
	}
	h.records = h.records[:0]
}

// Drop empties the log without touching the surface. The driver uses it
// after a whole-surface wipe already destroyed the primitives.
func (h *History) Drop() {
	h.records = h.records[:0]
}

// Snapshot copies the recorded descriptors in order. Replay iterates the
// copy, so clearing the live history mid-replay cannot corrupt it.
func (h *History) Snapshot() []ShapeDescriptor {
	out := make([]ShapeDescriptor, len(h.records))
	for i, rec := range h.records {
		out[i] = rec.Descriptor.Clone()
	}
	return out
}
