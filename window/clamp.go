package window

// Clamp returns the part of delta the window may scroll. Positive deltas
// advance toward the end of the collection.
//
// At the leading edge (item 0 attached first) retreating stops once the first
// item's center reaches the viewport midpoint; at the trailing edge (last item
// attached) advancing stops once the last item's center reaches it. A
// collection that fits into the viewport does not scroll at all.
func Clamp[E any](delta int, w Window[E], itemCount int, viewportWidth int) int {
	if w.Empty() || delta == 0 {
		return 0
	}

	mid := viewportWidth / 2
	atStart := w.First == 0
	atEnd := w.LastIndex() == itemCount-1

	if atStart && atEnd && w.Extent().Width() < viewportWidth {
		return 0
	}

	switch {
	case delta > 0 && atEnd:
		return max(0, min(delta, w.Last().Extent.Center()-mid))
	case delta < 0 && atStart:
		return min(0, max(delta, w.Slots[0].Extent.Center()-mid))
	}
	return delta
}
