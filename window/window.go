package window

// Slot is one attached element together with the item it presents and the
// extent it was laid out at.
type Slot[E any] struct {
	Index   int
	Extent  Extent
	Element E
}

// Window is the contiguous run of attached items. Slots are ordered by index,
// starting at First, and their extents are adjacent.
//
// Window is a value type: every transformation returns a new window and never
// modifies the receiver's slots.
type Window[E any] struct {
	First int
	Slots []Slot[E]
}

// Len returns the number of attached items.
func (w Window[E]) Len() int {
	return len(w.Slots)
}

// Empty reports whether nothing is attached.
func (w Window[E]) Empty() bool {
	return len(w.Slots) == 0
}

// Last returns the trailing slot. It must not be called on an empty window.
func (w Window[E]) Last() Slot[E] {
	return w.Slots[len(w.Slots)-1]
}

// LastIndex returns the item index of the trailing slot, or First-1 if the
// window is empty.
func (w Window[E]) LastIndex() int {
	return w.First + len(w.Slots) - 1
}

// Extent returns the span covered by all slots.
func (w Window[E]) Extent() Extent {
	if w.Empty() {
		return Extent{}
	}
	return Extent{Left: w.Slots[0].Extent.Left, Right: w.Last().Extent.Right}
}

// Lookup returns the slot presenting index.
func (w Window[E]) Lookup(index int) (Slot[E], bool) {
	position := index - w.First
	if position < 0 || position >= len(w.Slots) {
		return Slot[E]{}, false
	}
	return w.Slots[position], true
}

// At returns the slot whose extent contains x.
func (w Window[E]) At(x int) (Slot[E], bool) {
	for _, slot := range w.Slots {
		if slot.Extent.Contains(x) {
			return slot, true
		}
	}
	return Slot[E]{}, false
}

// Closest returns the slot whose center is nearest to mid. Ties go to the
// leading slot.
func (w Window[E]) Closest(mid int) (Slot[E], bool) {
	if w.Empty() {
		return Slot[E]{}, false
	}
	best := 0
	bestDistance := abs(w.Slots[0].Extent.Center() - mid)
	for i := 1; i < len(w.Slots); i++ {
		if d := abs(w.Slots[i].Extent.Center() - mid); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return w.Slots[best], true
}

// Contiguous reports whether the slots have consecutive indices and adjacent
// extents.
func (w Window[E]) Contiguous() bool {
	for i := 1; i < len(w.Slots); i++ {
		prev, cur := w.Slots[i-1], w.Slots[i]
		if cur.Index != prev.Index+1 || cur.Extent.Left != prev.Extent.Right {
			return false
		}
	}
	return w.Empty() || w.Slots[0].Index == w.First
}

// Append returns the window with slot attached at the trailing edge.
func (w Window[E]) Append(slot Slot[E]) Window[E] {
	slots := make([]Slot[E], len(w.Slots), len(w.Slots)+1)
	copy(slots, w.Slots)
	if len(slots) == 0 {
		w.First = slot.Index
	}
	return Window[E]{First: w.First, Slots: append(slots, slot)}
}

// Prepend returns the window with slot attached at the leading edge.
func (w Window[E]) Prepend(slot Slot[E]) Window[E] {
	slots := make([]Slot[E], 0, len(w.Slots)+1)
	slots = append(slots, slot)
	slots = append(slots, w.Slots...)
	return Window[E]{First: slot.Index, Slots: slots}
}

// Shift returns the window with every extent moved by dx.
func (w Window[E]) Shift(dx int) Window[E] {
	slots := make([]Slot[E], len(w.Slots))
	for i, slot := range w.Slots {
		slot.Extent = slot.Extent.Shift(dx)
		slots[i] = slot
	}
	return Window[E]{First: w.First, Slots: slots}
}

// Prune returns the minimal run of slots between the first and the last slot
// that is either visible in viewport or kept by keep. The removed slots are
// returned in detach order: trailing slots from the end, then leading slots
// from the front.
//
// If no slot qualifies, the leading slot is retained so the window always
// keeps an anchor for the next scroll.
func (w Window[E]) Prune(viewport Viewport, keep func(Slot[E]) bool) (Window[E], []Slot[E]) {
	return w.PruneFunc(func(slot Slot[E]) bool {
		return (keep != nil && keep(slot)) || viewport.Contains(slot.Extent)
	})
}

// PruneFunc is like Prune but lets retain decide which slots qualify.
func (w Window[E]) PruneFunc(retain func(Slot[E]) bool) (Window[E], []Slot[E]) {
	if w.Empty() {
		return w, nil
	}
	first, last, found := 0, 0, false
	for i, slot := range w.Slots {
		if retain(slot) {
			if !found {
				first = i
				found = true
			}
			last = i
		}
	}

	var dropped []Slot[E]
	for i := len(w.Slots) - 1; i > last; i-- {
		dropped = append(dropped, w.Slots[i])
	}
	for i := first - 1; i >= 0; i-- {
		dropped = append(dropped, w.Slots[i])
	}

	kept := make([]Slot[E], last-first+1)
	copy(kept, w.Slots[first:last+1])
	return Window[E]{First: w.First + first, Slots: kept}, dropped
}

// Position describes where an item is laid out.
type Position struct {
	Index  int
	Extent Extent
}

// Positions returns the index/extent pairs of the window.
func (w Window[E]) Positions() []Position {
	positions := make([]Position, len(w.Slots))
	for i, slot := range w.Slots {
		positions[i] = Position{Index: slot.Index, Extent: slot.Extent}
	}
	return positions
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
