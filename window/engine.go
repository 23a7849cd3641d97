// Package window implements a windowed, center-locking layout engine for a
// horizontally scrolling strip of items. Only the items intersecting the
// viewport are attached; the rest are recycled through a [Pool].
package window

// Option configures an [Engine].
type Option func(*options)

type options struct {
	poolCapacity int
}

// WithPoolCapacity sets how many unbound elements the engine's pool retains.
func WithPoolCapacity(capacity int) Option {
	return func(o *options) {
		o.poolCapacity = capacity
	}
}

// Engine lays out a horizontally scrolling strip of items, attaching only the
// items that intersect the viewport and recycling the rest.
//
// The engine keeps no absolute scroll offset. Its state is the attached
// [Window] alone, which is moved by the deltas passed to ScrollBy. All methods
// must be called from the host's event loop.
type Engine[E any] struct {
	adapter   Adapter[E]
	container Container[E]
	pool      *Pool[E]

	window    Window[E]
	itemCount int

	// Set by MarkStructureChanged, cleared by the next layout.
	structureChanged bool
}

// NewEngine returns an engine which obtains items from adapter and attaches
// them to container.
func NewEngine[E any](adapter Adapter[E], container Container[E], opts ...Option) *Engine[E] {
	o := options{poolCapacity: DefaultPoolCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Engine[E]{
		adapter:   adapter,
		container: container,
		pool:      NewPool[E](adapter, o.poolCapacity),
	}
}

// Window returns the current layout window. The returned value must be
// treated as read-only.
func (e *Engine[E]) Window() Window[E] {
	return e.window
}

// Snapshot returns the index and extent of every attached item.
func (e *Engine[E]) Snapshot() []Position {
	return e.window.Positions()
}

// FirstVisible returns the index of the first attached item.
func (e *Engine[E]) FirstVisible() int {
	return e.window.First
}

// Attached returns the number of attached items.
func (e *Engine[E]) Attached() int {
	return e.window.Len()
}

// ItemCount returns the item count of the last layout pass.
func (e *Engine[E]) ItemCount() int {
	return e.itemCount
}

// Pool returns the engine's recycle pool.
func (e *Engine[E]) Pool() *Pool[E] {
	return e.pool
}

// Viewport returns the container's current viewport.
func (e *Engine[E]) Viewport() Viewport {
	width, height := e.container.ViewportSize()
	return Viewport{Width: width, Height: height}
}

// MarkStructureChanged forces the next LayoutInitial to rebuild the window
// even if the item count did not change.
func (e *Engine[E]) MarkStructureChanged() {
	e.structureChanged = true
}

// LayoutInitial lays out the window for itemCount items. On the first pass the
// item at index 0 is centered and the window is filled to the right edge.
// Later passes keep the left edge of the first attached item and only rebuild
// when the item count changed or MarkStructureChanged was called.
func (e *Engine[E]) LayoutInitial(itemCount int, viewportWidth int) {
	if itemCount <= 0 {
		e.recycleAll()
		e.itemCount = 0
		e.structureChanged = false
		return
	}
	if !e.window.Empty() && itemCount == e.itemCount && !e.structureChanged {
		return
	}

	first, left := 0, 0
	if !e.window.Empty() && e.window.First < itemCount {
		first, left = e.window.First, e.window.Slots[0].Extent.Left
	} else {
		width, _ := e.adapter.Measure(0)
		left = (viewportWidth - width) / 2
	}

	e.recycleAll()
	e.itemCount = itemCount
	e.structureChanged = false

	w := Window[E]{First: first}
	for i := first; i < itemCount && left < viewportWidth; i++ {
		element, width, ok := e.obtain(i, w.Len())
		if !ok {
			break
		}
		w = w.Append(Slot[E]{Index: i, Extent: Extent{Left: left, Right: left + width}, Element: element})
		left += width
	}
	e.window = w
}

// ScrollBy scrolls the window by delta and returns the amount actually
// scrolled. Positive deltas advance toward the end of the collection, moving
// the items to the left.
//
// The step runs clamp, fill, prune and shift in that order. The fill uses the
// raw delta; the clamp is checked again once the fill is done.
func (e *Engine[E]) ScrollBy(delta int, viewportWidth int) int {
	if e.window.Empty() {
		return 0
	}

	clamped := Clamp(delta, e.window, e.itemCount, viewportWidth)

	if delta > 0 {
		e.fillTrailing(delta, viewportWidth)
	} else {
		e.fillLeading(delta)
	}
	// The fill may have attached the boundary item the first clamp could not
	// see yet.
	clamped = Clamp(clamped, e.window, e.itemCount, viewportWidth)

	_, height := e.container.ViewportSize()
	e.prune(Viewport{Width: viewportWidth, Height: height}, clamped)

	if clamped != 0 {
		e.window = e.window.Shift(-clamped)
	}
	return clamped
}

// fillTrailing attaches items after the last attached one until the gap the
// scroll opens on the right is covered.
func (e *Engine[E]) fillTrailing(delta int, viewportWidth int) {
	if e.window.Empty() || delta <= 0 {
		return
	}
	last := e.window.Last()
	offset := last.Extent.Right
	hanging := viewportWidth + delta
	for i := last.Index + 1; i < e.itemCount && offset < hanging; i++ {
		element, width, ok := e.obtain(i, e.window.Len())
		if !ok {
			break
		}
		e.window = e.window.Append(Slot[E]{Index: i, Extent: Extent{Left: offset, Right: offset + width}, Element: element})
		offset += width
	}
}

// fillLeading attaches items before the first attached one until the gap the
// scroll opens on the left is covered. delta is negative.
func (e *Engine[E]) fillLeading(delta int) {
	if e.window.Empty() || delta >= 0 {
		return
	}
	first := e.window.Slots[0]
	offset := first.Extent.Left
	for i := first.Index - 1; i >= 0 && offset > delta; i-- {
		element, width, ok := e.obtain(i, 0)
		if !ok {
			break
		}
		e.window = e.window.Prepend(Slot[E]{Index: i, Extent: Extent{Left: offset - width, Right: offset}, Element: element})
		offset -= width
	}
}

// prune detaches every item outside the visible run. Visibility is judged at
// the position the items take once the pending shift by delta is applied.
func (e *Engine[E]) prune(viewport Viewport, delta int) {
	kept, dropped := e.window.PruneFunc(func(slot Slot[E]) bool {
		return e.container.HasFocus(slot.Element) || viewport.Contains(slot.Extent.Shift(-delta))
	})
	for _, slot := range dropped {
		e.container.Detach(slot.Element)
		e.pool.Recycle(slot.Element)
	}
	e.window = kept
}

// obtain measures the item at index, binds an element for it and attaches
// the element at position. Indices outside the collection are ignored.
func (e *Engine[E]) obtain(index, position int) (E, int, bool) {
	if index < 0 || index >= e.itemCount {
		var zero E
		return zero, 0, false
	}
	width, _ := e.adapter.Measure(index)
	element := e.pool.Obtain(index)
	e.container.Attach(element, position)
	return element, width, true
}

func (e *Engine[E]) recycleAll() {
	for i := e.window.Len() - 1; i >= 0; i-- {
		element := e.window.Slots[i].Element
		e.container.Detach(element)
		e.pool.Recycle(element)
	}
	e.window = Window[E]{}
}
