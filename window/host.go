package window

import "time"

// Factory creates and binds recyclable elements.
type Factory[E any] interface {
	// Create constructs a new, unbound element.
	Create() E
	// Bind prepares element to present the item at index.
	Bind(element E, index int)
}

// Unbinder is implemented by factories which need to release resources when an
// element goes back into the pool.
type Unbinder[E any] interface {
	Unbind(element E)
}

// Adapter supplies the items laid out by an [Engine].
type Adapter[E any] interface {
	Factory[E]

	// ItemCount returns the number of items in the collection.
	ItemCount() int
	// Measure returns the size of the item at index. It must be deterministic
	// for a given index and data state.
	Measure(index int) (width, height int)
}

// Container is the host surface elements are attached to.
type Container[E any] interface {
	// Attach inserts element at position in the attached sequence.
	Attach(element E, position int)
	// Detach removes element from the attached sequence.
	Detach(element E)
	// ViewportSize returns the current size of the viewport.
	ViewportSize() (width, height int)
	// HasFocus reports whether element holds input focus. Focused elements are
	// never pruned.
	HasFocus(element E) bool
}

// Scroller runs animated scrolls on behalf of a [Controller]. A new request
// replaces any animation still in flight.
type Scroller interface {
	AnimateScrollBy(dx, dy int, duration time.Duration, interpolator Interpolator)
}
