package window

// DefaultPoolCapacity is the number of unbound elements a pool keeps before it
// starts discarding recycled ones.
const DefaultPoolCapacity = 5

// PoolStats counts the elements a pool has handed out and taken back.
type PoolStats struct {
	Created   int
	Pooled    int
	Destroyed int
}

// Pool caches unbound elements for reuse. It is owned by a single engine and
// is not safe for concurrent use.
type Pool[E any] struct {
	factory  Factory[E]
	capacity int
	free     []E

	created   int
	destroyed int
}

// NewPool returns a pool which creates elements with factory and keeps at most
// capacity unbound elements around.
func NewPool[E any](factory Factory[E], capacity int) *Pool[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[E]{
		factory:  factory,
		capacity: capacity,
	}
}

// Obtain returns an element bound to index, reusing the most recently
// recycled one if available.
func (p *Pool[E]) Obtain(index int) E {
	var element E
	if n := len(p.free); n > 0 {
		element = p.free[n-1]
		var zero E
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		element = p.factory.Create()
		p.created++
	}
	p.factory.Bind(element, index)
	return element
}

// Recycle unbinds element and returns it to the pool. When the pool is full
// the element is dropped instead.
func (p *Pool[E]) Recycle(element E) {
	if unbinder, ok := p.factory.(Unbinder[E]); ok {
		unbinder.Unbind(element)
	}
	if len(p.free) >= p.capacity {
		p.destroyed++
		return
	}
	p.free = append(p.free, element)
}

// Len returns the number of pooled elements.
func (p *Pool[E]) Len() int {
	return len(p.free)
}

// Stats returns the pool's counters.
func (p *Pool[E]) Stats() PoolStats {
	return PoolStats{
		Created:   p.created,
		Pooled:    len(p.free),
		Destroyed: p.destroyed,
	}
}
