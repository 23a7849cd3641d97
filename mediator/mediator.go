// Package mediator keeps two independently scrolling surfaces in step by
// their fractional scroll position.
//
// The position of a surface is its accumulated scroll offset divided by the
// size of its first attached item. When the surface the user is touching
// scrolls, the other surface is smoothly scrolled to the same position in its
// own item units.
package mediator

import (
	"math"

	"github.com/korok/strip/event"
)

type state int

const (
	idle state = iota
	synced
	unsynced
)

// side is one of the two mediated surfaces together with its bookkeeping.
type side struct {
	source  Source
	surface Surface

	// Offset accumulated along the surface's axis since Sync.
	offset int

	scrolled event.Token
	touched  event.Token
}

// Mediator synchronizes two surfaces. It never touches their layout directly;
// corrections go through Surface.SmoothScrollBy.
type Mediator struct {
	a, b    *side
	arbiter Arbiter
	state   state
}

// New returns a mediator for a and b. Call Sync to start it.
func New(a, b Surface) *Mediator {
	return &Mediator{
		a: &side{source: SurfaceA, surface: a},
		b: &side{source: SurfaceB, surface: b},
	}
}

// Sync returns a started mediator for a and b.
func Sync(a, b Surface) *Mediator {
	m := New(a, b)
	m.Sync()
	return m
}

// Sync registers the mediator's listeners on both surfaces. It does nothing
// if the mediator is already running or was stopped with Unsync.
func (m *Mediator) Sync() {
	if m.state != idle {
		return
	}
	m.state = synced
	m.listen(m.a, m.b)
	m.listen(m.b, m.a)
}

// Unsync removes every listener. The mediator cannot be restarted.
func (m *Mediator) Unsync() {
	if m.state != synced {
		m.state = unsynced
		return
	}
	m.state = unsynced
	for _, s := range []*side{m.a, m.b} {
		s.surface.RemoveScrolled(s.scrolled)
		s.surface.RemoveTouchDown(s.touched)
	}
}

// Synced reports whether the mediator is running.
func (m *Mediator) Synced() bool {
	return m.state == synced
}

// Active returns the surface that last received a touch.
func (m *Mediator) Active() Source {
	return m.arbiter.Active()
}

// Offsets returns the offsets accumulated on both surfaces since Sync.
func (m *Mediator) Offsets() (a, b int) {
	return m.a.offset, m.b.offset
}

func (m *Mediator) listen(from, to *side) {
	from.touched = from.surface.OnTouchDown(func() {
		m.arbiter.Touch(from.source)
	})
	from.scrolled = from.surface.OnScrolled(func(s Scroll) {
		m.onScrolled(from, to, s)
	})
}

// onScrolled records the step and, if from is driven by the user, moves to
// to the matching position. Steps on the passive surface are the result of
// our own corrections and are only recorded.
func (m *Mediator) onScrolled(from, to *side, s Scroll) {
	if m.state != synced {
		return
	}
	from.offset += s.Along(from.surface.Axis())
	if !m.arbiter.From(from.source) {
		return
	}

	fromExtent, ok := from.surface.FirstExtent()
	if !ok || fromExtent == 0 {
		return
	}
	toExtent, ok := to.surface.FirstExtent()
	if !ok {
		return
	}

	position := float64(from.offset) / float64(fromExtent)
	delta := int(math.Round(position*float64(toExtent))) - to.offset
	if delta != 0 {
		to.surface.SmoothScrollBy(delta)
	}
}
