package mediator

import "github.com/korok/strip/event"

// Axis is the direction a surface scrolls in.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Scroll is a scroll step a surface has applied.
type Scroll struct {
	DX, DY int
}

// Along returns the component of the step along axis.
func (s Scroll) Along(axis Axis) int {
	if axis == Vertical {
		return s.DY
	}
	return s.DX
}

// Surface is an independently scrolling view the mediator keeps in step with
// another one.
type Surface interface {
	// Axis returns the direction the surface scrolls in.
	Axis() Axis
	// FirstExtent returns the size, along the surface's axis, of the first
	// attached item. It reports false if nothing is attached.
	FirstExtent() (int, bool)
	// SmoothScrollBy starts an animated scroll by delta along the surface's
	// axis, replacing any animation in flight.
	SmoothScrollBy(delta int)

	// OnScrolled registers fn to receive every applied scroll step.
	OnScrolled(fn func(Scroll)) event.Token
	// RemoveScrolled unregisters a callback added with OnScrolled.
	RemoveScrolled(token event.Token)
	// OnTouchDown registers fn to be called when a gesture starts on the
	// surface.
	OnTouchDown(fn func()) event.Token
	// RemoveTouchDown unregisters a callback added with OnTouchDown.
	RemoveTouchDown(token event.Token)
}
