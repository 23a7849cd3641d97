package window

const (
	// DefaultSnapTolerance is the distance from the viewport midpoint within
	// which an element counts as centered.
	DefaultSnapTolerance = 4

	// TargetSeekDistance is how far a seek scroll travels while the requested
	// item is not attached yet.
	TargetSeekDistance = 10000

	// targetSeekExtraRatio stretches seek scrolls so they do not end before
	// the next seek is issued.
	targetSeekExtraRatio = 1.2
)

// noTarget marks the absence of a pending seek.
const noTarget = -1

// ControllerOption configures a [Controller].
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	velocity  Velocity
	tolerance int
	next      func(index int) int
}

// WithDensity sets the output density in dots per inch used to derive scroll
// durations.
func WithDensity(density float64) ControllerOption {
	return func(o *controllerOptions) {
		o.velocity.Density = density
	}
}

// WithSnapTolerance sets the distance within which an element counts as
// centered.
func WithSnapTolerance(tolerance int) ControllerOption {
	return func(o *controllerOptions) {
		o.tolerance = tolerance
	}
}

// WithNextTarget sets the function picking the item to center when an already
// centered item is tapped. By default the following item is centered.
func WithNextTarget(next func(index int) int) ControllerOption {
	return func(o *controllerOptions) {
		o.next = next
	}
}

// Controller turns taps and programmatic requests into animated scrolls that
// center an item.
type Controller[E any] struct {
	engine   *Engine[E]
	scroller Scroller

	velocity  Velocity
	tolerance int
	next      func(index int) int

	// Item the running seek scroll is looking for, or noTarget.
	target int
}

// NewController returns a controller driving engine through scroller.
func NewController[E any](engine *Engine[E], scroller Scroller, opts ...ControllerOption) *Controller[E] {
	o := controllerOptions{
		velocity:  Velocity{Density: DefaultDensity},
		tolerance: DefaultSnapTolerance,
		next:      func(index int) int { return index + 1 },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Controller[E]{
		engine:    engine,
		scroller:  scroller,
		velocity:  o.velocity,
		tolerance: o.tolerance,
		next:      o.next,
		target:    noTarget,
	}
}

// Velocity returns the controller's velocity model.
func (c *Controller[E]) Velocity() Velocity {
	return c.velocity
}

// Target returns the item a running seek is looking for.
func (c *Controller[E]) Target() (int, bool) {
	return c.target, c.target != noTarget
}

// Direction returns -1 if reaching index requires scrolling backward and 1
// otherwise.
func (c *Controller[E]) Direction(index int) int {
	if index < c.engine.FirstVisible() {
		return -1
	}
	return 1
}

// RequestCenter starts an animated scroll that centers the item at index.
// Out of range indices are ignored. If the item is not attached yet, the
// controller scrolls toward it and finishes the job from OnAnimationStep once
// it shows up.
func (c *Controller[E]) RequestCenter(index int) {
	if index < 0 || index >= c.engine.ItemCount() {
		return
	}
	if slot, ok := c.engine.Window().Lookup(index); ok {
		c.target = noTarget
		c.center(slot)
		return
	}

	c.target = index
	distance := c.Direction(index) * TargetSeekDistance
	duration := c.velocity.ScrollTime(TargetSeekDistance)
	c.scroller.AnimateScrollBy(
		int(float64(distance)*targetSeekExtraRatio), 0,
		scaleDuration(duration, targetSeekExtraRatio),
		Linear,
	)
}

// OnAnimationStep must be called by the host after every applied animation
// step. Once a sought item is attached, the seek is replaced by a final scroll
// that centers it exactly.
func (c *Controller[E]) OnAnimationStep() {
	if c.target == noTarget {
		return
	}
	slot, ok := c.engine.Window().Lookup(c.target)
	if !ok {
		return
	}
	c.target = noTarget
	c.center(slot)
}

// Stop abandons a pending seek.
func (c *Controller[E]) Stop() {
	c.target = noTarget
}

// Tap handles a single tap at (x, y) in viewport coordinates. Tapping an item
// centers it; tapping the item that is already centered centers the next
// target instead.
func (c *Controller[E]) Tap(x, y int) {
	viewport := c.engine.Viewport()
	if y < 0 || y >= viewport.Height {
		return
	}
	window := c.engine.Window()
	tapped, ok := window.At(x)
	if !ok {
		return
	}
	snap, _ := window.Closest(viewport.Mid())
	if snap.Index == tapped.Index && abs(viewport.CenterOffset(snap.Extent)) < c.tolerance {
		c.RequestCenter(c.next(tapped.Index))
		return
	}
	c.RequestCenter(tapped.Index)
}

// Settle centers the item closest to the viewport midpoint. Hosts call it
// when a drag ends.
func (c *Controller[E]) Settle() {
	viewport := c.engine.Viewport()
	snap, ok := c.engine.Window().Closest(viewport.Mid())
	if !ok || viewport.CenterOffset(snap.Extent) == 0 {
		return
	}
	c.RequestCenter(snap.Index)
}

// Centered returns the item closest to the viewport midpoint.
func (c *Controller[E]) Centered() (int, bool) {
	snap, ok := c.engine.Window().Closest(c.engine.Viewport().Mid())
	return snap.Index, ok
}

// center issues the decelerating scroll which moves slot to the midpoint. The
// request is issued even if slot is centered already, so it replaces a seek
// still in flight.
func (c *Controller[E]) center(slot Slot[E]) {
	dx := c.engine.Viewport().CenterOffset(slot.Extent)
	c.scroller.AnimateScrollBy(-dx, 0, c.velocity.DecelerationTime(dx), Decelerate)
}
