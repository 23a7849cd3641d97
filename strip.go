package strip

import (
	"time"

	"github.com/gdamore/tcell/v3"

	"github.com/korok/strip/event"
	"github.com/korok/strip/keybind"
	"github.com/korok/strip/mediator"
	"github.com/korok/strip/window"
)

// StripAdapter supplies the items of a [Strip]. Items are created once and
// rebound to different indices as they scroll in and out of view.
type StripAdapter interface {
	// ItemCount returns the number of items.
	ItemCount() int
	// ItemWidth returns the width of the item at index when drawn with the
	// given height.
	ItemWidth(index, height int) int
	// CreateItem returns a new, unbound item.
	CreateItem() Primitive
	// BindItem makes item present the data at index.
	BindItem(item Primitive, index int)
}

// Centerable is implemented by strip items which render differently while
// they are the centered item.
type Centerable interface {
	SetCentered(centered bool)
}

// StripKeyMap holds the key bindings of a [Strip].
type StripKeyMap struct {
	Prev  keybind.Keybind
	Next  keybind.Keybind
	First keybind.Keybind
	Last  keybind.Keybind
}

// DefaultStripKeyMap returns the default strip bindings.
func DefaultStripKeyMap() StripKeyMap {
	return StripKeyMap{
		Prev:  keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "prev")),
		Next:  keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "next")),
		First: keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g", "first")),
		Last:  keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G", "last")),
	}
}

// ShortHelp returns the bindings shown in single-line help.
func (k StripKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Prev, k.Next, k.First, k.Last}
}

// Strip is a horizontally scrolling, center-locking carousel. Only the items
// intersecting the strip are attached; the others are recycled. Scrolling
// comes to rest with an item centered, and tapping an item scrolls it to the
// center. Tapping the centered item advances to the next one.
//
// Strip implements [mediator.Surface] so it can be kept in step with a
// [Pager].
type Strip struct {
	*Box

	Keys StripKeyMap

	adapter    StripAdapter
	engine     *window.Engine[Primitive]
	controller *window.Controller[Primitive]

	// Options passed on to the controller.
	density   float64
	tolerance int
	next      func(index int) int

	poolCapacity int

	anim animator

	scrolled event.Hub[mediator.Scroll]
	touched  event.Hub[struct{}]

	centered int
	changed  func(index int)

	// Drag state.
	dragging bool
	dragX    int
	moved    bool

	// Viewport size of the last layout.
	lastWidth, lastHeight int
}

// NewStrip returns a new, empty strip.
func NewStrip() *Strip {
	return &Strip{
		Box:          NewBox(),
		Keys:         DefaultStripKeyMap(),
		density:      window.DefaultDensity,
		tolerance:    window.DefaultSnapTolerance,
		poolCapacity: window.DefaultPoolCapacity,
		centered:     -1,
	}
}

// SetAdapter sets the item source and lays the strip out from scratch.
func (s *Strip) SetAdapter(adapter StripAdapter) *Strip {
	if s.engine != nil {
		s.engine.LayoutInitial(0, 0)
	}
	s.adapter = adapter
	s.anim.stop()
	s.centered = -1
	s.lastWidth, s.lastHeight = 0, 0
	if adapter == nil {
		s.engine, s.controller = nil, nil
		return s
	}
	s.engine = window.NewEngine[Primitive](stripBinding{s}, stripBinding{s}, window.WithPoolCapacity(s.poolCapacity))
	s.buildController()
	s.MarkDirty()
	return s
}

// SetPoolCapacity sets how many unbound items are kept for reuse. It takes
// effect with the next SetAdapter.
func (s *Strip) SetPoolCapacity(capacity int) *Strip {
	s.poolCapacity = capacity
	return s
}

// SetDensity sets the dots per inch used to derive smooth scroll durations.
func (s *Strip) SetDensity(density float64) *Strip {
	s.density = density
	s.buildController()
	return s
}

// SetSnapTolerance sets the distance from the midpoint within which an item
// counts as centered.
func (s *Strip) SetSnapTolerance(tolerance int) *Strip {
	s.tolerance = tolerance
	s.buildController()
	return s
}

// SetNextFunc sets the function choosing the item to center when the centered
// item is tapped. By default the following item is centered.
func (s *Strip) SetNextFunc(next func(index int) int) *Strip {
	s.next = next
	s.buildController()
	return s
}

// SetChangedFunc sets a handler called when the centered item changes.
func (s *Strip) SetChangedFunc(handler func(index int)) *Strip {
	s.changed = handler
	return s
}

func (s *Strip) buildController() {
	if s.engine == nil {
		return
	}
	opts := []window.ControllerOption{
		window.WithDensity(s.density),
		window.WithSnapTolerance(s.tolerance),
	}
	if s.next != nil {
		opts = append(opts, window.WithNextTarget(s.next))
	}
	s.controller = window.NewController(s.engine, s, opts...)
}

// NotifyDataChanged relays the strip out with the adapter's current data.
func (s *Strip) NotifyDataChanged() *Strip {
	if s.engine != nil {
		s.engine.MarkStructureChanged()
		s.layout()
		s.MarkDirty()
	}
	return s
}

// Centered returns the index of the item closest to the center, or -1.
func (s *Strip) Centered() int {
	return s.centered
}

// Window returns the laid out items.
func (s *Strip) Window() window.Window[Primitive] {
	if s.engine == nil {
		return window.Window[Primitive]{}
	}
	return s.engine.Window()
}

// CenterOn smoothly scrolls the item at index to the center.
func (s *Strip) CenterOn(index int) *Strip {
	if s.layout() {
		s.controller.RequestCenter(index)
	}
	return s
}

// ScrollDelta applies a raw drag step. Positive dx moves toward the end of the
// collection. It returns the distance actually scrolled.
func (s *Strip) ScrollDelta(dx, dy int) int {
	return s.scrollBy(dx)
}

// TouchDown starts a gesture. Running animations stop.
func (s *Strip) TouchDown() {
	s.anim.stop()
	if s.controller != nil {
		s.controller.Stop()
	}
	s.touched.Emit(struct{}{})
}

// TouchUp ends a drag and lets the closest item settle in the center.
func (s *Strip) TouchUp() {
	if s.layout() {
		s.controller.Settle()
	}
}

// Tap handles a single tap at (x, y) relative to the strip's inner rect.
func (s *Strip) Tap(x, y int) {
	if s.layout() {
		s.controller.Tap(x, y)
	}
}

// AnimateScrollBy starts an animated scroll by dx, replacing the running one.
func (s *Strip) AnimateScrollBy(dx, dy int, duration time.Duration, interpolator window.Interpolator) {
	s.anim.start(dx, duration, interpolator)
}

// Animating reports whether a scroll animation is running.
func (s *Strip) Animating() bool {
	return s.anim.running()
}

// Tick advances the running scroll animation.
func (s *Strip) Tick(now time.Time) bool {
	if s.engine == nil {
		return false
	}
	changed := s.anim.tick(now, s.scrollBy, s.controller.OnAnimationStep)
	if changed && !s.anim.running() {
		s.controller.Stop()
	}
	return changed
}

// Axis implements [mediator.Surface].
func (s *Strip) Axis() mediator.Axis {
	return mediator.Horizontal
}

// FirstExtent implements [mediator.Surface].
func (s *Strip) FirstExtent() (int, bool) {
	w := s.Window()
	if w.Empty() {
		return 0, false
	}
	return w.Slots[0].Extent.Width(), true
}

// SmoothScrollBy implements [mediator.Surface].
func (s *Strip) SmoothScrollBy(delta int) {
	velocity := window.Velocity{Density: s.density}
	s.AnimateScrollBy(delta, 0, velocity.DecelerationTime(delta), window.Decelerate)
}

// OnScrolled implements [mediator.Surface].
func (s *Strip) OnScrolled(fn func(mediator.Scroll)) event.Token {
	return s.scrolled.Add(fn)
}

// RemoveScrolled implements [mediator.Surface].
func (s *Strip) RemoveScrolled(token event.Token) {
	s.scrolled.Remove(token)
}

// OnTouchDown implements [mediator.Surface].
func (s *Strip) OnTouchDown(fn func()) event.Token {
	return s.touched.Add(func(struct{}) { fn() })
}

// RemoveTouchDown implements [mediator.Surface].
func (s *Strip) RemoveTouchDown(token event.Token) {
	s.touched.Remove(token)
}

// layout makes sure the window matches the current size and data. It reports
// false if there is nothing to lay out.
func (s *Strip) layout() bool {
	if s.engine == nil {
		return false
	}
	_, _, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return false
	}
	if width != s.lastWidth || height != s.lastHeight {
		s.lastWidth, s.lastHeight = width, height
		s.engine.MarkStructureChanged()
	}
	s.engine.LayoutInitial(s.adapter.ItemCount(), width)
	s.updateCentered()
	return true
}

func (s *Strip) scrollBy(dx int) int {
	if !s.layout() {
		return 0
	}
	applied := s.engine.ScrollBy(dx, s.lastWidth)
	if applied != 0 {
		s.MarkDirty()
		s.scrolled.Emit(mediator.Scroll{DX: applied})
	}
	s.updateCentered()
	return applied
}

func (s *Strip) updateCentered() {
	index := -1
	if s.controller != nil {
		if i, ok := s.controller.Centered(); ok {
			index = i
		}
	}
	if index == s.centered {
		return
	}
	s.centered = index
	if s.changed != nil && index >= 0 {
		s.changed(index)
	}
}

// step centers the item delta positions away from the centered one.
func (s *Strip) step(delta int) {
	if !s.layout() || s.centered < 0 {
		return
	}
	target := min(max(s.centered+delta, 0), s.engine.ItemCount()-1)
	s.controller.RequestCenter(target)
}

// Draw draws this primitive onto the screen.
func (s *Strip) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if !s.layout() {
		return
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, slot := range s.engine.Window().Slots {
		item := slot.Element
		if c, ok := item.(Centerable); ok {
			c.SetCentered(slot.Index == s.centered)
		}
		item.SetRect(x+slot.Extent.Left, y, slot.Extent.Width(), height)
		item.Draw(clipped)
	}
}

// InputHandler returns the handler for this primitive.
func (s *Strip) InputHandler(event *tcell.EventKey) Command {
	if s.engine == nil {
		return nil
	}
	switch {
	case keybind.Matches(event, s.Keys.Prev):
		s.TouchDown()
		s.step(-1)
	case keybind.Matches(event, s.Keys.Next):
		s.TouchDown()
		s.step(1)
	case keybind.Matches(event, s.Keys.First):
		s.TouchDown()
		s.CenterOn(0)
	case keybind.Matches(event, s.Keys.Last):
		s.TouchDown()
		s.CenterOn(s.engine.ItemCount() - 1)
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler returns the mouse handler for this primitive. A press starts a
// gesture and captures the mouse until it is released; horizontal movement in
// between drags the strip.
func (s *Strip) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !s.dragging && !s.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		s.TouchDown()
		s.dragging, s.dragX, s.moved = true, x, false
		return s, Batch(SetFocusCommand{Target: s}, RedrawCommand{})
	case MouseMove:
		if !s.dragging {
			return nil, nil
		}
		if dx := s.dragX - x; dx != 0 {
			s.dragX = x
			s.moved = true
			s.ScrollDelta(dx, 0)
		}
		return s, RedrawCommand{}
	case MouseLeftUp:
		if !s.dragging {
			return nil, nil
		}
		s.dragging = false
		if s.moved {
			s.TouchUp()
		}
		return nil, RedrawCommand{}
	case MouseLeftClick:
		innerX, innerY, _, _ := s.GetInnerRect()
		s.Tap(x-innerX, y-innerY)
		return nil, RedrawCommand{}
	case MouseScrollLeft, MouseScrollUp:
		s.TouchDown()
		s.step(-1)
		return nil, RedrawCommand{}
	case MouseScrollRight, MouseScrollDown:
		s.TouchDown()
		s.step(1)
		return nil, RedrawCommand{}
	}
	return nil, nil
}

// stripBinding connects a Strip to its layout engine.
type stripBinding struct {
	s *Strip
}

func (b stripBinding) ItemCount() int {
	return b.s.adapter.ItemCount()
}

func (b stripBinding) Measure(index int) (int, int) {
	height := b.s.lastHeight
	return b.s.adapter.ItemWidth(index, height), height
}

func (b stripBinding) Create() Primitive {
	return b.s.adapter.CreateItem()
}

func (b stripBinding) Bind(item Primitive, index int) {
	b.s.adapter.BindItem(item, index)
}

// Attach needs no bookkeeping as Draw walks the engine's window.
func (b stripBinding) Attach(item Primitive, position int) {
	b.s.MarkDirty()
}

// Detach clears the centered look so the item shows up plain when it is
// rebound to another index.
func (b stripBinding) Detach(item Primitive) {
	if c, ok := item.(Centerable); ok {
		c.SetCentered(false)
	}
	b.s.MarkDirty()
}

func (b stripBinding) ViewportSize() (int, int) {
	_, _, width, height := b.s.GetInnerRect()
	return width, height
}

func (b stripBinding) HasFocus(item Primitive) bool {
	return item.HasFocus()
}

var (
	_ Primitive        = &Strip{}
	_ Ticker           = &Strip{}
	_ mediator.Surface = &Strip{}
	_ window.Scroller  = &Strip{}
)
