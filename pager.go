package strip

import (
	"time"

	"github.com/gdamore/tcell/v3"

	"github.com/korok/strip/event"
	"github.com/korok/strip/keybind"
	"github.com/korok/strip/mediator"
	"github.com/korok/strip/window"
)

// PagerSource supplies the pages of a [Pager].
type PagerSource interface {
	// PageCount returns the number of pages.
	PageCount() int
	// Page returns the primitive presenting the page at index.
	Page(index int) Primitive
}

// PagerKeyMap holds the key bindings of a [Pager].
type PagerKeyMap struct {
	Prev  keybind.Keybind
	Next  keybind.Keybind
	First keybind.Keybind
	Last  keybind.Keybind
}

// DefaultPagerKeyMap returns the default pager bindings.
func DefaultPagerKeyMap() PagerKeyMap {
	return PagerKeyMap{
		Prev:  keybind.NewKeybind(keybind.WithKeys("up", "k", "pgup"), keybind.WithHelp("↑/k", "prev page")),
		Next:  keybind.NewKeybind(keybind.WithKeys("down", "j", "pgdn"), keybind.WithHelp("↓/j", "next page")),
		First: keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g", "first")),
		Last:  keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G", "last")),
	}
}

// ShortHelp returns the bindings shown in single-line help.
func (k PagerKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Prev, k.Next}
}

// Pager displays one page per viewport height and scrolls vertically between
// them. Released drags snap to the nearest page boundary.
//
// Pager implements [mediator.Surface].
type Pager struct {
	*Box

	Keys PagerKeyMap

	source PagerSource
	scroll pagerState

	velocity window.Velocity
	anim     animator

	scrolled event.Hub[mediator.Scroll]
	touched  event.Hub[struct{}]

	current int
	changed func(index int)

	// Drag state.
	dragging bool
	dragY    int
	moved    bool
}

type pagerState struct {
	// Index of the top page in the viewport.
	top int
	// Line offset into the top page, in [0, height).
	offset int
	// Page height the state was computed for.
	height int
}

// NewPager returns a new, empty pager.
func NewPager() *Pager {
	return &Pager{
		Box:      NewBox(),
		Keys:     DefaultPagerKeyMap(),
		velocity: window.Velocity{Density: window.DefaultDensity},
	}
}

// SetSource sets the page source and scrolls back to the first page.
func (p *Pager) SetSource(source PagerSource) *Pager {
	if offset := p.Offset(); offset != 0 {
		p.scrolled.Emit(mediator.Scroll{DY: -offset})
	}
	p.source = source
	p.scroll = pagerState{}
	p.current = 0
	p.anim.stop()
	p.MarkDirty()
	return p
}

// SetDensity sets the dots per inch used to derive smooth scroll durations.
func (p *Pager) SetDensity(density float64) *Pager {
	p.velocity.Density = density
	return p
}

// SetChangedFunc sets a handler called when the current page changes.
func (p *Pager) SetChangedFunc(handler func(index int)) *Pager {
	p.changed = handler
	return p
}

// Current returns the index of the page covering most of the viewport.
func (p *Pager) Current() int {
	return p.current
}

// Offset returns the scroll position in lines from the top of the first page.
func (p *Pager) Offset() int {
	return p.scroll.top*p.scroll.height + p.scroll.offset
}

func (p *Pager) pageCount() int {
	if p.source == nil {
		return 0
	}
	return p.source.PageCount()
}

// pageHeight returns the current page height and normalizes the scroll state
// if the height or the page count changed since the last call. The top page
// is kept and moves to the top edge. The resulting jump is reported like any
// other scroll so listeners tracking Offset stay in step.
func (p *Pager) pageHeight() int {
	_, _, _, height := p.GetInnerRect()
	before := p.Offset()
	if height != p.scroll.height {
		p.scroll.offset = 0
		p.scroll.height = height
	}
	if count := p.pageCount(); p.scroll.top >= count {
		p.scroll.top = max(count-1, 0)
		p.scroll.offset = 0
	}
	if moved := p.Offset() - before; moved != 0 {
		p.MarkDirty()
		p.scrolled.Emit(mediator.Scroll{DY: moved})
		p.updateCurrent(height)
	}
	return height
}

// ScrollDelta applies a raw drag step. Positive dy moves toward later pages.
// It returns the distance actually scrolled.
func (p *Pager) ScrollDelta(dx, dy int) int {
	return p.scrollBy(dy)
}

func (p *Pager) scrollBy(dy int) int {
	height := p.pageHeight()
	count := p.pageCount()
	if height <= 0 || count == 0 || dy == 0 {
		return 0
	}
	position := p.Offset()
	target := min(max(position+dy, 0), (count-1)*height)
	applied := target - position
	if applied == 0 {
		return 0
	}
	p.scroll.top, p.scroll.offset = target/height, target%height
	p.MarkDirty()
	p.scrolled.Emit(mediator.Scroll{DY: applied})
	p.updateCurrent(height)
	return applied
}

func (p *Pager) updateCurrent(height int) {
	current := p.scroll.top
	if p.scroll.offset*2 >= height {
		current++
	}
	if current == p.current {
		return
	}
	p.current = current
	if p.changed != nil {
		p.changed(current)
	}
}

// TouchDown starts a gesture. Running animations stop.
func (p *Pager) TouchDown() {
	p.anim.stop()
	p.touched.Emit(struct{}{})
}

// TouchUp ends a drag and snaps to the nearest page.
func (p *Pager) TouchUp() {
	height := p.pageHeight()
	if height <= 0 || p.scroll.offset == 0 {
		return
	}
	p.ShowPage(p.current)
}

// ShowPage smoothly scrolls to the page at index.
func (p *Pager) ShowPage(index int) *Pager {
	height := p.pageHeight()
	if height <= 0 || index < 0 || index >= p.pageCount() {
		return p
	}
	delta := index*height - p.Offset()
	p.AnimateScrollBy(0, delta, p.velocity.DecelerationTime(delta), window.Decelerate)
	return p
}

// AnimateScrollBy starts an animated scroll by dy, replacing the running one.
func (p *Pager) AnimateScrollBy(dx, dy int, duration time.Duration, interpolator window.Interpolator) {
	p.anim.start(dy, duration, interpolator)
}

// Animating reports whether a scroll animation is running.
func (p *Pager) Animating() bool {
	return p.anim.running()
}

// Tick advances the running scroll animation.
func (p *Pager) Tick(now time.Time) bool {
	return p.anim.tick(now, p.scrollBy, nil)
}

// Axis implements [mediator.Surface].
func (p *Pager) Axis() mediator.Axis {
	return mediator.Vertical
}

// FirstExtent implements [mediator.Surface].
func (p *Pager) FirstExtent() (int, bool) {
	height := p.pageHeight()
	if height <= 0 || p.pageCount() == 0 {
		return 0, false
	}
	return height, true
}

// SmoothScrollBy implements [mediator.Surface].
func (p *Pager) SmoothScrollBy(delta int) {
	p.AnimateScrollBy(0, delta, p.velocity.DecelerationTime(delta), window.Decelerate)
}

// OnScrolled implements [mediator.Surface].
func (p *Pager) OnScrolled(fn func(mediator.Scroll)) event.Token {
	return p.scrolled.Add(fn)
}

// RemoveScrolled implements [mediator.Surface].
func (p *Pager) RemoveScrolled(token event.Token) {
	p.scrolled.Remove(token)
}

// OnTouchDown implements [mediator.Surface].
func (p *Pager) OnTouchDown(fn func()) event.Token {
	return p.touched.Add(func(struct{}) { fn() })
}

// RemoveTouchDown implements [mediator.Surface].
func (p *Pager) RemoveTouchDown(token event.Token) {
	p.touched.Remove(token)
}

// Draw draws this primitive onto the screen.
func (p *Pager) Draw(screen tcell.Screen) {
	p.DrawForSubclass(screen, p)

	x, y, width, height := p.GetInnerRect()
	height = min(height, p.pageHeight())
	if width <= 0 || height <= 0 {
		return
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	count := p.pageCount()
	row := -p.scroll.offset
	for i := p.scroll.top; i < count && row < height; i++ {
		page := p.source.Page(i)
		if page != nil {
			page.SetRect(x, y+row, width, height)
			page.Draw(clipped)
		}
		row += height
	}
}

// InputHandler returns the handler for this primitive.
func (p *Pager) InputHandler(event *tcell.EventKey) Command {
	count := p.pageCount()
	if count == 0 {
		return nil
	}
	switch {
	case keybind.Matches(event, p.Keys.Prev):
		p.TouchDown()
		p.ShowPage(max(p.current-1, 0))
	case keybind.Matches(event, p.Keys.Next):
		p.TouchDown()
		p.ShowPage(min(p.current+1, count-1))
	case keybind.Matches(event, p.Keys.First):
		p.TouchDown()
		p.ShowPage(0)
	case keybind.Matches(event, p.Keys.Last):
		p.TouchDown()
		p.ShowPage(count - 1)
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler returns the mouse handler for this primitive.
func (p *Pager) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !p.dragging && !p.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		p.TouchDown()
		p.dragging, p.dragY, p.moved = true, y, false
		return p, Batch(SetFocusCommand{Target: p}, RedrawCommand{})
	case MouseMove:
		if !p.dragging {
			return nil, nil
		}
		if dy := p.dragY - y; dy != 0 {
			p.dragY = y
			p.moved = true
			p.ScrollDelta(0, dy)
		}
		return p, RedrawCommand{}
	case MouseLeftUp:
		if !p.dragging {
			return nil, nil
		}
		p.dragging = false
		if p.moved {
			p.TouchUp()
		}
		return nil, RedrawCommand{}
	case MouseScrollUp:
		p.TouchDown()
		p.ShowPage(max(p.current-1, 0))
		return nil, RedrawCommand{}
	case MouseScrollDown:
		p.TouchDown()
		p.ShowPage(min(p.current+1, p.pageCount()-1))
		return nil, RedrawCommand{}
	}
	return nil, nil
}

var (
	_ Primitive        = &Pager{}
	_ Ticker           = &Pager{}
	_ mediator.Surface = &Pager{}
	_ window.Scroller  = &Pager{}
)
