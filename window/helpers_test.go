package window

import (
	"slices"
	"time"
)

// item is the element type used by the tests.
type item struct {
	id    int
	index int
}

type testAdapter struct {
	count   int
	widths  map[int]int
	width   int
	nextID  int
	unbound int
}

func newTestAdapter(count, width int) *testAdapter {
	return &testAdapter{count: count, width: width, widths: make(map[int]int)}
}

func (a *testAdapter) Create() *item {
	a.nextID++
	return &item{id: a.nextID, index: -1}
}

func (a *testAdapter) Bind(element *item, index int) {
	element.index = index
}

func (a *testAdapter) Unbind(element *item) {
	element.index = -1
	a.unbound++
}

func (a *testAdapter) ItemCount() int {
	return a.count
}

func (a *testAdapter) Measure(index int) (int, int) {
	if w, ok := a.widths[index]; ok {
		return w, 10
	}
	return a.width, 10
}

type testContainer struct {
	width, height int
	attached      []*item
	focused       *item
}

func newTestContainer(width int) *testContainer {
	return &testContainer{width: width, height: 10}
}

func (c *testContainer) Attach(element *item, position int) {
	c.attached = slices.Insert(c.attached, position, element)
}

func (c *testContainer) Detach(element *item) {
	if i := slices.Index(c.attached, element); i >= 0 {
		c.attached = slices.Delete(c.attached, i, i+1)
	}
}

func (c *testContainer) ViewportSize() (int, int) {
	return c.width, c.height
}

func (c *testContainer) HasFocus(element *item) bool {
	return c.focused != nil && element == c.focused
}

// indices returns the item indices in attachment order.
func (c *testContainer) indices() []int {
	out := make([]int, len(c.attached))
	for i, element := range c.attached {
		out[i] = element.index
	}
	return out
}

type scrollCall struct {
	dx, dy       int
	duration     time.Duration
	interpolator Interpolator
}

type testScroller struct {
	calls []scrollCall
}

func (s *testScroller) AnimateScrollBy(dx, dy int, duration time.Duration, interpolator Interpolator) {
	s.calls = append(s.calls, scrollCall{dx: dx, dy: dy, duration: duration, interpolator: interpolator})
}

func (s *testScroller) last() scrollCall {
	return s.calls[len(s.calls)-1]
}

func newTestEngine(count, width, viewport int, opts ...Option) (*Engine[*item], *testAdapter, *testContainer) {
	adapter := newTestAdapter(count, width)
	container := newTestContainer(viewport)
	engine := NewEngine[*item](adapter, container, opts...)
	return engine, adapter, container
}

func windowIndices(w Window[*item]) []int {
	out := make([]int, len(w.Slots))
	for i, slot := range w.Slots {
		out[i] = slot.Index
	}
	return out
}
