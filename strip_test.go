package strip

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korok/strip/mediator"
)

type testItem struct {
	*Box
	index    int
	centered bool
}

func (i *testItem) SetCentered(centered bool) {
	i.centered = centered
}

type testStripAdapter struct {
	count   int
	width   int
	created int
}

func (a *testStripAdapter) ItemCount() int { return a.count }

func (a *testStripAdapter) ItemWidth(index, height int) int { return a.width }

func (a *testStripAdapter) CreateItem() Primitive {
	a.created++
	return &testItem{Box: NewBox(), index: -1}
}

func (a *testStripAdapter) BindItem(item Primitive, index int) {
	item.(*testItem).index = index
}

// testClock is a manually advanced clock for animations.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

// run ticks t until it stops animating and returns the number of frames.
func (c *testClock) run(t Ticker, animating func() bool) int {
	frames := 0
	for ; animating() && frames < 10000; frames++ {
		c.now = c.now.Add(frameInterval)
		t.Tick(c.now)
	}
	return frames
}

func newTestStrip(count int) (*Strip, *testStripAdapter, *testClock) {
	adapter := &testStripAdapter{count: count, width: 10}
	clock := newTestClock()
	s := NewStrip().SetAdapter(adapter)
	s.anim.clock = clock.Now
	s.SetRect(0, 0, 30, 5)
	return s, adapter, clock
}

func centerOf(t *testing.T, s *Strip, index int) int {
	t.Helper()
	slot, ok := s.Window().Lookup(index)
	require.True(t, ok, "item %d is not attached", index)
	return slot.Extent.Center()
}

func TestStripLayout(t *testing.T) {
	t.Parallel()

	t.Run("centers the first item", func(t *testing.T) {
		t.Parallel()
		s, adapter, _ := newTestStrip(10)

		assert.Equal(t, 0, s.ScrollDelta(-5, 0))
		assert.Equal(t, 0, s.Centered())
		assert.Equal(t, 15, centerOf(t, s, 0))
		assert.Equal(t, 2, adapter.created)
		assert.Equal(t, 2, s.Window().Len())
	})

	t.Run("without adapter", func(t *testing.T) {
		t.Parallel()
		s := NewStrip()
		s.SetRect(0, 0, 30, 5)

		assert.Equal(t, 0, s.ScrollDelta(10, 0))
		assert.Equal(t, -1, s.Centered())
		assert.True(t, s.Window().Empty())
		_, ok := s.FirstExtent()
		assert.False(t, ok)
	})

	t.Run("data changes", func(t *testing.T) {
		t.Parallel()
		s, adapter, _ := newTestStrip(10)
		require.Equal(t, 10, s.ScrollDelta(10, 0))

		adapter.count = 0
		s.NotifyDataChanged()
		assert.True(t, s.Window().Empty())
		assert.Equal(t, 3, s.engine.Pool().Stats().Pooled)

		adapter.count = 3
		s.NotifyDataChanged()
		assert.Equal(t, 15, centerOf(t, s, 0))
	})

	t.Run("resizing keeps the position", func(t *testing.T) {
		t.Parallel()
		s, _, _ := newTestStrip(10)
		require.Equal(t, 10, s.ScrollDelta(10, 0))
		left := s.Window().Slots[0].Extent.Left

		s.SetRect(0, 0, 50, 5)
		s.ScrollDelta(0, 0)
		assert.Equal(t, left, s.Window().Slots[0].Extent.Left)
		assert.GreaterOrEqual(t, s.Window().Extent().Right, 50)
	})
}

func TestStripCentered(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStrip(10)
	var changes []int
	s.SetChangedFunc(func(index int) { changes = append(changes, index) })

	require.Equal(t, 5, s.ScrollDelta(5, 0))
	assert.Equal(t, 0, s.Centered(), "ties go to the leading item")
	require.Equal(t, 1, s.ScrollDelta(1, 0))
	assert.Equal(t, 1, s.Centered())
	assert.Equal(t, []int{0, 1}, changes)
}

func TestStripDetachClearsCentered(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStrip(10)
	s.ScrollDelta(0, 0)
	first := s.Window().Slots[0].Element.(*testItem)
	first.SetCentered(true)

	require.Equal(t, 30, s.ScrollDelta(30, 0))
	_, ok := s.Window().Lookup(0)
	require.False(t, ok)
	assert.False(t, first.centered)
}

func TestStripSettle(t *testing.T) {
	t.Parallel()

	s, _, clock := newTestStrip(10)
	s.TouchDown()
	require.Equal(t, 6, s.ScrollDelta(6, 0))
	s.TouchUp()
	require.True(t, s.Animating())

	clock.run(s, s.Animating)
	assert.Equal(t, 1, s.Centered())
	assert.Equal(t, 15, centerOf(t, s, 1))
}

func TestStripTap(t *testing.T) {
	t.Parallel()

	t.Run("tapping the centered item advances", func(t *testing.T) {
		t.Parallel()
		s, _, clock := newTestStrip(10)

		s.Tap(15, 0)
		clock.run(s, s.Animating)
		assert.Equal(t, 1, s.Centered())
		assert.Equal(t, 15, centerOf(t, s, 1))
	})

	t.Run("tapping a neighbour centers it", func(t *testing.T) {
		t.Parallel()
		s, _, clock := newTestStrip(10)
		require.Equal(t, 20, s.ScrollDelta(20, 0))
		require.Equal(t, 2, s.Centered())

		s.Tap(2, 0)
		clock.run(s, s.Animating)
		assert.Equal(t, 1, s.Centered())
		assert.Equal(t, 15, centerOf(t, s, 1))
	})

	t.Run("custom next target", func(t *testing.T) {
		t.Parallel()
		s, _, clock := newTestStrip(10)
		s.SetNextFunc(func(index int) int { return index + 3 })

		s.Tap(15, 0)
		clock.run(s, s.Animating)
		assert.Equal(t, 3, s.Centered())
	})
}

func TestStripCenterOn(t *testing.T) {
	t.Parallel()

	s, adapter, clock := newTestStrip(50)
	s.CenterOn(40)
	require.True(t, s.Animating())

	clock.run(s, s.Animating)
	assert.Equal(t, 40, s.Centered())
	assert.Equal(t, 15, centerOf(t, s, 40))
	assert.Less(t, adapter.created, 15, "items are recycled while seeking")

	s.CenterOn(2)
	clock.run(s, s.Animating)
	assert.Equal(t, 2, s.Centered())
	assert.Equal(t, 15, centerOf(t, s, 2))

	s.CenterOn(50)
	assert.False(t, s.Animating(), "out of range")
}

func TestStripTouchDownStopsAnimation(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStrip(50)
	touches := 0
	s.OnTouchDown(func() { touches++ })

	s.CenterOn(40)
	require.True(t, s.Animating())
	s.TouchDown()
	assert.False(t, s.Animating())
	assert.Equal(t, 1, touches)
}

func TestStripKeys(t *testing.T) {
	t.Parallel()

	s, _, clock := newTestStrip(10)

	cmd := s.InputHandler(tcell.NewEventKey(tcell.KeyRight, "", tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	clock.run(s, s.Animating)
	assert.Equal(t, 1, s.Centered())

	s.InputHandler(tcell.NewEventKey(tcell.KeyRune, "G", tcell.ModNone))
	clock.run(s, s.Animating)
	assert.Equal(t, 9, s.Centered())

	s.InputHandler(tcell.NewEventKey(tcell.KeyRune, "h", tcell.ModNone))
	clock.run(s, s.Animating)
	assert.Equal(t, 8, s.Centered())

	s.InputHandler(tcell.NewEventKey(tcell.KeyHome, "", tcell.ModNone))
	clock.run(s, s.Animating)
	assert.Equal(t, 0, s.Centered())

	assert.Nil(t, s.InputHandler(tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone)))
}

func TestStripScrolledEvents(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStrip(10)
	var total int
	token := s.OnScrolled(func(sc mediator.Scroll) {
		assert.Zero(t, sc.DY)
		total += sc.DX
	})

	s.ScrollDelta(12, 0)
	s.ScrollDelta(-4, 0)
	s.ScrollDelta(-100, 0)
	assert.Equal(t, 0, total)

	s.RemoveScrolled(token)
	s.ScrollDelta(5, 0)
	assert.Equal(t, 0, total)

	extent, ok := s.FirstExtent()
	assert.True(t, ok)
	assert.Equal(t, 10, extent)
	assert.Equal(t, mediator.Horizontal, s.Axis())
}
