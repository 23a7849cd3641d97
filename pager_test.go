package strip

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korok/strip/mediator"
)

type testPages struct {
	pages []Primitive
}

func newTestPages(count int) *testPages {
	s := &testPages{}
	for range count {
		s.pages = append(s.pages, NewBox())
	}
	return s
}

func (s *testPages) PageCount() int { return len(s.pages) }

func (s *testPages) Page(index int) Primitive { return s.pages[index] }

func newTestPager(count int) (*Pager, *testClock) {
	clock := newTestClock()
	p := NewPager().SetSource(newTestPages(count))
	p.anim.clock = clock.Now
	p.SetRect(0, 0, 20, 10)
	return p, clock
}

func TestPagerScroll(t *testing.T) {
	t.Parallel()

	p, _ := newTestPager(5)
	var changes []int
	p.SetChangedFunc(func(index int) { changes = append(changes, index) })

	assert.Equal(t, 4, p.ScrollDelta(0, 4))
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, 1, p.ScrollDelta(0, 1))
	assert.Equal(t, 1, p.Current(), "half a page switches pages")

	assert.Equal(t, -5, p.ScrollDelta(0, -100))
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 40, p.ScrollDelta(0, 1000))
	assert.Equal(t, 4, p.Current())
	assert.Equal(t, 0, p.ScrollDelta(0, 1))

	assert.Equal(t, []int{1, 0, 4}, changes)
}

func TestPagerSnap(t *testing.T) {
	t.Parallel()

	t.Run("to the page covering most of the viewport", func(t *testing.T) {
		t.Parallel()
		p, clock := newTestPager(5)

		p.TouchDown()
		require.Equal(t, 27, p.ScrollDelta(0, 27))
		p.TouchUp()
		clock.run(p, p.Animating)
		assert.Equal(t, 30, p.Offset())
		assert.Equal(t, 3, p.Current())
	})

	t.Run("back to the current page", func(t *testing.T) {
		t.Parallel()
		p, clock := newTestPager(5)

		require.Equal(t, 13, p.ScrollDelta(0, 13))
		p.TouchUp()
		clock.run(p, p.Animating)
		assert.Equal(t, 10, p.Offset())
	})

	t.Run("aligned pages do not move", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestPager(5)

		require.Equal(t, 20, p.ScrollDelta(0, 20))
		p.TouchUp()
		assert.False(t, p.Animating())
	})
}

func TestPagerKeys(t *testing.T) {
	t.Parallel()

	p, clock := newTestPager(3)

	p.InputHandler(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone))
	clock.run(p, p.Animating)
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 10, p.Offset())

	p.InputHandler(tcell.NewEventKey(tcell.KeyEnd, "", tcell.ModNone))
	clock.run(p, p.Animating)
	assert.Equal(t, 2, p.Current())

	p.InputHandler(tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone))
	clock.run(p, p.Animating)
	assert.Equal(t, 2, p.Current(), "stays on the last page")

	p.InputHandler(tcell.NewEventKey(tcell.KeyRune, "k", tcell.ModNone))
	clock.run(p, p.Animating)
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 10, p.Offset())
}

func TestPagerResize(t *testing.T) {
	t.Parallel()

	p, _ := newTestPager(5)
	var steps []int
	p.OnScrolled(func(s mediator.Scroll) { steps = append(steps, s.DY) })
	require.Equal(t, 25, p.ScrollDelta(0, 25))
	require.Equal(t, 3, p.Current())

	p.SetRect(0, 0, 20, 6)
	extent, ok := p.FirstExtent()
	require.True(t, ok)
	assert.Equal(t, 6, extent)
	assert.Equal(t, 12, p.Offset(), "resizing drops the offset within the page")
	assert.Equal(t, 2, p.Current())
	assert.Equal(t, []int{25, -13}, steps)

	p.SetSource(newTestPages(2))
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, []int{25, -13, -12}, steps)
}

func TestStripPagerSyncAfterResize(t *testing.T) {
	t.Parallel()

	s, _, stripClock := newTestStrip(10)
	p, _ := newTestPager(10)
	m := mediator.Sync(s, p)
	defer m.Unsync()

	p.TouchDown()
	require.Equal(t, 25, p.ScrollDelta(0, 25))
	_, pa := m.Offsets()
	require.Equal(t, 25, pa)

	p.SetRect(0, 0, 20, 6)
	p.FirstExtent()
	_, pa = m.Offsets()
	assert.Equal(t, p.Offset(), pa)

	stripClock.run(s, s.Animating)
	sa, _ := m.Offsets()
	assert.Equal(t, 20, sa, "the strip follows the pager to page 2")
}

func TestPagerEmpty(t *testing.T) {
	t.Parallel()

	p := NewPager()
	p.SetRect(0, 0, 20, 10)
	assert.Equal(t, 0, p.ScrollDelta(0, 5))
	_, ok := p.FirstExtent()
	assert.False(t, ok)
	assert.Nil(t, p.InputHandler(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone)))
}

func TestStripPagerSync(t *testing.T) {
	t.Parallel()

	s, _, stripClock := newTestStrip(10)
	p, pagerClock := newTestPager(10)
	m := mediator.Sync(s, p)
	defer m.Unsync()

	s.TouchDown()
	require.Equal(t, 10, s.ScrollDelta(10, 0))
	require.True(t, p.Animating())
	pagerClock.run(p, p.Animating)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 1, p.Current())

	p.TouchDown()
	require.Equal(t, 5, p.ScrollDelta(0, 5))
	require.True(t, s.Animating())
	stripClock.run(s, s.Animating)
	sa, pa := m.Offsets()
	assert.Equal(t, 15, sa)
	assert.Equal(t, 15, pa)
	assert.False(t, p.Animating(), "corrections do not feed back")
}
