package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtent(t *testing.T) {
	t.Parallel()

	e := Extent{Left: 10, Right: 31}
	assert.Equal(t, 21, e.Width())
	assert.Equal(t, 20, e.Center())
	assert.Equal(t, Extent{Left: 5, Right: 26}, e.Shift(-5))
	assert.True(t, e.Contains(10))
	assert.False(t, e.Contains(31))
}

func TestViewportContains(t *testing.T) {
	t.Parallel()

	v := Viewport{Width: 300, Height: 10}
	tests := []struct {
		name   string
		extent Extent
		want   bool
	}{
		{"inside", Extent{Left: 100, Right: 200}, true},
		{"ends at the leading edge", Extent{Left: -10, Right: 0}, true},
		{"starts at the trailing edge", Extent{Left: 300, Right: 310}, true},
		{"left of the viewport", Extent{Left: -20, Right: -1}, false},
		{"right of the viewport", Extent{Left: 301, Right: 310}, false},
		{"wider than the viewport", Extent{Left: -50, Right: 350}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, v.Contains(tt.extent))
		})
	}
}

func TestViewportCenterOffset(t *testing.T) {
	t.Parallel()

	v := Viewport{Width: 300}
	assert.Equal(t, 150, v.Mid())
	assert.Equal(t, 0, v.CenterOffset(Extent{Left: 100, Right: 200}))
	assert.Equal(t, -100, v.CenterOffset(Extent{Left: 200, Right: 300}))
	assert.Equal(t, 100, v.CenterOffset(Extent{Left: 0, Right: 100}))
}

func slots(first int, lefts ...int) Window[*item] {
	w := Window[*item]{First: first}
	for i := 0; i+1 < len(lefts); i++ {
		w = w.Append(Slot[*item]{
			Index:   first + i,
			Extent:  Extent{Left: lefts[i], Right: lefts[i+1]},
			Element: &item{index: first + i},
		})
	}
	return w
}

func TestWindowTransformsDoNotAlias(t *testing.T) {
	t.Parallel()

	w := slots(3, 0, 100, 200)
	shifted := w.Shift(50)
	prepended := w.Prepend(Slot[*item]{Index: 2, Extent: Extent{Left: -100, Right: 0}})
	appended := w.Append(Slot[*item]{Index: 5, Extent: Extent{Left: 200, Right: 300}})

	assert.Equal(t, Extent{Left: 0, Right: 200}, w.Extent())
	assert.Equal(t, Extent{Left: 50, Right: 250}, shifted.Extent())
	assert.Equal(t, 2, prepended.First)
	assert.True(t, prepended.Contiguous())
	assert.Equal(t, 5, appended.LastIndex())
	assert.True(t, appended.Contiguous())
	assert.Equal(t, 2, w.Len())
}

func TestWindowLookup(t *testing.T) {
	t.Parallel()

	w := slots(3, 0, 100, 200)

	slot, ok := w.Lookup(4)
	require.True(t, ok)
	assert.Equal(t, Extent{Left: 100, Right: 200}, slot.Extent)
	_, ok = w.Lookup(2)
	assert.False(t, ok)
	_, ok = w.Lookup(5)
	assert.False(t, ok)

	slot, ok = w.At(99)
	require.True(t, ok)
	assert.Equal(t, 3, slot.Index)
	_, ok = w.At(200)
	assert.False(t, ok)
}

func TestWindowClosest(t *testing.T) {
	t.Parallel()

	w := slots(0, 50, 150, 250)

	slot, ok := w.Closest(180)
	require.True(t, ok)
	assert.Equal(t, 1, slot.Index)

	slot, _ = w.Closest(150)
	assert.Equal(t, 0, slot.Index, "ties go to the leading slot")

	_, ok = Window[*item]{}.Closest(150)
	assert.False(t, ok)
}

func TestWindowPrune(t *testing.T) {
	t.Parallel()
	viewport := Viewport{Width: 300, Height: 10}

	t.Run("drops invisible slots in detach order", func(t *testing.T) {
		t.Parallel()
		w := slots(0, -250, -150, -50, 50, 150, 250, 350, 450)

		kept, dropped := w.Prune(viewport, nil)
		assert.Equal(t, 2, kept.First)
		assert.Equal(t, []int{2, 3, 4, 5}, windowIndices(kept))
		assert.Equal(t, []int{6, 1, 0}, windowIndices(Window[*item]{Slots: dropped}))
	})

	t.Run("keeps slots between kept ones", func(t *testing.T) {
		t.Parallel()
		w := slots(0, -400, -300, -200, 0, 100)

		kept, dropped := w.Prune(viewport, func(s Slot[*item]) bool { return s.Index == 0 })
		assert.Equal(t, []int{0, 1, 2, 3}, windowIndices(kept))
		assert.Empty(t, dropped)
	})

	t.Run("retains an anchor when nothing is visible", func(t *testing.T) {
		t.Parallel()
		w := slots(4, 400, 500, 600)

		kept, dropped := w.Prune(viewport, nil)
		assert.Equal(t, []int{4}, windowIndices(kept))
		assert.Equal(t, []int{5}, windowIndices(Window[*item]{Slots: dropped}))
	})

	t.Run("empty window", func(t *testing.T) {
		t.Parallel()
		kept, dropped := Window[*item]{}.Prune(viewport, nil)
		assert.True(t, kept.Empty())
		assert.Nil(t, dropped)
	})
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		w     Window[*item]
		count int
		delta int
		want  int
	}{
		{"zero delta", slots(0, 100, 200, 300), 10, 0, 0},
		{"empty window", Window[*item]{}, 10, 50, 0},
		{"advance from the start", slots(0, 100, 200, 300), 10, 50, 50},
		{"retreat past the start", slots(0, 100, 200, 300), 10, -50, 0},
		{"retreat toward the start", slots(0, 50, 150, 250), 10, -80, -50},
		{"retreat away from the edges", slots(2, -50, 50, 150, 250), 10, -80, -80},
		{"advance within reach of the end", slots(2, 0, 100, 200, 300), 5, 30, 30},
		{"advance past the end", slots(2, 0, 100, 200, 300), 5, 120, 100},
		{"last item centered", slots(3, 0, 100, 200), 5, 50, 0},
		{"last item past the midpoint", slots(3, -50, 50, 150), 5, 50, 0},
		{"retreat at the end", slots(3, 0, 100, 200), 5, -50, -50},
		{"fully visible", slots(0, 130, 170, 210, 250, 290, 330), 5, 50, 0},
		{"fully visible retreat", slots(0, 130, 170, 210, 250, 290, 330), 5, -50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Clamp(tt.delta, tt.w, tt.count, 300))
		})
	}
}
