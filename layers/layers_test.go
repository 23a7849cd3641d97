package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/korok/strip"
)

// focusTracker hands the focus around the way the application does.
type focusTracker struct {
	current strip.Primitive
}

func (f *focusTracker) set(p strip.Primitive) {
	if f.current != nil {
		f.current.Blur()
	}
	f.current = p
	p.Focus(f.set)
}

func TestLayersFocus(t *testing.T) {
	t.Parallel()

	main, find := strip.NewBox(), strip.NewBox()
	l := New().
		AddLayer(main, WithName("main")).
		AddLayer(find, WithName("find"), WithVisible(false), WithOverlay())

	focus := &focusTracker{}
	focus.set(l)
	assert.Same(t, main, focus.current)
	assert.True(t, l.HasFocus())

	l.ShowLayer("find")
	assert.True(t, l.GetVisible("find"))
	assert.Same(t, find, focus.current)
	assert.False(t, main.HasFocus())
	name, front := l.GetFrontLayer()
	assert.Equal(t, "find", name)
	assert.Same(t, find, front)

	l.HideLayer("find")
	assert.False(t, l.GetVisible("find"))
	assert.False(t, find.HasFocus())
	assert.Same(t, main, focus.current)
}

func TestLayersReplaceByName(t *testing.T) {
	t.Parallel()

	first, second := strip.NewBox(), strip.NewBox()
	l := New().
		AddLayer(first, WithName("main")).
		AddLayer(second, WithName("main"))

	_, front := l.GetFrontLayer()
	assert.Same(t, second, front)
	assert.Len(t, l.layers, 1)
	assert.False(t, l.GetVisible("missing"))
}

func TestLayersEmpty(t *testing.T) {
	t.Parallel()

	name, front := New().GetFrontLayer()
	assert.Empty(t, name)
	assert.Nil(t, front)
}
