package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool(t *testing.T) {
	t.Parallel()

	t.Run("reuses the most recently recycled element", func(t *testing.T) {
		t.Parallel()
		adapter := newTestAdapter(10, 100)
		pool := NewPool[*item](adapter, 5)

		a := pool.Obtain(0)
		b := pool.Obtain(1)
		pool.Recycle(a)
		pool.Recycle(b)
		assert.Equal(t, -1, b.index, "recycled elements are unbound")
		assert.Equal(t, 2, adapter.unbound)

		got := pool.Obtain(7)
		assert.Same(t, b, got)
		assert.Equal(t, 7, got.index)
		assert.Equal(t, 1, pool.Len())
	})

	t.Run("drops elements beyond capacity", func(t *testing.T) {
		t.Parallel()
		pool := NewPool[*item](newTestAdapter(10, 100), 2)

		elements := []*item{pool.Obtain(0), pool.Obtain(1), pool.Obtain(2)}
		for _, e := range elements {
			pool.Recycle(e)
		}
		assert.Equal(t, PoolStats{Created: 3, Pooled: 2, Destroyed: 1}, pool.Stats())
	})

	t.Run("zero capacity never pools", func(t *testing.T) {
		t.Parallel()
		pool := NewPool[*item](newTestAdapter(10, 100), -3)

		pool.Recycle(pool.Obtain(0))
		pool.Obtain(1)
		assert.Equal(t, PoolStats{Created: 2, Pooled: 0, Destroyed: 1}, pool.Stats())
	})
}
