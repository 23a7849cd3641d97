package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub(t *testing.T) {
	t.Parallel()

	t.Run("emits in registration order", func(t *testing.T) {
		t.Parallel()
		var h Hub[int]
		var got []string
		h.Add(func(v int) { got = append(got, "a") })
		h.Add(func(v int) { got = append(got, "b") })

		h.Emit(1)
		assert.Equal(t, []string{"a", "b"}, got)
		assert.Equal(t, 2, h.Len())
	})

	t.Run("removes by token", func(t *testing.T) {
		t.Parallel()
		var h Hub[int]
		sum := 0
		first := h.Add(func(v int) { sum += v })
		h.Add(func(v int) { sum += 10 * v })

		h.Remove(first)
		h.Remove(first)
		h.Remove(Token(99))
		h.Emit(2)
		assert.Equal(t, 20, sum)
		assert.Equal(t, 1, h.Len())
	})

	t.Run("changes during emit apply to the next emit", func(t *testing.T) {
		t.Parallel()
		var h Hub[struct{}]
		calls := 0
		var second Token
		h.Add(func(struct{}) {
			calls++
			h.Remove(second)
			h.Add(func(struct{}) { calls += 100 })
		})
		second = h.Add(func(struct{}) { calls += 10 })

		h.Emit(struct{}{})
		assert.Equal(t, 11, calls)

		calls = 0
		h.Emit(struct{}{})
		assert.Equal(t, 101, calls)
	})
}
