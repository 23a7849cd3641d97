// Package event provides callback registration with identity-based removal.
package event

// Token identifies a registered callback.
type Token uint64

// Hub keeps an ordered list of callbacks receiving values of type T. Callbacks
// run in registration order. A Hub is not safe for concurrent use.
type Hub[T any] struct {
	next     Token
	handlers []handler[T]
}

type handler[T any] struct {
	token Token
	fn    func(T)
}

// Add registers fn and returns the token which removes it again.
func (h *Hub[T]) Add(fn func(T)) Token {
	h.next++
	h.handlers = append(h.handlers, handler[T]{token: h.next, fn: fn})
	return h.next
}

// Remove unregisters the callback identified by token. Unknown tokens are
// ignored.
func (h *Hub[T]) Remove(token Token) {
	for i, hd := range h.handlers {
		if hd.token == token {
			h.handlers = append(h.handlers[:i:i], h.handlers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered callbacks.
func (h *Hub[T]) Len() int {
	return len(h.handlers)
}

// Emit calls every registered callback with value. Callbacks added or removed
// during Emit take effect with the next call.
func (h *Hub[T]) Emit(value T) {
	handlers := h.handlers
	for _, hd := range handlers {
		hd.fn(value)
	}
}
