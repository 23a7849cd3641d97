package strip

import (
	"time"

	"github.com/gdamore/tcell/v3"
)

// Primitive is the top-most interface for everything drawn by an
// [Application].
type Primitive interface {
	// Draw draws this primitive onto the screen.
	Draw(screen tcell.Screen)

	// GetRect returns the current position of the primitive, x, y, width, and
	// height.
	GetRect() (int, int, int, int)
	// SetRect sets a new position of the primitive.
	SetRect(x, y, width, height int)

	// InputHandler receives key events when this primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse events. The returned capture primitive (if
	// non-nil) receives follow-up mouse events until it releases the capture
	// by returning nil.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command)

	// HasFocus determines if the primitive has focus. Containers return true
	// if one of their children has focus.
	HasFocus() bool
	// Focus is called by the application when the primitive receives focus.
	// Implementers may call delegate() to pass the focus on to another
	// primitive.
	Focus(delegate func(p Primitive))
	// Blur is called by the application when the primitive loses focus.
	Blur()
}

// Ticker is implemented by primitives which animate. The application calls
// Tick once per frame from its event loop.
type Ticker interface {
	// Tick advances running animations to now and reports whether anything
	// changed on screen.
	Tick(now time.Time) bool
}
