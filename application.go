package strip

import (
	"time"

	"github.com/gdamore/tcell/v3"
)

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// mouseState tracks the pointer between two mouse events.
type mouseState struct {
	// Receives follow-up events until its handler returns nil.
	capture Primitive

	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
}

// Application represents the top node of an application.
//
// Besides key and mouse events, the event loop drives every registered
// [Ticker] once per frame, which is how strips and pagers animate. The
// application and its primitives must only be used from the goroutine calling
// Run.
//
//	app := strip.NewApplication().SetRoot(root)
//	app.AddTicker(carousel)
//	if err := app.Run(); err != nil {
//	    log.Fatal(err)
//	}
type Application struct {
	// nil once the application stopped.
	screen tcell.Screen
	// The error which stopped the event loop, if any.
	err error

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	mouse mouseState

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool

	// Primitives animated once per frame.
	tickers []Ticker

	// Called with every key event before it reaches the root. Returning nil
	// consumes the event.
	inputCapture func(event *tcell.EventKey) *tcell.EventKey
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{}
}

// SetScreen sets an initialized screen for the application to run on. By
// default Run creates a terminal screen.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.screen = screen
	a.forceRedraw = true
	return a
}

// AddTicker registers t to be ticked once per frame while the application runs.
func (a *Application) AddTicker(t Ticker) *Application {
	a.tickers = append(a.tickers, t)
	return a
}

// SetInputCapture sets a function which intercepts all key events before they
// are passed to the root primitive.
func (a *Application) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) *Application {
	a.inputCapture = capture
	return a
}

// SetRoot sets the root primitive and gives it the focus. Nothing is drawn
// until a root is set.
func (a *Application) SetRoot(root Primitive) *Application {
	a.root = root
	a.forceRedraw = true
	return a.SetFocus(root)
}

// SetFocus sets the focus to a new primitive. Blur is called on the
// previously focused primitive, Focus on the new one.
func (a *Application) SetFocus(p Primitive) *Application {
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// Run starts the event loop. It returns when [Application.Stop] was called
// or the screen reported an error.
//
// While the application runs it claims stdin, stdout and stderr.
func (a *Application) Run() error {
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		a.screen = screen
	}
	a.screen.EnableMouse()

	// Panics would leave the terminal unusable.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	events := a.screen.EventQ()
	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	a.draw()
	for a.screen != nil {
		select {
		case event := <-events:
			if event == nil {
				return a.err
			}
			a.handleEvent(event)
		case now := <-frames.C:
			a.frame(now)
		}
	}
	return a.err
}

// Stop stops the application, causing Run to return.
func (a *Application) Stop() {
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// handleEvent dispatches one screen event and redraws if it changed anything.
func (a *Application) handleEvent(event tcell.Event) {
	switch event := event.(type) {
	case *tcell.EventKey:
		if a.inputCapture != nil {
			if event = a.inputCapture(event); event == nil {
				a.draw()
				return
			}
		}
		if a.root != nil && a.root.HasFocus() && a.executeCommand(a.root.InputHandler(event)) {
			a.draw()
		}
	case *tcell.EventResize:
		// The terminal may have lost its contents even if the size is unchanged.
		a.forceRedraw = true
		a.draw()
	case *tcell.EventMouse:
		if a.dispatchMouse(event) {
			a.draw()
		}
	case *tcell.EventError:
		a.err = event
		a.Stop()
	}
}

// frame advances all tickers to now and redraws if any of them changed.
func (a *Application) frame(now time.Time) bool {
	changed := false
	for _, t := range a.tickers {
		if t.Tick(now) {
			changed = true
		}
	}
	if changed {
		a.draw()
	}
	return changed
}

// dispatchMouse turns event into mouse actions for the capturing primitive or
// the root. Clicks are reported for every release that did not move, so
// quick taps are never merged into double clicks.
func (a *Application) dispatchMouse(event *tcell.EventMouse) bool {
	x, y := event.Position()
	buttons := event.Buttons()
	pressed := buttons &^ a.mouse.buttons
	released := a.mouse.buttons &^ buttons
	a.mouse.buttons = buttons

	handled := false
	fire := func(action MouseAction) {
		target := a.mouse.capture
		if target == nil {
			target = a.root
		}
		if target == nil {
			return
		}
		capture, cmd := target.MouseHandler(action, event)
		a.mouse.capture = capture
		if a.executeCommand(cmd) {
			handled = true
		}
	}

	if x != a.mouse.x || y != a.mouse.y {
		a.mouse.x, a.mouse.y = x, y
		fire(MouseMove)
	}
	if pressed&tcell.ButtonPrimary != 0 {
		a.mouse.downX, a.mouse.downY = x, y
		fire(MouseLeftDown)
	}
	if released&tcell.ButtonPrimary != 0 {
		fire(MouseLeftUp)
		if x == a.mouse.downX && y == a.mouse.downY {
			fire(MouseLeftClick)
		}
	}
	for _, wheel := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&wheel.button != 0 {
			fire(wheel.action)
		}
	}
	return handled
}

func (a *Application) draw() {
	if a.screen == nil || a.root == nil {
		return
	}
	width, height := a.screen.Size()
	a.root.SetRect(0, 0, width, height)

	// Show only writes the cells that changed, so regular frames skip the clear.
	if a.forceRedraw {
		a.screen.Clear()
		a.forceRedraw = false
	}
	a.root.Draw(a.screen)
	a.screen.Show()
}

// executeCommand runs cmd and reports whether a redraw is due.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil || c.Target == a.focus {
			return false
		}
		a.SetFocus(c.Target)
		return true
	}
	return false
}
