// Package layers stacks primitives on top of each other. It is used for modal
// prompts drawn over the main screen.
package layers

import (
	"github.com/gdamore/tcell/v3"

	"github.com/korok/strip"
)

// layer represents one layer of a Layers object.
type layer struct {
	name    string          // The layer's name.
	item    strip.Primitive // The layer's primitive.
	resize  bool            // Whether or not to resize the layer when it is drawn.
	visible bool            // Whether or not this layer is visible.
	overlay bool            // Whether this layer dims the layers behind it.
}

// Layers is a container for other primitives laid out on top of each other.
// The layers are drawn from back to front. An overlay layer applies a
// background style to the layers behind it and blocks their mouse input.
type Layers struct {
	*strip.Box

	// Visible layers are drawn from back to front.
	layers []*layer
	// The style applied to layers behind the active overlay layer.
	backgroundLayerStyle tcell.Style

	// Kept from Focus so newly shown layers can take the focus.
	setFocus func(p strip.Primitive)
}

// Option configures a layer on Add.
type Option func(*layer)

// WithName sets the layer's name.
func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize sets whether the layer is resized to the container's inner rect.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

// WithVisible sets the initial visibility of the layer.
func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithOverlay marks this layer as an overlay layer.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns a new Layers object.
func New() *Layers {
	return &Layers{
		Box:                  strip.NewBox(),
		backgroundLayerStyle: tcell.StyleDefault.Dim(true),
	}
}

// AddLayer adds a new layer for the given primitive. A layer with the same
// name is replaced.
func (l *Layers) AddLayer(item strip.Primitive, opts ...Option) *Layers {
	hasFocus := l.HasFocus()
	newLayer := &layer{
		item:    item,
		resize:  true,
		visible: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(newLayer)
		}
	}
	if newLayer.name != "" {
		for index, layer := range l.layers {
			if layer.name == newLayer.name {
				l.layers = append(l.layers[:index], l.layers[index+1:]...)
				break
			}
		}
	}
	l.layers = append(l.layers, newLayer)
	l.MarkDirty()
	if hasFocus {
		l.Focus(l.setFocus)
	}
	return l
}

// GetVisible returns whether the given layer is visible.
func (l *Layers) GetVisible(name string) bool {
	for _, layer := range l.layers {
		if name == layer.name {
			return layer.visible
		}
	}
	return false
}

// ShowLayer makes a layer visible and hands it the focus.
func (l *Layers) ShowLayer(name string) *Layers {
	return l.setVisible(name, true)
}

// HideLayer hides a layer. The focus moves to the front-most visible layer.
func (l *Layers) HideLayer(name string) *Layers {
	return l.setVisible(name, false)
}

func (l *Layers) setVisible(name string, visible bool) *Layers {
	for _, layer := range l.layers {
		if layer.name == name && layer.visible != visible {
			if !visible && layer.item.HasFocus() {
				layer.item.Blur()
			}
			layer.visible = visible
			l.MarkDirty()
			break
		}
	}
	if l.setFocus != nil {
		l.Focus(l.setFocus)
	}
	return l
}

// GetFrontLayer returns the front-most visible layer. If there are no visible
// layers, ("", nil) is returned.
func (l *Layers) GetFrontLayer() (name string, item strip.Primitive) {
	if top := l.topVisibleLayer(); top != nil {
		return top.name, top.item
	}
	return "", nil
}

// SetBackgroundLayerStyle sets the style applied to layers behind the active
// overlay layer.
func (l *Layers) SetBackgroundLayerStyle(style tcell.Style) *Layers {
	if l.backgroundLayerStyle != style {
		l.backgroundLayerStyle = style
		l.MarkDirty()
	}
	return l
}

// HasFocus returns whether or not this primitive has focus.
func (l *Layers) HasFocus() bool {
	for _, layer := range l.layers {
		if layer.visible && layer.item.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

// Focus is called by the application when the primitive receives focus.
func (l *Layers) Focus(delegate func(p strip.Primitive)) {
	if delegate == nil {
		return
	}
	l.setFocus = delegate
	if top := l.topVisibleLayer(); top != nil {
		delegate(top.item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws this primitive onto the screen.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	overlayIndex := l.topVisibleOverlayIndex()
	var ovScreen *overlayScreen
	if overlayIndex >= 0 {
		ovScreen = newOverlayScreen(screen, l.backgroundLayerStyle)
	}
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		layerScreen := screen
		if ovScreen != nil && index < overlayIndex {
			layerScreen = ovScreen
		}
		if layer.resize {
			x, y, width, height := l.GetInnerRect()
			layer.item.SetRect(x, y, width, height)
		}
		layer.item.Draw(layerScreen)
	}
}

// MouseHandler passes mouse events to the front-most visible layer that takes
// them, but never to layers behind an active overlay.
func (l *Layers) MouseHandler(action strip.MouseAction, event *tcell.EventMouse) (strip.Primitive, strip.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}

	overlayIndex := l.topVisibleOverlayIndex()
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if !layer.visible {
			continue
		}
		if overlayIndex >= 0 && index < overlayIndex {
			break
		}
		capture, cmd := layer.item.MouseHandler(action, event)
		if capture != nil || cmd != nil {
			return capture, cmd
		}
	}
	return nil, nil
}

// InputHandler passes key events to the layer holding the focus.
func (l *Layers) InputHandler(event *tcell.EventKey) strip.Command {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.item.HasFocus() {
			return layer.item.InputHandler(event)
		}
	}
	return nil
}

func (l *Layers) topVisibleLayer() *layer {
	for index := len(l.layers) - 1; index >= 0; index-- {
		if l.layers[index].visible {
			return l.layers[index]
		}
	}
	return nil
}

// topVisibleOverlayIndex returns the index of the top-most visible overlay
// layer, or -1.
func (l *Layers) topVisibleOverlayIndex() int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.overlay {
			return index
		}
	}
	return -1
}

type overlayScreen struct {
	tcell.Screen
	overlay tcell.Style
}

func newOverlayScreen(screen tcell.Screen, overlay tcell.Style) *overlayScreen {
	return &overlayScreen{
		Screen:  screen,
		overlay: overlay,
	}
}

func (s *overlayScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, applyBackgroundStyle(style, s.overlay))
}

func (s *overlayScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	return s.Screen.Put(x, y, str, applyBackgroundStyle(style, s.overlay))
}

func (s *overlayScreen) PutStr(x int, y int, str string) {
	s.Screen.PutStrStyled(x, y, str, applyBackgroundStyle(tcell.StyleDefault, s.overlay))
}

func (s *overlayScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	s.Screen.PutStrStyled(x, y, str, applyBackgroundStyle(style, s.overlay))
}

// applyBackgroundStyle layers the colors set in overlay over base and adds its
// attributes. Attributes of base are never removed.
func applyBackgroundStyle(base tcell.Style, overlay tcell.Style) tcell.Style {
	if fg := overlay.GetForeground(); fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg := overlay.GetBackground(); bg != tcell.ColorDefault {
		base = base.Background(bg)
	}
	if overlay.HasBold() {
		base = base.Bold(true)
	}
	if overlay.HasDim() {
		base = base.Dim(true)
	}
	if overlay.HasItalic() {
		base = base.Italic(true)
	}
	if overlay.HasReverse() {
		base = base.Reverse(true)
	}
	return base
}

var _ strip.Primitive = &Layers{}
