package window

// Extent is the horizontal span [Left, Right) an element occupies in viewport
// coordinates.
type Extent struct {
	Left  int
	Right int
}

// Width returns the extent's width.
func (e Extent) Width() int {
	return e.Right - e.Left
}

// Center returns the horizontal center of the extent, rounded toward Left.
func (e Extent) Center() int {
	return e.Left + e.Width()/2
}

// Shift returns the extent moved by dx.
func (e Extent) Shift(dx int) Extent {
	return Extent{Left: e.Left + dx, Right: e.Right + dx}
}

// Contains reports whether x lies within [Left, Right).
func (e Extent) Contains(x int) bool {
	return x >= e.Left && x < e.Right
}

// Viewport is the fixed-size area the window is laid out in.
type Viewport struct {
	Width  int
	Height int
}

// Mid returns the horizontal midpoint of the viewport.
func (v Viewport) Mid() int {
	return v.Width / 2
}

// Contains reports whether the extent touches the viewport. Both edges are
// inclusive, so an element ending exactly at 0 still counts as visible.
func (v Viewport) Contains(e Extent) bool {
	return e.Right >= 0 && e.Left <= v.Width
}

// CenterOffset returns how far the extent has to move so its center lines up
// with the viewport's midpoint. A positive value means the element has to move
// right.
func (v Viewport) CenterOffset(e Extent) int {
	return v.Mid() - e.Center()
}
