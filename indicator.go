package strip

import "github.com/gdamore/tcell/v3"

const subcell = 8

// IndicatorGlyphs defines the track, arrow and fractional thumb glyphs of an
// [Indicator].
type IndicatorGlyphs struct {
	Track string

	ArrowStart string
	ArrowEnd   string

	// Thumb fills anchored at the left and at the right edge of a cell, from
	// 1/8 to 8/8 of the cell.
	ThumbLeft  [8]string
	ThumbRight [8]string
}

// DefaultIndicatorGlyphs returns block element glyphs with 1/8 cell fidelity.
func DefaultIndicatorGlyphs() IndicatorGlyphs {
	return IndicatorGlyphs{
		Track: "─",

		ArrowStart: "◀",
		ArrowEnd:   "▶",

		ThumbLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbRight: [8]string{"▕", "🮇", "🮈", "▐", "🮉", "🮊", "🮋", "█"},
	}
}

// UnicodeIndicatorGlyphs returns an approximation using standard unicode
// only.
func UnicodeIndicatorGlyphs() IndicatorGlyphs {
	g := DefaultIndicatorGlyphs()
	g.ThumbRight = [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"}
	return g
}

// Indicator renders a horizontal position indicator for a collection of
// items, one of which is selected. Clicking the track selects the item under
// the mouse.
type Indicator struct {
	*Box

	count    int
	selected int

	trackStyle tcell.Style
	thumbStyle tcell.Style
	arrowStyle tcell.Style

	glyphs IndicatorGlyphs
	arrows bool

	autoHide bool

	selectedFunc func(index int)
}

// NewIndicator returns a new indicator.
func NewIndicator() *Indicator {
	return &Indicator{
		Box:        NewBox(),
		autoHide:   true,
		trackStyle: tcell.StyleDefault.Foreground(Styles.TertiaryTextColor),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.IndicatorColor),
		arrowStyle: tcell.StyleDefault.Dim(true),
		glyphs:     DefaultIndicatorGlyphs(),
	}
}

// SetCount sets the number of items.
func (i *Indicator) SetCount(count int) *Indicator {
	i.count = max(count, 0)
	return i
}

// SetSelected sets the selected item.
func (i *Indicator) SetSelected(index int) *Indicator {
	if i.selected != index {
		i.selected = max(index, 0)
		i.MarkDirty()
	}
	return i
}

// Selected returns the selected item.
func (i *Indicator) Selected() int {
	return i.selected
}

// SetGlyphs applies a glyph set.
func (i *Indicator) SetGlyphs(g IndicatorGlyphs) *Indicator {
	i.glyphs = g
	return i
}

// SetArrows toggles the arrow endcaps.
func (i *Indicator) SetArrows(arrows bool) *Indicator {
	i.arrows = arrows
	return i
}

// SetAutoHide controls whether the indicator is hidden when there is at most
// one item.
func (i *Indicator) SetAutoHide(autoHide bool) *Indicator {
	i.autoHide = autoHide
	return i
}

// SetThumbStyle sets the thumb style.
func (i *Indicator) SetThumbStyle(style tcell.Style) *Indicator {
	i.thumbStyle = style
	return i
}

// SetTrackStyle sets the track style.
func (i *Indicator) SetTrackStyle(style tcell.Style) *Indicator {
	i.trackStyle = style
	return i
}

// SetSelectedFunc sets a handler called with the item index when the track is
// clicked.
func (i *Indicator) SetSelectedFunc(handler func(index int)) *Indicator {
	i.selectedFunc = handler
	return i
}

func (i *Indicator) trackCells(width int) int {
	if width <= 0 {
		return 0
	}
	if i.arrows {
		return max(width-2, 0)
	}
	return width
}

type indicatorMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeIndicatorMetrics computes the thumb geometry in subcell units. The
// thumb covers one item's share of the track.
func computeIndicatorMetrics(trackCells, count, selected int) indicatorMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return indicatorMetrics{}
	}
	count = max(count, 1)
	maxOffset := count - 1
	selected = min(max(selected, 0), maxOffset)
	if maxOffset == 0 {
		return indicatorMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max(trackLen/count, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * selected) / maxOffset
	return indicatorMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// cellFill returns the cell-local start and length of the thumb coverage of
// cell, in subcell units.
func cellFill(m indicatorMetrics, cell int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cell * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (i *Indicator) glyphFor(start, fillLen int) (string, tcell.Style) {
	if fillLen <= 0 {
		return i.glyphs.Track, i.trackStyle
	}
	if fillLen >= subcell {
		return i.glyphs.ThumbLeft[7], i.thumbStyle
	}
	if start == 0 {
		return i.glyphs.ThumbLeft[fillLen-1], i.thumbStyle
	}
	return i.glyphs.ThumbRight[fillLen-1], i.thumbStyle
}

// Draw draws the indicator.
func (i *Indicator) Draw(screen tcell.Screen) {
	i.DrawForSubclass(screen, i)

	x, y, width, height := i.GetInnerRect()
	if height <= 0 || i.count <= 0 || (i.autoHide && i.count <= 1) {
		return
	}
	m := computeIndicatorMetrics(i.trackCells(width), i.count, i.selected)
	if m.trackLen == 0 {
		return
	}

	if i.arrows {
		screen.Put(x, y, i.glyphs.ArrowStart, i.arrowStyle)
		x++
	}
	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		glyph, style := i.glyphFor(start, fillLen)
		screen.Put(x+cell, y, glyph, style)
	}
	if i.arrows {
		screen.Put(x+m.trackCells, y, i.glyphs.ArrowEnd, i.arrowStyle)
	}
}

// indexAt returns the item under column x, relative to the inner rect.
func (i *Indicator) indexAt(x, width int) int {
	cells := i.trackCells(width)
	if i.arrows {
		x--
	}
	if cells <= 0 || i.count <= 0 || x < 0 || x >= cells {
		return -1
	}
	return min(x*i.count/cells, i.count-1)
}

// MouseHandler returns the mouse handler for this primitive.
func (i *Indicator) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if action != MouseLeftClick || !i.InRect(x, y) {
		return nil, nil
	}
	innerX, _, width, _ := i.GetInnerRect()
	index := i.indexAt(x-innerX, width)
	if index < 0 {
		return nil, nil
	}
	i.SetSelected(index)
	if i.selectedFunc != nil {
		i.selectedFunc(index)
	}
	return nil, RedrawCommand{}
}

var _ Primitive = &Indicator{}
