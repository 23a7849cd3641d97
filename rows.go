package strip

import "github.com/gdamore/tcell/v3"

// row is one primitive of a Rows container.
type row struct {
	item       Primitive
	fixed      int  // Fixed height, or 0 for a flexible row.
	proportion int  // Share of the remaining height of a flexible row.
	focus      bool // Whether the row takes the focus when Rows is focused.
}

// Rows arranges primitives from top to bottom. Rows have either a fixed
// height or share the remaining height by proportion.
type Rows struct {
	*Box

	rows []*row
}

// NewRows returns an empty vertical container.
func NewRows() *Rows {
	r := &Rows{Box: NewBox()}
	r.SetDontClear(true)
	return r
}

// AddItem adds a row. A fixedHeight of 0 makes the row flexible with the given
// proportion. If focus is true, the row receives the focus when the container
// does.
func (r *Rows) AddItem(item Primitive, fixedHeight, proportion int, focus bool) *Rows {
	r.rows = append(r.rows, &row{item: item, fixed: max(fixedHeight, 0), proportion: max(proportion, 1), focus: focus})
	r.MarkDirty()
	return r
}

// ItemCount returns the number of rows.
func (r *Rows) ItemCount() int {
	return len(r.rows)
}

// layout returns the y position and height of every row for the given inner
// height.
func (r *Rows) layout(y, height int) [][2]int {
	var fixed, proportions int
	for _, row := range r.rows {
		if row.fixed > 0 {
			fixed += row.fixed
		} else {
			proportions += row.proportion
		}
	}
	flexible := max(height-fixed, 0)

	spans := make([][2]int, len(r.rows))
	remaining := flexible
	for i, row := range r.rows {
		h := row.fixed
		if h == 0 && proportions > 0 {
			h = flexible * row.proportion / proportions
			remaining -= h
		}
		spans[i] = [2]int{y, h}
		y += h
	}
	// Hand rounding leftovers to the last flexible row.
	for i := len(r.rows) - 1; i >= 0 && remaining > 0; i-- {
		if r.rows[i].fixed == 0 {
			spans[i][1] += remaining
			for j := i + 1; j < len(spans); j++ {
				spans[j][0] += remaining
			}
			break
		}
	}
	return spans
}

// Draw draws this primitive onto the screen.
func (r *Rows) Draw(screen tcell.Screen) {
	r.DrawForSubclass(screen, r)

	x, y, width, height := r.GetInnerRect()
	bottom := y + height
	for i, span := range r.layout(y, height) {
		top, h := span[0], min(span[1], bottom-span[0])
		if h <= 0 {
			continue
		}
		item := r.rows[i].item
		item.SetRect(x, top, width, h)
		item.Draw(screen)
	}
}

// HasFocus returns whether this primitive or one of its rows has focus.
func (r *Rows) HasFocus() bool {
	for _, row := range r.rows {
		if row.item.HasFocus() {
			return true
		}
	}
	return r.Box.HasFocus()
}

// Focus hands the focus to the first row marked for it.
func (r *Rows) Focus(delegate func(p Primitive)) {
	for _, row := range r.rows {
		if row.focus && delegate != nil {
			delegate(row.item)
			return
		}
	}
	r.Box.Focus(delegate)
}

// InputHandler passes key events to the focused row.
func (r *Rows) InputHandler(event *tcell.EventKey) Command {
	for _, row := range r.rows {
		if row.item.HasFocus() {
			return row.item.InputHandler(event)
		}
	}
	return nil
}

// MouseHandler passes mouse events to the row under the mouse.
func (r *Rows) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !r.InRect(event.Position()) {
		return nil, nil
	}
	for _, row := range r.rows {
		capture, cmd := row.item.MouseHandler(action, event)
		if capture != nil || cmd != nil {
			return capture, cmd
		}
	}
	return nil, nil
}

var _ Primitive = &Rows{}
