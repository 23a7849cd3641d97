package strip

import (
	"github.com/gdamore/tcell/v3"
)

// Prompt is a one-line box into which the user can type a query. Enter and
// Escape finish the input and are reported through the done handler.
type Prompt struct {
	*Box

	label       string
	text        string
	placeholder string

	labelStyle       tcell.Style
	fieldStyle       tcell.Style
	placeholderStyle tcell.Style

	// Called whenever the text changed.
	changed func(text string)
	// Called with tcell.KeyEnter or tcell.KeyEscape.
	done func(key tcell.Key)
}

// NewPrompt returns a new prompt.
func NewPrompt() *Prompt {
	return &Prompt{
		Box:              NewBox(),
		labelStyle:       tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
		fieldStyle:       tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		placeholderStyle: tcell.StyleDefault.Foreground(Styles.TertiaryTextColor).Dim(true),
	}
}

// SetLabel sets the text displayed before the input area.
func (p *Prompt) SetLabel(label string) *Prompt {
	p.label = label
	p.MarkDirty()
	return p
}

// SetPlaceholder sets the text displayed while the input is empty.
func (p *Prompt) SetPlaceholder(text string) *Prompt {
	p.placeholder = text
	p.MarkDirty()
	return p
}

// SetText replaces the input. The changed handler is not called.
func (p *Prompt) SetText(text string) *Prompt {
	p.text = text
	p.MarkDirty()
	return p
}

// GetText returns the current input.
func (p *Prompt) GetText() string {
	return p.text
}

// SetChangedFunc sets a handler called whenever the text changes.
func (p *Prompt) SetChangedFunc(handler func(text string)) *Prompt {
	p.changed = handler
	return p
}

// SetDoneFunc sets a handler called when the user presses Enter or Escape.
func (p *Prompt) SetDoneFunc(handler func(key tcell.Key)) *Prompt {
	p.done = handler
	return p
}

// Draw draws this primitive onto the screen.
func (p *Prompt) Draw(screen tcell.Screen) {
	p.DrawForSubclass(screen, p)

	x, y, width, height := p.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	_, labelWidth := PrintStyled(screen, p.label, x, y, width, AlignmentLeft, p.labelStyle)
	x += labelWidth
	width -= labelWidth
	if width <= 0 {
		return
	}

	if p.text == "" {
		PrintStyled(screen, p.placeholder, x, y, width, AlignmentLeft, p.placeholderStyle)
		if p.HasFocus() {
			screen.ShowCursor(x, y)
		}
		return
	}

	// Keep the end of the text and the cursor in view.
	text := p.text
	for StringWidth(text) >= width {
		_, text, _ = nextCluster(text)
	}
	_, textWidth := PrintStyled(screen, text, x, y, width, AlignmentLeft, p.fieldStyle)
	if p.HasFocus() {
		screen.ShowCursor(x+textWidth, y)
	}
}

// InputHandler returns the handler for this primitive.
func (p *Prompt) InputHandler(event *tcell.EventKey) Command {
	switch event.Key() {
	case tcell.KeyRune:
		p.setText(p.text + event.Str())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		p.setText(trimLastCluster(p.text))
	case tcell.KeyCtrlU:
		p.setText("")
	case tcell.KeyEnter, tcell.KeyEscape:
		if p.done != nil {
			p.done(event.Key())
		}
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler takes the focus on click.
func (p *Prompt) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftClick && p.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: p}
	}
	return nil, nil
}

func (p *Prompt) setText(text string) {
	if text == p.text {
		return
	}
	p.text = text
	p.MarkDirty()
	if p.changed != nil {
		p.changed(text)
	}
}

// trimLastCluster removes the last grapheme cluster of text.
func trimLastCluster(text string) string {
	end := 0
	for rest := text; rest != ""; {
		var cluster string
		cluster, rest, _ = nextCluster(rest)
		if rest == "" {
			break
		}
		end += len(cluster)
	}
	return text[:end]
}

var _ Primitive = &Prompt{}
