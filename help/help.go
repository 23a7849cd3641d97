// Package help renders a single-line summary of the active key bindings.
package help

import (
	"github.com/gdamore/tcell/v3"

	"github.com/korok/strip"
	"github.com/korok/strip/keybind"
)

// KeyMap is implemented by everything that exposes key bindings.
type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
}

// Bindings is a plain list of bindings satisfying KeyMap.
type Bindings []keybind.Keybind

// ShortHelp returns b.
func (b Bindings) ShortHelp() []keybind.Keybind {
	return b
}

// Join returns a KeyMap listing the bindings of all maps in order.
func Join(maps ...KeyMap) KeyMap {
	var joined Bindings
	for _, m := range maps {
		if m != nil {
			joined = append(joined, m.ShortHelp()...)
		}
	}
	return joined
}

type Help struct {
	*strip.Box
	Styles Styles

	keyMap    KeyMap
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       strip.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetSeparator sets the separator between bindings.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

// SetEllipsis sets the marker appended when bindings are left out.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	if h.keyMap == nil {
		return
	}
	x, y, width, height := h.GetInnerRect()
	if height <= 0 {
		return
	}
	h.drawSegments(screen, x, y, width, h.segments(h.keyMap.ShortHelp(), width))
}

// Line returns the help line for width as plain text.
func (h *Help) Line(width int) string {
	if h.keyMap == nil {
		return ""
	}
	var line string
	for _, s := range h.segments(h.keyMap.ShortHelp(), width) {
		line += s.text
	}
	return line
}

type segment struct {
	text  string
	style tcell.Style
}

// segments lays out as many enabled bindings as fit into maxWidth. If some are
// left out, an ellipsis is appended when it fits.
func (h *Help) segments(bindings []keybind.Keybind, maxWidth int) []segment {
	var items [][]segment
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		if item := itemSegments(kb, h.Styles.KeyStyle, h.Styles.DescStyle); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sep := segment{text: h.separator, style: h.Styles.SeparatorStyle}
	if sep.text == "" {
		sep.text = " "
	}

	out := append([]segment(nil), items[0]...)
	if maxWidth > 0 && segmentsWidth(out) > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(append(append([]segment(nil), out...), sep), item...)
		if maxWidth > 0 && segmentsWidth(candidate) > maxWidth {
			return append(out, h.tail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (h *Help) tail(current []segment, maxWidth int) []segment {
	if h.ellipsis == "" {
		return nil
	}
	tail := []segment{{text: " " + h.ellipsis, style: h.Styles.EllipsisStyle}}
	if segmentsWidth(current)+segmentsWidth(tail) <= maxWidth {
		return tail
	}
	return nil
}

func (h *Help) drawSegments(screen tcell.Screen, x, y, width int, segments []segment) {
	remaining := width
	for _, s := range segments {
		if s.text == "" || remaining <= 0 {
			continue
		}
		_, printed := strip.PrintStyled(screen, s.text, x, y, remaining, strip.AlignmentLeft, s.style)
		x += printed
		remaining -= printed
	}
}

func itemSegments(kb keybind.Keybind, keyStyle, descStyle tcell.Style) []segment {
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{{text: help.Desc, style: descStyle}}
	case help.Desc == "":
		return []segment{{text: help.Key, style: keyStyle}}
	default:
		return []segment{{text: help.Key, style: keyStyle}, {text: " " + help.Desc, style: descStyle}}
	}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += strip.StringWidth(s.text)
	}
	return width
}
