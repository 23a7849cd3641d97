package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"left", "left"},
		{"G", "G"},
		{"Ctrl+B", "ctrl+b"},
		{"control + shift + X", "ctrl+shift+x"},
		{"ctrl+ctrl+a", "ctrl+a"},
		{"Escape", "esc"},
		{"PageDown", "pgdn"},
		{"space", " "},
		{"  ", ""},
		{"ctrl+", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeKey(tt.in))
		})
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	next := NewKeybind(WithKeys("right", "l"), WithHelp("→/l", "next"))
	quit := NewKeybind(WithKeys("q", "ctrl+c"))
	off := NewKeybind(WithKeys("x"), WithDisabled())

	tests := []struct {
		name  string
		event *tcell.EventKey
		kbs   []Keybind
		want  bool
	}{
		{"special key", tcell.NewEventKey(tcell.KeyRight, "", tcell.ModNone), []Keybind{next}, true},
		{"rune", tcell.NewEventKey(tcell.KeyRune, "l", tcell.ModNone), []Keybind{next}, true},
		{"case sensitive rune", tcell.NewEventKey(tcell.KeyRune, "L", tcell.ModNone), []Keybind{next}, false},
		{"any of several", tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone), []Keybind{next, quit}, true},
		{"modifier", tcell.NewEventKey(tcell.KeyRune, "c", tcell.ModCtrl), []Keybind{quit}, true},
		{"disabled", tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone), []Keybind{off}, false},
		{"nil event", nil, []Keybind{next}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Matches(tt.event, tt.kbs...))
		})
	}
}

func TestKeybindState(t *testing.T) {
	t.Parallel()

	k := NewKeybind(WithKeys("Home", "g"), WithHelp("home/g", "first"))
	assert.Equal(t, []string{"home", "g"}, k.Keys())
	assert.Equal(t, Help{Key: "home/g", Desc: "first"}, k.Help())
	assert.True(t, k.Enabled())

	k.SetEnabled(false)
	assert.False(t, k.Enabled())
	k.SetEnabled(true)
	k.SetKeys()
	assert.False(t, k.Enabled(), "a binding without keys is never enabled")
}
