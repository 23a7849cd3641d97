package help

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/korok/strip/keybind"
)

func testKeyMap() KeyMap {
	return Bindings{
		keybind.NewKeybind(keybind.WithKeys("q"), keybind.WithHelp("q", "quit")),
		keybind.NewKeybind(keybind.WithKeys("x"), keybind.WithHelp("x", "hidden"), keybind.WithDisabled()),
		keybind.NewKeybind(keybind.WithKeys("/"), keybind.WithHelp("/", "find")),
		keybind.NewKeybind(keybind.WithKeys("n")),
	}
}

func TestHelpLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"unbounded", 0, "q quit • / find"},
		{"fits exactly", 15, "q quit • / find"},
		{"ellipsis for the rest", 10, "q quit …"},
		{"no room for the ellipsis", 7, "q quit"},
		{"nothing fits", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := New().SetKeyMap(testKeyMap())
			assert.Equal(t, tt.want, h.Line(tt.width))
		})
	}
}

func TestHelpSeparator(t *testing.T) {
	t.Parallel()

	h := New().SetKeyMap(testKeyMap()).SetSeparator(" | ").SetEllipsis("")
	assert.Equal(t, "q quit | / find", h.Line(0))
	assert.Equal(t, "q quit", h.Line(10))
	assert.Equal(t, "", New().Line(10))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	a := Bindings{keybind.NewKeybind(keybind.WithKeys("a"), keybind.WithHelp("a", "one"))}
	b := Bindings{keybind.NewKeybind(keybind.WithKeys("b"), keybind.WithHelp("b", "two"))}

	joined := Join(a, nil, b).ShortHelp()
	assert.Len(t, joined, 2)
	assert.Equal(t, "two", joined[1].Help().Desc)
}
