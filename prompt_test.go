package strip

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestPromptInput(t *testing.T) {
	t.Parallel()

	p := NewPrompt().SetLabel("Find: ")
	var changes []string
	var done []tcell.Key
	p.SetChangedFunc(func(text string) { changes = append(changes, text) })
	p.SetDoneFunc(func(key tcell.Key) { done = append(done, key) })

	for _, s := range []string{"a", "d", "é"} {
		assert.Equal(t, RedrawCommand{}, p.InputHandler(tcell.NewEventKey(tcell.KeyRune, s, tcell.ModNone)))
	}
	assert.Equal(t, "adé", p.GetText())

	p.InputHandler(tcell.NewEventKey(tcell.KeyBackspace, "", tcell.ModNone))
	assert.Equal(t, "ad", p.GetText())

	p.InputHandler(tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone))
	p.InputHandler(tcell.NewEventKey(tcell.KeyEscape, "", tcell.ModNone))
	assert.Equal(t, []tcell.Key{tcell.KeyEnter, tcell.KeyEscape}, done)

	p.SetText("")
	p.InputHandler(tcell.NewEventKey(tcell.KeyBackspace, "", tcell.ModNone))
	assert.Equal(t, []string{"a", "ad", "adé", "ad"}, changes, "SetText and no-op edits are not reported")

	assert.Nil(t, p.InputHandler(tcell.NewEventKey(tcell.KeyTab, "", tcell.ModNone)))
}

func TestTrimLastCluster(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", trimLastCluster(""))
	assert.Equal(t, "", trimLastCluster("x"))
	assert.Equal(t, "ab", trimLastCluster("abc"))
	assert.Equal(t, "a", trimLastCluster("a🇩🇪"))
}
