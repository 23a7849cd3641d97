package main

import (
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v3"

	"github.com/korok/strip"
	"github.com/korok/strip/help"
	"github.com/korok/strip/internal/config"
	"github.com/korok/strip/internal/contacts"
	"github.com/korok/strip/keybind"
	"github.com/korok/strip/layers"
	"github.com/korok/strip/mediator"
)

const (
	cardHeight = 7
	findLayer  = "find"
)

type appKeyMap struct {
	Quit  keybind.Keybind
	Find  keybind.Keybind
	Focus keybind.Keybind
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit:  keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
		Find:  keybind.NewKeybind(keybind.WithKeys("/"), keybind.WithHelp("/", "find")),
		Focus: keybind.NewKeybind(keybind.WithKeys("tab"), keybind.WithHelp("tab", "switch")),
	}
}

func (k appKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Find, k.Focus, k.Quit}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The terminal belongs to the UI while it runs.
	log.SetOutput(io.Discard)
	if cfg.Log.Path != "" {
		f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	list, err := contacts.Load(cfg.Data.Path, cfg.Display.DensityScale)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("load contacts: %v", err)
	}
	repo := contacts.NewRepo(list)
	log.Printf("loaded %d contacts", repo.Len())

	app := strip.NewApplication()
	keys := defaultAppKeyMap()

	carousel := strip.NewStrip().
		SetDensity(cfg.Display.Density).
		SetSnapTolerance(cfg.Display.SnapTolerance).
		SetAdapter(cardAdapter{repo: repo, width: cfg.Display.ItemWidth})

	indicator := strip.NewIndicator().SetCount(repo.Len())
	indicator.SetSelectedFunc(func(index int) {
		carousel.TouchDown()
		carousel.CenterOn(index)
	})

	pager := strip.NewPager().
		SetDensity(cfg.Display.Density).
		SetSource(newPageSource(repo))
	pager.SetBorders(strip.BordersTop)

	carousel.SetChangedFunc(func(index int) {
		indicator.SetSelected(index)
		log.Printf("centered %d", index)
	})
	pager.SetChangedFunc(func(index int) {
		log.Printf("page %d", index)
	})

	m := mediator.Sync(carousel, pager)
	defer m.Unsync()

	footer := help.New().SetKeyMap(help.Join(carousel.Keys, pager.Keys, keys))

	rows := strip.NewRows().
		AddItem(carousel, cardHeight, 0, true).
		AddItem(indicator, 1, 0, false).
		AddItem(pager, 0, 1, false).
		AddItem(footer, 1, 0, false)

	prompt := strip.NewPrompt().
		SetLabel("Find: ").
		SetPlaceholder("name")
	prompt.SetBorders(strip.BordersAll)
	prompt.SetTitle("Jump to contact")

	root := layers.New().
		AddLayer(rows, layers.WithName("main")).
		AddLayer(newCentered(prompt, 40, 3), layers.WithName(findLayer), layers.WithVisible(false), layers.WithOverlay())

	prompt.SetDoneFunc(func(key tcell.Key) {
		query := prompt.GetText()
		prompt.SetText("")
		root.HideLayer(findLayer)
		if key != tcell.KeyEnter {
			return
		}
		index, ok := repo.Find(query)
		if !ok {
			log.Printf("find %q: no match", query)
			return
		}
		log.Printf("find %q: %d", query, index)
		carousel.TouchDown()
		carousel.CenterOn(index)
	})

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if root.GetVisible(findLayer) {
			return event
		}
		switch {
		case keybind.Matches(event, keys.Quit):
			app.Stop()
			return nil
		case keybind.Matches(event, keys.Find):
			root.ShowLayer(findLayer)
			return nil
		case keybind.Matches(event, keys.Focus):
			if carousel.HasFocus() {
				app.SetFocus(pager)
			} else {
				app.SetFocus(carousel)
			}
			return nil
		}
		return event
	})

	app.SetRoot(root).
		AddTicker(carousel).
		AddTicker(pager)
	if err := app.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("run: %v", err)
	}
}
