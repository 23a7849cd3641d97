package main

import (
	"github.com/gdamore/tcell/v3"

	"github.com/korok/strip"
	"github.com/korok/strip/internal/contacts"
)

// card presents one contact in the avatar strip.
type card struct {
	*strip.Box

	contact  contacts.Contact
	centered bool
}

func newCard() *card {
	c := &card{Box: strip.NewBox()}
	c.SetBorders(strip.BordersAll)
	return c
}

func (c *card) bind(contact contacts.Contact) {
	c.contact = contact
	c.MarkDirty()
}

// SetCentered implements strip.Centerable.
func (c *card) SetCentered(centered bool) {
	if c.centered == centered {
		return
	}
	c.centered = centered
	style := tcell.StyleDefault.Foreground(strip.Styles.BorderColor)
	if centered {
		style = tcell.StyleDefault.Foreground(strip.Styles.CenteredColor)
	}
	c.SetBorderStyle(style)
}

func (c *card) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	initials := tcell.StyleDefault.Foreground(strip.Styles.SecondaryTextColor).Bold(true)
	name := tcell.StyleDefault.Foreground(strip.Styles.PrimaryTextColor)
	avatar := tcell.StyleDefault.Foreground(strip.Styles.TertiaryTextColor).Dim(true)
	if c.centered {
		initials = initials.Foreground(strip.Styles.CenteredColor)
	}

	mid := y + (height-1)/2
	strip.PrintStyled(screen, c.contact.Initials(), x, mid-1, width, strip.AlignmentCenter, initials)
	strip.PrintStyled(screen, strip.Truncate(c.contact.FirstName, width), x, mid, width, strip.AlignmentCenter, name)
	if height > 3 {
		strip.PrintStyled(screen, strip.Truncate(c.contact.Avatar, width), x, y+height-1, width, strip.AlignmentCenter, avatar)
	}
}

// cardAdapter feeds the contacts to the avatar strip.
type cardAdapter struct {
	repo  *contacts.Repo
	width int
}

func (a cardAdapter) ItemCount() int {
	return a.repo.Len()
}

func (a cardAdapter) ItemWidth(index, height int) int {
	return a.width
}

func (a cardAdapter) CreateItem() strip.Primitive {
	return newCard()
}

func (a cardAdapter) BindItem(item strip.Primitive, index int) {
	contact, _ := a.repo.At(index)
	item.(*card).bind(contact)
}

// page presents the details of one contact in the pager.
type page struct {
	*strip.Box

	contact contacts.Contact
}

func newPage(contact contacts.Contact) *page {
	p := &page{Box: strip.NewBox(), contact: contact}
	p.SetBorderPadding(1, 0, 2, 2)
	return p
}

func (p *page) Draw(screen tcell.Screen) {
	p.DrawForSubclass(screen, p)

	x, y, width, height := p.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	bottom := y + height

	strip.PrintStyled(screen, p.contact.Name(), x, y, width, strip.AlignmentLeft, tcell.StyleDefault.Foreground(strip.Styles.PrimaryTextColor).Bold(true))
	y++
	if y < bottom {
		strip.Print(screen, p.contact.Title, x, y, width, strip.AlignmentLeft, strip.Styles.SecondaryTextColor)
	}
	y += 2
	for _, line := range strip.WordWrap(p.contact.Introduction, width) {
		if y >= bottom {
			break
		}
		strip.Print(screen, line, x, y, width, strip.AlignmentLeft, strip.Styles.PrimaryTextColor)
		y++
	}
}

// pageSource feeds the contacts to the detail pager. Pages are built on first
// use.
type pageSource struct {
	repo  *contacts.Repo
	pages map[int]*page
}

func newPageSource(repo *contacts.Repo) *pageSource {
	return &pageSource{repo: repo, pages: make(map[int]*page)}
}

func (s *pageSource) PageCount() int {
	return s.repo.Len()
}

func (s *pageSource) Page(index int) strip.Primitive {
	if p, ok := s.pages[index]; ok {
		return p
	}
	contact, ok := s.repo.At(index)
	if !ok {
		return nil
	}
	p := newPage(contact)
	s.pages[index] = p
	return p
}

// centered draws a fixed-size primitive in the middle of its rect.
type centered struct {
	*strip.Box

	item          strip.Primitive
	width, height int
}

func newCentered(item strip.Primitive, width, height int) *centered {
	c := &centered{Box: strip.NewBox(), item: item, width: width, height: height}
	c.SetDontClear(true)
	return c
}

func (c *centered) Draw(screen tcell.Screen) {
	x, y, width, height := c.GetRect()
	w, h := min(c.width, width), min(c.height, height)
	c.item.SetRect(x+(width-w)/2, y+(height-h)/2, w, h)
	c.item.Draw(screen)
}

func (c *centered) Focus(delegate func(p strip.Primitive)) {
	delegate(c.item)
}

func (c *centered) HasFocus() bool {
	return c.item.HasFocus()
}

func (c *centered) InputHandler(event *tcell.EventKey) strip.Command {
	return c.item.InputHandler(event)
}

func (c *centered) MouseHandler(action strip.MouseAction, event *tcell.EventMouse) (strip.Primitive, strip.Command) {
	return c.item.MouseHandler(action, event)
}
