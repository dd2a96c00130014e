package render

import (
	"io"
	"net/url"

	"parkour_scoreboard/counter"
	"parkour_scoreboard/scoreboard"
	"parkour_scoreboard/store"

	"github.com/pkg/errors"
)

// Site renders the pages of a dataset.
type Site struct {
	ds  *store.Dataset
	opt scoreboard.Options
}

func NewSite(ds *store.Dataset, opt scoreboard.Options) *Site {
	return &Site{
		ds:  ds,
		opt: opt,
	}
}

type indexPage struct {
	linker Linker

	Events []indexEvent
}

type indexEvent struct {
	Event   store.Event
	Players int
}

func (p *indexPage) EventHref(eventID string) string { return p.linker.Event(eventID) }
func (p *indexPage) Asset(path string) string       { return p.linker.Asset(path) }

type boardPage struct {
	*scoreboard.View
	board  *scoreboard.Board
	state  scoreboard.ViewState
	linker Linker

	Players int
}

func (p *boardPage) selectedID() string {
	for _, e := range p.board.Menu {
		if e.Unit == p.state.Selected {
			return e.ID
		}
	}
	return ""
}

func (p *boardPage) IndexHref() string { return p.linker.Index() }
func (p *boardPage) ListID() string    { return ListID(p.Param) }
func (p *boardPage) ImageID() string   { return ImageID(p.Param) }
func (p *boardPage) Asset(path string) string {
	return p.linker.Asset(path)
}

// UnitHref links a menu entry. Choosing an entry closes the menu.
func (p *boardPage) UnitHref(id string) string {
	return p.linker.Unit(p.Event.ID, p.Param, id, p.state.CloseMenu().MenuOpen)
}

func (p *boardPage) ToggleHref() string {
	return p.linker.Toggle(p.Event.ID, p.Param, p.selectedID(), p.state.ToggleMenu().MenuOpen)
}

func (s *Site) tables() counter.Tables {
	return counter.Tables{
		Maps:   s.ds.Maps,
		Link:   counter.LinkFor(s.ds.Kind),
		Links:  s.ds.Links,
		Scores: s.ds.Scores,
	}
}

// Players counts the distinct players of an event.
func (s *Site) Players(eventID string) (int, error) {
	players, err := counter.Count(s.tables(), eventID)
	if err != nil {
		return 0, errors.Wrapf(err, "counting players of %q", eventID)
	}
	return players.Len(), nil
}

// Index renders the list of events.
func (s *Site) Index(w io.Writer, l Linker) error {
	page := &indexPage{
		linker: l,
		Events: make([]indexEvent, 0, len(s.ds.Events)),
	}

	for _, e := range s.ds.Events {
		n, err := s.Players(e.ID)
		if err != nil {
			return err
		}
		page.Events = append(page.Events, indexEvent{Event: e, Players: n})
	}

	return execute(w, tmplIndex, page)
}

// Board renders the scoreboard of an event. The query selects the table
// (map= or route=) and may open the menu (menu=open).
func (s *Site) Board(w io.Writer, eventID string, query url.Values, l Linker) error {
	b, err := scoreboard.New(s.ds, eventID, s.opt)
	if err != nil {
		return err
	}

	state := b.Initial(query)
	if query.Get("menu") == "open" {
		state = state.OpenMenu()
	}

	return s.renderBoard(w, b, state, l)
}

func (s *Site) renderBoard(w io.Writer, b *scoreboard.Board, state scoreboard.ViewState, l Linker) error {
	n, err := s.Players(b.Event.ID)
	if err != nil {
		return err
	}

	page := &boardPage{
		View:    b.Render(state),
		board:   b,
		state:   state,
		linker:  l,
		Players: n,
	}
	return execute(w, tmplBoard, page)
}
