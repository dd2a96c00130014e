package scoreboard

import (
	"parkour_scoreboard/store"

	"github.com/pkg/errors"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNoTables      = errors.New("event has no score table")
	ErrMissingLinks  = errors.New("map has no configuration or route")
	ErrMissingScores = errors.New("no scores for table")
)

// Layout decides how menu entries are identified and which query
// parameter preselects a table.
type Layout int

const (
	LayoutMap Layout = iota
	LayoutRoute
)

func (l Layout) Param() string {
	if l == LayoutRoute {
		return "route"
	}
	return "map"
}

func (l Layout) Attr() string {
	if l == LayoutRoute {
		return "result_id"
	}
	return "map_id"
}

type Options struct {
	FallbackToCode bool
	UnknownImage   bool
}

// Unit is one selectable score table.
type Unit struct {
	ID      string
	MapID   string
	MapCode string
	Name    string // route or configuration name
	Entries []store.ScoreEntry
}

func (u *Unit) Rows() int {
	return len(u.Entries)
}

type MenuEntry struct {
	ID   string
	Unit int
}

type Board struct {
	Event  store.Event
	Kind   store.LinkKind
	Layout Layout
	Units  []*Unit
	Menu   []MenuEntry

	opt Options
}

// New builds the tables of one event, one per terminal id, in file order.
func New(ds *store.Dataset, eventID string, opt Options) (*Board, error) {
	event, ok := ds.Event(eventID)
	if !ok {
		return nil, errors.Wrapf(ErrEventNotFound, "event %q", eventID)
	}
	maps, ok := ds.Maps[eventID]
	if !ok {
		return nil, errors.Wrapf(ErrEventNotFound, "event %q has no maps", eventID)
	}

	b := &Board{
		Event:  event,
		Kind:   ds.Kind,
		Layout: LayoutMap,
		opt:    opt,
	}
	if ds.Kind == store.LinkRoutes {
		b.Layout = LayoutRoute
	}

	for _, m := range maps {
		if ds.Kind == store.LinkNone {
			entries, ok := ds.Scores[m.ID]
			if !ok {
				return nil, errors.Wrapf(ErrMissingScores, "map %q", m.ID)
			}
			b.add(&Unit{ID: m.ID, MapID: m.ID, MapCode: m.MapName, Entries: entries})
			continue
		}

		links, ok := ds.Links[m.ID]
		if !ok {
			return nil, errors.Wrapf(ErrMissingLinks, "map %q", m.ID)
		}
		for _, link := range links {
			entries, ok := ds.Scores[link.ID]
			if !ok {
				return nil, errors.Wrapf(ErrMissingScores, "%s %q", ds.Kind, link.ID)
			}
			b.add(&Unit{ID: link.ID, MapID: m.ID, MapCode: m.MapName, Name: link.Name, Entries: entries})
		}
	}

	if len(b.Units) == 0 {
		return nil, errors.Wrapf(ErrNoTables, "event %q", eventID)
	}

	return b, nil
}

func (b *Board) add(u *Unit) {
	b.Menu = append(b.Menu, MenuEntry{ID: u.ID, Unit: len(b.Units)})
	b.Units = append(b.Units, u)
}

// Lookup returns the unit a menu entry points at.
func (b *Board) Lookup(id string) (int, bool) {
	for _, e := range b.Menu {
		if e.ID == id {
			return e.Unit, true
		}
	}
	return -1, false
}
