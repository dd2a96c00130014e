package scoreboard

import (
	"sort"

	"parkour_scoreboard/store"
	"parkour_scoreboard/titanfall"
)

type View struct {
	Event store.Event

	Param string
	Attr  string

	Header   Header
	MenuOpen bool
	Menu     []MenuItem
	Tables   []Table
}

type Header struct {
	MapName   string
	RouteName string
	Image     string
}

type MenuItem struct {
	ID         string
	MapCode    string
	MapName    string
	RouteName  string
	ConfigName string
	Label      string
	Rows       int
	Selected   bool
}

type Table struct {
	ID      string
	MapID   string
	Visible bool
	Rows    []Row
}

type Row struct {
	Position int
	Name     string
	Time     float32
}

// Label is the menu text of a map, followed by its route or configuration
// name when it has one.
func Label(mapCode string, name string, fallbackToCode bool) string {
	label := titanfall.MapName(mapCode, fallbackToCode)
	if name != "" {
		label += " - " + name
	}
	return label
}

// Render projects the board in the given state. The same state always
// renders the same view.
func (b *Board) Render(s ViewState) *View {
	v := &View{
		Event:    b.Event,
		Param:    b.Layout.Param(),
		Attr:     b.Layout.Attr(),
		MenuOpen: s.MenuOpen,
		Menu:     make([]MenuItem, 0, len(b.Menu)),
		Tables:   make([]Table, 0, len(b.Units)),
	}

	for i, u := range b.Units {
		v.Tables = append(v.Tables, Table{
			ID:      u.ID,
			MapID:   u.MapID,
			Visible: i == s.Selected,
			Rows:    rows(u.Entries),
		})
	}

	for _, e := range b.Menu {
		u := b.Units[e.Unit]

		item := MenuItem{
			ID:       e.ID,
			MapCode:  u.MapCode,
			MapName:  titanfall.MapName(u.MapCode, b.opt.FallbackToCode),
			Label:    Label(u.MapCode, u.Name, b.opt.FallbackToCode),
			Rows:     u.Rows(),
			Selected: e.Unit == s.Selected,
		}
		if b.Kind == store.LinkConfigurations {
			item.ConfigName = u.Name
		} else {
			item.RouteName = u.Name
		}
		v.Menu = append(v.Menu, item)
	}

	if s.Selected >= 0 && s.Selected < len(b.Units) {
		u := b.Units[s.Selected]
		v.Header = Header{
			MapName:   titanfall.MapName(u.MapCode, b.opt.FallbackToCode),
			RouteName: u.Name,
			Image:     titanfall.MapImage(u.MapCode, b.opt.UnknownImage),
		}
	}

	return v
}

func rows(entries []store.ScoreEntry) []Row {
	sorted := make([]store.ScoreEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, k int) bool { return sorted[i].Time < sorted[k].Time })

	r := make([]Row, len(sorted))
	for i, e := range sorted {
		r[i] = Row{
			Position: i + 1,
			Name:     e.Name,
			Time:     e.Time,
		}
	}
	return r
}
