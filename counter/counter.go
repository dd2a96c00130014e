package counter

import (
	"fmt"
	"io"
	"strings"

	"parkour_scoreboard/store"
)

// Link names the table between maps and scores.
type Link struct {
	Title    string // in file diagnostics
	Name     string // in lookup diagnostics and logs
	ScoreKey string // in missing-score diagnostics
}

var (
	Configurations = &Link{Title: "Configurations", Name: "configuration", ScoreKey: "config"}
	Routes         = &Link{Title: "Routes", Name: "route", ScoreKey: "route"}
)

func LinkFor(kind store.LinkKind) *Link {
	switch kind {
	case store.LinkConfigurations:
		return Configurations
	case store.LinkRoutes:
		return Routes
	}
	return nil
}

func scoreKey(link *Link) string {
	if link == nil {
		return "map"
	}
	return link.ScoreKey
}

// Tables holds already loaded data. Link and Links are nil when scores are
// keyed by map id.
type Tables struct {
	Maps   store.Maps
	Link   *Link
	Links  store.Links
	Scores store.Scores
}

// Count returns the distinct players of every score table reachable from
// eventID. Any broken reference fails the whole count.
func Count(t Tables, eventID string) (*Players, error) {
	ids, err := resolveEvent(t.Maps, eventID)
	if err != nil {
		return nil, err
	}

	if t.Link != nil {
		ids, err = resolveLinks(t.Links, t.Link, ids)
		if err != nil {
			return nil, err
		}
	}

	return collect(t.Scores, t.Link, ids)
}

func resolveEvent(maps store.Maps, eventID string) ([]string, error) {
	ids, ok := maps.IDs(eventID)
	if !ok {
		return nil, newError(ExitEvent, nil, `Event not found (input id was "%s").`, eventID)
	}
	return ids, nil
}

func resolveLinks(links store.Links, link *Link, mapIDs []string) ([]string, error) {
	ids := make([]string, 0, len(mapIDs))
	for _, mapID := range mapIDs {
		linkIDs, ok := links.IDs(mapID)
		if !ok {
			return nil, newError(ExitLinks, nil, `No %s found (map id was "%s").`, link.Name, mapID)
		}
		ids = append(ids, linkIDs...)
	}
	return ids, nil
}

func collect(scores store.Scores, link *Link, ids []string) (*Players, error) {
	players := NewPlayers()
	for _, id := range ids {
		entries, ok := scores[id]
		if !ok {
			return nil, newError(ExitScores, nil, "Scores not found for %s id=%s.", scoreKey(link), id)
		}
		for _, entry := range entries {
			players.Add(entry.Name)
		}
	}
	return players, nil
}

// Options of one counting run. LinksPath and Link stay empty for the
// two-file form.
type Options struct {
	MapsPath   string
	LinksPath  string
	Link       *Link
	ScoresPath string
	EventID    string
}

// Run loads each file right before it is needed, writes progress lines and
// the final count to w, and returns the count. Failures are *Error.
func Run(w io.Writer, opt Options) (int, error) {
	maps, err := store.LoadMaps(opt.MapsPath)
	if err != nil {
		return 0, loadError(ExitMapsFile, "Maps", opt.MapsPath, err)
	}

	ids, err := resolveEvent(maps, opt.EventID)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(w, "Retrieved map IDs: %s\n", formatIDs(ids))

	if opt.Link != nil {
		links, err := store.LoadLinks(opt.LinksPath)
		if err != nil {
			return 0, loadError(ExitLinksFile, opt.Link.Title, opt.LinksPath, err)
		}

		ids, err = resolveLinks(links, opt.Link, ids)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(w, "Retrieved %s IDs: %s\n", opt.Link.Name, formatIDs(ids))
	}

	scores, err := store.LoadScores(opt.ScoresPath)
	if err != nil {
		return 0, loadError(ExitScoresFile, "Scores", opt.ScoresPath, err)
	}

	players, err := collect(scores, opt.Link, ids)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "Unique player count: %d\n", players.Len())
	return players.Len(), nil
}

func loadError(code int, title string, path string, err error) *Error {
	if store.IsNotExist(err) {
		return newError(code, err, `%s file not found (input path was "%s").`, title, path)
	}
	return newError(code, err, `Failed reading %s file "%s" [%v].`, strings.ToLower(title), path, err)
}

// formatIDs prints ids as ['a', 'b'].
func formatIDs(ids []string) string {
	return "['" + strings.Join(ids, "', '") + "']"
}
