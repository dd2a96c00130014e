package store

import (
	"path/filepath"
	"sort"

	"parkour_scoreboard/logging"

	"github.com/pkg/errors"
)

type LinkKind string

const (
	LinkNone           LinkKind = "none"
	LinkConfigurations LinkKind = "configurations"
	LinkRoutes         LinkKind = "routes"
)

const (
	EventsFile = "events.json"
	MapsFile   = "maps.json"
	ScoresFile = "scores.json"
)

func ParseLinkKind(s string) (LinkKind, error) {
	switch LinkKind(s) {
	case LinkNone, LinkConfigurations, LinkRoutes:
		return LinkKind(s), nil
	case "":
		return LinkNone, nil
	}
	return "", errors.Errorf("unknown link kind %q", s)
}

func (k LinkKind) File() string {
	if k == LinkNone {
		return ""
	}
	return string(k) + ".json"
}

// Dataset is every table of a data directory, loaded once.
type Dataset struct {
	Kind   LinkKind
	Events Events
	Maps   Maps
	Links  Links
	Scores Scores
}

type DataConfig struct {
	Dir  string
	Kind LinkKind
}

// Open loads a data directory. events.json is optional; the other files
// required by the link kind are not.
func Open(conf DataConfig) (*Dataset, error) {
	ds := &Dataset{
		Kind: conf.Kind,
	}

	var err error

	ds.Maps, err = LoadMaps(filepath.Join(conf.Dir, MapsFile))
	if err != nil {
		return nil, err
	}

	if conf.Kind != LinkNone {
		ds.Links, err = LoadLinks(filepath.Join(conf.Dir, conf.Kind.File()))
		if err != nil {
			return nil, err
		}
	}

	ds.Scores, err = LoadScores(filepath.Join(conf.Dir, ScoresFile))
	if err != nil {
		return nil, err
	}

	ds.Events, err = LoadEvents(filepath.Join(conf.Dir, EventsFile))
	if err != nil {
		if !IsNotExist(err) {
			return nil, err
		}

		logging.Log.Infof("%s does not exist, listing events from %s", EventsFile, MapsFile)
		ds.Events = ds.eventsFromMaps()
	}

	logging.Log.Infof("Loaded %d events, %d score tables from %q.", len(ds.Events), len(ds.Scores), conf.Dir)
	return ds, nil
}

func (ds *Dataset) eventsFromMaps() Events {
	events := make(Events, 0, len(ds.Maps))
	for id := range ds.Maps {
		events = append(events, Event{ID: id, Name: id})
	}
	sort.Slice(events, func(i, k int) bool { return events[i].ID < events[k].ID })
	return events
}

func (ds *Dataset) Event(id string) (Event, bool) {
	for _, e := range ds.Events {
		if e.ID == id {
			return e, true
		}
	}
	if _, ok := ds.Maps[id]; ok {
		return Event{ID: id, Name: id}, true
	}
	return Event{}, false
}
