package store

type Event struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Events []Event

// Map is one map of an event. MapName holds the map code (mp_*).
type Map struct {
	ID      string            `json:"id"`
	MapName string            `json:"map_name,omitempty"`
	Perks   map[string]string `json:"perks,omitempty"`
}

// Link is a map configuration or a map route. Configurations carry no name.
type Link struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ScoreEntry struct {
	Name string  `json:"name"`
	Time float32 `json:"time"`
}

// Maps: event id -> maps
type Maps map[string][]Map

// Links: map id -> configurations or routes
type Links map[string][]Link

// Scores: terminal id -> entries
type Scores map[string][]ScoreEntry

func (m Maps) IDs(eventID string) (ids []string, ok bool) {
	maps, ok := m[eventID]
	if !ok {
		return nil, false
	}

	ids = make([]string, len(maps))
	for i, v := range maps {
		ids[i] = v.ID
	}
	return ids, true
}

func (l Links) IDs(mapID string) (ids []string, ok bool) {
	links, ok := l[mapID]
	if !ok {
		return nil, false
	}

	ids = make([]string, len(links))
	for i, v := range links {
		ids[i] = v.ID
	}
	return ids, true
}
