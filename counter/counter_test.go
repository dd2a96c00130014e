package counter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"parkour_scoreboard/store"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func requireExitCode(t *testing.T, err error, code int) *Error {
	t.Helper()

	var ce *Error
	require.True(t, errors.As(err, &ce), "expected *counter.Error, got %v", err)
	assert.Equal(t, code, ce.Code)
	return ce
}

func entries(names ...string) []store.ScoreEntry {
	r := make([]store.ScoreEntry, len(names))
	for i, name := range names {
		r[i] = store.ScoreEntry{Name: name, Time: float32(10 + i)}
	}
	return r
}

func TestCountDistinctPlayers(t *testing.T) {
	tables := Tables{
		Maps: store.Maps{"E1": {{ID: "M1"}, {ID: "M2"}}},
		Scores: store.Scores{
			"M1": entries("a", "b", "c"),
			"M2": entries("d", "e"),
		},
	}

	players, err := Count(tables, "E1")
	require.NoError(t, err)
	assert.Equal(t, 5, players.Len())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, players.Names())

	// one name shared by two terminal ids
	tables.Scores["M2"] = entries("d", "a")
	players, err = Count(tables, "E1")
	require.NoError(t, err)
	assert.Equal(t, 4, players.Len())
}

func TestCountIsOrderIndependent(t *testing.T) {
	scores := store.Scores{
		"C1": entries("a", "b", "a"),
		"C2": entries("c", "b"),
		"C3": entries("d"),
	}
	links := store.Links{
		"M1": {{ID: "C1"}, {ID: "C2"}},
		"M2": {{ID: "C3"}},
	}

	forward, err := Count(Tables{
		Maps:   store.Maps{"E": {{ID: "M1"}, {ID: "M2"}}},
		Link:   Configurations,
		Links:  links,
		Scores: scores,
	}, "E")
	require.NoError(t, err)

	permuted, err := Count(Tables{
		Maps: store.Maps{"E": {{ID: "M2"}, {ID: "M1"}}},
		Link: Configurations,
		Links: store.Links{
			"M1": {{ID: "C2"}, {ID: "C1"}},
			"M2": {{ID: "C3"}},
		},
		Scores: store.Scores{
			"C1": entries("a", "a", "b"),
			"C2": entries("b", "c"),
			"C3": entries("d"),
		},
	}, "E")
	require.NoError(t, err)

	assert.Equal(t, 4, forward.Len())
	assert.Equal(t, forward.Len(), permuted.Len())
	assert.ElementsMatch(t, forward.Names(), permuted.Names())
}

func TestCountBrokenReferences(t *testing.T) {
	tables := Tables{
		Maps:   store.Maps{"E": {{ID: "M1"}}},
		Link:   Routes,
		Links:  store.Links{},
		Scores: store.Scores{},
	}

	_, err := Count(tables, "nope")
	ce := requireExitCode(t, err, ExitEvent)
	assert.Equal(t, `Event not found (input id was "nope").`, ce.Error())

	_, err = Count(tables, "E")
	ce = requireExitCode(t, err, ExitLinks)
	assert.Equal(t, `No route found (map id was "M1").`, ce.Error())

	tables.Links["M1"] = []store.Link{{ID: "R1", Name: "A"}}
	_, err = Count(tables, "E")
	ce = requireExitCode(t, err, ExitScores)
	assert.Equal(t, "Scores not found for route id=R1.", ce.Error())
}

func TestRunTwoFiles(t *testing.T) {
	dir := t.TempDir()
	maps := writeFile(t, dir, "events.json", `{"E1":[{"id":"M1"}]}`)
	scores := writeFile(t, dir, "scores.json", `{"M1":[{"name":"a"},{"name":"b"},{"name":"a"}]}`)

	var out bytes.Buffer
	n, err := Run(&out, Options{MapsPath: maps, ScoresPath: scores, EventID: "E1"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Retrieved map IDs: ['M1']\nUnique player count: 2\n", out.String())
}

func TestRunConfigurations(t *testing.T) {
	dir := t.TempDir()
	maps := writeFile(t, dir, "maps.json", `{"E1":[{"id":"M1","map_name":"mp_rise"},{"id":"M2","map_name":"mp_eden"}]}`)
	configs := writeFile(t, dir, "configurations.json", `{"M1":[{"id":"C1"},{"id":"C2"}],"M2":[{"id":"C3"}]}`)
	scores := writeFile(t, dir, "scores.json", `{
		"C1":[{"name":"a","time":12.5},{"name":"b","time":13}],
		"C2":[{"name":"b","time":20}],
		"C3":[{"name":"c","time":31.2}]
	}`)

	var out bytes.Buffer
	n, err := Run(&out, Options{
		MapsPath:   maps,
		LinksPath:  configs,
		Link:       Configurations,
		ScoresPath: scores,
		EventID:    "E1",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t,
		"Retrieved map IDs: ['M1', 'M2']\n"+
			"Retrieved configuration IDs: ['C1', 'C2', 'C3']\n"+
			"Unique player count: 3\n",
		out.String(),
	)
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	maps := writeFile(t, dir, "maps.json", `{"E1":[{"id":"M1"},{"id":"M2"}]}`)
	routes := writeFile(t, dir, "routes.json", `{"M1":[{"id":"R1","name":"Short"}]}`)
	fullRoutes := writeFile(t, dir, "routes_full.json", `{"M1":[{"id":"R1","name":"Short"}],"M2":[{"id":"R2","name":"Long"}]}`)
	scores := writeFile(t, dir, "scores.json", `{"R1":[{"name":"a","time":1}]}`)
	broken := writeFile(t, dir, "broken.json", `{"E1":`)
	missing := filepath.Join(dir, "missing.json")

	tests := []struct {
		name string
		opt  Options
		code int
		msg  string
	}{
		{
			name: "maps file missing",
			opt:  Options{MapsPath: missing, ScoresPath: scores, EventID: "E1"},
			code: ExitMapsFile,
			msg:  `Maps file not found (input path was "` + missing + `").`,
		},
		{
			name: "maps file malformed",
			opt:  Options{MapsPath: broken, ScoresPath: scores, EventID: "E1"},
			code: ExitMapsFile,
		},
		{
			name: "event not found",
			opt:  Options{MapsPath: maps, LinksPath: routes, Link: Routes, ScoresPath: scores, EventID: "E9"},
			code: ExitEvent,
			msg:  `Event not found (input id was "E9").`,
		},
		{
			name: "routes file missing",
			opt:  Options{MapsPath: maps, LinksPath: missing, Link: Routes, ScoresPath: scores, EventID: "E1"},
			code: ExitLinksFile,
			msg:  `Routes file not found (input path was "` + missing + `").`,
		},
		{
			name: "configurations file missing",
			opt:  Options{MapsPath: maps, LinksPath: missing, Link: Configurations, ScoresPath: scores, EventID: "E1"},
			code: ExitLinksFile,
			msg:  `Configurations file not found (input path was "` + missing + `").`,
		},
		{
			name: "map without route",
			opt:  Options{MapsPath: maps, LinksPath: routes, Link: Routes, ScoresPath: scores, EventID: "E1"},
			code: ExitLinks,
			msg:  `No route found (map id was "M2").`,
		},
		{
			name: "scores file missing",
			opt:  Options{MapsPath: maps, LinksPath: fullRoutes, Link: Routes, ScoresPath: missing, EventID: "E1"},
			code: ExitScoresFile,
			msg:  `Scores file not found (input path was "` + missing + `").`,
		},
		{
			name: "route without scores",
			opt:  Options{MapsPath: maps, LinksPath: fullRoutes, Link: Routes, ScoresPath: scores, EventID: "E1"},
			code: ExitScores,
			msg:  "Scores not found for route id=R2.",
		},
		{
			name: "map without scores",
			opt:  Options{MapsPath: maps, ScoresPath: scores, EventID: "E1"},
			code: ExitScores,
			msg:  "Scores not found for map id=M1.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Run(&out, tt.opt)
			ce := requireExitCode(t, err, tt.code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, ce.Error())
			}
			assert.NotContains(t, out.String(), "Unique player count")
		})
	}
}

func TestFormatIDs(t *testing.T) {
	assert.Equal(t, "['a', 'b']", formatIDs([]string{"a", "b"}))
	assert.Equal(t, "['a']", formatIDs([]string{"a"}))
	assert.Equal(t, "['']", formatIDs(nil))
}
