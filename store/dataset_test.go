package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
	return dir
}

func TestLoadSkipsBOM(t *testing.T) {
	dir := writeData(t, map[string]string{
		"scores.json": "\xef\xbb\xbf" + `{"R1":[{"name":"a","time":12.5}]}`,
	})

	scores, err := LoadScores(filepath.Join(dir, "scores.json"))
	require.NoError(t, err)
	require.Len(t, scores["R1"], 1)
	assert.Equal(t, "a", scores["R1"][0].Name)
	assert.Equal(t, float32(12.5), scores["R1"][0].Time)
}

func TestLoadErrors(t *testing.T) {
	dir := writeData(t, map[string]string{
		"broken.json": `{"E1":[`,
		"empty.json":  ``,
	})

	_, err := LoadMaps(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, IsNotExist(err))

	_, err = LoadMaps(filepath.Join(dir, "broken.json"))
	require.Error(t, err)
	assert.False(t, IsNotExist(err))

	_, err = LoadMaps(filepath.Join(dir, "empty.json"))
	require.Error(t, err)
	assert.False(t, IsNotExist(err))
}

func TestOpenRoutes(t *testing.T) {
	dir := writeData(t, map[string]string{
		"events.json": `[{"id":"E1","name":"Spring cup"}]`,
		"maps.json":   `{"E1":[{"id":"M1","map_name":"mp_rise","perks":{"speed":"fast"}}]}`,
		"routes.json": `{"M1":[{"id":"R1","name":"Rooftops"}]}`,
		"scores.json": `{"R1":[{"name":"a","time":40.1}]}`,
	})

	ds, err := Open(DataConfig{Dir: dir, Kind: LinkRoutes})
	require.NoError(t, err)

	assert.Equal(t, LinkRoutes, ds.Kind)
	assert.Equal(t, Events{{ID: "E1", Name: "Spring cup"}}, ds.Events)
	assert.Equal(t, "mp_rise", ds.Maps["E1"][0].MapName)
	assert.Equal(t, "fast", ds.Maps["E1"][0].Perks["speed"])
	assert.Equal(t, "Rooftops", ds.Links["M1"][0].Name)

	e, ok := ds.Event("E1")
	assert.True(t, ok)
	assert.Equal(t, "Spring cup", e.Name)

	_, ok = ds.Event("E2")
	assert.False(t, ok)
}

func TestOpenWithoutEventsFile(t *testing.T) {
	dir := writeData(t, map[string]string{
		"maps.json":   `{"B":[{"id":"M2"}],"A":[{"id":"M1"}]}`,
		"scores.json": `{"M1":[],"M2":[]}`,
	})

	ds, err := Open(DataConfig{Dir: dir, Kind: LinkNone})
	require.NoError(t, err)
	assert.Equal(t, Events{{ID: "A", Name: "A"}, {ID: "B", Name: "B"}}, ds.Events)
	assert.Nil(t, ds.Links)
}

func TestOpenMissingLinks(t *testing.T) {
	dir := writeData(t, map[string]string{
		"maps.json":   `{}`,
		"scores.json": `{}`,
	})

	_, err := Open(DataConfig{Dir: dir, Kind: LinkConfigurations})
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestParseLinkKind(t *testing.T) {
	k, err := ParseLinkKind("routes")
	require.NoError(t, err)
	assert.Equal(t, LinkRoutes, k)
	assert.Equal(t, "routes.json", k.File())

	k, err = ParseLinkKind("")
	require.NoError(t, err)
	assert.Equal(t, LinkNone, k)
	assert.Equal(t, "", k.File())

	_, err = ParseLinkKind("paths")
	assert.Error(t, err)
}

func TestIDs(t *testing.T) {
	maps := Maps{"E": {{ID: "M1"}, {ID: "M2"}}}
	ids, ok := maps.IDs("E")
	assert.True(t, ok)
	assert.Equal(t, []string{"M1", "M2"}, ids)

	_, ok = maps.IDs("X")
	assert.False(t, ok)

	links := Links{"M1": {{ID: "R1"}}}
	ids, ok = links.IDs("M1")
	assert.True(t, ok)
	assert.Equal(t, []string{"R1"}, ids)
}
