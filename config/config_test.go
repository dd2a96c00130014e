package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	conf := read(v)
	assert.Equal(t, "./data", conf.Data.Dir)
	assert.Equal(t, "routes", conf.Data.Links)
	assert.Equal(t, "./public", conf.Build.Output)
	assert.Equal(t, "/", conf.Build.Base)
	assert.True(t, conf.Board.UnknownImage)
	assert.False(t, conf.Board.FallbackToCode)
	assert.Equal(t, "127.0.0.1:5555", conf.Serve.Listen)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("data:\n  dir: ./exports\n  links: configurations\nbuild:\n  base: /board\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scoreboard.yaml"), yaml, 0600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("SCOREBOARD_SERVE_LISTEN", "0.0.0.0:8080")

	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "./exports", conf.Data.Dir)
	assert.Equal(t, "configurations", conf.Data.Links)
	assert.Equal(t, "/board/", conf.Build.Base)
	assert.Equal(t, "0.0.0.0:8080", conf.Serve.Listen)
}
