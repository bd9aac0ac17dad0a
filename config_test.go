package osm2lcc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(NewConfigViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "my_graph.osm.pbf", cfg.File)
	assert.Equal(t, "my_graph.csv", cfg.Out)
	assert.Equal(t, "wkt", cfg.GeomFormat)
	assert.True(t, cfg.Contract)
	assert.True(t, cfg.Reduce)
	assert.False(t, cfg.Verbose)

	bbox, err := cfg.ParsedBBox()
	require.NoError(t, err)
	assert.Nil(t, bbox)
	options, err := cfg.ParserOptions()
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestLoadConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.yaml")
	content := `
file: ./data/city.osm.pbf
out: ./data/city.csv
geom_format: geojson
contract: false
bbox: "37.5, 55.6, 37.7, 55.8"
tags:
  - primary
  - residential
`
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))

	cfg, err := LoadConfig(NewConfigViper(), fname)
	require.NoError(t, err)
	assert.Equal(t, "./data/city.osm.pbf", cfg.File)
	assert.Equal(t, "geojson", cfg.GeomFormat)
	assert.False(t, cfg.Contract)
	assert.True(t, cfg.Reduce)
	assert.Equal(t, []string{"primary", "residential"}, cfg.Tags)

	bbox, err := cfg.ParsedBBox()
	require.NoError(t, err)
	assert.Equal(t, &orb.Bound{Min: orb.Point{37.5, 55.6}, Max: orb.Point{37.7, 55.8}}, bbox)

	options, err := cfg.ParserOptions()
	require.NoError(t, err)
	parser := NewParser(cfg.File, options...)
	assert.Equal(t, []string{"primary", "residential"}, parser.tags)
	assert.Equal(t, bbox, parser.bbox)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(NewConfigViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cfg := Config{BBox: "1,2,3"}
	_, err = cfg.ParsedBBox()
	assert.Error(t, err)
	cfg.BBox = "1,2,x,4"
	_, err = cfg.ParserOptions()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{true, false} {
		logger, err := NewLogger(verbose)
		require.NoError(t, err)
		require.NotNil(t, logger)
		logger.Debug("debug message")
	}
}
