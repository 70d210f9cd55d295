package export_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/export"
	"github.com/katalvlaran/algostep/graphdata"
)

// TestGraphPNG writes a decodable PNG of the expected pixel size.
func TestGraphPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mst.png")
	require.NoError(t, export.GraphPNG(graphdata.WeightedSample(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	// 4 nodes on a radius-110 circle: 220px extent + 2×40px padding.
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

// TestGraphPNG_Scale doubles the extent, padding unchanged.
func TestGraphPNG_Scale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaled.png")
	require.NoError(t, export.GraphPNG(graphdata.WeightedSample(), path, export.WithScale(2)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 520, cfg.Width)
	assert.Equal(t, 520, cfg.Height)
}

// TestGraphPNG_Errors covers empty graphs and option violations.
func TestGraphPNG_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.png")

	err := export.GraphPNG(graphdata.Graph{}, path)
	assert.ErrorIs(t, err, export.ErrEmptyGraph)

	err = export.GraphPNG(graphdata.WeightedSample(), path, export.WithScale(0))
	assert.ErrorIs(t, err, export.ErrOptionViolation)

	err = export.GraphPNG(graphdata.WeightedSample(), path, export.WithPadding(-1))
	assert.ErrorIs(t, err, export.ErrOptionViolation)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed exports must not leave files behind")
}
