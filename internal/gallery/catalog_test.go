package gallery

import (
	"strings"
	"testing"
	"testing/fstest"

	"ColoringBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
  {"id": 1, "title": "Animals", "colorImage": "images/color1.png", "monoImage": "images/mono1.png"},
  {"id": 4, "title": "Monkey", "colorImage": "images/color4.png", "monoImage": "images/mono4.png", "offsetY": 20},
  {"id": 5, "title": "Dolphin", "colorImage": "images/color5.png", "monoImage": "images/mono5.png", "offsetX": 10}
]`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	sets := c.Sets()
	assert.Equal(t, "Animals", sets[0].Title)
	assert.Equal(t, state.Point{Y: 20}, sets[1].Offset())
	assert.Equal(t, state.Point{X: 10}, sets[2].Offset())
	assert.Equal(t, "images/mono5.png", sets[2].OccludingRef)

	sets[0].Title = "changed"
	assert.Equal(t, "Animals", c.Sets()[0].Title, "Sets returns a copy")
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(`{`))
	assert.Error(t, err)

	_, err = ParseCatalog(strings.NewReader(`[]`))
	assert.ErrorContains(t, err, "empty")

	_, err = ParseCatalog(strings.NewReader(`[
	  {"id": 1, "title": "", "colorImage": "a.png", "monoImage": ""},
	  {"id": 1, "title": "dup", "colorImage": "b.png", "monoImage": "c.png"}
	]`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing title")
	assert.ErrorContains(t, err, "missing monoImage")
	assert.ErrorContains(t, err, "duplicate id 1")
}

func TestLoadCatalog(t *testing.T) {
	fsys := fstest.MapFS{"catalog.json": {Data: []byte(sampleCatalog)}}
	c, err := LoadCatalog(fsys, "catalog.json")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = LoadCatalog(fsys, "missing.json")
	assert.Error(t, err)
}
