package state

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageSet_DecodesCatalogEntry(t *testing.T) {
	var set ImageSet
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"title":"おさるさん","colorImage":"images/color4.png","monoImage":"images/mono4.png","offsetY":20}`), &set))
	assert.Equal(t, "images/color4.png", set.RevealedRef)
	assert.Equal(t, "images/mono4.png", set.OccludingRef)
	assert.Equal(t, Point{Y: 20}, set.Offset())
}

func TestSize(t *testing.T) {
	assert.True(t, Size{}.IsZero())
	assert.True(t, NewSize(0, 10).IsZero())
	assert.InDelta(t, 4.0/3, NewSize(400, 300).Aspect(), 1e-12)
	assert.True(t, NewSize(400, 400).Landscape())
	assert.False(t, NewSize(300, 400).Landscape())
}

func TestRect(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 100, Height: 50}
	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.True(t, r.Contains(Point{X: 110, Y: 70}))
	assert.False(t, r.Contains(Point{X: 111, Y: 30}))
}

func TestPointerEvent_Ratio(t *testing.T) {
	assert.Equal(t, 2.0, PointerEvent{PixelRatio: 2}.Ratio())
	assert.Equal(t, 1.0, PointerEvent{}.Ratio())
	assert.Equal(t, 1.0, PointerEvent{PixelRatio: -3}.Ratio())
	assert.Equal(t, 1.0, PointerEvent{PixelRatio: math.NaN()}.Ratio())
}
