package surface

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"ColoringBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func at(x, y, r float64) Mapping {
	return Mapping{Point: state.Point{X: x, Y: y}, ScaleX: 1, ScaleY: 1, Radius: r}
}

func initialized(t *testing.T) *Surface {
	t.Helper()
	s := New()
	require.NoError(t, s.Initialize(filled(100, 80, color.Gray{Y: 128})))
	return s
}

func TestSurface_InitializePaintsThenErases(t *testing.T) {
	s := initialized(t)

	assert.Equal(t, state.NewSize(100, 80), s.NativeSize())
	assert.Equal(t, ModeErase, s.Mode())
	assert.Equal(t, PhaseInitialized, s.Phase())
	assert.Equal(t, uint8(255), alphaAt(s, 0, 0))
	assert.Equal(t, uint8(255), alphaAt(s, 99, 79))
}

func TestSurface_InitializeRejectsEmptyImage(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Initialize(nil), ErrEmptyImage)
	assert.ErrorIs(t, s.Initialize(image.NewRGBA(image.Rectangle{})), ErrEmptyImage)
	assert.False(t, s.Ready())
}

func TestSurface_TapErasesDot(t *testing.T) {
	s := initialized(t)

	require.True(t, s.BeginStroke(at(50, 40, 5)))
	assert.Equal(t, PhaseDrawing, s.Phase())
	assert.Equal(t, uint8(0), alphaAt(s, 50, 40))
	assert.Equal(t, uint8(255), alphaAt(s, 58, 40))
	assert.Equal(t, uint8(255), alphaAt(s, 0, 0))
}

func TestSurface_ConsecutiveMovesConnect(t *testing.T) {
	s := initialized(t)

	s.BeginStroke(at(10, 40, 3))
	require.True(t, s.ContinueStroke(at(90, 40, 3)))

	for x := 10; x <= 90; x += 10 {
		assert.Equal(t, uint8(0), alphaAt(s, x, 40), "x=%d", x)
	}
	assert.Equal(t, uint8(255), alphaAt(s, 50, 50))
	last, ok := s.LastPoint()
	require.True(t, ok)
	assert.Equal(t, state.Point{X: 90, Y: 40}, last)
}

func TestSurface_StrokesAfterUpAreDisconnected(t *testing.T) {
	s := initialized(t)

	s.BeginStroke(at(10, 20, 3))
	s.EndStroke()
	assert.Equal(t, PhaseIdle, s.Phase())
	_, ok := s.LastPoint()
	assert.False(t, ok)

	assert.False(t, s.ContinueStroke(at(90, 20, 3)), "move without a press must not draw")
	assert.Equal(t, uint8(255), alphaAt(s, 50, 20))

	s.BeginStroke(at(90, 60, 3))
	assert.Equal(t, uint8(255), alphaAt(s, 50, 40), "new stroke must not connect to the previous one")
	assert.Equal(t, uint8(0), alphaAt(s, 90, 60))
}

func TestSurface_EmptyRejectsStrokes(t *testing.T) {
	s := New()
	assert.False(t, s.BeginStroke(at(1, 1, 2)))
	assert.False(t, s.ContinueStroke(at(1, 1, 2)))
	s.EndStroke()
	assert.Equal(t, PhaseEmpty, s.Phase())
}

func TestSurface_ClearAndReinitialize(t *testing.T) {
	base := filled(40, 30, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	s := New()
	require.NoError(t, s.Initialize(base))
	s.BeginStroke(at(20, 15, 4))
	s.EndStroke()

	s.Clear()
	assert.Equal(t, PhaseEmpty, s.Phase())
	assert.Equal(t, state.NewSize(40, 30), s.NativeSize())
	for _, v := range s.Image().Pix {
		require.Zero(t, v)
	}

	require.NoError(t, s.Initialize(base))
	once := s.Snapshot()
	s.Clear()
	require.NoError(t, s.Initialize(base))
	assert.Equal(t, once.Pix, s.Image().Pix, "re-initializing twice yields the same pixels")
	assert.Equal(t, base.Pix, s.Image().Pix)
	assert.Equal(t, ModeErase, s.Mode())
}

func TestSurface_SnapshotRestore(t *testing.T) {
	s := initialized(t)
	s.BeginStroke(at(30, 30, 6))
	s.ContinueStroke(at(60, 50, 6))
	s.EndStroke()
	snap := s.Snapshot()

	require.NoError(t, s.Initialize(filled(100, 80, color.Gray{Y: 128})))
	assert.Equal(t, uint8(255), alphaAt(s, 30, 30))

	s.SetMode(ModePaint)
	s.Restore(snap)
	assert.Equal(t, snap.Pix, s.Image().Pix)
	assert.Equal(t, ModeErase, s.Mode())
	assert.Equal(t, uint8(0), alphaAt(s, 30, 30))
}

func TestSurface_PaintMode(t *testing.T) {
	s := New()
	require.NoError(t, s.Initialize(image.NewRGBA(image.Rect(0, 0, 20, 20))))
	s.SetMode(ModePaint)

	s.BeginStroke(at(10, 10, 4))
	assert.Equal(t, uint8(255), alphaAt(s, 10, 10))
	assert.Equal(t, uint8(0), alphaAt(s, 1, 1))
}

func TestSurface_ResizeResetsMode(t *testing.T) {
	s := initialized(t)
	s.Resize(10, 5)
	assert.Equal(t, ModePaint, s.Mode())
	assert.Equal(t, PhaseEmpty, s.Phase())
	assert.Equal(t, state.NewSize(10, 5), s.NativeSize())
}

func TestSurface_StrokesNearEdges(t *testing.T) {
	s := initialized(t)
	assert.NotPanics(t, func() {
		s.BeginStroke(at(0, 0, 5))
		s.ContinueStroke(at(-40, -40, 5))
		s.ContinueStroke(at(140, 120, 5))
		s.EndStroke()
	})
	assert.Equal(t, uint8(0), alphaAt(s, 0, 0))
	assert.Equal(t, uint8(0), alphaAt(s, 99, 79))
}

func TestModeAndPhaseStrings(t *testing.T) {
	assert.Equal(t, "destination-out", ModeErase.String())
	assert.Equal(t, "source-over", ModePaint.String())
	assert.Equal(t, "drawing", PhaseDrawing.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

// alphaAt reads the alpha of pixel (x, y); 0 outside the raster.
func alphaAt(s *Surface, x, y int) uint8 {
	return s.Image().RGBAAt(x, y).A
}
