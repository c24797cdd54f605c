// Package surface holds the erasure raster and the mapping from pointer
// input in display space to the raster's native pixel space.
package surface

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"ColoringBoard/internal/state"
)

// ErrEmptyImage is returned when initializing from an image with no pixels.
var ErrEmptyImage = errors.New("surface: occluding image has no pixels")

// Mode is the compositing rule applied to brush strokes.
type Mode int

const (
	// ModePaint draws strokes over existing content (source-over).
	ModePaint Mode = iota
	// ModeErase removes existing content under strokes (destination-out).
	ModeErase
)

func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "source-over"
	case ModeErase:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle position of a Surface.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseInitialized
	PhaseDrawing
	PhaseIdle
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseInitialized:
		return "initialized"
	case PhaseDrawing:
		return "drawing"
	case PhaseIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Surface is a raster sized to the occluding image's native resolution.
// It is not safe for concurrent use; the engine drives it from one goroutine.
type Surface struct {
	img   *image.RGBA
	mode  Mode
	phase Phase
	last  *state.Point
	ink   color.Color
}

// New returns an empty zero-sized surface.
func New() *Surface {
	return &Surface{
		img: image.NewRGBA(image.Rectangle{}),
		ink: color.Black,
	}
}

// Resize reallocates the raster at w×h. Like resizing a canvas element it
// discards content and resets the mode to ModePaint.
func (s *Surface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.mode = ModePaint
	s.phase = PhaseEmpty
	s.last = nil
}

// Initialize sizes the raster to img's native resolution, paints img into it
// and then switches to ModeErase. Painting has to happen before the switch,
// otherwise the base image would erase itself.
func (s *Surface) Initialize(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	b := img.Bounds()
	s.Resize(b.Dx(), b.Dy())
	draw.Draw(s.img, s.img.Bounds(), img, b.Min, draw.Over)
	s.mode = ModeErase
	s.phase = PhaseInitialized
	return nil
}

// Clear makes every pixel fully transparent and returns to PhaseEmpty. The
// raster keeps its size.
func (s *Surface) Clear() {
	clear(s.img.Pix)
	s.phase = PhaseEmpty
	s.last = nil
}

// Snapshot copies the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	cp := image.NewRGBA(s.img.Bounds())
	copy(cp.Pix, s.img.Pix)
	return cp
}

// Restore replaces pixels with snap, ignoring the compositing mode, and
// re-applies ModeErase. Only the overlapping region is copied when the
// sizes differ.
func (s *Surface) Restore(snap *image.RGBA) {
	if snap == nil {
		return
	}
	draw.Draw(s.img, snap.Bounds(), snap, snap.Bounds().Min, draw.Src)
	s.mode = ModeErase
}

// SetMode changes the compositing rule for later strokes.
func (s *Surface) SetMode(m Mode) { s.mode = m }

func (s *Surface) Mode() Mode   { return s.mode }
func (s *Surface) Phase() Phase { return s.phase }

// Ready reports whether the surface accepts strokes.
func (s *Surface) Ready() bool { return s.phase != PhaseEmpty }

// Drawing reports whether a stroke is in progress.
func (s *Surface) Drawing() bool { return s.phase == PhaseDrawing }

// Image exposes the raster for display. Callers must not retain it across
// Resize or Initialize.
func (s *Surface) Image() *image.RGBA { return s.img }

// NativeSize is the raster size in pixels.
func (s *Surface) NativeSize() state.Size {
	b := s.img.Bounds()
	return state.NewSize(float64(b.Dx()), float64(b.Dy()))
}

// LastPoint returns the end of the current path, if there is one.
func (s *Surface) LastPoint() (state.Point, bool) {
	if s.last == nil {
		return state.Point{}, false
	}
	return *s.last, true
}

// BeginStroke starts a new path at m and applies one dot there, so a tap
// erases without any movement. It reports false when the surface is not
// ready.
func (s *Surface) BeginStroke(m Mapping) bool {
	if !s.Ready() {
		return false
	}
	s.last = nil
	s.phase = PhaseDrawing
	s.apply(m.Point, m.Point, m.Radius)
	p := m.Point
	s.last = &p
	return true
}

// ContinueStroke extends the current path to m with a round-capped segment.
// It reports false when no stroke is in progress.
func (s *Surface) ContinueStroke(m Mapping) bool {
	if s.phase != PhaseDrawing {
		return false
	}
	from := m.Point
	if s.last != nil {
		from = *s.last
	}
	s.apply(from, m.Point, m.Radius)
	p := m.Point
	s.last = &p
	return true
}

// EndStroke breaks the path so the next stroke does not connect to this one.
func (s *Surface) EndStroke() {
	s.last = nil
	if s.phase == PhaseDrawing {
		s.phase = PhaseIdle
	}
}

func (s *Surface) apply(from, to state.Point, radius float64) {
	if radius <= 0 || s.img.Bounds().Empty() {
		return
	}
	mask, origin := brushMask(from, to, radius)
	if s.mode == ModeErase {
		eraseMask(s.img, mask, origin)
		return
	}
	paintMask(s.img, mask, origin, s.ink)
}
