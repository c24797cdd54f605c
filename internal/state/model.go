package state

import "math"

// ImageSet is one catalog entry: a revealed (color) image hidden under an
// occluding (mono) overlay.
type ImageSet struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	RevealedRef  string  `json:"colorImage"`
	OccludingRef string  `json:"monoImage"`
	OffsetX      float32 `json:"offsetX,omitempty"`
	OffsetY      float32 `json:"offsetY,omitempty"`
}

// Offset returns the cosmetic translation applied to the revealed layer.
func (s ImageSet) Offset() Point {
	return Point{X: float64(s.OffsetX), Y: float64(s.OffsetY)}
}

type Point struct{ X, Y float64 }

// Size is a width/height pair in either display or native pixel space.
type Size struct {
	Width  float64
	Height float64
}

func NewSize(w, h float64) Size { return Size{Width: w, Height: h} }

// IsZero reports whether either dimension is not positive.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Aspect returns width/height, or 0 for a degenerate size.
func (s Size) Aspect() float64 {
	if s.IsZero() {
		return 0
	}
	return s.Width / s.Height
}

// Landscape reports whether the size is at least as wide as it is tall.
func (s Size) Landscape() bool {
	return s.Width >= s.Height
}

// Rect is an on-screen rectangle, the equivalent of a bounding client rect.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Contains checks whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width &&
		p.Y >= r.Top && p.Y <= r.Top+r.Height
}

// PointerEvent is a pointer or touch sample: the position in viewport space,
// the surface's bounding rect at the time of the event and the device pixel
// density.
type PointerEvent struct {
	Client     Point
	Bounds     Rect
	PixelRatio float64
}

// Ratio returns the event's pixel ratio, treating unset values as 1.
func (e PointerEvent) Ratio() float64 {
	if e.PixelRatio <= 0 || math.IsNaN(e.PixelRatio) {
		return 1
	}
	return e.PixelRatio
}
