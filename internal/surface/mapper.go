package surface

import (
	"math"

	"ColoringBoard/internal/state"
)

// DefaultBrushRadius is the nominal brush radius in display units.
const DefaultBrushRadius = 5.0

// Mapping is the result of mapping one pointer sample into native space.
type Mapping struct {
	Point  state.Point
	ScaleX float64
	ScaleY float64
	Radius float64
}


// Scale converts a pointer position in viewport space into the native pixel
// space of a surface whose on-screen rectangle is bounds. It is computed per
// event since bounds may differ between events. A degenerate rectangle maps
// with unit scale.
func Scale(client state.Point, bounds state.Rect, native state.Size) (state.Point, float64, float64) {
	scaleX, scaleY := 1.0, 1.0
	if bounds.Width > 0 {
		scaleX = native.Width / bounds.Width
	}
	if bounds.Height > 0 {
		scaleY = native.Height / bounds.Height
	}
	return state.Point{
		X: (client.X - bounds.Left) * scaleX,
		Y: (client.Y - bounds.Top) * scaleY,
	}, scaleX, scaleY
}

// BrushRadius scales the nominal radius so the brush keeps its apparent
// on-screen size for any native/display ratio and pixel density.
func BrushRadius(nominal, scaleX, scaleY, pixelRatio float64) float64 {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return nominal * math.Max(scaleX, scaleY) * pixelRatio
}

// Mapper maps pointer events for a fixed nominal brush radius.
type Mapper struct {
	Radius float64
}

func NewMapper(radius float64) Mapper {
	if radius <= 0 {
		radius = DefaultBrushRadius
	}
	return Mapper{Radius: radius}
}

// Map converts ev into native coordinates of a surface of the given size.
func (m Mapper) Map(ev state.PointerEvent, native state.Size) Mapping {
	p, sx, sy := Scale(ev.Client, ev.Bounds, native)
	radius := m.Radius
	if radius <= 0 {
		radius = DefaultBrushRadius
	}
	return Mapping{
		Point:  p,
		ScaleX: sx,
		ScaleY: sy,
		Radius: BrushRadius(radius, sx, sy, ev.Ratio()),
	}
}
