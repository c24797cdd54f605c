package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"ColoringBoard/internal/state"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// brushMask rasterizes a round-capped segment from a to b into a coverage
// mask. origin is the position of the mask's (0,0) pixel in surface space.
// A zero-length segment yields a filled circle.
func brushMask(a, b state.Point, radius float64) (mask *image.Alpha, origin image.Point) {
	minX := int(math.Floor(math.Min(a.X, b.X)-radius)) - 1
	minY := int(math.Floor(math.Min(a.Y, b.Y)-radius)) - 1
	maxX := int(math.Ceil(math.Max(a.X, b.X)+radius)) + 1
	maxY := int(math.Ceil(math.Max(a.Y, b.Y)+radius)) + 1
	w, h := maxX-minX, maxY-minY
	origin = image.Pt(minX, minY)

	z := vector.NewRasterizer(w, h)
	pen := penAt(z, float64(minX), float64(minY))

	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-6 {
		pen.circle(a, radius)
	} else {
		d := state.Point{X: dx / length, Y: dy / length}
		n := state.Point{X: -d.Y, Y: d.X}
		neg := func(p state.Point) state.Point { return state.Point{X: -p.X, Y: -p.Y} }

		pen.moveTo(offset(a, n, radius))
		pen.lineTo(offset(b, n, radius))
		pen.quarter(b, n, d, radius)
		pen.quarter(b, d, neg(n), radius)
		pen.lineTo(offset(a, neg(n), radius))
		pen.quarter(a, neg(n), neg(d), radius)
		pen.quarter(a, neg(d), n, radius)
		z.ClosePath()
	}

	mask = image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, origin
}

func offset(c, dir state.Point, r float64) state.Point {
	return state.Point{X: c.X + dir.X*r, Y: c.Y + dir.Y*r}
}

// pen writes surface-space coordinates into a rasterizer whose origin is
// shifted by (ox, oy).
type pen struct {
	z      *vector.Rasterizer
	ox, oy float64
}

func penAt(z *vector.Rasterizer, ox, oy float64) pen {
	return pen{z: z, ox: ox, oy: oy}
}

func (p pen) xy(pt state.Point) (float32, float32) {
	return float32(pt.X - p.ox), float32(pt.Y - p.oy)
}

func (p pen) moveTo(pt state.Point) { p.z.MoveTo(p.xy(pt)) }
func (p pen) lineTo(pt state.Point) { p.z.LineTo(p.xy(pt)) }

// quarter draws a quarter arc around c from direction u to direction v,
// which must be perpendicular unit vectors.
func (p pen) quarter(c, u, v state.Point, r float64) {
	c1 := state.Point{X: c.X + (u.X+kappa*v.X)*r, Y: c.Y + (u.Y+kappa*v.Y)*r}
	c2 := state.Point{X: c.X + (v.X+kappa*u.X)*r, Y: c.Y + (v.Y+kappa*u.Y)*r}
	end := offset(c, v, r)
	x1, y1 := p.xy(c1)
	x2, y2 := p.xy(c2)
	x3, y3 := p.xy(end)
	p.z.CubeTo(x1, y1, x2, y2, x3, y3)
}

func (p pen) circle(c state.Point, r float64) {
	right := state.Point{X: 1}
	down := state.Point{Y: 1}
	left := state.Point{X: -1}
	up := state.Point{Y: -1}
	p.moveTo(offset(c, right, r))
	p.quarter(c, right, down, r)
	p.quarter(c, down, left, r)
	p.quarter(c, left, up, r)
	p.quarter(c, up, right, r)
	p.z.ClosePath()
}

// eraseMask removes destination content in proportion to mask coverage,
// the destination-out rule dst = dst * (1 - coverage).
func eraseMask(dst *image.RGBA, mask *image.Alpha, origin image.Point) {
	r := mask.Bounds().Add(origin).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X-origin.X, y-origin.Y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, mi, di = x+1, mi+1, di+4 {
			cov := uint32(mask.Pix[mi])
			if cov == 0 {
				continue
			}
			keep := 255 - cov
			px := dst.Pix[di : di+4 : di+4]
			for c := range px {
				px[c] = uint8((uint32(px[c])*keep + 127) / 255)
			}
		}
	}
}

// paintMask draws col through the mask with source-over compositing.
func paintMask(dst *image.RGBA, mask *image.Alpha, origin image.Point, col color.Color) {
	r := mask.Bounds().Add(origin)
	draw.DrawMask(dst, r, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}
