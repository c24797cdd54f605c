// Package layout fits an image into a viewport without distorting or
// upscaling it.
package layout

import "ColoringBoard/internal/state"

// DefaultFraction is the share of the viewport an image may occupy.
const DefaultFraction = 0.9

// Solver computes display sizes for a fixed viewport fraction.
type Solver struct {
	Fraction float64
}

// NewSolver returns a Solver, falling back to DefaultFraction for values
// outside (0, 1].
func NewSolver(fraction float64) Solver {
	if fraction <= 0 || fraction > 1 {
		fraction = DefaultFraction
	}
	return Solver{Fraction: fraction}
}

// Fit returns the display size of an image of the given natural size inside
// viewport. The result keeps the natural aspect ratio, stays within
// Fraction of the viewport and never exceeds the natural size. A viewport
// that is not known yet yields the natural size; a degenerate image yields
// the zero size.
func (s Solver) Fit(viewport, natural state.Size) state.Size {
	if natural.IsZero() {
		return state.Size{}
	}
	if viewport.IsZero() {
		return natural
	}

	fraction := s.Fraction
	if fraction <= 0 || fraction > 1 {
		fraction = DefaultFraction
	}
	maxWidth := viewport.Width * fraction
	maxHeight := viewport.Height * fraction
	aspect := natural.Aspect()

	if maxWidth/maxHeight > aspect {
		// height binds
		h := min(maxHeight, natural.Height)
		return state.Size{Width: h * aspect, Height: h}
	}
	w := min(maxWidth, natural.Width)
	return state.Size{Width: w, Height: w / aspect}
}

// Fit uses the default fraction.
func Fit(viewport, natural state.Size) state.Size {
	return NewSolver(DefaultFraction).Fit(viewport, natural)
}
