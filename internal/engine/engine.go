// Package engine fits an image set into the viewport, maps pointer input to
// the image's native pixels and erases the occluding layer under the brush.
//
// All methods must be called from the UI goroutine. Loader completions and
// debounced relayouts are expected to be delivered there as well.
package engine

import (
	"context"
	"image"
	"time"

	"ColoringBoard/internal/gallery"
	"ColoringBoard/internal/layout"
	"ColoringBoard/internal/state"
	"ColoringBoard/internal/surface"

	"go.uber.org/zap"
)

const (
	DefaultResizeDelay      = 250 * time.Millisecond
	DefaultOrientationDelay = 500 * time.Millisecond
)

// Loader fetches an image by reference and calls done on the UI goroutine.
type Loader interface {
	Load(ctx context.Context, ref string, done func(image.Image, error))
}

// View presents engine output.
type View interface {
	// ShowDrawing switches to the drawing screen for set and resets layer sizes.
	ShowDrawing(set state.ImageSet)
	// ShowRevealed places the color image, translated by offset.
	ShowRevealed(img image.Image, offset state.Point)
	// ShowSurface shows the erasure raster; both layers take the display size.
	ShowSurface(img image.Image, display state.Size)
	// RefreshSurface redraws the raster after strokes.
	RefreshSurface()
	ShowGallery()
	// ShowError notifies the user; err is an *ImageLoadError.
	ShowError(err error)
}

// Options configures an Engine. Zero values pick the defaults.
type Options struct {
	Loader           Loader
	View             View
	Clock            state.Clock
	Logger           *zap.Logger
	ViewportFraction float64
	BrushRadius      float64
	ResizeDelay      time.Duration
	OrientationDelay time.Duration
}

type layoutMode int

const (
	// layoutFresh measures the viewport and commits the result.
	layoutFresh layoutMode = iota
	// layoutRestore reuses the committed layout.
	layoutRestore
)

func (m layoutMode) String() string {
	if m == layoutRestore {
		return "restore"
	}
	return "fresh"
}

// Engine is the canvas fit-and-erase engine.
type Engine struct {
	loader Loader
	view   View
	logger *zap.Logger
	solver layout.Solver
	mapper surface.Mapper

	session  state.Session
	surface  *surface.Surface
	viewport state.Size
	// stale marks a relayout that arrived while a load was in flight.
	stale bool

	ctx    context.Context
	cancel context.CancelFunc

	resize      *state.Debouncer
	orientation *state.Debouncer
}

func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = state.NewSystemClock(nil)
	}
	if opts.ResizeDelay <= 0 {
		opts.ResizeDelay = DefaultResizeDelay
	}
	if opts.OrientationDelay <= 0 {
		opts.OrientationDelay = DefaultOrientationDelay
	}
	return &Engine{
		loader:      opts.Loader,
		view:        opts.View,
		logger:      opts.Logger,
		solver:      layout.NewSolver(opts.ViewportFraction),
		mapper:      surface.NewMapper(opts.BrushRadius),
		surface:     surface.New(),
		ctx:         context.Background(),
		resize:      state.NewDebouncer(opts.Clock, opts.ResizeDelay),
		orientation: state.NewDebouncer(opts.Clock, opts.OrientationDelay),
	}
}

// Activate makes set the session subject and starts loading its images.
// The surface accepts strokes once the occluding image has loaded.
func (e *Engine) Activate(set state.ImageSet) {
	e.abandon()
	id := e.session.Select(set)
	e.ctx, e.cancel = context.WithCancel(context.Background())

	e.logger.Info("image set selected", zap.Int("id", set.ID), zap.String("title", set.Title), zap.String("activation", id))
	e.view.ShowDrawing(set)

	ctx := e.ctx
	e.loader.Load(ctx, set.RevealedRef, func(img image.Image, err error) {
		e.revealedLoaded(id, img, err)
	})
	if e.session.Current(id) {
		e.requestOccluding(id, layoutFresh, false)
	}
}

// Deactivate clears the surface and all session state and returns to the
// gallery.
func (e *Engine) Deactivate() {
	e.abandon()
	e.view.RefreshSurface()
	e.view.ShowGallery()
}

// Reset wipes the surface and re-initializes it from the occluding image
// with the committed layout, so the visual size does not change.
func (e *Engine) Reset() {
	if _, ok := e.session.Active(); !ok {
		return
	}
	e.surface.Clear()
	e.view.RefreshSurface()
	e.requestOccluding(e.session.ID(), layoutRestore, false)
}

// SetViewport records the available space without triggering a relayout.
func (e *Engine) SetViewport(size state.Size) {
	e.viewport = size
}

// ViewportResized records size and schedules a debounced relayout.
func (e *Engine) ViewportResized(size state.Size) {
	e.viewport = size
	e.resize.Trigger(e.relayout)
}

// OrientationChanged records size and schedules a relayout with the longer
// orientation delay.
func (e *Engine) OrientationChanged(size state.Size) {
	e.viewport = size
	e.orientation.Trigger(e.relayout)
}

// PointerDown starts a stroke and erases a dot at the event position.
func (e *Engine) PointerDown(ev state.PointerEvent) {
	if !e.surface.Ready() {
		return
	}
	m := e.mapper.Map(ev, e.surface.NativeSize())
	if e.surface.BeginStroke(m) {
		e.traceStroke(m.Point, m)
		e.view.RefreshSurface()
	}
}

// PointerMove extends the current stroke; without a stroke it does nothing.
func (e *Engine) PointerMove(ev state.PointerEvent) {
	if !e.surface.Drawing() {
		return
	}
	from, _ := e.surface.LastPoint()
	m := e.mapper.Map(ev, e.surface.NativeSize())
	if e.surface.ContinueStroke(m) {
		e.traceStroke(from, m)
		e.view.RefreshSurface()
	}
}

// PointerUp ends the current stroke.
func (e *Engine) PointerUp() { e.surface.EndStroke() }

// PointerLeave ends the current stroke when the pointer leaves the surface.
func (e *Engine) PointerLeave() { e.surface.EndStroke() }

func (e *Engine) TouchStart(ev state.PointerEvent) { e.PointerDown(ev) }
func (e *Engine) TouchMove(ev state.PointerEvent)  { e.PointerMove(ev) }
func (e *Engine) TouchEnd()                        { e.surface.EndStroke() }

func (e *Engine) relayout() {
	if _, ok := e.session.Active(); !ok {
		return
	}
	if !e.surface.Ready() {
		// a load is in flight; its completion measures the new viewport
		e.stale = true
		e.logger.Debug("relayout deferred", zap.Stringer("phase", e.surface.Phase()))
		return
	}
	e.surface.EndStroke()
	e.session.ForgetLayout()
	e.logger.Debug("relayout", zap.Float64("viewport_width", e.viewport.Width), zap.Float64("viewport_height", e.viewport.Height))
	e.requestOccluding(e.session.ID(), layoutFresh, true)
}

// requestOccluding loads the occluding image of the active set. With
// preserve set, the surface pixels present when the load completes are
// carried over into the re-initialized surface.
func (e *Engine) requestOccluding(id string, mode layoutMode, preserve bool) {
	set, ok := e.session.Active()
	if !ok {
		return
	}
	e.loader.Load(e.ctx, set.OccludingRef, func(img image.Image, err error) {
		e.occludingLoaded(id, mode, preserve, img, err)
	})
}

func (e *Engine) occludingLoaded(id string, mode layoutMode, preserve bool, img image.Image, err error) {
	if !e.session.Current(id) {
		return
	}
	set, _ := e.session.Active()
	if err != nil {
		e.fail(set, set.OccludingRef, err)
		return
	}

	var snap *image.RGBA
	if preserve && e.surface.Ready() {
		snap = e.surface.Snapshot()
	}
	natural := gallery.NaturalSize(img)
	display := e.displaySize(mode, natural)
	if err := e.surface.Initialize(img); err != nil {
		e.fail(set, set.OccludingRef, err)
		return
	}
	if snap != nil {
		e.surface.Restore(snap)
	}
	e.view.ShowSurface(e.surface.Image(), display)

	e.logger.Info("surface initialized",
		zap.String("title", set.Title),
		zap.Stringer("layout", mode),
		zap.Bool("restored", snap != nil),
		zap.Stringer("mode", e.surface.Mode()),
		zap.Float64("native_width", natural.Width),
		zap.Float64("native_height", natural.Height),
		zap.Float64("display_width", display.Width),
		zap.Float64("display_height", display.Height),
	)
}

func (e *Engine) revealedLoaded(id string, img image.Image, err error) {
	if !e.session.Current(id) {
		return
	}
	set, _ := e.session.Active()
	if err != nil {
		e.fail(set, set.RevealedRef, err)
		return
	}
	e.view.ShowRevealed(img, set.Offset())
}

// displaySize applies the caching policy: only fresh computations are
// committed, and a restore reuses the committed size when there is one.
func (e *Engine) displaySize(mode layoutMode, natural state.Size) state.Size {
	if e.stale {
		mode = layoutFresh
		e.stale = false
	}
	if mode == layoutRestore {
		if committed, ok := e.session.Committed(); ok {
			return committed
		}
	}
	display := e.solver.Fit(e.viewport, natural)
	if mode == layoutFresh {
		e.session.Commit(display)
	}
	return display
}

func (e *Engine) fail(set state.ImageSet, ref string, err error) {
	lerr := &ImageLoadError{Title: set.Title, Ref: ref, Err: err}
	e.logger.Error("image load failed", zap.String("title", set.Title), zap.String("ref", ref), zap.Error(err))
	e.abandon()
	e.view.ShowError(lerr)
	e.view.ShowGallery()
}

// abandon cancels in-flight work and returns to the empty state.
func (e *Engine) abandon() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.ctx = context.Background()
	e.resize.Cancel()
	e.orientation.Cancel()
	e.stale = false
	e.surface.Clear()
	e.session.Clear()
}

func (e *Engine) traceStroke(from state.Point, m surface.Mapping) {
	if ce := e.logger.Check(zap.DebugLevel, "erase"); ce != nil {
		ce.Write(
			zap.Float64("from_x", from.X),
			zap.Float64("from_y", from.Y),
			zap.Float64("x", m.Point.X),
			zap.Float64("y", m.Point.Y),
			zap.Float64("radius", m.Radius),
		)
	}
}
