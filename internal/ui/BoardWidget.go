package ui

import (
	"image"
	"image/color"

	"ColoringBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget stacks the revealed image under the erasure surface, centers
// both in the available space and forwards pointer input to the controller.
type BoardWidget struct {
	widget.BaseWidget
	ctrl Controller

	revealed *canvas.Image
	surface  *canvas.Image
	// display is the size both layers are shown at; zero until the surface
	// has been initialized.
	display fyne.Size
	offset  fyne.Position

	viewport   fyne.Size
	surfacePos fyne.Position
	// touching routes moves outside the surface to the stroke instead of
	// ending it, the way touch input keeps its target.
	touching bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{
		revealed: canvas.NewImageFromImage(nil),
		surface:  canvas.NewImageFromImage(nil),
	}
	for _, img := range []*canvas.Image{b.revealed, b.surface} {
		img.FillMode = canvas.ImageFillStretch
		img.ScaleMode = canvas.ImageScaleSmooth
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetController routes input and viewport changes to c.
func (b *BoardWidget) SetController(c Controller) { b.ctrl = c }

// ResetLayers drops both images and their display size.
func (b *BoardWidget) ResetLayers() {
	b.revealed.Image = nil
	b.surface.Image = nil
	b.display = fyne.Size{}
	b.offset = fyne.Position{}
	b.revealed.Refresh()
	b.surface.Refresh()
	b.Refresh()
}

// SetRevealed shows the color image translated by offset.
func (b *BoardWidget) SetRevealed(img image.Image, offset state.Point) {
	b.revealed.Image = img
	b.offset = fyne.NewPos(float32(offset.X), float32(offset.Y))
	b.revealed.Refresh()
	b.Refresh()
}

// SetSurface shows the erasure raster; both layers take the display size.
func (b *BoardWidget) SetSurface(img image.Image, display state.Size) {
	b.surface.Image = img
	b.display = fyne.NewSize(float32(display.Width), float32(display.Height))
	b.surface.Refresh()
	b.Refresh()
}

// RefreshSurface re-uploads the raster after it was drawn on in place.
func (b *BoardWidget) RefreshSurface() {
	b.surface.Refresh()
}

func (b *BoardWidget) bounds() state.Rect {
	return state.Rect{
		Left:   float64(b.surfacePos.X),
		Top:    float64(b.surfacePos.Y),
		Width:  float64(b.display.Width),
		Height: float64(b.display.Height),
	}
}

func (b *BoardWidget) event(pos fyne.Position) state.PointerEvent {
	return state.PointerEvent{
		Client:     state.Point{X: float64(pos.X), Y: float64(pos.Y)},
		Bounds:     b.bounds(),
		PixelRatio: b.pixelRatio(),
	}
}

// onSurface reports whether pos falls on the erasure surface.
func (b *BoardWidget) onSurface(pos fyne.Position) bool {
	if b.display.IsZero() {
		return false
	}
	return b.bounds().Contains(state.Point{X: float64(pos.X), Y: float64(pos.Y)})
}

// pixelRatio is the canvas scale of the window showing the board.
func (b *BoardWidget) pixelRatio() float64 {
	a := fyne.CurrentApp()
	if a == nil {
		return 1
	}
	c := a.Driver().CanvasForObject(b)
	if c == nil {
		return 1
	}
	return float64(c.Scale())
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && b.ctrl != nil && b.onSurface(e.Position) {
		b.ctrl.PointerDown(b.event(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if b.ctrl != nil {
		b.ctrl.PointerUp()
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.pointerMoved(e.Position)
}

func (b *BoardWidget) MouseOut() {
	if b.ctrl != nil {
		b.ctrl.PointerLeave()
	}
}

// Dragged carries moves while a button or finger is down.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.pointerMoved(e.Position)
}

func (b *BoardWidget) pointerMoved(pos fyne.Position) {
	switch {
	case b.ctrl == nil:
	case b.touching:
		b.ctrl.TouchMove(b.event(pos))
	case !b.onSurface(pos):
		b.ctrl.PointerLeave()
	default:
		b.ctrl.PointerMove(b.event(pos))
	}
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	if b.ctrl != nil && b.onSurface(e.Position) {
		b.touching = true
		b.ctrl.TouchStart(b.event(e.Position))
	}
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.touching = false
	if b.ctrl != nil {
		b.ctrl.TouchEnd()
	}
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.touching = false
	if b.ctrl != nil {
		b.ctrl.TouchEnd()
	}
}

// reportViewport tells the controller about a new board size. The first
// size is taken immediately; a portrait/landscape flip counts as an
// orientation change.
func (b *BoardWidget) reportViewport(size fyne.Size) {
	if size == b.viewport || size.IsZero() {
		return
	}
	prev := b.viewport
	b.viewport = size
	if b.ctrl == nil {
		return
	}
	next := state.NewSize(float64(size.Width), float64(size.Height))
	switch {
	case prev.IsZero():
		b.ctrl.SetViewport(next)
	case orientationFlipped(prev, size):
		b.ctrl.OrientationChanged(next)
	default:
		b.ctrl.ViewportResized(next)
	}
}

func orientationFlipped(prev, next fyne.Size) bool {
	p := state.NewSize(float64(prev.Width), float64(prev.Height))
	n := state.NewSize(float64(next.Width), float64(next.Height))
	return p.Landscape() != n.Landscape()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.revealed, r.board.surface}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	b := r.board
	r.background.Resize(size)

	display := b.display
	revealedSize := display
	if display.IsZero() && b.revealed.Image != nil {
		// no surface yet: show the color image at its natural size
		rb := b.revealed.Image.Bounds()
		revealedSize = fyne.NewSize(float32(rb.Dx()), float32(rb.Dy()))
	}
	b.surfacePos = fyne.NewPos((size.Width-display.Width)/2, (size.Height-display.Height)/2)
	revealedPos := fyne.NewPos((size.Width-revealedSize.Width)/2, (size.Height-revealedSize.Height)/2)

	b.surface.Resize(display)
	b.surface.Move(b.surfacePos)
	b.revealed.Resize(revealedSize)
	b.revealed.Move(revealedPos.Add(b.offset))

	b.reportViewport(size)
}

func (r *boardWidgetRenderer) Refresh() {
	r.Layout(r.board.Size())
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
