package ui

import (
	"image"

	"ColoringBoard/internal/engine"
	"ColoringBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"
)

// Controller receives user intent from the screens.
type Controller interface {
	Activate(set state.ImageSet)
	Deactivate()
	Reset()

	SetViewport(size state.Size)
	ViewportResized(size state.Size)
	OrientationChanged(size state.Size)

	PointerDown(ev state.PointerEvent)
	PointerMove(ev state.PointerEvent)
	PointerUp()
	PointerLeave()
	TouchStart(ev state.PointerEvent)
	TouchMove(ev state.PointerEvent)
	TouchEnd()
}

// Options configures the screens.
type Options struct {
	Title         string
	Width, Height float32
	Sets          []state.ImageSet
	Thumbnails    ThumbnailSource
	ThumbnailSize int
	Logger        *zap.Logger
}

// App owns the window and switches between the gallery and drawing screens.
type App struct {
	win     fyne.Window
	ctrl    Controller
	logger  *zap.Logger
	board   *BoardWidget
	gallery *galleryScreen
	drawing *drawingScreen
}

var _ engine.View = (*App)(nil)

// New builds both screens inside win and shows the gallery.
func New(win fyne.Window, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	a := &App{win: win, logger: opts.Logger, board: NewBoardWidget()}
	a.gallery = newGalleryScreen(opts.Sets, opts.ThumbnailSize, a.selected, opts.Thumbnails, opts.Logger)
	a.drawing = newDrawingScreen(a.board, a.back, a.reset)
	win.SetContent(a.gallery.content)
	return a
}

// Bind connects the screens to the controller.
func (a *App) Bind(c Controller) {
	a.ctrl = c
	a.board.SetController(c)
}

func (a *App) selected(set state.ImageSet) {
	if a.ctrl != nil {
		a.ctrl.Activate(set)
	}
}

func (a *App) back() {
	if a.ctrl != nil {
		a.ctrl.Deactivate()
	}
}

func (a *App) reset() {
	if a.ctrl != nil {
		a.ctrl.Reset()
	}
}

func (a *App) ShowDrawing(set state.ImageSet) {
	a.drawing.SetTitle(set.Title)
	a.board.ResetLayers()
	a.win.SetContent(a.drawing.content)
}

func (a *App) ShowRevealed(img image.Image, offset state.Point) {
	a.board.SetRevealed(img, offset)
}

func (a *App) ShowSurface(img image.Image, display state.Size) {
	a.board.SetSurface(img, display)
}

func (a *App) RefreshSurface() { a.board.RefreshSurface() }

func (a *App) ShowGallery() {
	a.drawing.SetTitle("")
	a.win.SetContent(a.gallery.content)
}

func (a *App) ShowError(err error) {
	dialog.ShowError(err, a.win)
}

// RunApp opens the main window, hands the screens to newController and runs
// the event loop until the window closes.
func RunApp(opts Options, newController func(engine.View) Controller) {
	myApp := app.New()
	if opts.Title == "" {
		opts.Title = "Coloring Board"
	}
	myWindow := myApp.NewWindow(opts.Title)
	myWindow.Resize(fyne.NewSize(opts.Width, opts.Height))

	screens := New(myWindow, opts)
	screens.Bind(newController(screens))

	myWindow.ShowAndRun()
}
