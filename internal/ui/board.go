package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// drawingScreen is the toolbar with the active title above the board.
type drawingScreen struct {
	board   *BoardWidget
	title   *widget.Label
	content fyne.CanvasObject
}

func newDrawingScreen(board *BoardWidget, onBack, onReset func()) *drawingScreen {
	d := &drawingScreen{
		board: board,
		title: widget.NewLabel(""),
	}
	toolbar := NewToolbar(d.title, onBack, onReset)
	d.content = container.NewBorder(toolbar, nil, nil, nil, board)
	return d
}

func (d *drawingScreen) SetTitle(title string) { d.title.SetText(title) }
