package ui

import (
	"image"
	"image/color"

	"ColoringBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Gallery Cards ---
type imageCard struct {
	widget.BaseWidget
	Set      state.ImageSet
	OnTapped func(state.ImageSet)

	thumb *canvas.Image
	title *widget.Label
}

func newImageCard(set state.ImageSet, size float32, tapped func(state.ImageSet)) *imageCard {
	c := &imageCard{
		Set:      set,
		OnTapped: tapped,
		thumb:    canvas.NewImageFromImage(nil),
		title:    widget.NewLabel(set.Title),
	}
	c.thumb.FillMode = canvas.ImageFillContain
	c.thumb.SetMinSize(fyne.NewSize(size, size))
	c.title.Alignment = fyne.TextAlignCenter
	c.title.Truncation = fyne.TextTruncateEllipsis
	c.ExtendBaseWidget(c)
	return c
}

// SetThumbnail fills in the card image once it has been loaded.
func (c *imageCard) SetThumbnail(img image.Image) {
	c.thumb.Image = img
	c.thumb.Refresh()
}

func (c *imageCard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.White)
	bg.CornerRadius = theme.InputRadiusSize()

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1
	border.CornerRadius = theme.InputRadiusSize()

	body := container.NewBorder(nil, c.title, nil, nil, c.thumb)
	return widget.NewSimpleRenderer(container.NewStack(bg, border, container.NewPadded(body)))
}

func (c *imageCard) Tapped(_ *fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped(c.Set)
	}
}

// --- The Drawing Toolbar ---
func NewToolbar(title *widget.Label, onBack, onReset func()) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateBackIcon(), onBack), // Back to gallery
		widget.NewToolbarAction(theme.ViewRefreshIcon(), onReset), // Reset drawing
	)
	title.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		title,
		layout.NewSpacer(),
	)
}
