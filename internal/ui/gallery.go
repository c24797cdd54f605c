package ui

import (
	"context"
	"image"

	"ColoringBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// ThumbnailSource produces scaled-down revealed images for gallery cards.
type ThumbnailSource interface {
	LoadThumbnail(ctx context.Context, ref string, size int, done func(image.Image, error))
}

// galleryScreen lists every image set as a tappable card.
type galleryScreen struct {
	cards   []*imageCard
	content fyne.CanvasObject
}

func newGalleryScreen(sets []state.ImageSet, size int, onSelect func(state.ImageSet), thumbs ThumbnailSource, logger *zap.Logger) *galleryScreen {
	g := &galleryScreen{}
	cell := fyne.NewSize(float32(size)+40, float32(size)+70)
	objects := make([]fyne.CanvasObject, 0, len(sets))
	for _, set := range sets {
		card := newImageCard(set, float32(size), onSelect)
		g.cards = append(g.cards, card)
		objects = append(objects, card)
		if thumbs == nil {
			continue
		}
		thumbs.LoadThumbnail(context.Background(), set.RevealedRef, size, func(img image.Image, err error) {
			if err != nil {
				logger.Warn("thumbnail failed", zap.String("title", set.Title), zap.Error(err))
				return
			}
			card.SetThumbnail(img)
		})
	}

	heading := widget.NewLabelWithStyle("ぬりえを選んでね", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	grid := container.NewGridWrap(cell, objects...)
	g.content = container.NewBorder(heading, nil, nil, nil, container.NewVScroll(grid))
	return g
}
