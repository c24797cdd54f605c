package gallery

import (
	"image"

	"github.com/disintegration/imaging"
)

// Thumbnail scales img to fit within size×size, keeping its aspect ratio.
// Images that already fit are returned unchanged.
func Thumbnail(img image.Image, size int) image.Image {
	if img == nil || size <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}
	return imaging.Fit(img, size, size, imaging.Lanczos)
}
