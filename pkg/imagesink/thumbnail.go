package imagesink

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales img down to maxWidth pixels wide, keeping the aspect ratio.
// Images already narrower than maxWidth are copied unscaled.
func Thumbnail(img image.Image, maxWidth int) *image.RGBA {
	src := img.Bounds()
	width, height := src.Dx(), src.Dy()
	if maxWidth <= 0 || width <= maxWidth {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
		return dst
	}

	height = max(1, height*maxWidth/width)
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}
