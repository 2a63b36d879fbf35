package renderer

import (
	"fmt"
	"image"
)

// Channels is the number of bytes stored per pixel (RGB)
const Channels = 3

// Framebuffer is a flat row-major RGB byte buffer
type Framebuffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewFramebuffer allocates a zeroed buffer for a width x height image
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:    width,
		Height:   height,
		Channels: Channels,
		Pix:      make([]byte, width*height*Channels),
	}
}

// Stride returns the number of bytes per row
func (fb *Framebuffer) Stride() int {
	return fb.Width * fb.Channels
}

// Bounds returns the full image rectangle
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// PixOffset returns the index of the first byte of pixel (x, y)
func (fb *Framebuffer) PixOffset(x, y int) int {
	return (y*fb.Width + x) * fb.Channels
}

// At returns the bytes stored for pixel (x, y)
func (fb *Framebuffer) At(x, y int) [3]uint8 {
	i := fb.PixOffset(x, y)
	return [3]uint8{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]}
}

// TileWriter returns a view that can only write pixels inside bounds.
// Writers for non-overlapping bounds touch disjoint bytes and may be used
// from different goroutines without locking.
func (fb *Framebuffer) TileWriter(bounds image.Rectangle) *TileWriter {
	return &TileWriter{fb: fb, bounds: bounds.Intersect(fb.Bounds())}
}

// TileWriter writes pixels for a single tile
type TileWriter struct {
	fb     *Framebuffer
	bounds image.Rectangle
}

// Bounds returns the region this writer owns
func (tw *TileWriter) Bounds() image.Rectangle {
	return tw.bounds
}

// Set stores rgb at pixel (x, y). Writing outside the owned region panics.
func (tw *TileWriter) Set(x, y int, rgb [3]uint8) {
	if !image.Pt(x, y).In(tw.bounds) {
		panic(fmt.Sprintf("pixel (%d,%d) outside tile %v", x, y, tw.bounds))
	}
	i := tw.fb.PixOffset(x, y)
	copy(tw.fb.Pix[i:i+Channels], rgb[:])
}
