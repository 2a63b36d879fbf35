// Package imagesink persists finished framebuffers as raster image files.
package imagesink

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an output file format
type Format string

const (
	FormatPNG  Format = "png"
	FormatPPM  Format = "ppm"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the output format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".ppm":
		return FormatPPM, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
}

// FileSink writes images to a file on disk
type FileSink struct {
	Path         string
	Format       Format
	PreviewWidth int // When > 0, also write a downscaled PNG next to Path
}

// NewFileSink creates a sink for path, choosing the format from its extension
func NewFileSink(path string) (*FileSink, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &FileSink{Path: path, Format: format}, nil
}

// Write encodes the buffer and writes it to the sink's path, creating parent
// directories as needed
func (s *FileSink) Write(width, height, channels int, pix []byte, stride int) error {
	img, err := ToRGBA(width, height, channels, pix, stride)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := writeFile(s.Path, func(w io.Writer) error { return Encode(w, img, s.Format) }); err != nil {
		return err
	}

	if s.PreviewWidth > 0 {
		preview := Thumbnail(img, s.PreviewWidth)
		if err := writeFile(PreviewPath(s.Path), func(w io.Writer) error { return png.Encode(w, preview) }); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}

	return nil
}

// PreviewPath returns where the downscaled preview for path is written
func PreviewPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_preview.png"
}

func writeFile(path string, encode func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	bw := bufio.NewWriter(file)
	if err := encode(bw); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *image.RGBA, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPPM:
		return EncodePPM(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// ToRGBA converts a row-major RGB (or RGBA) byte buffer into an opaque image
func ToRGBA(width, height, channels int, pix []byte, stride int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}
	if stride < width*channels || len(pix) < (height-1)*stride+width*channels {
		return nil, fmt.Errorf("buffer too small for %dx%dx%d with stride %d", width, height, channels, stride)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := pix[y*stride:]
		for x := 0; x < width; x++ {
			i := x * channels
			img.SetRGBA(x, y, color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: 255})
		}
	}
	return img, nil
}
