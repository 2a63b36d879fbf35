package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Rays traced per pixel
	Tiles           int           // Number of tiles the image was split into
	Workers         int           // Number of parallel workers used
	Duration        time.Duration // Wall-clock time from dispatch to completion
}

// TileStats contains statistics for a single rendered tile
type TileStats struct {
	Pixels  int
	Samples int
}

// Add accumulates a tile's counts into the render totals
func (rs *RenderStats) Add(ts TileStats) {
	rs.TotalPixels += ts.Pixels
	rs.TotalSamples += ts.Samples
}
