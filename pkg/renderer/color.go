package renderer

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

var intensity = core.NewInterval(0.0, 0.999)

// LinearToGamma applies gamma 2 correction; non-positive values map to 0
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// PrepareColor converts an averaged linear color into display bytes
func PrepareColor(c core.Color) [3]uint8 {
	r := LinearToGamma(c.X)
	g := LinearToGamma(c.Y)
	b := LinearToGamma(c.Z)

	// Translate the [0,1] component values to the byte range [0,255]
	return [3]uint8{
		uint8(256 * intensity.Clamp(r)),
		uint8(256 * intensity.Clamp(g)),
		uint8(256 * intensity.Clamp(b)),
	}
}
