package integrator

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

var fromZero = core.NewInterval(0, math.Inf(1))

// NormalsIntegrator shades each hit by its surface normal, mapped from [-1,1] to [0,1].
// Useful for checking geometry and camera setup without any sampling noise.
type NormalsIntegrator struct{}

// NewNormalsIntegrator creates a normal visualization integrator
func NewNormalsIntegrator() *NormalsIntegrator {
	return &NormalsIntegrator{}
}

// RayColor implements Integrator
func (ni *NormalsIntegrator) RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, fromZero)
	if !isHit {
		return BackgroundGradient(ray)
	}

	return hit.Normal.Add(white).Multiply(0.5)
}
