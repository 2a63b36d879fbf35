package integrator

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// ShadowAcneEpsilon is the minimum ray parameter accepted for a bounce, so a
// scattered ray does not re-hit the surface it just left
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce budget
type PathTracingIntegrator struct {
	hitInterval core.Interval
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{
		hitInterval: core.NewInterval(ShadowAcneEpsilon, math.Inf(1)),
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, pt.hitInterval)
	if !isHit {
		return BackgroundGradient(ray)
	}

	if hit.Material == nil {
		return core.Color{}
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Color{}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, depth-1, world, sampler))
}
