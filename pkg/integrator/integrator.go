package integrator

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray with at most depth bounces
	RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Color
}

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// BackgroundGradient returns the sky color seen along an escaping ray:
// white at the bottom blending to sky blue at the top
func BackgroundGradient(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return white.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}

// New returns the integrator registered under name
func New(name string) (Integrator, bool) {
	switch name {
	case "", "path":
		return NewPathTracingIntegrator(), true
	case "normals":
		return NewNormalsIntegrator(), true
	default:
		return nil, false
	}
}
