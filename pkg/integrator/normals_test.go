package integrator

import (
	"testing"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
)

func TestNormalsIntegrator(t *testing.T) {
	integrator := NewNormalsIntegrator()
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, nil))
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name     string
		ray      core.Ray
		depth    int
		expected core.Color
	}{
		{
			name:     "facing hit",
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			depth:    1,
			expected: core.NewVec3(0.5, 0.5, 1.0),
		},
		{
			name:     "miss",
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			depth:    1,
			expected: core.NewVec3(0.5, 0.7, 1.0),
		},
		{
			name:     "no depth budget",
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			depth:    0,
			expected: core.Color{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := integrator.RayColor(tt.ray, tt.depth, world, sampler)
			if c.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}
}
