package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/integrator"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
)

// MockIntegrator returns a fixed color and counts calls
type MockIntegrator struct {
	returnColor core.Color
	callCount   int
	lastDepth   int
}

func (m *MockIntegrator) RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Color {
	m.callCount++
	m.lastDepth = depth
	return m.returnColor
}

func createMockCamera(width, samples int) *Camera {
	config := DefaultCameraConfig()
	config.ImageWidth = width
	config.AspectRatio = 1.0
	config.SamplesPerPixel = samples
	config.MaxDepth = 7
	config.VFov = 45
	return NewCamera(config)
}

func TestTileRendererPixelSampling(t *testing.T) {
	mockIntegrator := &MockIntegrator{returnColor: core.NewVec3(0.25, 1.0, 0.0)}
	camera := createMockCamera(4, 5)
	renderer := NewTileRenderer(geometry.NewHittableList(), camera, mockIntegrator)

	fb := NewFramebuffer(4, 4)
	stats := renderer.RenderTile(fb.TileWriter(image.Rect(0, 0, 2, 2)), core.NewSeededSampler(42))

	if mockIntegrator.callCount != 4*5 {
		t.Errorf("Expected %d integrator calls, got %d", 4*5, mockIntegrator.callCount)
	}
	if mockIntegrator.lastDepth != 7 {
		t.Errorf("Expected integrator to receive max depth 7, got %d", mockIntegrator.lastDepth)
	}
	if stats.Pixels != 4 || stats.Samples != 20 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	// Averaged constant color maps to the same bytes as a single sample
	if got := fb.At(1, 1); got != [3]uint8{128, 255, 0} {
		t.Errorf("Expected averaged pixel {128,255,0}, got %v", got)
	}
}

func TestTileRendererBoundsClipping(t *testing.T) {
	mockIntegrator := &MockIntegrator{returnColor: core.NewVec3(1.0, 0.0, 0.0)}
	renderer := NewTileRenderer(geometry.NewHittableList(), createMockCamera(5, 2), mockIntegrator)

	fb := NewFramebuffer(5, 5)
	bounds := image.Rect(1, 1, 3, 3)
	stats := renderer.RenderTile(fb.TileWriter(bounds), core.NewSeededSampler(42))

	if stats.Pixels != 4 {
		t.Errorf("Expected 4 pixels processed, got %d", stats.Pixels)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			inBounds := image.Pt(x, y).In(bounds)
			written := fb.At(x, y)[0] != 0

			if inBounds && !written {
				t.Errorf("Expected pixel (%d,%d) in bounds to be written", x, y)
			}
			if !inBounds && written {
				t.Errorf("Expected pixel (%d,%d) outside bounds to be untouched", x, y)
			}
		}
	}
}

func TestTileRendererDeterministic(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	camera := createMockCamera(8, 3)
	renderer := NewTileRenderer(world, camera, integrator.NewPathTracingIntegrator())

	fb1 := NewFramebuffer(8, 8)
	fb2 := NewFramebuffer(8, 8)
	renderer.RenderTile(fb1.TileWriter(fb1.Bounds()), core.NewSeededSampler(123))
	renderer.RenderTile(fb2.TileWriter(fb2.Bounds()), core.NewSeededSampler(123))

	for i := range fb1.Pix {
		if fb1.Pix[i] != fb2.Pix[i] {
			t.Fatalf("Expected identical bytes at %d, got %d and %d", i, fb1.Pix[i], fb2.Pix[i])
		}
	}
}
