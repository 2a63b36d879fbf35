package renderer

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	world      core.Hittable
	camera     *Camera
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer. world and camera are only read.
func NewTileRenderer(world core.Hittable, camera *Camera, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderTile fills every pixel of the writer's bounds using sampler for all random draws
func (tr *TileRenderer) RenderTile(out *TileWriter, sampler core.Sampler) TileStats {
	bounds := out.Bounds()
	spp := tr.camera.SamplesPerPixel()
	stats := TileStats{}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			out.Set(i, j, PrepareColor(tr.samplePixel(i, j, sampler)))
			stats.Pixels++
			stats.Samples += spp
		}
	}

	return stats
}

// samplePixel averages SamplesPerPixel jittered rays through pixel (i, j)
func (tr *TileRenderer) samplePixel(i, j int, sampler core.Sampler) core.Color {
	colorAccum := core.Color{}
	for sample := 0; sample < tr.camera.SamplesPerPixel(); sample++ {
		ray := tr.camera.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.camera.MaxDepth(), tr.world, sampler))
	}
	return colorAccum.Multiply(tr.camera.PixelSamplesScale())
}
