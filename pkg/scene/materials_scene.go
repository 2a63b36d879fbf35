package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

// NewMaterialsScene creates a row of diffuse, metal and glass spheres viewed
// through a lens with shallow depth of field
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20,
		LookFrom:        core.NewVec3(-2, 2, 1),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    10.0,
		FocusDistance:   3.4,
	}

	ground := material.NewLambertian(core.NewColorHex(0xcccc00))
	blue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5) // air inside glass
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	silver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, blue),
		// Hollow glass: an air bubble just inside the outer shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		geometry.NewSphere(core.NewVec3(0.35, -0.35, -0.45), 0.15, silver),
	)

	return &Scene{
		CameraConfig: applyOverrides(cameraConfig, cameraOverrides),
		World:        world,
	}
}
