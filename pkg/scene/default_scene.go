package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a single diffuse sphere resting on a large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.ImageWidth = 1000
	cameraConfig.SamplesPerPixel = 200
	cameraConfig.MaxDepth = 50

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return &Scene{
		CameraConfig: applyOverrides(cameraConfig, cameraOverrides),
		World:        world,
	}
}

// NewEmptyScene creates a scene with nothing in it; every ray sees the sky
func NewEmptyScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	return &Scene{
		CameraConfig: applyOverrides(renderer.DefaultCameraConfig(), cameraOverrides),
		World:        geometry.NewHittableList(),
	}
}

// NewNormalsScene shows the default scene's geometry shaded by surface normal
func NewNormalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := NewDefaultScene(cameraOverrides...)
	s.Integrator = "normals"
	return s
}
