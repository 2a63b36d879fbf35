package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	CameraConfig renderer.CameraConfig
	World        *geometry.HittableList
	Integrator   string // Light transport name understood by integrator.New; empty means path tracing
}

// ObjectCount returns the number of top-level objects in the world
func (s *Scene) ObjectCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}

// mergeCameraConfig applies the non-zero fields of override on top of base.
// A zero field cannot clear a scene value; pass a negative DefocusAngle to
// turn depth of field off.
func mergeCameraConfig(base, override renderer.CameraConfig) renderer.CameraConfig {
	result := base
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

func applyOverrides(base renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	for _, override := range overrides {
		base = mergeCameraConfig(base, override)
	}
	return base
}
