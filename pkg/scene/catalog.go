package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type builder func(cameraOverrides ...renderer.CameraConfig) *Scene

var builtInScenes = map[string]struct {
	description string
	build       builder
}{
	"default":   {"Diffuse sphere resting on a large ground sphere", NewDefaultScene},
	"materials": {"Diffuse, metal and hollow glass spheres with depth of field", NewMaterialsScene},
	"empty":     {"No objects, sky gradient only", NewEmptyScene},
	"normals":   {"Default scene shaded by surface normal", NewNormalsScene},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for name, entry := range builtInScenes {
		scenes = append(scenes, SceneInfo{Name: name, Description: entry.description})
	}
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Name < scenes[j].Name })
	return scenes
}

// Lookup builds the built-in scene with the given name
func Lookup(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	entry, ok := builtInScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", name)
	}
	return entry.build(cameraOverrides...), nil
}
