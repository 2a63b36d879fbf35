package material

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// fixedSampler returns the same values on every draw
type fixedSampler struct {
	value1D float64
	value3D core.Vec3
}

func (f *fixedSampler) Get1D() float64 { return f.value1D }
func (f *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value3D.X, f.value3D.Y)
}
func (f *fixedSampler) Get3D() core.Vec3 { return f.value3D }
