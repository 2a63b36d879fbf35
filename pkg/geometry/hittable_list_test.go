package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// tagMaterial identifies which object produced a hit
type tagMaterial struct {
	id int
}

func (m *tagMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, searchAll); isHit {
		t.Error("Empty list should never report a hit")
	}
}

func TestHittableList_ClosestHit(t *testing.T) {
	far := NewSphere(core.NewVec3(0, 0, -10), 1, &tagMaterial{id: 1})
	near := NewSphere(core.NewVec3(0, 0, -3), 1, &tagMaterial{id: 2})
	behind := NewSphere(core.NewVec3(0, 0, 5), 1, &tagMaterial{id: 3})

	tests := []struct {
		name    string
		objects []core.Hittable
	}{
		{"near inserted last", []core.Hittable{far, behind, near}},
		{"near inserted first", []core.Hittable{near, far, behind}},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableList(tt.objects...)
			hit, isHit := list.Hit(ray, searchAll)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-2) > 1e-9 {
				t.Errorf("Expected closest t=2, got %f", hit.T)
			}
			if hit.Material.(*tagMaterial).id != 2 {
				t.Errorf("Expected nearest sphere's material, got id %d", hit.Material.(*tagMaterial).id)
			}
		})
	}
}

func TestHittableList_TieKeepsFirstInserted(t *testing.T) {
	first := NewSphere(core.NewVec3(0, 0, -3), 1, &tagMaterial{id: 1})
	second := NewSphere(core.NewVec3(0, 0, -3), 1, &tagMaterial{id: 2})
	list := NewHittableList(first, second)

	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), searchAll)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if id := hit.Material.(*tagMaterial).id; id != 1 {
		t.Errorf("Expected first inserted object to win a tie, got id %d", id)
	}
}

func TestHittableList_AddClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, nil))
	list.Add(NewSphere(core.NewVec3(0, -100.5, -1), 100, nil))
	if list.Len() != 2 {
		t.Errorf("Expected 2 objects, got %d", list.Len())
	}

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", list.Len())
	}
}

func TestHittableList_Nested(t *testing.T) {
	inner := NewHittableList(NewSphere(core.NewVec3(0, 0, -2), 0.5, &tagMaterial{id: 7}))
	outer := NewHittableList(NewSphere(core.NewVec3(0, 0, -6), 0.5, &tagMaterial{id: 8}), inner)

	hit, isHit := outer.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), searchAll)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if id := hit.Material.(*tagMaterial).id; id != 7 {
		t.Errorf("Expected nested closer sphere to win, got id %d", id)
	}
}
