package material

import (
	"math"
	"testing"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	result, scattered := glass.Scatter(ray, hit, core.NewSeededSampler(42))
	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}

	// Across many draws both outcomes should appear
	hasReflection := false
	hasRefraction := false
	for seed := int64(0); seed < 2000 && (!hasReflection || !hasRefraction); seed++ {
		result, _ := glass.Scatter(ray, hit, core.NewSeededSampler(seed))
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
	if !hasReflection {
		t.Error("Expected to see reflection in at least some cases")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving glass at a grazing angle: sin(theta) * 1.5 > 1
	direction := core.NewVec3(1, -0.2, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0.2, 0), direction)
	hit := core.HitRecord{
		Point:     core.NewVec3(1, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
	}

	// A draw of 0.999 would otherwise always choose refraction
	result, scattered := glass.Scatter(ray, hit, &fixedSampler{value1D: 0.999})
	if !scattered {
		t.Fatal("Dielectric should always scatter")
	}

	expected := core.Reflect(direction, hit.Normal)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestDielectricNormalIncidenceRefractsStraight(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	result, _ := glass.Scatter(ray, hit, &fixedSampler{value1D: 0.999})
	if result.Scattered.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected straight-through refraction, got %v", result.Scattered.Direction)
	}

	// A draw below the reflectance picks reflection
	result, _ = glass.Scatter(ray, hit, &fixedSampler{value1D: 0.0})
	if result.Scattered.Direction.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected reflection back along the normal, got %v", result.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"Normal incidence air to glass", 1.0, 1.0 / 1.5, 0.04},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"Matched indices", 0.5, 1.0, 0.03125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
