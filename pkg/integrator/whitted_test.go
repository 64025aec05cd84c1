package integrator

import (
	"math"
	"testing"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
	"github.com/mfarrell/go-whitted-raytracer/pkg/geometry"
	"github.com/mfarrell/go-whitted-raytracer/pkg/lights"
)

func vecsClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// floorWorld is a single horizontal plane at y=0 with the given reflectivity
func floorWorld(albedo core.Vec3, reflectivity float64) *geometry.World {
	world := geometry.NewWorld()
	world.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), albedo, reflectivity))
	return world
}

func overheadLight() lights.PointLight {
	return lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1))
}

func TestWhitted_Sky(t *testing.T) {
	integrator := NewWhitted(5)
	world := geometry.NewWorld()
	light := overheadLight()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{
			name:      "straight down is the bottom color",
			direction: core.NewVec3(0, -1, 0),
			expected:  core.NewVec3(1, 1, 1),
		},
		{
			name:      "straight up is the top color",
			direction: core.NewVec3(0, 1, 0),
			expected:  core.NewVec3(0.5, 0.7, 1.0),
		},
		{
			name:      "horizontal is the midpoint",
			direction: core.NewVec3(1, 0, 0),
			expected:  core.NewVec3(0.75, 0.85, 1.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := integrator.RayColor(ray, world, light, 5)
			if !vecsClose(got, tt.expected, 1e-12) {
				t.Errorf("Expected sky color %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWhitted_UnshadowedDiffuse(t *testing.T) {
	// Light directly overhead: lighting factor = ambient + 1.0
	integrator := NewWhitted(5)
	albedo := core.NewVec3(0.8, 0.3, 0.2)
	world := floorWorld(albedo, 0)
	light := overheadLight()

	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	got := integrator.RayColor(ray, world, light, 5)

	expected := albedo.Multiply(ambientStrength + 1.0)
	if !vecsClose(got, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestWhitted_ShadowReducesToAmbient(t *testing.T) {
	// An occluder between the surface and the light zeroes the diffuse term,
	// leaving exactly the ambient factor
	integrator := NewWhitted(5)
	albedo := core.NewVec3(1, 1, 1)
	world := floorWorld(albedo, 0)
	world.Add(geometry.NewSphere(core.NewVec3(0, 5, 0), 1.0, core.NewVec3(0.5, 0.5, 0.5), 0))
	light := overheadLight()

	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	got := integrator.RayColor(ray, world, light, 5)

	expected := albedo.Multiply(ambientStrength)
	if !vecsClose(got, expected, 1e-9) {
		t.Errorf("Expected ambient-only %v, got %v", expected, got)
	}
}

func TestWhitted_LightIntensityTint(t *testing.T) {
	integrator := NewWhitted(5)
	albedo := core.NewVec3(1, 1, 1)
	world := floorWorld(albedo, 0)
	light := lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(0.5, 2.0, 1.0))

	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	got := integrator.RayColor(ray, world, light, 5)

	expected := albedo.Multiply(ambientStrength + 1.0).MultiplyVec(core.NewVec3(0.5, 2.0, 1.0))
	if !vecsClose(got, expected, 1e-9) {
		t.Errorf("Expected intensity-tinted %v, got %v", expected, got)
	}
}

func TestWhitted_ReflectionBlend(t *testing.T) {
	// For a straight-down ray onto the floor, the reflected ray goes straight
	// up and hits the sky top color; the final color must equal
	// local*(1-r) + reflected*r for any r
	albedo := core.NewVec3(0.8, 0.3, 0.2)
	light := overheadLight()
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))

	integrator := NewWhitted(5)
	local := integrator.RayColor(ray, floorWorld(albedo, 0), light, 5)
	reflected := core.NewVec3(0.5, 0.7, 1.0) // sky top

	for _, r := range []float64{0, 0.25, 0.5, 0.9, 1} {
		got := integrator.RayColor(ray, floorWorld(albedo, r), light, 5)
		expected := local.Multiply(1 - r).Add(reflected.Multiply(r))
		if !vecsClose(got, expected, 1e-9) {
			t.Errorf("r=%g: expected blend %v, got %v", r, expected, got)
		}
	}
}

func TestWhitted_ReflectionConsumesDepth(t *testing.T) {
	// At depth 1 the reflected branch evaluates at depth 0 and contributes
	// zero, so the result is local*(1-r); a non-reflective surface at the
	// same depth keeps its full local color
	albedo := core.NewVec3(0.8, 0.3, 0.2)
	light := overheadLight()
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	integrator := NewWhitted(1)

	local := integrator.RayColor(ray, floorWorld(albedo, 0), light, 1)
	if vecsClose(local, core.Vec3{}, 1e-12) {
		t.Fatal("Non-reflective surface at depth 1 should keep its local color")
	}

	got := integrator.RayColor(ray, floorWorld(albedo, 0.5), light, 1)
	expected := local.Multiply(0.5)
	if !vecsClose(got, expected, 1e-9) {
		t.Errorf("Expected local*(1-r)=%v at depth 1, got %v", expected, got)
	}
}

func TestWhitted_DepthExhaustion(t *testing.T) {
	integrator := NewWhitted(0)
	world := floorWorld(core.NewVec3(1, 1, 1), 1.0)
	light := overheadLight()

	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	got := integrator.RayColor(ray, world, light, 0)
	if got != (core.Vec3{}) {
		t.Errorf("Expected zero color at depth 0, got %v", got)
	}
}

func TestWhitted_MirrorBoxTerminates(t *testing.T) {
	// Two facing fully reflective planes; recursion must stop at the depth
	// ceiling and return a finite color
	world := geometry.NewWorld()
	world.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.9, 0.9, 0.9), 1.0))
	world.Add(geometry.NewPlane(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0), core.NewVec3(0.9, 0.9, 0.9), 1.0))
	light := lights.NewPointLight(core.NewVec3(0, 2, 5), core.NewVec3(1, 1, 1))

	integrator := NewWhitted(8)
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	got := integrator.RayColor(ray, world, light, 8)

	if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
		t.Errorf("Expected finite color from mirror box, got %v", got)
	}
}
