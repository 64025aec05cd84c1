package geometry

import (
	"math"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// Cube represents an axis-aligned box; the geometry is its bounding box
type Cube struct {
	Min core.Vec3 // Minimum corner
	Max core.Vec3 // Maximum corner
}

// NewCube creates an axis-aligned cube primitive from its center and edge size
func NewCube(center core.Vec3, size float64, albedo core.Vec3, reflectivity float64) Primitive {
	h := size * 0.5
	return Primitive{
		Kind: KindCube,
		Cube: Cube{
			Min: core.NewVec3(center.X-h, center.Y-h, center.Z-h),
			Max: core.NewVec3(center.X+h, center.Y+h, center.Z+h),
		},
		Albedo:       albedo,
		Reflectivity: reflectivity,
	}
}

// hit runs the slab test: per axis, narrow the running [entry, exit] interval
// and remember which face produced the tightest entry bound. Rays parallel to
// an axis must have their origin inside that axis's slab. A ray whose origin
// is already inside the box has no entry face and reports no hit.
func (c Cube) hit(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	entry := tMin
	exit := tMax
	var faceNormal core.Vec3
	hasEntry := false

	for axis := 0; axis < 3; axis++ {
		var minB, maxB, origin, direction float64
		var normal core.Vec3

		switch axis {
		case 0:
			minB, maxB = c.Min.X, c.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
			normal = core.NewVec3(-1, 0, 0)
		case 1:
			minB, maxB = c.Min.Y, c.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
			normal = core.NewVec3(0, -1, 0)
		case 2:
			minB, maxB = c.Min.Z, c.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
			normal = core.NewVec3(0, 0, -1)
		}

		if math.Abs(direction) < 1e-12 {
			// Ray parallel to these slabs: origin must lie between them
			if origin < minB || origin > maxB {
				return 0, core.Vec3{}, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (minB - origin) * invDirection
		t1 := (maxB - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
			normal = normal.Negate() // entry and exit faces swapped
		}

		if t0 > entry {
			entry = t0
			faceNormal = normal
			hasEntry = true
		}
		if t1 < exit {
			exit = t1
		}
		if exit <= entry {
			return 0, core.Vec3{}, false
		}
	}

	if !hasEntry {
		return 0, core.Vec3{}, false
	}
	return entry, faceNormal, true
}
