package geometry

import (
	"math"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal, fixed at construction
}

// NewPlane creates a plane primitive. The normal is normalized here so the
// intersection math can assume unit length.
func NewPlane(point, normal core.Vec3, albedo core.Vec3, reflectivity float64) Primitive {
	return Primitive{
		Kind:         KindPlane,
		Plane:        Plane{Point: point, Normal: normal.Normalize()},
		Albedo:       albedo,
		Reflectivity: reflectivity,
	}
}

// hit solves t = (point_on_plane - ray.origin)·n / (ray.direction·n).
// Rays near-parallel to the plane report no hit.
func (p Plane) hit(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return 0, core.Vec3{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return 0, core.Vec3{}, false
	}

	// The plane normal is reported regardless of hit side; orientation is
	// resolved when the hit record is built.
	return t, p.Normal, true
}
