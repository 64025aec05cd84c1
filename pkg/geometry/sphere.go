package geometry

import (
	"math"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a sphere primitive
func NewSphere(center core.Vec3, radius float64, albedo core.Vec3, reflectivity float64) Primitive {
	return Primitive{
		Kind:         KindSphere,
		Sphere:       Sphere{Center: center, Radius: radius},
		Albedo:       albedo,
		Reflectivity: reflectivity,
	}
}

// hit solves |O - C + tD|² = r² using the half-b discriminant form and
// returns the nearest root within (tMin, tMax) with the outward normal.
func (s Sphere) hit(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, core.Vec3{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return 0, core.Vec3{}, false
		}
	}

	outwardNormal := ray.At(root).Subtract(s.Center).Divide(s.Radius)
	return root, outwardNormal, true
}
