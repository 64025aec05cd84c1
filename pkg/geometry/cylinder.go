package geometry

import (
	"math"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// Cylinder represents a finite Y-axis-aligned cylinder with circular caps,
// defined by its center (middle of the height), radius, and half-height
type Cylinder struct {
	Center     core.Vec3
	Radius     float64
	HalfHeight float64
}

// NewCylinder creates a capped cylinder primitive with total height 2*halfHeight
func NewCylinder(center core.Vec3, radius, halfHeight float64, albedo core.Vec3, reflectivity float64) Primitive {
	return Primitive{
		Kind:         KindCylinder,
		Cylinder:     Cylinder{Center: center, Radius: radius, HalfHeight: halfHeight},
		Albedo:       albedo,
		Reflectivity: reflectivity,
	}
}

// hit intersects the lateral surface (an XZ quadratic clamped to the height
// band) and the two cap disks, keeping the closest valid root across both
// families. The running tHit upper bound narrows as candidates are found, so
// a later candidate can only win by being strictly nearer.
func (c Cylinder) hit(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	const epsilon = 1e-6

	// Ray in the cylinder's local frame
	ro := ray.Origin.Subtract(c.Center)
	rd := ray.Direction

	tHit := tMax
	var bestNormal core.Vec3
	found := false

	// Lateral surface: (ro.x + t*rd.x)² + (ro.z + t*rd.z)² = r²
	a := rd.X*rd.X + rd.Z*rd.Z
	if math.Abs(a) > epsilon {
		halfB := ro.X*rd.X + ro.Z*rd.Z
		cc := ro.X*ro.X + ro.Z*ro.Z - c.Radius*c.Radius
		discriminant := halfB*halfB - a*cc
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			for _, root := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
				if root <= tMin || root >= tHit {
					continue
				}
				y := ro.Y + rd.Y*root
				if y < -c.HalfHeight-epsilon || y > c.HalfHeight+epsilon {
					continue
				}
				point := ray.At(root)
				tHit = root
				bestNormal = core.NewVec3(point.X-c.Center.X, 0, point.Z-c.Center.Z).Normalize()
				found = true
			}
		}
	}

	// Cap disks at y = center.y ± halfHeight
	if math.Abs(rd.Y) > epsilon {
		caps := [2]struct {
			y      float64
			normal core.Vec3
		}{
			{c.Center.Y - c.HalfHeight, core.NewVec3(0, -1, 0)},
			{c.Center.Y + c.HalfHeight, core.NewVec3(0, 1, 0)},
		}
		for _, disk := range caps {
			t := (disk.y - ray.Origin.Y) / rd.Y
			if t <= tMin || t >= tHit {
				continue
			}
			point := ray.At(t)
			dx := point.X - c.Center.X
			dz := point.Z - c.Center.Z
			if dx*dx+dz*dz > c.Radius*c.Radius+1e-12 {
				continue
			}
			tHit = t
			bestNormal = disk.normal
			found = true
		}
	}

	if !found {
		return 0, core.Vec3{}, false
	}
	return tHit, bestNormal, true
}
