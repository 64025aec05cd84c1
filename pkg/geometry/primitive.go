package geometry

import (
	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point        core.Vec3 // Point of intersection
	Normal       core.Vec3 // Surface normal at intersection, oriented against the ray
	T            float64   // Parameter t along the ray
	FrontFace    bool      // Whether the ray hit the front face
	Albedo       core.Vec3 // Diffuse reflectance of the surface
	Reflectivity float64   // Fraction of light mirror-reflected, in [0,1]
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Kind identifies a primitive shape variant
type Kind int

// The supported primitive kinds. The set is closed: intersection dispatch
// is an exhaustive switch rather than an interface call.
const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
)

// Primitive is a tagged variant over the supported shape kinds, carrying the
// surface response (albedo, reflectivity) alongside the geometry. Only the
// field selected by Kind is meaningful.
type Primitive struct {
	Kind     Kind
	Sphere   Sphere
	Plane    Plane
	Cube     Cube
	Cylinder Cylinder

	Albedo       core.Vec3
	Reflectivity float64
}

// Hit tests if a ray intersects the primitive within (tMin, tMax), returning
// the nearest valid intersection. The returned record's normal is oriented
// to oppose the incoming ray.
func (p *Primitive) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var (
		t       float64
		outward core.Vec3
		ok      bool
	)

	switch p.Kind {
	case KindSphere:
		t, outward, ok = p.Sphere.hit(ray, tMin, tMax)
	case KindPlane:
		t, outward, ok = p.Plane.hit(ray, tMin, tMax)
	case KindCube:
		t, outward, ok = p.Cube.hit(ray, tMin, tMax)
	case KindCylinder:
		t, outward, ok = p.Cylinder.hit(ray, tMin, tMax)
	}
	if !ok {
		return nil, false
	}

	rec := &HitRecord{
		T:            t,
		Point:        ray.At(t),
		Albedo:       p.Albedo,
		Reflectivity: p.Reflectivity,
	}
	rec.SetFaceNormal(ray, outward)
	return rec, true
}
