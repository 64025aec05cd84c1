package integrator

import (
	"math"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
	"github.com/mfarrell/go-whitted-raytracer/pkg/geometry"
	"github.com/mfarrell/go-whitted-raytracer/pkg/lights"
)

const (
	// ambientStrength is the fixed ambient lighting term
	ambientStrength = 0.12

	// shadowBias offsets shadow ray origins along the normal to avoid
	// self-intersection acne; the same bias trims the far end of the
	// shadow interval so the light itself is never counted as a blocker
	shadowBias = 1e-4

	// reflectionBias offsets reflection ray origins along the normal
	reflectionBias = 1e-4
)

// Whitted resolves rays with local ambient/diffuse shading, hard shadows,
// and recursive mirror reflection up to a fixed bounce limit
type Whitted struct {
	MaxDepth int // Maximum reflection recursion depth

	// Sky gradient colors for rays that hit nothing
	SkyTop    core.Vec3
	SkyBottom core.Vec3
}

// NewWhitted creates an integrator with the default sky gradient
func NewWhitted(maxDepth int) *Whitted {
	return &Whitted{
		MaxDepth:  maxDepth,
		SkyTop:    core.NewVec3(0.5, 0.7, 1.0),
		SkyBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor returns the color for a ray traced against the world. Depth
// exhaustion contributes zero rather than sky, bounding the cost of
// mirror-box configurations.
func (w *Whitted) RayColor(ray core.Ray, world *geometry.World, light lights.PointLight, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, ok := world.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		return w.skyColor(ray)
	}

	local := w.shade(rec, world, light)

	reflectivity := math.Min(1, math.Max(0, rec.Reflectivity))
	if reflectivity <= 0 {
		return local
	}

	reflectDir := core.Reflect(ray.Direction.Normalize(), rec.Normal).Normalize()
	reflectRay := core.NewRay(rec.Point.Add(rec.Normal.Multiply(reflectionBias)), reflectDir)
	reflected := w.RayColor(reflectRay, world, light, depth-1)

	return local.Multiply(1 - reflectivity).Add(reflected.Multiply(reflectivity))
}

// shade computes the local color: albedo × (ambient + diffuse) × light
// intensity, where the diffuse term is zero when an occluder blocks the
// path to the light
func (w *Whitted) shade(rec *geometry.HitRecord, world *geometry.World, light lights.PointLight) core.Vec3 {
	toLight := light.Position.Subtract(rec.Point)
	lightDistance := toLight.Length()
	lightDir := toLight.Divide(lightDistance)

	shadowOrigin := rec.Point.Add(rec.Normal.Multiply(shadowBias))
	shadowRay := core.NewRay(shadowOrigin, lightDir)
	_, blocked := world.Hit(shadowRay, shadowBias, lightDistance-shadowBias)

	diffuse := 0.0
	if !blocked {
		diffuse = math.Max(0, rec.Normal.Dot(lightDir))
	}

	return rec.Albedo.Multiply(ambientStrength + diffuse).MultiplyVec(light.Intensity)
}

// skyColor returns a vertical gradient based on the ray direction's
// Y component, mapped from [-1,1] to [0,1]
func (w *Whitted) skyColor(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return w.SkyBottom.Multiply(1.0 - t).Add(w.SkyTop.Multiply(t))
}
