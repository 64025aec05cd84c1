package lights

import (
	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// PointLight is a single omnidirectional light source. Intensity is a
// multiplicative light color and is not clamped to [0,1].
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light
func NewPointLight(position, intensity core.Vec3) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
