package renderer

import (
	"math"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// CameraConfig holds camera parameters
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // View-up vector
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// CameraOverride carries optional camera parameters. A nil field leaves the
// base value untouched, so an explicit zero such as a look-from at the
// origin is still applied.
type CameraOverride struct {
	LookFrom    *core.Vec3
	LookAt      *core.Vec3
	Up          *core.Vec3
	VFov        *float64
	AspectRatio *float64
}

// MergeCameraConfig overlays the set fields of override onto base
func MergeCameraConfig(base CameraConfig, override CameraOverride) CameraConfig {
	merged := base
	if override.LookFrom != nil {
		merged.LookFrom = *override.LookFrom
	}
	if override.LookAt != nil {
		merged.LookAt = *override.LookAt
	}
	if override.Up != nil {
		merged.Up = *override.Up
	}
	if override.VFov != nil {
		merged.VFov = *override.VFov
	}
	if override.AspectRatio != nil {
		merged.AspectRatio = *override.AspectRatio
	}
	return merged
}

// Camera maps normalized image-plane coordinates to world-space rays using
// a pinhole model. The viewing basis is derived once at construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds a camera from its configuration: viewport half-height
// from tan(fov/2), a right-handed orthonormal basis (u, v, w), and the
// image plane at unit distance along -w
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay generates a ray through image-plane coordinates (s, t) in [0,1]
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
