package scene

import (
	"github.com/mfarrell/go-whitted-raytracer/pkg/geometry"
	"github.com/mfarrell/go-whitted-raytracer/pkg/lights"
	"github.com/mfarrell/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World  *geometry.World
	Light  lights.PointLight
	Camera renderer.CameraConfig
}

// GetWorld returns the primitive collection
func (s *Scene) GetWorld() *geometry.World {
	return s.World
}

// GetLight returns the scene's point light
func (s *Scene) GetLight() lights.PointLight {
	return s.Light
}

// GetCameraConfig returns the camera configuration
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.Camera
}
