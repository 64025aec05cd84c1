package scene

import (
	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
	"github.com/mfarrell/go-whitted-raytracer/pkg/geometry"
	"github.com/mfarrell/go-whitted-raytracer/pkg/lights"
	"github.com/mfarrell/go-whitted-raytracer/pkg/renderer"
)

func defaultLight() lights.PointLight {
	return lights.NewPointLight(core.NewVec3(5, 5, -2), core.NewVec3(1, 1, 1))
}

func defaultCamera(lookFrom, lookAt core.Vec3, vfov float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom: lookFrom,
		LookAt:   lookAt,
		Up:       core.NewVec3(0, 1, 0),
		VFov:     vfov,
	}
}

func floorPlane(reflectivity float64) geometry.Primitive {
	return geometry.NewPlane(
		core.NewVec3(0, -0.5, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0.82, 0.82, 0.82),
		reflectivity,
	)
}

// NewSphereScene creates a scene with a reflective floor and a red sphere
func NewSphereScene() *Scene {
	world := geometry.NewWorld()
	world.Add(floorPlane(0.15))
	world.Add(geometry.NewSphere(
		core.NewVec3(0, 0, -1.3), 0.5,
		core.NewVec3(0.9, 0.2, 0.2), 0.05,
	))

	return &Scene{
		World:  world,
		Light:  defaultLight(),
		Camera: defaultCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90),
	}
}

// NewCubePlaneDimScene creates a flat plane and a matte cube under a dim light
func NewCubePlaneDimScene() *Scene {
	world := geometry.NewWorld()
	world.Add(floorPlane(0.05))
	world.Add(geometry.NewCube(
		core.NewVec3(0, -0.2, -1.3), 0.6,
		core.NewVec3(0.25, 0.28, 0.35), 0,
	))

	return &Scene{
		World:  world,
		Light:  lights.NewPointLight(core.NewVec3(5, 5, -2), core.NewVec3(0.6, 0.6, 0.6)),
		Camera: defaultCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, -0.1, -1.3), 90),
	}
}

// NewAllScene creates the default scene showing every primitive kind
func NewAllScene() *Scene {
	world := geometry.NewWorld()
	world.Add(floorPlane(0.05))
	world.Add(geometry.NewSphere(
		core.NewVec3(-0.8, 0, -1.3), 0.5,
		core.NewVec3(0.9, 0.2, 0.2), 0.10,
	))
	world.Add(geometry.NewCube(
		core.NewVec3(0.3, -0.2, -1.4), 0.6,
		core.NewVec3(0.35, 0.42, 0.65), 0,
	))
	world.Add(geometry.NewCylinder(
		core.NewVec3(1.4, -0.1, -1.6), 0.3, 0.4,
		core.NewVec3(0.2, 0.7, 0.4), 0.05,
	))

	return &Scene{
		World:  world,
		Light:  defaultLight(),
		Camera: defaultCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90),
	}
}

// NewAllAltCamScene shows every primitive kind from an alternate viewpoint
func NewAllAltCamScene() *Scene {
	world := geometry.NewWorld()
	world.Add(floorPlane(0.05))
	world.Add(geometry.NewSphere(
		core.NewVec3(-0.8, 0, -1.3), 0.5,
		core.NewVec3(0.9, 0.2, 0.2), 0.02,
	))
	world.Add(geometry.NewCube(
		core.NewVec3(0.3, -0.2, -1.4), 0.6,
		core.NewVec3(0.35, 0.42, 0.65), 0,
	))
	world.Add(geometry.NewCylinder(
		core.NewVec3(1.4, -0.1, -1.6), 0.3, 0.4,
		core.NewVec3(0.2, 0.7, 0.4), 0.08,
	))

	return &Scene{
		World:  world,
		Light:  defaultLight(),
		Camera: defaultCamera(core.NewVec3(1.6, 0.5, 1.2), core.NewVec3(0.1, -0.2, -1.5), 75),
	}
}

// NewCustomScene builds a scene from caller-supplied primitives. A default
// floor plane is added when the caller supplied no plane of their own.
func NewCustomScene(primitives []geometry.Primitive) *Scene {
	world := geometry.NewWorld()

	hasPlane := false
	for _, p := range primitives {
		if p.Kind == geometry.KindPlane {
			hasPlane = true
		}
		world.Add(p)
	}
	if !hasPlane {
		world.Add(floorPlane(0.05))
	}

	return &Scene{
		World:  world,
		Light:  defaultLight(),
		Camera: defaultCamera(core.NewVec3(0, 0.5, 1), core.NewVec3(0, 0, -1), 75),
	}
}
