package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/mfarrell/go-whitted-raytracer/pkg/ppm"
	"github.com/mfarrell/go-whitted-raytracer/pkg/renderer"
	"github.com/mfarrell/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "all", "Scene: 'sphere', 'cube_plane_dim', 'all', 'all_alt_cam' or 'custom'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 300, "Image height in pixels")
	spp := flag.Int("spp", 16, "Samples per pixel")
	depth := flag.Int("depth", 5, "Maximum reflection bounce depth")
	out := flag.String("out", "", "Output PPM file (default scene_<scene>.ppm)")
	seed := flag.Int64("seed", 42, "Base seed for the sampling random streams")
	workers := flag.Int("workers", 0, "Number of render workers (0 = all CPUs)")
	help := flag.Bool("help", false, "Show help information")

	var lookFrom, lookAt, vup vec3Flag
	flag.Var(&lookFrom, "lookfrom", `Camera position override as "x,y,z"`)
	flag.Var(&lookAt, "lookat", `Camera target override as "x,y,z"`)
	flag.Var(&vup, "vup", `Camera up vector override as "x,y,z"`)
	fov := flag.Float64("fov", 0, "Vertical field of view override in degrees (0 = scene default)")

	var lightPos, lightInt vec3Flag
	flag.Var(&lightPos, "light-pos", `Light position override as "x,y,z"`)
	flag.Var(&lightInt, "light-int", `Light intensity override as "r,g,b"`)

	var objects objectListFlag
	flag.Var(sphereFlag{&objects}, "add-sphere", `Add a sphere: "cx,cy,cz;radius;r,g,b;reflectivity" (repeatable)`)
	flag.Var(planeFlag{&objects}, "add-plane", `Add a plane: "px,py,pz;nx,ny,nz;r,g,b;reflectivity" (repeatable)`)
	flag.Var(cubeFlag{&objects}, "add-cube", `Add a cube: "cx,cy,cz;size;r,g,b;reflectivity" (repeatable)`)
	flag.Var(cylinderFlag{&objects}, "add-cylinder", `Add a cylinder: "cx,cy,cz;radius;halfHeight;r,g,b;reflectivity" (repeatable)`)

	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	// Any supplied object switches to the custom scene
	if len(objects.primitives) > 0 {
		*sceneName = "custom"
	}

	var selectedScene *scene.Scene
	switch *sceneName {
	case "sphere":
		selectedScene = scene.NewSphereScene()
	case "cube_plane_dim":
		selectedScene = scene.NewCubePlaneDimScene()
	case "all":
		selectedScene = scene.NewAllScene()
	case "all_alt_cam":
		selectedScene = scene.NewAllAltCamScene()
	case "custom":
		selectedScene = scene.NewCustomScene(objects.primitives)
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneName)
		selectedScene = scene.NewAllScene()
		*sceneName = "all"
	}

	var cameraOverride renderer.CameraOverride
	if lookFrom.isSet {
		cameraOverride.LookFrom = &lookFrom.value
	}
	if lookAt.isSet {
		cameraOverride.LookAt = &lookAt.value
	}
	if vup.isSet {
		cameraOverride.Up = &vup.value
	}
	if *fov != 0 {
		cameraOverride.VFov = fov
	}
	selectedScene.Camera = renderer.MergeCameraConfig(selectedScene.Camera, cameraOverride)
	if lightPos.isSet {
		selectedScene.Light.Position = lightPos.value
	}
	if lightInt.isSet {
		selectedScene.Light.Intensity = lightInt.value.Clamp(0, math.Inf(1))
	}

	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: max(1, *spp),
		MaxDepth:        *depth,
		Seed:            *seed,
		NumWorkers:      *workers,
	}

	r := renderer.NewRenderer(selectedScene, config, stdoutLogger{})

	startTime := time.Now()
	framebuffer := r.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	outName := *out
	if outName == "" {
		outName = fmt.Sprintf("scene_%s.ppm", *sceneName)
	}

	file, err := os.Create(outName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := ppm.Write(file, framebuffer, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PPM: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", outName)
}

// stdoutLogger adapts fmt printing to the core.Logger interface
type stdoutLogger struct{}

func (stdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
