package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
	"github.com/mfarrell/go-whitted-raytracer/pkg/geometry"
	"github.com/mfarrell/go-whitted-raytracer/pkg/integrator"
	"github.com/mfarrell/go-whitted-raytracer/pkg/lights"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of jittered rays per pixel
	MaxDepth        int   // Maximum reflection recursion depth
	Seed            int64 // Base seed for the per-row random streams
	NumWorkers      int   // Render workers; 0 means runtime.NumCPU()
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          300,
		SamplesPerPixel: 16,
		MaxDepth:        5,
		Seed:            42,
	}
}

// Scene provides the world, light, and camera needed to render a frame.
// Declared here to avoid a circular import with the scene package.
type Scene interface {
	GetWorld() *geometry.World
	GetLight() lights.PointLight
	GetCameraConfig() CameraConfig
}

// Renderer renders a scene into a framebuffer of averaged pre-gamma colors
type Renderer struct {
	scene      Scene
	integrator *integrator.Whitted
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer for the given scene and configuration
func NewRenderer(scene Scene, config Config, logger core.Logger) *Renderer {
	return &Renderer{
		scene:      scene,
		integrator: integrator.NewWhitted(config.MaxDepth),
		config:     config,
		logger:     logger,
	}
}

// Render traces the full frame and returns a row-major framebuffer with
// row 0 at the top of the image. Scanlines are distributed across a worker
// pool; the scene is read-only for the render's duration, so workers share
// it without synchronization. Each row uses its own random stream seeded
// from the base seed, making output deterministic regardless of worker
// count.
func (r *Renderer) Render() []core.Vec3 {
	width, height := r.config.Width, r.config.Height

	cameraConfig := r.scene.GetCameraConfig()
	if cameraConfig.AspectRatio == 0 {
		cameraConfig.AspectRatio = float64(width) / float64(height)
	}
	camera := NewCamera(cameraConfig)
	world := r.scene.GetWorld()
	light := r.scene.GetLight()

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	if r.logger != nil {
		r.logger.Printf("rendering %dx%d, %d samples/pixel, depth %d, %d workers",
			width, height, r.config.SamplesPerPixel, r.config.MaxDepth, numWorkers)
	}

	framebuffer := make([]core.Vec3, width*height)
	rows := make(chan int, height)
	var wg sync.WaitGroup

	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				random := rand.New(rand.NewSource(r.config.Seed + int64(j)))
				r.renderRow(j, camera, world, light, random, framebuffer)
			}
		}()
	}

	for j := height - 1; j >= 0; j-- {
		rows <- j
	}
	close(rows)
	wg.Wait()

	return framebuffer
}

// renderRow traces every pixel of scanline j. Row j of the world maps to
// framebuffer row height-1-j, so the first framebuffer row is the topmost.
func (r *Renderer) renderRow(j int, camera *Camera, world *geometry.World, light lights.PointLight, random *rand.Rand, framebuffer []core.Vec3) {
	width, height := r.config.Width, r.config.Height
	samples := r.config.SamplesPerPixel

	// Jittered coordinates normalize against the last pixel index; single
	// pixel dimensions divide by 1 instead of 0
	sDenom := float64(width - 1)
	if width == 1 {
		sDenom = 1
	}
	tDenom := float64(height - 1)
	if height == 1 {
		tDenom = 1
	}

	for i := 0; i < width; i++ {
		colorAccum := core.Vec3{}
		for sample := 0; sample < samples; sample++ {
			s := (float64(i) + random.Float64()) / sDenom
			t := (float64(j) + random.Float64()) / tDenom
			ray := camera.GetRay(s, t)
			colorAccum = colorAccum.Add(r.integrator.RayColor(ray, world, light, r.integrator.MaxDepth))
		}
		framebuffer[(height-1-j)*width+i] = colorAccum.Divide(float64(samples))
	}
}
