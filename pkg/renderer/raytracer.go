package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

// Mode selects how a primary ray is turned into a color
type Mode int

const (
	ModeShaded Mode = iota // Lambertian shading with shadows
	ModeDepth              // Red channel encodes hit distance
)

// Config contains rendering configuration
type Config struct {
	Workers   int     // Parallel workers; 0 means one per CPU
	Mode      Mode    // Shading mode
	DepthNear float64 // Distance mapped to full red in ModeDepth
	DepthFar  float64 // Distance mapped to black in ModeDepth
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers:   0,
		Mode:      ModeShaded,
		DepthNear: 0.9,
		DepthFar:  6.0,
	}
}

// Tracer computes the color seen along a ray. *world.World implements it.
type Tracer interface {
	Trace(ray core.Ray) core.Color
	TraceDepth(ray core.Ray, near, far float64) core.Color
}

// Raytracer handles the rendering process
type Raytracer struct {
	tracer Tracer
	screen *Screen
	config Config
	logger core.Logger
	onRow  func(y int)
}

// NewRaytracer creates a new raytracer
func NewRaytracer(tracer Tracer, screen *Screen, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewSilentLogger()
	}
	return &Raytracer{
		tracer: tracer,
		screen: screen,
		config: config,
		logger: logger,
	}
}

// SetRowCallback registers fn to run after each row finishes. In parallel
// renders it is called from worker goroutines.
func (rt *Raytracer) SetRowCallback(fn func(y int)) {
	rt.onRow = fn
}

// Screen returns the screen the raytracer renders through
func (rt *Raytracer) Screen() *Screen {
	return rt.screen
}

func (rt *Raytracer) shade(ray core.Ray) core.Color {
	if rt.config.Mode == ModeDepth {
		return rt.tracer.TraceDepth(ray, rt.config.DepthNear, rt.config.DepthFar)
	}
	return rt.tracer.Trace(ray)
}

func (rt *Raytracer) newImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, rt.screen.Width(), rt.screen.Height()))
}

// RenderRow renders row y into img and returns the number of non-black pixels
func (rt *Raytracer) RenderRow(img *image.RGBA, y int) int {
	lit := 0
	for x := 0; x < rt.screen.Width(); x++ {
		c := rt.shade(rt.screen.Ray(x, y))
		if !c.IsBlack() {
			lit++
		}
		img.SetRGBA(x, y, c.RGBA())
	}
	if rt.onRow != nil {
		rt.onRow(y)
	}
	return lit
}

// RenderSequential renders every pixel on the calling goroutine, consuming
// the screen's rays in row-major order.
func (rt *Raytracer) RenderSequential() (*image.RGBA, RenderStats) {
	start := time.Now()
	img := rt.newImage()
	width := rt.screen.Width()
	stats := RenderStats{TotalPixels: width * rt.screen.Height()}

	index := 0
	for ray := range rt.screen.Rays() {
		x, y := index%width, index/width
		c := rt.shade(ray)
		if !c.IsBlack() {
			stats.LitPixels++
		}
		img.SetRGBA(x, y, c.RGBA())
		index++
		if x == width-1 && rt.onRow != nil {
			rt.onRow(y)
		}
	}

	stats.Duration = time.Since(start)
	return img, stats
}

// Render renders the image with rows spread across a worker pool. The
// result is identical to RenderSequential.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	img := rt.newImage()
	height := rt.screen.Height()

	numWorkers := rt.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	rt.logger.Printf("Rendering %dx%d using %d workers...\n", rt.screen.Width(), height, numWorkers)

	pool := NewWorkerPool(rt, numWorkers, height)
	pool.Start(ctx)
	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{Y: y, Image: img})
	}
	pool.Stop()

	stats := RenderStats{TotalPixels: rt.screen.Width() * height}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		stats.LitPixels += result.LitPixels
	}
	stats.Duration = time.Since(start)

	if renderErr != nil {
		rt.logger.Printf("Rendering cancelled after %v\n", stats.Duration)
		return nil, stats, fmt.Errorf("render cancelled: %w", renderErr)
	}

	rt.logger.Printf("Render completed in %v (%.1f%% of pixels lit)\n", stats.Duration, 100*stats.Coverage())
	return img, stats, nil
}
