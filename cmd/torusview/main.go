// Command torusview renders a scene in a desktop window, showing rows as
// the worker pool finishes them.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"runtime"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-torus-raytracer/pkg/renderer"
	"github.com/df07/go-torus-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "torus", "Scene name")
	width := flag.Int("width", 640, "Horizontal resolution")
	height := flag.Int("height", 360, "Vertical resolution")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Parse()

	selectedScene, err := scene.Lookup(*sceneType)
	if err != nil {
		log.Fatal(err)
	}

	screenConfig := renderer.MergeScreenConfig(selectedScene.Screen, renderer.ScreenConfig{
		Width:  *width,
		Height: *height,
	})
	config := renderer.DefaultConfig()
	config.Workers = *workers
	config.Mode = selectedScene.Mode

	raytracer := renderer.NewRaytracer(selectedScene.World, renderer.NewScreen(screenConfig), config, renderer.NewDefaultLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := newViewer(selectedScene.Name, screenConfig.Width, screenConfig.Height)
	go v.render(ctx, raytracer, config.Workers)

	ebiten.SetWindowTitle(v.title(0))
	ebiten.SetWindowSize(screenConfig.Width, screenConfig.Height)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

// viewer is an ebiten.Game that displays a partially rendered image
type viewer struct {
	name          string
	width, height int
	shownRows     int

	mu      sync.Mutex
	display *image.RGBA // Rows copied in as they complete
	dirty   bool
	done    int

	frame *ebiten.Image
}

func newViewer(name string, width, height int) *viewer {
	return &viewer{
		name:    name,
		width:   width,
		height:  height,
		display: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// render drives a worker pool over every row and copies each finished row
// into the display image.
func (v *viewer) render(ctx context.Context, rt *renderer.Raytracer, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	work := image.NewRGBA(v.display.Rect)
	pool := renderer.NewWorkerPool(rt, numWorkers, v.height)
	pool.Start(ctx)
	for y := 0; y < v.height; y++ {
		pool.SubmitTask(renderer.RowTask{Y: y, Image: work})
	}
	go pool.Stop()

	for {
		result, ok := pool.GetResult()
		if !ok {
			return
		}
		if result.Error != nil {
			continue
		}

		start := work.PixOffset(0, result.Y)
		end := start + 4*v.width

		v.mu.Lock()
		copy(v.display.Pix[start:end], work.Pix[start:end])
		v.dirty = true
		v.done++
		v.mu.Unlock()
	}
}

func (v *viewer) title(rows int) string {
	if rows >= v.height {
		return fmt.Sprintf("torusview (%s)", v.name)
	}
	return fmt.Sprintf("torusview (%s) %d%%", v.name, 100*rows/v.height)
}

func (v *viewer) Update() error {
	v.mu.Lock()
	rows := v.done
	v.mu.Unlock()

	if rows != v.shownRows {
		v.shownRows = rows
		ebiten.SetWindowTitle(v.title(rows))
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame == nil {
		v.frame = ebiten.NewImage(v.width, v.height)
	}

	v.mu.Lock()
	if v.dirty {
		v.frame.WritePixels(v.display.Pix)
		v.dirty = false
	}
	v.mu.Unlock()

	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
