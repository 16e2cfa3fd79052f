package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/renderer"
	"github.com/df07/go-torus-raytracer/pkg/scene"
	"github.com/df07/go-torus-raytracer/pkg/writers"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "torus", "Scene name (see -help)")
	format := flag.String("format", "ppm", "Output format: 'ppm', 'png' or 'console'")
	out := flag.String("out", "", "Output path; '-' writes to stdout (default output/<scene>/render_<timestamp>.<ext>)")
	width := flag.Int("width", 0, "Override horizontal resolution")
	height := flag.Int("height", 0, "Override vertical resolution")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	// Image bytes on stdout must not be mixed with progress messages
	logger := renderer.NewDefaultLogger()
	if *out == "-" {
		logger = renderer.NewStderrLogger()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{
		sceneType: *sceneType,
		format:    writers.Format(*format),
		out:       *out,
		width:     *width,
		height:    *height,
		workers:   *workers,
	}
	if err := run(ctx, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	sceneType string
	format    writers.Format
	out       string
	width     int
	height    int
	workers   int
}

func showHelp() {
	fmt.Println("Torus Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
}

// run renders the requested scene and writes it out
func run(ctx context.Context, opts options, logger core.Logger) error {
	// Fail before rendering rather than after
	if err := opts.format.Validate(); err != nil {
		return err
	}

	selectedScene, err := createScene(opts.sceneType)
	if err != nil {
		return err
	}

	screenConfig := renderer.MergeScreenConfig(selectedScene.Screen, renderer.ScreenConfig{
		Width:  opts.width,
		Height: opts.height,
	})
	if screenConfig.Width <= 0 || screenConfig.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", screenConfig.Width, screenConfig.Height)
	}

	config := renderer.DefaultConfig()
	config.Workers = opts.workers
	config.Mode = selectedScene.Mode

	logger.Printf("Using %s scene...\n", selectedScene.Name)
	raytracer := renderer.NewRaytracer(selectedScene.World, renderer.NewScreen(screenConfig), config, logger)

	img, _, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	filename := opts.out
	if filename != "-" {
		if filename == "" {
			outputDir := createOutputDir(selectedScene.Name)
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			timestamp := time.Now().Format("20060102_150405")
			filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, opts.format.Extension()))
		}

		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	if err := writers.Write(w, img, opts.format); err != nil {
		return err
	}

	if filename != "-" {
		logger.Printf("Render saved as %s\n", filename)
	}
	return nil
}

// createScene looks up a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.Lookup(sceneType)
}

// createOutputDir returns the directory renders of a scene are saved under
func createOutputDir(sceneType string) string {
	return filepath.Join("output", sceneType)
}
