package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-torus-raytracer/pkg/renderer"
	"github.com/df07/go-torus-raytracer/pkg/writers"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"torus scene", "torus", false},
		{"depth scene", "depth", false},
		{"default scene", "default", false},
		{"rings scene", "rings", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if scene.Screen.Width <= 0 || scene.Screen.Height <= 0 {
				t.Errorf("Scene resolution should be positive, got %dx%d", scene.Screen.Width, scene.Screen.Height)
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	outputDir := createOutputDir("rings")
	if outputDir != filepath.Join("output", "rings") {
		t.Errorf("Unexpected output directory %q", outputDir)
	}
}

func TestRun_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "torus.ppm")
	opts := options{
		sceneType: "torus",
		format:    writers.FormatPPM,
		out:       path,
		width:     32,
		height:    18,
		workers:   2,
	}

	if err := run(context.Background(), opts, renderer.NewSilentLogger()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	header := "P6\n32 18\n255\n"
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Errorf("Expected PPM header %q", header)
	}
	if len(data) != len(header)+32*18*3 {
		t.Errorf("Expected %d bytes, got %d", len(header)+32*18*3, len(data))
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr string
	}{
		{"unknown scene", options{sceneType: "cornell", format: writers.FormatPPM}, "unknown scene"},
		{"bad format", options{sceneType: "torus", format: "gif", out: filepath.Join(t.TempDir(), "x"), width: 4, height: 2}, "unknown output format"},
		{"negative width", options{sceneType: "torus", format: writers.FormatPPM, width: -4}, "invalid resolution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.opts, renderer.NewSilentLogger())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := options{sceneType: "torus", format: writers.FormatPPM, out: filepath.Join(t.TempDir(), "x.ppm"), width: 8, height: 8}
	if err := run(ctx, opts, renderer.NewSilentLogger()); err == nil {
		t.Error("Expected an error from a cancelled render")
	}
}

func TestRun_RejectsFormatBeforeRendering(t *testing.T) {
	// A cancelled context would fail the render, so the format error must come first
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "torus.gif")
	opts := options{sceneType: "torus", format: "gif", out: path, width: 8, height: 8}

	err := run(ctx, opts, renderer.NewSilentLogger())
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("Expected an unknown format error, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("Expected no output file, stat returned %v", statErr)
	}
}
