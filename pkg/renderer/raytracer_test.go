package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/geometry"
	"github.com/df07/go-torus-raytracer/pkg/lights"
	"github.com/df07/go-torus-raytracer/pkg/world"
)

func newTestWorld() *world.World {
	return world.NewWorld(
		[]geometry.Surface{
			geometry.NewTorus(1.0, 0.3),
			geometry.NewSphere(core.Origin, 0.5),
		},
		[]lights.PointLight{
			lights.NewPointLight(core.NewVec3(0, 2, -3), core.White),
		},
	)
}

// constantTracer returns a fixed color for every ray
type constantTracer struct {
	color core.Color
	depth core.Color
}

func (c constantTracer) Trace(core.Ray) core.Color                        { return c.color }
func (c constantTracer) TraceDepth(core.Ray, float64, float64) core.Color { return c.depth }

func TestRaytracer_ParallelMatchesSequential(t *testing.T) {
	screen := NewScreen(MergeScreenConfig(DefaultScreenConfig(), ScreenConfig{Width: 48, Height: 27}))
	config := DefaultConfig()
	config.Workers = 4
	rt := NewRaytracer(newTestWorld(), screen, config, NewSilentLogger())

	sequential, seqStats := rt.RenderSequential()
	parallel, parStats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(sequential.Pix) != len(parallel.Pix) {
		t.Fatalf("Image sizes differ: %d vs %d", len(sequential.Pix), len(parallel.Pix))
	}
	for i := range sequential.Pix {
		if sequential.Pix[i] != parallel.Pix[i] {
			t.Fatalf("Images differ at byte %d", i)
		}
	}

	if seqStats.TotalPixels != 48*27 || parStats.TotalPixels != 48*27 {
		t.Errorf("Expected %d pixels, got %d and %d", 48*27, seqStats.TotalPixels, parStats.TotalPixels)
	}
	if seqStats.LitPixels != parStats.LitPixels {
		t.Errorf("Lit pixel counts differ: %d vs %d", seqStats.LitPixels, parStats.LitPixels)
	}
	if seqStats.LitPixels == 0 {
		t.Error("Expected the torus and sphere to light some pixels")
	}
}

func TestRaytracer_CenterPixelHitsSphere(t *testing.T) {
	screen := NewScreen(MergeScreenConfig(DefaultScreenConfig(), ScreenConfig{Width: 33, Height: 33, ScreenWidth: 2}))
	rt := NewRaytracer(newTestWorld(), screen, DefaultConfig(), nil)

	img, _ := rt.RenderSequential()

	center := img.RGBAAt(16, 16)
	if center.R == 0 && center.G == 0 && center.B == 0 {
		t.Error("Expected the center pixel to see the sphere")
	}
	corner := img.RGBAAt(0, 0)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Errorf("Expected a black corner, got %v", corner)
	}
}

func TestRaytracer_Modes(t *testing.T) {
	screen := NewScreen(MergeScreenConfig(DefaultScreenConfig(), ScreenConfig{Width: 4, Height: 2}))
	tracer := constantTracer{color: core.NewColor(0, 1, 0), depth: core.NewColor(1, 0, 0)}

	tests := []struct {
		name     string
		mode     Mode
		expected core.Color
	}{
		{"shaded", ModeShaded, core.NewColor(0, 1, 0)},
		{"depth", ModeDepth, core.NewColor(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Mode = tt.mode
			img, stats := NewRaytracer(tracer, screen, config, nil).RenderSequential()

			if stats.LitPixels != 8 {
				t.Errorf("Expected every pixel lit, got %d", stats.LitPixels)
			}
			if got := img.RGBAAt(3, 1); got != tt.expected.RGBA() {
				t.Errorf("Expected %v, got %v", tt.expected.RGBA(), got)
			}
		})
	}
}

func TestRaytracer_RowCallback(t *testing.T) {
	screen := NewScreen(MergeScreenConfig(DefaultScreenConfig(), ScreenConfig{Width: 3, Height: 5}))
	rt := NewRaytracer(constantTracer{}, screen, DefaultConfig(), nil)

	var rows []int
	rt.SetRowCallback(func(y int) { rows = append(rows, y) })
	rt.RenderSequential()

	if len(rows) != 5 {
		t.Fatalf("Expected 5 row callbacks, got %v", rows)
	}
	for i, y := range rows {
		if y != i {
			t.Errorf("Expected rows in order, got %v", rows)
			break
		}
	}
}

func TestRaytracer_RenderCancelled(t *testing.T) {
	screen := NewScreen(MergeScreenConfig(DefaultScreenConfig(), ScreenConfig{Width: 8, Height: 8}))
	rt := NewRaytracer(newTestWorld(), screen, DefaultConfig(), NewSilentLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image from a cancelled render")
	}
}
