package renderer

import (
	"iter"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

// ScreenConfig places the eye and the screen rectangle. The screen lies in
// the plane z = ScreenZ, centered on the z axis.
type ScreenConfig struct {
	Width        int       // Horizontal resolution in pixels
	Height       int       // Vertical resolution in pixels
	ScreenZ      float64   // Z coordinate of the screen plane
	ScreenWidth  float64   // Screen extent along X in world units
	ScreenHeight float64   // Screen extent along Y in world units
	Eye          core.Vec3 // Ray origin
}

// DefaultScreenConfig returns a 1080p 16:9 screen two units in front of the
// origin with the eye three units behind it.
func DefaultScreenConfig() ScreenConfig {
	return ScreenConfig{
		Width:        1920,
		Height:       1080,
		ScreenZ:      -2.0,
		ScreenWidth:  3.55555555555,
		ScreenHeight: 2.0,
		Eye:          core.NewVec3(0, 0, -5),
	}
}

// MergeScreenConfig returns base with every non-zero field of override applied
func MergeScreenConfig(base, override ScreenConfig) ScreenConfig {
	merged := base
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.Height != 0 {
		merged.Height = override.Height
	}
	if override.ScreenZ != 0 {
		merged.ScreenZ = override.ScreenZ
	}
	if override.ScreenWidth != 0 {
		merged.ScreenWidth = override.ScreenWidth
	}
	if override.ScreenHeight != 0 {
		merged.ScreenHeight = override.ScreenHeight
	}
	if override.Eye != (core.Vec3{}) {
		merged.Eye = override.Eye
	}
	return merged
}

// Screen generates one primary ray per pixel
type Screen struct {
	config     ScreenConfig
	topLeft    core.Vec3
	incrementW core.Vec3
	incrementH core.Vec3
}

// NewScreen creates a screen from its configuration
func NewScreen(config ScreenConfig) *Screen {
	return &Screen{
		config:     config,
		topLeft:    core.NewVec3(-config.ScreenWidth/2, config.ScreenHeight/2, config.ScreenZ),
		incrementW: core.NewVec3(config.ScreenWidth/float64(config.Width), 0, 0),
		incrementH: core.NewVec3(0, -config.ScreenHeight/float64(config.Height), 0),
	}
}

// Width returns the horizontal resolution
func (s *Screen) Width() int { return s.config.Width }

// Height returns the vertical resolution
func (s *Screen) Height() int { return s.config.Height }

// Ray returns the normalized ray from the eye through pixel (i, j), where
// row j = 0 is the top of the screen.
func (s *Screen) Ray(i, j int) core.Ray {
	screenPoint := s.topLeft.
		Add(s.incrementW.Multiply(float64(i))).
		Add(s.incrementH.Multiply(float64(j)))

	return core.NewRay(s.config.Eye, screenPoint.Subtract(s.config.Eye).Normalize())
}

// Rays yields Width*Height rays in row-major order. Each call starts over.
func (s *Screen) Rays() iter.Seq[core.Ray] {
	return func(yield func(core.Ray) bool) {
		for j := 0; j < s.config.Height; j++ {
			for i := 0; i < s.config.Width; i++ {
				if !yield(s.Ray(i, j)) {
					return
				}
			}
		}
	}
}
