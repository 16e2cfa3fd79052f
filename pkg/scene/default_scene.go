package scene

import (
	"math"

	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/geometry"
	"github.com/df07/go-torus-raytracer/pkg/lights"
	"github.com/df07/go-torus-raytracer/pkg/renderer"
	"github.com/df07/go-torus-raytracer/pkg/world"
)

// NewDefaultScene creates a tilted torus and a sphere resting on a floor
func NewDefaultScene() *Scene {
	screen := renderer.MergeScreenConfig(renderer.DefaultScreenConfig(), renderer.ScreenConfig{
		Width:  960,
		Height: 540,
		Eye:    core.NewVec3(0, 0.5, -5),
	})

	// Floor at y = -1, normal pointing down and away from the origin
	floor := geometry.NewPlane(core.NewVec3(0, -1, 0), 1.0).WithFinish(geometry.Finish{
		Diffuse: core.NewColor(0.6, 0.6, 0.6),
		Ambient: core.NewColor(0.5, 0.5, 0.5),
	})

	ring := geometry.NewTorusAt(0.8, 0.25, core.NewVec3(-0.9, -0.2, 0.5), math.Pi/3, math.Pi/6).
		WithFinish(geometry.Finish{
			Diffuse: core.NewColor(0.9, 0.5, 0.2),
			Ambient: core.NewColor(0.9, 0.5, 0.2),
		})

	ball := geometry.NewSphere(core.NewVec3(1.1, -0.4, 0.3), 0.6).WithFinish(geometry.Finish{
		Diffuse: core.NewColor(0.2, 0.4, 0.9),
		Ambient: core.NewColor(0.2, 0.4, 0.9),
	})

	pointLights := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(-3, 3, -3), core.NewColor(1.0, 0.95, 0.9)),
		lights.NewPointLight(core.NewVec3(3, 2, -4), core.NewColor(0.4, 0.5, 0.7)),
	}

	return &Scene{
		Name:   "default",
		Screen: screen,
		World:  world.NewWorld([]geometry.Surface{floor, ring, ball}, pointLights),
		Mode:   renderer.ModeShaded,
	}
}
