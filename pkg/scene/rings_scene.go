package scene

import (
	"math"

	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/geometry"
	"github.com/df07/go-torus-raytracer/pkg/lights"
	"github.com/df07/go-torus-raytracer/pkg/renderer"
	"github.com/df07/go-torus-raytracer/pkg/world"
)

// NewRingsScene creates three tori linked like a chain
func NewRingsScene() *Scene {
	finish := func(r, g, b float64) geometry.Finish {
		c := core.NewColor(r, g, b)
		return geometry.Finish{Diffuse: c, Ambient: c}
	}

	surfaces := []geometry.Surface{
		geometry.NewTorusAt(0.7, 0.15, core.NewVec3(-1.0, 0, 0), 0, 0).WithFinish(finish(0.9, 0.2, 0.2)),
		geometry.NewTorusAt(0.7, 0.15, core.NewVec3(0, 0, 0), math.Pi/2, 0).WithFinish(finish(0.2, 0.9, 0.2)),
		geometry.NewTorusAt(0.7, 0.15, core.NewVec3(1.0, 0, 0), 0, 0).WithFinish(finish(0.2, 0.3, 0.9)),
	}

	pointLights := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(0, 3, -4), core.White),
		lights.NewPointLight(core.NewVec3(-4, -1, -2), core.NewColor(0.3, 0.3, 0.3)),
	}

	return &Scene{
		Name:   "rings",
		Screen: renderer.DefaultScreenConfig(),
		World:  world.NewWorld(surfaces, pointLights),
		Mode:   renderer.ModeShaded,
	}
}
