package scene

import (
	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/geometry"
	"github.com/df07/go-torus-raytracer/pkg/lights"
	"github.com/df07/go-torus-raytracer/pkg/renderer"
	"github.com/df07/go-torus-raytracer/pkg/world"
)

// newTorusWorld is a torus of radius 1 and tube 0.3 around a sphere of
// radius 0.5, both centered on the origin.
func newTorusWorld() *world.World {
	surfaces := []geometry.Surface{
		geometry.NewTorus(1.0, 0.3),
		geometry.NewSphere(core.Origin, 0.5),
	}
	pointLights := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(-2, 2, -3), core.White),
		lights.NewPointLight(core.NewVec3(3, 1, -2), core.NewColor(0.6, 0.6, 0.6)),
	}
	return world.NewWorld(surfaces, pointLights)
}

// NewTorusScene creates the torus and sphere scene with Lambertian shading
func NewTorusScene() *Scene {
	return &Scene{
		Name:   "torus",
		Screen: renderer.DefaultScreenConfig(),
		World:  newTorusWorld(),
		Mode:   renderer.ModeShaded,
	}
}

// NewDepthScene renders the torus scene as a red depth cue
func NewDepthScene() *Scene {
	return &Scene{
		Name:   "depth",
		Screen: renderer.DefaultScreenConfig(),
		World:  newTorusWorld(),
		Mode:   renderer.ModeDepth,
	}
}
