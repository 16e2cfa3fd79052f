package geometry

import "github.com/df07/go-torus-raytracer/pkg/core"

// Surface is implemented by every shape that can be placed in a world
type Surface interface {
	// Intersect returns the distance t along the ray to the nearest hit,
	// such that ray.At(t) lies on the surface.
	Intersect(ray core.Ray) (float64, bool)

	// Normal returns the unit outward normal at a point on the surface
	Normal(point core.Vec3) core.Vec3

	// IntersectWithNormal returns the hit distance together with the
	// normal used for shading at that hit.
	IntersectWithNormal(ray core.Ray) (float64, core.Vec3, bool)

	ColorDiffuse() core.Color
	ColorAmbient() core.Color
}
