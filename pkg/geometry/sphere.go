package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Finish
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. It panics if radius is not positive.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %g", radius))
	}
	return &Sphere{
		Finish: DefaultFinish(),
		Center: center,
		Radius: radius,
	}
}

// WithFinish sets the sphere's colors and returns the sphere
func (s *Sphere) WithFinish(f Finish) *Sphere {
	s.Finish = f
	return s
}

// Intersect tests if a ray intersects with the sphere. The ray direction
// must be unit length, which lets the quadratic's leading term drop out.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	origin := ray.Origin
	c := origin.Dot(origin) + s.Center.Dot(s.Center) -
		2*origin.Dot(s.Center) - s.Radius*s.Radius
	b := ray.Direction.Dot(origin.Subtract(s.Center))

	dsq := b*b - c
	if dsq <= 0 {
		return 0, false
	}

	d := math.Sqrt(dsq)
	near, far := -b-d, -b+d

	// Try the closer intersection point first
	if near > core.IntersectEpsilon {
		return near, true
	}
	if far > core.IntersectEpsilon {
		return far, true
	}
	return 0, false
}

// Normal returns the outward unit normal at a point on the sphere
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// IntersectWithNormal returns the hit distance and outward normal
func (s *Sphere) IntersectWithNormal(ray core.Ray) (float64, core.Vec3, bool) {
	return IntersectWithNormal(s, ray)
}
