package geometry

import (
	"math"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

// Plane is the set of points p with p·UnitNormal = OriginDistance.
// UnitNormal points away from the coordinate origin so OriginDistance >= 0.
type Plane struct {
	Finish
	UnitNormal     core.Vec3
	OriginDistance float64
}

// NewPlane creates a new plane. A plane whose normal points toward the
// origin is flipped so that the distance is non-negative.
func NewPlane(normal core.Vec3, originDistance float64) *Plane {
	normal = normal.Normalize()
	if originDistance < 0 {
		normal = normal.Negate()
		originDistance = -originDistance
	}
	return &Plane{
		Finish:         DefaultFinish(),
		UnitNormal:     normal,
		OriginDistance: originDistance,
	}
}

// WithFinish sets the plane's colors and returns the plane
func (p *Plane) WithFinish(f Finish) *Plane {
	p.Finish = f
	return p
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	cosine := ray.Direction.Dot(p.UnitNormal)

	// Ray is parallel to plane
	if math.Abs(cosine) < core.AngleEpsilon {
		return 0, false
	}

	t := (p.OriginDistance - ray.Origin.Dot(p.UnitNormal)) / cosine
	if t < core.IntersectEpsilon {
		return 0, false
	}
	return t, true
}

// Normal returns the stored plane normal regardless of the point
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	return p.UnitNormal
}

// IntersectWithNormal returns the plane normal flipped, if needed, to face
// the incoming ray.
func (p *Plane) IntersectWithNormal(ray core.Ray) (float64, core.Vec3, bool) {
	t, ok := p.Intersect(ray)
	if !ok {
		return 0, core.Vec3{}, false
	}
	if ray.Direction.Dot(p.UnitNormal) > 0 {
		return t, p.UnitNormal.Negate(), true
	}
	return t, p.UnitNormal, true
}
