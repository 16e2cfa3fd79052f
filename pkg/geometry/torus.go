package geometry

import (
	"fmt"

	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/poly"
)

// Torus is a ring of major radius Radius and tube radius TubeRadius.
// In its local frame it is centered on the origin with its axis along Z;
// the world placement is a translation by Center after rotating by RotX
// about X and RotY about Y.
type Torus struct {
	Finish
	Radius     float64
	TubeRadius float64
	Center     core.Vec3
	RotX       float64
	RotY       float64
}

// NewTorus creates a torus in the x-y plane centered on the origin
func NewTorus(radius, tubeRadius float64) *Torus {
	return NewTorusAt(radius, tubeRadius, core.Origin, 0, 0)
}

// NewTorusAt creates a torus with the given placement. It panics unless
// 0 < tubeRadius < radius.
func NewTorusAt(radius, tubeRadius float64, center core.Vec3, rotX, rotY float64) *Torus {
	if tubeRadius <= 0 || tubeRadius >= radius {
		panic(fmt.Sprintf("geometry: torus needs 0 < tube radius < radius, got %g and %g", tubeRadius, radius))
	}
	return &Torus{
		Finish:     DefaultFinish(),
		Radius:     radius,
		TubeRadius: tubeRadius,
		Center:     center,
		RotX:       rotX,
		RotY:       rotY,
	}
}

// WithFinish sets the torus's colors and returns the torus
func (t *Torus) WithFinish(f Finish) *Torus {
	t.Finish = f
	return t
}

// toLocal maps a world-space point into the torus frame
func (t *Torus) toLocal(point core.Vec3) core.Vec3 {
	return point.Subtract(t.Center).RotateInverse(t.RotX, t.RotY)
}

// Intersect tests if a ray intersects with the torus
func (t *Torus) Intersect(ray core.Ray) (float64, bool) {
	local := core.NewRay(t.toLocal(ray.Origin), ray.Direction.RotateInverse(t.RotX, t.RotY))
	return t.intersectLocal(local)
}

// intersectLocal substitutes the ray into (|P|² + R² - r²)² = 4R²(Px² + Py²)
// and returns the smallest positive real root of the resulting quartic.
func (t *Torus) intersectLocal(ray core.Ray) (float64, bool) {
	a, b := ray.Origin, ray.Direction

	aDotA := a.Dot(a)
	aDotB := a.Dot(b)
	radius2 := t.Radius * t.Radius
	tube2 := t.TubeRadius * t.TubeRadius

	k := aDotA - tube2 - radius2
	t1 := 4 * aDotB
	t2 := 2 * (2*aDotB*aDotB + k + 2*radius2*b.Z*b.Z)
	t3 := 4 * (k*aDotB + 2*radius2*a.Z*b.Z)
	t4 := k*k + 4*radius2*(a.Z*a.Z-tube2)

	return poly.SolveQuarticSmallestPositiveReal(1, t1, t2, t3, t4)
}

// Normal returns the outward unit normal at a point on the torus
func (t *Torus) Normal(point core.Vec3) core.Vec3 {
	local := t.toLocal(point)
	ring := core.NewVec3(local.X, local.Y, 0).Normalize().Multiply(t.Radius)
	return local.Subtract(ring).Normalize().Rotate(t.RotX, t.RotY)
}

// IntersectWithNormal returns the hit distance and outward normal
func (t *Torus) IntersectWithNormal(ray core.Ray) (float64, core.Vec3, bool) {
	return IntersectWithNormal(t, ray)
}
