package geometry

import "github.com/df07/go-torus-raytracer/pkg/core"

// Finish is the per-shape diffuse/ambient color pair
type Finish struct {
	Diffuse core.Color
	Ambient core.Color
}

// DefaultFinish is the reference finish given to shapes that are not
// explicitly colored: white diffuse and white ambient.
func DefaultFinish() Finish {
	return Finish{Diffuse: core.White, Ambient: core.White}
}

// ColorDiffuse returns the diffuse color
func (f Finish) ColorDiffuse() core.Color {
	return f.Diffuse
}

// ColorAmbient returns the ambient color
func (f Finish) ColorAmbient() core.Color {
	return f.Ambient
}

// IntersectWithNormal pairs a surface's intersection distance with the
// surface normal at the hit point.
func IntersectWithNormal(s Surface, ray core.Ray) (float64, core.Vec3, bool) {
	t, ok := s.Intersect(ray)
	if !ok {
		return 0, core.Vec3{}, false
	}
	return t, s.Normal(ray.At(t)), true
}
