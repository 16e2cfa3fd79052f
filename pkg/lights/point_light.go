package lights

import "github.com/df07/go-torus-raytracer/pkg/core"

// PointLight is an infinitesimal light source. Its contribution falls off
// with the inverse square of distance at shading time.
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color) PointLight {
	return PointLight{Position: position, Color: color}
}

// Offset returns the vector from point to the light and its length
func (l PointLight) Offset(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	return toLight, toLight.Length()
}
