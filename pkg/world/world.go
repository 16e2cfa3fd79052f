// Package world resolves rays against a fixed set of surfaces and point
// lights. A World is read-only after construction and safe to share
// between goroutines.
package world

import (
	"fmt"
	"iter"
	"math"

	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/geometry"
	"github.com/df07/go-torus-raytracer/pkg/lights"
)

// Hit describes the nearest intersection of a ray with the world
type Hit struct {
	Surface  geometry.Surface
	Distance float64
	Normal   core.Vec3
}

// World holds the surfaces and lights of a scene
type World struct {
	surfaces []geometry.Surface
	lights   []lights.PointLight
}

// NewWorld creates a world. The slices are copied so later changes by the
// caller do not affect the world.
func NewWorld(surfaces []geometry.Surface, pointLights []lights.PointLight) *World {
	return &World{
		surfaces: append([]geometry.Surface(nil), surfaces...),
		lights:   append([]lights.PointLight(nil), pointLights...),
	}
}

// Surfaces returns the surfaces in the world
func (w *World) Surfaces() []geometry.Surface {
	return w.surfaces
}

// Lights returns the lights in the world
func (w *World) Lights() []lights.PointLight {
	return w.lights
}

// TraceNearest finds the closest surface hit by the ray. On equal
// distances the surface added first wins.
func (w *World) TraceNearest(ray core.Ray) (Hit, bool) {
	var closest Hit
	closestSoFar := math.Inf(1)
	hitAnything := false

	for _, surface := range w.surfaces {
		dist, normal, ok := surface.IntersectWithNormal(ray)
		if ok && dist < closestSoFar {
			hitAnything = true
			closestSoFar = dist
			closest = Hit{Surface: surface, Distance: dist, Normal: normal}
		}
	}

	return closest, hitAnything
}

// TraceCollision reports whether the ray travels maxDistance without
// hitting anything. Hits at or beyond maxDistance do not block it.
func (w *World) TraceCollision(ray core.Ray, maxDistance float64) bool {
	for _, surface := range w.surfaces {
		if dist, ok := surface.Intersect(ray); ok && dist < maxDistance {
			return false
		}
	}
	return true
}

// TraceLights yields the lights that are on the normal's side of point and
// have an unobstructed path to it.
func (w *World) TraceLights(point, normal core.Vec3) iter.Seq[lights.PointLight] {
	return func(yield func(lights.PointLight) bool) {
		shadowOrigin := point.Add(normal.Multiply(core.ShadowBias))

		for _, light := range w.lights {
			toLight, _ := light.Offset(point)
			if toLight.Dot(normal) < 0 {
				continue
			}

			toLight, dist := light.Offset(shadowOrigin)
			shadowRay := core.NewRay(shadowOrigin, toLight.Normalize())
			if !w.TraceCollision(shadowRay, dist) {
				continue
			}

			if !yield(light) {
				return
			}
		}
	}
}

// Trace returns the color seen along the ray: black on a miss, otherwise
// the diffuse contribution of every visible light plus one ambient term.
func (w *World) Trace(ray core.Ray) core.Color {
	hit, ok := w.TraceNearest(ray)
	if !ok {
		return core.Black
	}

	point := ray.At(hit.Distance)
	color := core.Black
	for light := range w.TraceLights(point, hit.Normal) {
		color = color.Add(Diffuse(hit.Surface, light, hit.Normal, point))
	}
	return color.Add(Ambient(hit.Surface))
}

// TraceDepth shades the nearest hit by distance alone: red fades from 1 at
// near to 0 at far. Misses are black.
func (w *World) TraceDepth(ray core.Ray, near, far float64) core.Color {
	hit, ok := w.TraceNearest(ray)
	if !ok {
		return core.Black
	}
	red := (far - hit.Distance) / (far - near)
	return core.NewColor(max(0, min(1, red)), 0, 0)
}

// Diffuse is the Lambertian contribution of one light with inverse-square
// falloff. It panics if the cosine is NaN, which means a degenerate normal.
func Diffuse(surface geometry.Surface, light lights.PointLight, normal, point core.Vec3) core.Color {
	toLight, dist := light.Offset(point)
	cosine := normal.Dot(toLight.Normalize())
	if math.IsNaN(cosine) {
		panic(fmt.Sprintf("world: diffuse cosine is NaN (normal %v, point %v)", normal, point))
	}

	return surface.ColorDiffuse().Mul(light.Color).Scale(core.KDiffuse * cosine / (dist * dist))
}

// Ambient is the constant ambient term for a surface
func Ambient(surface geometry.Surface) core.Color {
	return surface.ColorAmbient().Scale(core.KAmbient)
}
