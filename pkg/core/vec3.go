package core

import "math"

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Origin is the zero vector
var Origin = Vec3{}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1.0 / scalar)
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// RotateInverse maps a world-space vector into a frame rotated by rotX about
// the X axis and then rotY about the Y axis. It applies Ry(rotY)·Rx(rotX).
func (v Vec3) RotateInverse(rotX, rotY float64) Vec3 {
	sinA, cosA := math.Sincos(rotX)
	sinB, cosB := math.Sincos(rotY)
	return Vec3{
		X: v.X*cosB + v.Y*sinA*sinB + v.Z*cosA*sinB,
		Y: v.Y*cosA - v.Z*sinA,
		Z: -v.X*sinB + v.Y*sinA*cosB + v.Z*cosA*cosB,
	}
}

// Rotate is the inverse of RotateInverse: it applies the transpose of
// Ry(rotY)·Rx(rotX), mapping a vector from the rotated frame back to world space.
func (v Vec3) Rotate(rotX, rotY float64) Vec3 {
	sinA, cosA := math.Sincos(rotX)
	sinB, cosB := math.Sincos(rotY)
	return Vec3{
		X: v.X*cosB - v.Z*sinB,
		Y: v.X*sinA*sinB + v.Y*cosA + v.Z*sinA*cosB,
		Z: v.X*cosA*sinB - v.Y*sinA + v.Z*cosA*cosB,
	}
}

// Ray represents a ray with an origin and direction.
// Direction is expected to be unit length; nothing downstream re-normalizes it.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
