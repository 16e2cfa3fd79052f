package core

import (
	"fmt"
	"image/color"
)

// Color is an RGB triple with channels nominally in [0, 1].
// Mul is exact; Add and Scale saturate each channel at 1.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a color from floating point channels
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorRGB8 creates a color from 8-bit channels.
// It panics if a normalized channel exceeds 1.
func NewColorRGB8(r, g, b uint8) Color {
	c := Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	if c.R > 1.0 || c.G > 1.0 || c.B > 1.0 {
		panic(fmt.Sprintf("color is invalid: %+v", c))
	}
	return c
}

// Mul returns the component-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Add returns the component-wise sum, saturated at 1
func (c Color) Add(other Color) Color {
	return Color{
		R: min(c.R+other.R, 1.0),
		G: min(c.G+other.G, 1.0),
		B: min(c.B+other.B, 1.0),
	}
}

// Scale multiplies every channel by k, saturated at 1
func (c Color) Scale(k float64) Color {
	return Color{
		R: min(c.R*k, 1.0),
		G: min(c.G*k, 1.0),
		B: min(c.B*k, 1.0),
	}
}

// IsBlack reports whether every channel is zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// RGB8 converts the color to 8-bit channels, clamping to [0, 1] first
func (c Color) RGB8() (r, g, b uint8) {
	return channelToByte(c.R), channelToByte(c.G), channelToByte(c.B)
}

// RGBA converts the color to an opaque color.RGBA
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB8()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func channelToByte(v float64) uint8 {
	v = max(0.0, min(1.0, v))
	return uint8(v * 255.0)
}
