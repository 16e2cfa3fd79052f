package poly

import (
	"fmt"
	"math"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

var sqrt3 = math.Sqrt(3)

// CubicKind classifies the roots of a cubic
type CubicKind int

const (
	ThreeReal CubicKind = iota
	OneRealTwoComplex
)

func (k CubicKind) String() string {
	if k == OneRealTwoComplex {
		return "OneRealTwoComplex"
	}
	return "ThreeReal"
}

// CubicRoots holds the result of SolveCubic.
// For ThreeReal all of Real is populated. For OneRealTwoComplex only Real[0]
// is, and Complex holds a conjugate pair. Clamped is set when the
// trigonometric method pulled an acos argument above 1 back to 1.
type CubicRoots struct {
	Kind    CubicKind
	Real    [3]float64
	Complex [2]complex128
	Clamped bool
}

// StabilityError is the panic value raised when the trigonometric branch of
// SolveCubic is asked to take acos of a ratio well above 1.
type StabilityError struct {
	Ratio float64
	F, G  float64
	H     float64
}

func (e *StabilityError) Error() string {
	return fmt.Sprintf("poly: cubic solver numeric stability fault: acos ratio %.17g (f=%g g=%g h=%g)",
		e.Ratio, e.F, e.G, e.H)
}

// SolveCubic solves ax³ + bx² + cx + d = 0 using the depressed cubic
// t³ + ft + g with discriminant proxy h = g²/4 + f³/27.
// It panics if a is near zero.
func SolveCubic(a, b, c, d float64) CubicRoots {
	if core.NearZero(a) {
		panic(fmt.Sprintf("poly: cubic leading coefficient %g is near zero", a))
	}

	f := c/a - (b*b)/(3*a*a)
	g := (2*b*b*b/a - 9*b*c + 27*d*a) / (27 * a * a)
	h := g*g/4 + f*f*f/27
	shift := -b / (3 * a)

	switch {
	case h > core.Epsilon:
		return cardano(g, h, shift)
	case core.NearZero(h) && core.NearZero(f) && core.NearZero(g):
		r := -math.Cbrt(d / a)
		return CubicRoots{Kind: ThreeReal, Real: [3]float64{r, r, r}}
	}

	// Three real roots. i² = -f³/27 which is only non-positive when h sits
	// in (0, Epsilon] with f >= 0; the trigonometric form is undefined there.
	iSq := g*g/4 - h
	if iSq <= 0 {
		return cardano(g, max(h, 0), shift)
	}
	i := math.Sqrt(iSq)
	j := math.Cbrt(i)
	ratio, clamped := acosRatio(-g/(2*i), f, g, h)
	k := math.Acos(ratio) / 3
	cosK, sinK := math.Cos(k), sqrt3*math.Sin(k)

	return CubicRoots{
		Kind:    ThreeReal,
		Clamped: clamped,
		Real: [3]float64{
			2*j*cosK + shift,
			-j*(cosK+sinK) + shift,
			-j*(cosK-sinK) + shift,
		},
	}
}

// cardano returns one real root and a conjugate pair for h >= 0
func cardano(g, h, shift float64) CubicRoots {
	sqrtH := math.Sqrt(h)
	s := math.Cbrt(-g/2 + sqrtH)
	u := math.Cbrt(-g/2 - sqrtH)

	re := -(s+u)/2 + shift
	im := (s - u) * sqrt3 / 2

	return CubicRoots{
		Kind:    OneRealTwoComplex,
		Real:    [3]float64{s + u + shift},
		Complex: [2]complex128{complex(re, im), complex(re, -im)},
	}
}

// acosRatio brings the acos argument into [-1, 1] and reports whether the
// high side was clamped.
//
// With 0 < h <= Epsilon the cubic sits on the double-root boundary and
// ratio² = (g²/4)/(g²/4 - h) always exceeds 1, so the ratio is clamped to ±1
// however far out it lands. With h <= 0 the exact ratio is within [-1, 1]
// and only round-off up to StabilityTolerance is accepted; anything larger,
// or NaN, panics with *StabilityError.
func acosRatio(ratio, f, g, h float64) (float64, bool) {
	switch {
	case math.IsNaN(ratio):
		panic(&StabilityError{Ratio: ratio, F: f, G: g, H: h})
	case ratio < -1:
		return -1, false
	case ratio <= 1:
		return ratio, false
	case h > 0 || ratio <= 1+core.StabilityTolerance:
		return 1, true
	default:
		panic(&StabilityError{Ratio: ratio, F: f, G: g, H: h})
	}
}
