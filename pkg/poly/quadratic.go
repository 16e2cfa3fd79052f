// Package poly solves quadratic, cubic and quartic equations in closed form.
//
// Degenerate leading coefficients are contract violations and panic. A
// missing root is reported through the result kind, never as an error.
package poly

import (
	"fmt"
	"math"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

// QuadKind classifies the real roots of a quadratic
type QuadKind int

const (
	NoRealRoots QuadKind = iota
	OneReal
	TwoReal
)

func (k QuadKind) String() string {
	switch k {
	case OneReal:
		return "OneReal"
	case TwoReal:
		return "TwoReal"
	default:
		return "NoRealRoots"
	}
}

// QuadRoots holds the result of SolveQuadratic.
// R1 is set for OneReal; R1 and R2 are set for TwoReal.
type QuadRoots struct {
	Kind QuadKind
	R1   float64
	R2   float64
}

// Roots returns the real roots as a slice
func (q QuadRoots) Roots() []float64 {
	switch q.Kind {
	case OneReal:
		return []float64{q.R1}
	case TwoReal:
		return []float64{q.R1, q.R2}
	default:
		return nil
	}
}

// SolveQuadratic solves ax² + bx + c = 0. It panics if a is zero.
// A discriminant inside the Epsilon band is treated as a double root.
func SolveQuadratic(a, b, c float64) QuadRoots {
	if a == 0 {
		panic(fmt.Sprintf("poly: quadratic leading coefficient is zero (b=%g, c=%g)", b, c))
	}

	d := b*b - 4*a*c
	switch {
	case core.NearZero(d):
		return QuadRoots{Kind: OneReal, R1: -b / (2 * a)}
	case d > 0:
		sqrtD := math.Sqrt(d)
		return QuadRoots{
			Kind: TwoReal,
			R1:   (-b + sqrtD) / (2 * a),
			R2:   (-b - sqrtD) / (2 * a),
		}
	default:
		return QuadRoots{Kind: NoRealRoots}
	}
}
