package poly

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

// SolveQuartic solves ax⁴ + bx³ + cx² + dx + e = 0 with Ferrari's method and
// returns all four roots as complex numbers. Real roots have a zero (or
// near-zero) imaginary part. It panics if a is near zero.
func SolveQuartic(a, b, c, d, e float64) [4]complex128 {
	if core.NearZero(a) {
		panic(fmt.Sprintf("poly: quartic leading coefficient %g is near zero", a))
	}

	b, c, d, e = b/a, c/a, d/a, e/a

	// Depressed quartic y⁴ + fy² + gy + h with x = y - b/4
	f := c - 3*b*b/8
	g := d + b*b*b/8 - b*c/2
	h := e - 3*b*b*b*b/256 + b*b*c/16 - b*d/4

	resolvent := SolveCubic(1, f/2, (f*f-4*h)/16, -g*g/64)

	var p, q complex128
	switch resolvent.Kind {
	case ThreeReal:
		y1 := roundNearZero(resolvent.Real[0])
		y2 := roundNearZero(resolvent.Real[1])
		y3 := roundNearZero(resolvent.Real[2])

		pSq, qSq := y1, y2
		if y1 == 0 {
			pSq, qSq = y2, y3
		} else if y2 == 0 {
			pSq, qSq = y1, y3
		}
		p, q = sqrtReal(pSq), sqrtReal(qSq)
	case OneRealTwoComplex:
		p = cmplx.Sqrt(resolvent.Complex[0])
		q = cmplx.Conj(p)
	}

	var r complex128
	if pq := p * q; pq != 0 {
		r = complex(-g, 0) / (8 * pq)
	}
	s := complex(b/4, 0)

	return [4]complex128{
		p + q + r - s,
		p - q - r - s,
		-p + q - r - s,
		-p - q + r - s,
	}
}

// SolveQuarticSmallestPositiveReal returns the smallest root of the quartic
// whose real part exceeds Epsilon and whose imaginary part is inside the
// Epsilon band.
func SolveQuarticSmallestPositiveReal(a, b, c, d, e float64) (float64, bool) {
	smallest := math.Inf(1)
	for _, root := range SolveQuartic(a, b, c, d, e) {
		re, im := real(root), imag(root)
		if re < smallest && re > core.Epsilon && math.Abs(im) < core.Epsilon {
			smallest = re
		}
	}

	if math.IsInf(smallest, 1) {
		return 0, false
	}
	return smallest, true
}

// Evaluate computes the polynomial with the given coefficients, highest
// degree first, at x.
func Evaluate(coeffs []float64, x complex128) complex128 {
	var sum complex128
	for _, c := range coeffs {
		sum = sum*x + complex(c, 0)
	}
	return sum
}

func roundNearZero(x float64) float64 {
	if core.NearZero(x) {
		return 0
	}
	return x
}

// sqrtReal returns the principal square root of x as a real or purely
// imaginary complex number.
func sqrtReal(x float64) complex128 {
	if x >= 0 {
		return complex(math.Sqrt(x), 0)
	}
	return complex(0, math.Sqrt(-x))
}
