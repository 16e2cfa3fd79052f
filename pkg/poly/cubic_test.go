package poly

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"
)

// cubicResidual evaluates the monic form, relative to the magnitude of x³
func cubicResidual(a, b, c, d float64, x complex128) float64 {
	scale := math.Pow(1+cmplxAbs(x), 3)
	return cmplxAbs(Evaluate([]float64{1, b / a, c / a, d / a}, x)) / scale
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

func TestSolveCubic_ThreeDistinctRoots(t *testing.T) {
	// (x - 1)(x - 2)(x - 3)
	got := SolveCubic(1, -6, 11, -6)
	if got.Kind != ThreeReal {
		t.Fatalf("Expected ThreeReal, got %v", got.Kind)
	}

	roots := got.Real[:]
	sort.Float64s(roots)
	expected := []float64{1, 2, 3}
	for i := range expected {
		if math.Abs(roots[i]-expected[i]) > 1e-9 {
			t.Errorf("Expected roots %v, got %v", expected, roots)
			break
		}
	}
}

func TestSolveCubic_TripleRoot(t *testing.T) {
	// (x - 2)^3
	got := SolveCubic(1, -6, 12, -8)
	if got.Kind != ThreeReal {
		t.Fatalf("Expected ThreeReal, got %v", got.Kind)
	}
	for _, r := range got.Real {
		if math.Abs(r-2) > 1e-9 {
			t.Errorf("Expected triple root 2, got %v", got.Real)
		}
	}
}

func TestSolveCubic_OneRealTwoComplex(t *testing.T) {
	// (x - 1)(x^2 + 1)
	got := SolveCubic(1, -1, 1, -1)
	if got.Kind != OneRealTwoComplex {
		t.Fatalf("Expected OneRealTwoComplex, got %v", got.Kind)
	}
	if math.Abs(got.Real[0]-1) > 1e-9 {
		t.Errorf("Expected real root 1, got %f", got.Real[0])
	}
	if real(got.Complex[0]) != real(got.Complex[1]) || imag(got.Complex[0]) != -imag(got.Complex[1]) {
		t.Errorf("Expected conjugate pair, got %v", got.Complex)
	}
	if math.Abs(math.Abs(imag(got.Complex[0]))-1) > 1e-9 || math.Abs(real(got.Complex[0])) > 1e-9 {
		t.Errorf("Expected ±i, got %v", got.Complex)
	}
}

func TestSolveCubic_Residuals(t *testing.T) {
	random := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		a := random.Float64()*10 - 5
		if math.Abs(a) < 0.1 {
			continue
		}
		b := random.Float64()*10 - 5
		c := random.Float64()*10 - 5
		d := random.Float64()*10 - 5

		got := SolveCubic(a, b, c, d)
		switch got.Kind {
		case ThreeReal:
			for _, r := range got.Real {
				if res := cubicResidual(a, b, c, d, complex(r, 0)); res > 1e-8 {
					t.Fatalf("Root %g of (%g, %g, %g, %g) leaves residual %g", r, a, b, c, d, res)
				}
			}
		case OneRealTwoComplex:
			if res := cubicResidual(a, b, c, d, complex(got.Real[0], 0)); res > 1e-8 {
				t.Fatalf("Real root %g of (%g, %g, %g, %g) leaves residual %g", got.Real[0], a, b, c, d, res)
			}
			for _, z := range got.Complex {
				if res := cubicResidual(a, b, c, d, z); res > 1e-8 {
					t.Fatalf("Complex root %v of (%g, %g, %g, %g) leaves residual %g", z, a, b, c, d, res)
				}
			}
			if imag(got.Complex[0]) != -imag(got.Complex[1]) {
				t.Fatalf("Imaginary parts are not negatives: %v", got.Complex)
			}
		}
	}
}

func TestSolveCubic_PanicsOnNearZeroLeading(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for near-zero leading coefficient")
		}
	}()
	SolveCubic(1e-12, 1, 1, 1)
}

func TestSolveCubic_DoubleRootBand(t *testing.T) {
	// Depressed cubic with h = 5e-11: positive but inside the Epsilon band,
	// so the acos ratio lands near 1.01 and is clamped onto the double root.
	c := math.Cbrt(27 * (5e-11 - 2.5e-9))

	got := SolveCubic(1, 0, c, -1e-4)
	if got.Kind != ThreeReal {
		t.Fatalf("Expected ThreeReal, got %v", got.Kind)
	}
	if !got.Clamped {
		t.Error("Expected the acos ratio to be reported as clamped")
	}
	for _, r := range got.Real {
		if res := r*r*r + c*r - 1e-4; math.Abs(res) > 1e-5 {
			t.Errorf("Root %g leaves residual %g", r, res)
		}
	}
	if math.Abs(got.Real[1]-got.Real[2]) > 1e-12 {
		t.Errorf("Expected a double root, got %v", got.Real)
	}
}

func TestSolveCubic_NotClampedAwayFromBoundary(t *testing.T) {
	if got := SolveCubic(1, -6, 11, -6); got.Clamped {
		t.Errorf("Expected no clamping for distinct roots, got %+v", got)
	}
}

func TestAcosRatio(t *testing.T) {
	tests := []struct {
		name            string
		ratio, h        float64
		expected        float64
		expectedClamped bool
	}{
		{"inside range", 0.5, -1e-3, 0.5, false},
		{"low side", -1.2, -1e-3, -1, false},
		{"round-off above 1", 1 + 1e-6, -1e-3, 1, true},
		{"double-root band far above 1", 38.4, 4e-11, 1, true},
		{"double-root band below -1", -3.9, 4e-11, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := acosRatio(tt.ratio, 0, 0, tt.h)
			if got != tt.expected || clamped != tt.expectedClamped {
				t.Errorf("acosRatio(%g, h=%g) = (%g, %v), want (%g, %v)",
					tt.ratio, tt.h, got, clamped, tt.expected, tt.expectedClamped)
			}
		})
	}
}

func expectStabilityError(t *testing.T) {
	t.Helper()
	r := recover()
	err, ok := r.(error)
	if !ok {
		t.Fatalf("Expected error panic value, got %v", r)
	}
	var stability *StabilityError
	if !errors.As(err, &stability) {
		t.Fatalf("Expected *StabilityError, got %T", err)
	}
}

func TestAcosRatio_StabilityFault(t *testing.T) {
	tests := []struct {
		name     string
		ratio, h float64
	}{
		{"above tolerance with h <= 0", 1.01, -1e-3},
		{"above tolerance with h = 0", 1 + 2e-4, 0},
		{"NaN", math.NaN(), -1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer expectStabilityError(t)
			acosRatio(tt.ratio, -1, 1, tt.h)
		})
	}
}

func TestSolveCubic_StabilityFaultOnNaN(t *testing.T) {
	defer expectStabilityError(t)
	SolveCubic(1, math.NaN(), 0, 0)
}
