package core

// Tuning constants shared by the solver, geometry and shading code.
const (
	// Epsilon is the near-zero band used by the polynomial solver.
	Epsilon = 1e-10

	// StabilityTolerance is how far the cubic solver's acos argument may
	// exceed 1 from round-off before it is treated as a numeric fault.
	StabilityTolerance = 1e-4

	// AngleEpsilon rejects rays running parallel to a plane.
	AngleEpsilon = 1e-6

	// IntersectEpsilon is the minimum hit distance, suppressing self-intersection.
	IntersectEpsilon = 1e-6

	// ShadowBias offsets shadow ray origins along the surface normal.
	ShadowBias = 1e-6

	KDiffuse = 5.0
	KAmbient = 0.1
)

// NearZero reports whether x lies strictly inside the Epsilon band
func NearZero(x float64) bool {
	return x < Epsilon && x > -Epsilon
}
