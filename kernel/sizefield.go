package kernel

// SizeFieldHandle identifies a registered mesh-sizing field.
type SizeFieldHandle int

// MathEvalSpec is a size field evaluated by a closed-form expression
// of (x, y, z) (spec.md section 6.1, "MathEval fields").
type MathEvalSpec struct {
	Eval func(x, y, z float64) float64
}

// DistanceSpec is a size field measuring distance to a point set
// (spec.md section 6.1, "Distance fields over a point set").
type DistanceSpec struct {
	Points []PointHandle
}

// ThresholdSpec maps a distance field through a piecewise-linear
// ramp between two (distance, size) pairs (spec.md section 6.1,
// "Threshold fields over a distance field").
type ThresholdSpec struct {
	Distance           SizeFieldHandle
	SizeMin, SizeMax   float64
	DistMin, DistMax   float64
}

// RestrictSpec limits an inner field to named surfaces/curves (spec.md
// section 6.1, "Restrict fields").
type RestrictSpec struct {
	Inner    SizeFieldHandle
	Surfaces []SurfaceHandle
	Curves   []CurveHandle
}

// MinSpec composes several fields by pointwise minimum (spec.md
// section 6.1, "Min over a list of fields"; section 4.7's composition
// rule).
type MinSpec struct {
	Fields []SizeFieldHandle
}
