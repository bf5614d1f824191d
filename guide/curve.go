package guide

import (
	"math"

	"github.com/hornmesh/hornmesh/schema"
)

// Curve evaluates a guiding-curve radius in the phi-plane (spec.md
// section 4.3). Radius returns ok=false where the curve is degenerate
// at that azimuth (division by a zero trig term).
type Curve interface {
	Radius(phiRad float64) (r float64, ok bool)
}

// NewCurve constructs the guiding curve named by rec.GCurveType. It
// returns (nil, false) for GCurveNone — there is no curve to invert
// against.
func NewCurve(rec *schema.Record) (Curve, bool) {
	switch rec.GCurveType {
	case schema.GCurveSuperellipse:
		a := rec.GCurveWidth / 2
		return &superellipse{
			a:      a,
			b:      a * rec.GCurveAspectRatio,
			n:      rec.GCurveSEN,
			rotRad: rec.GCurveRot * math.Pi / 180,
		}, true
	case schema.GCurveSuperformula:
		return &superformula{
			a:      rec.GCurveWidth / 2,
			b:      rec.GCurveWidth / 2 * rec.GCurveAspectRatio,
			m1:     rec.GCurveSFm1,
			m2:     rec.GCurveSFm2,
			n1:     rec.GCurveSFn1,
			n2:     rec.GCurveSFn2,
			n3:     rec.GCurveSFn3,
			rotRad: rec.GCurveRot * math.Pi / 180,
		}, true
	default:
		return nil, false
	}
}

type superellipse struct {
	a, b, n float64
	rotRad  float64
}

func (c *superellipse) Radius(phiRad float64) (float64, bool) {
	if c.n == 0 || c.a == 0 || c.b == 0 {
		return 0, false
	}
	th := phiRad - c.rotRad
	cosTerm := math.Pow(math.Abs(math.Cos(th)/c.a), c.n)
	sinTerm := math.Pow(math.Abs(math.Sin(th)/c.b), c.n)
	sum := cosTerm + sinTerm
	if sum <= 0 || !finite(sum) {
		return 0, false
	}
	r := math.Pow(sum, -1/c.n)
	if !finite(r) {
		return 0, false
	}
	return r, true
}

type superformula struct {
	a, b, m1, m2, n1, n2, n3 float64
	rotRad                   float64
}

func (c *superformula) Radius(phiRad float64) (float64, bool) {
	if c.n1 == 0 || c.a == 0 || c.b == 0 {
		return 0, false
	}
	th := phiRad - c.rotRad
	t1 := math.Pow(math.Abs(math.Cos(c.m1*th/4)/c.a), c.n2)
	t2 := math.Pow(math.Abs(math.Sin(c.m2*th/4)/c.b), c.n3)
	sum := t1 + t2
	if sum <= 0 || !finite(sum) {
		return 0, false
	}
	r := math.Pow(sum, -1/c.n1)
	if !finite(r) {
		return 0, false
	}
	return r, true
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
