package profile

import (
	"math"

	"github.com/hornmesh/hornmesh/expr"
	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/schema"
)

// Family evaluates the main horn curve (spec.md section 4.2). The
// extension/slot prefix and the rotation are applied by the caller
// (meshgrid), using R0Main and the free helper function ApplyRotation
// in this package; the OSSE h-bulge is applied inside osse.Sample.
type Family interface {
	// DomainEnd returns the upper bound of the main curve's own t
	// parameter at the given azimuth (R-OSSE: tmax, constant;
	// OSSE: the solved axial length L(phi), which may vary with phi
	// when L is given as a phi-expression).
	DomainEnd(phi float64) (float64, error)

	// Sample returns the (axial, radial) point at parameter t in
	// [0, DomainEnd(phi)], with the curve's own origin at t=0.
	Sample(t, phi float64) (geom.Vec2, error)

	// R0Main returns the effective base throat radius after the
	// straight extension: r0 + throat_ext_length*tan(throat_ext_angle).
	// Sample(0, phi) must equal (0, R0Main(phi)) for every family,
	// which is exactly invariant I1.
	R0Main(phi float64) (float64, error)
}

// NewFamily is the sole constructor for Family; formula_type is a
// closed sum with exactly the two branches below.
//
// coverageOverride, when non-nil, replaces the record's own coverage
// angle expression (rec.A) — used by the meshgrid/horn orchestration
// to splice in the guiding-curve coverage-inversion result (spec.md
// section 4.3) without profile needing to know about guide curves.
func NewFamily(rec *schema.Record, coverageOverride expr.Fn) (Family, error) {
	aFn := coverageOverride
	if aFn == nil {
		var err error
		aFn, err = rec.A.Compile(45)
		if err != nil {
			return nil, err
		}
	}

	extAngleRad := rec.ThroatExtAngle * math.Pi / 180
	r0Main := func(phi float64) (float64, error) {
		return rec.R0 + rec.ThroatExtLength*math.Tan(extAngleRad), nil
	}

	switch rec.FormulaType {
	case schema.FormulaROSSE:
		rFn, err := rec.R.Compile(0)
		if err != nil {
			return nil, err
		}
		return &rosse{
			r0:     rec.R0,
			a0Deg:  rec.A0,
			k:      rec.K,
			q:      rec.Q,
			rApex:  rec.RSmall,
			b:      rec.B,
			m:      rec.M,
			tmax:   rec.Tmax,
			rFn:    rFn,
			aFn:    aFn,
			r0Main: r0Main,
		}, nil
	case schema.FormulaOSSE:
		lFn, err := rec.L.Compile(0)
		if err != nil {
			return nil, err
		}
		sFn, err := rec.S.Compile(0)
		if err != nil {
			return nil, err
		}
		return &osse{
			r0:               rec.R0,
			a0Deg:            rec.A0,
			k:                rec.K,
			n:                rec.N,
			q:                rec.Q,
			h:                rec.H,
			throatProfile:    rec.ThroatProfile,
			circArcTermAngle: rec.CircArcTermAngle,
			circArcRadius:    rec.CircArcRadius,
			lFn:              lFn,
			sFn:              sFn,
			aFn:              aFn,
			r0Main:           r0Main,
		}, nil
	default:
		return nil, ErrUnsupportedFormula
	}
}
