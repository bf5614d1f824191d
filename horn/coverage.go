package horn

import (
	"math"

	"github.com/hornmesh/hornmesh/expr"
	"github.com/hornmesh/hornmesh/guide"
	"github.com/hornmesh/hornmesh/schema"
)

// coverageOverride builds the expr.Fn spliced into profile.NewFamily in
// place of rec.A (spec.md section 4.3): at each phi it locates the
// guiding curve's target radius, finds the axial position the guiding
// curve constrains, and inverts the OSSE base-curve formula for the
// coverage angle that reproduces that radius there.
//
// It returns (nil, nil) when no guiding curve is configured, or when
// the formula is R-OSSE, which drives its mouth radius directly from
// R(phi) and has no coverage angle to invert against a guiding curve.
func coverageOverride(rec *schema.Record) (expr.Fn, error) {
	if rec.GCurveType == schema.GCurveNone || rec.FormulaType != schema.FormulaOSSE {
		return nil, nil
	}
	curve, ok := guide.NewCurve(rec)
	if !ok {
		return nil, nil
	}

	lFn, err := rec.L.Compile(0)
	if err != nil {
		return nil, newBuildError(ErrInvalidExpression, "L", err)
	}

	extAngleRad := rec.ThroatExtAngle * math.Pi / 180
	r0Main := rec.R0 + rec.ThroatExtLength*math.Tan(extAngleRad)

	return expr.Fn(func(phi float64) (float64, error) {
		l, err := lFn(phi)
		if err != nil {
			return 0, err
		}
		totalLength := rec.ThroatExtLength + rec.SlotLength + l
		zMain := guide.AxialSamplePosition(rec.GCurveDist, totalLength, rec.ThroatExtLength, rec.SlotLength)

		targetRadius, ok := curve.Radius(phi)
		if !ok {
			return 0, newBuildError(ErrInvalidProfileParameters, "guiding curve is degenerate at this azimuth", nil)
		}

		aCovDeg, err := guide.InvertCoverage(targetRadius, zMain, r0Main, rec.A0, rec.K)
		if err != nil {
			return 0, newBuildError(ErrInvalidProfileParameters, "coverage-angle inversion", err)
		}
		return aCovDeg, nil
	}), nil
}
