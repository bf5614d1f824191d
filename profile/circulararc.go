package profile

import (
	"math"

	"github.com/hornmesh/hornmesh/geom"
)

// circularArcRadius evaluates the OSSE main curve when throat_profile
// is circular-arc (spec.md section 4.2): the termination is a single
// circular arc from the throat point (0, r0_main) to the mouth point
// (L, mouth_r) instead of the OS-SE sum, where mouth_r is the I2
// OSSE mouth radius r0_main + L*tan(a_cov).
//
// Two constructions are tried, in order:
//
//  1. Tangent construction: circ_arc_radius > 0 together with a
//     nonzero circ_arc_term_angle (degrees from the axial direction)
//     — the arc leaves the throat along that tangent direction.
//  2. Through-points construction: circ_arc_radius > 0 with no
//     tangent angle — the circle of that radius through both the
//     throat and mouth points.
//
// When neither yields an admissible circle, y falls back to mouth_r
// directly (spec.md section 4.2, circular-arc paragraph).
func (p *osse) circularArcRadius(zMain, L, r0m, aCovDeg float64) (float64, error) {
	aRad := aCovDeg * math.Pi / 180
	mouthR := r0m + L*math.Tan(aRad)

	throat := geom.Vec2{X: 0, Y: r0m}
	mouth := geom.Vec2{X: L, Y: mouthR}

	if p.circArcRadius > 0 {
		var center geom.Vec2
		var ok bool
		if p.circArcTermAngle != 0 {
			angle := p.circArcTermAngle * math.Pi / 180
			dir := geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
			center = geom.CircleTangentAt(throat, dir, p.circArcRadius)
			ok = true
		} else {
			center, ok = geom.CircleThroughPointsWithRadius(throat, mouth, p.circArcRadius, mouthR >= r0m)
		}
		if ok {
			if y, pok := geom.PointOnCircleAtX(center, p.circArcRadius, zMain, mouthR); pok {
				return y, nil
			}
		}
	}

	return mouthR, nil
}
