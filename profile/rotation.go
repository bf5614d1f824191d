package profile

import (
	"math"

	"github.com/hornmesh/hornmesh/geom"
)

// ApplyRotation rotates pt by rotDeg about the axis point (0, r0Base)
// in the (axial, radial) plane. Per spec.md section 9 (Open Question,
// resolved): the rotation centre uses the declared base throat radius
// r0, never r0_main — the straight extension is not rotated along
// with the main curve.
func ApplyRotation(pt geom.Vec2, rotDeg, r0Base float64) geom.Vec2 {
	if rotDeg == 0 {
		return pt
	}
	centre := geom.Vec2{X: 0, Y: r0Base}
	rad := rotDeg * math.Pi / 180
	rel := pt.Sub(centre)
	cos, sin := math.Cos(rad), math.Sin(rad)
	rotated := geom.Vec2{
		X: rel.X*cos - rel.Y*sin,
		Y: rel.X*sin + rel.Y*cos,
	}
	return centre.Add(rotated)
}
