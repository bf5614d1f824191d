package meshgrid

import "github.com/hornmesh/hornmesh/geom"

// OffsetShell builds the outer wall-shell grid by offsetting each
// inner row along its outward normal by wallThickness (spec.md
// section 4.5). The normal at each point is estimated from the
// discrete derivative of (x, y) along the axial direction; to avoid
// per-sample sign flips from noisy endpoint gradients, a single sign
// is chosen per phi-slice by majority vote of the candidate normal's
// radial (Y) component. The throat row (row 0) is forced to the same
// axial coordinate as the inner throat with radius r_inner +
// wallThickness, per spec.
func OffsetShell(inner *Grid, wallThickness float64) *Grid {
	out := &Grid{Phis: inner.Phis, Points: make([][]geom.Vec2, len(inner.Phis))}
	for i, row := range inner.Points {
		out.Points[i] = offsetSlice(row, wallThickness)
	}
	return out
}

func offsetSlice(row []geom.Vec2, wallThickness float64) []geom.Vec2 {
	n := len(row)
	if n == 0 {
		return nil
	}

	tangents := make([]geom.Vec2, n)
	for i := range row {
		switch {
		case n == 1:
			tangents[i] = geom.Vec2{X: 1, Y: 0}
		case i == 0:
			tangents[i] = row[1].Sub(row[0])
		case i == n-1:
			tangents[i] = row[n-1].Sub(row[n-2])
		default:
			tangents[i] = row[i+1].Sub(row[i-1])
		}
	}

	// Candidate normal: rotate tangent -90 degrees (X,Y)->(Y,-X).
	votesPositive, votesNegative := 0, 0
	normals := make([]geom.Vec2, n)
	for i, tg := range tangents {
		l := tg.Len()
		if l == 0 {
			normals[i] = geom.Vec2{X: 0, Y: 1}
			continue
		}
		normals[i] = geom.Vec2{X: tg.Y / l, Y: -tg.X / l}
		if normals[i].Y >= 0 {
			votesPositive++
		} else {
			votesNegative++
		}
	}
	sign := 1.0
	if votesNegative > votesPositive {
		sign = -1.0
	}

	out := make([]geom.Vec2, n)
	for i, p := range row {
		out[i] = p.Add(normals[i].Scale(sign * wallThickness))
	}
	out[0] = geom.Vec2{X: row[0].X, Y: row[0].Y + wallThickness}
	return out
}
