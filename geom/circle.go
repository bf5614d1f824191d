package geom

import "math"

// CircleThroughPointsWithRadius returns a center such that both p1 and
// p2 lie on a circle of the given radius, choosing the center on the
// side of the chord indicated by preferPositiveY (true picks the
// solution with the larger Y, used to pick the outward-bulging arc).
// ok is false when no such circle exists (chord longer than the
// diameter) or the radius is non-positive.
func CircleThroughPointsWithRadius(p1, p2 Vec2, radius float64, preferPositiveY bool) (center Vec2, ok bool) {
	if radius <= 0 {
		return Vec2{}, false
	}
	mid := p1.Add(p2).Scale(0.5)
	chord := p2.Sub(p1)
	d := chord.Len()
	if d == 0 || d > 2*radius {
		return Vec2{}, false
	}
	h := math.Sqrt(math.Max(0, radius*radius-(d/2)*(d/2)))
	// unit perpendicular to the chord
	perp := Vec2{-chord.Y / d, chord.X / d}
	c1 := mid.Add(perp.Scale(h))
	c2 := mid.Sub(perp.Scale(h))
	if preferPositiveY {
		if c1.Y >= c2.Y {
			return c1, true
		}
		return c2, true
	}
	if c1.Y <= c2.Y {
		return c1, true
	}
	return c2, true
}

// CircleTangentAt returns the center of a circle of the given radius
// that passes through p with tangent direction dir at p (dir need not
// be normalized). The center lies along the inward normal to dir.
func CircleTangentAt(p Vec2, dir Vec2, radius float64) Vec2 {
	n := Vec2{-dir.Y, dir.X}
	n = n.Scale(1 / n.Len())
	return p.Add(n.Scale(radius))
}

// PointOnCircleAtX returns the Y coordinate(s) of the point(s) on the
// circle (center, radius) with the given X, preferring the branch
// matching sign(preferY - center.Y). ok is false if x is outside the
// circle's X-extent.
func PointOnCircleAtX(center Vec2, radius, x, preferY float64) (y float64, ok bool) {
	dx := x - center.X
	under := radius*radius - dx*dx
	if under < 0 {
		return 0, false
	}
	h := math.Sqrt(under)
	s := 1.0
	if preferY < center.Y {
		s = -1.0
	}
	return center.Y + s*h, true
}
