package geom

import (
	"errors"
	"math"
)

// ErrNoRealRoot indicates a quadratic with a negative discriminant.
var ErrNoRealRoot = errors.New("geom: quadratic has no real root")

// SolveQuadraticPositiveRoot solves a*x^2 + b*x + c = 0 for the
// positive root and returns it. Used by the R-OSSE axial length solve
// (spec.md 4.2) where a negative discriminant or non-positive root is
// a caller-level invalid_profile_parameters condition, not a panic.
func SolveQuadraticPositiveRoot(a, b, c float64) (float64, error) {
	if a == 0 {
		if b == 0 {
			return 0, ErrNoRealRoot
		}
		x := -c / b
		if x <= 0 || !isFinite(x) {
			return 0, ErrNoRealRoot
		}
		return x, nil
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, ErrNoRealRoot
	}
	sq := math.Sqrt(disc)
	x1 := (-b + sq) / (2 * a)
	x2 := (-b - sq) / (2 * a)
	best, ok := pickPositive(x1, x2)
	if !ok {
		return 0, ErrNoRealRoot
	}
	return best, nil
}

func pickPositive(x1, x2 float64) (float64, bool) {
	c1 := x1 > 0 && isFinite(x1)
	c2 := x2 > 0 && isFinite(x2)
	switch {
	case c1 && c2:
		return math.Min(x1, x2), true
	case c1:
		return x1, true
	case c2:
		return x2, true
	default:
		return 0, false
	}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// RoundedRectRadius returns the distance from the origin to the
// boundary of an axis-aligned rectangle of half-width hw, half-height
// hh with corner radius cr, along the ray at angle phi. This is the
// closed-form intersection used by the morph engine's rectangle
// target (spec.md 4.4): for rays through the flat edges it is the
// ordinary box intersection; for rays through a rounded corner it is
// the larger root of the quadratic |t*dir - center| = cr.
func RoundedRectRadius(phi, hw, hh, cr float64) float64 {
	if cr <= 0 {
		return boxRadius(phi, hw, hh)
	}
	cr = math.Min(cr, math.Min(hw, hh))
	dir := Vec2{math.Cos(phi), math.Sin(phi)}

	// Flat-edge candidate (as if the box had no rounding).
	flat := boxRadius(phi, hw, hh)
	hit := dir.Scale(flat)
	// If the flat-box hit point lies within the straight part of
	// either edge (outside both corner insets), the flat radius is
	// already correct.
	if math.Abs(hit.X) <= hw-cr+1e-12 || math.Abs(hit.Y) <= hh-cr+1e-12 {
		return flat
	}

	// Otherwise the ray passes through a rounded corner: solve for the
	// corner circle centered at (sx*(hw-cr), sy*(hh-cr)) with sx, sy
	// the signs of dir's components.
	sx, sy := sign(dir.X), sign(dir.Y)
	center := Vec2{sx * (hw - cr), sy * (hh - cr)}
	// |t*dir - center|^2 = cr^2  =>  t^2 - 2 t (dir.center) + |center|^2 - cr^2 = 0
	// The near root lies inside the rectangle; the boundary is the far one.
	dc := dir.Dot(center)
	disc := dc*dc - (center.Dot(center) - cr*cr)
	if disc < 0 {
		return flat
	}
	return dc + math.Sqrt(disc)
}

func boxRadius(phi, hw, hh float64) float64 {
	cx, sy := math.Cos(phi), math.Sin(phi)
	candidates := make([]float64, 0, 2)
	if cx != 0 {
		candidates = append(candidates, math.Abs(hw/cx))
	}
	if sy != 0 {
		candidates = append(candidates, math.Abs(hh/sy))
	}
	if len(candidates) == 0 {
		return 0
	}
	best := candidates[0]
	for _, v := range candidates[1:] {
		if v < best {
			best = v
		}
	}
	return best
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
