package morph

import (
	"math"

	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/schema"
)

// SliceHalfSizes computes the raw bounding half-sizes of one axial
// slice's full angular ring (spec.md section 4.4): max|y*cos phi| and
// max|y*sin phi| over every (phi, y) sample in the ring. Used when
// morph_width/morph_height are not given explicitly.
func SliceHalfSizes(phis, ys []float64) (halfW, halfH float64) {
	for i, y := range ys {
		phi := phis[i]
		w := math.Abs(y * math.Cos(phi))
		h := math.Abs(y * math.Sin(phi))
		if w > halfW {
			halfW = w
		}
		if h > halfH {
			halfH = h
		}
	}
	return halfW, halfH
}

// ResolveHalfSizes picks explicit morph_width/morph_height (when > 0)
// over the per-slice computed half-sizes.
func ResolveHalfSizes(explicitWidth, explicitHeight, computedHalfW, computedHalfH float64) (halfW, halfH float64) {
	halfW = computedHalfW
	if explicitWidth > 0 {
		halfW = explicitWidth / 2
	}
	halfH = computedHalfH
	if explicitHeight > 0 {
		halfH = explicitHeight / 2
	}
	return halfW, halfH
}

// Config holds the per-build morph parameters (spec.md section 4.4).
type Config struct {
	Target         schema.MorphTarget
	Fixed          float64
	Rate           float64
	CornerRadius   float64
	AllowShrinkage bool
}

// ConfigFromRecord extracts the morph configuration from a validated
// Record.
func ConfigFromRecord(rec *schema.Record) Config {
	return Config{
		Target:         rec.MorphTarget,
		Fixed:          rec.MorphFixed,
		Rate:           rec.MorphRate,
		CornerRadius:   rec.MorphCorner,
		AllowShrinkage: rec.MorphAllowShrinkage,
	}
}

// Apply blends the raw radius r at (t, phi) toward the resolved
// target half-sizes, per spec.md section 4.4. halfW/halfH must already
// reflect ResolveHalfSizes's explicit-vs-computed choice.
func Apply(cfg Config, t, phi, r, halfW, halfH float64) float64 {
	if cfg.Target == schema.MorphNone || t <= cfg.Fixed {
		return r
	}
	denom := 1 - cfg.Fixed
	var factor float64
	if denom > 0 {
		factor = math.Pow((t-cfg.Fixed)/denom, cfg.Rate)
	} else {
		factor = 1
	}

	var target float64
	switch cfg.Target {
	case schema.MorphCircle:
		target = math.Sqrt(math.Max(0, halfW*halfH))
	case schema.MorphRect:
		target = geom.RoundedRectRadius(phi, halfW, halfH, cfg.CornerRadius)
	default:
		return r
	}

	if !cfg.AllowShrinkage && target < r {
		target = r
	}
	return r + factor*(target-r)
}
