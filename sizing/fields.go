package sizing

import (
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/schema"
)

// Groups names the surface handles a given field restricts to
// (spec.md section 4.7). The caller (horn.Build) populates exactly the
// handles relevant to the active mode; a nil/empty slice simply means
// that field contributes nothing.
type Groups struct {
	// Axial receives the AXIAL field: inner-horn and mouth-rim
	// surfaces, plus the enclosure panels in enclosure mode.
	Axial []kernel.SurfaceHandle
	// Source receives the SOURCE field: the source disc.
	Source []kernel.SurfaceHandle
	// Rear receives the REAR field: rear-closure surfaces, plus the
	// outer shell when built in wall-shell (non-enclosure) mode.
	Rear []kernel.SurfaceHandle
	// Enclosure receives the ENCLOSURE field: the enclosure box panels.
	Enclosure []kernel.SurfaceHandle
}

// Config carries the scalar parameters the field formulas need,
// sourced from the parameter record.
type Config struct {
	ThroatRes, MouthRes, RearRes float64
	ZThroat, ZMouth              float64

	EncFront, EncBack schema.QuadTuple
	// EncHalfW, EncHalfH are the enclosure box's half-width/half-height
	// in the (x, y) plane; EncZFront/EncZBack are the axial coordinates
	// of the front (mouth) and rear enclosure panels.
	EncHalfW, EncHalfH         float64
	EncZFront, EncZBack        float64
}

// Build registers the AXIAL, SOURCE, REAR and ENCLOSURE fields
// restricted to their groups, composes them by pointwise minimum, and
// installs the result as the kernel's background mesh field. Fields
// whose group is empty are skipped entirely rather than registered
// with a vacuous restriction.
func Build(k kernel.Kernel, cfg Config, groups Groups) (kernel.SizeFieldHandle, error) {
	var composed []kernel.SizeFieldHandle

	if len(groups.Axial) > 0 {
		h, err := restrict(k, axialEval(cfg), groups.Axial)
		if err != nil {
			return 0, err
		}
		composed = append(composed, h)
	}

	if len(groups.Source) > 0 {
		h, err := restrict(k, constEval(cfg.ThroatRes), groups.Source)
		if err != nil {
			return 0, err
		}
		composed = append(composed, h)
	}

	if len(groups.Rear) > 0 {
		h, err := restrict(k, constEval(cfg.RearRes), groups.Rear)
		if err != nil {
			return 0, err
		}
		composed = append(composed, h)
	}

	if len(groups.Enclosure) > 0 {
		h, err := restrict(k, enclosureEval(cfg), groups.Enclosure)
		if err != nil {
			return 0, err
		}
		composed = append(composed, h)
	}

	min, err := k.AddMinField(kernel.MinSpec{Fields: composed})
	if err != nil {
		return 0, err
	}
	if err := k.SetBackgroundMesh(min); err != nil {
		return 0, err
	}
	return min, nil
}

func restrict(k kernel.Kernel, eval func(x, y, z float64) float64, surfaces []kernel.SurfaceHandle) (kernel.SizeFieldHandle, error) {
	inner, err := k.AddMathEvalField(kernel.MathEvalSpec{Eval: eval})
	if err != nil {
		return 0, err
	}
	return k.AddRestrictField(kernel.RestrictSpec{Inner: inner, Surfaces: surfaces})
}

func axialEval(cfg Config) func(x, y, z float64) float64 {
	return func(x, y, z float64) float64 {
		return cfg.ThroatRes + (cfg.MouthRes-cfg.ThroatRes)*clamp01((z-cfg.ZThroat)/(cfg.ZMouth-cfg.ZThroat))
	}
}

func constEval(v float64) func(x, y, z float64) float64 {
	return func(x, y, z float64) float64 { return v }
}

// enclosureEval implements the ENCLOSURE(x, y, z) field: bilinear
// corner interpolation on the front panel, again on the back panel,
// then linear interpolation in z between the two panels.
func enclosureEval(cfg Config) func(x, y, z float64) float64 {
	return func(x, y, z float64) float64 {
		front := bilinear(cfg.EncFront, x, y, cfg.EncHalfW, cfg.EncHalfH)
		back := bilinear(cfg.EncBack, x, y, cfg.EncHalfW, cfg.EncHalfH)
		if cfg.EncZFront == cfg.EncZBack {
			return front
		}
		t := clamp01((z - cfg.EncZFront) / (cfg.EncZBack - cfg.EncZFront))
		return front + (back-front)*t
	}
}

// bilinear interpolates a QuadTuple's four corner values across the
// rectangle [-halfW, halfW] x [-halfH, halfH], mapped per spec.md
// section 4.7: Q1=(+x,+y), Q2=(-x,+y), Q3=(-x,-y), Q4=(+x,-y).
func bilinear(q schema.QuadTuple, x, y, halfW, halfH float64) float64 {
	u := clamp01((x + halfW) / (2 * halfW))
	v := clamp01((y + halfH) / (2 * halfH))
	bottom := q.Q3 + (q.Q4-q.Q3)*u // y = -halfH: Q3(-x) .. Q4(+x)
	top := q.Q2 + (q.Q1-q.Q2)*u    // y = +halfH: Q2(-x) .. Q1(+x)
	return bottom + (top-bottom)*v
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
