package postproc

import (
	"math"

	"github.com/hornmesh/hornmesh/mesh"
)

// Options configures a postprocessing Run (spec.md section 4.8).
type Options struct {
	// Closed marks enclosure mode: watertightness and connectedness
	// become hard failures, and the global orientation fix uses signed
	// volume instead of the outward-score test.
	Closed bool
	// WeldTolerance overrides DefaultTolerance when positive.
	WeldTolerance float64

	// TriSurfaceTag and SourceSurfaces drive tag assignment (and the
	// front-plane baffle-flip pass, which needs to know wall triangles
	// ahead of the formally-last "tag assignment" step).
	TriSurfaceTag   []int
	SourceSurfaces  map[int]bool

	// FrontPlaneZ and FrontPlaneTolerance locate the enclosure's front
	// (mouth) panel for the optional tag-group flip pass. Ignored
	// unless Closed is true.
	FrontPlaneZ        float64
	FrontPlaneTolerance float64
}

// Result carries non-fatal outcomes of a Run.
type Result struct {
	Warnings []string
}

// Run executes the strictly-ordered passes of spec.md section 4.8 over
// m in place: weld, edge-use census, orientation propagation, global
// orientation fix, optional tag-group flips, watertightness/stitching,
// connectedness, and (already folded into the first step, see
// AssignTags) tag assignment.
func Run(m *mesh.Mesh, opts Options) (*Result, error) {
	AssignTags(m, opts.TriSurfaceTag, opts.SourceSurfaces)

	Weld(m, opts.WeldTolerance)

	if err := CheckManifold(m); err != nil {
		return nil, err
	}

	if err := PropagateOrientation(m); err != nil {
		return nil, err
	}

	FixGlobalOrientation(m, opts.Closed)

	if opts.Closed {
		FlipFrontPlaneBaffles(m, opts.FrontPlaneZ, opts.FrontPlaneTolerance)
	}

	if err := CheckWatertight(m, opts.Closed); err != nil {
		return nil, err
	}

	warnings, err := CheckConnectedness(m, opts.Closed)
	if err != nil {
		return nil, err
	}

	if opts.Closed {
		vol := SignedVolume(m)
		if vol == 0 || math.IsInf(vol, 0) || math.IsNaN(vol) {
			return nil, ErrInvalidVolume
		}
	}

	return &Result{Warnings: warnings}, nil
}
