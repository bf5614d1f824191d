package assembler

import (
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/meshgrid"
)

// ringLoop builds a curve loop over the points at rowIndex across all
// phi columns of grid. A full sweep closes the ring on itself; a
// partial sweep leaves it open (the caller decides whether that open
// ring needs an extra closing edge, e.g. SourceDisc's radial spokes).
func ringLoop(k kernel.Kernel, grid *meshgrid.Grid3D, rowIndex int, full bool) (kernel.LoopHandle, []kernel.PointHandle, error) {
	n := len(grid.Phis)
	pts := make([]kernel.PointHandle, n)
	for i := 0; i < n; i++ {
		p := grid.Points[i][rowIndex]
		h, err := k.AddPoint(p.X, p.Y, p.Z)
		if err != nil {
			return 0, nil, err
		}
		pts[i] = h
	}

	ringPts := pts
	if full {
		ringPts = append(append([]kernel.PointHandle{}, pts...), pts[0])
	}
	curve, err := k.AddBSpline(ringPts)
	if err != nil {
		return 0, nil, err
	}
	loop, err := k.AddCurveLoop([]kernel.CurveHandle{curve}, false)
	if err != nil {
		return 0, nil, err
	}
	return loop, pts, nil
}

// SourceDisc builds the acoustic source surface at the throat ring
// (spec.md section 4.6, "the source disc"). In quadrant mode the ring
// is an open arc; it is closed into a pie-slice boundary by two radial
// spokes to the throat's on-axis centre before filling.
func SourceDisc(k kernel.Kernel, grid *meshgrid.Grid3D, full bool) (kernel.SurfaceHandle, error) {
	if len(grid.Phis) == 0 || len(grid.Points) == 0 {
		return 0, ErrEmptyGrid
	}

	if full {
		loop, _, err := ringLoop(k, grid, 0, true)
		if err != nil {
			return 0, err
		}
		return k.AddSurfaceFilling(loop)
	}

	_, ringPts, err := ringLoop(k, grid, 0, false)
	if err != nil {
		return 0, err
	}
	arc, err := k.AddBSpline(ringPts)
	if err != nil {
		return 0, err
	}
	axisZ := grid.Points[0][0].Z
	center, err := k.AddPoint(0, 0, axisZ)
	if err != nil {
		return 0, err
	}
	spokeOut, err := k.AddBSpline([]kernel.PointHandle{ringPts[len(ringPts)-1], center})
	if err != nil {
		return 0, err
	}
	spokeIn, err := k.AddBSpline([]kernel.PointHandle{center, ringPts[0]})
	if err != nil {
		return 0, err
	}
	loop, err := k.AddCurveLoop([]kernel.CurveHandle{arc, spokeOut, spokeIn}, true)
	if err != nil {
		return 0, err
	}
	return k.AddSurfaceFilling(loop)
}
