package assembler

import (
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/meshgrid"
)

// RearClosure builds the rear of a wall-shell-mode horn (spec.md
// section 4.6): "an axial step surface from the outer throat ring to a
// translated copy of it offset by -wall_thickness in the axial
// direction, plus a plane-filled disc closing the rear."
func RearClosure(k kernel.Kernel, outer *meshgrid.Grid3D, full bool, wallThickness float64) ([]kernel.SurfaceHandle, error) {
	if len(outer.Points) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(outer.Phis)

	throatLoop, _, err := ringLoop(k, outer, 0, full)
	if err != nil {
		return nil, err
	}

	translated := make([]kernel.PointHandle, n)
	for i := 0; i < n; i++ {
		p := outer.Points[i][0]
		h, err := k.AddPoint(p.X, p.Y, p.Z-wallThickness)
		if err != nil {
			return nil, err
		}
		translated[i] = h
	}
	translatedRing := translated
	if full {
		translatedRing = append(append([]kernel.PointHandle{}, translated...), translated[0])
	}
	backCurve, err := k.AddBSpline(translatedRing)
	if err != nil {
		return nil, err
	}
	backLoop, err := k.AddCurveLoop([]kernel.CurveHandle{backCurve}, false)
	if err != nil {
		return nil, err
	}

	stepSurfaces, err := k.AddThruSections([]kernel.LoopHandle{throatLoop, backLoop}, false, true)
	if err != nil {
		return nil, err
	}

	backDisc, err := k.AddPlaneSurface([]kernel.LoopHandle{backLoop})
	if err != nil {
		return nil, err
	}

	return append(stepSurfaces, backDisc), nil
}
