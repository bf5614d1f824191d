package assembler

import (
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/meshgrid"
)

// MouthLoop builds the closed curve loop at grid's mouth row (its last
// axial sample), for reuse as the enclosure front face's hole (spec.md
// section 4.6, enclosure mode: "the mouth-loop on the inner horn is
// used directly as the hole in the front face").
func MouthLoop(k kernel.Kernel, grid *meshgrid.Grid3D, full bool) (kernel.LoopHandle, error) {
	if len(grid.Points) == 0 {
		return 0, ErrEmptyGrid
	}
	loop, _, err := ringLoop(k, grid, len(grid.Points[0])-1, full)
	return loop, err
}

// MouthRim builds the annular rim joining the inner horn's mouth
// boundary to the outer shell's mouth boundary via a ruled
// through-section (spec.md section 4.6, wall-shell mode). Both loops
// are built from the mouth-row points of the inner and outer grids;
// no boundary curve is extracted from the kernel.
func MouthRim(k kernel.Kernel, inner, outer *meshgrid.Grid3D, full bool) (kernel.SurfaceHandle, error) {
	if len(inner.Points) == 0 || len(outer.Points) == 0 {
		return 0, ErrEmptyGrid
	}
	innerLoop, _, err := ringLoop(k, inner, len(inner.Points[0])-1, full)
	if err != nil {
		return 0, err
	}
	outerLoop, _, err := ringLoop(k, outer, len(outer.Points[0])-1, full)
	if err != nil {
		return 0, err
	}
	surfaces, err := k.AddThruSections([]kernel.LoopHandle{innerLoop, outerLoop}, false, true)
	if err != nil {
		return 0, err
	}
	if len(surfaces) == 0 {
		return 0, ErrEmptyGrid
	}
	return surfaces[0], nil
}
