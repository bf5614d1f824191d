package assembler

import (
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/meshgrid"
)

// InnerHorn builds the inner horn wall surface(s) from grid (spec.md
// section 4.6). A full 2*pi sweep is split into two half-patches that
// share a seam column and wrap back to column 0, since a single
// BSpline patch cannot fit a periodic grid; a partial-quadrant sweep
// is a single open patch.
func InnerHorn(k kernel.Kernel, grid *meshgrid.Grid3D, full bool) ([]kernel.SurfaceHandle, error) {
	return gridSurfaces(k, grid, full)
}

// OuterShell builds the outer wall-shell surface(s) the same way as
// InnerHorn, from the offset grid (spec.md section 4.6, wall-shell
// mode).
func OuterShell(k kernel.Kernel, grid *meshgrid.Grid3D, full bool) ([]kernel.SurfaceHandle, error) {
	return gridSurfaces(k, grid, full)
}

func gridSurfaces(k kernel.Kernel, grid *meshgrid.Grid3D, full bool) ([]kernel.SurfaceHandle, error) {
	if len(grid.Phis) == 0 || len(grid.Points) == 0 || len(grid.Points[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(grid.Phis)
	if !full || n < 4 {
		s, err := addPatch(k, grid, 0, n, false)
		if err != nil {
			return nil, err
		}
		return []kernel.SurfaceHandle{s}, nil
	}

	mid := n / 2
	s1, err := addPatch(k, grid, 0, mid+1, false)
	if err != nil {
		return nil, err
	}
	s2, err := addPatch(k, grid, mid, n, true)
	if err != nil {
		return nil, err
	}
	return []kernel.SurfaceHandle{s1, s2}, nil
}

// addPatch fits a BSpline surface over phi columns [start, end); when
// wrap is true an extra column duplicating column 0 is appended so the
// patch closes the loop back to the seam.
func addPatch(k kernel.Kernel, grid *meshgrid.Grid3D, start, end int, wrap bool) (kernel.SurfaceHandle, error) {
	nRows := len(grid.Points[start])
	nCols := end - start
	if wrap {
		nCols++
	}

	flat := make([]kernel.PointHandle, 0, nCols*nRows)
	colAt := func(c int) int {
		if wrap && c == nCols-1 {
			return 0
		}
		return start + c
	}
	for r := 0; r < nRows; r++ {
		for c := 0; c < nCols; c++ {
			p := grid.Points[colAt(c)][r]
			h, err := k.AddPoint(p.X, p.Y, p.Z)
			if err != nil {
				return 0, err
			}
			flat = append(flat, h)
		}
	}

	degU, degV := 3, 3
	if nCols-1 < degU {
		degU = max1(nCols - 1)
	}
	if nRows-1 < degV {
		degV = max1(nRows - 1)
	}
	return k.AddBSplineSurface(flat, nCols, nRows, degU, degV)
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
