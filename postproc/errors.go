package postproc

import "errors"

// ErrNonManifold indicates an edge used by more than two triangles
// (spec.md section 4.8, "edge-use census").
var ErrNonManifold = errors.New("postproc: non-manifold edge")

// ErrInconsistentWinding indicates the orientation propagation pass
// could not make a component's winding consistent.
var ErrInconsistentWinding = errors.New("postproc: inconsistent winding")

// ErrNonWatertight indicates a closed-mode mesh retained boundary
// edges after triangulation.
var ErrNonWatertight = errors.New("postproc: non-watertight mesh")

// ErrCrackedBoundary indicates a wall-shell-mode aperture boundary
// split into two loops that could not be stitched back together.
var ErrCrackedBoundary = errors.New("postproc: cracked boundary")

// ErrDisconnected indicates an enclosure-mode mesh has more than one
// connected component.
var ErrDisconnected = errors.New("postproc: disconnected mesh")

// ErrInvalidVolume indicates a closed-mode mesh's signed enclosed
// volume is zero or non-finite after reorientation (spec.md I8 and
// section 7).
var ErrInvalidVolume = errors.New("postproc: invalid enclosed volume")
