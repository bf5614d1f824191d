package assembler

import (
	"math"

	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/schema"
)

// Box holds the enclosure's padded bounding rectangle and axial
// extent (spec.md section 4.6, "a box around the mouth bounding box
// padded by (enc_space_l/r/t/b), with depth enc_depth toward the
// rear").
type Box struct {
	XMin, XMax, YMin, YMax float64
	ZFront, ZBack          float64
	EdgeRadius             float64
	EdgeType               schema.EdgeType
	CornerSegments         int
}

// Enclosure builds the enclosure box (spec.md section 4.6, enclosure
// mode): the front face shares the mouth loop as its hole (mouthHole),
// the back face is a plain plane-filled disc, and the front/rear edges
// use a fillet or chamfer transition swept uniformly around the
// perimeter and discretised into CornerSegments axial rings, per
// EdgeType.
func Enclosure(k kernel.Kernel, box Box, mouthHole kernel.LoopHandle) ([]kernel.SurfaceHandle, error) {
	perim := rectanglePerimeter(box.XMin, box.XMax, box.YMin, box.YMax)

	frontOuter := ringAt(perim, box.ZFront)
	frontLoop, err := closedLoop(k, frontOuter)
	if err != nil {
		return nil, err
	}
	frontFace, err := k.AddPlaneSurface([]kernel.LoopHandle{frontLoop, mouthHole})
	if err != nil {
		return nil, err
	}

	backOuter := ringAt(perim, box.ZBack)
	backLoop, err := closedLoop(k, backOuter)
	if err != nil {
		return nil, err
	}
	backFace, err := k.AddPlaneSurface([]kernel.LoopHandle{backLoop})
	if err != nil {
		return nil, err
	}

	sideGrid := sideWallRings(perim, box)
	sideSurface, err := addClosedPatch(k, sideGrid)
	if err != nil {
		return nil, err
	}

	return []kernel.SurfaceHandle{frontFace, backFace, sideSurface}, nil
}

func rectanglePerimeter(xMin, xMax, yMin, yMax float64) []geom.Vec2 {
	return []geom.Vec2{
		{X: xMax, Y: yMax}, // Q1 corner
		{X: xMin, Y: yMax}, // Q2 corner
		{X: xMin, Y: yMin}, // Q3 corner
		{X: xMax, Y: yMin}, // Q4 corner
	}
}

func ringAt(perim []geom.Vec2, z float64) []geom.Vec3 {
	pts := make([]geom.Vec3, len(perim))
	for i, p := range perim {
		pts[i] = geom.Vec3{X: p.X, Y: p.Y, Z: z}
	}
	return pts
}

// sideWallRings builds the axial rings composing the side wall,
// including the front and rear edge transitions. Each transition
// sweeps a quarter-profile (circular for a fillet, linear for a
// chamfer) from the flat cap plane to the straight side wall,
// uniformly shrinking the rectangle inward as it moves axially -- an
// engineering approximation of a true edge fillet/chamfer, since it
// treats the rectangle's four sides (not just its corners) as
// receiving the same radius.
func sideWallRings(perim []geom.Vec2, box Box) [][]geom.Vec3 {
	segs := box.CornerSegments
	if segs < 1 {
		segs = 1
	}
	r := box.EdgeRadius

	var rings [][]geom.Vec3
	appendRing := func(inset, z float64) {
		rings = append(rings, ringAt(shrink(perim, inset), z))
	}

	if r <= 0 {
		appendRing(0, box.ZFront)
		appendRing(0, box.ZBack)
		return rings
	}

	for s := 0; s <= segs; s++ {
		theta := float64(s) / float64(segs) * (math.Pi / 2)
		inset, dz := transitionProfile(box.EdgeType, r, theta)
		appendRing(inset, box.ZFront-dz)
	}
	straightZFront := box.ZFront - r
	straightZBack := box.ZBack + r
	if straightZBack < straightZFront {
		// Depth greater than twice the edge radius: the front
		// transition's last ring (ZFront-r) and the back transition's
		// first ring (ZBack+r) already bound the straight run, so no
		// ring is added between them.
	} else {
		appendRing(r, straightZBack)
	}
	for s := segs; s >= 0; s-- {
		theta := float64(s) / float64(segs) * (math.Pi / 2)
		inset, dz := transitionProfile(box.EdgeType, r, theta)
		appendRing(inset, box.ZBack+dz)
	}
	return rings
}

func transitionProfile(edgeType schema.EdgeType, r, theta float64) (inset, dz float64) {
	if edgeType == schema.EdgeChamfer {
		frac := theta / (math.Pi / 2)
		return r * frac, r * frac
	}
	return r * (1 - math.Cos(theta)), r * math.Sin(theta)
}

func shrink(perim []geom.Vec2, inset float64) []geom.Vec2 {
	out := make([]geom.Vec2, len(perim))
	for i, p := range perim {
		out[i] = geom.Vec2{X: p.X - sign(p.X)*inset, Y: p.Y - sign(p.Y)*inset}
	}
	return out
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func closedLoop(k kernel.Kernel, ring []geom.Vec3) (kernel.LoopHandle, error) {
	pts := make([]kernel.PointHandle, len(ring)+1)
	for i, p := range ring {
		h, err := k.AddPoint(p.X, p.Y, p.Z)
		if err != nil {
			return 0, err
		}
		pts[i] = h
	}
	pts[len(ring)] = pts[0]
	curve, err := k.AddBSpline(pts)
	if err != nil {
		return 0, err
	}
	return k.AddCurveLoop([]kernel.CurveHandle{curve}, false)
}

// addClosedPatch fits a single BSpline surface over rings, a list of
// closed perimeter rings, wrapping each ring's last column back to its
// first so the patch closes around the loop.
func addClosedPatch(k kernel.Kernel, rings [][]geom.Vec3) (kernel.SurfaceHandle, error) {
	if len(rings) == 0 || len(rings[0]) == 0 {
		return 0, ErrEmptyGrid
	}
	nCols := len(rings[0]) + 1
	nRows := len(rings)

	flat := make([]kernel.PointHandle, 0, nCols*nRows)
	for r := 0; r < nRows; r++ {
		ring := rings[r]
		for c := 0; c < nCols; c++ {
			idx := c
			if idx == len(ring) {
				idx = 0
			}
			p := ring[idx]
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
