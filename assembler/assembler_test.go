package assembler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/assembler"
	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/meshgrid"
	"github.com/hornmesh/hornmesh/schema"
	"github.com/hornmesh/hornmesh/simplekernel"
)

func sampleGrid(nPhi, nRows int, radiusAt func(row int) float64) *meshgrid.Grid3D {
	g := &meshgrid.Grid3D{Points: make([][]geom.Vec3, nPhi)}
	for i := 0; i < nPhi; i++ {
		phi := 2 * math.Pi * float64(i) / float64(nPhi)
		g.Phis = append(g.Phis, phi)
		row := make([]geom.Vec3, nRows)
		for r := 0; r < nRows; r++ {
			row[r] = geom.FromPolar(float64(r)*10, radiusAt(r), phi)
		}
		g.Points[i] = row
	}
	return g
}

func ringLoopOf(t *testing.T, k kernel.Kernel, pts []geom.Vec3) kernel.LoopHandle {
	t.Helper()
	handles := make([]kernel.PointHandle, len(pts)+1)
	for i, p := range pts {
		h, err := k.AddPoint(p.X, p.Y, p.Z)
		require.NoError(t, err)
		handles[i] = h
	}
	handles[len(pts)] = handles[0]
	curve, err := k.AddBSpline(handles)
	require.NoError(t, err)
	loop, err := k.AddCurveLoop([]kernel.CurveHandle{curve}, false)
	require.NoError(t, err)
	return loop
}

func TestInnerHornFullCircleSplitsIntoTwoPatches(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	grid := sampleGrid(8, 4, func(r int) float64 { return 5 + float64(r) })
	surfaces, err := assembler.InnerHorn(k, grid, true)
	require.NoError(t, err)
	require.Len(t, surfaces, 2)
}

func TestInnerHornPartialQuadrantSinglePatch(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	grid := sampleGrid(5, 4, func(r int) float64 { return 5 + float64(r) })
	surfaces, err := assembler.InnerHorn(k, grid, false)
	require.NoError(t, err)
	require.Len(t, surfaces, 1)
}

func TestSourceDiscFullCircle(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	grid := sampleGrid(8, 4, func(r int) float64 { return 5 + float64(r) })
	_, err := assembler.SourceDisc(k, grid, true)
	require.NoError(t, err)
}

func TestSourceDiscPartialQuadrantAddsSpokes(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	grid := sampleGrid(5, 4, func(r int) float64 { return 5 + float64(r) })
	_, err := assembler.SourceDisc(k, grid, false)
	require.NoError(t, err)
}

func TestMouthRimThruSections(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	inner := sampleGrid(8, 3, func(r int) float64 { return 5 + float64(r) })
	outer := sampleGrid(8, 3, func(r int) float64 { return 7 + float64(r) })
	_, err := assembler.MouthRim(k, inner, outer, true)
	require.NoError(t, err)
}

func TestRearClosureBuildsStepAndDisc(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	outer := sampleGrid(6, 3, func(r int) float64 { return 8 + float64(r) })
	surfaces, err := assembler.RearClosure(k, outer, true, 5)
	require.NoError(t, err)
	require.True(t, len(surfaces) >= 2)
}

func TestEnclosureBuildsThreeSurfaceGroups(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	mouthRing := sampleGrid(6, 1, func(int) float64 { return 5 })
	var loopPts []geom.Vec3
	for i := range mouthRing.Phis {
		loopPts = append(loopPts, mouthRing.Points[i][0])
	}
	mouthLoop := ringLoopOf(t, k, loopPts)

	box := assembler.Box{
		XMin: -20, XMax: 20, YMin: -20, YMax: 20,
		ZFront: 0, ZBack: -30,
		EdgeRadius: 3, EdgeType: schema.EdgeFillet, CornerSegments: 2,
	}
	surfaces, err := assembler.Enclosure(k, box, mouthLoop)
	require.NoError(t, err)
	require.Len(t, surfaces, 3) // front, back, side
}

func TestEnclosureChamferVariant(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	mouthRing := sampleGrid(6, 1, func(int) float64 { return 5 })
	var loopPts []geom.Vec3
	for i := range mouthRing.Phis {
		loopPts = append(loopPts, mouthRing.Points[i][0])
	}
	mouthLoop := ringLoopOf(t, k, loopPts)

	box := assembler.Box{
		XMin: -20, XMax: 20, YMin: -20, YMax: 20,
		ZFront: 0, ZBack: -30,
		EdgeRadius: 3, EdgeType: schema.EdgeChamfer, CornerSegments: 1,
	}
	surfaces, err := assembler.Enclosure(k, box, mouthLoop)
	require.NoError(t, err)
	require.Len(t, surfaces, 3)
}
