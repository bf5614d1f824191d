package simplekernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/simplekernel"
)

func TestBSplineSurfaceGridTriangulation(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	var pts []kernel.PointHandle
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p, err := k.AddPoint(float64(c), float64(r), 0)
			require.NoError(t, err)
			pts = append(pts, p)
		}
	}
	_, err := k.AddBSplineSurface(pts, 3, 3, 3, 3)
	require.NoError(t, err)
	require.NoError(t, k.Generate2D())
	require.NoError(t, k.RemoveDuplicateNodes())

	m, err := k.ExtractMesh()
	require.NoError(t, err)
	require.Equal(t, 9, m.NumVertices())
	require.Equal(t, 8, m.NumTriangles()) // 2x2 cells, 2 triangles each
}

func TestSurfaceFillingFanTriangulation(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	var pts []kernel.PointHandle
	for i := 0; i < 5; i++ {
		p, err := k.AddPoint(float64(i), 0, 0)
		require.NoError(t, err)
		pts = append(pts, p)
	}
	curve, err := k.AddBSpline(pts)
	require.NoError(t, err)
	loop, err := k.AddCurveLoop([]kernel.CurveHandle{curve}, false)
	require.NoError(t, err)
	_, err = k.AddSurfaceFilling(loop)
	require.NoError(t, err)
	require.NoError(t, k.Generate2D())

	m, err := k.ExtractMesh()
	require.NoError(t, err)
	require.Equal(t, 5, m.NumTriangles()) // one fan triangle per ring edge
}

func TestSetReverseFlipsWinding(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	var pts []kernel.PointHandle
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			p, err := k.AddPoint(float64(c), float64(r), 0)
			require.NoError(t, err)
			pts = append(pts, p)
		}
	}
	surf, err := k.AddBSplineSurface(pts, 2, 2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, k.Generate2D())

	before, err := k.ExtractMesh()
	require.NoError(t, err)

	require.NoError(t, k.SetReverse(2, int(surf)))
	after, err := k.ExtractMesh()
	require.NoError(t, err)

	for i := range before.Triangles {
		require.Equal(t, before.Triangles[i][0], after.Triangles[i][0])
		require.Equal(t, before.Triangles[i][1], after.Triangles[i][2])
	}
}

func TestRemoveDuplicateNodesWelds(t *testing.T) {
	t.Parallel()
	k := simplekernel.New()
	require.NoError(t, k.Init())
	defer k.Finalize()

	p1, err := k.AddPoint(0, 0, 0)
	require.NoError(t, err)
	p2, err := k.AddPoint(0, 0, 0) // exact duplicate
	require.NoError(t, err)
	p3, err := k.AddPoint(1, 0, 0)
	require.NoError(t, err)

	curve, err := k.AddBSpline([]kernel.PointHandle{p1, p2, p3})
	require.NoError(t, err)
	_, _ = curve, p2

	require.NoError(t, k.RemoveDuplicateNodes())
	m, err := k.ExtractMesh()
	require.NoError(t, err)
	require.Equal(t, 2, m.NumVertices())
}
