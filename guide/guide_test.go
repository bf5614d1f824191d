package guide_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/guide"
	"github.com/hornmesh/hornmesh/profile"
	"github.com/hornmesh/hornmesh/schema"
)

func TestSuperellipseRadiusIsCircularWhenSquare(t *testing.T) {
	t.Parallel()
	rec := &schema.Record{
		GCurveType:        schema.GCurveSuperellipse,
		GCurveWidth:       100,
		GCurveAspectRatio: 1,
		GCurveSEN:         2,
	}
	c, ok := guide.NewCurve(rec)
	require.True(t, ok)
	r, ok := c.Radius(0)
	require.True(t, ok)
	require.InDelta(t, 50, r, 1e-9)
	r2, ok := c.Radius(math.Pi / 2)
	require.True(t, ok)
	require.InDelta(t, r, r2, 1e-9)
}

func TestNewCurveNoneReturnsFalse(t *testing.T) {
	t.Parallel()
	rec := &schema.Record{GCurveType: schema.GCurveNone}
	_, ok := guide.NewCurve(rec)
	require.False(t, ok)
}

func TestAxialSamplePositionFractionAndAbsolute(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 50, guide.AxialSamplePosition(0.5, 100, 0, 0), 1e-9)
	require.InDelta(t, 70, guide.AxialSamplePosition(80, 100, 10, 0), 1e-9)
	require.InDelta(t, 0, guide.AxialSamplePosition(5, 100, 10, 0), 1e-9)
	require.InDelta(t, 100, guide.AxialSamplePosition(500, 100, 0, 0), 1e-9)
}

func TestInvertCoverageRoundTrips(t *testing.T) {
	t.Parallel()
	const r0Main, a0Deg, k, zMain = 10.0, 12.0, 1.5, 150.0
	const trueA = 30.0
	target := profile.OSSEBaseRadius(zMain, r0Main, a0Deg, k, trueA)

	got, err := guide.InvertCoverage(target, zMain, r0Main, a0Deg, k)
	require.NoError(t, err)
	require.InDelta(t, trueA, got, 1e-5)
}

func TestInvertCoverageUnbracketed(t *testing.T) {
	t.Parallel()
	_, err := guide.InvertCoverage(-1000, 150, 10, 12, 1.5)
	require.ErrorIs(t, err, guide.ErrNoBracket)
}
