package meshgrid_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/expr"
	"github.com/hornmesh/hornmesh/meshgrid"
	"github.com/hornmesh/hornmesh/morph"
	"github.com/hornmesh/hornmesh/profile"
	"github.com/hornmesh/hornmesh/schema"
)

const minimalROSSE = `
formula_type: "R-OSSE"
R: "140"
a: "45"
r0: 12.7
a0: 15.5
k: 2
r: 0.4
b: 0.2
m: 0.85
q: 3.4
tmax: 1.0
n_angular: 16
n_length: 10
quadrants: 1234
throat_res: 5
mouth_res: 8
rear_res: 25
`

func decode(t *testing.T, doc string) *schema.Record {
	t.Helper()
	rec, err := schema.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, schema.Validate(rec))
	return rec
}

func TestPhiSamplesFullCircleExcludesEndpoint(t *testing.T) {
	t.Parallel()
	phis := meshgrid.PhiSamples(8, schema.QuadrantsAll)
	require.Len(t, phis, 8)
	require.InDelta(t, 0, phis[0], 1e-9)
	require.Less(t, phis[len(phis)-1], 2*math.Pi)
}

func TestPhiSamplesReducedIncludesBothEndpoints(t *testing.T) {
	t.Parallel()
	phis := meshgrid.PhiSamples(8, schema.Quadrant1)
	require.Len(t, phis, 9)
	require.InDelta(t, 0, phis[0], 1e-9)
	require.InDelta(t, math.Pi/2, phis[len(phis)-1], 1e-9)
}

func TestBuildRawThroatMatchesI1(t *testing.T) {
	t.Parallel()
	rec := decode(t, minimalROSSE)
	fam, err := profile.NewFamily(rec, nil)
	require.NoError(t, err)
	phis := meshgrid.PhiSamples(rec.NAngular, rec.Quadrants)

	grid, err := meshgrid.BuildRaw(fam, rec, phis, expr.Constant(0))
	require.NoError(t, err)
	for i := range phis {
		row := grid.Points[i]
		require.InDelta(t, rec.R0, row[0].Y, 1e-6)
	}
}

func TestProjectProducesPolarCoordinates(t *testing.T) {
	t.Parallel()
	rec := decode(t, minimalROSSE)
	fam, err := profile.NewFamily(rec, nil)
	require.NoError(t, err)
	phis := meshgrid.PhiSamples(rec.NAngular, rec.Quadrants)
	raw, err := meshgrid.BuildRaw(fam, rec, phis, expr.Constant(0))
	require.NoError(t, err)

	grid3d := meshgrid.Project(raw, rec, morph.ConfigFromRecord(rec))
	require.Len(t, grid3d.Points, len(phis))
	for i, phi := range phis {
		row := raw.Points[i]
		p3 := grid3d.Points[i][0]
		require.InDelta(t, row[0].Y*math.Cos(phi), p3.X, 1e-6)
		require.InDelta(t, row[0].Y*math.Sin(phi), p3.Y, 1e-6)
		require.InDelta(t, row[0].X, p3.Z, 1e-6)
	}
}

func TestOffsetShellThroatRowForced(t *testing.T) {
	t.Parallel()
	rec := decode(t, minimalROSSE)
	fam, err := profile.NewFamily(rec, nil)
	require.NoError(t, err)
	phis := meshgrid.PhiSamples(rec.NAngular, rec.Quadrants)
	inner, err := meshgrid.BuildRaw(fam, rec, phis, expr.Constant(0))
	require.NoError(t, err)

	outer := meshgrid.OffsetShell(inner, 3)
	for i := range phis {
		require.InDelta(t, inner.Points[i][0].X, outer.Points[i][0].X, 1e-9)
		require.InDelta(t, inner.Points[i][0].Y+3, outer.Points[i][0].Y, 1e-9)
	}
}
