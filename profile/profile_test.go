package profile_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

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
n_angular: 100
n_length: 20
quadrants: 1234
throat_res: 5
mouth_res: 8
rear_res: 25
`

const minimalOSSE = `
formula_type: "OSSE"
L: "300"
a: "40"
r0: 10
a0: 12
k: 1.5
s: 0.6
n: 2
q: 1
n_angular: 80
n_length: 16
quadrants: 1234
throat_res: 4
mouth_res: 10
rear_res: 20
throat_profile: 1
`

func decode(t *testing.T, doc string) *schema.Record {
	t.Helper()
	rec, err := schema.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, schema.Validate(rec))
	return rec
}

func TestROSSEThroatMatchesR0Main(t *testing.T) {
	t.Parallel()
	rec := decode(t, minimalROSSE)
	fam, err := profile.NewFamily(rec, nil)
	require.NoError(t, err)

	r0m, err := fam.R0Main(0)
	require.NoError(t, err)
	require.InDelta(t, rec.R0, r0m, 1e-9) // no throat extension configured

	p, err := fam.Sample(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, r0m, p.Y, 1e-9)
}

func TestROSSEMouthRadiusMatchesR(t *testing.T) {
	t.Parallel()
	rec := decode(t, minimalROSSE)
	fam, err := profile.NewFamily(rec, nil)
	require.NoError(t, err)

	tmax, err := fam.DomainEnd(0)
	require.NoError(t, err)
	p, err := fam.Sample(tmax, 0)
	require.NoError(t, err)
	require.InDelta(t, 140, p.Y, 1e-3)
}

func TestOSSEThroatMatchesR0Main(t *testing.T) {
	t.Parallel()
	rec := decode(t, minimalOSSE)
	fam, err := profile.NewFamily(rec, nil)
	require.NoError(t, err)

	p, err := fam.Sample(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, rec.R0, p.Y, 1e-6)
}

func TestOSSEMouthRadiusMatchesI2(t *testing.T) {
	t.Parallel()
	rec := decode(t, minimalOSSE)
	fam, err := profile.NewFamily(rec, nil)
	require.NoError(t, err)

	L, err := fam.DomainEnd(0)
	require.NoError(t, err)
	p, err := fam.Sample(L, 0)
	require.NoError(t, err)

	aRad := 40.0 * math.Pi / 180
	expected := rec.R0 + L*math.Tan(aRad)
	require.InDelta(t, expected, p.Y, 1.0) // SE termination narrows the pure-OS estimate
}

func TestUnsupportedFormulaRejected(t *testing.T) {
	t.Parallel()
	doc := strings.Replace(minimalROSSE, `"R-OSSE"`, `"bogus"`, 1)
	rec, err := schema.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	rec.FormulaType = schema.FormulaType("bogus")
	_, err = profile.NewFamily(rec, nil)
	require.ErrorIs(t, err, profile.ErrUnsupportedFormula)
}

func TestCoverageOverrideReplacesRecordAngle(t *testing.T) {
	t.Parallel()
	rec := decode(t, minimalROSSE)
	constA := func(phi float64) (float64, error) { return 20, nil }
	fam, err := profile.NewFamily(rec, constA)
	require.NoError(t, err)

	tmax, err := fam.DomainEnd(0)
	require.NoError(t, err)
	p1, err := fam.Sample(tmax, 0)
	require.NoError(t, err)

	fam2, err := profile.NewFamily(rec, nil)
	require.NoError(t, err)
	p2, err := fam2.Sample(tmax, 0)
	require.NoError(t, err)

	require.NotEqual(t, p1, p2)
}
