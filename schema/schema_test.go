package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

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

func TestDecodeAndValidateMinimal(t *testing.T) {
	t.Parallel()
	rec, err := schema.Decode(strings.NewReader(minimalROSSE))
	require.NoError(t, err)
	require.Equal(t, schema.FormulaROSSE, rec.FormulaType)
	require.NoError(t, schema.Validate(rec))
}

func TestDecodeRejectsUnknownKey(t *testing.T) {
	t.Parallel()
	doc := minimalROSSE + "\nbogus_key: 1\n"
	_, err := schema.Decode(strings.NewReader(doc))
	require.Error(t, err)
	require.ErrorIs(t, err, schema.ErrUnknownField)
	require.Contains(t, err.Error(), "bogus_key")
}

func TestValidateUnsupportedFormula(t *testing.T) {
	t.Parallel()
	doc := strings.Replace(minimalROSSE, `"R-OSSE"`, `"foo"`, 1)
	rec, err := schema.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	err = schema.Validate(rec)
	require.Error(t, err)
	require.ErrorIs(t, err, schema.ErrUnsupportedFormula)
}

func TestValidateEnclosureRequiresFullQuadrants(t *testing.T) {
	t.Parallel()
	rec, err := schema.Decode(strings.NewReader(minimalROSSE))
	require.NoError(t, err)
	rec.Quadrants = schema.Quadrant1
	rec.EncDepth = 100
	err = schema.Validate(rec)
	require.Error(t, err)
	require.ErrorIs(t, err, schema.ErrUnsupportedQuadrants)
}

func TestValidateRequiresClosedShell(t *testing.T) {
	t.Parallel()
	rec, err := schema.Decode(strings.NewReader(minimalROSSE))
	require.NoError(t, err)
	rec.RequireClosedShell = true
	err = schema.Validate(rec)
	require.Error(t, err)
	require.ErrorIs(t, err, schema.ErrRequiresClosedShell)
}

func TestQuadTupleBroadcastAndSequence(t *testing.T) {
	t.Parallel()
	doc := minimalROSSE + "\nenc_front_resolution: 5\nenc_back_resolution: [1,2,3,4]\n"
	rec, err := schema.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, schema.Broadcast(5), rec.EncFrontResolution)
	require.Equal(t, schema.QuadTuple{Q1: 1, Q2: 2, Q3: 3, Q4: 4}, rec.EncBackResolution)
}
