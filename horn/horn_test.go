package horn_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/horn"
	"github.com/hornmesh/hornmesh/postproc"
	"github.com/hornmesh/hornmesh/schema"
)

// S1 — minimal R-OSSE horn, full circle, no wall shell, no enclosure
// (spec.md section 8).
const s1ROSSE = `
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
wall_thickness: 0
enc_depth: 0
`

// S2 — OSSE horn with a free-standing wall shell, full circle.
const s2WallShell = `
formula_type: "OSSE"
L: "120"
s: "0.6"
n: 4.158
q: 0.991
a: "60"
r0: 12.7
a0: 15.5
k: 7
h: 0
n_angular: 80
n_length: 16
quadrants: 1234
throat_res: 4
mouth_res: 8
rear_res: 20
wall_thickness: 6
enc_depth: 0
`

// S3 — OSSE + enclosure box, as S2 but boxed instead of wall-shelled.
const s3Enclosure = `
formula_type: "OSSE"
L: "120"
s: "0.6"
n: 4.158
q: 0.991
a: "60"
r0: 12.7
a0: 15.5
k: 7
h: 0
n_angular: 80
n_length: 16
quadrants: 1234
throat_res: 4
mouth_res: 8
rear_res: 20
wall_thickness: 0
enc_depth: 100
enc_space_l: 40
enc_space_r: 40
enc_space_t: 40
enc_space_b: 40
enc_edge: 20
enc_edge_type: 1
corner_segments: 4
`

func decode(t *testing.T, doc string) *schema.Record {
	t.Helper()
	rec, err := schema.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return rec
}

func TestBuildS1MinimalROSSEOpenMesh(t *testing.T) {
	t.Parallel()
	rec := decode(t, s1ROSSE)
	res, err := horn.Build(context.Background(), rec, horn.BuildOptions{})
	require.NoError(t, err)
	require.NotNil(t, res.Mesh)
	require.Greater(t, res.ElementCount, 0)

	sawSource := false
	for _, tag := range res.Mesh.Tags {
		require.Contains(t, []int{1, 2}, int(tag))
		if tag == 2 {
			sawSource = true
		}
	}
	require.True(t, sawSource, "source disc should carry tag 2")
}

func TestBuildS2WallShellTagsSourceDisc(t *testing.T) {
	t.Parallel()
	rec := decode(t, s2WallShell)
	res, err := horn.Build(context.Background(), rec, horn.BuildOptions{})
	require.NoError(t, err)
	require.Greater(t, res.ElementCount, 0)

	sawSource := false
	for _, tag := range res.Mesh.Tags {
		if tag == 2 {
			sawSource = true
		}
	}
	require.True(t, sawSource)
}

func TestBuildS3EnclosureWatertightPositiveVolume(t *testing.T) {
	t.Parallel()
	rec := decode(t, s3Enclosure)
	res, err := horn.Build(context.Background(), rec, horn.BuildOptions{})
	require.NoError(t, err)
	require.Greater(t, res.ElementCount, 0)
	require.NotEmpty(t, res.MshText)

	// I8/P5/P6: a closed enclosure build has no boundary edges left
	// and encloses a strictly positive volume.
	require.NoError(t, postproc.CheckWatertight(res.Mesh, true))
	require.Greater(t, postproc.SignedVolume(res.Mesh), 0.0)
}

func TestBuildS6UnknownFormulaRejected(t *testing.T) {
	t.Parallel()
	doc := strings.Replace(s1ROSSE, `"R-OSSE"`, `"foo"`, 1)
	rec, err := schema.Decode(strings.NewReader(doc))
	require.NoError(t, err) // decoding succeeds; Validate/Build rejects it

	_, buildErr := horn.Build(context.Background(), rec, horn.BuildOptions{})
	require.Error(t, buildErr)
	var be *horn.BuildError
	require.True(t, errors.As(buildErr, &be))
	require.Equal(t, horn.ErrUnsupportedFormula, be.Kind)
	require.Equal(t, horn.ClassValidation, be.Kind.Class())
}

func TestBuildP3DeterminismByteIdenticalMesh(t *testing.T) {
	t.Parallel()
	rec1 := decode(t, s1ROSSE)
	rec2 := decode(t, s1ROSSE)

	res1, err := horn.Build(context.Background(), rec1, horn.BuildOptions{})
	require.NoError(t, err)
	res2, err := horn.Build(context.Background(), rec2, horn.BuildOptions{})
	require.NoError(t, err)

	require.Equal(t, res1.MshText, res2.MshText)
	require.Equal(t, res1.NodeCount, res2.NodeCount)
	require.Equal(t, res1.ElementCount, res2.ElementCount)
}

func TestBuildStageHookFiresInOrder(t *testing.T) {
	t.Parallel()
	rec := decode(t, s1ROSSE)
	var stages []string
	_, err := horn.Build(context.Background(), rec, horn.BuildOptions{
		OnStage: func(s string) { stages = append(stages, s) },
	})
	require.NoError(t, err)
	require.Equal(t, []string{"profile", "grid", "assemble", "size-fields", "triangulate", "postprocess", "serialize"}, stages)
}

func TestBuildContextCancelledBeforeStart(t *testing.T) {
	t.Parallel()
	rec := decode(t, s1ROSSE)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := horn.Build(ctx, rec, horn.BuildOptions{})
	require.Error(t, err)
	var be *horn.BuildError
	require.True(t, errors.As(err, &be))
}
