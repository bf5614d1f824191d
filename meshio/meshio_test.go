package meshio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/mesh"
	"github.com/hornmesh/hornmesh/meshio"
)

func sampleMesh() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []geom.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 1, 3}},
		Tags:      []mesh.Tag{mesh.TagWall, mesh.TagSourceDisc},
	}
}

func TestWriteMsh22ContainsPhysicalNames(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, meshio.WriteMsh(&buf, sampleMesh(), "2.2"))
	out := buf.String()
	require.Contains(t, out, "$MeshFormat")
	require.Contains(t, out, "SD1G0")
	require.Contains(t, out, "SD1D1001")
	require.Contains(t, out, "$EndElements")
}

func TestWriteMsh41ContainsPhysicalNames(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, meshio.WriteMsh(&buf, sampleMesh(), "4.1"))
	require.Contains(t, buf.String(), "4.1 0 8")
}

func TestWriteMshRejectsUnsupportedVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := meshio.WriteMsh(&buf, sampleMesh(), "1.0")
	require.ErrorIs(t, err, meshio.ErrUnsupportedVersion)
}

func TestWriteSTLWellFormed(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, meshio.WriteSTL(&buf, sampleMesh()))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "solid hornmesh"))
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "endsolid hornmesh"))
	require.Equal(t, 2, strings.Count(out, "facet normal"))
}
