package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/mesh"
)

// WriteSTL serializes m as ASCII STL (spec.md section 4.10's optional
// STL rendering). STL carries no physical-group information, only
// facet normals and vertices.
func WriteSTL(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "solid hornmesh")
	for _, tr := range m.Triangles {
		a, b, c := m.Vertices[tr[0]], m.Vertices[tr[1]], m.Vertices[tr[2]]
		n := b.Sub(a).Cross(c.Sub(a)).Normalized()
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range []geom.Vec3{a, b, c} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintln(bw, "endsolid hornmesh")
	return bw.Flush()
}
