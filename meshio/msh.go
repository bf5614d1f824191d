package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hornmesh/hornmesh/mesh"
)

// WriteMsh serializes m as Gmsh-style ASCII text in the requested
// version (spec.md section 4.10). Physical groups are always the two
// from mesh.Tag.GroupName: SD1G0 (wall) and SD1D1001 (source disc).
func WriteMsh(w io.Writer, m *mesh.Mesh, version string) error {
	switch version {
	case "2.2":
		return writeMsh22(w, m)
	case "4.1":
		return writeMsh41(w, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
}

func groupsPresent(m *mesh.Mesh) []mesh.Tag {
	seen := map[mesh.Tag]bool{}
	var tags []mesh.Tag
	for _, t := range m.Tags {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}

func writeMsh22(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "$MeshFormat")
	fmt.Fprintln(bw, "2.2 0 8")
	fmt.Fprintln(bw, "$EndMeshFormat")

	tags := groupsPresent(m)
	fmt.Fprintln(bw, "$PhysicalNames")
	fmt.Fprintln(bw, len(tags))
	for _, t := range tags {
		fmt.Fprintf(bw, "2 %d \"%s\"\n", t, t.GroupName())
	}
	fmt.Fprintln(bw, "$EndPhysicalNames")

	fmt.Fprintln(bw, "$Nodes")
	fmt.Fprintln(bw, len(m.Vertices))
	for i, v := range m.Vertices {
		fmt.Fprintf(bw, "%d %g %g %g\n", i+1, v.X, v.Y, v.Z)
	}
	fmt.Fprintln(bw, "$EndNodes")

	fmt.Fprintln(bw, "$Elements")
	fmt.Fprintln(bw, len(m.Triangles))
	for i, tr := range m.Triangles {
		tag := int(m.Tags[i])
		fmt.Fprintf(bw, "%d 2 2 %d %d %d %d %d\n", i+1, tag, tag, tr[0]+1, tr[1]+1, tr[2]+1)
	}
	fmt.Fprintln(bw, "$EndElements")

	return bw.Flush()
}

// writeMsh41 writes a simplified approximation of the Gmsh 4.1 ASCII
// grammar: all nodes and elements are grouped into one entity block
// per physical tag rather than Gmsh's full per-entity bounding-box
// bookkeeping. A real CAD/meshing library's own writer (spec.md
// section 6.1's "File writers" capability) produces the exact format;
// this one is for human/tool inspection of the canonical mesh.
func writeMsh41(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "$MeshFormat")
	fmt.Fprintln(bw, "4.1 0 8")
	fmt.Fprintln(bw, "$EndMeshFormat")

	tags := groupsPresent(m)
	fmt.Fprintln(bw, "$PhysicalNames")
	fmt.Fprintln(bw, len(tags))
	for _, t := range tags {
		fmt.Fprintf(bw, "2 %d \"%s\"\n", t, t.GroupName())
	}
	fmt.Fprintln(bw, "$EndPhysicalNames")

	fmt.Fprintln(bw, "$Nodes")
	fmt.Fprintln(bw, "1", len(m.Vertices), "1", len(m.Vertices))
	fmt.Fprintln(bw, "2 0 0", len(m.Vertices))
	for i := range m.Vertices {
		fmt.Fprintln(bw, i+1)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%g %g %g\n", v.X, v.Y, v.Z)
	}
	fmt.Fprintln(bw, "$EndNodes")

	byTag := map[mesh.Tag][][3]int{}
	for i, tr := range m.Triangles {
		byTag[m.Tags[i]] = append(byTag[m.Tags[i]], tr)
	}
	fmt.Fprintln(bw, "$Elements")
	fmt.Fprintln(bw, len(tags), len(m.Triangles), "1", len(m.Triangles))
	elemID := 1
	for _, t := range tags {
		tris := byTag[t]
		fmt.Fprintln(bw, "2", int(t), "2", len(tris))
		for _, tr := range tris {
			fmt.Fprintf(bw, "%d %d %d %d\n", elemID, tr[0]+1, tr[1]+1, tr[2]+1)
			elemID++
		}
	}
	fmt.Fprintln(bw, "$EndElements")

	return bw.Flush()
}
