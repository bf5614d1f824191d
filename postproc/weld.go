package postproc

import (
	"math"

	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/mesh"
)

// DefaultTolerance is the fixed weld tolerance spec.md section 4.8
// names as an example ("e.g. 1e-6 mm").
const DefaultTolerance = 1e-6

// Weld merges vertices whose integer-quantised coordinates coincide
// under tolerance, remaps triangle indices, and drops triangles that
// became degenerate (two indices equal) after welding.
func Weld(m *mesh.Mesh, tolerance float64) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	scale := 1 / tolerance
	keyOf := func(p geom.Vec3) [3]int64 {
		return [3]int64{
			int64(math.Round(p.X * scale)),
			int64(math.Round(p.Y * scale)),
			int64(math.Round(p.Z * scale)),
		}
	}

	seen := make(map[[3]int64]int, len(m.Vertices))
	remap := make([]int, len(m.Vertices))
	welded := make([]geom.Vec3, 0, len(m.Vertices))
	for i, p := range m.Vertices {
		key := keyOf(p)
		if j, ok := seen[key]; ok {
			remap[i] = j
			continue
		}
		welded = append(welded, p)
		idx := len(welded) - 1
		seen[key] = idx
		remap[i] = idx
	}
	m.Vertices = welded

	tris := make([][3]int, 0, len(m.Triangles))
	tags := make([]mesh.Tag, 0, len(m.Triangles))
	for i, tr := range m.Triangles {
		a, b, c := remap[tr[0]], remap[tr[1]], remap[tr[2]]
		if a == b || b == c || a == c {
			continue
		}
		tris = append(tris, [3]int{a, b, c})
		if i < len(m.Tags) {
			tags = append(tags, m.Tags[i])
		}
	}
	m.Triangles = tris
	m.Tags = tags
}
