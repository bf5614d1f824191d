package postproc

import (
	"math"

	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/mesh"
)

func triCentroidAndNormal(m *mesh.Mesh, tr [3]int) (centroid, normal geom.Vec3) {
	a, b, c := m.Vertices[tr[0]], m.Vertices[tr[1]], m.Vertices[tr[2]]
	centroid = geom.Vec3{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3, Z: (a.Z + b.Z + c.Z) / 3}
	normal = b.Sub(a).Cross(c.Sub(a))
	return
}

func meshCentroid(m *mesh.Mesh) geom.Vec3 {
	var sum geom.Vec3
	for _, tr := range m.Triangles {
		c, _ := triCentroidAndNormal(m, tr)
		sum = sum.Add(c)
	}
	if len(m.Triangles) == 0 {
		return sum
	}
	return sum.Scale(1 / float64(len(m.Triangles)))
}

func reverseAll(m *mesh.Mesh) {
	for i, tr := range m.Triangles {
		m.Triangles[i] = [3]int{tr[0], tr[2], tr[1]}
	}
}

// SignedVolume returns the mesh's signed enclosed 6*volume under its
// current orientation (spec.md I8). It is only meaningful for a
// topologically closed mesh.
func SignedVolume(m *mesh.Mesh) float64 {
	var sixVol float64
	for _, tr := range m.Triangles {
		a, b, c := m.Vertices[tr[0]], m.Vertices[tr[1]], m.Vertices[tr[2]]
		sixVol += a.Dot(b.Cross(c))
	}
	return sixVol
}

// FixGlobalOrientation applies spec.md section 4.8's "Global
// orientation fix": in closed mode, the signed 6*volume under the
// current orientation must be positive (I8); in open mode, an
// outward-score against the mesh centroid must be non-negative.
// Either way, if the test comes out negative every triangle is
// reversed.
func FixGlobalOrientation(m *mesh.Mesh, closed bool) {
	if closed {
		if SignedVolume(m) < 0 {
			reverseAll(m)
		}
		return
	}

	centroid := meshCentroid(m)
	var score float64
	for _, tr := range m.Triangles {
		c, n := triCentroidAndNormal(m, tr)
		score += n.Dot(c.Sub(centroid))
	}
	if score < 0 {
		reverseAll(m)
	}
}

// FlipFrontPlaneBaffles implements the optional enclosure-mode
// tag-group flip (spec.md section 4.8): a wall triangle whose centroid
// lies on the front axial plane within tolerance, and whose normal's
// axial component exceeds 0.8 of its magnitude but points the wrong
// way (away from the enclosure interior, i.e. toward +axial), is
// flipped individually.
func FlipFrontPlaneBaffles(m *mesh.Mesh, frontZ, tolerance float64) {
	for i, tr := range m.Triangles {
		if i >= len(m.Tags) || m.Tags[i] != mesh.TagWall {
			continue
		}
		c, n := triCentroidAndNormal(m, tr)
		if math.Abs(c.Z-frontZ) > tolerance {
			continue
		}
		mag := n.Len()
		if mag == 0 || math.Abs(n.Z) <= 0.8*mag {
			continue
		}
		if n.Z > 0 { // should face the interior, i.e. -axial
			m.Triangles[i] = [3]int{tr[0], tr[2], tr[1]}
		}
	}
}
