package mesh

import "github.com/hornmesh/hornmesh/geom"

// Tag is a per-triangle surface tag (spec.md invariant I9: exactly
// two values are ever used).
type Tag int

const (
	// TagWall covers the rigid boundary: inner horn, outer shell, rear
	// closure, mouth rim, and enclosure panels.
	TagWall Tag = 1
	// TagSourceDisc covers the driving-piston surface at the throat.
	TagSourceDisc Tag = 2
)

// GroupName returns the physical-group name the original solver wrote
// to its .msh output for this tag (SPEC_FULL.md supplemented
// features). SD2G0, reserved by the original for a third group, is
// folded into SD1G0 here since I9 allows only two tags.
func (t Tag) GroupName() string {
	switch t {
	case TagSourceDisc:
		return "SD1D1001"
	default:
		return "SD1G0"
	}
}

// Mesh is the canonical output mesh (spec.md section 3.3): three
// parallel arrays produced at the end of a build, independent of the
// kernel session that built them.
type Mesh struct {
	Vertices  []geom.Vec3
	Triangles [][3]int
	Tags      []Tag // len(Tags) == len(Triangles)
}

// NumVertices returns len(m.Vertices).
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumTriangles returns len(m.Triangles).
func (m *Mesh) NumTriangles() int { return len(m.Triangles) }
