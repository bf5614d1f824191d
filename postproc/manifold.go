package postproc

import "github.com/hornmesh/hornmesh/mesh"

type edgeKey [2]int

func keyOf(a, b int) (edgeKey, bool) {
	if a < b {
		return edgeKey{a, b}, true
	}
	return edgeKey{b, a}, false
}

// edgeUse records one triangle's use of an undirected edge: which
// triangle, which of its three edges (0, 1 or 2), and whether that
// triangle traverses the edge in the key's (low, high) direction.
type edgeUse struct {
	tri     int
	ordinal int
	forward bool
}

func buildEdgeMap(tris [][3]int) map[edgeKey][]edgeUse {
	m := make(map[edgeKey][]edgeUse, len(tris)*3)
	for t, tr := range tris {
		for o := 0; o < 3; o++ {
			a, b := tr[o], tr[(o+1)%3]
			key, fwd := keyOf(a, b)
			m[key] = append(m[key], edgeUse{tri: t, ordinal: o, forward: fwd})
		}
	}
	return m
}

// CheckManifold fails with ErrNonManifold if any undirected edge is
// used by more than two triangles (spec.md section 4.8, "edge-use
// census").
func CheckManifold(m *mesh.Mesh) error {
	edges := buildEdgeMap(m.Triangles)
	for _, uses := range edges {
		if len(uses) > 2 {
			return ErrNonManifold
		}
	}
	return nil
}

// PropagateOrientation walks each connected component (joined by
// manifold, i.e. exactly-2-use, edges) breadth-first, flipping
// triangles so that every interior edge is traversed in opposite
// directions by its two incident triangles. It fails with
// ErrInconsistentWinding if a component cannot be made consistent
// (e.g. a non-orientable patch).
func PropagateOrientation(m *mesh.Mesh) error {
	tris := m.Triangles
	edges := buildEdgeMap(tris)

	// neighborsOf[t] lists, for each manifold edge of triangle t, the
	// other incident triangle and both sides' directed-use records.
	type neighborEdge struct {
		other      int
		selfUse    edgeUse
		neighborUse edgeUse
	}
	neighborsOf := make([][]neighborEdge, len(tris))
	for _, uses := range edges {
		if len(uses) != 2 {
			continue
		}
		a, b := uses[0], uses[1]
		neighborsOf[a.tri] = append(neighborsOf[a.tri], neighborEdge{other: b.tri, selfUse: a, neighborUse: b})
		neighborsOf[b.tri] = append(neighborsOf[b.tri], neighborEdge{other: a.tri, selfUse: b, neighborUse: a})
	}

	flipped := make([]bool, len(tris))
	visited := make([]bool, len(tris))

	for start := range tris {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			curFwd := func(u edgeUse) bool { return u.forward != flipped[cur] }
			for _, ne := range neighborsOf[cur] {
				other := ne.other
				wantOtherFwd := !curFwd(ne.selfUse)
				if !visited[other] {
					visited[other] = true
					flipped[other] = ne.neighborUse.forward != wantOtherFwd
					queue = append(queue, other)
					continue
				}
				otherFwd := ne.neighborUse.forward != flipped[other]
				if otherFwd != wantOtherFwd {
					return ErrInconsistentWinding
				}
			}
		}
	}

	for t, f := range flipped {
		if f {
			tris[t][1], tris[t][2] = tris[t][2], tris[t][1]
		}
	}
	return nil
}
