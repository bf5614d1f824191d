package postproc

import (
	"math"

	"github.com/hornmesh/hornmesh/mesh"
)

// boundaryLoops walks the mesh's boundary edges (undirected edges
// used by exactly one triangle) into closed vertex-index loops,
// following each boundary edge's single incident triangle's winding
// direction so the loop is consistently ordered.
func boundaryLoops(tris [][3]int) [][]int {
	edges := buildEdgeMap(tris)
	next := make(map[int]int)
	for key, uses := range edges {
		if len(uses) != 1 {
			continue
		}
		u := uses[0]
		a, b := key[0], key[1]
		if !u.forward {
			a, b = b, a
		}
		next[a] = b
	}

	visited := make(map[int]bool, len(next))
	var loops [][]int
	for start := range next {
		if visited[start] {
			continue
		}
		var loop []int
		cur := start
		for {
			if visited[cur] {
				break
			}
			visited[cur] = true
			loop = append(loop, cur)
			nx, ok := next[cur]
			if !ok {
				break
			}
			cur = nx
			if cur == start {
				break
			}
		}
		if len(loop) > 0 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// CheckWatertight implements spec.md section 4.8's watertightness
// pass. In enclosure (closed) mode any boundary edge fails with
// ErrNonWatertight. In wall-shell mode, zero or one boundary loop is
// the expected shape (the open aperture); exactly two loops are
// assumed to be a single aperture the kernel's tolerances split in
// two, and stitchLoops is attempted. More than two loops, or a failed
// stitch, fails with ErrCrackedBoundary.
func CheckWatertight(m *mesh.Mesh, closed bool) error {
	loops := boundaryLoops(m.Triangles)
	if closed {
		if len(loops) > 0 {
			return ErrNonWatertight
		}
		return nil
	}
	switch len(loops) {
	case 0, 1:
		return nil
	case 2:
		return stitchLoops(m, loops[0], loops[1])
	default:
		return ErrCrackedBoundary
	}
}

// stitchLoops bridges two equal-length boundary loops with ruled
// quad-strip triangles, aligning them by the rotation (and optional
// reversal) that minimises total vertex-to-vertex distance, and
// orienting the new triangles to match the dominant incident-tag
// winding found on loop a. This is a best-effort approximation: it
// assumes the two loops are genuinely a single split aperture (same
// length, geometrically close once aligned) rather than unrelated
// boundaries.
func stitchLoops(m *mesh.Mesh, a, b []int) error {
	if len(a) != len(b) || len(a) == 0 {
		return ErrCrackedBoundary
	}
	n := len(a)
	bestRot, bestRev, bestDist := 0, false, math.Inf(1)
	for _, rev := range []bool{false, true} {
		bb := b
		if rev {
			bb = reversedCopy(b)
		}
		for rot := 0; rot < n; rot++ {
			d := 0.0
			for i := 0; i < n; i++ {
				d += m.Vertices[a[i]].Sub(m.Vertices[bb[(i+rot)%n]]).Len()
			}
			if d < bestDist {
				bestDist, bestRot, bestRev = d, rot, rev
			}
		}
	}
	aligned := b
	if bestRev {
		aligned = reversedCopy(b)
	}
	aligned = rotatedCopy(aligned, bestRot)

	_, fwd := keyOf(a[0], a[1])
	dominantReversed := !fwd
	for i := 0; i < n; i++ {
		a0, a1 := a[i], a[(i+1)%n]
		b0, b1 := aligned[i], aligned[(i+1)%n]
		t1 := [3]int{a0, b0, b1}
		t2 := [3]int{a0, b1, a1}
		if dominantReversed {
			t1[1], t1[2] = t1[2], t1[1]
			t2[1], t2[2] = t2[2], t2[1]
		}
		m.Triangles = append(m.Triangles, t1, t2)
		m.Tags = append(m.Tags, mesh.TagWall, mesh.TagWall)
	}
	return nil
}

func reversedCopy(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func rotatedCopy(s []int, rot int) []int {
	n := len(s)
	out := make([]int, n)
	for i := range s {
		out[i] = s[(i+rot)%n]
	}
	return out
}
