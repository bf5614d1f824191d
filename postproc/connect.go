package postproc

import "github.com/hornmesh/hornmesh/mesh"

// countComponents counts connected components of the triangle dual
// graph (triangles joined by shared edges).
func countComponents(tris [][3]int) int {
	edges := buildEdgeMap(tris)
	adj := make([][]int, len(tris))
	for _, uses := range edges {
		if len(uses) != 2 {
			continue
		}
		a, b := uses[0].tri, uses[1].tri
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	visited := make([]bool, len(tris))
	count := 0
	for start := range tris {
		if visited[start] {
			continue
		}
		count++
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range adj[cur] {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return count
}

// CheckConnectedness implements spec.md section 4.8's connectedness
// pass: a component count other than 1 is a warning in wall-shell
// mode, but a hard ErrDisconnected failure in enclosure mode.
func CheckConnectedness(m *mesh.Mesh, closed bool) (warnings []string, err error) {
	n := countComponents(m.Triangles)
	if n == 1 {
		return nil, nil
	}
	if closed {
		return nil, ErrDisconnected
	}
	return []string{"mesh has more than one connected component"}, nil
}
