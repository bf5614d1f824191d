package postproc

import "github.com/hornmesh/hornmesh/mesh"

// AssignTags implements spec.md section 4.8's final pass: every
// triangle gets the rigid-wall tag (1) unless its originating kernel
// surface is in sourceSurfaces, in which case it gets the source-disc
// tag (2). triSurfaceTag is SurfaceTriangleTags()'s per-triangle
// output (in ExtractMesh's order); tag membership is fixed at
// assembly time, so this can safely run before the geometric passes
// that also read m.Tags (the front-plane baffle-flip pass).
func AssignTags(m *mesh.Mesh, triSurfaceTag []int, sourceSurfaces map[int]bool) {
	tags := make([]mesh.Tag, len(m.Triangles))
	for i := range tags {
		tag := mesh.TagWall
		if i < len(triSurfaceTag) && sourceSurfaces[triSurfaceTag[i]] {
			tag = mesh.TagSourceDisc
		}
		tags[i] = tag
	}
	m.Tags = tags
}
