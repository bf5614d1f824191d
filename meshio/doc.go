// Package meshio serializes a canonical mesh.Mesh to the two output
// representations spec.md section 4.10 requires: Gmsh-style .msh text
// (versions 2.2 and 4.1), which carries the physical group names from
// mesh.Tag.GroupName, and ASCII STL, which carries no group information.
package meshio
