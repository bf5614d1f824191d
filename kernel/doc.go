// Package kernel declares the Mesh Kernel Interface (spec.md section
// 6.1): the external collaborator the assembler drives to fit BSpline
// surfaces, build loops/rims/discs, and triangulate. The core never
// implements BSpline fitting or Delaunay triangulation itself — it
// only calls through this interface. Package simplekernel provides an
// in-process reference implementation.
package kernel
