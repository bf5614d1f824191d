// Package simplekernel is an in-process reference implementation of
// kernel.Kernel (spec.md section 6.1), grounded on the triangle/edge
// indexing conventions of sdf.TriangleI/EdgeI (mrsimicsak-sdfx).
//
// It does not perform true NURBS surface fitting or Delaunay
// triangulation: BSpline surfaces triangulate their regular point
// grid directly (two triangles per grid cell), single-loop fills use
// a centroid fan, plane surfaces with holes bridge each hole into the
// outer loop and ear-clip the resulting simple polygon, and
// thru-sections use a ruled quad strip between two parallel loops of
// equal point count. This is an explicit
// simplification, recorded in DESIGN.md, of the kernel contract the
// core is designed against — a real deployment substitutes a true
// CAD/meshing library behind the same interface.
package simplekernel
