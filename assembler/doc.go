// Package assembler turns a meshgrid.Grid3D point grid into kernel
// surface entities (spec.md section 4.6): the inner horn wall, the
// source disc, the optional outer shell and rear closure (wall-shell
// mode), and the optional enclosure box with its mouth-edge transition
// (enclosure mode).
//
// Every builder here is a thin geometry-assembly layer over
// kernel.Kernel: it issues AddPoint/AddBSplineSurface/AddSurfaceFilling
// /AddThruSections calls and returns the resulting surface handles. It
// does not triangulate, tag, or orient anything — those are
// kernel.Generate2D's and the postproc package's jobs.
package assembler
