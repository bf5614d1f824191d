// Package geom provides the small vector and closed-form numeric
// primitives shared by the profile, morph, meshgrid, assembler and
// postproc packages: 2D/3D points, normalization, rotation about an
// arbitrary center, and the handful of closed-form quadratic/circle
// solves the geometry pipeline needs.
//
// geom intentionally does not provide general dense linear algebra
// (no NxN solve, no eigendecomposition): every use in this module is a
// fixed-size 2D/3D computation, so a general solver would be dead
// weight. See DESIGN.md for why lvlath's matrix package was not
// carried forward for this purpose.
package geom
