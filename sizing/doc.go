// Package sizing builds the mesh-size field graph (spec.md section
// 4.7): per-group MathEval fields restricted to named surfaces,
// composed by pointwise minimum and installed as the kernel's
// background mesh field.
package sizing
