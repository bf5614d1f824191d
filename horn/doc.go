// Package horn wires the parameter schema, profile evaluator,
// point-grid builder, geometry assembler, size-field builder, mesh
// kernel and post-processor into a single deterministic build (spec.md
// sections 2 and 5): validate a decoded parameter record, evaluate
// the profile, project the point grid, assemble kernel surfaces,
// install size fields, triangulate, weld/reorient/validate, tag, and
// serialize. A single process-wide lock guards the kernel-touching
// span of each build.
package horn
