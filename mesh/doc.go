// Package mesh defines the canonical output mesh (spec.md section
// 3.3): flat vertex/triangle/tag arrays that survive past the kernel
// session, plus the two physical-group tags (spec.md section 4.8, I9).
package mesh
