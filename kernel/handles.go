package kernel

// Handles are opaque identifiers returned by the kernel; the core
// treats them as plain values and never dereferences their internals
// (spec.md section 3.3, "Kernel surface handles").

type PointHandle int
type CurveHandle int
type SurfaceHandle int
type LoopHandle int

// DimTag pairs a topological dimension (0=point, 1=curve, 2=surface,
// 3=volume) with a kernel-assigned tag, mirroring getBoundary's output
// shape in spec.md section 6.1.
type DimTag struct {
	Dim int
	Tag int
}
