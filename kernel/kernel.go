package kernel

import "github.com/hornmesh/hornmesh/mesh"

// Kernel is the Mesh Kernel Interface (spec.md section 6.1). A single
// Kernel instance spans exactly one build: Init through Finalize, with
// the caller holding the process-wide kernel lock for that whole span
// (spec.md section 5).
type Kernel interface {
	Init() error
	Finalize() error

	AddPoint(x, y, z float64) (PointHandle, error)
	AddBSpline(points []PointHandle) (CurveHandle, error)
	// AddBSplineSurface fits a surface to a regular point grid flattened
	// row-major, nu columns by nv rows, with the given fitting degrees.
	AddBSplineSurface(pointsFlat []PointHandle, nu, nv, degU, degV int) (SurfaceHandle, error)

	AddWire(curves []CurveHandle) (CurveHandle, error)
	AddCurveLoop(curves []CurveHandle, reorient bool) (LoopHandle, error)
	AddPlaneSurface(loops []LoopHandle) (SurfaceHandle, error)
	AddSurfaceFilling(loop LoopHandle) (SurfaceHandle, error)
	AddThruSections(loops []LoopHandle, makeSolid, makeRuled bool) ([]SurfaceHandle, error)

	// Fragment merges coincident seams between two dimtag sets, returning
	// the resulting dimtags (spec.md section 6.1).
	Fragment(a, b []DimTag) ([]DimTag, error)

	GetBoundary(dimtags []DimTag, oriented, combined bool) ([]DimTag, error)
	GetBoundingBox(dim, tag int) (min, max [3]float64, err error)

	AddMathEvalField(spec MathEvalSpec) (SizeFieldHandle, error)
	AddDistanceField(spec DistanceSpec) (SizeFieldHandle, error)
	AddThresholdField(spec ThresholdSpec) (SizeFieldHandle, error)
	AddRestrictField(spec RestrictSpec) (SizeFieldHandle, error)
	AddMinField(spec MinSpec) (SizeFieldHandle, error)
	SetBackgroundMesh(field SizeFieldHandle) error

	Generate2D() error
	RemoveDuplicateNodes() error
	SetReverse(dim, tag int) error

	// ExtractMesh reads back the triangulated result as a canonical
	// mesh (untagged; postproc.AssignTags applies tags).
	ExtractMesh() (*mesh.Mesh, error)

	WriteMsh(path, version string) error
	WriteSTL(path string) error
}
