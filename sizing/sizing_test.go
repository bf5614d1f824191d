package sizing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/mesh"
	"github.com/hornmesh/hornmesh/schema"
	"github.com/hornmesh/hornmesh/sizing"
)

// recordingKernel implements kernel.Kernel, recording only the size-
// field calls sizing.Build exercises; every other method is an unused
// stub returning zero values.
type recordingKernel struct {
	mathEvals    []kernel.MathEvalSpec
	restricts    []kernel.RestrictSpec
	mins         []kernel.MinSpec
	background   kernel.SizeFieldHandle
	nextField    kernel.SizeFieldHandle
}

func (k *recordingKernel) Init() error     { return nil }
func (k *recordingKernel) Finalize() error { return nil }

func (k *recordingKernel) AddPoint(x, y, z float64) (kernel.PointHandle, error) { return 0, nil }
func (k *recordingKernel) AddBSpline(points []kernel.PointHandle) (kernel.CurveHandle, error) {
	return 0, nil
}
func (k *recordingKernel) AddBSplineSurface(pointsFlat []kernel.PointHandle, nu, nv, degU, degV int) (kernel.SurfaceHandle, error) {
	return 0, nil
}
func (k *recordingKernel) AddWire(curves []kernel.CurveHandle) (kernel.CurveHandle, error) {
	return 0, nil
}
func (k *recordingKernel) AddCurveLoop(curves []kernel.CurveHandle, reorient bool) (kernel.LoopHandle, error) {
	return 0, nil
}
func (k *recordingKernel) AddPlaneSurface(loops []kernel.LoopHandle) (kernel.SurfaceHandle, error) {
	return 0, nil
}
func (k *recordingKernel) AddSurfaceFilling(loop kernel.LoopHandle) (kernel.SurfaceHandle, error) {
	return 0, nil
}
func (k *recordingKernel) AddThruSections(loops []kernel.LoopHandle, makeSolid, makeRuled bool) ([]kernel.SurfaceHandle, error) {
	return nil, nil
}
func (k *recordingKernel) Fragment(a, b []kernel.DimTag) ([]kernel.DimTag, error) { return nil, nil }
func (k *recordingKernel) GetBoundary(dimtags []kernel.DimTag, oriented, combined bool) ([]kernel.DimTag, error) {
	return nil, nil
}
func (k *recordingKernel) GetBoundingBox(dim, tag int) (min, max [3]float64, err error) {
	return [3]float64{}, [3]float64{}, nil
}

func (k *recordingKernel) AddMathEvalField(spec kernel.MathEvalSpec) (kernel.SizeFieldHandle, error) {
	k.mathEvals = append(k.mathEvals, spec)
	k.nextField++
	return k.nextField, nil
}
func (k *recordingKernel) AddDistanceField(spec kernel.DistanceSpec) (kernel.SizeFieldHandle, error) {
	k.nextField++
	return k.nextField, nil
}
func (k *recordingKernel) AddThresholdField(spec kernel.ThresholdSpec) (kernel.SizeFieldHandle, error) {
	k.nextField++
	return k.nextField, nil
}
func (k *recordingKernel) AddRestrictField(spec kernel.RestrictSpec) (kernel.SizeFieldHandle, error) {
	k.restricts = append(k.restricts, spec)
	k.nextField++
	return k.nextField, nil
}
func (k *recordingKernel) AddMinField(spec kernel.MinSpec) (kernel.SizeFieldHandle, error) {
	k.mins = append(k.mins, spec)
	k.nextField++
	return k.nextField, nil
}
func (k *recordingKernel) SetBackgroundMesh(field kernel.SizeFieldHandle) error {
	k.background = field
	return nil
}

func (k *recordingKernel) Generate2D() error          { return nil }
func (k *recordingKernel) RemoveDuplicateNodes() error { return nil }
func (k *recordingKernel) SetReverse(dim, tag int) error { return nil }
func (k *recordingKernel) ExtractMesh() (*mesh.Mesh, error) { return &mesh.Mesh{}, nil }
func (k *recordingKernel) WriteMsh(path, version string) error { return nil }
func (k *recordingKernel) WriteSTL(path string) error           { return nil }

func TestBuildComposesOnlyNonEmptyGroups(t *testing.T) {
	t.Parallel()
	k := &recordingKernel{}
	cfg := sizing.Config{ThroatRes: 1, MouthRes: 5, RearRes: 3, ZThroat: 0, ZMouth: 100}
	groups := sizing.Groups{
		Axial:  []kernel.SurfaceHandle{1, 2},
		Source: []kernel.SurfaceHandle{3},
	}

	h, err := sizing.Build(k, cfg, groups)
	require.NoError(t, err)
	require.Equal(t, k.background, h)
	require.Len(t, k.restricts, 2) // axial + source only, rear/enclosure skipped
	require.Len(t, k.mins[0].Fields, 2)
}

func TestAxialFieldInterpolatesBetweenThroatAndMouth(t *testing.T) {
	t.Parallel()
	k := &recordingKernel{}
	cfg := sizing.Config{ThroatRes: 2, MouthRes: 10, ZThroat: 0, ZMouth: 200}
	groups := sizing.Groups{Axial: []kernel.SurfaceHandle{1}}

	_, err := sizing.Build(k, cfg, groups)
	require.NoError(t, err)
	require.Len(t, k.mathEvals, 1)

	eval := k.mathEvals[0].Eval
	require.InDelta(t, 2, eval(0, 0, 0), 1e-9)
	require.InDelta(t, 10, eval(0, 0, 200), 1e-9)
	require.InDelta(t, 6, eval(0, 0, 100), 1e-9)
	require.InDelta(t, 2, eval(0, 0, -50), 1e-9) // clamped below z_throat
	require.InDelta(t, 10, eval(0, 0, 9999), 1e-9) // clamped above z_mouth
}

func TestEnclosureFieldMatchesQuadrantCornersAtCorners(t *testing.T) {
	t.Parallel()
	k := &recordingKernel{}
	front := schema.QuadTuple{Q1: 1, Q2: 2, Q3: 3, Q4: 4}
	back := schema.QuadTuple{Q1: 5, Q2: 6, Q3: 7, Q4: 8}
	cfg := sizing.Config{
		EncFront: front, EncBack: back,
		EncHalfW: 10, EncHalfH: 20,
		EncZFront: 0, EncZBack: 50,
	}
	groups := sizing.Groups{Enclosure: []kernel.SurfaceHandle{1}}

	_, err := sizing.Build(k, cfg, groups)
	require.NoError(t, err)
	eval := k.mathEvals[0].Eval

	require.InDelta(t, front.Q1, eval(10, 20, 0), 1e-9)
	require.InDelta(t, front.Q2, eval(-10, 20, 0), 1e-9)
	require.InDelta(t, front.Q3, eval(-10, -20, 0), 1e-9)
	require.InDelta(t, front.Q4, eval(10, -20, 0), 1e-9)
	require.InDelta(t, back.Q1, eval(10, 20, 50), 1e-9)
}

func TestEnclosureFieldBroadcastScalar(t *testing.T) {
	t.Parallel()
	k := &recordingKernel{}
	cfg := sizing.Config{
		EncFront: schema.Broadcast(7), EncBack: schema.Broadcast(7),
		EncHalfW: 5, EncHalfH: 5, EncZFront: 0, EncZBack: 10,
	}
	groups := sizing.Groups{Enclosure: []kernel.SurfaceHandle{1}}

	_, err := sizing.Build(k, cfg, groups)
	require.NoError(t, err)
	eval := k.mathEvals[0].Eval
	require.InDelta(t, 7, eval(3, -2, 6), 1e-9)
}
