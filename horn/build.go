package horn

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/hornmesh/hornmesh/assembler"
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/mesh"
	"github.com/hornmesh/hornmesh/meshgrid"
	"github.com/hornmesh/hornmesh/meshio"
	"github.com/hornmesh/hornmesh/morph"
	"github.com/hornmesh/hornmesh/postproc"
	"github.com/hornmesh/hornmesh/profile"
	"github.com/hornmesh/hornmesh/schema"
	"github.com/hornmesh/hornmesh/simplekernel"
	"github.com/hornmesh/hornmesh/sizing"
)

// kernelLock guards the span from kernel Init to Finalize (spec.md
// section 5): the mesh kernel is global-state software unsafe under
// concurrent use from within the same process. A single acquisition
// spans one entire build; it is never re-entered recursively.
var kernelLock sync.Mutex

// BuildOptions configures a single build.
type BuildOptions struct {
	// NewKernel constructs the kernel.Kernel instance for this build;
	// defaults to simplekernel.New.
	NewKernel func() kernel.Kernel
	// OnStage reports pipeline progress. Grounded on the teacher's
	// algorithms.BFSOptions callback-hook idiom (OnEnqueue/OnVisit)
	// rather than a logging dependency.
	OnStage func(stage string)
	// DefaultMshVersion is used when rec.MshVersion is empty; defaults
	// to "2.2" when also empty.
	DefaultMshVersion string
}

func (o *BuildOptions) stage(name string) {
	if o.OnStage != nil {
		o.OnStage(name)
	}
}

// surfaceTagger is implemented by kernels that can report, per
// triangle in ExtractMesh's order, the originating surface tag
// (simplekernel does). The interface of spec.md section 6.1 does not
// itself require this, but tag assignment (section 4.8) has no other
// way to recover which triangles belong to the source disc.
type surfaceTagger interface {
	SurfaceTriangleTags() []int
}

// Result is the output surface of a successful build (spec.md section
// 6.4).
type Result struct {
	Mesh         *mesh.Mesh
	MshText      string
	STLText      string
	NodeCount    int
	ElementCount int
	Warnings     []string
}

// Build runs the full pipeline of spec.md sections 3-4 over rec:
// validate, evaluate the profile, build point grids, assemble kernel
// surfaces, install size fields, triangulate, post-process, and
// serialize. ctx is checked only at the build boundary, before the
// kernel lock is acquired (spec.md section 5); cancellation is not
// consulted again once the build starts, and in-flight builds are not
// interrupted.
func Build(ctx context.Context, rec *schema.Record, opts BuildOptions) (res *Result, err error) {
	if cErr := ctx.Err(); cErr != nil {
		return nil, newBuildError(ErrKernelRuntimeUnavailable, "build cancelled before start", cErr)
	}

	if vErr := schema.Validate(rec); vErr != nil {
		return nil, classify(vErr)
	}

	newKernel := opts.NewKernel
	if newKernel == nil {
		newKernel = func() kernel.Kernel { return simplekernel.New() }
	}
	k := newKernel()
	if k == nil {
		return nil, newBuildError(ErrKernelRuntimeUnavailable, "no mesh kernel available", nil)
	}

	kernelLock.Lock()
	defer kernelLock.Unlock()

	defer func() {
		if r := recover(); r != nil {
			res, err = nil, newBuildError(ErrKernelFailure, "panic during build", fmt.Errorf("%v", r))
		}
	}()

	if iErr := k.Init(); iErr != nil {
		return nil, newBuildError(ErrKernelRuntimeUnavailable, "kernel init", iErr)
	}
	defer func() {
		if fErr := k.Finalize(); fErr != nil && err == nil {
			err = newBuildError(ErrKernelFailure, "kernel finalize", fErr)
			res = nil
		}
	}()

	opts.stage("profile")
	aOverride, cErr := coverageOverride(rec)
	if cErr != nil {
		return nil, classify(cErr)
	}
	fam, fErr := profile.NewFamily(rec, aOverride)
	if fErr != nil {
		return nil, classify(fErr)
	}
	rotFn, rErr := rec.Rot.Compile(0)
	if rErr != nil {
		return nil, classify(rErr)
	}

	full := rec.Quadrants.Full()
	phis := meshgrid.PhiSamples(rec.NAngular, rec.Quadrants)

	opts.stage("grid")
	raw, gErr := meshgrid.BuildRaw(fam, rec, phis, rotFn)
	if gErr != nil {
		return nil, classify(gErr)
	}
	morphCfg := morph.ConfigFromRecord(rec)
	inner3D := meshgrid.Project(raw, rec, morphCfg)

	encMode := rec.EncDepth > 0
	wallShellMode := rec.EncDepth == 0 && rec.WallThickness > 0

	var outer3D *meshgrid.Grid3D
	if wallShellMode {
		outerRaw := meshgrid.OffsetShell(raw, rec.WallThickness)
		outer3D = meshgrid.Project(outerRaw, rec, morphCfg)
	}

	opts.stage("assemble")
	innerSurfaces, iErr := assembler.InnerHorn(k, inner3D, full)
	if iErr != nil {
		return nil, classify(iErr)
	}
	sourceDisc, sErr := assembler.SourceDisc(k, inner3D, full)
	if sErr != nil {
		return nil, classify(sErr)
	}

	sizingGroups := sizing.Groups{
		Axial:  append([]kernel.SurfaceHandle{}, innerSurfaces...),
		Source: []kernel.SurfaceHandle{sourceDisc},
	}

	if wallShellMode {
		outerSurfaces, oErr := assembler.OuterShell(k, outer3D, full)
		if oErr != nil {
			return nil, classify(oErr)
		}
		rim, rimErr := assembler.MouthRim(k, inner3D, outer3D, full)
		if rimErr != nil {
			return nil, classify(rimErr)
		}
		rearSurfaces, reErr := assembler.RearClosure(k, outer3D, full, rec.WallThickness)
		if reErr != nil {
			return nil, classify(reErr)
		}
		sizingGroups.Axial = append(sizingGroups.Axial, rim)
		sizingGroups.Rear = append(append([]kernel.SurfaceHandle{}, rearSurfaces...), outerSurfaces...)
	}

	mouthRow := len(inner3D.Points[0]) - 1
	zThroat := meanZ(inner3D, 0)
	zMouth := meanZ(inner3D, mouthRow)

	sizingCfg := sizing.Config{
		ThroatRes: rec.ThroatRes, MouthRes: rec.MouthRes, RearRes: rec.RearRes,
		ZThroat: zThroat, ZMouth: zMouth,
	}

	var encBox assembler.Box
	if encMode {
		mouthHole, mlErr := assembler.MouthLoop(k, inner3D, full)
		if mlErr != nil {
			return nil, classify(mlErr)
		}
		xMin, xMax, yMin, yMax := mouthBounds(inner3D, mouthRow)
		encBox = assembler.Box{
			XMin: xMin - rec.EncSpaceL, XMax: xMax + rec.EncSpaceR,
			YMin: yMin - rec.EncSpaceB, YMax: yMax + rec.EncSpaceT,
			ZFront: zMouth, ZBack: zMouth - rec.EncDepth,
			EdgeRadius: rec.EncEdge, EdgeType: rec.EncEdgeType, CornerSegments: rec.CornerSegments,
		}
		encSurfaces, eErr := assembler.Enclosure(k, encBox, mouthHole)
		if eErr != nil {
			return nil, classify(eErr)
		}

		sizingCfg.EncHalfW = math.Max(math.Abs(encBox.XMin), math.Abs(encBox.XMax))
		sizingCfg.EncHalfH = math.Max(math.Abs(encBox.YMin), math.Abs(encBox.YMax))
		sizingCfg.EncZFront, sizingCfg.EncZBack = encBox.ZFront, encBox.ZBack
		sizingCfg.EncFront = resolveQuadTuple(rec.EncFrontResolution, rec.MouthRes)
		sizingCfg.EncBack = resolveQuadTuple(rec.EncBackResolution, rec.RearRes)

		sizingGroups.Axial = append(sizingGroups.Axial, encSurfaces...)
		sizingGroups.Enclosure = encSurfaces
	}

	opts.stage("size-fields")
	if _, fldErr := sizing.Build(k, sizingCfg, sizingGroups); fldErr != nil {
		return nil, classify(fldErr)
	}

	opts.stage("triangulate")
	if gErr := k.Generate2D(); gErr != nil {
		return nil, classify(gErr)
	}
	if dErr := k.RemoveDuplicateNodes(); dErr != nil {
		return nil, classify(dErr)
	}

	canon, exErr := k.ExtractMesh()
	if exErr != nil {
		return nil, classify(exErr)
	}

	tagger, ok := k.(surfaceTagger)
	if !ok {
		return nil, newBuildError(ErrKernelRuntimeUnavailable, "kernel does not expose per-triangle surface origin", nil)
	}
	triSurfaceTag := tagger.SurfaceTriangleTags()
	sourceSurfaces := map[int]bool{int(sourceDisc): true}

	opts.stage("postprocess")
	frontTol := 1e-6
	if encMode && rec.EncEdge > 0 {
		frontTol = rec.EncEdge * 1e-3
	}
	ppResult, ppErr := postproc.Run(canon, postproc.Options{
		Closed:              encMode,
		WeldTolerance:       postproc.DefaultTolerance,
		TriSurfaceTag:       triSurfaceTag,
		SourceSurfaces:      sourceSurfaces,
		FrontPlaneZ:         encBox.ZFront,
		FrontPlaneTolerance: frontTol,
	})
	if ppErr != nil {
		return nil, classify(ppErr)
	}

	opts.stage("serialize")
	version := string(rec.MshVersion)
	if version == "" {
		version = opts.DefaultMshVersion
	}
	if version == "" {
		version = "2.2"
	}

	var mshBuf bytes.Buffer
	if wErr := meshio.WriteMsh(&mshBuf, canon, version); wErr != nil {
		return nil, classify(wErr)
	}

	var stlText string
	if rec.WriteSTL {
		var stlBuf bytes.Buffer
		if wErr := meshio.WriteSTL(&stlBuf, canon); wErr != nil {
			return nil, classify(wErr)
		}
		stlText = stlBuf.String()
	}

	return &Result{
		Mesh:         canon,
		MshText:      mshBuf.String(),
		STLText:      stlText,
		NodeCount:    canon.NumVertices(),
		ElementCount: canon.NumTriangles(),
		Warnings:     ppResult.Warnings,
	}, nil
}

func meanZ(g *meshgrid.Grid3D, row int) float64 {
	if len(g.Points) == 0 {
		return 0
	}
	var sum float64
	for _, col := range g.Points {
		sum += col[row].Z
	}
	return sum / float64(len(g.Points))
}

func mouthBounds(g *meshgrid.Grid3D, row int) (xMin, xMax, yMin, yMax float64) {
	first := true
	for _, col := range g.Points {
		p := col[row]
		if first {
			xMin, xMax, yMin, yMax = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
		yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
	}
	return
}

func resolveQuadTuple(q schema.QuadTuple, def float64) schema.QuadTuple {
	if q.Q1 == 0 && q.Q2 == 0 && q.Q3 == 0 && q.Q4 == 0 {
		return schema.Broadcast(def)
	}
	return q
}
