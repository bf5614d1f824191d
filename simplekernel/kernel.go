package simplekernel

import (
	"fmt"
	"math"
	"os"

	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/kernel"
	"github.com/hornmesh/hornmesh/mesh"
	"github.com/hornmesh/hornmesh/meshio"
)

type surfaceKind int

const (
	kindBSpline surfaceKind = iota
	kindPlane
	kindFilling
	kindThru
)

type surfaceEntity struct {
	kind       surfaceKind
	tag        int
	pointsFlat []kernel.PointHandle
	nu, nv     int
	loops      []kernel.LoopHandle
}

// Kernel is the in-process reference kernel.Kernel implementation
// (see doc.go for the simplifications it makes).
type Kernel struct {
	initialized bool

	points []geom.Vec3
	curves map[kernel.CurveHandle][]kernel.PointHandle
	loops  map[kernel.LoopHandle][]kernel.CurveHandle

	surfaces  []surfaceEntity
	nextPoint int
	nextCurve int
	nextLoop  int
	nextSurf  int
	nextField int

	triangles     []TriangleI
	triSurfaceTag []int
	reversed      map[int]bool

	fields map[kernel.SizeFieldHandle]any
	bg     kernel.SizeFieldHandle
}

// TriangleI references three vertex indices, grounded on sdf.TriangleI's
// indexing convention (mrsimicsak-sdfx).
type TriangleI [3]int

// EdgeI references two vertex indices, grounded on sdf.EdgeI.
type EdgeI [2]int

// New constructs an uninitialized Kernel; call Init before use.
func New() *Kernel {
	return &Kernel{
		curves:   make(map[kernel.CurveHandle][]kernel.PointHandle),
		loops:    make(map[kernel.LoopHandle][]kernel.CurveHandle),
		reversed: make(map[int]bool),
		fields:   make(map[kernel.SizeFieldHandle]any),
	}
}

func (k *Kernel) Init() error {
	k.initialized = true
	return nil
}

func (k *Kernel) Finalize() error {
	k.initialized = false
	return nil
}

func (k *Kernel) checkInit() error {
	if !k.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (k *Kernel) AddPoint(x, y, z float64) (kernel.PointHandle, error) {
	if err := k.checkInit(); err != nil {
		return 0, err
	}
	k.points = append(k.points, geom.Vec3{X: x, Y: y, Z: z})
	return kernel.PointHandle(len(k.points) - 1), nil
}

func (k *Kernel) AddBSpline(points []kernel.PointHandle) (kernel.CurveHandle, error) {
	if err := k.checkInit(); err != nil {
		return 0, err
	}
	k.nextCurve++
	h := kernel.CurveHandle(k.nextCurve)
	k.curves[h] = append([]kernel.PointHandle(nil), points...)
	return h, nil
}

func (k *Kernel) AddBSplineSurface(pointsFlat []kernel.PointHandle, nu, nv, degU, degV int) (kernel.SurfaceHandle, error) {
	if err := k.checkInit(); err != nil {
		return 0, err
	}
	if nu*nv != len(pointsFlat) {
		return 0, ErrBadGrid
	}
	k.nextSurf++
	tag := k.nextSurf
	k.surfaces = append(k.surfaces, surfaceEntity{kind: kindBSpline, tag: tag, pointsFlat: pointsFlat, nu: nu, nv: nv})
	return kernel.SurfaceHandle(tag), nil
}

func (k *Kernel) AddWire(curves []kernel.CurveHandle) (kernel.CurveHandle, error) {
	if err := k.checkInit(); err != nil {
		return 0, err
	}
	var merged []kernel.PointHandle
	for _, c := range curves {
		pts, ok := k.curves[c]
		if !ok {
			return 0, ErrUnknownHandle
		}
		if len(merged) > 0 && len(pts) > 0 && merged[len(merged)-1] == pts[0] {
			pts = pts[1:]
		}
		merged = append(merged, pts...)
	}
	k.nextCurve++
	h := kernel.CurveHandle(k.nextCurve)
	k.curves[h] = merged
	return h, nil
}

func (k *Kernel) AddCurveLoop(curves []kernel.CurveHandle, reorient bool) (kernel.LoopHandle, error) {
	if err := k.checkInit(); err != nil {
		return 0, err
	}
	for _, c := range curves {
		if _, ok := k.curves[c]; !ok {
			return 0, ErrUnknownHandle
		}
	}
	cs := append([]kernel.CurveHandle(nil), curves...)
	if reorient {
		for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
			cs[i], cs[j] = cs[j], cs[i]
		}
	}
	k.nextLoop++
	h := kernel.LoopHandle(k.nextLoop)
	k.loops[h] = cs
	return h, nil
}

// loopRing flattens a loop's curves into one ordered, de-duplicated
// point-handle ring.
func (k *Kernel) loopRing(l kernel.LoopHandle) ([]kernel.PointHandle, error) {
	curves, ok := k.loops[l]
	if !ok {
		return nil, ErrUnknownHandle
	}
	var ring []kernel.PointHandle
	for _, c := range curves {
		pts := k.curves[c]
		if len(ring) > 0 && len(pts) > 0 && ring[len(ring)-1] == pts[0] {
			pts = pts[1:]
		}
		ring = append(ring, pts...)
	}
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	return ring, nil
}

func (k *Kernel) AddPlaneSurface(loops []kernel.LoopHandle) (kernel.SurfaceHandle, error) {
	if err := k.checkInit(); err != nil {
		return 0, err
	}
	if len(loops) == 0 {
		return 0, ErrUnknownHandle
	}
	k.nextSurf++
	tag := k.nextSurf
	k.surfaces = append(k.surfaces, surfaceEntity{kind: kindPlane, tag: tag, loops: loops})
	return kernel.SurfaceHandle(tag), nil
}

func (k *Kernel) AddSurfaceFilling(loop kernel.LoopHandle) (kernel.SurfaceHandle, error) {
	if err := k.checkInit(); err != nil {
		return 0, err
	}
	k.nextSurf++
	tag := k.nextSurf
	k.surfaces = append(k.surfaces, surfaceEntity{kind: kindFilling, tag: tag, loops: []kernel.LoopHandle{loop}})
	return kernel.SurfaceHandle(tag), nil
}

func (k *Kernel) AddThruSections(loops []kernel.LoopHandle, makeSolid, makeRuled bool) ([]kernel.SurfaceHandle, error) {
	if err := k.checkInit(); err != nil {
		return nil, err
	}
	if len(loops) != 2 {
		return nil, ErrUnsupportedThruSections
	}
	k.nextSurf++
	tag := k.nextSurf
	k.surfaces = append(k.surfaces, surfaceEntity{kind: kindThru, tag: tag, loops: loops})
	return []kernel.SurfaceHandle{kernel.SurfaceHandle(tag)}, nil
}

// Fragment is a no-op merge: this reference kernel relies entirely on
// RemoveDuplicateNodes for seam welding, so it returns the concatenated
// input dimtags unchanged.
func (k *Kernel) Fragment(a, b []kernel.DimTag) ([]kernel.DimTag, error) {
	if err := k.checkInit(); err != nil {
		return nil, err
	}
	out := make([]kernel.DimTag, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out, nil
}

func (k *Kernel) GetBoundary(dimtags []kernel.DimTag, oriented, combined bool) ([]kernel.DimTag, error) {
	if err := k.checkInit(); err != nil {
		return nil, err
	}
	var out []kernel.DimTag
	for _, dt := range dimtags {
		if dt.Dim != 2 {
			continue
		}
		surf := k.findSurface(dt.Tag)
		if surf == nil {
			return nil, ErrUnknownHandle
		}
		if surf.kind == kindBSpline {
			first := surf.pointsFlat[:surf.nu]
			last := surf.pointsFlat[(surf.nv-1)*surf.nu : surf.nv*surf.nu]
			k.nextCurve++
			hFirst := kernel.CurveHandle(k.nextCurve)
			k.curves[hFirst] = append([]kernel.PointHandle(nil), first...)
			k.nextCurve++
			hLast := kernel.CurveHandle(k.nextCurve)
			k.curves[hLast] = append([]kernel.PointHandle(nil), last...)
			out = append(out, kernel.DimTag{Dim: 1, Tag: int(hFirst)}, kernel.DimTag{Dim: 1, Tag: int(hLast)})
			continue
		}
		for _, l := range surf.loops {
			for _, c := range k.loops[l] {
				out = append(out, kernel.DimTag{Dim: 1, Tag: int(c)})
			}
		}
	}
	return out, nil
}

func (k *Kernel) findSurface(tag int) *surfaceEntity {
	for i := range k.surfaces {
		if k.surfaces[i].tag == tag {
			return &k.surfaces[i]
		}
	}
	return nil
}

func (k *Kernel) GetBoundingBox(dim, tag int) (min, max [3]float64, err error) {
	if err = k.checkInit(); err != nil {
		return
	}
	var pts []geom.Vec3
	switch dim {
	case 2:
		surf := k.findSurface(tag)
		if surf == nil {
			return min, max, ErrUnknownHandle
		}
		pts = k.surfacePoints(surf)
	case 1:
		ph, ok := k.curves[kernel.CurveHandle(tag)]
		if !ok {
			return min, max, ErrUnknownHandle
		}
		for _, h := range ph {
			pts = append(pts, k.points[h])
		}
	default:
		pts = k.points
	}
	if len(pts) == 0 {
		return min, max, ErrUnknownHandle
	}
	min = [3]float64{pts[0].X, pts[0].Y, pts[0].Z}
	max = min
	for _, p := range pts[1:] {
		min[0], max[0] = math.Min(min[0], p.X), math.Max(max[0], p.X)
		min[1], max[1] = math.Min(min[1], p.Y), math.Max(max[1], p.Y)
		min[2], max[2] = math.Min(min[2], p.Z), math.Max(max[2], p.Z)
	}
	return min, max, nil
}

func (k *Kernel) surfacePoints(surf *surfaceEntity) []geom.Vec3 {
	var handles []kernel.PointHandle
	if surf.kind == kindBSpline {
		handles = surf.pointsFlat
	} else {
		for _, l := range surf.loops {
			ring, _ := k.loopRing(l)
			handles = append(handles, ring...)
		}
	}
	pts := make([]geom.Vec3, len(handles))
	for i, h := range handles {
		pts[i] = k.points[h]
	}
	return pts
}

func (k *Kernel) AddMathEvalField(spec kernel.MathEvalSpec) (kernel.SizeFieldHandle, error) {
	return k.storeField(spec)
}
func (k *Kernel) AddDistanceField(spec kernel.DistanceSpec) (kernel.SizeFieldHandle, error) {
	return k.storeField(spec)
}
func (k *Kernel) AddThresholdField(spec kernel.ThresholdSpec) (kernel.SizeFieldHandle, error) {
	return k.storeField(spec)
}
func (k *Kernel) AddRestrictField(spec kernel.RestrictSpec) (kernel.SizeFieldHandle, error) {
	return k.storeField(spec)
}
func (k *Kernel) AddMinField(spec kernel.MinSpec) (kernel.SizeFieldHandle, error) {
	return k.storeField(spec)
}

func (k *Kernel) storeField(spec any) (kernel.SizeFieldHandle, error) {
	if err := k.checkInit(); err != nil {
		return 0, err
	}
	k.nextField++
	h := kernel.SizeFieldHandle(k.nextField)
	k.fields[h] = spec
	return h, nil
}

// SetBackgroundMesh records the active background field. This
// reference kernel does not perform size-driven adaptive remeshing
// (see doc.go); the field is retained only so callers can query it.
func (k *Kernel) SetBackgroundMesh(field kernel.SizeFieldHandle) error {
	if err := k.checkInit(); err != nil {
		return err
	}
	k.bg = field
	return nil
}

func (k *Kernel) Generate2D() error {
	if err := k.checkInit(); err != nil {
		return err
	}
	for _, surf := range k.surfaces {
		tris, err := k.triangulate(&surf)
		if err != nil {
			return err
		}
		if k.reversed[surf.tag] {
			reverseAll(tris)
		}
		for _, tr := range tris {
			k.triangles = append(k.triangles, tr)
			k.triSurfaceTag = append(k.triSurfaceTag, surf.tag)
		}
	}
	return nil
}

func (k *Kernel) triangulate(surf *surfaceEntity) ([]TriangleI, error) {
	switch surf.kind {
	case kindBSpline:
		return gridTriangles(surf.pointsFlat, surf.nu, surf.nv), nil
	case kindPlane, kindFilling:
		return k.planeTriangles(surf.loops)
	case kindThru:
		ringA, err := k.loopRing(surf.loops[0])
		if err != nil {
			return nil, err
		}
		ringB, err := k.loopRing(surf.loops[1])
		if err != nil {
			return nil, err
		}
		if len(ringA) != len(ringB) || len(ringA) == 0 {
			return nil, ErrUnsupportedThruSections
		}
		return ruledTriangles(ringA, ringB), nil
	default:
		return nil, fmt.Errorf("simplekernel: unknown surface kind %d", surf.kind)
	}
}

func gridTriangles(flat []kernel.PointHandle, nu, nv int) []TriangleI {
	tris := make([]TriangleI, 0, 2*(nu-1)*(nv-1))
	for r := 0; r < nv-1; r++ {
		for c := 0; c < nu-1; c++ {
			p00 := int(flat[r*nu+c])
			p01 := int(flat[r*nu+c+1])
			p10 := int(flat[(r+1)*nu+c])
			p11 := int(flat[(r+1)*nu+c+1])
			tris = append(tris, TriangleI{p00, p10, p11}, TriangleI{p00, p11, p01})
		}
	}
	return tris
}

func (k *Kernel) fanTriangles(ring []kernel.PointHandle) ([]TriangleI, error) {
	n := len(ring)
	if n < 3 {
		return nil, ErrUnsupportedThruSections
	}
	var cx, cy, cz float64
	for _, h := range ring {
		p := k.points[h]
		cx, cy, cz = cx+p.X, cy+p.Y, cz+p.Z
	}
	centroid := geom.Vec3{X: cx / float64(n), Y: cy / float64(n), Z: cz / float64(n)}
	k.points = append(k.points, centroid)
	centroidHandle := int(len(k.points) - 1)

	tris := make([]TriangleI, 0, n)
	for i := 0; i < n; i++ {
		a := int(ring[i])
		b := int(ring[(i+1)%n])
		tris = append(tris, TriangleI{centroidHandle, a, b})
	}
	return tris, nil
}

// planeTriangles triangulates a plane surface's outer loop, cutting
// out every further loop as a hole (AddPlaneSurface's second and
// later loop arguments, e.g. the enclosure front panel's mouth hole).
// Each hole is stitched into the outer boundary at its closest pair
// of points, the standard slit technique for turning a ring-with-
// holes into one simple polygon, which is then ear-clipped. A single
// loop keeps the cheaper centroid fan.
func (k *Kernel) planeTriangles(loops []kernel.LoopHandle) ([]TriangleI, error) {
	ring, err := k.loopRing(loops[0])
	if err != nil {
		return nil, err
	}
	if len(loops) == 1 {
		return k.fanTriangles(ring)
	}
	for _, hole := range loops[1:] {
		holeRing, herr := k.loopRing(hole)
		if herr != nil {
			return nil, herr
		}
		if len(holeRing) == 0 {
			continue
		}
		ring = k.bridgeHole(ring, holeRing)
	}
	return k.earClipTriangles(ring)
}

// bridgeHole splices holeRing into ring at the closest pair of points
// between the two rings, producing and retracing a zero-width slit
// edge so the combined boundary is a single simple polygon. The slit
// collapses into a shared edge once RemoveDuplicateNodes welds the
// bridge endpoints to the coincident ring they border.
func (k *Kernel) bridgeHole(ring, hole []kernel.PointHandle) []kernel.PointHandle {
	bi, hj := 0, 0
	best := math.Inf(1)
	for i, rh := range ring {
		rp := k.points[rh]
		for j, hh := range hole {
			d := rp.Sub(k.points[hh])
			if sq := d.Dot(d); sq < best {
				best, bi, hj = sq, i, j
			}
		}
	}
	out := make([]kernel.PointHandle, 0, len(ring)+len(hole)+2)
	out = append(out, ring[:bi+1]...)
	for off := 0; off <= len(hole); off++ {
		out = append(out, hole[(hj+off)%len(hole)])
	}
	out = append(out, ring[bi:]...)
	return out
}

// earClipTriangles triangulates a (possibly non-convex) simple polygon
// ring by repeated ear-clipping, projected into the polygon's own
// plane via a Newell-normal basis so ear tests reduce to 2D
// orientation and point-in-triangle checks.
func (k *Kernel) earClipTriangles(ring []kernel.PointHandle) ([]TriangleI, error) {
	n := len(ring)
	if n < 3 {
		return nil, ErrUnsupportedThruSections
	}
	pts3 := make([]geom.Vec3, n)
	for i, h := range ring {
		pts3[i] = k.points[h]
	}
	origin, u, v := planeBasis(pts3)
	pts2 := make([]geom.Vec2, n)
	for i, p := range pts3 {
		d := p.Sub(origin)
		pts2[i] = geom.Vec2{X: d.Dot(u), Y: d.Dot(v)}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	ccw := polygonArea2(pts2, idx) >= 0

	var tris []TriangleI
	guard := n*n + 8
	for len(idx) > 3 && guard > 0 {
		guard--
		cut := -1
		for i := range idx {
			a := idx[(i-1+len(idx))%len(idx)]
			b := idx[i]
			c := idx[(i+1)%len(idx)]
			if isEar(pts2, idx, a, b, c, ccw) {
				cut = i
				break
			}
		}
		if cut < 0 {
			break
		}
		a := idx[(cut-1+len(idx))%len(idx)]
		b := idx[cut]
		c := idx[(cut+1)%len(idx)]
		if triArea2(pts2[a], pts2[b], pts2[c]) > 1e-12 {
			tris = append(tris, TriangleI{int(ring[a]), int(ring[b]), int(ring[c])})
		}
		idx = append(idx[:cut], idx[cut+1:]...)
	}
	if len(idx) == 3 {
		a, b, c := idx[0], idx[1], idx[2]
		if triArea2(pts2[a], pts2[b], pts2[c]) > 1e-12 {
			tris = append(tris, TriangleI{int(ring[a]), int(ring[b]), int(ring[c])})
		}
	}
	if len(tris) == 0 {
		return nil, ErrUnsupportedThruSections
	}
	return tris, nil
}

// planeBasis derives an orthonormal (u, v) basis for the plane
// spanned by ring via Newell's method, so a non-axis-aligned loop can
// still be projected to 2D for ear clipping.
func planeBasis(ring []geom.Vec3) (origin, u, v geom.Vec3) {
	origin = ring[0]
	var normal geom.Vec3
	for i, cur := range ring {
		next := ring[(i+1)%len(ring)]
		normal.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		normal.Y += (cur.Z - next.Z) * (cur.X + next.X)
		normal.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	normal = normal.Normalized()
	if normal.Len() == 0 {
		normal = geom.Vec3{Z: 1}
	}
	arbitrary := geom.Vec3{X: 1}
	if math.Abs(normal.Dot(arbitrary)) > 0.9 {
		arbitrary = geom.Vec3{Y: 1}
	}
	u = normal.Cross(arbitrary).Normalized()
	v = normal.Cross(u)
	return origin, u, v
}

// orient2 is twice the signed area of the path p->q->r: positive for a
// left (CCW) turn, negative for a right turn, zero when collinear.
func orient2(p, q, r geom.Vec2) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

func triArea2(a, b, c geom.Vec2) float64 {
	return math.Abs(orient2(a, b, c)) / 2
}

func polygonArea2(pts []geom.Vec2, idx []int) float64 {
	var sum float64
	n := len(idx)
	for i := 0; i < n; i++ {
		a, b := pts[idx[i]], pts[idx[(i+1)%n]]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// isEar reports whether prev-cur-next is a valid ear of the polygon
// still referenced by idx: cur must turn the polygon's own way (or be
// collinear, to absorb a bridge's zero-width slit), and no other
// remaining vertex may lie inside the candidate triangle.
func isEar(pts []geom.Vec2, idx []int, prev, cur, next int, ccw bool) bool {
	turn := orient2(pts[prev], pts[cur], pts[next])
	if ccw && turn < -1e-12 {
		return false
	}
	if !ccw && turn > 1e-12 {
		return false
	}
	for _, p := range idx {
		if p == prev || p == cur || p == next {
			continue
		}
		if pointInTriangle(pts[p], pts[prev], pts[cur], pts[next]) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c geom.Vec2) bool {
	d1 := orient2(a, b, p)
	d2 := orient2(b, c, p)
	d3 := orient2(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func ruledTriangles(ringA, ringB []kernel.PointHandle) []TriangleI {
	n := len(ringA)
	tris := make([]TriangleI, 0, 2*n)
	for i := 0; i < n; i++ {
		a0 := int(ringA[i])
		a1 := int(ringA[(i+1)%n])
		b0 := int(ringB[i])
		b1 := int(ringB[(i+1)%n])
		tris = append(tris, TriangleI{a0, b0, b1}, TriangleI{a0, b1, a1})
	}
	return tris
}

func reverseAll(tris []TriangleI) {
	for i := range tris {
		tris[i][1], tris[i][2] = tris[i][2], tris[i][1]
	}
}

func (k *Kernel) SetReverse(dim, tag int) error {
	if err := k.checkInit(); err != nil {
		return err
	}
	k.reversed[tag] = true
	for i, t := range k.triSurfaceTag {
		if t == tag {
			k.triangles[i][1], k.triangles[i][2] = k.triangles[i][2], k.triangles[i][1]
		}
	}
	return nil
}

const weldEpsilon = 1e-6

// RemoveDuplicateNodes welds coincident points within weldEpsilon and
// remaps every recorded triangle's vertex indices accordingly.
func (k *Kernel) RemoveDuplicateNodes() error {
	if err := k.checkInit(); err != nil {
		return err
	}
	keyOf := func(p geom.Vec3) [3]int64 {
		scale := 1 / weldEpsilon
		return [3]int64{
			int64(math.Round(p.X * scale)),
			int64(math.Round(p.Y * scale)),
			int64(math.Round(p.Z * scale)),
		}
	}
	seen := make(map[[3]int64]int, len(k.points))
	remap := make([]int, len(k.points))
	welded := make([]geom.Vec3, 0, len(k.points))
	for i, p := range k.points {
		key := keyOf(p)
		if j, ok := seen[key]; ok {
			remap[i] = j
			continue
		}
		welded = append(welded, p)
		idx := len(welded) - 1
		seen[key] = idx
		remap[i] = idx
	}
	k.points = welded
	for i, tr := range k.triangles {
		k.triangles[i] = TriangleI{remap[tr[0]], remap[tr[1]], remap[tr[2]]}
	}
	return nil
}

// ExtractMesh returns the triangulated result as a canonical mesh.
// Tags are left zero-valued; assigning them is the postproc stage's
// job (spec.md section 4.8).
func (k *Kernel) ExtractMesh() (*mesh.Mesh, error) {
	if err := k.checkInit(); err != nil {
		return nil, err
	}
	verts := make([]geom.Vec3, len(k.points))
	copy(verts, k.points)
	tris := make([][3]int, len(k.triangles))
	for i, t := range k.triangles {
		tris[i] = [3]int{t[0], t[1], t[2]}
	}
	return &mesh.Mesh{
		Vertices:  verts,
		Triangles: tris,
		Tags:      make([]mesh.Tag, len(tris)),
	}, nil
}

// SurfaceTriangleTags exposes, per triangle (in ExtractMesh's order),
// the kernel surface tag it came from, so horn.Build can map
// surfaces to physical-group tags without re-deriving topology.
func (k *Kernel) SurfaceTriangleTags() []int {
	out := make([]int, len(k.triSurfaceTag))
	copy(out, k.triSurfaceTag)
	return out
}

// WriteMsh and WriteSTL expose the kernel-side writer capability
// (spec.md section 6.1); they serialize whatever has been generated
// so far, untagged, via package meshio. The core's own Mesh I/O
// Writer (section 4.10) calls meshio directly on the tagged canonical
// mesh instead of going through these.
func (k *Kernel) WriteMsh(path, version string) error {
	m, err := k.ExtractMesh()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return meshio.WriteMsh(f, m, version)
}

func (k *Kernel) WriteSTL(path string) error {
	m, err := k.ExtractMesh()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return meshio.WriteSTL(f, m)
}
