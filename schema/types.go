package schema

// FormulaType selects the profile family (spec.md section 3.1).
// It is a closed sum; profile.NewFamily recognizes exactly these two.
type FormulaType string

const (
	FormulaROSSE FormulaType = "R-OSSE"
	FormulaOSSE  FormulaType = "OSSE"
)

// Valid reports whether f is one of the enumerated formula types.
func (f FormulaType) Valid() bool {
	return f == FormulaROSSE || f == FormulaOSSE
}

// ThroatProfile selects how the throat-to-mouth base curve is shaped.
type ThroatProfile int

const (
	ThroatProfileOSSE        ThroatProfile = 1
	ThroatProfileCircularArc ThroatProfile = 3
)

// Valid reports whether t is an enumerated throat profile.
func (t ThroatProfile) Valid() bool {
	return t == ThroatProfileOSSE || t == ThroatProfileCircularArc
}

// GuidingCurveType selects the guiding-curve family, or none.
type GuidingCurveType int

const (
	GCurveNone          GuidingCurveType = 0
	GCurveSuperellipse  GuidingCurveType = 1
	GCurveSuperformula  GuidingCurveType = 2
)

// Valid reports whether g is an enumerated guiding-curve type.
func (g GuidingCurveType) Valid() bool {
	return g == GCurveNone || g == GCurveSuperellipse || g == GCurveSuperformula
}

// MorphTarget selects the late-axial morph blend target, or none.
type MorphTarget int

const (
	MorphNone   MorphTarget = 0
	MorphRect   MorphTarget = 1
	MorphCircle MorphTarget = 2
)

// Valid reports whether m is an enumerated morph target.
func (m MorphTarget) Valid() bool {
	return m == MorphNone || m == MorphRect || m == MorphCircle
}

// Quadrants selects which 90-degree sectors of the phi domain are
// generated (spec.md glossary: Quadrants).
type Quadrants int

const (
	Quadrant1      Quadrants = 1
	Quadrant1And2  Quadrants = 12
	Quadrant1And4  Quadrants = 14
	QuadrantsAll   Quadrants = 1234
)

// Valid reports whether q is an enumerated quadrant selector.
func (q Quadrants) Valid() bool {
	switch q {
	case Quadrant1, Quadrant1And2, Quadrant1And4, QuadrantsAll:
		return true
	default:
		return false
	}
}

// Full reports whether q selects the entire circle (needed for the
// enclosure-box and adaptive-BEM constraints, I6 and section 6.2).
func (q Quadrants) Full() bool { return q == QuadrantsAll }

// Span returns the [phiStart, phiEnd] angular range, in radians, this
// selector generates. For QuadrantsAll the range is the half-open
// [0, 2*pi) generated by the caller's sampling rule (I4); for reduced
// selectors both endpoints are sampled.
func (q Quadrants) Span() (phiStart, phiEnd float64) {
	const halfPi = 1.5707963267948966
	switch q {
	case Quadrant1:
		return 0, halfPi
	case Quadrant1And2:
		return 0, 2 * halfPi
	case Quadrant1And4:
		return -halfPi, halfPi
	default: // QuadrantsAll
		return 0, 2 * 2 * halfPi
	}
}

// EdgeType selects the mouth-edge transition shape for the enclosure
// box (spec.md section 3.1: enc_edge_type).
type EdgeType int

const (
	EdgeFillet  EdgeType = 1
	EdgeChamfer EdgeType = 2
)

// Valid reports whether e is an enumerated edge type.
func (e EdgeType) Valid() bool {
	return e == EdgeFillet || e == EdgeChamfer
}

// MshVersion is the supported .msh text format version (spec.md
// section 4.10).
type MshVersion string

const (
	MshVersion22 MshVersion = "2.2"
	MshVersion41 MshVersion = "4.1"
)

// Valid reports whether v is a supported .msh version.
func (v MshVersion) Valid() bool {
	return v == MshVersion22 || v == MshVersion41
}
