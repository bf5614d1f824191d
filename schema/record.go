package schema

// Record is the flat horn-mesh parameter record (spec.md section
// 3.1). It decodes from YAML via Decode, which rejects unknown keys
// (P10), and must be passed through Validate before any other package
// accepts it.
type Record struct {
	FormulaType FormulaType `yaml:"formula_type"`

	// Shared profile parameters.
	R0 float64 `yaml:"r0"`
	A0 float64 `yaml:"a0"`
	K  float64 `yaml:"k"`
	Q  float64 `yaml:"q"`
	A  Expr    `yaml:"a"`

	// R-OSSE.
	R    Expr    `yaml:"R"`
	RSmall float64 `yaml:"r"`
	B    float64 `yaml:"b"`
	M    float64 `yaml:"m"`
	Tmax float64 `yaml:"tmax"`

	// OSSE.
	L Expr    `yaml:"L"`
	S Expr    `yaml:"s"`
	N float64 `yaml:"n"`
	H float64 `yaml:"h"`

	// Throat geometry.
	ThroatProfile    ThroatProfile `yaml:"throat_profile"`
	ThroatExtAngle   float64       `yaml:"throat_ext_angle"`
	ThroatExtLength  float64       `yaml:"throat_ext_length"`
	SlotLength       float64       `yaml:"slot_length"`
	Rot              Expr          `yaml:"rot"`
	CircArcTermAngle float64       `yaml:"circ_arc_term_angle"`
	CircArcRadius    float64       `yaml:"circ_arc_radius"`

	// Guiding curve.
	GCurveType        GuidingCurveType `yaml:"gcurve_type"`
	GCurveWidth       float64          `yaml:"gcurve_width"`
	GCurveAspectRatio float64          `yaml:"gcurve_aspect_ratio"`
	GCurveSEN         float64          `yaml:"gcurve_se_n"`
	GCurveRot         float64          `yaml:"gcurve_rot"`
	GCurveDist        float64          `yaml:"gcurve_dist"`
	GCurveSFa         float64          `yaml:"gcurve_sf_a"`
	GCurveSFb         float64          `yaml:"gcurve_sf_b"`
	GCurveSFm1        float64          `yaml:"gcurve_sf_m1"`
	GCurveSFm2        float64          `yaml:"gcurve_sf_m2"`
	GCurveSFn1        float64          `yaml:"gcurve_sf_n1"`
	GCurveSFn2        float64          `yaml:"gcurve_sf_n2"`
	GCurveSFn3        float64          `yaml:"gcurve_sf_n3"`

	// Morph.
	MorphTarget         MorphTarget `yaml:"morph_target"`
	MorphWidth          float64     `yaml:"morph_width"`
	MorphHeight         float64     `yaml:"morph_height"`
	MorphCorner         float64     `yaml:"morph_corner"`
	MorphRate           float64     `yaml:"morph_rate"`
	MorphFixed          float64     `yaml:"morph_fixed"`
	MorphAllowShrinkage bool        `yaml:"morph_allow_shrinkage"`

	// Grid.
	NAngular  int       `yaml:"n_angular"`
	NLength   int       `yaml:"n_length"`
	Quadrants Quadrants `yaml:"quadrants"`

	// Enclosure & wall.
	EncDepth       float64  `yaml:"enc_depth"`
	EncSpaceL      float64  `yaml:"enc_space_l"`
	EncSpaceT      float64  `yaml:"enc_space_t"`
	EncSpaceR      float64  `yaml:"enc_space_r"`
	EncSpaceB      float64  `yaml:"enc_space_b"`
	EncEdge        float64  `yaml:"enc_edge"`
	EncEdgeType    EdgeType `yaml:"enc_edge_type"`
	CornerSegments int      `yaml:"corner_segments"`
	WallThickness  float64  `yaml:"wall_thickness"`

	// Resolution.
	ThroatRes           float64      `yaml:"throat_res"`
	MouthRes            float64      `yaml:"mouth_res"`
	RearRes             float64      `yaml:"rear_res"`
	EncFrontResolution  QuadTuple    `yaml:"enc_front_resolution"`
	EncBackResolution   QuadTuple    `yaml:"enc_back_resolution"`

	// Output.
	MshVersion MshVersion `yaml:"msh_version"`
	WriteSTL   bool       `yaml:"write_stl"`

	// RequireClosedShell is set by adaptive-BEM callers per section 6.2
	// ("Consumers must coerce quadrants to 1234 before delegating").
	// It is not part of the wire schema; callers set the field directly
	// before Validate.
	RequireClosedShell bool `yaml:"-"`
}

// QuadTuple holds either a single broadcast value or four per-quadrant
// values, mapped Q1=(+x,+y), Q2=(-x,+y), Q3=(-x,-y), Q4=(+x,-y), per
// spec.md section 3.1 (enc_front_resolution / enc_back_resolution).
type QuadTuple struct {
	Q1, Q2, Q3, Q4 float64
}

// Broadcast returns a QuadTuple with all four corners set to v.
func Broadcast(v float64) QuadTuple { return QuadTuple{v, v, v, v} }
