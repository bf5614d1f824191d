package schema

import "math"

// Validate enforces the contract of spec.md section 4.9. It reports
// the first violation found, in the priority order documented below
// (size/domain checks first, then family-specific mandatory subsets,
// then mode compatibility, then the adaptive-BEM contract), mirroring
// lvlath/builder's validation-priority convention
// (builder/errors.go "Priority (tie-break guidance)").
func Validate(r *Record) error {
	if !r.FormulaType.Valid() {
		return fieldErrorf("formula_type", r.FormulaType, "must be one of R-OSSE, OSSE", ErrUnsupportedFormula)
	}
	if r.R0 <= 0 || !finite(r.R0) {
		return fieldErrorf("r0", r.R0, "must be > 0 and finite", ErrInvalidRange)
	}
	if !finite(r.K) {
		return fieldErrorf("k", r.K, "must be finite", ErrInvalidRange)
	}
	if r.Q <= 0 {
		return fieldErrorf("q", r.Q, "must be > 0", ErrInvalidRange)
	}

	switch r.FormulaType {
	case FormulaROSSE:
		if err := validateROSSE(r); err != nil {
			return err
		}
	case FormulaOSSE:
		if err := validateOSSE(r); err != nil {
			return err
		}
	}

	if !r.ThroatProfile.Valid() && r.ThroatProfile != 0 {
		return fieldErrorf("throat_profile", r.ThroatProfile, "must be 1 (OS-SE) or 3 (CircularArc)", ErrInvalidRange)
	}
	if r.SlotLength < 0 {
		return fieldErrorf("slot_length", r.SlotLength, "must be >= 0", ErrInvalidRange)
	}

	if !r.GCurveType.Valid() {
		return fieldErrorf("gcurve_type", r.GCurveType, "must be 0, 1, or 2", ErrInvalidRange)
	}
	if !r.MorphTarget.Valid() {
		return fieldErrorf("morph_target", r.MorphTarget, "must be 0, 1, or 2", ErrInvalidRange)
	}
	if r.MorphTarget != MorphNone && (r.MorphFixed < 0 || r.MorphFixed > 1) {
		return fieldErrorf("morph_fixed", r.MorphFixed, "must be in [0,1]", ErrInvalidRange)
	}

	if r.NAngular < 3 {
		return fieldErrorf("n_angular", r.NAngular, "must be >= 3", ErrInvalidRange)
	}
	if r.NLength < 1 {
		return fieldErrorf("n_length", r.NLength, "must be >= 1", ErrInvalidRange)
	}
	if !r.Quadrants.Valid() {
		return fieldErrorf("quadrants", r.Quadrants, "must be one of 1, 12, 14, 1234", ErrUnsupportedQuadrants)
	}

	if r.EncDepth < 0 {
		return fieldErrorf("enc_depth", r.EncDepth, "must be >= 0", ErrInvalidRange)
	}
	if r.EncDepth > 0 && !r.Quadrants.Full() {
		return fieldErrorf("quadrants", r.Quadrants, "must be 1234 when enc_depth > 0 (I6)", ErrUnsupportedQuadrants)
	}
	if r.EncDepth > 0 {
		if !r.EncEdgeType.Valid() && r.EncEdgeType != 0 {
			return fieldErrorf("enc_edge_type", r.EncEdgeType, "must be 1 (fillet) or 2 (chamfer)", ErrInvalidRange)
		}
		if r.CornerSegments < 1 {
			return fieldErrorf("corner_segments", r.CornerSegments, "must be >= 1", ErrInvalidRange)
		}
	}
	if r.WallThickness < 0 {
		return fieldErrorf("wall_thickness", r.WallThickness, "must be >= 0", ErrInvalidRange)
	}

	if r.MshVersion != "" && !r.MshVersion.Valid() {
		return fieldErrorf("msh_version", r.MshVersion, "must be 2.2 or 4.1", ErrInvalidRange)
	}

	if r.RequireClosedShell && r.EncDepth == 0 && r.WallThickness == 0 {
		return fieldErrorf("enc_depth/wall_thickness", 0, "adaptive-BEM path requires a closed shell", ErrRequiresClosedShell)
	}

	return nil
}

func validateROSSE(r *Record) error {
	if !r.R.Set {
		return fieldErrorf("R", nil, "is mandatory for R-OSSE", ErrInvalidRange)
	}
	if r.Tmax <= 0 || r.Tmax > 1 {
		return fieldErrorf("tmax", r.Tmax, "must be in (0,1]", ErrInvalidRange)
	}
	return nil
}

func validateOSSE(r *Record) error {
	if !r.L.Set {
		return fieldErrorf("L", nil, "is mandatory for OSSE", ErrInvalidRange)
	}
	if r.N <= 0 {
		return fieldErrorf("n", r.N, "must be > 0", ErrInvalidRange)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
