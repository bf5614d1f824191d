package profile

import "errors"

// ErrInvalidProfileParameters indicates a profile input is outside its
// admissible range: a negative R-OSSE length-solve discriminant, a
// non-finite axial length, r0 <= 0, or similar (spec.md I3, section 7).
var ErrInvalidProfileParameters = errors.New("profile: invalid profile parameters")

// ErrUnsupportedFormula indicates formula_type is outside {R-OSSE, OSSE}.
var ErrUnsupportedFormula = errors.New("profile: unsupported formula_type")
