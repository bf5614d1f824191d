// Package guide implements the guiding-curve radius function and the
// OSSE coverage-angle inversion (spec.md section 4.3).
//
// Curve is a closed sum with two non-trivial members (superellipse,
// superformula); GCurveNone has no Curve at all — NewCurve returns
// (nil, false) for it, since "no guiding curve" is a distinct state
// from any particular curve shape, not a third implementation.
package guide
