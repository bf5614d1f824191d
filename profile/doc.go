// Package profile evaluates the 2D (axial, radial) horn profile for
// the two supported families, R-OSSE (radius-driven) and OSSE
// (length-driven), per spec.md section 4.2.
//
// formula_type is a closed sum (spec.md section 9 design notes: "model
// it as a tagged variant with two constructors, not as inheritance").
// Family is a Go interface with exactly two implementations, both
// unexported; the only way to obtain one is NewFamily, so no third
// variant can be introduced from outside the package.
//
// Each Family describes only the MAIN curve: the OS/OS-SE (or R-OSSE)
// shape itself, parametrized by t over [0, DomainEnd(phi)], with its
// own axial origin at t=0. The throat extension and slot — simple
// straight/constant segments prepended ahead of the main curve — are
// not part of Family; they are spliced on by the meshgrid package
// using R0Main, which is exactly the invariant I1 value. The OSSE
// h-bulge is folded into osse.Sample directly; the rotation about the
// base throat radius is applied externally via ApplyRotation, since it
// needs the undeclared base r0 rather than r0_main.
package profile
