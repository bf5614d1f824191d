package simplekernel

import "errors"

var (
	// ErrNotInitialized indicates a kernel method was called before Init.
	ErrNotInitialized = errors.New("simplekernel: not initialized")
	// ErrUnknownHandle indicates a handle was not produced by this kernel instance.
	ErrUnknownHandle = errors.New("simplekernel: unknown handle")
	// ErrUnsupportedThruSections indicates AddThruSections was called
	// with a loop count other than 2, or mismatched point counts.
	ErrUnsupportedThruSections = errors.New("simplekernel: thru-sections requires exactly two loops of equal point count")
	// ErrBadGrid indicates AddBSplineSurface's nu*nv does not match len(pointsFlat).
	ErrBadGrid = errors.New("simplekernel: bspline surface point count does not match nu*nv")
)
