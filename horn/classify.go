package horn

import (
	"errors"

	"github.com/hornmesh/hornmesh/assembler"
	"github.com/hornmesh/hornmesh/expr"
	"github.com/hornmesh/hornmesh/guide"
	"github.com/hornmesh/hornmesh/meshgrid"
	"github.com/hornmesh/hornmesh/meshio"
	"github.com/hornmesh/hornmesh/postproc"
	"github.com/hornmesh/hornmesh/profile"
	"github.com/hornmesh/hornmesh/schema"
)

// classify maps an error surfaced by any of the pipeline packages to
// the closed taxonomy of spec.md section 7. Errors already wrapped as
// *BuildError pass through unchanged, since coverage.go's closure
// constructs them directly.
func classify(err error) *BuildError {
	if err == nil {
		return nil
	}

	var be *BuildError
	if errors.As(err, &be) {
		return be
	}

	var fieldErr *schema.FieldError
	if errors.As(err, &fieldErr) && fieldErr.Field == "msh_version" {
		return newBuildError(ErrUnsupportedMshVersion, fieldErr.Field, err)
	}

	switch {
	case errors.Is(err, expr.ErrInvalidExpression),
		errors.Is(err, expr.ErrUnknownFunction),
		errors.Is(err, expr.ErrUnknownVariable):
		return newBuildError(ErrInvalidExpression, "expression", err)

	case errors.Is(err, schema.ErrUnsupportedFormula),
		errors.Is(err, profile.ErrUnsupportedFormula):
		return newBuildError(ErrUnsupportedFormula, "formula_type", err)

	case errors.Is(err, schema.ErrUnsupportedQuadrants):
		return newBuildError(ErrUnsupportedQuadrants, "quadrants", err)

	case errors.Is(err, schema.ErrRequiresClosedShell):
		return newBuildError(ErrRequiresClosedShell, "enc_depth/wall_thickness", err)

	case errors.Is(err, meshio.ErrUnsupportedVersion):
		return newBuildError(ErrUnsupportedMshVersion, "msh_version", err)

	case errors.Is(err, schema.ErrInvalidRange),
		errors.Is(err, schema.ErrUnknownField),
		errors.Is(err, profile.ErrInvalidProfileParameters),
		errors.Is(err, meshgrid.ErrEmptyGrid),
		errors.Is(err, assembler.ErrEmptyGrid),
		errors.Is(err, guide.ErrNoBracket):
		return newBuildError(ErrInvalidProfileParameters, "parameters", err)

	case errors.Is(err, postproc.ErrNonManifold):
		return newBuildError(ErrNonManifold, "mesh topology", err)
	case errors.Is(err, postproc.ErrInconsistentWinding):
		return newBuildError(ErrInconsistentWinding, "mesh topology", err)
	case errors.Is(err, postproc.ErrNonWatertight):
		return newBuildError(ErrNonWatertight, "mesh topology", err)
	case errors.Is(err, postproc.ErrCrackedBoundary):
		return newBuildError(ErrCrackedBoundary, "aperture boundary", err)
	case errors.Is(err, postproc.ErrDisconnected):
		return newBuildError(ErrDisconnectedMesh, "mesh connectedness", err)
	case errors.Is(err, postproc.ErrInvalidVolume):
		return newBuildError(ErrInvalidVolume, "enclosed volume", err)

	default:
		return newBuildError(ErrKernelFailure, "kernel operation", err)
	}
}
