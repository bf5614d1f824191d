package meshgrid

import "errors"

// ErrEmptyGrid indicates n_angular or n_length produced a degenerate
// (zero-row or zero-column) grid; Validate in package schema should
// have already rejected this, so reaching it here indicates a caller
// bypassed validation.
var ErrEmptyGrid = errors.New("meshgrid: degenerate grid dimensions")
