package meshio

import "errors"

// ErrUnsupportedVersion indicates a .msh version outside {2.2, 4.1}
// (spec.md section 4.10, error taxonomy's unsupported_msh_version).
var ErrUnsupportedVersion = errors.New("meshio: unsupported msh version")
