package guide

import "errors"

// ErrNoBracket indicates the coverage-angle bisection could not find
// a sign change across its search interval [0.5, 89] degrees — the
// guiding-curve radius at this azimuth is outside the range the OSSE
// base curve can reach at any coverage angle.
var ErrNoBracket = errors.New("guide: coverage angle not bracketed in [0.5, 89] degrees")
