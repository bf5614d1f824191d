package guide

import "github.com/hornmesh/hornmesh/profile"

// bisectionIterations halves the [0.5, 89] degree search interval 60
// times, well past 1e-7 degree: the final bracket is limited by float64
// resolution (spec.md section 4.3).
const bisectionIterations = 60

// AxialSamplePosition computes z_main(phi), the axial position (in
// the main curve's own coordinate, i.e. already past the extension
// and slot) at which the guiding curve constrains the OSSE radius.
//
// dist is gcurve_dist: a fraction of totalLength when <= 1, otherwise
// an absolute distance in mm, clipped to [0, totalLength] before the
// extension/slot offset is subtracted.
func AxialSamplePosition(dist, totalLength, extLen, slotLen float64) float64 {
	d := dist
	if d <= 1 {
		d = dist * totalLength
	}
	if d < 0 {
		d = 0
	}
	if d > totalLength {
		d = totalLength
	}
	z := d - extLen - slotLen
	if z < 0 {
		z = 0
	}
	return z
}

// InvertCoverage solves for the coverage angle a_cov (degrees) such
// that profile.OSSEBaseRadius(zMain, r0Main, a0Deg, k, a_cov) equals
// targetRadius, by bisection over [0.5, 89] degrees (spec.md section
// 4.3). OSSEBaseRadius is monotonically increasing in a_cov for
// zMain > 0, so a single sign check at each bound suffices to confirm
// the root is bracketed.
func InvertCoverage(targetRadius, zMain, r0Main, a0Deg, k float64) (float64, error) {
	lo, hi := 0.5, 89.0
	f := func(aDeg float64) float64 {
		return profile.OSSEBaseRadius(zMain, r0Main, a0Deg, k, aDeg) - targetRadius
	}
	fLo, fHi := f(lo), f(hi)
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if (fLo < 0) == (fHi < 0) {
		return 0, ErrNoBracket
	}
	for i := 0; i < bisectionIterations; i++ {
		mid := (lo + hi) / 2
		fMid := f(mid)
		if (fMid < 0) == (fLo < 0) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
