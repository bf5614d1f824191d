package meshgrid

import "github.com/hornmesh/hornmesh/schema"

// PhiSamples returns the azimuth samples for the given quadrant
// selector, per invariant I4: full-circle uses n_angular samples over
// [phiStart, phiEnd) with the endpoint excluded; reduced quadrants use
// n_angular+1 samples so both boundary angles are included (the patch
// can then be attached to its symmetry plane).
func PhiSamples(nAngular int, quadrants schema.Quadrants) []float64 {
	start, end := quadrants.Span()
	span := end - start

	if quadrants.Full() {
		out := make([]float64, nAngular)
		step := span / float64(nAngular)
		for i := range out {
			out[i] = start + float64(i)*step
		}
		return out
	}

	out := make([]float64, nAngular+1)
	step := span / float64(nAngular)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
