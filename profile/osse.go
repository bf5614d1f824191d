package profile

import (
	"math"

	"github.com/hornmesh/hornmesh/expr"
	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/schema"
)

// osse implements the OSSE (length-driven) profile family, per
// spec.md section 4.2. Sample's t parameter is the main curve's own
// axial coordinate z_main, in [0, L(phi)].
type osse struct {
	r0    float64
	a0Deg float64
	k     float64
	n     float64
	q     float64
	h     float64

	throatProfile    schema.ThroatProfile
	circArcTermAngle float64
	circArcRadius    float64

	lFn    expr.Fn
	sFn    expr.Fn
	aFn    expr.Fn
	r0Main func(phi float64) (float64, error)
}

func (p *osse) DomainEnd(phi float64) (float64, error) {
	L, err := p.lFn(phi)
	if err != nil {
		return 0, err
	}
	if L <= 0 || !finite(L) {
		return 0, wrapInvalid("OSSE axial length", ErrInvalidProfileParameters)
	}
	return L, nil
}

func (p *osse) R0Main(phi float64) (float64, error) { return p.r0Main(phi) }

func (p *osse) Sample(zMain, phi float64) (geom.Vec2, error) {
	L, err := p.DomainEnd(phi)
	if err != nil {
		return geom.Vec2{}, err
	}
	r0m, err := p.r0Main(phi)
	if err != nil {
		return geom.Vec2{}, err
	}
	aCovDeg, err := p.aFn(phi)
	if err != nil {
		return geom.Vec2{}, err
	}

	var y float64
	if p.throatProfile == schema.ThroatProfileCircularArc {
		y, err = p.circularArcRadius(zMain, L, r0m, aCovDeg)
		if err != nil {
			return geom.Vec2{}, err
		}
	} else {
		base := p.osBase(zMain, r0m, aCovDeg)
		term, tErr := p.seTermination(zMain, L, phi)
		if tErr != nil {
			return geom.Vec2{}, tErr
		}
		y = base + term
	}

	if p.h != 0 {
		tNorm := 0.0
		if L != 0 {
			tNorm = zMain / L
		}
		y += p.h * math.Sin(tNorm*math.Pi)
	}

	if !finite(y) {
		return geom.Vec2{}, wrapInvalid("OSSE sample", ErrInvalidProfileParameters)
	}
	return geom.Vec2{X: zMain, Y: y}, nil
}

// osBase is the OS base curve b(z) (spec.md section 4.2).
func (p *osse) osBase(z, r0m, aCovDeg float64) float64 {
	return OSSEBaseRadius(z, r0m, p.a0Deg, p.k, aCovDeg)
}

// OSSEBaseRadius evaluates the OS base curve b(z) in isolation (no SE
// termination, no h-bulge, no rotation). It is exported so the guide
// package's coverage-angle inversion (spec.md section 4.3) can invert
// it on the coverage angle without duplicating the formula.
func OSSEBaseRadius(z, r0Main, a0Deg, k, aCovDeg float64) float64 {
	a0Rad := a0Deg * math.Pi / 180
	aRad := aCovDeg * math.Pi / 180
	t1 := (k * r0Main) * (k * r0Main)
	t2 := 2 * k * r0Main * z * math.Tan(a0Rad)
	t3 := z * z * math.Tan(aRad) * math.Tan(aRad)
	under := t1 + t2 + t3
	if under < 0 {
		under = 0
	}
	return math.Sqrt(under) + r0Main*(1-k)
}

// seTermination is the SE termination term t(z) (spec.md section 4.2).
// s may itself be an expression in the angular variable phi (section
// 3.1), so it is evaluated per-slice rather than bound once.
func (p *osse) seTermination(z, L, phi float64) (float64, error) {
	s, err := p.sFn(phi)
	if err != nil {
		return 0, err
	}
	if z <= 0 || p.n <= 0 || p.q <= 0 || L <= 0 || !finite(s) {
		return 0, nil
	}
	zNorm := p.q * z / L
	if zNorm > 1 {
		zNorm = 1
	}
	inner := 1 - math.Pow(zNorm, p.n)
	if inner < 0 {
		inner = 0
	}
	return (s * L / p.q) * (1 - math.Pow(inner, 1/p.n)), nil
}
