package profile

import (
	"math"

	"github.com/hornmesh/hornmesh/expr"
	"github.com/hornmesh/hornmesh/geom"
)

// rosse implements the R-OSSE (radius-driven) profile family, per
// spec.md section 4.2.
type rosse struct {
	r0    float64 // declared throat radius (pre-extension)
	a0Deg float64 // throat half-angle, degrees
	k     float64 // flare constant
	q     float64 // shape factor
	rApex float64 // apex radius (schema "r")
	b     float64 // bending
	m     float64 // apex shift
	tmax  float64 // truncation fraction

	rFn    expr.Fn // mouth radius R(phi)
	aFn    expr.Fn // coverage angle a(phi), degrees
	r0Main func(phi float64) (float64, error)
}

type rosseCoeffs struct {
	r0m, c1, c2, c3, L float64
}

func (p *rosse) coeffs(phi float64) (rosseCoeffs, error) {
	r0m, err := p.r0Main(phi)
	if err != nil {
		return rosseCoeffs{}, err
	}
	R, err := p.rFn(phi)
	if err != nil {
		return rosseCoeffs{}, err
	}
	aDeg, err := p.aFn(phi)
	if err != nil {
		return rosseCoeffs{}, err
	}
	a0Rad := p.a0Deg * math.Pi / 180
	aRad := aDeg * math.Pi / 180

	c1 := (p.k * r0m) * (p.k * r0m)
	c2 := 2 * p.k * r0m * math.Tan(a0Rad)
	c3 := math.Tan(aRad) * math.Tan(aRad)
	T := R + r0m*(p.k-1)

	L, err := geom.SolveQuadraticPositiveRoot(c3, c2, c1-T*T)
	if err != nil || !finite(L) {
		return rosseCoeffs{}, wrapInvalid("R-OSSE axial length solve", err)
	}
	return rosseCoeffs{r0m: r0m, c1: c1, c2: c2, c3: c3, L: L}, nil
}

// DomainEnd returns tmax, the truncation fraction; it is constant
// across phi but the call signature still validates that the length
// solve succeeds at this phi (I3).
func (p *rosse) DomainEnd(phi float64) (float64, error) {
	if _, err := p.coeffs(phi); err != nil {
		return 0, err
	}
	return p.tmax, nil
}

func (p *rosse) R0Main(phi float64) (float64, error) { return p.r0Main(phi) }

func (p *rosse) Sample(t, phi float64) (geom.Vec2, error) {
	c, err := p.coeffs(phi)
	if err != nil {
		return geom.Vec2{}, err
	}
	L := c.L
	sigma := math.Sqrt(p.rApex*p.rApex + p.m*p.m)
	xi := p.b * L * (math.Sqrt(p.rApex*p.rApex+(1-p.m)*(1-p.m)) - sigma)

	x := L*(sigma-math.Sqrt(p.rApex*p.rApex+(t-p.m)*(t-p.m))) + xi*t*t

	R, err := p.rFn(phi)
	if err != nil {
		return geom.Vec2{}, err
	}

	under := c.c1 + c.c2*L*t + c.c3*L*L*t*t
	if under < 0 {
		under = 0
	}
	yOS := math.Sqrt(under) + c.r0m*(1-p.k)
	yTerm := R + L*(1-math.Sqrt(1+c.c3*(t-1)*(t-1)))

	tq := math.Pow(t, p.q)
	y := (1-tq)*yOS + tq*yTerm

	if !finite(x) || !finite(y) {
		return geom.Vec2{}, wrapInvalid("R-OSSE sample", ErrInvalidProfileParameters)
	}
	return geom.Vec2{X: x, Y: y}, nil
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func wrapInvalid(detail string, cause error) error {
	if cause == nil {
		cause = ErrInvalidProfileParameters
	}
	return &invalidParamsError{detail: detail, cause: cause}
}

type invalidParamsError struct {
	detail string
	cause  error
}

func (e *invalidParamsError) Error() string { return e.detail + ": " + e.cause.Error() }
func (e *invalidParamsError) Unwrap() error { return ErrInvalidProfileParameters }
