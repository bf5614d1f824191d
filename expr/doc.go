// Package expr compiles parameter expressions into pure numeric
// callables over the azimuth variable p (phi, in radians, spread
// across [0, 2*pi)).
//
// Expressions use standard arithmetic (+ - * /), power written as ^,
// and the fixed whitelist of functions named in spec.md section 4.1:
// abs, sin, cos, tan, asin, acos, atan, sinh, cosh, tanh, exp, log,
// log10, sqrt, floor, ceil, fabs, plus the constant pi and the free
// variable p.
//
// Compile never calls into Go's own evaluator (no text/template, no
// go/types eval trick): it tokenizes, parses with a small
// recursive-descent parser into an expression tree, and evaluates the
// tree directly. This keeps the function whitelist closed by
// construction rather than by convention.
package expr
