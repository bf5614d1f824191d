package expr

import "fmt"

// Fn is a compiled expression: a pure function of the azimuth phi
// (radians). Evaluation never panics; malformed runtime results (NaN,
// Inf) are returned to the caller as ordinary float64 values so that
// profile-level validation (invalid_profile_parameters) can decide
// whether they are acceptable in context.
type Fn func(phi float64) (float64, error)

// Compile parses and validates src, returning a Fn that evaluates it
// at any phi. Compile pre-checks validity by evaluating at phi=0; a
// parse error or a phi=0 evaluation error both fail with
// ErrInvalidExpression wrapping the offending text.
func Compile(src string) (Fn, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, exprErrorf("tokenize", src, err)
	}
	tree, err := parseExpr(toks)
	if err != nil {
		return nil, exprErrorf("parse", src, err)
	}
	fn := Fn(tree.eval)
	if _, err := fn(0); err != nil {
		return nil, exprErrorf("evaluate at phi=0", src, err)
	}
	return fn, nil
}

// Constant returns a Fn that ignores phi and always returns v.
func Constant(v float64) Fn {
	return func(float64) (float64, error) { return v, nil }
}

// CompileOrDefault resolves a configuration value that may be absent
// (nil), a bare number, or expression text, per spec.md section 4.1:
// "Empty or null defaults to a supplied default constant."
func CompileOrDefault(raw interface{}, def float64) (Fn, error) {
	switch v := raw.(type) {
	case nil:
		return Constant(def), nil
	case float64:
		return Constant(v), nil
	case int:
		return Constant(float64(v)), nil
	case string:
		if v == "" {
			return Constant(def), nil
		}
		return Compile(v)
	default:
		return nil, exprErrorf("resolve", fmt.Sprintf("%v", raw), ErrInvalidExpression)
	}
}
