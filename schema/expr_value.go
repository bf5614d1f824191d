package schema

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hornmesh/hornmesh/expr"
)

// Expr holds a parameter that may be given as a bare number or as
// expression text in the azimuth variable p (spec.md section 3.1: "R,
// L, a, s may be a scalar or an expression"). The zero value decodes
// as absent (Set == false) and resolves to the caller-supplied
// default via Compile.
type Expr struct {
	Set     bool
	literal float64
	text    string
	isText  bool
}

// ExprFromFloat wraps a literal numeric value as an Expr.
func ExprFromFloat(v float64) Expr {
	return Expr{Set: true, literal: v}
}

// ExprFromText wraps expression source text as an Expr.
func ExprFromText(src string) Expr {
	return Expr{Set: true, text: src, isText: true}
}

// UnmarshalYAML decodes either a scalar number or a scalar string.
func (e *Expr) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return &FieldError{Field: "<expr>", Reason: "expected a scalar number or string"}
	}
	if value.Tag == "!!str" {
		*e = Expr{Set: true, text: value.Value, isText: true}
		return nil
	}
	if f, err := strconv.ParseFloat(value.Value, 64); err == nil {
		*e = Expr{Set: true, literal: f}
		return nil
	}
	// Numeric-looking tag but not parseable as float; fall back to text
	// so expressions like "45" quoted oddly still compile.
	*e = Expr{Set: true, text: value.Value, isText: true}
	return nil
}

// Compile resolves e to an expr.Fn, defaulting to a constant def when
// e is unset.
func (e Expr) Compile(def float64) (expr.Fn, error) {
	if !e.Set {
		return expr.Constant(def), nil
	}
	if e.isText {
		return expr.Compile(e.text)
	}
	return expr.Constant(e.literal), nil
}
