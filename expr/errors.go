// errors.go — sentinel errors for the expr package.
//
// Error policy:
//   - Only sentinel variables are exposed at package level.
//   - Callers use errors.Is(err, ErrInvalidExpression) to branch.
//   - Sentinels are never wrapped with formatted strings at the
//     definition site; call sites wrap with %w and the offending text.
package expr

import "errors"

// ErrInvalidExpression indicates text that could not be tokenized,
// parsed, or evaluated at p=0. The wrapping error carries the
// offending expression text.
var ErrInvalidExpression = errors.New("expr: invalid expression")

// ErrUnknownFunction indicates a function name outside the fixed
// whitelist (spec.md section 4.1).
var ErrUnknownFunction = errors.New("expr: unknown function")

// ErrUnknownVariable indicates an identifier other than the free
// variable p.
var ErrUnknownVariable = errors.New("expr: unknown variable")

func exprErrorf(stage, text string, cause error) error {
	return &compileError{stage: stage, text: text, cause: cause}
}

type compileError struct {
	stage string
	text  string
	cause error
}

func (e *compileError) Error() string {
	return e.stage + ": " + e.text + ": " + e.cause.Error()
}

// Unwrap exposes both ErrInvalidExpression and the specific cause, so
// errors.Is matches either.
func (e *compileError) Unwrap() []error { return []error{ErrInvalidExpression, e.cause} }
