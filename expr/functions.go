package expr

import (
	"fmt"
	"math"
)

// builtinFn evaluates a whitelisted function given its already
// evaluated arguments.
type builtinFn func(args []float64) (float64, error)

func unary(f func(float64) float64) builtinFn {
	return func(args []float64) (float64, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("expects 1 argument, got %d", len(args))
		}
		return f(args[0]), nil
	}
}

// builtins is the fixed whitelist from spec.md section 4.1. No other
// function name is ever recognized.
var builtins = map[string]builtinFn{
	"abs":   unary(math.Abs),
	"fabs":  unary(math.Abs),
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"exp":   unary(math.Exp),
	"log":   unary(math.Log),
	"log10": unary(math.Log10),
	"sqrt":  unary(math.Sqrt),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
}

// constants is the fixed whitelist of named constants.
var constants = map[string]float64{
	"pi": math.Pi,
}
