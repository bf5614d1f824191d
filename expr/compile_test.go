package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/expr"
)

func TestCompileArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		phi  float64
		want float64
	}{
		{"constant", "45", 0, 45},
		{"sum", "1+2*3", 0, 7},
		{"power", "2^10", 0, 1024},
		{"power_right_assoc", "2^3^2", 0, 512}, // 2^(3^2) = 512, not (2^3)^2 = 64
		{"unary_minus", "-p+1", 0.5, 0.5},
		{"pi_const", "pi", 0, math.Pi},
		{"variable", "p*2", 3, 6},
		{"function_call", "sin(0)+cos(0)", 0, 1},
		{"nested_parens", "(1+2)*(3+4)", 0, 21},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fn, err := expr.Compile(tc.src)
			require.NoError(t, err)
			got, err := fn(tc.phi)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestCompileRejectsUnknownFunction(t *testing.T) {
	t.Parallel()
	_, err := expr.Compile("eval(p)")
	require.Error(t, err)
	require.ErrorIs(t, err, expr.ErrUnknownFunction)
}

func TestCompileRejectsUnknownVariable(t *testing.T) {
	t.Parallel()
	_, err := expr.Compile("q+1")
	require.Error(t, err)
	require.ErrorIs(t, err, expr.ErrUnknownVariable)
}

func TestCompileRejectsMalformed(t *testing.T) {
	t.Parallel()
	_, err := expr.Compile("1 + )")
	require.Error(t, err)
}

func TestCompileOrDefault(t *testing.T) {
	t.Parallel()

	fn, err := expr.CompileOrDefault(nil, 12.7)
	require.NoError(t, err)
	v, err := fn(0)
	require.NoError(t, err)
	require.Equal(t, 12.7, v)

	fn, err = expr.CompileOrDefault("", 5)
	require.NoError(t, err)
	v, err = fn(0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	fn, err = expr.CompileOrDefault("2*p", 0)
	require.NoError(t, err)
	v, err = fn(3)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}
