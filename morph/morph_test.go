package morph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornmesh/hornmesh/morph"
	"github.com/hornmesh/hornmesh/schema"
)

func TestApplyIdentityBelowFixed(t *testing.T) {
	t.Parallel()
	cfg := morph.Config{Target: schema.MorphCircle, Fixed: 0.5, Rate: 1}
	got := morph.Apply(cfg, 0.3, 0, 42, 100, 100)
	require.Equal(t, 42.0, got)
}

func TestApplyNoneIsIdentity(t *testing.T) {
	t.Parallel()
	cfg := morph.Config{Target: schema.MorphNone, Fixed: 0, Rate: 1}
	got := morph.Apply(cfg, 1, 0, 42, 100, 100)
	require.Equal(t, 42.0, got)
}

func TestApplyCircleReachesTargetAtT1(t *testing.T) {
	t.Parallel()
	cfg := morph.Config{Target: schema.MorphCircle, Fixed: 0, Rate: 1, AllowShrinkage: true}
	got := morph.Apply(cfg, 1, 0, 10, 50, 20)
	require.InDelta(t, math.Sqrt(50*20), got, 1e-9)
}

func TestApplyRectClampsShrinkageByDefault(t *testing.T) {
	t.Parallel()
	cfg := morph.Config{Target: schema.MorphRect, Fixed: 0, Rate: 1, AllowShrinkage: false, CornerRadius: 0}
	// raw radius larger than the box half-extent along phi=0 (halfW=1)
	got := morph.Apply(cfg, 1, 0, 100, 1, 1)
	require.InDelta(t, 100, got, 1e-9)
}

func TestResolveHalfSizesPrefersExplicit(t *testing.T) {
	t.Parallel()
	w, h := morph.ResolveHalfSizes(40, 0, 10, 20)
	require.InDelta(t, 20, w, 1e-9)
	require.InDelta(t, 20, h, 1e-9)
}

func TestSliceHalfSizes(t *testing.T) {
	t.Parallel()
	phis := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	ys := []float64{10, 20, 10, 20}
	w, h := morph.SliceHalfSizes(phis, ys)
	require.InDelta(t, 10, w, 1e-9)
	require.InDelta(t, 20, h, 1e-9)
}
