package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hump() []Point {
	return []Point{{0, 0}, {1, 1}, {2, 0}}
}

func TestNaturalSpline(t *testing.T) {
	s, err := New(hump(), Natural)
	require.NoError(t, err)
	{ // Interpolation and vanishing end curvature
		y, err := s.Eval(1, false)
		require.NoError(t, err)
		assert.InDelta(t, 1., y, 1.e-14)
		d2, err := s.EvalSecondDerivative(0, false)
		require.NoError(t, err)
		assert.InDelta(t, 0., d2, 1.e-14)
		d2, err = s.EvalSecondDerivative(2, false)
		require.NoError(t, err)
		assert.InDelta(t, 0., d2, 1.e-14)
	}
	{ // On [0,1] the spline is -x^3/2 + 3x/2
		assert.InDeltaSlice(t, []float64{1.5, 0, -1.5}, s.Slopes(), 1.e-14)
		y, _ := s.Eval(0.5, false)
		assert.InDelta(t, 0.6875, y, 1.e-14)
		d1, _ := s.EvalDerivative(0.5, false)
		assert.InDelta(t, 1.125, d1, 1.e-14)
		d2, _ := s.EvalSecondDerivative(1, false)
		assert.InDelta(t, -3., d2, 1.e-13)
		d3, _ := s.EvalThirdDerivative(0.25, false)
		assert.InDelta(t, -3., d3, 1.e-13)
		a, b, c, d := s.Coefficients(0, 0)
		assert.InDeltaSlice(t, []float64{-0.5, 0, 1.5, 0}, []float64{a, b, c, d}, 1.e-14)
	}
	{ // Extrapolation continues the boundary segments linearly
		_, err := s.Eval(-1, false)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = s.EvalDerivative(2.1, false)
		assert.ErrorIs(t, err, ErrDomain)
		y, err := s.Eval(-1, true)
		require.NoError(t, err)
		assert.InDelta(t, -1.5, y, 1.e-14)
		y, _ = s.Eval(3, true)
		assert.InDelta(t, -1.5, y, 1.e-14)
		d1, _ := s.EvalDerivative(3, true)
		assert.InDelta(t, -1.5, d1, 1.e-14)
		d2, _ := s.EvalSecondDerivative(-5, true)
		assert.Equal(t, 0., d2)
		d3, _ := s.EvalThirdDerivative(5, true)
		assert.Equal(t, 0., d3)
	}
	assert.True(t, s.Applies(0))
	assert.True(t, s.Applies(2))
	assert.False(t, s.Applies(2.0001))
	assert.Equal(t, Natural, s.Type())
	assert.Equal(t, "Natural spline, 3 samples on [0, 2]", s.String())
}

func TestInterpolation(t *testing.T) {
	var (
		xs = []float64{-1, -0.3, 0.2, 1.7, 2, 3.5, 6}
		ys = make([]float64, len(xs))
	)
	for i, x := range xs {
		ys[i] = math.Exp(-x*x) + 0.1*x
	}
	pts, err := FromXY(xs, ys)
	require.NoError(t, err)
	for _, st := range []Type{Full, Natural, Monotonic} {
		s, err := New(pts, st, WithSlopes(0.5, -0.25))
		require.NoError(t, err, st.String())
		for i, x := range xs {
			y, err := s.Eval(x, false)
			require.NoError(t, err)
			assert.InDelta(t, ys[i], y, 1.e-12, "%s at x=%v", st, x)
		}
	}
	{ // Full splines keep the prescribed end slopes
		s, err := New(pts, Full, WithSlopes(0.5, -0.25))
		require.NoError(t, err)
		d1, _ := s.EvalDerivative(s.XMin(), false)
		assert.InDelta(t, 0.5, d1, 1.e-12)
		d1, _ = s.EvalDerivative(s.XMax(), false)
		assert.InDelta(t, -0.25, d1, 1.e-12)
	}
}

func TestFullSplineReproducesCubic(t *testing.T) {
	var (
		f   = func(x float64) float64 { return x*x*x - 2*x + 1 }
		df  = func(x float64) float64 { return 3*x*x - 2 }
		xs  = []float64{-2, -1.5, 0, 0.5, 2}
		pts []Point
	)
	for _, x := range xs {
		pts = append(pts, Point{x, f(x)})
	}
	s, err := New(pts, Full, WithSlopes(df(-2), df(2)))
	require.NoError(t, err)
	for _, x := range []float64{-1.9, -1.2, -0.4, 0.3, 1.1, 1.95} {
		y, _ := s.Eval(x, false)
		assert.InDelta(t, f(x), y, 1.e-10)
		d1, _ := s.EvalDerivative(x, false)
		assert.InDelta(t, df(x), d1, 1.e-10)
		d3, _ := s.EvalThirdDerivative(x, false)
		assert.InDelta(t, 6., d3, 1.e-9)
	}
	{ // Two point form
		s, err := NewTwoPoint(0, 1, 0, 1, 0, 3)
		require.NoError(t, err)
		y, _ := s.Eval(0.5, false)
		assert.InDelta(t, 0.125, y, 1.e-15)
		a, b, c, d := s.Coefficients(0, 0)
		assert.InDeltaSlice(t, []float64{1, 0, 0, 0}, []float64{a, b, c, d}, 1.e-14)
		// about x = 1: (x-1)^3 + 3(x-1)^2 + 3(x-1) + 1
		a, b, c, d = s.Coefficients(0, 1)
		assert.InDeltaSlice(t, []float64{1, 3, 3, 1}, []float64{a, b, c, d}, 1.e-14)
		assert.Panics(t, func() { s.Coefficients(1, 0) })
	}
}

func TestPeriodicSpline(t *testing.T) {
	{
		var pts []Point
		for k := 0; k <= 8; k++ {
			x := 2 * math.Pi * float64(k) / 8
			pts = append(pts, Point{x, math.Sin(x)})
		}
		s, err := New(pts, Periodic)
		require.NoError(t, err)
		d1Min, _ := s.EvalDerivative(s.XMin(), false)
		d1Max, _ := s.EvalDerivative(s.XMax(), false)
		assert.InDelta(t, d1Min, d1Max, 1.e-12)
		d2Min, _ := s.EvalSecondDerivative(s.XMin(), false)
		d2Max, _ := s.EvalSecondDerivative(s.XMax(), false)
		assert.InDelta(t, d2Min, d2Max, 1.e-12)
		// close to the function it samples
		y, _ := s.Eval(1, false)
		assert.InDelta(t, math.Sin(1), y, 1.e-2)
		assert.InDelta(t, 1., d1Min, 2.e-2)
	}
	{ // Three samples: both unknowns couple through the corners
		s, err := New([]Point{{0, 0}, {1, 1}, {3, 0}}, Periodic)
		require.NoError(t, err)
		d1Min, _ := s.EvalDerivative(0, false)
		d1Max, _ := s.EvalDerivative(3, false)
		assert.InDelta(t, d1Min, d1Max, 1.e-12)
		d2Min, _ := s.EvalSecondDerivative(0, false)
		d2Max, _ := s.EvalSecondDerivative(3, false)
		assert.InDelta(t, d2Min, d2Max, 1.e-12)
		y, _ := s.Eval(1, false)
		assert.InDelta(t, 1., y, 1.e-14)
	}
}

func TestMonotonicSpline(t *testing.T) {
	var (
		xs = []float64{0, 1, 2, 3, 4, 5, 6}
		ys = []float64{0, 0, 1, 1.1, 5, 5, 6}
	)
	pts, err := FromXY(xs, ys)
	require.NoError(t, err)
	s, err := New(pts, Monotonic)
	require.NoError(t, err)
	{ // Never decreases and never leaves the bounds of the neighboring samples
		prev := math.Inf(-1)
		for k := 0; k <= 600; k++ {
			x := 6 * float64(k) / 600
			y, err := s.Eval(x, false)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, y, prev-1.e-12, "x = %v", x)
			i := s.segmentIdx(x)
			assert.GreaterOrEqual(t, y, ys[i]-1.e-12)
			assert.LessOrEqual(t, y, ys[i+1]+1.e-12)
			prev = y
		}
	}
	assert.Equal(t, Increasing, s.MonotonicAll())
	{ // Flat input gives a flat segment
		y, _ := s.Eval(0.5, false)
		assert.Equal(t, 0., y)
		y, _ = s.Eval(4.5, false)
		assert.InDelta(t, 5., y, 1.e-14)
	}
	{ // A two sample monotonic spline is the secant line
		s, err := New([]Point{{1, 2}, {3, 6}}, Monotonic)
		require.NoError(t, err)
		y, _ := s.Eval(2.5, false)
		assert.InDelta(t, 5., y, 1.e-14)
	}
}

func TestSampleOrdering(t *testing.T) {
	var (
		asc  = []Point{{0, 1}, {0.5, 3}, {2, 2}, {3, -1}}
		desc = []Point{{3, -1}, {2, 2}, {0.5, 3}, {0, 1}}
		mix  = []Point{{2, 2}, {0, 1}, {3, -1}, {0.5, 3}}
	)
	sA, err := New(asc, Natural)
	require.NoError(t, err)
	sD, err := New(desc, Natural)
	require.NoError(t, err)
	sM, err := New(mix, Natural, WithSort())
	require.NoError(t, err)
	for _, s := range []*Spline{sD, sM} {
		assert.Equal(t, sA.NumSamples(), s.NumSamples())
		assert.Equal(t, sA.XMin(), s.XMin())
		assert.Equal(t, sA.XMax(), s.XMax())
		assert.Equal(t, sA.Slopes(), s.Slopes())
		assert.Equal(t, sA.Samples().Points(), s.Samples().Points())
	}
	_, err = New(mix, Natural)
	assert.ErrorIs(t, err, ErrConfig)
	// callers can not reach the internals through the accessors
	sl := sA.Slopes()
	sl[0] = 1000
	assert.NotEqual(t, 1000., sA.Slopes()[0])
}

func TestConfigErrors(t *testing.T) {
	{ // Too few samples
		_, err := New([]Point{{0, 1}}, Natural)
		assert.ErrorIs(t, err, ErrConfig)
		_, err = New(nil, Monotonic)
		assert.ErrorIs(t, err, ErrConfig)
		_, err = New([]Point{{0, 1}, {1, 2}}, Periodic)
		assert.ErrorIs(t, err, ErrConfig)
	}
	{ // Full needs slopes
		_, err := New(hump(), Full)
		assert.ErrorIs(t, err, ErrConfig)
	}
	{ // Repeated x
		_, err := New([]Point{{0, 1}, {1, 2}, {1, 3}}, Natural)
		assert.ErrorIs(t, err, ErrConfig)
	}
	{ // Unknown type
		_, err := New(hump(), Type(42))
		assert.ErrorIs(t, err, ErrConfig)
		_, err = ParseType("quintic")
		assert.ErrorIs(t, err, ErrConfig)
		st, err := ParseType(" Monotone ")
		require.NoError(t, err)
		assert.Equal(t, Monotonic, st)
	}
	{ // Mismatched coordinate arrays
		_, err := FromXY([]float64{0, 1, 2}, []float64{0, 1})
		assert.ErrorIs(t, err, ErrConfig)
		_, err = FromRows([][]float64{{0, 1}, {2}})
		assert.ErrorIs(t, err, ErrConfig)
	}
	{ // A failed Set leaves the spline untouched
		s, err := New(hump(), Natural)
		require.NoError(t, err)
		err = s.Set([]Point{{0, 1}}, Natural)
		assert.ErrorIs(t, err, ErrConfig)
		assert.Equal(t, 3, s.NumSamples())
		assert.Equal(t, Natural, s.Type())
		require.NoError(t, s.Set(FromPairs([][2]float64{{0, 0}, {1, 1}}), Full, WithSlopes(1, 1)))
		assert.Equal(t, 2, s.NumSamples())
		y, _ := s.Eval(0.3, false)
		assert.InDelta(t, 0.3, y, 1.e-15)
	}
}
