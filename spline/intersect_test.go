package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	s, err := New(hump(), Natural)
	require.NoError(t, err)
	{ // y = 1/2 on [0,1]: x^3 - 3x + 1 = 0
		x, err := s.IntersectInterval(0, 1, 0, 0, 0, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 2*math.Cos(4*math.Pi/9), x, 1.e-12)
		y, _ := s.Eval(x, false)
		assert.InDelta(t, 0.5, y, 1.e-12)
		// same answer with the bounds swapped
		x2, err := s.IntersectInterval(1, 0, 0, 0, 0, 0.5)
		require.NoError(t, err)
		assert.Equal(t, x, x2)
	}
	{ // y = 1/2 crosses twice over the whole range
		_, err := s.Intersect(0, 0, 0, 0.5)
		assert.ErrorIs(t, err, ErrAmbiguity)
	}
	{ // y = 2 misses
		_, err := s.Intersect(0, 0, 0, 2)
		assert.ErrorIs(t, err, ErrAmbiguity)
	}
	{ // A root on a shared sample is reported once
		x, err := s.Intersect(0, 0, 2, -1)
		require.NoError(t, err)
		assert.InDelta(t, 1., x, 1.e-10)
	}
	{ // The polynomial coincides with a segment
		_, err := s.IntersectInterval(0, 1, -0.5, 0, 1.5, 0)
		assert.ErrorIs(t, err, ErrAmbiguity)
	}
	{ // Cubic against cubic
		f, err := NewTwoPoint(0, 1, 0, 1, 0, 3) // x^3
		require.NoError(t, err)
		// x^3 = x^2 - x + 0.5 has one real root
		x, err := f.Intersect(0, 1, -1, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, x*x*x, x*x-x+0.5, 1.e-12)
	}
	{ // Outside of the range
		_, err := s.IntersectInterval(-1, 1, 0, 0, 0, 0.5)
		assert.ErrorIs(t, err, ErrDomain)
	}
}

func TestShiftCubic(t *testing.T) {
	var (
		a, b, c, d = 2., -1., 0.5, 3.
		origin     = 1.5
	)
	sa, sb, sc, sd := shiftCubic(a, b, c, d, origin)
	for _, x := range []float64{-2, 0, 1.5, 4} {
		u := x - origin
		assert.InDelta(t, ((a*x+b)*x+c)*x+d, ((sa*u+sb)*u+sc)*u+sd, 1.e-12)
	}
}
