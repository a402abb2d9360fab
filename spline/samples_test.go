package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSet(t *testing.T) {
	{ // Descending input is reversed, the caller's slice is left alone
		pts := []Point{{3, 30}, {2, 20}, {1, 10}}
		ss, err := NewSampleSet(pts, false)
		require.NoError(t, err)
		assert.Equal(t, 3, ss.Len())
		assert.Equal(t, 1., ss.XMin())
		assert.Equal(t, 3., ss.XMax())
		assert.Equal(t, 20., ss.Y(1))
		assert.Equal(t, Point{3, 30}, pts[0])
	}
	{ // Sorting is stable and repeated x is still rejected
		_, err := NewSampleSet([]Point{{1, 0}, {0, 1}, {1, 2}}, true)
		assert.ErrorIs(t, err, ErrConfig)
	}
	{ // Non finite samples
		_, err := NewSampleSet([]Point{{0, 0}, {1, math.NaN()}}, false)
		assert.ErrorIs(t, err, ErrConfig)
		_, err = NewSampleSet([]Point{{0, 0}, {math.Inf(1), 1}}, false)
		assert.ErrorIs(t, err, ErrConfig)
	}
	{ // Adapters
		a, err := FromXY([]float64{0, 1}, []float64{5, 6})
		require.NoError(t, err)
		b := FromPairs([][2]float64{{0, 5}, {1, 6}})
		c, err := FromRows([][]float64{{0, 5, 99}, {1, 6}})
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, a, c)
		assert.Equal(t, a, FromPoints(a))
	}
}
