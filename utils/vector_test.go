package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestVector(t *testing.T) {
	var (
		data = []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		v1   = NewVec(data)
		v2   = NewVec([]float64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2})
	)
	data[0] = 100
	require.Equal(t, 0., v1.AtVec(0))
	assert.Equal(t, 45., VecSum(v1))
	assert.Equal(t, 9., VecMax(v1))
	assert.Equal(t, 0., VecMin(v1))
	assert.Equal(t, 90., VecDot(v1, v2))
	assert.Equal(t, 285., VecDot(v1, v1))
	assert.Equal(t, 9., VecNorm(v1, math.Inf(1)))
	assert.InDelta(t, math.Sqrt(285), VecNorm(v1, 2), 1.e-12)
	{ // Strided views are read element by element
		col := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}).ColView(1)
		assert.Equal(t, []float64{2, 4, 6}, VecGetF64(col))
		assert.Equal(t, 12., VecSum(col))
	}
	{
		assert.Equal(t, []float64{-1, 0, 1}, Linspace(-1, 1, 2))
		assert.Equal(t, []float64{3}, Linspace(3, 5, 0))
	}
}
