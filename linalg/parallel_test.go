package linalg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulVecParallel(t *testing.T) {
	{
		y, err := MulVecParallel(referenceMatrix(t), csrVals, 4)
		require.NoError(t, err)
		assert.InDeltaSlice(t, spmvVals, y, 1.e-12)
	}
	{ // Random pattern, any parallel degree agrees with the serial product
		var (
			rng = rand.New(rand.NewSource(3))
			b   = NewAccumulator(WithDims(300, 200))
			x   = make([]float64, 200)
		)
		for i := 0; i < 3000; i++ {
			b.Add(rng.Intn(300), rng.Intn(200), rng.Float64()-0.5)
		}
		for i := range x {
			x[i] = rng.Float64()
		}
		m, err := b.ToCSR()
		require.NoError(t, err)
		want, err := MulVec(m, x)
		require.NoError(t, err)
		for _, np := range []int{0, 1, 3, 8, 500} {
			y, err := MulVecParallel(m, x, np)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want, y, 1.e-12, "np = %d", np)
		}
	}
	{
		_, err := MulVecParallel(referenceMatrix(t), []float64{1}, 2)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		m := referenceMatrix(t)
		m.Release()
		y, err := MulVecParallel(m, nil, 2)
		require.NoError(t, err)
		assert.Empty(t, y)
	}
}
