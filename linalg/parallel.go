package linalg

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/notargets/reslib/utils"
)

// MulVecParallel is MulVec with the rows split into np buckets of about equal nonzeros, each
// bucket computed by its own goroutine. np < 1 uses GOMAXPROCS.
func MulVecParallel(m *CSR, x []float64, np int) (y []float64, err error) {
	if len(x) < m.Cols() {
		err = fmt.Errorf("%w: vector of length %d for %d columns", ErrDimensionMismatch, len(x), m.Cols())
		return
	}
	u := m.raw
	y = make([]float64, u.Rows)
	if u.Rows == 0 {
		return
	}
	if np < 1 {
		np = runtime.GOMAXPROCS(0)
	}
	var (
		pm = utils.NewWeightedPartitionMap(np, u.RowOffset)
		wg sync.WaitGroup
	)
	for n := 0; n < pm.ParallelDegree; n++ {
		rMin, rMax := pm.GetBucketRange(n)
		if rMin == rMax {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := rMin; r < rMax; r++ {
				var sum float64
				for k := u.RowOffset[r]; k < u.RowOffset[r+1]; k++ {
					sum += u.Values[k] * x[u.ColIndex[k]]
				}
				y[r] = sum
			}
		}()
	}
	wg.Wait()
	return
}
