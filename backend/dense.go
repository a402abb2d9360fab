package backend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/reslib/linalg"
)

// Dense adapts a gonum dense matrix to linalg.Matrix, its stored entries are the nonzero elements
type Dense struct {
	M *mat.Dense
}

// ToDense expands m into a dense matrix with cols columns, 0 takes the Cols estimate
func ToDense(m linalg.Matrix, cols int) (d *mat.Dense, err error) {
	if cols, err = columns(m, cols); err != nil {
		return
	}
	d = mat.NewDense(m.Rows(), cols, nil)
	m.DoNonZero(func(r, c int, v float64) {
		d.Set(r, c, v)
	})
	return
}

// FromDense stores the elements of d with magnitude above dropTol
func FromDense(d mat.Matrix, dropTol float64) (*linalg.CSR, error) {
	var (
		nr, nc = d.Dims()
		b      = linalg.NewBuilder(linalg.WithDims(nr, nc))
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if v := d.At(i, j); math.Abs(v) > dropTol {
				b.Add(i, j, v)
			}
		}
	}
	return b.ToCSR()
}

func (d Dense) Rows() int {
	nr, _ := d.M.Dims()
	return nr
}

func (d Dense) Cols() int {
	_, nc := d.M.Dims()
	return nc
}

func (d Dense) Nonzeros() (nnz int) {
	d.DoNonZero(func(int, int, float64) { nnz++ })
	return
}

func (d Dense) Exists(r, c int) bool {
	nr, nc := d.M.Dims()
	return r >= 0 && r < nr && c >= 0 && c < nc && d.M.At(r, c) != 0
}

func (d Dense) At(r, c int) (float64, error) {
	if !d.Exists(r, c) {
		return 0, fmt.Errorf("%w: (%d,%d) is zero or outside the dense matrix", linalg.ErrOutOfRange, r, c)
	}
	return d.M.At(r, c), nil
}

func (d Dense) DoRowNonZero(r int, fn func(r, c int, v float64)) {
	for c, v := range d.M.RawRowView(r) {
		if v != 0 {
			fn(r, c, v)
		}
	}
}

func (d Dense) DoNonZero(fn func(r, c int, v float64)) {
	for r := 0; r < d.Rows(); r++ {
		d.DoRowNonZero(r, fn)
	}
}
