package backend

import (
	"fmt"
	"slices"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"

	"github.com/notargets/reslib/linalg"
)

// Bowman adapts a github.com/james-bowman/sparse CSR matrix to linalg.Matrix. M satisfies
// gonum's mat.Matrix for everything else.
type Bowman struct {
	M *sparse.CSR
}

// ViewBowman wraps the arrays of m without copying them
func ViewBowman(m *linalg.CSR, cols int) (b Bowman, err error) {
	if cols, err = columns(m, cols); err != nil {
		return
	}
	u := m.Unsafe()
	b = Bowman{M: sparse.NewCSR(u.Rows, cols, u.RowOffset, u.ColIndex, u.Values)}
	return
}

// ReleaseToBowman transfers the storage of m to a bowman matrix, m is left empty
func ReleaseToBowman(m *linalg.CSR, cols int) (b Bowman, err error) {
	if cols, err = columns(m, cols); err != nil {
		return
	}
	u := m.Release()
	b = Bowman{M: sparse.NewCSR(u.Rows, cols, u.RowOffset, u.ColIndex, u.Values)}
	return
}

// FromBowman copies a bowman CSR into a linalg.CSR, keeping stored zeros
func FromBowman(s *sparse.CSR) (*linalg.CSR, error) {
	nr, nc := s.Dims()
	b := linalg.NewBuilder(linalg.WithDims(nr, nc))
	s.DoNonZero(func(i, j int, v float64) {
		b.Add(i, j, v)
	})
	return b.ToCSR()
}

func (b Bowman) Rows() int {
	nr, _ := b.M.Dims()
	return nr
}

func (b Bowman) Cols() int {
	_, nc := b.M.Dims()
	return nc
}

func (b Bowman) Nonzeros() int { return b.M.NNZ() }

func (b Bowman) Exists(r, c int) bool {
	_, found := b.find(r, c)
	return found
}

func (b Bowman) find(r, c int) (pos int, found bool) {
	if r < 0 || r >= b.Rows() {
		return
	}
	raw := b.M.RawMatrix()
	lo, hi := raw.Indptr[r], raw.Indptr[r+1]
	pos, found = slices.BinarySearch(raw.Ind[lo:hi], c)
	pos += lo
	return
}

func (b Bowman) At(r, c int) (val float64, err error) {
	pos, found := b.find(r, c)
	if !found {
		err = fmt.Errorf("%w: (%d,%d) is not stored", linalg.ErrOutOfRange, r, c)
		return
	}
	return b.M.RawMatrix().Data[pos], nil
}

func (b Bowman) DoRowNonZero(r int, fn func(r, c int, v float64)) {
	raw := b.M.RawMatrix()
	for k := raw.Indptr[r]; k < raw.Indptr[r+1]; k++ {
		fn(r, raw.Ind[k], raw.Data[k])
	}
}

func (b Bowman) DoNonZero(fn func(r, c int, v float64)) { b.M.DoNonZero(fn) }

// MulVec returns M x with the sparse BLAS kernel of the bowman package
func (b Bowman) MulVec(x []float64) (y []float64, err error) {
	nr, nc := b.M.Dims()
	if len(x) != nc {
		err = fmt.Errorf("%w: vector of length %d for %d columns", ErrShape, len(x), nc)
		return
	}
	y = make([]float64, nr)
	blas.Dusmv(false, 1, b.M.RawMatrix(), x, 1, y, 1)
	return
}
