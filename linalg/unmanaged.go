package linalg

import (
	"fmt"
	"iter"
	"slices"
)

/*
Unmanaged is the canonical CSR triple exchanged with other linear algebra libraries:

	Values[RowOffset[r]:RowOffset[r+1]]    values of row r
	ColIndex[RowOffset[r]:RowOffset[r+1]]  their columns, strictly ascending

with len(RowOffset) == Rows+1, RowOffset[0] == 0 and RowOffset[Rows] == Nonzeros. An Unmanaged does
not own its slices. One obtained from CSR.Get aliases the CSR's storage and must not be used after
the CSR has been released or moved. One obtained from CSR.Release owns what it holds.
*/
type Unmanaged struct {
	Rows, Nonzeros int
	Values         []float64
	ColIndex       []int
	RowOffset      []int
}

// Validate checks the CSR invariants in one pass over the arrays
func (u Unmanaged) Validate() (err error) {
	if u.Rows < 0 || u.Nonzeros < 0 {
		return fmt.Errorf("%w: %d rows, %d nonzeros", ErrMalformed, u.Rows, u.Nonzeros)
	}
	if u.Rows == 0 && u.Nonzeros == 0 && len(u.RowOffset) == 0 {
		// empty state of a released or moved matrix
		return
	}
	switch {
	case len(u.RowOffset) != u.Rows+1:
		return fmt.Errorf("%w: row offsets have length %d, need %d", ErrMalformed, len(u.RowOffset), u.Rows+1)
	case len(u.Values) != u.Nonzeros || len(u.ColIndex) != u.Nonzeros:
		return fmt.Errorf("%w: %d values and %d column indices for %d nonzeros",
			ErrMalformed, len(u.Values), len(u.ColIndex), u.Nonzeros)
	case u.RowOffset[0] != 0 || u.RowOffset[u.Rows] != u.Nonzeros:
		return fmt.Errorf("%w: row offsets run from %d to %d, need 0 to %d",
			ErrMalformed, u.RowOffset[0], u.RowOffset[u.Rows], u.Nonzeros)
	}
	for r := 0; r < u.Rows; r++ {
		lo, hi := u.RowOffset[r], u.RowOffset[r+1]
		if hi < lo || hi > u.Nonzeros {
			return fmt.Errorf("%w: row %d spans [%d, %d)", ErrMalformed, r, lo, hi)
		}
		for k := lo; k < hi; k++ {
			if u.ColIndex[k] < 0 || (k > lo && u.ColIndex[k] <= u.ColIndex[k-1]) {
				return fmt.Errorf("%w: column indices of row %d are not strictly ascending", ErrMalformed, r)
			}
		}
	}
	return
}

// Adopt validates the arrays and hands them to a new owning CSR
func (u Unmanaged) Adopt() (m *CSR, err error) {
	if err = u.Validate(); err != nil {
		return
	}
	m = &CSR{raw: u}
	return
}

// Exists reports whether (r, c) is stored, by binary search within row r
func (u Unmanaged) Exists(r, c int) bool {
	_, found := u.find(r, c)
	return found
}

func (u Unmanaged) find(r, c int) (pos int, found bool) {
	if r < 0 || r >= u.Rows {
		return
	}
	lo, hi := u.RowOffset[r], u.RowOffset[r+1]
	pos, found = slices.BinarySearch(u.ColIndex[lo:hi], c)
	pos += lo
	return
}

// At returns the stored value at (r, c), ErrOutOfRange for implicit zeros and bad indices
func (u Unmanaged) At(r, c int) (val float64, err error) {
	pos, found := u.find(r, c)
	if !found {
		err = fmt.Errorf("%w: (%d,%d) is not stored in a matrix of %d rows", ErrOutOfRange, r, c, u.Rows)
		return
	}
	return u.Values[pos], nil
}

// Cols is max column index + 1. Trailing columns without entries can not be represented, so this
// is a lower bound of the logical column count.
func (u Unmanaged) Cols() (nc int) {
	for r := 0; r < u.Rows; r++ {
		if hi := u.RowOffset[r+1]; hi > u.RowOffset[r] {
			nc = max(nc, u.ColIndex[hi-1]+1)
		}
	}
	return
}

// Row returns a reference to row r, r must be in [0, Rows)
func (u Unmanaged) Row(r int) RowRef {
	if r < 0 || r >= u.Rows {
		panic(fmt.Errorf("%w: row %d of a matrix with %d rows", ErrOutOfRange, r, u.Rows))
	}
	return RowRef{u: u, row: r}
}

func (u Unmanaged) DoRowNonZero(r int, fn func(r, c int, v float64)) {
	for k := u.RowOffset[r]; k < u.RowOffset[r+1]; k++ {
		fn(r, u.ColIndex[k], u.Values[k])
	}
}

func (u Unmanaged) DoNonZero(fn func(r, c int, v float64)) {
	for r := 0; r < u.Rows; r++ {
		u.DoRowNonZero(r, fn)
	}
}

// AllRows ranges over the row references in order
func (u Unmanaged) AllRows() iter.Seq2[int, RowRef] {
	return func(yield func(int, RowRef) bool) {
		for r := 0; r < u.Rows; r++ {
			if !yield(r, RowRef{u: u, row: r}) {
				return
			}
		}
	}
}

// Begin and End delimit the rows for explicit iteration
func (u Unmanaged) Begin() RowIter { return RowIter{u: u, row: 0} }
func (u Unmanaged) End() RowIter   { return RowIter{u: u, row: u.Rows} }
