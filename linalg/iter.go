package linalg

import (
	"fmt"
	"iter"
)

// RowRef is a lightweight reference to one row of a CSR matrix
type RowRef struct {
	u   Unmanaged
	row int
}

// Index is the row number
func (rr RowRef) Index() int { return rr.row }

// Size is the number of stored entries in the row
func (rr RowRef) Size() int { return rr.u.RowOffset[rr.row+1] - rr.u.RowOffset[rr.row] }

func (rr RowRef) Begin() ColIter { return ColIter{u: rr.u, pos: rr.u.RowOffset[rr.row]} }
func (rr RowRef) End() ColIter   { return ColIter{u: rr.u, pos: rr.u.RowOffset[rr.row+1]} }

func (rr RowRef) Exists(c int) bool { return rr.u.Exists(rr.row, c) }

// Value is the unchecked access to column c. It panics with ErrPrecondition if c is not stored,
// callers that can meet implicit zeros check Exists first.
func (rr RowRef) Value(c int) float64 {
	pos, found := rr.u.find(rr.row, c)
	if !found {
		panic(fmt.Errorf("%w: (%d,%d) is an implicit zero", ErrPrecondition, rr.row, c))
	}
	return rr.u.Values[pos]
}

// All ranges over (column, value) of the stored entries
func (rr RowRef) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for k := rr.u.RowOffset[rr.row]; k < rr.u.RowOffset[rr.row+1]; k++ {
			if !yield(rr.u.ColIndex[k], rr.u.Values[k]) {
				return
			}
		}
	}
}

// ColIter walks the stored entries of a row, from RowRef.Begin up to RowRef.End
type ColIter struct {
	u   Unmanaged
	pos int
}

// Index is the column of the current entry
func (it ColIter) Index() int           { return it.u.ColIndex[it.pos] }
func (it ColIter) Value() float64       { return it.u.Values[it.pos] }
func (it *ColIter) Next()               { it.pos++ }
func (it *ColIter) Prev()               { it.pos-- }
func (it ColIter) Equal(o ColIter) bool { return it.pos == o.pos }

// RowIter walks the rows of a matrix, from Begin up to End
type RowIter struct {
	u   Unmanaged
	row int
}

func (it RowIter) Ref() RowRef          { return RowRef{u: it.u, row: it.row} }
func (it RowIter) Index() int           { return it.row }
func (it *RowIter) Next()               { it.row++ }
func (it *RowIter) Prev()               { it.row-- }
func (it RowIter) Equal(o RowIter) bool { return it.row == o.row }
