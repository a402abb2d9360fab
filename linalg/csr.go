package linalg

import (
	"fmt"
	"iter"

	"github.com/notargets/reslib/types"
)

// noCopy makes go vet's copylocks check flag copies of the struct embedding it
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

/*
CSR is an immutable compressed sparse row matrix that owns its storage. It is created by committing
a Builder or Accumulator, or by adopting raw arrays with NewCSR.

A CSR must not be copied, use Move to transfer it and rebuild it to duplicate it. Get exposes the
storage to other libraries without giving it up, Release gives it up and leaves the CSR empty.
Committed matrices are only read, so they are safe for concurrent use.
*/
type CSR struct {
	noCopy noCopy
	raw    Unmanaged
}

// NewCSR adopts the three CSR arrays after checking the CSR invariants
func NewCSR(rows, nonzeros int, values []float64, colIndex, rowOffset []int) (*CSR, error) {
	return Unmanaged{
		Rows:      rows,
		Nonzeros:  nonzeros,
		Values:    values,
		ColIndex:  colIndex,
		RowOffset: rowOffset,
	}.Adopt()
}

/*
compact builds the CSR arrays from triples sorted row major without repeated coordinates. With
declaredRows > 0 the matrix has that many rows, otherwise the largest row index decides. A single
pass writes the columns and values and advances the row offsets whenever the row changes, so rows
without entries get an empty range.
*/
func compact(T []Triple, declaredRows int) (m *CSR, err error) {
	var (
		nnz  = len(T)
		rows = declaredRows
	)
	if rows == 0 {
		if nnz == 0 {
			err = ErrEmpty
			return
		}
		rows = T[nnz-1].Row + 1
	}
	if rows > types.MaxIndex+1 || nnz > types.MaxIndex+1 {
		err = fmt.Errorf("%w: %d rows and %d nonzeros", ErrAllocation, rows, nnz)
		return
	}
	var (
		values    = make([]float64, nnz)
		colIndex  = make([]int, nnz)
		rowOffset = make([]int, rows+1)
		row       = 0
	)
	for i, t := range T {
		for row < t.Row {
			row++
			rowOffset[row] = i
		}
		colIndex[i] = t.Col
		values[i] = t.Value
	}
	for row < rows {
		row++
		rowOffset[row] = nnz
	}
	m = &CSR{
		raw: Unmanaged{
			Rows:      rows,
			Nonzeros:  nnz,
			Values:    values,
			ColIndex:  colIndex,
			RowOffset: rowOffset,
		},
	}
	return
}

func (m *CSR) Rows() int     { return m.raw.Rows }
func (m *CSR) Nonzeros() int { return m.raw.Nonzeros }

// Cols is an estimate, see Unmanaged.Cols
func (m *CSR) Cols() int { return m.raw.Cols() }

func (m *CSR) Exists(r, c int) bool { return m.raw.Exists(r, c) }

// At is the checked access, it fails with ErrOutOfRange unless (r, c) is stored
func (m *CSR) At(r, c int) (float64, error) { return m.raw.At(r, c) }

// Row returns row r for unchecked access, it panics when r is out of range
func (m *CSR) Row(r int) RowRef { return m.raw.Row(r) }

func (m *CSR) DoRowNonZero(r int, fn func(r, c int, v float64)) { m.raw.DoRowNonZero(r, fn) }

func (m *CSR) DoNonZero(fn func(r, c int, v float64)) { m.raw.DoNonZero(fn) }

func (m *CSR) AllRows() iter.Seq2[int, RowRef] { return m.raw.AllRows() }

func (m *CSR) Begin() RowIter { return m.raw.Begin() }
func (m *CSR) End() RowIter   { return m.raw.End() }

// Get returns a view aliasing the storage, valid while m holds it
func (m *CSR) Get() Unmanaged { return m.raw }

// Unsafe is Get, named for call sites handing the arrays to foreign code
func (m *CSR) Unsafe() Unmanaged { return m.raw }

// Release hands the storage to the caller and leaves m empty
func (m *CSR) Release() (u Unmanaged) {
	u, m.raw = m.raw, Unmanaged{}
	return
}

// Move transfers the storage to a new CSR and leaves m empty
func (m *CSR) Move() *CSR {
	return &CSR{raw: m.Release()}
}

// Empty reports whether m holds no storage, as after Release or Move
func (m *CSR) Empty() bool { return m.raw.RowOffset == nil }

func (m *CSR) String() string {
	return fmt.Sprintf("CSR %d rows x %d cols, %d nonzeros", m.Rows(), m.Cols(), m.Nonzeros())
}
