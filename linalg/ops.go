package linalg

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Clone is the explicit O(nnz) duplicate of m
func (m *CSR) Clone() *CSR {
	return &CSR{
		raw: Unmanaged{
			Rows:      m.raw.Rows,
			Nonzeros:  m.raw.Nonzeros,
			Values:    slices.Clone(m.raw.Values),
			ColIndex:  slices.Clone(m.raw.ColIndex),
			RowOffset: slices.Clone(m.raw.RowOffset),
		},
	}
}

// ToTriples lists the stored entries of m in row major order
func ToTriples(m Matrix) (T []Triple) {
	T = make([]Triple, 0, m.Nonzeros())
	m.DoNonZero(func(r, c int, v float64) {
		T = append(T, Triple{r, c, v})
	})
	return
}

// Identical reports whether a and b have the same rows, the same stored coordinates and equal values
func Identical(a, b Matrix) bool {
	if a.Rows() != b.Rows() || a.Nonzeros() != b.Nonzeros() {
		return false
	}
	return slices.Equal(ToTriples(a), ToTriples(b))
}

// Scale returns alpha * m with the pattern of m
func Scale(m *CSR, alpha float64) *CSR {
	R := m.Clone()
	floats.Scale(alpha, R.raw.Values)
	return R
}

/*
Axpy returns y + alpha x. When x and y share their nonzero pattern the values are combined in place
of a copy of y, otherwise the result's pattern is the union of both. Stored entries that sum to zero
stay stored.
*/
func Axpy(y *CSR, alpha float64, x *CSR) (R *CSR, err error) {
	if y.Rows() != x.Rows() {
		err = fmt.Errorf("%w: axpy of %d rows into %d rows", ErrDimensionMismatch, x.Rows(), y.Rows())
		return
	}
	if ComparePattern(x, y) == PatternSame {
		R = y.Clone()
		floats.AddScaled(R.raw.Values, alpha, x.raw.Values)
		return
	}
	acc := NewAccumulator(WithDims(y.Rows(), 0))
	y.DoNonZero(func(r, c int, v float64) { acc.Add(r, c, v) })
	x.DoNonZero(func(r, c int, v float64) { acc.Add(r, c, alpha*v) })
	return acc.ToCSR()
}

func Add(a, b *CSR) (*CSR, error) { return Axpy(a, 1, b) }
func Sub(a, b *CSR) (*CSR, error) { return Axpy(a, -1, b) }

// MulVec returns m x, x needs at least Cols entries
func MulVec(m Matrix, x []float64) (y []float64, err error) {
	if len(x) < m.Cols() {
		err = fmt.Errorf("%w: vector of length %d for %d columns", ErrDimensionMismatch, len(x), m.Cols())
		return
	}
	y = make([]float64, m.Rows())
	for r := range y {
		m.DoRowNonZero(r, func(r, c int, v float64) {
			y[r] += v * x[c]
		})
	}
	return
}

// MulTransVec returns the transpose of m times x, that is the row vector x times m
func MulTransVec(m Matrix, x []float64) (y []float64, err error) {
	if len(x) != m.Rows() {
		err = fmt.Errorf("%w: vector of length %d for %d rows", ErrDimensionMismatch, len(x), m.Rows())
		return
	}
	y = make([]float64, m.Cols())
	m.DoNonZero(func(r, c int, v float64) {
		y[c] += v * x[r]
	})
	return
}

/*
Transpose returns the transpose of m, which has cols rows. The logical column count of m is not
stored, so cols == 0 uses the Cols estimate and drops trailing empty columns. It is a counting sort
over the columns.
*/
func Transpose(m *CSR, cols int) (T *CSR, err error) {
	var (
		u    = m.raw
		rows = u.Cols()
		nnz  = u.Nonzeros
	)
	switch {
	case cols == 0:
	case cols < rows:
		err = fmt.Errorf("%w: %d columns declared, column %d is stored", ErrDimensionMismatch, cols, rows-1)
		return
	default:
		rows = cols
	}
	var (
		rowOffset = make([]int, rows+1)
		colIndex  = make([]int, nnz)
		values    = make([]float64, nnz)
	)
	for _, c := range u.ColIndex {
		rowOffset[c+1]++
	}
	for r := 0; r < rows; r++ {
		rowOffset[r+1] += rowOffset[r]
	}
	next := slices.Clone(rowOffset[:rows])
	u.DoNonZero(func(r, c int, v float64) {
		k := next[c]
		colIndex[k], values[k] = r, v
		next[c]++
	})
	T = &CSR{
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
