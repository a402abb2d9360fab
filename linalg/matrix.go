package linalg

// Matrix is the read surface shared by the CSR and every backend adapter
type Matrix interface {
	// Exists reports whether (r, c) is stored
	Exists(r, c int) bool
	// At returns the stored value at (r, c) or ErrOutOfRange
	At(r, c int) (float64, error)
	// DoRowNonZero calls fn for the stored entries of row r in column order
	DoRowNonZero(r int, fn func(r, c int, v float64))
	// DoNonZero calls fn for all stored entries in row major order
	DoNonZero(fn func(r, c int, v float64))
	Rows() int
	Cols() int
	Nonzeros() int
}

var _ Matrix = (*CSR)(nil)
