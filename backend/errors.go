package backend

import "errors"

var (
	// ErrShape is returned when a matrix or vector does not have the shape an operation needs.
	ErrShape = errors.New("backend: incompatible shape")

	// ErrUnknownKind is returned by Convert for a backend kind it can not produce.
	ErrUnknownKind = errors.New("backend: unknown backend kind")

	// ErrUnknownMethod is returned by Solve for a factorization it does not implement.
	ErrUnknownMethod = errors.New("backend: unknown solver method")

	// ErrSingular is returned when the factorized system is singular to working precision.
	ErrSingular = errors.New("backend: matrix is singular")

	// ErrNotSymmetric is returned when Cholesky is requested for a non symmetric matrix.
	ErrNotSymmetric = errors.New("backend: matrix is not symmetric")

	// ErrNotPositiveDefinite is returned when the Cholesky factorization breaks down.
	ErrNotPositiveDefinite = errors.New("backend: matrix is not positive definite")
)
