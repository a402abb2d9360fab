package linalg

import "errors"

var (
	// ErrEmpty is returned when a builder without entries and without declared dimensions is committed.
	ErrEmpty = errors.New("linalg: builder has no entries and no declared rows")

	// ErrConsumed is returned by any builder operation after the builder was committed.
	ErrConsumed = errors.New("linalg: builder already committed")

	// ErrOutOfRange is returned for indices outside the matrix or for implicit zeros in checked access.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrPrecondition is the panic value of unchecked access to an implicit zero.
	ErrPrecondition = errors.New("linalg: precondition violated")

	// ErrMalformed is returned when raw CSR arrays do not satisfy the CSR invariants.
	ErrMalformed = errors.New("linalg: malformed CSR arrays")

	// ErrDimensionMismatch is returned for operands of incompatible shape or pattern.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrAllocation is returned when the requested storage can not be indexed.
	ErrAllocation = errors.New("linalg: storage can not be allocated")
)
