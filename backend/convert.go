package backend

import (
	"fmt"

	"github.com/notargets/reslib/linalg"
	"github.com/notargets/reslib/types"
)

type Kind = types.BackendKind

const (
	KindCSR    = types.Backend_CSR
	KindBowman = types.Backend_Bowman
	KindDense  = types.Backend_Dense
)

var (
	_ linalg.Matrix = Bowman{}
	_ linalg.Matrix = Dense{}
)

/*
Convert presents m through the requested backend. KindCSR returns m itself and KindBowman aliases
its storage, so both are only valid while m holds it. KindDense copies. cols is the logical column
count, 0 takes the Cols estimate of m.
*/
func Convert(m *linalg.CSR, kind Kind, cols int) (linalg.Matrix, error) {
	switch kind {
	case KindCSR:
		return m, nil
	case KindBowman:
		b, err := ViewBowman(m, cols)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindDense:
		d, err := ToDense(m, cols)
		if err != nil {
			return nil, err
		}
		return Dense{M: d}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
}

// columns resolves a requested column count against what m stores
func columns(m linalg.Matrix, cols int) (nc int, err error) {
	nc = m.Cols()
	switch {
	case cols == 0:
	case cols < nc:
		err = fmt.Errorf("%w: %d columns requested, column %d is stored", ErrShape, cols, nc-1)
		return
	default:
		nc = cols
	}
	if m.Rows() == 0 || nc == 0 {
		err = fmt.Errorf("%w: %d x %d matrix has no elements", ErrShape, m.Rows(), nc)
	}
	return
}
