package linalg

import (
	"fmt"
	"slices"

	"github.com/notargets/reslib/types"
)

// Triple is one coordinate entry of a matrix under construction
type Triple struct {
	Row, Col int
	Value    float64
}

func (t Triple) Key() types.CoordKey {
	return types.NewCoordKey(t.Row, t.Col)
}

func (t Triple) String() string {
	return fmt.Sprintf("(%d,%d) = %g", t.Row, t.Col, t.Value)
}

// compareTriples orders triples row major
func compareTriples(a, b Triple) int {
	switch {
	case a.Row != b.Row:
		return a.Row - b.Row
	default:
		return a.Col - b.Col
	}
}

func checkCoord(r, c int) (err error) {
	if r < 0 || c < 0 || !types.CanPack(r, c) {
		err = fmt.Errorf("%w: coordinate (%d,%d)", ErrOutOfRange, r, c)
	}
	return
}

// sortedUnique sorts triples row major and keeps the last written value of every coordinate
func sortedUnique(T []Triple) []Triple {
	slices.SortStableFunc(T, compareTriples)
	var (
		w = 0
	)
	for i := range T {
		if w > 0 && compareTriples(T[w-1], T[i]) == 0 {
			T[w-1] = T[i]
			continue
		}
		T[w] = T[i]
		w++
	}
	return T[:w]
}
