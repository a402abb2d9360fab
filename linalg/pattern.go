package linalg

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/notargets/reslib/types"
)

// PatternRelation describes how the nonzero pattern of one matrix relates to another's
type PatternRelation uint8

const (
	PatternDifferent PatternRelation = iota
	// PatternSubset: every stored coordinate of the first matrix is stored in the second
	PatternSubset
	PatternSame
)

func (pr PatternRelation) String() string {
	switch pr {
	case PatternSubset:
		return "Subset"
	case PatternSame:
		return "Same"
	}
	return "Different"
}

// Pattern returns the set of stored coordinates of m as packed CoordKeys
func Pattern(m Matrix) (bm *roaring64.Bitmap) {
	bm = roaring64.New()
	m.DoNonZero(func(r, c int, _ float64) {
		bm.Add(uint64(types.NewCoordKey(r, c)))
	})
	return
}

// ComparePattern relates the pattern of a to the pattern of b
func ComparePattern(a, b Matrix) PatternRelation {
	var (
		pa, pb = Pattern(a), Pattern(b)
		na     = pa.GetCardinality()
	)
	switch common := pa.AndCardinality(pb); {
	case common == na && na == pb.GetCardinality():
		return PatternSame
	case common == na:
		return PatternSubset
	}
	return PatternDifferent
}
