package types

import (
	"fmt"
	"math"
)

// MaxIndex is the largest row or column index that can be packed into a CoordKey
const MaxIndex = math.MaxUint32

/*
CoordKey stores a (row, col) matrix coordinate packed into one unsigned 64 bit word, row in the high
32 bits and col in the low 32 bits. Comparing two keys numerically orders them by row first, then by
column, which is exactly the row-major order a CSR compaction needs.
*/
type CoordKey uint64

func NewCoordKey(row, col int) (packed CoordKey) {
	if row < 0 || row > MaxIndex || col < 0 || col > MaxIndex {
		panic(fmt.Errorf("unable to pack coordinate into a uint64, have row %d and col %d as inputs",
			row, col))
	}
	packed = CoordKey(uint64(row)<<32 | uint64(col))
	return
}

// CanPack reports whether NewCoordKey accepts (row, col)
func CanPack(row, col int) bool {
	return row >= 0 && row <= MaxIndex && col >= 0 && col <= MaxIndex
}

func (ck CoordKey) Row() int { return int(ck >> 32) }
func (ck CoordKey) Col() int { return int(ck & math.MaxUint32) }

func (ck CoordKey) GetCoord() (row, col int) {
	return ck.Row(), ck.Col()
}

func (ck CoordKey) String() string {
	return fmt.Sprintf("(%d,%d)", ck.Row(), ck.Col())
}
