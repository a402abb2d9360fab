package linalg

import (
	"maps"
	"slices"

	"github.com/notargets/reslib/types"
)

/*
Accumulator collects coordinate entries with accumulate semantics: values written to the same
coordinate are summed. Entries are held in a map keyed by the packed coordinate, whose numeric order
is the row major order of the committed matrix.
*/
type Accumulator struct {
	builderState
	entries map[types.CoordKey]float64
	added   int
}

func NewAccumulator(opts ...Option) *Accumulator {
	return &Accumulator{
		builderState: newBuilderState(opts),
		entries:      make(map[types.CoordKey]float64),
	}
}

// NewAccumulatorFrom continues an insert builder with accumulate semantics. The entries of b
// become the starting values and b is consumed.
func NewAccumulatorFrom(b *Builder) (a *Accumulator, err error) {
	if err = b.commitCheck(); err != nil {
		return
	}
	a = &Accumulator{
		builderState: builderState{settings: b.settings},
		entries:      make(map[types.CoordKey]float64, len(b.triples)),
	}
	for _, t := range sortedUnique(b.triples) {
		a.entries[t.Key()] = t.Value
	}
	a.added = len(b.triples)
	b.triples = nil
	return
}

func (a *Accumulator) Add(r, c int, v float64) *Accumulator {
	a.put(r, c, v)
	return a
}

func (a *Accumulator) put(r, c int, v float64) error {
	if a.admit(r, c) {
		a.entries[types.NewCoordKey(r, c)] += v
		a.added++
	}
	return a.err
}

func (a *Accumulator) AddTriples(T ...Triple) *Accumulator {
	for _, t := range T {
		a.Add(t.Row, t.Col, t.Value)
	}
	return a
}

// Insert adds a block given in CSR form, see Builder.Insert
func (a *Accumulator) Insert(values []float64, rowOffsets []int, colIndices []int) *Accumulator {
	if a.err == nil {
		a.err = insertCSR(a.put, values, rowOffsets, colIndices)
	}
	return a
}

func (a *Accumulator) InsertRow(r int, cols []int, values []float64) *Accumulator {
	if a.err == nil {
		a.err = insertRow(a.put, r, cols, values)
	}
	return a
}

func (a *Accumulator) InsertRowAt(r, begin int, values []float64) *Accumulator {
	for j, v := range values {
		a.Add(r, begin+j, v)
	}
	return a
}

// Len is the number of distinct coordinates
func (a *Accumulator) Len() int { return len(a.entries) }

func (a *Accumulator) Clone() *Accumulator {
	return &Accumulator{
		builderState: a.builderState,
		entries:      maps.Clone(a.entries),
		added:        a.added,
	}
}

// ToCSR compacts the summed entries into a CSR matrix and consumes the accumulator
func (a *Accumulator) ToCSR() (m *CSR, err error) {
	if err = a.commitCheck(); err != nil {
		return
	}
	var (
		keys = slices.Sorted(maps.Keys(a.entries))
		T    = make([]Triple, len(keys))
	)
	for i, key := range keys {
		r, c := key.GetCoord()
		T[i] = Triple{r, c, a.entries[key]}
	}
	a.entries = nil
	m, err = compact(T, a.rows)
	if err == nil {
		a.log().LogCompaction(m.Rows(), m.Nonzeros(), a.added-len(T), nil)
	} else {
		a.log().LogCompaction(0, 0, 0, err)
	}
	return
}
