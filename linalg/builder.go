package linalg

import (
	"fmt"
	"log/slog"

	"github.com/notargets/reslib/utils"
)

type Option func(*settings)

type settings struct {
	rows, cols int
	logger     *slog.Logger
}

// WithDims declares the matrix dimensions. Entries outside are rejected and the committed matrix
// has exactly rows rows, including trailing empty ones. Zero leaves a dimension to be inferred.
func WithDims(rows, cols int) Option {
	return func(s *settings) {
		s.rows, s.cols = rows, cols
	}
}

// WithLogger sets the logger receiving the commit diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// builderState is shared by the insert and accumulate builders
type builderState struct {
	settings
	err      error
	consumed bool
}

func newBuilderState(opts []Option) (bs builderState) {
	for _, opt := range opts {
		opt(&bs.settings)
	}
	if bs.rows < 0 || bs.cols < 0 {
		bs.err = fmt.Errorf("%w: declared dimensions %d x %d", ErrOutOfRange, bs.rows, bs.cols)
	}
	return
}

// Err returns the first error met while adding entries
func (bs *builderState) Err() error { return bs.err }

// admit reports whether an entry at (r, c) may be recorded, recording the first failure
func (bs *builderState) admit(r, c int) bool {
	switch {
	case bs.err != nil:
		return false
	case bs.consumed:
		bs.err = ErrConsumed
		return false
	}
	if err := checkCoord(r, c); err != nil {
		bs.err = err
		return false
	}
	if (bs.rows > 0 && r >= bs.rows) || (bs.cols > 0 && c >= bs.cols) {
		bs.err = fmt.Errorf("%w: (%d,%d) is outside of the declared %d x %d matrix",
			ErrOutOfRange, r, c, bs.rows, bs.cols)
		return false
	}
	return true
}

// commitCheck marks the builder consumed, it fails if the builder already was or holds an error
func (bs *builderState) commitCheck() (err error) {
	if bs.consumed {
		return ErrConsumed
	}
	if bs.err != nil {
		return bs.err
	}
	bs.consumed = true
	return
}

func (bs *builderState) log() *utils.Logger {
	if bs.logger == nil {
		return utils.NoopLogger()
	}
	return &utils.Logger{Logger: bs.logger}
}

/*
Builder collects coordinate entries for a CSR matrix with insert semantics: when a coordinate is
written more than once the last write wins. It is meant to be filled from a single goroutine and
committed once with ToCSR.

Add and the bulk insertions return the receiver so calls can be chained. The first failure is kept
and reported by Err and ToCSR, later entries are ignored.
*/
type Builder struct {
	builderState
	triples []Triple
}

func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		builderState: newBuilderState(opts),
	}
}

func (b *Builder) Add(r, c int, v float64) *Builder {
	b.put(r, c, v)
	return b
}

func (b *Builder) put(r, c int, v float64) error {
	if b.admit(r, c) {
		b.triples = append(b.triples, Triple{r, c, v})
	}
	return b.err
}

func (b *Builder) AddTriples(T ...Triple) *Builder {
	for _, t := range T {
		b.Add(t.Row, t.Col, t.Value)
	}
	return b
}

// Insert adds a block given in CSR form: the entries of row i are values and colIndices in
// [rowOffsets[i], rowOffsets[i+1]).
func (b *Builder) Insert(values []float64, rowOffsets []int, colIndices []int) *Builder {
	if b.err == nil {
		b.err = insertCSR(b.put, values, rowOffsets, colIndices)
	}
	return b
}

// InsertRow adds values at the given columns of row r
func (b *Builder) InsertRow(r int, cols []int, values []float64) *Builder {
	if b.err == nil {
		b.err = insertRow(b.put, r, cols, values)
	}
	return b
}

// InsertRowAt adds values to consecutive columns of row r starting at column begin
func (b *Builder) InsertRowAt(r, begin int, values []float64) *Builder {
	for j, v := range values {
		b.Add(r, begin+j, v)
	}
	return b
}

// Len is the number of recorded entries, repeated coordinates included
func (b *Builder) Len() int { return len(b.triples) }

// Clone copies the current state, so matrices sharing a common part can diverge from it
func (b *Builder) Clone() *Builder {
	nb := &Builder{
		builderState: b.builderState,
		triples:      make([]Triple, len(b.triples)),
	}
	copy(nb.triples, b.triples)
	return nb
}

// ToCSR compacts the entries into a CSR matrix and consumes the builder
func (b *Builder) ToCSR() (m *CSR, err error) {
	if err = b.commitCheck(); err != nil {
		return
	}
	var (
		recorded = len(b.triples)
		T        = sortedUnique(b.triples)
	)
	b.triples = nil
	m, err = compact(T, b.rows)
	if err == nil {
		b.log().LogCompaction(m.Rows(), m.Nonzeros(), recorded-len(T), nil)
	} else {
		b.log().LogCompaction(0, 0, 0, err)
	}
	return
}

// insertCSR feeds a CSR block to add, row by row
func insertCSR(put func(r, c int, v float64) error, values []float64, rowOffsets, colIndices []int) (err error) {
	if len(values) != len(colIndices) {
		return fmt.Errorf("%w: %d values and %d column indices", ErrDimensionMismatch,
			len(values), len(colIndices))
	}
	for i := 0; i+1 < len(rowOffsets); i++ {
		lo, hi := rowOffsets[i], rowOffsets[i+1]
		if lo < 0 || hi < lo || hi > len(values) {
			return fmt.Errorf("%w: row offsets [%d, %d) of row %d", ErrMalformed, lo, hi, i)
		}
		for k := lo; k < hi; k++ {
			if err = put(i, colIndices[k], values[k]); err != nil {
				return
			}
		}
	}
	return
}

func insertRow(put func(r, c int, v float64) error, r int, cols []int, values []float64) (err error) {
	if len(values) != len(cols) {
		return fmt.Errorf("%w: %d values and %d column indices", ErrDimensionMismatch,
			len(values), len(cols))
	}
	for k, c := range cols {
		if err = put(r, c, values[k]); err != nil {
			return
		}
	}
	return
}
