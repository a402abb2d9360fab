/*
Package snapshot persists committed CSR matrices.

A snapshot is a fixed header followed by one block:

	magic    [4]byte  "RCSR"
	version  uint8
	codec    uint8    codec of the block, CodecNone when compression did not help
	reserved [2]byte
	size     uint64   length of the decoded payload
	stored   uint64   length of the block as stored
	checksum uint32   CRC32 (IEEE) of the decoded payload

The payload is little endian: rows, cols and nonzeros as uint64, then the row offsets and column
indices as uint64 and the values as IEEE 754 bits.
*/
package snapshot

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/notargets/reslib/linalg"
)

const (
	Version    = 1
	headerSize = 28
	// upper bound on a payload read from a header, guards allocations on corrupt input
	maxPayload = 1 << 40
)

var magic = [4]byte{'R', 'C', 'S', 'R'}

type header struct {
	Magic    [4]byte
	Version  uint8
	Codec    Codec
	Reserved [2]byte
	Size     uint64
	Stored   uint64
	Checksum uint32
}

// Write stores m with the given codec. Cols is recorded as the Cols estimate of m.
func Write(w io.Writer, m *linalg.CSR, codec Codec) (err error) {
	if m.Empty() {
		return fmt.Errorf("%w: matrix holds no storage", linalg.ErrEmpty)
	}
	var (
		payload = encode(m)
		block   []byte
		h       = header{
			Magic:    magic,
			Version:  Version,
			Codec:    CodecNone,
			Size:     uint64(len(payload)),
			Checksum: crc32.ChecksumIEEE(payload),
		}
	)
	if block, err = compress(payload, codec); err != nil {
		return
	}
	if block == nil {
		block = payload
	} else {
		h.Codec = codec
	}
	h.Stored = uint64(len(block))
	if err = binary.Write(w, binary.LittleEndian, &h); err != nil {
		return
	}
	_, err = w.Write(block)
	return
}

// Read loads a matrix written by Write. Damaged input fails with ErrCorrupt.
func Read(r io.Reader) (m *linalg.CSR, err error) {
	var (
		h     header
		block []byte
		data  []byte
	)
	if err = binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	switch {
	case h.Magic != magic:
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, h.Magic[:])
	case h.Version != Version:
		return nil, fmt.Errorf("%w: version %d", ErrVersion, h.Version)
	case h.Size > maxPayload || h.Stored > maxPayload:
		return nil, fmt.Errorf("%w: block of %d bytes", ErrCorrupt, h.Stored)
	}
	if err = checkSizes(h.Codec, h.Size, h.Stored); err != nil {
		return
	}
	// grows with the bytes actually present, not with the header's claim
	if block, err = io.ReadAll(io.LimitReader(r, int64(h.Stored))); err != nil {
		return nil, fmt.Errorf("%w: block: %v", ErrCorrupt, err)
	}
	if uint64(len(block)) != h.Stored {
		return nil, fmt.Errorf("%w: block of %d bytes, header says %d", ErrCorrupt, len(block), h.Stored)
	}
	if h.Codec == CodecNone {
		data = block
	} else if data, err = decompress(block, h.Codec, int(h.Size)); err != nil {
		return
	}
	if uint64(len(data)) != h.Size {
		return nil, fmt.Errorf("%w: payload of %d bytes, header says %d", ErrCorrupt, len(data), h.Size)
	}
	if sum := crc32.ChecksumIEEE(data); sum != h.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch: expected 0x%08x, got 0x%08x", ErrCorrupt, h.Checksum, sum)
	}
	return decode(data)
}

func encode(m *linalg.CSR) []byte {
	var (
		u   = m.Get()
		buf = make([]byte, 0, 8*(3+u.Rows+1+2*u.Nonzeros))
		put = func(v uint64) {
			buf = binary.LittleEndian.AppendUint64(buf, v)
		}
	)
	put(uint64(u.Rows))
	put(uint64(m.Cols()))
	put(uint64(u.Nonzeros))
	for _, k := range u.RowOffset {
		put(uint64(k))
	}
	for _, c := range u.ColIndex {
		put(uint64(c))
	}
	for _, v := range u.Values {
		put(math.Float64bits(v))
	}
	return buf
}

func decode(data []byte) (m *linalg.CSR, err error) {
	next := func() (v uint64) {
		v = binary.LittleEndian.Uint64(data)
		data = data[8:]
		return
	}
	if len(data) < 24 {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrCorrupt, len(data))
	}
	var (
		rows, cols, nnz = next(), next(), next()
	)
	if rows > maxPayload || nnz > maxPayload || uint64(len(data)) != 8*(rows+1+2*nnz) {
		return nil, fmt.Errorf("%w: %d rows and %d nonzeros in %d bytes", ErrCorrupt, rows, nnz, len(data))
	}
	var (
		rowOffset = make([]int, rows+1)
		colIndex  = make([]int, nnz)
		values    = make([]float64, nnz)
	)
	for i := range rowOffset {
		rowOffset[i] = int(next())
	}
	for i := range colIndex {
		colIndex[i] = int(next())
	}
	for i := range values {
		values[i] = math.Float64frombits(next())
	}
	if m, err = linalg.NewCSR(int(rows), int(nnz), values, colIndex, rowOffset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if uint64(m.Cols()) > cols {
		return nil, fmt.Errorf("%w: column %d stored in a matrix of %d columns", ErrCorrupt, m.Cols()-1, cols)
	}
	return
}
