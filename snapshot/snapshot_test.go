package snapshot

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/reslib/linalg"
)

func referenceMatrix(t *testing.T) *linalg.CSR {
	m, err := linalg.NewBuilder(linalg.WithDims(6, 6)).
		Add(0, 0, 10.0).
		Add(0, 5, 5.72).
		Add(1, 0, 0.2).
		Add(2, 2, 4.2).
		Add(3, 3, 3.4).
		Add(4, 2, 3.14).
		ToCSR()
	require.NoError(t, err)
	return m
}

// tridiagonal Laplacian, compresses well
func laplacian(t *testing.T, n int) *linalg.CSR {
	b := linalg.NewBuilder(linalg.WithDims(n, n))
	for i := 0; i < n; i++ {
		if i > 0 {
			b.Add(i, i-1, -1)
		}
		b.Add(i, i, 2)
		if i < n-1 {
			b.Add(i, i+1, -1)
		}
	}
	m, err := b.ToCSR()
	require.NoError(t, err)
	return m
}

func TestRoundTrip(t *testing.T) {
	for _, codec := range []Codec{CodecNone, CodecZstd, CodecLZ4} {
		for _, m := range []*linalg.CSR{referenceMatrix(t), laplacian(t, 2000)} {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, m, codec), codec.String())
			raw := buf.Bytes()
			assert.Equal(t, []byte("RCSR"), raw[:4])
			assert.Equal(t, byte(Version), raw[4])
			if m.Rows() == 2000 {
				// the Laplacian shrinks with both codecs
				assert.Equal(t, byte(codec), raw[5], codec.String())
				if codec != CodecNone {
					assert.Less(t, len(raw), headerSize+8*(3+2001+2*m.Nonzeros()))
				}
			}
			got, err := Read(&buf)
			require.NoError(t, err, codec.String())
			assert.True(t, linalg.Identical(m, got), codec.String())
			require.NoError(t, got.Get().Validate())
		}
	}
	{ // An all zero matrix keeps its rows
		m, err := linalg.NewBuilder(linalg.WithDims(4, 4)).ToCSR()
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, m, CodecZstd))
		got, err := Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Rows())
		assert.Equal(t, 0, got.Nonzeros())
	}
	{ // Released matrices can not be written
		m := referenceMatrix(t)
		m.Release()
		assert.ErrorIs(t, Write(&bytes.Buffer{}, m, CodecNone), linalg.ErrEmpty)
	}
}

func TestCorruption(t *testing.T) {
	snapshot := func(codec Codec) []byte {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, laplacian(t, 500), codec))
		return buf.Bytes()
	}
	read := func(raw []byte) error {
		_, err := Read(bytes.NewReader(raw))
		return err
	}
	for _, codec := range []Codec{CodecNone, CodecZstd, CodecLZ4} {
		{ // Flipped payload bit
			raw := snapshot(codec)
			raw[len(raw)-3] ^= 0x10
			assert.ErrorIs(t, read(raw), ErrCorrupt, codec.String())
		}
		{ // Truncated block
			raw := snapshot(codec)
			assert.ErrorIs(t, read(raw[:len(raw)-1]), ErrCorrupt, codec.String())
			assert.ErrorIs(t, read(raw[:headerSize-2]), ErrCorrupt, codec.String())
		}
	}
	{
		raw := snapshot(CodecNone)
		raw[0] = 'X'
		assert.ErrorIs(t, read(raw), ErrCorrupt)
	}
	{
		raw := snapshot(CodecNone)
		raw[4] = Version + 1
		assert.ErrorIs(t, read(raw), ErrVersion)
	}
	{ // A consistent checksum does not hide broken CSR arrays
		raw := snapshot(CodecNone)
		payload := raw[headerSize:]
		// first column index of row 0 becomes 7, past the next one
		off := 8 * (3 + 501)
		binary.LittleEndian.PutUint64(payload[off:], 7)
		binary.LittleEndian.PutUint32(raw[24:], crc32.ChecksumIEEE(payload))
		assert.ErrorIs(t, read(raw), ErrCorrupt)
	}
}

func TestOversizedHeader(t *testing.T) {
	forge := func(codec Codec, size, stored uint64, block []byte) []byte {
		var buf bytes.Buffer
		h := header{Magic: magic, Version: Version, Codec: codec, Size: size, Stored: stored}
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, &h))
		buf.Write(block)
		return buf.Bytes()
	}
	read := func(raw []byte) error {
		_, err := Read(bytes.NewReader(raw))
		return err
	}
	{ // Sizes far past the bytes present fail without allocating them
		for _, codec := range []Codec{CodecNone, CodecZstd, CodecLZ4} {
			raw := forge(codec, 1<<39, 1<<39, []byte{1, 2, 3, 4})
			assert.ErrorIs(t, read(raw), ErrCorrupt, codec.String())
		}
		assert.ErrorIs(t, read(forge(CodecNone, 1<<41, 4, []byte{1, 2, 3, 4})), ErrCorrupt)
	}
	{ // Decoded sizes the block cannot produce
		assert.ErrorIs(t, read(forge(CodecNone, 8, 4, []byte{1, 2, 3, 4})), ErrCorrupt)
		assert.ErrorIs(t, read(forge(CodecLZ4, 1<<39, 4, []byte{1, 2, 3, 4})), ErrCorrupt)
		assert.ErrorIs(t, read(forge(Codec(7), 4, 4, []byte{1, 2, 3, 4})), ErrCodec)
	}
	{ // A zstd block that expands past the declared size
		enc := getZstdEncoder()
		block := enc.EncodeAll(make([]byte, 1<<20), nil)
		zstdEncoderPool.Put(enc)
		raw := forge(CodecZstd, 1024, uint64(len(block)), block)
		assert.ErrorIs(t, read(raw), ErrCorrupt)
		raw = forge(CodecZstd, 1<<39, uint64(len(block)), block)
		assert.ErrorIs(t, read(raw), ErrCorrupt)
	}
}

func TestParseCodec(t *testing.T) {
	c, err := ParseCodec(" ZSTD")
	require.NoError(t, err)
	assert.Equal(t, CodecZstd, c)
	c, err = ParseCodec("lz4")
	require.NoError(t, err)
	assert.Equal(t, CodecLZ4, c)
	_, err = ParseCodec("gzip")
	assert.ErrorIs(t, err, ErrCodec)
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, referenceMatrix(t), Codec(9)), ErrCodec)
}
