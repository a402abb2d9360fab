package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type Codec uint8

const (
	CodecNone Codec = iota
	CodecZstd
	CodecLZ4
)

var CodecNameMap = map[string]Codec{
	"none": CodecNone,
	"raw":  CodecNone,
	"zstd": CodecZstd,
	"lz4":  CodecLZ4,
}

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	}
	return "unknown"
}

func ParseCodec(label string) (c Codec, err error) {
	var ok bool
	if c, ok = CodecNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("%w: %q", ErrCodec, label)
	}
	return
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(maxPayload))
	return dec
}

// compress returns the encoded block, nil when the codec does not shrink it
func compress(data []byte, codec Codec) (out []byte, err error) {
	switch codec {
	case CodecNone:
		return
	case CodecZstd:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		out = enc.EncodeAll(data, nil)
	case CodecLZ4:
		out = make([]byte, lz4.CompressBlockBound(len(data)))
		var n int
		if n, err = lz4.CompressBlock(data, out, nil); err != nil {
			return nil, err
		}
		// n == 0: incompressible
		out = out[:n]
	default:
		return nil, fmt.Errorf("%w: %d", ErrCodec, codec)
	}
	if len(out) == 0 || len(out) >= len(data) {
		out = nil
	}
	return
}

// lz4 block matches extend by at most 255 bytes per input byte
const lz4MaxRatio = 256

// checkSizes rejects headers whose decoded size cannot come from a block of stored bytes
func checkSizes(codec Codec, size, stored uint64) error {
	switch codec {
	case CodecNone:
		if size != stored {
			return fmt.Errorf("%w: raw block of %d bytes, header says %d", ErrCorrupt, stored, size)
		}
	case CodecLZ4:
		if size > lz4MaxRatio*stored {
			return fmt.Errorf("%w: %d bytes cannot decode from an lz4 block of %d", ErrCorrupt, size, stored)
		}
	case CodecZstd:
	default:
		return fmt.Errorf("%w: %d", ErrCodec, codec)
	}
	return nil
}

// decompress decodes block, failing unless it yields exactly size bytes. Zstd output is read as a
// stream capped at size+1 bytes so a block's own frame header cannot force an allocation.
func decompress(block []byte, codec Codec, size int) (data []byte, err error) {
	switch codec {
	case CodecZstd:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		if err = dec.Reset(bytes.NewReader(block)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if data, err = io.ReadAll(io.LimitReader(dec, int64(size)+1)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	case CodecLZ4:
		var n int
		data = make([]byte, size)
		if n, err = lz4.UncompressBlock(block, data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		data = data[:n]
	default:
		return nil, fmt.Errorf("%w: %d", ErrCodec, codec)
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: block decodes to %d bytes, header says %d", ErrCorrupt, len(data), size)
	}
	return
}
