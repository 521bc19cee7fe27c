package codec

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(fmt.Sprintf("codec: create zstd encoder: %v", err))
		}

		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			panic(fmt.Sprintf("codec: create zstd decoder: %v", err))
		}

		return dec
	},
}

// compressLZ4 compresses data as a single LZ4 block prefixed with the
// uncompressed size. Returns nil when the data is incompressible.
func compressLZ4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	buf := make([]byte, 4+bound)

	binary.LittleEndian.PutUint32(buf, uint32(len(data)))

	n, err := lz4.CompressBlock(data, buf[4:], nil)
	if err != nil {
		return nil, fmt.Errorf("codec: lz4 compress: %w", err)
	}

	if n == 0 || n >= len(data) {
		return nil, nil
	}

	return buf[:4+n], nil
}

func decompressLZ4(payload []byte) ([]byte, error) {
	if len(payload) < 4 {
		return nil, fmt.Errorf("%w: short lz4 header", ErrInvalidEncoding)
	}

	size := binary.LittleEndian.Uint32(payload)

	out := make([]byte, size)

	n, err := lz4.UncompressBlock(payload[4:], out)
	if err != nil {
		return nil, fmt.Errorf("codec: lz4 decompress: %w", err)
	}

	if n != int(size) {
		return nil, fmt.Errorf("%w: lz4 size mismatch, got %d want %d", ErrInvalidEncoding, n, size)
	}

	return out, nil
}

func compressZSTD(data []byte) []byte {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil)
}

func decompressZSTD(payload []byte) ([]byte, error) {
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("codec: zstd decompress: %w", err)
	}

	return out, nil
}
