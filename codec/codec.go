// Package codec serializes lane sequences into a compact binary form
// suitable for blob storage. The encoding is a one byte compression tag
// followed by the (optionally compressed) little-endian lane payload.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/bitvecgo/lane"
)

// Compression selects the payload compression applied by Marshal.
type Compression uint8

const (
	// None stores lanes uncompressed.
	None Compression = iota

	// LZ4 compresses the payload with LZ4 block compression.
	LZ4

	// ZSTD compresses the payload with Zstandard.
	ZSTD
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

var (
	// ErrInvalidEncoding is returned when the input is truncated or its
	// payload length is not a multiple of the lane width.
	ErrInvalidEncoding = errors.New("codec: invalid encoding")

	// ErrUnknownCompression is returned for an unrecognized compression tag.
	ErrUnknownCompression = errors.New("codec: unknown compression")
)

// Marshal encodes lanes little-endian and wraps them in a compression
// envelope. Trailing zero lanes are expected to be trimmed by the caller.
func Marshal[E lane.Element](lanes []E, c Compression) ([]byte, error) {
	raw := marshalLanes(lanes)

	switch c {
	case None:
		out := make([]byte, 1+len(raw))
		out[0] = byte(None)
		copy(out[1:], raw)

		return out, nil
	case LZ4:
		payload, err := compressLZ4(raw)
		if err != nil {
			return nil, err
		}

		if payload == nil {
			// Incompressible. Fall back to the uncompressed form.
			return Marshal(lanes, None)
		}

		out := make([]byte, 1+len(payload))
		out[0] = byte(LZ4)
		copy(out[1:], payload)

		return out, nil
	case ZSTD:
		payload := compressZSTD(raw)

		out := make([]byte, 1+len(payload))
		out[0] = byte(ZSTD)
		copy(out[1:], payload)

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}

// Unmarshal reverses Marshal, returning the decoded lane sequence.
func Unmarshal[E lane.Element](data []byte) ([]E, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: missing compression tag", ErrInvalidEncoding)
	}

	tag, payload := Compression(data[0]), data[1:]

	var (
		raw []byte
		err error
	)

	switch tag {
	case None:
		raw = payload
	case LZ4:
		raw, err = decompressLZ4(payload)
		if err != nil {
			return nil, err
		}
	case ZSTD:
		raw, err = decompressZSTD(payload)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(tag))
	}

	return unmarshalLanes[E](raw)
}

func marshalLanes[E lane.Element](lanes []E) []byte {
	width := lane.Width[E]() / 8

	out := make([]byte, len(lanes)*width)

	for i, ln := range lanes {
		off := i * width

		switch width {
		case 1:
			out[off] = byte(ln)
		case 2:
			binary.LittleEndian.PutUint16(out[off:], uint16(ln))
		case 4:
			binary.LittleEndian.PutUint32(out[off:], uint32(ln))
		case 8:
			binary.LittleEndian.PutUint64(out[off:], uint64(ln))
		}
	}

	return out
}

func unmarshalLanes[E lane.Element](raw []byte) ([]E, error) {
	width := lane.Width[E]() / 8

	if len(raw)%width != 0 {
		return nil, fmt.Errorf("%w: payload length %d is not a multiple of lane width %d", ErrInvalidEncoding, len(raw), width)
	}

	out := make([]E, len(raw)/width)

	for i := range out {
		off := i * width

		switch width {
		case 1:
			out[i] = E(raw[off])
		case 2:
			out[i] = E(binary.LittleEndian.Uint16(raw[off:]))
		case 4:
			out[i] = E(binary.LittleEndian.Uint32(raw[off:]))
		case 8:
			out[i] = E(binary.LittleEndian.Uint64(raw[off:]))
		}
	}

	return out, nil
}
