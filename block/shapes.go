package block

import "math/bits"

// U8x16 is a 128-bit block of sixteen 8-bit lanes.
type U8x16 [16]uint8

// U16x8 is a 128-bit block of eight 16-bit lanes.
type U16x8 [8]uint16

// U32x4 is a 128-bit block of four 32-bit lanes.
type U32x4 [4]uint32

// U64x2 is a 128-bit block of two 64-bit lanes.
type U64x2 [2]uint64

// U32x8 is a 256-bit block of eight 32-bit lanes.
type U32x8 [8]uint32

// U64x4 is a 256-bit block of four 64-bit lanes.
type U64x4 [4]uint64

func (b U8x16) And(o U8x16) U8x16 {
	for i := range b {
		b[i] &= o[i]
	}
	return b
}

func (b U8x16) Or(o U8x16) U8x16 {
	for i := range b {
		b[i] |= o[i]
	}
	return b
}

func (b U8x16) Xor(o U8x16) U8x16 {
	for i := range b {
		b[i] ^= o[i]
	}
	return b
}

func (b U8x16) AndNot(o U8x16) U8x16 {
	for i := range b {
		b[i] &^= o[i]
	}
	return b
}

func (b U8x16) Not() U8x16 {
	for i := range b {
		b[i] = ^b[i]
	}
	return b
}

func (b U8x16) Lanes() int { return 16 }
func (b U8x16) Lane(i int) uint8 { return b[i] }
func (b U8x16) WithLane(i int, v uint8) U8x16 { b[i] = v; return b }
func (b U8x16) FromLanes(src []uint8) U8x16 { var r U8x16; copy(r[:], src); return r }
func (b U8x16) StoreLanes(dst []uint8) { copy(dst, b[:]) }

func (b U8x16) OnesCount() int {
	n := 0
	for i := range b {
		n += bits.OnesCount8(b[i])
	}
	return n
}

func (b U16x8) And(o U16x8) U16x8 {
	for i := range b {
		b[i] &= o[i]
	}
	return b
}

func (b U16x8) Or(o U16x8) U16x8 {
	for i := range b {
		b[i] |= o[i]
	}
	return b
}

func (b U16x8) Xor(o U16x8) U16x8 {
	for i := range b {
		b[i] ^= o[i]
	}
	return b
}

func (b U16x8) AndNot(o U16x8) U16x8 {
	for i := range b {
		b[i] &^= o[i]
	}
	return b
}

func (b U16x8) Not() U16x8 {
	for i := range b {
		b[i] = ^b[i]
	}
	return b
}

func (b U16x8) Lanes() int { return 8 }
func (b U16x8) Lane(i int) uint16 { return b[i] }
func (b U16x8) WithLane(i int, v uint16) U16x8 { b[i] = v; return b }
func (b U16x8) FromLanes(src []uint16) U16x8 { var r U16x8; copy(r[:], src); return r }
func (b U16x8) StoreLanes(dst []uint16) { copy(dst, b[:]) }

func (b U16x8) OnesCount() int {
	n := 0
	for i := range b {
		n += bits.OnesCount16(b[i])
	}
	return n
}

func (b U32x4) And(o U32x4) U32x4 {
	for i := range b {
		b[i] &= o[i]
	}
	return b
}

func (b U32x4) Or(o U32x4) U32x4 {
	for i := range b {
		b[i] |= o[i]
	}
	return b
}

func (b U32x4) Xor(o U32x4) U32x4 {
	for i := range b {
		b[i] ^= o[i]
	}
	return b
}

func (b U32x4) AndNot(o U32x4) U32x4 {
	for i := range b {
		b[i] &^= o[i]
	}
	return b
}

func (b U32x4) Not() U32x4 {
	for i := range b {
		b[i] = ^b[i]
	}
	return b
}

func (b U32x4) Lanes() int { return 4 }
func (b U32x4) Lane(i int) uint32 { return b[i] }
func (b U32x4) WithLane(i int, v uint32) U32x4 { b[i] = v; return b }
func (b U32x4) FromLanes(src []uint32) U32x4 { var r U32x4; copy(r[:], src); return r }
func (b U32x4) StoreLanes(dst []uint32) { copy(dst, b[:]) }

func (b U32x4) OnesCount() int {
	n := 0
	for i := range b {
		n += bits.OnesCount32(b[i])
	}
	return n
}

func (b U64x2) And(o U64x2) U64x2 {
	b[0] &= o[0]
	b[1] &= o[1]
	return b
}

func (b U64x2) Or(o U64x2) U64x2 {
	b[0] |= o[0]
	b[1] |= o[1]
	return b
}

func (b U64x2) Xor(o U64x2) U64x2 {
	b[0] ^= o[0]
	b[1] ^= o[1]
	return b
}

func (b U64x2) AndNot(o U64x2) U64x2 {
	b[0] &^= o[0]
	b[1] &^= o[1]
	return b
}

func (b U64x2) Not() U64x2 {
	b[0] = ^b[0]
	b[1] = ^b[1]
	return b
}

func (b U64x2) Lanes() int { return 2 }
func (b U64x2) Lane(i int) uint64 { return b[i] }
func (b U64x2) WithLane(i int, v uint64) U64x2 { b[i] = v; return b }
func (b U64x2) FromLanes(src []uint64) U64x2 { var r U64x2; copy(r[:], src); return r }
func (b U64x2) StoreLanes(dst []uint64) { copy(dst, b[:]) }

func (b U64x2) OnesCount() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1])
}

func (b U32x8) And(o U32x8) U32x8 {
	for i := range b {
		b[i] &= o[i]
	}
	return b
}

func (b U32x8) Or(o U32x8) U32x8 {
	for i := range b {
		b[i] |= o[i]
	}
	return b
}

func (b U32x8) Xor(o U32x8) U32x8 {
	for i := range b {
		b[i] ^= o[i]
	}
	return b
}

func (b U32x8) AndNot(o U32x8) U32x8 {
	for i := range b {
		b[i] &^= o[i]
	}
	return b
}

func (b U32x8) Not() U32x8 {
	for i := range b {
		b[i] = ^b[i]
	}
	return b
}

func (b U32x8) Lanes() int { return 8 }
func (b U32x8) Lane(i int) uint32 { return b[i] }
func (b U32x8) WithLane(i int, v uint32) U32x8 { b[i] = v; return b }
func (b U32x8) FromLanes(src []uint32) U32x8 { var r U32x8; copy(r[:], src); return r }
func (b U32x8) StoreLanes(dst []uint32) { copy(dst, b[:]) }

func (b U32x8) OnesCount() int {
	n := 0
	for i := range b {
		n += bits.OnesCount32(b[i])
	}
	return n
}

func (b U64x4) And(o U64x4) U64x4 {
	b[0] &= o[0]
	b[1] &= o[1]
	b[2] &= o[2]
	b[3] &= o[3]
	return b
}

func (b U64x4) Or(o U64x4) U64x4 {
	b[0] |= o[0]
	b[1] |= o[1]
	b[2] |= o[2]
	b[3] |= o[3]
	return b
}

func (b U64x4) Xor(o U64x4) U64x4 {
	b[0] ^= o[0]
	b[1] ^= o[1]
	b[2] ^= o[2]
	b[3] ^= o[3]
	return b
}

func (b U64x4) AndNot(o U64x4) U64x4 {
	b[0] &^= o[0]
	b[1] &^= o[1]
	b[2] &^= o[2]
	b[3] &^= o[3]
	return b
}

func (b U64x4) Not() U64x4 {
	b[0] = ^b[0]
	b[1] = ^b[1]
	b[2] = ^b[2]
	b[3] = ^b[3]
	return b
}

func (b U64x4) Lanes() int { return 4 }
func (b U64x4) Lane(i int) uint64 { return b[i] }
func (b U64x4) WithLane(i int, v uint64) U64x4 { b[i] = v; return b }
func (b U64x4) FromLanes(src []uint64) U64x4 { var r U64x4; copy(r[:], src); return r }
func (b U64x4) StoreLanes(dst []uint64) { copy(dst, b[:]) }

func (b U64x4) OnesCount() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) +
		bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}
