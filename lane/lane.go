// Package lane defines the scalar capability a block lane must provide:
// fixed-width unsigned integers with bitwise algebra, wrap-around shifts,
// population count, leading-zero count, and helpers to clear the bits
// above or below a given offset.
//
// The helpers are free generic functions dispatching on the concrete lane
// width. They are the single place the rest of the module reaches for
// per-lane bit arithmetic.
package lane

import "math/bits"

// Element is the set of types usable as a block lane.
type Element interface {
	uint8 | uint16 | uint32 | uint64
}

// Width returns the bit width of the lane type E.
func Width[E Element]() int {
	switch any(E(0)).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// Max returns the lane value with every bit set.
func Max[E Element]() E {
	return ^E(0)
}

// OnesCount returns the number of set bits in v.
func OnesCount[E Element](v E) int {
	switch x := any(v).(type) {
	case uint8:
		return bits.OnesCount8(x)
	case uint16:
		return bits.OnesCount16(x)
	case uint32:
		return bits.OnesCount32(x)
	default:
		return bits.OnesCount64(any(v).(uint64))
	}
}

// LeadingZeros returns the number of leading zero bits in v;
// Width[E]() for v == 0.
func LeadingZeros[E Element](v E) int {
	switch x := any(v).(type) {
	case uint8:
		return bits.LeadingZeros8(x)
	case uint16:
		return bits.LeadingZeros16(x)
	case uint32:
		return bits.LeadingZeros32(x)
	default:
		return bits.LeadingZeros64(any(v).(uint64))
	}
}

// ShiftLeft shifts v left by n bits with the shift amount reduced modulo
// the lane width (wrap-around shift semantics).
func ShiftLeft[E Element](v E, n uint) E {
	return v << (n % uint(Width[E]()))
}

// ShiftRight shifts v right by n bits with the shift amount reduced
// modulo the lane width.
func ShiftRight[E Element](v E, n uint) E {
	return v >> (n % uint(Width[E]()))
}

// ClearHighBits clears the n highest bits of v. n may equal the lane
// width, in which case the result is zero.
func ClearHighBits[E Element](v E, n uint) E {
	return v << n >> n
}

// ClearLowBits clears the n lowest bits of v. n may equal the lane
// width, in which case the result is zero.
func ClearLowBits[E Element](v E, n uint) E {
	return v >> n << n
}

// LowMask returns a lane with the n lowest bits set.
func LowMask[E Element](n uint) E {
	if n >= uint(Width[E]()) {
		return Max[E]()
	}
	return E(1)<<n - 1
}

// Bit reports whether the bit at offset off is set in v.
func Bit[E Element](v E, off uint) bool {
	return v>>off&1 != 0
}

// SetBit returns v with the bit at offset off set or cleared.
func SetBit[E Element](v E, off uint, flag bool) E {
	if flag {
		return v | E(1)<<off
	}
	return v &^ (E(1) << off)
}
