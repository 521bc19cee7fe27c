package bitvecgo

import (
	"unsafe"

	"github.com/hupe1980/bitvecgo/block"
	"github.com/hupe1980/bitvecgo/lane"
)

// Raw-buffer boundary. These entry points trust the caller's pointer
// and length; they exist for interop with externally owned buffers
// (arena allocations, foreign memory). The safe constructors in
// bitvec.go should be preferred everywhere else.

// FromRawCopy builds a vector of length nbits by copying bufferLen lane
// values starting at ptr. The data is copied; the buffer may be
// released afterwards.
//
// The caller must guarantee that ptr is non-nil, properly aligned for
// E, and valid for at least bufferLen lanes; violating any of these is
// undefined behavior, not a recoverable error. The one locally
// checkable precondition, bufferLen covering ceil(nbits / lane width)
// lanes, panics when violated.
func FromRawCopy[B block.Block[B, E], E lane.Element](ptr *E, bufferLen, nbits int) *BitVec[B, E] {
	lw := lane.Width[E]()
	need := (nbits + lw - 1) / lw
	if need > bufferLen {
		panicf("raw buffer too short: %d lanes, need %d", bufferLen, need)
	}
	return fromLanesPadded[B, E](unsafe.Slice(ptr, bufferLen)[:need], nbits)
}

// SetRawCopy replaces the vector's content by copying bufferLen blocks
// starting at ptr and setting the logical length to nbits, then
// re-normalizes the tail.
//
// Same trust contract as FromRawCopy: ptr must be valid and aligned for
// at least bufferLen blocks. The block-count precondition is checked.
func (v *BitVec[B, E]) SetRawCopy(ptr *B, bufferLen, nbits int) {
	need := blocksFor[B, E](nbits)
	if need > bufferLen {
		panicf("raw buffer too short: %d blocks, need %d", bufferLen, need)
	}

	src := unsafe.Slice(ptr, bufferLen)
	if cap(v.storage) < need {
		v.storage = make([]B, need)
	} else {
		v.storage = v.storage[:need]
	}
	copy(v.storage, src[:need])
	v.nbits = nbits

	if need > 0 {
		_, ln, bit := bitPosition[B, E](nbits)
		v.clearTail(need-1, ln, bit)
	}
}
