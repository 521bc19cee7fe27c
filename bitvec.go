package bitvecgo

import (
	"iter"
	"slices"

	"github.com/hupe1980/bitvecgo/block"
	"github.com/hupe1980/bitvecgo/lane"
)

// BitVec is a growable bit-set stored as a sequence of fixed-width
// blocks. B is the block shape, E its lane type.
//
// Invariants, maintained by every exported operation:
//   - len(storage) == ceil(nbits / block width)
//   - every storage bit at position >= nbits is zero
type BitVec[B block.Block[B, E], E lane.Element] struct {
	storage []B
	nbits   int
}

// BitVec256 is the default shape: 256-bit blocks of four 64-bit lanes.
type BitVec256 = BitVec[block.U64x4, uint64]

// BitVec128 uses 128-bit blocks of two 64-bit lanes.
type BitVec128 = BitVec[block.U64x2, uint64]

func blockBits[B block.Block[B, E], E lane.Element]() int {
	return block.BitWidth[B, E]()
}

func blocksFor[B block.Block[B, E], E lane.Element](nbits int) int {
	bb := blockBits[B, E]()
	return (nbits + bb - 1) / bb
}

// bitPosition decomposes a logical bit position into (block index,
// lane index within the block, bit offset within the lane). Every
// read, write, resize and count routine derives its coordinates from
// this one decomposition.
func bitPosition[B block.Block[B, E], E lane.Element](pos int) (blk, ln, bit int) {
	bb := blockBits[B, E]()
	lw := lane.Width[E]()
	return pos / bb, pos % bb / lw, pos % lw
}

// clearTailBlock zeroes every bit of b at or above (ln, bit).
func clearTailBlock[B block.Block[B, E], E lane.Element](b B, ln, bit int) B {
	var zero E
	if bit > 0 {
		b = b.WithLane(ln, lane.ClearHighBits(b.Lane(ln), uint(lane.Width[E]()-bit)))
		ln++
	}
	for i := ln; i < b.Lanes(); i++ {
		b = b.WithLane(i, zero)
	}
	return b
}

// fillTailBlock sets every bit of b at or above (ln, bit) and below
// lane lnMax.
func fillTailBlock[B block.Block[B, E], E lane.Element](b B, ln, bit, lnMax int) B {
	if bit > 0 {
		b = b.WithLane(ln, b.Lane(ln)|lane.ClearLowBits(lane.Max[E](), uint(bit)))
		ln++
	}
	for i := ln; i < lnMax; i++ {
		b = b.WithLane(i, lane.Max[E]())
	}
	return b
}

// clearTail re-establishes the tail-zero invariant on the block at
// index i, given the (ln, bit) remainder of the logical length.
// Called at every mutation exit point that can expose stale tail bits.
func (v *BitVec[B, E]) clearTail(i, ln, bit int) {
	if ln > 0 || bit > 0 {
		v.storage[i] = clearTailBlock[B, E](v.storage[i], ln, bit)
	}
}

// Zeros returns a vector of length nbits with every bit clear.
func Zeros[B block.Block[B, E], E lane.Element](nbits int) *BitVec[B, E] {
	return &BitVec[B, E]{
		storage: make([]B, blocksFor[B, E](nbits)),
		nbits:   nbits,
	}
}

// Ones returns a vector of length nbits with every bit set.
func Ones[B block.Block[B, E], E lane.Element](nbits int) *BitVec[B, E] {
	bb := blockBits[B, E]()
	full := block.Full[B, E]()

	storage := make([]B, 0, blocksFor[B, E](nbits))
	for range nbits / bb {
		storage = append(storage, full)
	}
	if nbits%bb > 0 {
		_, ln, bit := bitPosition[B, E](nbits)
		storage = append(storage, clearTailBlock[B, E](full, ln, bit))
	}
	return &BitVec[B, E]{storage: storage, nbits: nbits}
}

// FromBoolSeq packs a finite sequence of booleans into a vector, in
// order. The resulting length equals the sequence length.
func FromBoolSeq[B block.Block[B, E], E lane.Element](seq iter.Seq[bool]) *BitVec[B, E] {
	var cur B
	bb := blockBits[B, E]()
	lw := lane.Width[E]()
	lanes := make([]E, cur.Lanes())

	var storage []B
	nbits := 0
	for on := range seq {
		if on {
			lanes[nbits%bb/lw] |= E(1) << (nbits % lw)
		}
		nbits++
		if nbits%bb == 0 {
			storage = append(storage, cur.FromLanes(lanes))
			clear(lanes)
		}
	}
	if nbits%bb > 0 {
		storage = append(storage, cur.FromLanes(lanes))
	}
	return &BitVec[B, E]{storage: storage, nbits: nbits}
}

// FromBools packs a slice of booleans into a vector.
func FromBools[B block.Block[B, E], E lane.Element](bools []bool) *BitVec[B, E] {
	return FromBoolSeq[B, E](slices.Values(bools))
}

// FromIndices builds a vector containing the given indices. The vector
// starts at length len(indices) and grows as needed, so the final
// length is max(len(indices), max(indices)+1).
func FromIndices[B block.Block[B, E], E lane.Element](indices []int) *BitVec[B, E] {
	v := Zeros[B, E](len(indices))
	for _, i := range indices {
		v.Set(i, true)
	}
	return v
}

// FromIndicesWithLength builds a vector of length nbits containing the
// given indices. An index at or beyond nbits grows the vector, as Set
// does.
func FromIndicesWithLength[B block.Block[B, E], E lane.Element](indices []int, nbits int) *BitVec[B, E] {
	v := Zeros[B, E](nbits)
	for _, i := range indices {
		v.Set(i, true)
	}
	return v
}

// FromLanes builds a vector of length nbits by copying lane values from
// src. src must hold at least ceil(nbits / lane width) lanes; a shorter
// slice is a contract violation and panics. The final partial block is
// zero-padded and the tail beyond nbits is cleared.
func FromLanes[B block.Block[B, E], E lane.Element](src []E, nbits int) *BitVec[B, E] {
	lw := lane.Width[E]()
	need := (nbits + lw - 1) / lw
	if len(src) < need {
		panicf("lane buffer too short: %d lanes, need %d", len(src), need)
	}
	return fromLanesPadded[B, E](src[:need], nbits)
}

// fromLanesPadded regroups a flat lane sequence into blocks, allowing
// src to be shorter than the storage (missing lanes read as zero), and
// normalizes the tail. Shared by FromLanes and the decode path.
func fromLanesPadded[B block.Block[B, E], E lane.Element](src []E, nbits int) *BitVec[B, E] {
	var cur B
	perBlock := cur.Lanes()
	nblocks := blocksFor[B, E](nbits)

	storage := make([]B, nblocks)
	for i := range storage {
		lo := i * perBlock
		if lo >= len(src) {
			break
		}
		hi := min(lo+perBlock, len(src))
		storage[i] = cur.FromLanes(src[lo:hi])
	}

	v := &BitVec[B, E]{storage: storage, nbits: nbits}
	if nblocks > 0 {
		_, ln, bit := bitPosition[B, E](nbits)
		v.clearTail(nblocks-1, ln, bit)
	}
	return v
}

// Len returns the logical length in bits.
func (v *BitVec[B, E]) Len() int {
	return v.nbits
}

// StorageLen returns the number of blocks backing the vector.
func (v *BitVec[B, E]) StorageLen() int {
	return len(v.storage)
}

// StorageCap returns the block capacity of the backing storage.
func (v *BitVec[B, E]) StorageCap() int {
	return cap(v.storage)
}

// Clone returns an independent copy sharing no storage.
func (v *BitVec[B, E]) Clone() *BitVec[B, E] {
	return &BitVec[B, E]{
		storage: slices.Clone(v.storage),
		nbits:   v.nbits,
	}
}

// Lanes returns a copy of the full backing storage as a flat lane
// sequence, in bit-position order. Its length is StorageLen times the
// block's lane count.
func (v *BitVec[B, E]) Lanes() []E {
	var cur B
	perBlock := cur.Lanes()
	out := make([]E, len(v.storage)*perBlock)
	for i, b := range v.storage {
		b.StoreLanes(out[i*perBlock : (i+1)*perBlock])
	}
	return out
}

// trimmedLanes returns the lane sequence with trailing all-zero lanes
// of the final block omitted, keeping the encoded size proportional to
// logical content. Fully-zero trailing blocks before the last one are
// kept so positions stay decodable.
func (v *BitVec[B, E]) trimmedLanes() []E {
	var zero E
	out := v.Lanes()
	var cur B
	perBlock := cur.Lanes()
	floor := max(len(out)-perBlock, 0)
	end := len(out)
	for end > floor && out[end-1] == zero {
		end--
	}
	return out[:end]
}
