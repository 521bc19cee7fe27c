package bitvecgo

import (
	"fmt"

	"github.com/hupe1980/bitvecgo/block"
	"github.com/hupe1980/bitvecgo/lane"
)

func panicf(format string, args ...any) {
	panic("bitvecgo: " + fmt.Sprintf(format, args...))
}

// Get returns the bit at index. The second result is false when index
// is negative or at or beyond the logical length; the vector is never
// grown by a read.
func (v *BitVec[B, E]) Get(index int) (bool, bool) {
	if index < 0 || index >= v.nbits {
		return false, false
	}
	blk, ln, bit := bitPosition[B, E](index)
	return lane.Bit(v.storage[blk].Lane(ln), uint(bit)), true
}

// At returns the bit at index and panics when index is out of range.
// Use Get when the caller has not already validated the bounds.
func (v *BitVec[B, E]) At(index int) bool {
	if index < 0 || index >= v.nbits {
		panicf("index %d out of range [0, %d)", index, v.nbits)
	}
	blk, ln, bit := bitPosition[B, E](index)
	return lane.Bit(v.storage[blk].Lane(ln), uint(bit))
}

// Set writes flag at index. When index is at or beyond the current
// length the vector silently grows to length index+1, zero-extending
// new storage; growth is monotonic and not an error.
func (v *BitVec[B, E]) Set(index int, flag bool) {
	if index < 0 {
		panicf("negative index %d", index)
	}
	if index >= v.nbits {
		need := blocksFor[B, E](index + 1)
		for len(v.storage) < need {
			var zero B
			v.storage = append(v.storage, zero)
		}
		v.nbits = index + 1
	}
	blk, ln, bit := bitPosition[B, E](index)
	b := v.storage[blk]
	v.storage[blk] = b.WithLane(ln, lane.SetBit(b.Lane(ln), uint(bit), flag))
}

// SetAll sets every existing bit to flag. The length is unchanged.
func (v *BitVec[B, E]) SetAll(flag bool) {
	if flag {
		v.SetAllTrue()
	} else {
		v.SetAllFalse()
	}
}

// SetAllFalse clears every bit.
func (v *BitVec[B, E]) SetAllFalse() {
	clear(v.storage)
}

// SetAllTrue sets every bit below the logical length, leaving the tail
// beyond it zero.
func (v *BitVec[B, E]) SetAllTrue() {
	full := block.Full[B, E]()
	for i := range v.storage {
		v.storage[i] = full
	}
	if len(v.storage) > 0 {
		_, ln, bit := bitPosition[B, E](v.nbits)
		v.clearTail(len(v.storage)-1, ln, bit)
	}
}

// Resize changes the logical length to nbits in place. New bits are
// filled with fill; surviving bits keep their values. Shrinking
// truncates storage and re-masks the new tail.
func (v *BitVec[B, E]) Resize(nbits int, fill bool) {
	if nbits < 0 {
		panicf("negative length %d", nbits)
	}

	i, ln, bit := bitPosition[B, E](nbits)
	newBlocks := i
	if ln > 0 || bit > 0 {
		newBlocks++
	}

	if newBlocks <= len(v.storage) {
		v.storage = v.storage[:newBlocks]
	} else {
		var fillBlock B
		if fill {
			fillBlock = block.Full[B, E]()
		}
		for len(v.storage) < newBlocks {
			v.storage = append(v.storage, fillBlock)
		}
	}

	switch {
	case nbits < v.nbits:
		v.clearTail(i, ln, bit)
	case fill:
		oldI, oldLn, oldBit := bitPosition[B, E](v.nbits)
		if oldI < i {
			// Growth crossed into new blocks: finish the old
			// boundary block, then mask the new tail. Interior
			// blocks were appended fully set above.
			if oldLn > 0 || oldBit > 0 {
				var z B
				v.storage[oldI] = fillTailBlock[B, E](v.storage[oldI], oldLn, oldBit, z.Lanes())
			}
			v.clearTail(i, ln, bit)
		} else if ln > 0 || bit > 0 {
			v.fixTail(i, oldLn, oldBit, ln, bit)
		}
	}
	v.nbits = nbits
}

// fixTail handles ones-fill growth that stays within the boundary
// block: set the newly exposed range [old length, new length), then
// mask everything at or beyond the new length.
func (v *BitVec[B, E]) fixTail(i, oldLn, oldBit, ln, bit int) {
	b := v.storage[i]
	if oldLn < ln {
		lnMax := ln
		if bit > 0 {
			lnMax++
		}
		b = fillTailBlock[B, E](b, oldLn, oldBit, lnMax)
	} else if bit > oldBit {
		b = b.WithLane(ln, b.Lane(ln)|lane.ClearLowBits(lane.Max[E](), uint(oldBit)))
	}
	v.storage[i] = clearTailBlock[B, E](b, ln, bit)
}

// ShrinkTo truncates the vector to nbits. It is strictly a truncation:
// nbits must be smaller than the current length, anything else is a
// contract violation and panics.
func (v *BitVec[B, E]) ShrinkTo(nbits int) {
	if nbits >= v.nbits {
		panicf("shrink target %d not below current length %d", nbits, v.nbits)
	}
	v.Resize(nbits, false)
}
