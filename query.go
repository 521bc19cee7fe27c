package bitvecgo

import "github.com/hupe1980/bitvecgo/lane"

// OnesCount returns the number of set bits. The tail-zero invariant
// guarantees no bit beyond the logical length is counted.
func (v *BitVec[B, E]) OnesCount() int {
	n := 0
	for _, b := range v.storage {
		n += b.OnesCount()
	}
	return n
}

// OnesCountBefore returns the number of set bits at positions below
// index. index may equal the length; anything larger is a contract
// violation and panics. OnesCountBefore(0) is 0.
func (v *BitVec[B, E]) OnesCountBefore(index int) int {
	if index < 0 || index > v.nbits {
		panicf("rank index %d out of range [0, %d]", index, v.nbits)
	}
	if index == 0 {
		return 0
	}

	i, ln, bit := bitPosition[B, E](index)
	n := 0
	for _, b := range v.storage[:i] {
		n += b.OnesCount()
	}
	if ln > 0 || bit > 0 {
		b := v.storage[i]
		for li := range ln {
			n += lane.OnesCount(b.Lane(li))
		}
		if bit > 0 {
			n += lane.OnesCount(b.Lane(ln) & lane.LowMask[E](uint(bit)))
		}
	}
	return n
}

// LeadingZeros returns the number of zero bits above the highest set
// bit, relative to the logical length. A vector with no set bits
// reports its full length.
func (v *BitVec[B, E]) LeadingZeros() int {
	var zeroBlock B
	var zeroLane E
	lw := lane.Width[E]()
	bb := blockBits[B, E]()

	zeroLanes := 0
	for bi := len(v.storage) - 1; bi >= 0; bi-- {
		b := v.storage[bi]
		if b == zeroBlock {
			zeroLanes += b.Lanes()
			continue
		}
		for li := b.Lanes() - 1; li >= 0; li-- {
			ln := b.Lane(li)
			if ln == zeroLane {
				zeroLanes++
				continue
			}
			raw := zeroLanes*lw + lane.LeadingZeros(ln)
			// Storage is block-rounded; the padding above nbits is
			// not part of the logical bit string.
			pad := v.nbits % bb
			if pad > 0 {
				pad = bb - pad
			}
			return raw - pad
		}
	}
	return v.nbits
}

// Any reports whether at least one bit is set.
func (v *BitVec[B, E]) Any() bool {
	var zero B
	for _, b := range v.storage {
		if b != zero {
			return true
		}
	}
	return false
}

// All reports whether every bit below the logical length is set.
func (v *BitVec[B, E]) All() bool {
	return v.OnesCount() == v.nbits
}

// None reports whether no bit is set.
func (v *BitVec[B, E]) None() bool {
	return !v.Any()
}

// IsEmpty reports whether no bit is set. It is None under the name
// set-container users expect.
func (v *BitVec[B, E]) IsEmpty() bool {
	return !v.Any()
}
