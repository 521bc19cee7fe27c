package bitvecgo

import (
	"iter"
	"strings"

	"github.com/hupe1980/bitvecgo/lane"
)

// Indices returns a re-iterable sequence of the set bit positions in
// ascending order. The sequence is computed lazily; each range over it
// walks the storage afresh.
func (v *BitVec[B, E]) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		var zeroLane E
		lw := lane.Width[E]()
		pos := 0
		for _, b := range v.storage {
			for li := range b.Lanes() {
				ln := b.Lane(li)
				if ln == zeroLane {
					// Tail bits beyond nbits are zero, so skipping a
					// whole lane can never skip a yieldable position.
					pos += lw
					continue
				}
				for bit := range lw {
					if pos >= v.nbits {
						return
					}
					if lane.Bit(ln, uint(bit)) {
						if !yield(pos) {
							return
						}
					}
					pos++
				}
			}
		}
	}
}

// ToIndices returns the set bit positions in ascending order.
func (v *BitVec[B, E]) ToIndices() []int {
	out := make([]int, 0, v.OnesCount())
	for i := range v.Indices() {
		out = append(out, i)
	}
	return out
}

// ToBools expands the vector into one boolean per position.
func (v *BitVec[B, E]) ToBools() []bool {
	lw := lane.Width[E]()
	out := make([]bool, 0, v.nbits)
	for _, b := range v.storage {
		for li := range b.Lanes() {
			ln := b.Lane(li)
			for bit := range lw {
				if len(out) == v.nbits {
					return out
				}
				out = append(out, lane.Bit(ln, uint(bit)))
			}
		}
	}
	return out
}

// Equal reports whether v and other hold the same bits. Both vectors
// must have the same logical length; comparing vectors of different
// lengths is a contract violation and panics. Block equality is exact,
// which is sound because both sides keep their tails zero.
func (v *BitVec[B, E]) Equal(other *BitVec[B, E]) bool {
	v.mustMatch(other)
	for i := range v.storage {
		if v.storage[i] != other.storage[i] {
			return false
		}
	}
	return true
}

// String renders the logical bit string as '0'/'1' characters in index
// order.
func (v *BitVec[B, E]) String() string {
	var sb strings.Builder
	sb.Grow(v.nbits)
	for i := 0; i < v.nbits; i++ {
		if v.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
