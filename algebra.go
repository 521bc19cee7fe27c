package bitvecgo

// Binary set algebra. Both operands must have the same logical length;
// a mismatch is a contract violation and panics. No tail renormalization
// is needed after AND/OR/XOR: both operands satisfy the tail-zero
// invariant, so the combination does too.

func (v *BitVec[B, E]) mustMatch(other *BitVec[B, E]) {
	if v.nbits != other.nbits {
		panicf("length mismatch: %d != %d", v.nbits, other.nbits)
	}
}

// And returns the intersection of v and other as a new vector.
func (v *BitVec[B, E]) And(other *BitVec[B, E]) *BitVec[B, E] {
	v.mustMatch(other)
	out := make([]B, len(v.storage))
	for i := range v.storage {
		out[i] = v.storage[i].And(other.storage[i])
	}
	return &BitVec[B, E]{storage: out, nbits: v.nbits}
}

// Or returns the union of v and other as a new vector.
func (v *BitVec[B, E]) Or(other *BitVec[B, E]) *BitVec[B, E] {
	v.mustMatch(other)
	out := make([]B, len(v.storage))
	for i := range v.storage {
		out[i] = v.storage[i].Or(other.storage[i])
	}
	return &BitVec[B, E]{storage: out, nbits: v.nbits}
}

// Xor returns the symmetric difference of v and other as a new vector.
func (v *BitVec[B, E]) Xor(other *BitVec[B, E]) *BitVec[B, E] {
	v.mustMatch(other)
	out := make([]B, len(v.storage))
	for i := range v.storage {
		out[i] = v.storage[i].Xor(other.storage[i])
	}
	return &BitVec[B, E]{storage: out, nbits: v.nbits}
}

// AndInPlace intersects v with other, mutating v.
func (v *BitVec[B, E]) AndInPlace(other *BitVec[B, E]) {
	v.mustMatch(other)
	for i := range v.storage {
		v.storage[i] = v.storage[i].And(other.storage[i])
	}
}

// OrInPlace unions other into v.
func (v *BitVec[B, E]) OrInPlace(other *BitVec[B, E]) {
	v.mustMatch(other)
	for i := range v.storage {
		v.storage[i] = v.storage[i].Or(other.storage[i])
	}
}

// XorInPlace replaces v with the symmetric difference of v and other.
func (v *BitVec[B, E]) XorInPlace(other *BitVec[B, E]) {
	v.mustMatch(other)
	for i := range v.storage {
		v.storage[i] = v.storage[i].Xor(other.storage[i])
	}
}

// UnionInPlaceShorter is a best-effort union for operands of differing
// lengths: it ORs block-by-block over the shorter operand's block range,
// ignores any excess blocks of the longer operand, and never changes
// v's length. This asymmetric contract differs from every other binary
// operation here; it exists for callers that manage length separately.
func (v *BitVec[B, E]) UnionInPlaceShorter(other *BitVec[B, E]) {
	n := min(len(v.storage), len(other.storage))
	for i := range n {
		v.storage[i] = v.storage[i].Or(other.storage[i])
	}
}

// Not returns the complement of v as a new vector: every bit below the
// logical length is flipped, and the tail beyond it is re-masked to
// zero (flipping the zero tail would otherwise set it).
func (v *BitVec[B, E]) Not() *BitVec[B, E] {
	out := make([]B, len(v.storage))
	for i := range v.storage {
		out[i] = v.storage[i].Not()
	}
	r := &BitVec[B, E]{storage: out, nbits: v.nbits}
	if len(out) > 0 {
		_, ln, bit := bitPosition[B, E](v.nbits)
		r.clearTail(len(out)-1, ln, bit)
	}
	return r
}

// Difference returns v minus other (v AND NOT other) as a new vector.
//
// For equal-length vectors, v.Difference(w).Or(w.Difference(v)) equals
// v.Xor(w).
func (v *BitVec[B, E]) Difference(other *BitVec[B, E]) *BitVec[B, E] {
	v.mustMatch(other)
	out := make([]B, len(v.storage))
	for i := range v.storage {
		out[i] = v.storage[i].AndNot(other.storage[i])
	}
	return &BitVec[B, E]{storage: out, nbits: v.nbits}
}

// DifferenceInPlace removes other's members from v.
func (v *BitVec[B, E]) DifferenceInPlace(other *BitVec[B, E]) {
	v.mustMatch(other)
	for i := range v.storage {
		v.storage[i] = v.storage[i].AndNot(other.storage[i])
	}
}
