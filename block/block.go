// Package block defines the vector capability the bit-vector container is
// built on: a fixed-width block of lanes supporting whole-block bitwise
// algebra and conversion to and from its lanes.
//
// Six concrete shapes are provided, spanning 128-bit blocks (U8x16, U16x8,
// U32x4, U64x2) and 256-bit blocks (U32x8, U64x4). Each shape is a plain
// fixed-size array value type; the compiler is free to vectorize the
// lane loops on targets with wide registers.
package block

import "github.com/hupe1980/bitvecgo/lane"

// Block is the constraint a block shape must satisfy. B is the shape
// itself, E its lane type. The zero value of a Block is the all-zero
// block; comparability gives exact whole-block equality.
type Block[B any, E lane.Element] interface {
	comparable

	// And returns the lane-wise AND of the two blocks.
	And(B) B
	// Or returns the lane-wise OR of the two blocks.
	Or(B) B
	// Xor returns the lane-wise XOR of the two blocks.
	Xor(B) B
	// AndNot returns the lane-wise AND-NOT (receiver AND NOT argument).
	AndNot(B) B
	// Not returns the lane-wise complement.
	Not() B

	// Lanes returns the number of lanes in the block.
	Lanes() int
	// Lane returns the lane at index i.
	Lane(i int) E
	// WithLane returns a copy of the block with lane i replaced by v.
	WithLane(i int, v E) B
	// FromLanes builds a block from up to Lanes() leading values of src,
	// zero-padding missing lanes.
	FromLanes(src []E) B
	// StoreLanes writes all lanes into dst, which must hold Lanes() values.
	StoreLanes(dst []E)

	// OnesCount returns the number of set bits across all lanes.
	OnesCount() int
}

// BitWidth returns the total bit width of the block shape B.
func BitWidth[B Block[B, E], E lane.Element]() int {
	var z B
	return z.Lanes() * lane.Width[E]()
}

// Full returns the block with every bit set.
func Full[B Block[B, E], E lane.Element]() B {
	var z B
	return z.Not()
}
