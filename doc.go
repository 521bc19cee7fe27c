// Package bitvecgo provides a growable bit-set backed by fixed-width
// vector blocks, so that union, intersection, symmetric difference,
// complement and population count run over many bits per primitive
// operation.
//
// A BitVec represents a set of non-negative integers by bit position:
// bit i is set iff i is in the set. Storage is an ordered sequence of
// blocks (see package block); the logical length in bits need not be
// block-aligned, and all storage bits at or beyond the logical length
// are kept zero so that bulk operations never need per-bit bounds checks.
//
// # Quick start
//
//	v := bitvecgo.Ones[block.U64x4, uint64](1000) // {0 .. 999}
//	v.Set(1999, true)                             // grows to length 2000
//	v.Set(500, false)
//	on, ok := v.Get(500)                          // false, true
//	_, ok = v.Get(5000)                           // ok == false
//
//	w := bitvecgo.Zeros[block.U64x4, uint64](2000)
//	both := v.And(w)
//	for i := range v.Indices() {
//	    _ = i // ascending set positions
//	}
//
// The BitVec256 and BitVec128 aliases cover the common shapes;
// NativeBlockBits reports which width the running CPU favors.
//
// # Contract violations
//
// Caller errors (mismatched lengths on binary operations or equality,
// out-of-range access through At, a shrink target that is not strictly
// smaller) panic rather than returning an error. The checked accessor
// Get reports absence through its second result instead. There is no
// recoverable-error channel in the in-memory core; errors are returned
// only on the persistence surface (Save, Load, blobstore).
//
// # Concurrency
//
// A BitVec is owned by one goroutine at a time. No internal
// synchronization is provided; wrap the value in a mutex or partition
// index ranges across independent vectors for parallel use.
package bitvecgo
