package bitvecgo

import "github.com/hupe1980/bitvecgo/internal/hwcap"

// NativeBlockBits returns the block width, in bits, the running CPU
// favors: 256 when the hardware combines 256-bit registers in one
// operation (AVX2), otherwise 128. Use it to decide between the
// BitVec256 and BitVec128 shapes when instantiating at startup.
func NativeBlockBits() int {
	return hwcap.BlockBits()
}
