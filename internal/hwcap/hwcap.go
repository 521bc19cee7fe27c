// Package hwcap probes the running CPU for wide-register support so
// callers can pick a block shape the hardware handles in one operation.
package hwcap

var has256 bool

// BlockBits returns the widest block size, in bits, that the running
// CPU can combine with a single vector operation: 256 on x86-64 with
// AVX2, otherwise 128 (baseline SSE2/NEON width).
func BlockBits() int {
	if has256 {
		return 256
	}
	return 128
}
