//go:build arm64

package hwcap

// NEON vectors are 128 bits wide; SVE widths are not exposed to
// portable Go code, so arm64 stays at the baseline.
func init() {
	has256 = false
}
