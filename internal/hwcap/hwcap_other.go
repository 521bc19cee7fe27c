//go:build !amd64 && !arm64

package hwcap

func init() {
	has256 = false
}
