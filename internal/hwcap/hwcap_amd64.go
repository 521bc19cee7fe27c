//go:build amd64

package hwcap

import "golang.org/x/sys/cpu"

func init() {
	has256 = cpu.X86.HasAVX2
}
