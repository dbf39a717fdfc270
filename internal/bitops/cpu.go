package bitops

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hardware reports whether PopCount and TrailingZeroCount use math/bits,
// which the compiler lowers to single instructions on these targets.
var hardware = detectHardware()

func detectHardware() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasPOPCNT
	case "arm64":
		return true
	case "ppc64", "ppc64le":
		return cpu.PPC64.IsPOWER8
	case "s390x":
		return true
	default:
		return false
	}
}

// Hardware reports whether the hardware bit-count path is in use.
func Hardware() bool {
	return hardware
}
