//go:build arm64

package clock

const counterName = "cntvct_el0"

// cntvct reads the virtual counter after an instruction barrier.
// Implemented in cycles_arm64.s
//
//go:noescape
func cntvct() uint64

func readCycleCounter() uint64 {
	return cntvct()
}
