//go:build amd64

package clock

const counterName = "rdtsc"

// rdtsc reads the time stamp counter after an LFENCE.
// Implemented in cycles_amd64.s
//
//go:noescape
func rdtsc() uint64

func readCycleCounter() uint64 {
	return rdtsc()
}
