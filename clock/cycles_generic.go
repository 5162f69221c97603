//go:build !amd64 && !arm64

package clock

import "time"

const counterName = "monotonic"

var cycleEpoch = time.Now()

// readCycleCounter falls back to monotonic nanoseconds since package load.
func readCycleCounter() uint64 {
	return uint64(time.Since(cycleEpoch))
}
