//go:build !linux

package clock

import "time"

const wallClockFrequency = 1_000_000_000

var wallEpoch = time.Now()

func readWallClock() uint64 {
	return uint64(time.Since(wallEpoch))
}
