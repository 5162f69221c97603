//go:build linux

package clock

import "golang.org/x/sys/unix"

// wallClockFrequency is the CLOCK_MONOTONIC_RAW rate, in nanoseconds.
const wallClockFrequency = 1_000_000_000

// readWallClock reads CLOCK_MONOTONIC_RAW, which is not slewed by NTP.
func readWallClock() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return 0
	}
	return uint64(ts.Nano())
}
