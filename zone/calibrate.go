package zone

import (
	"math"
	"math/bits"
	"time"

	"github.com/wesleyorama2/zoneprof/clock"
)

const (
	// DefaultCalibrationWait is the busy-wait used when none is configured.
	DefaultCalibrationWait = 100 * time.Millisecond

	// DefaultStallPolls bounds consecutive wall clock reads without progress.
	DefaultStallPolls = 1 << 24
)

// Calibrator estimates the cycle counter frequency by racing it against the
// reference wall clock. It blocks the calling thread for about Wait.
type Calibrator struct {
	Source clock.TimeSource

	// Wait is how long to poll the wall clock (default 100ms).
	Wait time.Duration

	// StallPolls stops polling after this many consecutive reads without the wall
	// clock advancing (default 1<<24).
	StallPolls int
}

// Calibrate returns the cycle frequency in ticks per second, or
// ErrCalibrationFailed when the wall clock did not advance.
func (c Calibrator) Calibrate() (uint64, error) {
	src := c.Source
	if src == nil {
		src = clock.System()
	}
	wait := c.Wait
	if wait <= 0 {
		wait = DefaultCalibrationWait
	}
	stall := c.StallPolls
	if stall <= 0 {
		stall = DefaultStallPolls
	}

	freq := estimate(src, wait, stall)
	if freq == 0 {
		return 0, ErrCalibrationFailed
	}
	return freq, nil
}

// EstimateFrequency returns the cycle counter frequency in ticks per second
// measured over waitMS milliseconds. It returns 0 when the wall clock reported
// no elapsed ticks; callers then report raw ticks.
func EstimateFrequency(src clock.TimeSource, waitMS uint64) uint64 {
	if waitMS > math.MaxInt64/uint64(time.Millisecond) {
		waitMS = math.MaxInt64 / uint64(time.Millisecond)
	}
	return estimate(src, time.Duration(waitMS)*time.Millisecond, DefaultStallPolls)
}

// wallTicks converts wait into ticks of a wall clock running at wallFreq.
func wallTicks(wallFreq uint64, wait time.Duration) uint64 {
	if wait <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(wallFreq, uint64(wait))
	if hi >= uint64(time.Second) {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, uint64(time.Second))
	return q
}

func estimate(src clock.TimeSource, wait time.Duration, stallPolls int) uint64 {
	wallFreq := src.ReadWallClockFrequency()
	wallWait := wallTicks(wallFreq, wait)

	cycleStart := src.ReadCycleCounter()
	wallStart := src.ReadWallClockTicks()

	var wallElapsed uint64
	stalled := 0
	for wallElapsed < wallWait {
		now := src.ReadWallClockTicks() - wallStart
		if now == wallElapsed {
			stalled++
			if stalled >= stallPolls {
				break
			}
			continue
		}
		stalled = 0
		wallElapsed = now
	}

	cycleEnd := src.ReadCycleCounter()
	if wallElapsed == 0 {
		return 0
	}

	// wallFreq * cycles can exceed 64 bits on long waits.
	hi, lo := bits.Mul64(wallFreq, cycleEnd-cycleStart)
	if hi >= wallElapsed {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, wallElapsed)
	return q
}
