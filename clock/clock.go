package clock

// TimeSource supplies the cycle counter and the reference wall clock.
type TimeSource interface {
	// ReadCycleCounter returns a monotonic cycle count.
	ReadCycleCounter() uint64

	// ReadWallClockTicks returns the reference wall clock value.
	ReadWallClockTicks() uint64

	// ReadWallClockFrequency returns the wall clock rate in ticks per second.
	ReadWallClockFrequency() uint64
}

// FaultCounter supplies the process page fault count.
// Values must be monotonically non-decreasing for the process lifetime.
type FaultCounter interface {
	ReadPageFaults() uint64
}

// Opener is implemented by fault counters that need to acquire a handle before
// the first read. Open must be idempotent.
type Opener interface {
	Open() error
}

// systemSource is the hardware TimeSource.
type systemSource struct{}

// System returns the hardware time source for the running architecture.
func System() TimeSource {
	return systemSource{}
}

func (systemSource) ReadCycleCounter() uint64 {
	return readCycleCounter()
}

func (systemSource) ReadWallClockTicks() uint64 {
	return readWallClock()
}

func (systemSource) ReadWallClockFrequency() uint64 {
	return wallClockFrequency
}

// CounterName reports which hardware counter System reads.
func CounterName() string {
	return counterName
}
