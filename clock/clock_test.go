package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_CycleCounterIsMonotonic(t *testing.T) {
	src := System()

	prev := src.ReadCycleCounter()
	for i := 0; i < 1000; i++ {
		cur := src.ReadCycleCounter()
		assert.GreaterOrEqual(t, cur, prev, "cycle counter went backwards at read %d", i)
		prev = cur
	}
}

func TestSystem_WallClockAdvances(t *testing.T) {
	src := System()
	require.NotZero(t, src.ReadWallClockFrequency())

	start := src.ReadWallClockTicks()
	time.Sleep(5 * time.Millisecond)
	end := src.ReadWallClockTicks()

	elapsed := time.Duration((end - start) * uint64(time.Second) / src.ReadWallClockFrequency())
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}

func TestCounterName(t *testing.T) {
	assert.Contains(t, []string{"rdtsc", "cntvct_el0", "monotonic"}, CounterName())
}

func TestManual(t *testing.T) {
	m := &Manual{}
	assert.Equal(t, uint64(1_000_000_000), m.ReadWallClockFrequency())

	m.Cycles = 100
	m.Advance(25)
	assert.Equal(t, uint64(125), m.ReadCycleCounter())
	assert.Equal(t, 1, m.CycleReads)

	m.Faults = 7
	assert.Equal(t, uint64(7), m.ReadPageFaults())
}

func TestStepper(t *testing.T) {
	s := &Stepper{CyclesPerStep: 30, WallPerStep: 10, Frequency: 1000}

	assert.Equal(t, uint64(0), s.ReadCycleCounter())
	assert.Equal(t, uint64(10), s.ReadWallClockTicks())
	assert.Equal(t, uint64(20), s.ReadWallClockTicks())
	assert.Equal(t, uint64(60), s.ReadCycleCounter())
	assert.Equal(t, uint64(2), s.Steps())
}

func TestProcessFaults(t *testing.T) {
	f := ProcessFaults()
	assert.Same(t, f, ProcessFaults(), "process counter should be shared")

	if err := f.Open(); err != nil {
		t.Skipf("page faults unavailable: %v", err)
	}
	// Open is idempotent
	require.NoError(t, f.Open())

	before := f.ReadPageFaults()
	if f.Err() != nil {
		t.Skipf("page faults unavailable: %v", f.Err())
	}

	buf := make([]byte, 8<<20)
	for i := 0; i < len(buf); i += 4096 {
		buf[i] = byte(i)
	}

	after := f.ReadPageFaults()
	assert.GreaterOrEqual(t, after, before)
}
