// Package clock provides the timing primitives consumed by the zone engine.
//
// Three counters are involved:
//
//   - a cycle counter: monotonic, high resolution, not correlated to wall time
//   - a reference wall clock with a known frequency, used only for calibration
//   - an optional process page-fault counter
//
// # Sources
//
// System returns the hardware source. On amd64 the cycle counter is the TSC read
// with LFENCE; RDTSC, on arm64 it is the virtual counter CNTVCT_EL0. Other
// architectures fall back to the Go monotonic clock in nanoseconds.
//
//	src := clock.System()
//	start := src.ReadCycleCounter()
//	work()
//	cycles := src.ReadCycleCounter() - start
//
// ProcessFaults returns the process-wide page fault counter. The underlying process
// handle is opened on first use and kept for the lifetime of the process.
//
// # Test Sources
//
// Manual and Stepper are deterministic sources for tests: Manual exposes its
// counters as plain fields, Stepper advances both clocks at fixed rates every time
// the wall clock is read.
package clock
