package profiler

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/wesleyorama2/zoneprof/clock"
)

// Option customizes a Profiler.
type Option func(*Profiler)

// WithClock replaces the hardware time source.
func WithClock(src clock.TimeSource) Option {
	return func(p *Profiler) {
		p.clock = src
	}
}

// WithFaults replaces the process page fault counter. It only matters when
// page fault tracking is enabled.
func WithFaults(fc clock.FaultCounter) Option {
	return func(p *Profiler) {
		p.faults = fc
	}
}

// WithOutput sends reports to w instead of the configured output file.
func WithOutput(w io.Writer) Option {
	return func(p *Profiler) {
		p.out = w
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Profiler) {
		p.log = logger
	}
}

// WithFrequency fixes the cycle counter frequency and disables calibration.
func WithFrequency(hz uint64) Option {
	return func(p *Profiler) {
		p.fixedFrequency = hz
	}
}
