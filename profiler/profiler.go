// Package profiler is the application-facing entry point: it owns one
// profiling session, calibrates the cycle counter on demand and prints the
// final report.
//
//	p, err := profiler.New(nil)
//	if err != nil {
//		return err
//	}
//	p.StartSession()
//	p.Profile(&loadSite, uint64(len(buf)), func() { load(buf) })
//	p.StopSession()
//	return p.PrintReport()
package profiler

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/wesleyorama2/zoneprof/clock"
	"github.com/wesleyorama2/zoneprof/config"
	"github.com/wesleyorama2/zoneprof/report"
	"github.com/wesleyorama2/zoneprof/zone"
)

// Profiler wraps a zone.Session with calibration and reporting. Like the
// session, it is meant for a single thread.
type Profiler struct {
	cfg  *config.Config
	sess *zone.Session

	clock  clock.TimeSource
	faults clock.FaultCounter
	out    io.Writer
	log    zerolog.Logger

	format report.Format
	color  report.ColorMode

	fixedFrequency uint64
	frequency      uint64
	calibrated     bool
}

// New creates a profiler from cfg. A nil cfg uses config.Default().
func New(cfg *config.Config, opts ...Option) (*Profiler, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profiler config: %w", err)
	}

	p := &Profiler{
		cfg:            cfg,
		log:            zerolog.Nop(),
		fixedFrequency: cfg.Calibration.FrequencyHz,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.clock == nil {
		p.clock = clock.System()
	}

	// Validate already accepted both values.
	p.format, _ = cfg.ReportFormat()
	p.color, _ = cfg.ColorMode()

	sc := cfg.SessionConfig()
	sc.Clock = p.clock
	sc.Faults = p.faults
	sc.Logger = &p.log
	p.sess = zone.NewSession(sc)

	return p, nil
}

// Session returns the underlying session.
func (p *Profiler) Session() *zone.Session {
	return p.sess
}

// StartSession resets all aggregates and starts timing.
func (p *Profiler) StartSession() {
	p.sess.Start()
}

// StopSession stops timing.
func (p *Profiler) StopSession() {
	p.sess.Stop()
}

// AllocateZoneSlot allocates a slot for a call site. It panics with a
// *zone.CapacityError once the configured capacity is used up.
func (p *Profiler) AllocateZoneSlot() zone.Slot {
	return p.sess.GetNextSlot()
}

// BeginZone opens a zone. See zone.Session.BeginZone.
func (p *Profiler) BeginZone(name string, slot zone.Slot, byteCount uint64) zone.ActiveZone {
	return p.sess.BeginZone(name, slot, byteCount)
}

// EndZone closes a zone opened by BeginZone.
func (p *Profiler) EndZone(z zone.ActiveZone) {
	p.sess.EndZone(z)
}

// Profile runs fn inside a zone for site.
func (p *Profiler) Profile(site *zone.Site, byteCount uint64, fn func()) {
	slot, name := site.Resolve(p.sess, 1)
	z := p.sess.BeginZone(name, slot, byteCount)
	defer p.sess.EndZone(z)
	fn()
}

// ProfileFunc runs fn inside a zone named after the calling function unless
// site has a Name.
func (p *Profiler) ProfileFunc(site *zone.Site, fn func()) {
	slot, name := site.Resolve(p.sess, 1)
	z := p.sess.BeginZone(name, slot, 0)
	defer p.sess.EndZone(z)
	fn()
}

// Frequency returns the cycle counter frequency in Hz. The first call
// calibrates, blocking for the configured wait; the result is cached. A failed
// calibration is logged and returns 0.
func (p *Profiler) Frequency() uint64 {
	if p.calibrated {
		return p.frequency
	}
	p.calibrated = true

	if p.fixedFrequency != 0 {
		p.frequency = p.fixedFrequency
		return p.frequency
	}

	wait := p.cfg.Calibration.Wait.GetDuration(zone.DefaultCalibrationWait)
	start := time.Now()
	freq, err := zone.Calibrator{Source: p.clock, Wait: wait}.Calibrate()
	if err != nil {
		p.log.Warn().Err(err).Str("counter", clock.CounterName()).Msg("calibration failed, reporting raw ticks")
		return 0
	}

	p.log.Debug().
		Uint64("frequency_hz", freq).
		Str("counter", clock.CounterName()).
		Dur("took", time.Since(start)).
		Msg("calibrated cycle counter")
	p.frequency = freq
	return freq
}

// Report builds the report of the last session.
func (p *Profiler) Report() *report.Report {
	return report.Build(p.sess, p.Frequency())
}

// PrintReport renders the report to the WithOutput writer, the configured
// output file, or stdout.
func (p *Profiler) PrintReport() (err error) {
	r := p.Report()

	w := p.out
	if w == nil && p.cfg.Report.Output != "" {
		f, err := os.Create(p.cfg.Report.Output)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close report file: %w", cerr)
			}
		}()
		w = f
	}

	if err := report.Write(r, report.Options{Format: p.format, Color: p.color, Writer: w}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
