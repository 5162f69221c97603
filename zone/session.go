package zone

import (
	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/rs/zerolog"

	"github.com/wesleyorama2/zoneprof/clock"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "uninitialized"
	}
}

// warmupReads is the number of throwaway cycle counter reads done by Start.
const warmupReads = 3

// Config selects which metrics a Session records.
type Config struct {
	// ZoneTracking enables per-zone accounting. When false BeginZone and EndZone
	// do nothing and only the session-wide elapsed time is recorded.
	ZoneTracking bool

	// PageFaults records page fault deltas per zone and for the session.
	PageFaults bool

	// MinMax records the shortest and longest hit per zone.
	MinMax bool

	// Histogram records a latency histogram per zone for percentiles.
	Histogram bool

	// HistogramSigFigs is the histogram precision (1-5, default 3).
	HistogramSigFigs int

	// HistogramMax is the largest recordable value in ticks (default 1<<44).
	HistogramMax int64

	// Capacity is the number of slots, including the root (default 1024).
	Capacity int

	// Clock supplies the cycle counter (default clock.System()).
	Clock clock.TimeSource

	// Faults supplies page fault counts (default clock.ProcessFaults()).
	Faults clock.FaultCounter

	// Logger receives lifecycle diagnostics. The hot path never logs.
	Logger *zerolog.Logger
}

// DefaultConfig returns a configuration with zone tracking on and all optional
// metrics off.
func DefaultConfig() Config {
	return Config{
		ZoneTracking:     true,
		HistogramSigFigs: 3,
		HistogramMax:     1 << 44,
		Capacity:         DefaultCapacity,
	}
}

func (c *Config) applyDefaults() {
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	if c.HistogramSigFigs < 1 || c.HistogramSigFigs > 5 {
		c.HistogramSigFigs = 3
	}
	if c.HistogramMax < 2 {
		c.HistogramMax = 1 << 44
	}
	if c.Clock == nil {
		c.Clock = clock.System()
	}
	if c.PageFaults && c.Faults == nil {
		c.Faults = clock.ProcessFaults()
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
}

// entry is the always-present part of a slot's aggregate.
type entry struct {
	inclusive uint64
	exclusive uint64
	hits      uint64
	bytes     uint64
	name      string
}

type extrema struct {
	min uint64
	max uint64
}

// ActiveZone is the value returned by BeginZone and consumed by EndZone.
type ActiveZone struct {
	Name              string
	Slot              Slot
	Parent            Slot
	StartTicks        uint64
	CapturedInclusive uint64
	StartFaults       uint64
}

// Session is the zone timing engine.
//
// A Session is not safe for concurrent use. BeginZone and EndZone calls must nest
// in strict LIFO order; a slot must not be re-entered before its own EndZone.
type Session struct {
	cfg      Config
	clock    clock.TimeSource
	faults   clock.FaultCounter
	registry *Registry
	log      *zerolog.Logger

	entries []entry

	// Optional tables, nil when the metric is disabled.
	faultTable []uint64
	extrema    []extrema
	hists      []*hdrhistogram.Histogram

	current Slot

	startTicks  uint64
	endTicks    uint64
	startFaults uint64
	endFaults   uint64

	state State
}

// NewSession creates a session with its own slot registry.
func NewSession(cfg Config) *Session {
	cfg.applyDefaults()
	return NewSessionWithRegistry(cfg, NewRegistry(cfg.Capacity))
}

// NewSessionWithRegistry creates a session allocating slots from reg. The entry
// table is sized to the registry capacity.
func NewSessionWithRegistry(cfg Config, reg *Registry) *Session {
	cfg.applyDefaults()
	cfg.Capacity = reg.Capacity()

	s := &Session{
		cfg:      cfg,
		clock:    cfg.Clock,
		registry: reg,
		log:      cfg.Logger,
		entries:  make([]entry, cfg.Capacity),
	}
	if cfg.PageFaults {
		s.faults = cfg.Faults
		s.faultTable = make([]uint64, cfg.Capacity)
	}
	if cfg.MinMax {
		s.extrema = make([]extrema, cfg.Capacity)
	}
	if cfg.Histogram {
		s.hists = make([]*hdrhistogram.Histogram, cfg.Capacity)
	}
	return s
}

// Config returns the session's effective configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Registry returns the slot registry used by GetNextSlot.
func (s *Session) Registry() *Registry {
	return s.registry
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// GetNextSlot allocates a new slot. It panics with a *CapacityError when the
// capacity is exhausted.
func (s *Session) GetNextSlot() Slot {
	return s.registry.AllocateSlot()
}

// Start resets every aggregate and begins the measured interval.
func (s *Session) Start() {
	clear(s.entries)
	if s.faultTable != nil {
		clear(s.faultTable)
	}
	if s.extrema != nil {
		clear(s.extrema)
	}
	for _, h := range s.hists {
		if h != nil {
			h.Reset()
		}
	}
	s.current = RootSlot
	s.endTicks = 0
	s.endFaults = 0

	for i := 0; i < warmupReads; i++ {
		s.clock.ReadCycleCounter()
	}

	if s.faults != nil {
		if o, ok := s.faults.(clock.Opener); ok {
			if err := o.Open(); err != nil {
				s.log.Warn().Err(err).Msg("page fault counter unavailable, fault counts will be zero")
			}
		}
		s.startFaults = s.faults.ReadPageFaults()
	}

	s.state = StateRunning
	s.startTicks = s.clock.ReadCycleCounter()
}

// Stop ends the measured interval.
func (s *Session) Stop() {
	s.endTicks = s.clock.ReadCycleCounter()
	if s.faults != nil {
		s.endFaults = s.faults.ReadPageFaults()
	}
	s.state = StateStopped
}

// BeginZone opens a zone on slot and returns the value to pass to EndZone.
// byteCount is added to the slot's processed bytes immediately.
func (s *Session) BeginZone(name string, slot Slot, byteCount uint64) ActiveZone {
	if !s.cfg.ZoneTracking {
		return ActiveZone{}
	}

	e := &s.entries[slot]
	e.bytes += byteCount

	z := ActiveZone{
		Name:              name,
		Slot:              slot,
		Parent:            s.current,
		CapturedInclusive: e.inclusive,
	}
	s.current = slot

	if s.faults != nil {
		z.StartFaults = s.faults.ReadPageFaults()
	}

	// Read last so bookkeeping is not attributed to the zone.
	z.StartTicks = s.clock.ReadCycleCounter()
	return z
}

// EndZone closes z and folds its elapsed ticks into the aggregates.
func (s *Session) EndZone(z ActiveZone) {
	if !s.cfg.ZoneTracking {
		return
	}

	// Read first so bookkeeping is not attributed to the zone.
	end := s.clock.ReadCycleCounter()
	elapsed := end - z.StartTicks

	s.entries[z.Parent].exclusive -= elapsed

	e := &s.entries[z.Slot]
	e.inclusive = z.CapturedInclusive + elapsed
	e.exclusive += elapsed
	e.name = z.Name

	if s.faultTable != nil {
		s.faultTable[z.Slot] = s.faults.ReadPageFaults() - z.StartFaults
	}
	if s.extrema != nil {
		x := &s.extrema[z.Slot]
		if e.hits == 0 {
			x.min, x.max = elapsed, elapsed
		} else {
			x.min = min(x.min, elapsed)
			x.max = max(x.max, elapsed)
		}
	}
	if s.hists != nil {
		s.record(z.Slot, elapsed)
	}

	e.hits++
	s.current = z.Parent
}

// record adds elapsed to the slot histogram, allocating it on first use.
func (s *Session) record(slot Slot, elapsed uint64) {
	h := s.hists[slot]
	if h == nil {
		h = hdrhistogram.New(1, s.cfg.HistogramMax, s.cfg.HistogramSigFigs)
		s.hists[slot] = h
	}
	v := int64(min(elapsed, uint64(s.cfg.HistogramMax)))
	if v < 1 {
		v = 1
	}
	// Values are clamped into range, so RecordValue cannot fail.
	_ = h.RecordValue(v)
}

// Profile runs fn inside a zone for site, allocating the site's slot on first use.
func (s *Session) Profile(site *Site, byteCount uint64, fn func()) {
	slot, name := site.Resolve(s, 1)
	z := s.BeginZone(name, slot, byteCount)
	defer s.EndZone(z)
	fn()
}

// ProfileFunc is Profile with the zone named after the calling function when
// site has no Name.
func (s *Session) ProfileFunc(site *Site, fn func()) {
	slot, name := site.Resolve(s, 1)
	z := s.BeginZone(name, slot, 0)
	defer s.EndZone(z)
	fn()
}

// CurrentSlot returns the innermost open zone, or RootSlot.
func (s *Session) CurrentSlot() Slot {
	return s.current
}

// ElapsedTicks returns the session length in cycles. Valid after Stop.
func (s *Session) ElapsedTicks() uint64 {
	return s.endTicks - s.startTicks
}

// PageFaults returns the faults taken during the session and whether fault
// tracking is enabled. Valid after Stop.
func (s *Session) PageFaults() (uint64, bool) {
	if s.faults == nil {
		return 0, false
	}
	return s.endFaults - s.startFaults, true
}
