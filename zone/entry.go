package zone

// Entry is a read-only copy of one slot's aggregate.
type Entry struct {
	Slot           Slot
	Name           string
	InclusiveTicks uint64
	ExclusiveTicks uint64
	HitCount       uint64
	ProcessedBytes uint64

	// Optional metrics; the Has* flags report whether they were recorded.
	HasPageFaults bool
	PageFaults    uint64

	HasMinMax bool
	MinTicks  uint64
	MaxTicks  uint64

	Percentiles *Percentiles
}

// Percentiles summarises a zone's latency histogram, in ticks.
type Percentiles struct {
	P50   uint64
	P90   uint64
	P99   uint64
	Mean  float64
	Count int64
}

// Entry returns the aggregate for slot.
func (s *Session) Entry(slot Slot) Entry {
	e := &s.entries[slot]
	out := Entry{
		Slot:           slot,
		Name:           e.name,
		InclusiveTicks: e.inclusive,
		ExclusiveTicks: e.exclusive,
		HitCount:       e.hits,
		ProcessedBytes: e.bytes,
	}
	if s.faultTable != nil {
		out.HasPageFaults = true
		out.PageFaults = s.faultTable[slot]
	}
	if s.extrema != nil {
		out.HasMinMax = true
		out.MinTicks = s.extrema[slot].min
		out.MaxTicks = s.extrema[slot].max
	}
	if s.hists != nil {
		if h := s.hists[slot]; h != nil && h.TotalCount() > 0 {
			out.Percentiles = &Percentiles{
				P50:   uint64(h.ValueAtQuantile(50)),
				P90:   uint64(h.ValueAtQuantile(90)),
				P99:   uint64(h.ValueAtQuantile(99)),
				Mean:  h.Mean(),
				Count: h.TotalCount(),
			}
		}
	}
	return out
}

// Entries returns every real zone with nonzero inclusive ticks, in slot order.
func (s *Session) Entries() []Entry {
	var out []Entry
	for i := 1; i < len(s.entries); i++ {
		if s.entries[i].inclusive == 0 {
			continue
		}
		out = append(out, s.Entry(Slot(i)))
	}
	return out
}
