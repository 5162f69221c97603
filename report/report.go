package report

import (
	"github.com/wesleyorama2/zoneprof/zone"
)

// Report is the rendered-independent view of a finished session.
type Report struct {
	// Calibrated is false when the cycle frequency is unknown; only tick counts
	// are then meaningful.
	Calibrated   bool    `json:"calibrated" yaml:"calibrated"`
	FrequencyHz  uint64  `json:"frequencyHz" yaml:"frequencyHz"`
	TotalTicks   uint64  `json:"totalTicks" yaml:"totalTicks"`
	TotalSeconds float64 `json:"totalSeconds,omitempty" yaml:"totalSeconds,omitempty"`
	PageFaults   *uint64 `json:"pageFaults,omitempty" yaml:"pageFaults,omitempty"`
	Zones        []Zone  `json:"zones" yaml:"zones"`
}

// Zone is one reported slot.
type Zone struct {
	Slot             uint32  `json:"slot" yaml:"slot"`
	Name             string  `json:"name" yaml:"name"`
	Hits             uint64  `json:"hits" yaml:"hits"`
	InclusiveTicks   uint64  `json:"inclusiveTicks" yaml:"inclusiveTicks"`
	ExclusiveTicks   uint64  `json:"exclusiveTicks" yaml:"exclusiveTicks"`
	InclusivePercent float64 `json:"inclusivePercent" yaml:"inclusivePercent"`
	ExclusivePercent float64 `json:"exclusivePercent" yaml:"exclusivePercent"`

	InclusiveSeconds float64 `json:"inclusiveSeconds,omitempty" yaml:"inclusiveSeconds,omitempty"`
	ExclusiveSeconds float64 `json:"exclusiveSeconds,omitempty" yaml:"exclusiveSeconds,omitempty"`
	AverageSeconds   float64 `json:"averageSeconds,omitempty" yaml:"averageSeconds,omitempty"`

	ProcessedBytes uint64  `json:"processedBytes,omitempty" yaml:"processedBytes,omitempty"`
	BytesPerSecond float64 `json:"bytesPerSecond,omitempty" yaml:"bytesPerSecond,omitempty"`

	PageFaults  *uint64      `json:"pageFaults,omitempty" yaml:"pageFaults,omitempty"`
	Extrema     *Extrema     `json:"extrema,omitempty" yaml:"extrema,omitempty"`
	Percentiles *Percentiles `json:"percentiles,omitempty" yaml:"percentiles,omitempty"`
}

// Extrema holds the shortest and longest hit of a zone.
type Extrema struct {
	MinTicks   uint64  `json:"minTicks" yaml:"minTicks"`
	MaxTicks   uint64  `json:"maxTicks" yaml:"maxTicks"`
	MinSeconds float64 `json:"minSeconds,omitempty" yaml:"minSeconds,omitempty"`
	MaxSeconds float64 `json:"maxSeconds,omitempty" yaml:"maxSeconds,omitempty"`
}

// Percentiles holds a zone's latency distribution.
type Percentiles struct {
	P50Ticks   uint64  `json:"p50Ticks" yaml:"p50Ticks"`
	P90Ticks   uint64  `json:"p90Ticks" yaml:"p90Ticks"`
	P99Ticks   uint64  `json:"p99Ticks" yaml:"p99Ticks"`
	P50Seconds float64 `json:"p50Seconds,omitempty" yaml:"p50Seconds,omitempty"`
	P90Seconds float64 `json:"p90Seconds,omitempty" yaml:"p90Seconds,omitempty"`
	P99Seconds float64 `json:"p99Seconds,omitempty" yaml:"p99Seconds,omitempty"`
}

// Build assembles the report of a stopped session. frequency is the cycle
// counter rate in ticks per second; 0 produces a tick-only report.
func Build(sess *zone.Session, frequency uint64) *Report {
	total := sess.ElapsedTicks()

	r := &Report{
		Calibrated:  frequency != 0,
		FrequencyHz: frequency,
		TotalTicks:  total,
		Zones:       []Zone{},
	}
	conv := converter{freq: frequency}
	r.TotalSeconds = conv.seconds(total)

	if faults, ok := sess.PageFaults(); ok {
		r.PageFaults = &faults
	}

	for _, e := range sess.Entries() {
		z := Zone{
			Slot:             uint32(e.Slot),
			Name:             e.Name,
			Hits:             e.HitCount,
			InclusiveTicks:   e.InclusiveTicks,
			ExclusiveTicks:   e.ExclusiveTicks,
			InclusivePercent: percent(e.InclusiveTicks, total),
			ExclusivePercent: percent(e.ExclusiveTicks, total),
			InclusiveSeconds: conv.seconds(e.InclusiveTicks),
			ExclusiveSeconds: conv.seconds(e.ExclusiveTicks),
			ProcessedBytes:   e.ProcessedBytes,
		}
		if e.HitCount > 0 {
			z.AverageSeconds = conv.seconds(e.InclusiveTicks / e.HitCount)
		}
		if e.ProcessedBytes > 0 && z.InclusiveSeconds > 0 {
			z.BytesPerSecond = float64(e.ProcessedBytes) / z.InclusiveSeconds
		}
		if e.HasPageFaults {
			faults := e.PageFaults
			z.PageFaults = &faults
		}
		if e.HasMinMax {
			z.Extrema = &Extrema{
				MinTicks:   e.MinTicks,
				MaxTicks:   e.MaxTicks,
				MinSeconds: conv.seconds(e.MinTicks),
				MaxSeconds: conv.seconds(e.MaxTicks),
			}
		}
		if p := e.Percentiles; p != nil {
			z.Percentiles = &Percentiles{
				P50Ticks:   p.P50,
				P90Ticks:   p.P90,
				P99Ticks:   p.P99,
				P50Seconds: conv.seconds(p.P50),
				P90Seconds: conv.seconds(p.P90),
				P99Seconds: conv.seconds(p.P99),
			}
		}
		r.Zones = append(r.Zones, z)
	}

	return r
}

// converter turns ticks into seconds. A zero frequency yields zero seconds.
type converter struct {
	freq uint64
}

func (c converter) seconds(ticks uint64) float64 {
	if c.freq == 0 {
		return 0
	}
	return float64(ticks) / float64(c.freq)
}

func percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
