package report

import (
	"fmt"
	"io"
	"strings"
)

// lineWriter remembers the first write error so rendering code stays linear.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func writeText(w io.Writer, r *Report, cs *colorScheme) error {
	lw := &lineWriter{w: w}

	if !r.Calibrated {
		lw.printf("%s %d %s\n",
			cs.Title.Sprint("Total ticks:"),
			r.TotalTicks,
			cs.Warning.Sprint("(failed to estimate CPU frequency)"))
		if r.PageFaults != nil {
			lw.printf("%s %s\n", cs.Title.Sprint("Page faults:"), cs.Faults.Sprint(FormatCount(*r.PageFaults)))
		}
		lw.printf("\n")
		for _, z := range r.Zones {
			writeRawZone(lw, z, cs)
		}
		return lw.err
	}

	lw.printf("%s %s @ %s\n",
		cs.Title.Sprint("Total time:"),
		cs.Time.Sprint(FormatSeconds(r.TotalSeconds)),
		FormatFrequency(r.FrequencyHz))
	if r.PageFaults != nil {
		lw.printf("%s %s\n", cs.Title.Sprint("Page faults:"), cs.Faults.Sprint(FormatCount(*r.PageFaults)))
	}
	lw.printf("\n")

	for _, z := range r.Zones {
		writeZone(lw, z, cs)
	}
	return lw.err
}

func zoneHeader(z Zone, cs *colorScheme) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s [hits: %s, %s",
		cs.Name.Sprint(z.Name),
		FormatCount(z.Hits),
		cs.Percent.Sprintf("%.2f%%", z.InclusivePercent)))
	if z.ExclusiveTicks != z.InclusiveTicks {
		b.WriteString(fmt.Sprintf(", %s w/o children", cs.Percent.Sprintf("%.2f%%", z.ExclusivePercent)))
	}
	b.WriteString("]\n")
	return b.String()
}

func writeZone(lw *lineWriter, z Zone, cs *colorScheme) {
	lw.printf("%s", zoneHeader(z, cs))
	lw.printf("    total %s, avg %s\n",
		cs.Time.Sprint(FormatSeconds(z.InclusiveSeconds)),
		cs.Time.Sprint(FormatSeconds(z.AverageSeconds)))
	if z.ExclusiveTicks != z.InclusiveTicks {
		lw.printf("    exclusive %s\n", cs.Time.Sprint(FormatSeconds(z.ExclusiveSeconds)))
	}
	if z.BytesPerSecond > 0 {
		lw.printf("    throughput %s (%s processed)\n",
			cs.Bandwidth.Sprint(FormatBandwidth(z.BytesPerSecond)),
			FormatBytes(float64(z.ProcessedBytes)))
	}
	if z.PageFaults != nil {
		lw.printf("    page faults %s\n", cs.Faults.Sprint(FormatCount(*z.PageFaults)))
	}
	if x := z.Extrema; x != nil {
		lw.printf("    min %s, max %s\n",
			cs.Time.Sprint(FormatSeconds(x.MinSeconds)),
			cs.Time.Sprint(FormatSeconds(x.MaxSeconds)))
	}
	if p := z.Percentiles; p != nil {
		lw.printf("    %s\n", cs.Dim.Sprintf("p50 %s, p90 %s, p99 %s",
			FormatSeconds(p.P50Seconds), FormatSeconds(p.P90Seconds), FormatSeconds(p.P99Seconds)))
	}
	lw.printf("\n")
}

func writeRawZone(lw *lineWriter, z Zone, cs *colorScheme) {
	lw.printf("%s", zoneHeader(z, cs))
	lw.printf("    inclusive %d ticks, exclusive %d ticks\n", z.InclusiveTicks, z.ExclusiveTicks)
	if z.ProcessedBytes > 0 {
		lw.printf("    processed %s\n", FormatBytes(float64(z.ProcessedBytes)))
	}
	if z.PageFaults != nil {
		lw.printf("    page faults %s\n", cs.Faults.Sprint(FormatCount(*z.PageFaults)))
	}
	if x := z.Extrema; x != nil {
		lw.printf("    min %d ticks, max %d ticks\n", x.MinTicks, x.MaxTicks)
	}
	if p := z.Percentiles; p != nil {
		lw.printf("    %s\n", cs.Dim.Sprintf("p50 %d ticks, p90 %d ticks, p99 %d ticks", p.P50Ticks, p.P90Ticks, p.P99Ticks))
	}
	lw.printf("\n")
}
