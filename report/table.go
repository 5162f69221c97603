package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

func writeTable(w io.Writer, r *Report) error {
	if r.Calibrated {
		if _, err := fmt.Fprintf(w, "Total time: %s @ %s\n", FormatSeconds(r.TotalSeconds), FormatFrequency(r.FrequencyHz)); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "Total ticks: %d (failed to estimate CPU frequency)\n", r.TotalTicks); err != nil {
			return err
		}
	}

	hasFaults, hasExtrema := false, false
	for _, z := range r.Zones {
		hasFaults = hasFaults || z.PageFaults != nil
		hasExtrema = hasExtrema || z.Extrema != nil
	}

	header := []any{"Zone", "Hits", "Inclusive", "Incl %", "Exclusive", "Excl %"}
	if r.Calibrated {
		header = append(header, "Avg", "Bandwidth")
	}
	if hasFaults {
		header = append(header, "Faults")
	}
	if hasExtrema {
		header = append(header, "Min", "Max")
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, z := range r.Zones {
		row := []any{
			z.Name,
			FormatCount(z.Hits),
			ticksOrTime(r.Calibrated, z.InclusiveTicks, z.InclusiveSeconds),
			fmt.Sprintf("%.2f", z.InclusivePercent),
			ticksOrTime(r.Calibrated, z.ExclusiveTicks, z.ExclusiveSeconds),
			fmt.Sprintf("%.2f", z.ExclusivePercent),
		}
		if r.Calibrated {
			bandwidth := "-"
			if z.BytesPerSecond > 0 {
				bandwidth = FormatBandwidth(z.BytesPerSecond)
			}
			row = append(row, FormatSeconds(z.AverageSeconds), bandwidth)
		}
		if hasFaults {
			faults := "-"
			if z.PageFaults != nil {
				faults = FormatCount(*z.PageFaults)
			}
			row = append(row, faults)
		}
		if hasExtrema {
			lo, hi := "-", "-"
			if x := z.Extrema; x != nil {
				lo = ticksOrTime(r.Calibrated, x.MinTicks, x.MinSeconds)
				hi = ticksOrTime(r.Calibrated, x.MaxTicks, x.MaxSeconds)
			}
			row = append(row, lo, hi)
		}
		if err := table.Append(row...); err != nil {
			return fmt.Errorf("append zone %q: %w", z.Name, err)
		}
	}

	return table.Render()
}

func ticksOrTime(calibrated bool, ticks uint64, seconds float64) string {
	if !calibrated {
		return fmt.Sprintf("%d", ticks)
	}
	return FormatSeconds(seconds)
}
