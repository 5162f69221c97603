package report

import (
	"fmt"
	"html/template"
	"io"
	"sync"
)

var (
	htmlOnce sync.Once
	htmlTmpl *template.Template
	htmlErr  error
)

// htmlZone is a Zone with display strings precomputed for the template.
type htmlZone struct {
	Zone
	Inclusive string
	Exclusive string
	Average   string
	Bandwidth string
	Faults    string
	Min       string
	Max       string
}

type htmlData struct {
	*Report
	Title     string
	Total     string
	Frequency string
	Faults    string
	Rows      []htmlZone
}

func parseHTMLTemplate() (*template.Template, error) {
	htmlOnce.Do(func() {
		htmlTmpl, htmlErr = template.New("report").Funcs(template.FuncMap{
			"pct": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		}).Parse(htmlTemplate)
	})
	return htmlTmpl, htmlErr
}

func writeHTML(w io.Writer, r *Report) error {
	tmpl, err := parseHTMLTemplate()
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := htmlData{Report: r, Title: "zoneprof report"}
	if r.Calibrated {
		data.Total = FormatSeconds(r.TotalSeconds)
		data.Frequency = FormatFrequency(r.FrequencyHz)
	} else {
		data.Total = fmt.Sprintf("%d ticks", r.TotalTicks)
	}
	if r.PageFaults != nil {
		data.Faults = FormatCount(*r.PageFaults)
	}

	for _, z := range r.Zones {
		row := htmlZone{
			Zone:      z,
			Inclusive: ticksOrTime(r.Calibrated, z.InclusiveTicks, z.InclusiveSeconds),
			Exclusive: ticksOrTime(r.Calibrated, z.ExclusiveTicks, z.ExclusiveSeconds),
		}
		if r.Calibrated {
			row.Average = FormatSeconds(z.AverageSeconds)
		}
		if z.BytesPerSecond > 0 {
			row.Bandwidth = FormatBandwidth(z.BytesPerSecond)
		}
		if z.PageFaults != nil {
			row.Faults = FormatCount(*z.PageFaults)
		}
		if x := z.Extrema; x != nil {
			row.Min = ticksOrTime(r.Calibrated, x.MinTicks, x.MinSeconds)
			row.Max = ticksOrTime(r.Calibrated, x.MaxTicks, x.MaxSeconds)
		}
		data.Rows = append(data.Rows, row)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
