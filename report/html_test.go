package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wesleyorama2/zoneprof/zone"
)

func TestWrite_HTML(t *testing.T) {
	r := Build(sampleSession(t, func(c *zone.Config) { c.PageFaults = true }), 1000)
	r.Zones[0].Name = "<decode>"

	out := render(t, r, FormatHTML, ColorNever)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "1000.00 Hz")
	assert.Contains(t, out, "&lt;decode&gt;", "zone names are escaped")
	assert.NotContains(t, out, "<decode>")
	assert.Contains(t, out, "width: 50.00%")
	assert.Contains(t, out, "4.00 KiB/s")
	assert.Equal(t, 2, strings.Count(out, `<tr class="zone">`))
}

func TestWrite_HTMLUncalibrated(t *testing.T) {
	out := render(t, Build(sampleSession(t, nil), 0), FormatHTML, ColorNever)

	assert.Contains(t, out, "2000 ticks")
	assert.Contains(t, out, "failed to estimate CPU frequency")
	assert.Contains(t, out, "<td>1000</td>")
}
