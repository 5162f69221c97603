package profiler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/zoneprof/clock"
	"github.com/wesleyorama2/zoneprof/config"
	"github.com/wesleyorama2/zoneprof/report"
	"github.com/wesleyorama2/zoneprof/zone"
)

func newTestProfiler(t *testing.T, cfg *config.Config, opts ...Option) (*Profiler, *clock.Manual, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.Report.Color = "never"

	m := &clock.Manual{}
	var out bytes.Buffer
	opts = append([]Option{WithClock(m), WithFaults(m), WithOutput(&out)}, opts...)
	p, err := New(cfg, opts...)
	require.NoError(t, err)
	return p, m, &out
}

func TestProfiler_EndToEnd(t *testing.T) {
	p, m, out := newTestProfiler(t, nil, WithFrequency(1000))
	outer := p.AllocateZoneSlot()
	inner := p.AllocateZoneSlot()

	p.StartSession()
	m.Advance(100)
	zo := p.BeginZone("outer", outer, 0)
	m.Advance(100)
	zi := p.BeginZone("inner", inner, 1024)
	m.Advance(250)
	p.EndZone(zi)
	m.Advance(150)
	p.EndZone(zo)
	m.Advance(400)
	p.StopSession()

	require.NoError(t, p.PrintReport())

	text := out.String()
	assert.Contains(t, text, "Total time: 1.0000s @ 1000.00 Hz")
	assert.Contains(t, text, "  outer [hits: 1, 50.00%, 25.00% w/o children]")
	assert.Contains(t, text, "  inner [hits: 1, 25.00%]")
	assert.Contains(t, text, "throughput 4.00 KiB/s (1.00 KiB processed)")
}

func TestProfiler_ProfileWrappers(t *testing.T) {
	p, m, _ := newTestProfiler(t, nil, WithFrequency(1000))
	named := &zone.Site{Name: "block"}
	var anonymous zone.Site

	p.StartSession()
	for i := 0; i < 2; i++ {
		p.Profile(named, 64, func() { m.Advance(10) })
	}
	p.ProfileFunc(&anonymous, func() { m.Advance(5) })
	p.StopSession()

	r := p.Report()
	require.Len(t, r.Zones, 2)
	assert.Equal(t, "block", r.Zones[0].Name)
	assert.Equal(t, uint64(2), r.Zones[0].Hits)
	assert.Equal(t, uint64(128), r.Zones[0].ProcessedBytes)
	assert.Equal(t, "profiler.TestProfiler_ProfileWrappers", r.Zones[1].Name)
	assert.Equal(t, uint64(5), r.Zones[1].InclusiveTicks)
}

func TestProfiler_CalibratesOnceLazily(t *testing.T) {
	cfg := config.Default()
	cfg.Calibration.Wait = config.Duration(time.Millisecond)

	src := &clock.Stepper{CyclesPerStep: 3, WallPerStep: 1000, Frequency: 1_000_000_000}
	p, err := New(cfg, WithClock(src), WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	assert.Zero(t, src.Steps(), "calibration does not run before it is needed")

	freq := p.Frequency()
	assert.InEpsilon(t, 3_000_000, float64(freq), 0.01)

	steps := src.Steps()
	assert.Equal(t, freq, p.Frequency())
	assert.Equal(t, steps, src.Steps(), "frequency is cached")
}

func TestProfiler_CalibrationFailureReportsTicks(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	p, m, out := newTestProfiler(t, nil, WithLogger(logger))
	slot := p.AllocateZoneSlot()

	p.StartSession()
	z := p.BeginZone("work", slot, 0)
	m.Advance(300)
	p.EndZone(z)
	m.Advance(100)
	p.StopSession()

	require.NoError(t, p.PrintReport())

	assert.Zero(t, p.Frequency())
	assert.Contains(t, out.String(), "Total ticks: 400 (failed to estimate CPU frequency)")
	assert.Contains(t, out.String(), "inclusive 300 ticks, exclusive 300 ticks")
	assert.Contains(t, logs.String(), "calibration failed")
	assert.Contains(t, logs.String(), zone.ErrCalibrationFailed.Error())
}

func TestProfiler_ConfiguredFrequency(t *testing.T) {
	cfg := config.Default()
	cfg.Calibration.FrequencyHz = 2_000_000

	p, _, _ := newTestProfiler(t, cfg)
	assert.Equal(t, uint64(2_000_000), p.Frequency())
}

func TestProfiler_OptionalMetricsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.PageFaults = true
	cfg.Zones.MinMax = true
	cfg.Report.Format = "json"

	p, m, out := newTestProfiler(t, cfg, WithFrequency(1_000_000))
	slot := p.AllocateZoneSlot()

	p.StartSession()
	for _, d := range []uint64{40, 10} {
		z := p.BeginZone("io", slot, 0)
		m.Advance(d)
		m.Faults += 2
		p.EndZone(z)
	}
	p.StopSession()

	require.NoError(t, p.PrintReport())
	require.NoError(t, report.Validate(out.Bytes()))

	r, err := report.Parse(out.Bytes())
	require.NoError(t, err)
	require.Len(t, r.Zones, 1)
	require.NotNil(t, r.PageFaults)
	assert.Equal(t, uint64(4), *r.PageFaults)
	require.NotNil(t, r.Zones[0].Extrema)
	assert.Equal(t, uint64(10), r.Zones[0].Extrema.MinTicks)
	assert.Equal(t, uint64(40), r.Zones[0].Extrema.MaxTicks)
}

func TestProfiler_ReportToFile(t *testing.T) {
	cfg := config.Default()
	cfg.Report.Output = filepath.Join(t.TempDir(), "report.yaml")
	cfg.Report.Format = "yaml"

	m := &clock.Manual{}
	p, err := New(cfg, WithClock(m), WithFrequency(1000))
	require.NoError(t, err)

	p.StartSession()
	m.Advance(10)
	p.StopSession()
	require.NoError(t, p.PrintReport())

	data, err := os.ReadFile(cfg.Report.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "totalTicks: 10")
}

func TestProfiler_CapacityExhaustion(t *testing.T) {
	cfg := config.Default()
	cfg.Zones.Capacity = 3

	p, _, _ := newTestProfiler(t, cfg)
	p.AllocateZoneSlot()
	p.AllocateZoneSlot()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, zone.ErrCapacityExceeded))
	}()
	p.AllocateZoneSlot()
	t.Fatal("expected panic")
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Report.Format = "pdf"

	_, err := New(cfg)
	require.Error(t, err)

	var verrs config.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestNew_NilConfig(t *testing.T) {
	p, err := New(nil, WithClock(&clock.Manual{}), WithFrequency(1))
	require.NoError(t, err)
	assert.True(t, p.Session().Config().ZoneTracking)
}
