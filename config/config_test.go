package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/zoneprof/report"
	"github.com/wesleyorama2/zoneprof/zone"
)

func TestParse_YAML(t *testing.T) {
	data := []byte(`
zones:
  enabled: false
  capacity: 64
  minMax: true
  histogram: true
  histogramSigFigs: 2
pageFaults: true
calibration:
  wait: 250ms
  frequencyHz: 3000000000
report:
  format: table
  color: never
  output: report.txt
log:
  level: debug
  pretty: false
`)

	cfg, err := Parse(data, "zoneprof.yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.False(t, cfg.ZoneTracking())
	assert.Equal(t, 64, cfg.Zones.Capacity)
	assert.True(t, cfg.Zones.MinMax)
	assert.True(t, cfg.Zones.Histogram)
	assert.Equal(t, 2, cfg.Zones.HistogramSigFigs)
	assert.True(t, cfg.PageFaults)
	assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.Calibration.Wait))
	assert.Equal(t, uint64(3_000_000_000), cfg.Calibration.FrequencyHz)
	assert.Equal(t, "report.txt", cfg.Report.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.PrettyLogs())

	format, err := cfg.ReportFormat()
	require.NoError(t, err)
	assert.Equal(t, report.FormatTable, format)

	mode, err := cfg.ColorMode()
	require.NoError(t, err)
	assert.Equal(t, report.ColorNever, mode)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{
		"zones": {"minMax": true},
		"calibration": {"wait": 50},
		"report": {"format": "json"}
	}`)

	cfg, err := Parse(data, "zoneprof.json")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.ZoneTracking())
	assert.True(t, cfg.Zones.MinMax)
	assert.Equal(t, 50*time.Millisecond, time.Duration(cfg.Calibration.Wait), "integers are milliseconds")
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, "auto", cfg.Report.Color)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"), "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.ZoneTracking())
	assert.Equal(t, zone.DefaultCapacity, cfg.Zones.Capacity)
	assert.Equal(t, 3, cfg.Zones.HistogramSigFigs)
	assert.Equal(t, zone.DefaultCalibrationWait, time.Duration(cfg.Calibration.Wait))
	assert.Zero(t, cfg.Calibration.FrequencyHz)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.PrettyLogs())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{"invalid JSON", `{"zones": `, "cfg.json"},
		{"invalid YAML", "zones: [unclosed", "cfg.yaml"},
		{"unknown extension", "zones: [unclosed", "cfg.conf"},
		{"bad duration", "calibration:\n  wait: soon\n", "cfg.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zoneprof.yml")
	require.NoError(t, os.WriteFile(path, []byte("pageFaults: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.PageFaults)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		paths  []string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:   "capacity too small",
			mutate: func(c *Config) { c.Zones.Capacity = 1 },
			paths:  []string{"zones.capacity"},
		},
		{
			name:   "capacity too large",
			mutate: func(c *Config) { c.Zones.Capacity = MaxZoneCapacity + 1 },
			paths:  []string{"zones.capacity"},
		},
		{
			name:   "largest capacity",
			mutate: func(c *Config) { c.Zones.Capacity = MaxZoneCapacity },
		},
		{
			name:   "sub-millisecond wait",
			mutate: func(c *Config) { c.Calibration.Wait = Duration(500 * time.Microsecond) },
		},
		{
			name:   "histogram precision",
			mutate: func(c *Config) { c.Zones.HistogramSigFigs = 6 },
			paths:  []string{"zones.histogramSigFigs"},
		},
		{
			name:   "negative wait",
			mutate: func(c *Config) { c.Calibration.Wait = Duration(-time.Second) },
			paths:  []string{"calibration.wait"},
		},
		{
			name:   "wait too long",
			mutate: func(c *Config) { c.Calibration.Wait = Duration(time.Minute) },
			paths:  []string{"calibration.wait"},
		},
		{
			name: "several problems",
			mutate: func(c *Config) {
				c.Report.Format = "xml"
				c.Report.Color = "rainbow"
				c.Log.Level = "loud"
			},
			paths: []string{"report.format", "report.color", "log.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.paths) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, len(tt.paths))
			for i, path := range tt.paths {
				assert.Equal(t, path, verrs[i].Path)
			}
		})
	}
}

func TestSessionConfig(t *testing.T) {
	cfg := Default()
	cfg.PageFaults = true
	cfg.Zones.MinMax = true
	cfg.Zones.Histogram = true
	cfg.Zones.HistogramSigFigs = 4
	cfg.Zones.Capacity = 32

	sc := cfg.SessionConfig()
	assert.True(t, sc.ZoneTracking)
	assert.True(t, sc.PageFaults)
	assert.True(t, sc.MinMax)
	assert.True(t, sc.Histogram)
	assert.Equal(t, 4, sc.HistogramSigFigs)
	assert.Equal(t, 32, sc.Capacity)

	disabled := false
	cfg.Zones.Enabled = &disabled
	assert.False(t, cfg.SessionConfig().ZoneTracking)
}

func TestParseDurationString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "milliseconds", input: "100ms", expected: 100 * time.Millisecond},
		{name: "fractional seconds", input: "1.5s", expected: 1500 * time.Millisecond},
		{name: "integer as milliseconds", input: "250", expected: 250 * time.Millisecond},
		{name: "empty string", input: "", expected: 0},
		{name: "invalid format", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDurationString(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDurationString(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDurationString(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
