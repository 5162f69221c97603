package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/zoneprof/report"
	"github.com/wesleyorama2/zoneprof/zone"
)

// Config is the root of a configuration file.
type Config struct {
	Zones       ZonesConfig       `yaml:"zones" json:"zones"`
	PageFaults  bool              `yaml:"pageFaults" json:"pageFaults"`
	Calibration CalibrationConfig `yaml:"calibration" json:"calibration"`
	Report      ReportConfig      `yaml:"report" json:"report"`
	Log         LogConfig         `yaml:"log" json:"log"`
}

// ZonesConfig controls per-zone accounting.
type ZonesConfig struct {
	// Enabled turns on zone tracking. Nil means true.
	Enabled          *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Capacity         int   `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	MinMax           bool  `yaml:"minMax" json:"minMax"`
	Histogram        bool  `yaml:"histogram" json:"histogram"`
	HistogramSigFigs int   `yaml:"histogramSigFigs,omitempty" json:"histogramSigFigs,omitempty"`
}

// CalibrationConfig controls cycle counter frequency estimation.
type CalibrationConfig struct {
	Wait Duration `yaml:"wait,omitempty" json:"wait,omitempty"`

	// FrequencyHz fixes the cycle counter frequency and skips calibration.
	FrequencyHz uint64 `yaml:"frequencyHz,omitempty" json:"frequencyHz,omitempty"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Color  string `yaml:"color,omitempty" json:"color,omitempty"`

	// Output is a file path. Empty writes to stdout.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`
	Pretty *bool  `yaml:"pretty,omitempty" json:"pretty,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ZoneTracking reports whether zone tracking is enabled.
func (c *Config) ZoneTracking() bool {
	return c.Zones.Enabled == nil || *c.Zones.Enabled
}

// PrettyLogs reports whether logs are written in console format.
func (c *Config) PrettyLogs() bool {
	return c.Log.Pretty == nil || *c.Log.Pretty
}

// SessionConfig converts c into a zone.Config using the system clock and
// process fault counter.
func (c *Config) SessionConfig() zone.Config {
	sc := zone.DefaultConfig()
	sc.ZoneTracking = c.ZoneTracking()
	sc.PageFaults = c.PageFaults
	sc.MinMax = c.Zones.MinMax
	sc.Histogram = c.Zones.Histogram
	if c.Zones.HistogramSigFigs != 0 {
		sc.HistogramSigFigs = c.Zones.HistogramSigFigs
	}
	if c.Zones.Capacity != 0 {
		sc.Capacity = c.Zones.Capacity
	}
	return sc
}

// ReportFormat returns the parsed report format.
func (c *Config) ReportFormat() (report.Format, error) {
	return report.ParseFormat(c.Report.Format)
}

// ColorMode returns the parsed report colour mode.
func (c *Config) ColorMode() (report.ColorMode, error) {
	return report.ParseColorMode(c.Report.Color)
}

// Duration is a time.Duration that decodes from "100ms" style strings or from
// integer milliseconds.
type Duration time.Duration

// GetDuration returns the duration or a default if zero.
func (d Duration) GetDuration(defaultValue time.Duration) time.Duration {
	if d == 0 {
		return defaultValue
	}
	return time.Duration(d)
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == "null" {
		s = ""
	}
	return d.set(s)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.set(s)
}

func (d *Duration) set(s string) error {
	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// ParseDurationString parses a duration string.
//
// Supported formats:
//   - Standard Go duration: "100ms", "1.5s"
//   - Milliseconds as integer: "250" (treated as 250ms)
func ParseDurationString(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}

	return 0, fmt.Errorf("invalid duration format: %s", s)
}
