package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/zoneprof/report"
	"github.com/wesleyorama2/zoneprof/zone"
)

// Load reads a configuration file and applies defaults.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, path)
}

// Parse parses configuration data and applies defaults.
//
// The format is determined by the file extension in path, or defaults to YAML
// if the path is empty or has an unknown extension.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config (unknown format %s): %w", ext, err)
		}
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyDefaults fills every unset field.
func ApplyDefaults(cfg *Config) {
	if cfg.Zones.Enabled == nil {
		enabled := true
		cfg.Zones.Enabled = &enabled
	}
	if cfg.Zones.Capacity == 0 {
		cfg.Zones.Capacity = zone.DefaultCapacity
	}
	if cfg.Zones.HistogramSigFigs == 0 {
		cfg.Zones.HistogramSigFigs = 3
	}

	if cfg.Calibration.Wait == 0 {
		cfg.Calibration.Wait = Duration(zone.DefaultCalibrationWait)
	}

	if cfg.Report.Format == "" {
		cfg.Report.Format = string(report.FormatText)
	}
	if cfg.Report.Color == "" {
		cfg.Report.Color = string(report.ColorAuto)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Pretty == nil {
		pretty := true
		cfg.Log.Pretty = &pretty
	}
}
