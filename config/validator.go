package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// maxCalibrationWait bounds the calibration busy-wait.
	maxCalibrationWait = 10 * time.Second

	// MaxZoneCapacity bounds zones.capacity so the slot table stays allocatable.
	MaxZoneCapacity = 1 << 20
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is every problem found in a configuration.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks a configuration after defaults have been applied.
//
// Returns nil if valid, or ValidationErrors containing every problem.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(path, format string, args ...any) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	// A capacity of 1 leaves only the root slot.
	if c.Zones.Capacity < 2 || c.Zones.Capacity > MaxZoneCapacity {
		add("zones.capacity", "must be between 2 and %d, got %d", MaxZoneCapacity, c.Zones.Capacity)
	}
	if c.Zones.HistogramSigFigs < 1 || c.Zones.HistogramSigFigs > 5 {
		add("zones.histogramSigFigs", "must be between 1 and 5, got %d", c.Zones.HistogramSigFigs)
	}

	wait := time.Duration(c.Calibration.Wait)
	if wait <= 0 {
		add("calibration.wait", "must be positive, got %s", wait)
	} else if wait > maxCalibrationWait {
		add("calibration.wait", "must not exceed %s, got %s", maxCalibrationWait, wait)
	}

	if _, err := c.ReportFormat(); err != nil {
		add("report.format", "%v", err)
	}
	if _, err := c.ColorMode(); err != nil {
		add("report.color", "%v", err)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		add("log.level", "invalid level %q", c.Log.Level)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
