package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/zoneprof/clock"
	"github.com/wesleyorama2/zoneprof/config"
	"github.com/wesleyorama2/zoneprof/report"
	"github.com/wesleyorama2/zoneprof/zone"
)

func newCalibrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Estimate the cycle counter frequency",
		Long: `Busy-wait against the reference wall clock and print the estimated cycle
counter frequency. With --samples greater than one the median is printed.`,
		Args: cobra.NoArgs,
		RunE: runCalibrate,
	}

	cmd.Flags().Duration("wait", zone.DefaultCalibrationWait, "How long each sample busy-waits")
	cmd.Flags().Int("samples", 1, "Number of calibration samples")
	return cmd
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	wait, _ := cmd.Flags().GetDuration("wait")
	samples, _ := cmd.Flags().GetInt("samples")
	if wait <= 0 {
		return fmt.Errorf("--wait must be positive, got %s", wait)
	}
	if samples < 1 {
		return fmt.Errorf("--samples must be at least 1, got %d", samples)
	}

	logger := newLogger(cmd, config.Default())
	cal := zone.Calibrator{Source: clock.System(), Wait: wait}

	freqs := make([]uint64, 0, samples)
	for i := 0; i < samples; i++ {
		start := time.Now()
		freq, err := cal.Calibrate()
		if err != nil {
			return err
		}
		logger.Debug().Int("sample", i+1).Uint64("frequency_hz", freq).Dur("took", time.Since(start)).Msg("calibration sample")
		freqs = append(freqs, freq)
	}
	slices.Sort(freqs)
	median := freqs[len(freqs)/2]

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Counter:   %s\n", clock.CounterName())
	fmt.Fprintf(out, "Frequency: %s (%d Hz)\n", report.FormatFrequency(median), median)
	if samples > 1 {
		fmt.Fprintf(out, "Range:     %s - %s over %d samples\n",
			report.FormatFrequency(freqs[0]), report.FormatFrequency(freqs[len(freqs)-1]), samples)
	}
	return nil
}
