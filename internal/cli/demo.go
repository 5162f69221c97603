package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/zoneprof/config"
	"github.com/wesleyorama2/zoneprof/internal/workload"
	"github.com/wesleyorama2/zoneprof/profiler"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Profile the built-in sample workloads and print the report",
		Long: `Run a set of instrumented workloads (buffer fill, xxh3 hashing, sorting and
page touching) inside one profiling session and print the zone report.

Examples:
  zoneprof demo
  zoneprof demo --format table --min-max --page-faults
  zoneprof demo --config zoneprof.yaml --format json --output report.json`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Configuration file (YAML or JSON)")
	flags.StringP("format", "f", "", "Report format: text, table, json, yaml or html")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.Int("size", 1<<20, "Buffer size in bytes for each workload")
	flags.Int("iterations", 4, "Number of times each workload runs")
	flags.Uint64("seed", 1, "Seed for generated data")
	flags.Uint64("frequency", 0, "Cycle counter frequency in Hz (skips calibration)")
	flags.Bool("page-faults", false, "Record page faults per zone")
	flags.Bool("min-max", false, "Record the shortest and longest hit per zone")
	flags.Bool("histogram", false, "Record p50/p90/p99 latency per zone")
	flags.Bool("no-zones", false, "Disable zone tracking and report only the total")
	flags.Bool("no-color", false, "Disable colored output")
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := demoConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg)

	opts := []profiler.Option{profiler.WithLogger(logger)}
	if cfg.Report.Output == "" {
		opts = append(opts, profiler.WithOutput(cmd.OutOrStdout()))
	}
	p, err := profiler.New(cfg, opts...)
	if err != nil {
		return err
	}

	size, _ := cmd.Flags().GetInt("size")
	iterations, _ := cmd.Flags().GetInt("iterations")
	seed, _ := cmd.Flags().GetUint64("seed")

	suite := workload.New(p, workload.Options{Size: size, Iterations: iterations, Seed: seed})

	p.StartSession()
	res, runErr := suite.Run()
	p.StopSession()
	if runErr != nil {
		return fmt.Errorf("workload failed: %w", runErr)
	}

	logger.Debug().
		Str("checksum", fmt.Sprintf("%016x", res.Checksum)).
		Int("sorted", res.SortedValues).
		Int("pages", res.PagesTouched).
		Msg("workloads finished")

	if err := p.PrintReport(); err != nil {
		return err
	}
	if cfg.Report.Output != "" {
		logger.Info().Str("path", cfg.Report.Output).Msg("report written")
	}
	return nil
}

// demoConfig loads --config and applies the flags that were set explicitly.
func demoConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("format") {
		cfg.Report.Format, _ = flags.GetString("format")
	}
	if flags.Changed("output") {
		cfg.Report.Output, _ = flags.GetString("output")
	}
	if flags.Changed("frequency") {
		cfg.Calibration.FrequencyHz, _ = flags.GetUint64("frequency")
	}
	if flags.Changed("page-faults") {
		cfg.PageFaults, _ = flags.GetBool("page-faults")
	}
	if flags.Changed("min-max") {
		cfg.Zones.MinMax, _ = flags.GetBool("min-max")
	}
	if flags.Changed("histogram") {
		cfg.Zones.Histogram, _ = flags.GetBool("histogram")
	}
	if noZones, _ := flags.GetBool("no-zones"); noZones {
		disabled := false
		cfg.Zones.Enabled = &disabled
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Report.Color = "never"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
