package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/zoneprof/config"
	"github.com/wesleyorama2/zoneprof/internal/logging"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds the command tree. Tests use a fresh tree per case so flag
// state does not leak between them.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "zoneprof",
		Short:   "Cycle-accurate zone profiler for instrumented Go code",
		Version: version,
		Long: `zoneprof measures the time spent in nested, named zones of a single thread
using the CPU cycle counter, then reports inclusive and exclusive time,
throughput, page faults and latency extremes per zone.

The demo command runs instrumented sample workloads; calibrate, inspect and
validate work with the cycle counter and saved JSON reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newCalibrateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newValidateCmd())
	return root
}

// Execute runs RootCmd and prints any error to stderr.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// newLogger builds the command logger on stderr. The --log-level flag wins
// over the configuration file.
func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	level := cfg.Log.Level
	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	}
	return logging.NewWithComponent(logging.Config{
		Level:  level,
		Pretty: cfg.PrettyLogs(),
		Output: cmd.ErrOrStderr(),
	}, cmd.Name())
}
