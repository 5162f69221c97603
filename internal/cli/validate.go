package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/zoneprof/report"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a saved JSON report against the report schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	cmd.Flags().Bool("print-schema", false, "Print the report schema after validating")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := report.Validate(data); err != nil {
		var verrs report.ValidationErrors
		if errors.As(err, &verrs) {
			red := color.New(color.FgRed)
			for _, e := range verrs {
				fmt.Fprintf(out, "%s %v\n", red.Sprint("✗"), e)
			}
			return fmt.Errorf("%s: %d schema violation(s)", args[0], len(verrs))
		}
		return err
	}

	fmt.Fprintf(out, "%s %s is a valid report\n", color.New(color.FgGreen).Sprint("✓"), args[0])
	if printSchema, _ := cmd.Flags().GetBool("print-schema"); printSchema {
		fmt.Fprintln(out, report.Schema)
	}
	return nil
}
