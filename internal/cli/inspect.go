package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/zoneprof/report"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Extract values from a saved JSON report",
		Long: `Query a JSON report written by "demo --format json". Paths may be JSONPath
style or gjson style:

  zoneprof inspect report.json --query '$.zones[0].name'
  zoneprof inspect report.json --query 'zones.#.name' --query totalTicks`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().StringArrayP("query", "q", nil, "Path to extract (repeatable)")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	queries, _ := cmd.Flags().GetStringArray("query")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, q := range queries {
		value, err := report.Query(data, q)
		if err != nil {
			return err
		}
		if len(queries) == 1 {
			fmt.Fprintln(out, value)
		} else {
			fmt.Fprintf(out, "%s: %s\n", q, value)
		}
	}
	return nil
}
