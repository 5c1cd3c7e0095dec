package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newStatsCmd creates the stats command, which prints structural measurements
// for a forest file.
func newStatsCmd() *cobra.Command {
	var (
		format string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Print node, depth and width statistics for a forest file",
		Long: `Print structural statistics for a forest file.

Reports total nodes, root count, leaf count, maximum depth and maximum width.
Use --json for machine-readable output.

Examples:
  grove stats forest.json
  grove stats --format flat records.json
  grove stats --json forest.json | jq .depth`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			f, err := readForest(args[0], format)
			if err != nil {
				return err
			}
			stats := f.Statistics()
			logger.Debugf("computed statistics for %d nodes", stats.Nodes)

			if asJSON {
				data, err := json.MarshalIndent(stats, "", "  ")
				if err != nil {
					return fmt.Errorf("encode stats: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			printKeyValue("nodes", strconv.Itoa(stats.Nodes))
			printKeyValue("roots", strconv.Itoa(stats.Roots))
			printKeyValue("leaves", strconv.Itoa(stats.Leaves))
			printKeyValue("depth", strconv.Itoa(stats.Depth))
			printKeyValue("width", strconv.Itoa(stats.Width))
			p.done(fmt.Sprintf("Analyzed %d nodes", stats.Nodes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatNested, "input format: nested, flat, plain")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit statistics as JSON")

	return cmd
}
