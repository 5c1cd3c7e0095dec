package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newValidateCmd creates the validate command, which audits a forest file
// against its structural invariants.
func newValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a forest file for structural problems",
		Long: `Check a forest file against its structural invariants.

Detects circular references, inconsistent parent links, roots with a recorded
parent, and duplicate node IDs. All problems are reported, not just the first.

Exits non-zero when the forest is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := readForest(args[0], format)
			if err != nil {
				return err
			}
			logger.Debugf("validating %d nodes", f.Count())

			report := f.Validate()
			if report.Valid {
				printSuccess("%s is valid (%d nodes)", args[0], f.Count())
				return nil
			}

			printError("%s has %d problem(s)", args[0], len(report.Errors))
			for _, e := range report.Errors {
				printDetail("%s", e)
			}
			return fmt.Errorf("validation failed with %d problem(s)", len(report.Errors))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatNested, "input format: nested, flat, plain")

	return cmd
}
