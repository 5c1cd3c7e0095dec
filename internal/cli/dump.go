package cli

import (
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/pkg/clone"
)

// newDumpCmd creates the dump command, a debugging aid that pretty-prints the
// flat records of a forest file in pages.
func newDumpCmd() *cobra.Command {
	var (
		format   string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Pretty-print a forest's flat records for debugging",
		Long: `Pretty-print the flat records of a forest file.

Records appear in pre-order, one Go-syntax literal per record, paged by
--page-size so large forests stay scannable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := readForest(args[0], format)
			if err != nil {
				return err
			}

			records := f.Flatten()
			logger.Debugf("dumping %d records", len(records))

			pages := clone.Chunk(records, pageSize)
			for i, page := range pages {
				if len(pages) > 1 {
					printInfo("page %d/%d", i+1, len(pages))
				}
				fmt.Println(litter.Sdump(page))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatNested, "input format: nested, flat, plain")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "records per page")

	return cmd
}
