package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/pkg/render"
)

// newRenderCmd creates the render command, which turns a forest file into
// ASCII art, Graphviz DOT, or an SVG image.
func newRenderCmd() *cobra.Command {
	var (
		inFormat  string
		outFormat string
		output    string
		color     bool
		detailed  bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a forest file as ASCII, DOT, or SVG",
		Long: `Render a forest file for humans or external tooling.

Output formats:
  ascii   box-drawing tree for terminals (default)
  dot     Graphviz DOT source
  svg     SVG image rendered via Graphviz in-process

Defaults for --format and --color come from the config file
(~/.config/grove/config.toml) when present.

Examples:
  grove render forest.json
  grove render --format dot forest.json | dot -Tpng -o forest.png
  grove render --format svg forest.json -o forest.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				outFormat = cfg.Render.Format
			}
			if !cmd.Flags().Changed("color") {
				color = cfg.Render.Color
			}

			f, err := readForest(args[0], inFormat)
			if err != nil {
				return err
			}
			logger.Debugf("rendering %d nodes as %s", f.Count(), outFormat)

			var data []byte
			switch outFormat {
			case "ascii":
				// Colored output goes to terminals; writing to a file
				// stays plain so the result is greppable.
				styled := color && output == ""
				data = []byte(render.Tree(f, render.TreeOptions{Styled: styled}))
			case "dot":
				data = []byte(render.ToDOT(f, render.DOTOptions{Detailed: detailed}))
			case "svg":
				dot := render.ToDOT(f, render.DOTOptions{Detailed: detailed})
				data, err = render.RenderSVG(cmd.Context(), dot)
				if err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
			default:
				return fmt.Errorf("unknown render format %q (expected ascii, dot, svg)", outFormat)
			}

			if err := writeOutput(output, data); err != nil {
				return err
			}
			if output != "" && output != "-" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFormat, "input-format", formatNested, "input format: nested, flat, plain")
	cmd.Flags().StringVarP(&outFormat, "format", "f", "ascii", "output format: ascii, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&color, "color", true, "styled ASCII output")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include depth and child counts in DOT/SVG labels")

	return cmd
}
