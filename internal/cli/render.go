package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chroma/color"
	"github.com/katalvlaran/chroma/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file; stdout when empty (DOT only)
	svg        bool   // render SVG via graphviz instead of emitting DOT
	plain      bool   // skip solving, draw every vertex uncolored
	configPath string // explicit chroma.toml path
}

// newRenderCmd creates the render command: solve the instance, then emit
// Graphviz DOT (default) or a rendered SVG with vertices filled by color
// class.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:          "render [file]",
		Short:        "Draw an instance with vertices filled by color class",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.svg && opts.output == "" {
				return fmt.Errorf("--svg requires --output")
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			return runRender(cmd, path, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout when omitted)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG (requires graphviz bindings and --output)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "skip solving, draw the bare graph")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default probes ./chroma.toml)")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	g, err := readGraph(path)
	if err != nil {
		return err
	}

	var assignment []int
	if !opts.plain {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		solverOpts, err := cfg.Solve.options()
		if err != nil {
			return err
		}

		p := newProgress(logger)
		res, err := color.Solve(g, solverOpts)
		if err != nil {
			return err
		}
		p.done(fmt.Sprintf("colored with %d colors", res.Colors))
		if !res.Feasible() {
			return ErrInfeasible
		}
		assignment = res.Assignment
	}

	if opts.svg {
		svg, err := render.RenderSVG(cmd.Context(), g, assignment)
		if err != nil {
			return err
		}
		if err = os.WriteFile(opts.output, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		logger.Info("wrote SVG", "path", opts.output)

		return nil
	}

	dot := render.ToDOT(g, assignment)
	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), dot)

		return nil
	}
	if err = os.WriteFile(opts.output, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	logger.Info("wrote DOT", "path", opts.output)

	return nil
}
