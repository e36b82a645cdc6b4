package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// ErrInfeasible is returned by solve when no coloring exists within the
// requested color budget. Main maps it to exit code 1; everything else
// non-nil maps to 2.
var ErrInfeasible = errors.New("no coloring within the color budget")

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the chroma CLI and returns an error if any command fails.
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext; --verbose raises it to debug level.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "chroma",
		Short:        "chroma colors graphs with provably few colors",
		Long:         `chroma is an exact graph-coloring tool: it reads an edge-list instance, finds a proper vertex coloring using as few colors as possible, and proves the count minimal (or answers a fixed-budget feasibility question).`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("chroma %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(context.Background())
}

// Main runs Execute and maps the outcome to a process exit code.
func Main() int {
	err := Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInfeasible):
		return 1
	default:
		return 2
	}
}
