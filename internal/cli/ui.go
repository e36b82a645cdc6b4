package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/chroma/color"
)

var (
	colorCyan   = lipgloss.Color("36")  // teal, numbers
	colorGreen  = lipgloss.Color("35")  // green, proven optimal
	colorYellow = lipgloss.Color("220") // amber, heuristic results
	colorRed    = lipgloss.Color("167") // soft red, infeasible
	colorDim    = lipgloss.Color("240") // dim gray, secondary text
)

var (
	styleNumber  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleOptimal = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeur    = lipgloss.NewStyle().Foreground(colorYellow)
	styleBad     = lipgloss.NewStyle().Foreground(colorRed)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// printSummary writes the human-readable one-liner to stderr; stdout is
// reserved for the machine-readable result block.
func printSummary(res color.Result, elapsed time.Duration) {
	var line string
	switch {
	case !res.Feasible():
		line = styleBad.Render("infeasible") + styleDim.Render(fmt.Sprintf(" · %s", elapsed))
	case res.Optimal:
		line = styleNumber.Render(fmt.Sprintf("%d", res.Colors)) +
			" colors " + styleOptimal.Render("(proven optimal)") +
			styleDim.Render(fmt.Sprintf(" · %s", elapsed))
	default:
		line = styleNumber.Render(fmt.Sprintf("%d", res.Colors)) +
			" colors " + styleHeur.Render("(upper bound)") +
			styleDim.Render(fmt.Sprintf(" · %s", elapsed))
	}
	fmt.Fprintln(os.Stderr, line)
}
