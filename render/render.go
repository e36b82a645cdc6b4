// Package render turns a graph and an optional coloring into Graphviz
// DOT text or a rendered SVG document.
//
// ToDOT is pure string emission with no external dependency; RenderSVG
// feeds that DOT through github.com/goccy/go-graphviz and requires its
// native Graphviz bindings. Vertices are filled from a fixed palette by
// color class, cycling when a coloring uses more classes than the
// palette holds. A nil or short assignment renders every vertex white.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/chroma/core"
)

// palette holds the fill colors by color class, picked for contrast
// against black labels. Colorings wider than the palette wrap around.
var palette = []string{
	"#e6550d", // orange
	"#3182bd", // blue
	"#31a354", // green
	"#756bb1", // purple
	"#dd1c77", // magenta
	"#fdae6b", // light orange
	"#9ecae1", // light blue
	"#a1d99b", // light green
	"#bcbddc", // light purple
	"#fa9fb5", // pink
	"#969696", // gray
	"#ffd92f", // yellow
}

// uncolored is the fill used when no assignment covers a vertex.
const uncolored = "white"

// ToDOT returns an undirected Graphviz DOT rendition of g. When
// assignment covers all vertices with colors ≥ 0, each vertex is filled
// by its color class; otherwise all vertices render uncolored.
//
// Each edge appears once, from the smaller endpoint.
func ToDOT(g *core.Graph, assignment []int) string {
	var buf bytes.Buffer
	buf.WriteString("graph coloring {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=circle, style=filled];\n")
	buf.WriteString("  edge [color=\"#555555\"];\n\n")

	if g == nil {
		buf.WriteString("}\n")

		return buf.String()
	}

	colored := len(assignment) == g.V()
	for _, c := range assignment {
		if c < 0 {
			colored = false

			break
		}
	}

	for u := 0; u < g.V(); u++ {
		fill := uncolored
		if colored {
			fill = palette[assignment[u]%len(palette)]
		}
		fmt.Fprintf(&buf, "  %d [fillcolor=%q];\n", u, fill)
	}
	buf.WriteByte('\n')
	for u := 0; u < g.V(); u++ {
		for _, w := range g.Neighbors(u) {
			if u < w {
				fmt.Fprintf(&buf, "  %d -- %d;\n", u, w)
			}
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders g (optionally colored by assignment) to a complete
// SVG document via Graphviz. Requires the go-graphviz native bindings;
// all failures come back wrapped for errors.Is inspection.
func RenderSVG(ctx context.Context, g *core.Graph, assignment []int) ([]byte, error) {
	dot := ToDOT(g, assignment)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
