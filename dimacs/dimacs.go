package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/chroma/core"
)

// Sentinel errors returned by the dimacs package.
var (
	// ErrEmptyInput indicates that the input ended before a header line.
	ErrEmptyInput = errors.New("dimacs: empty input")

	// ErrBadHeader indicates a first content line that fits neither the
	// plain "V E" header nor the DIMACS "p edge V E" header.
	ErrBadHeader = errors.New("dimacs: malformed header")

	// ErrBadEdge indicates a malformed or invalid edge line.
	ErrBadEdge = errors.New("dimacs: malformed edge line")

	// ErrEdgeCount indicates a mismatch between the declared edge count
	// and the number of edge lines actually present.
	ErrEdgeCount = errors.New("dimacs: edge count mismatch")
)

// maxLineBytes bounds a single input line; benchmark files stay far below.
const maxLineBytes = 1 << 20

// Parse reads a graph in either supported format. The format is detected
// from the header: "p edge V E" (or "p col V E") switches to DIMACS
// 1-based "e u w" edge lines, a bare "V E" expects 0-based "u w" lines.
//
// Duplicate edge lines count toward the declared E but insert one edge.
func Parse(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		g        *core.Graph
		declared int
		seen     int
		isDimacs bool
		line     int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}

		if g == nil {
			var err error
			g, declared, isDimacs, err = parseHeader(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}

			continue
		}

		u, w, err := parseEdge(text, isDimacs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		seen++
		if g.HasEdge(u, w) {
			continue
		}
		if err = g.AddEdge(u, w); err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrBadEdge)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if g == nil {
		return nil, ErrEmptyInput
	}
	if seen != declared {
		return nil, fmt.Errorf("declared %d edges, found %d: %w", declared, seen, ErrEdgeCount)
	}

	return g, nil
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Write emits g in the plain format: "V E" then one "u w" line per edge
// with u < w, both ascending. Output round-trips through Parse.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrEmptyInput
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.V(), g.E()); err != nil {
		return fmt.Errorf("dimacs: write: %w", err)
	}
	for u := 0; u < g.V(); u++ {
		for _, v := range g.Neighbors(u) {
			if u < v {
				if _, err := fmt.Fprintf(bw, "%d %d\n", u, v); err != nil {
					return fmt.Errorf("dimacs: write: %w", err)
				}
			}
		}
	}

	return bw.Flush()
}

// parseHeader decodes the first content line and allocates the graph.
func parseHeader(text string) (g *core.Graph, e int, isDimacs bool, err error) {
	fields := strings.Fields(text)
	switch {
	case len(fields) == 4 && fields[0] == "p" && (fields[1] == "edge" || fields[1] == "col"):
		fields = fields[2:]
		isDimacs = true
	case len(fields) == 2:
		// plain header
	default:
		return nil, 0, false, fmt.Errorf("%q: %w", text, ErrBadHeader)
	}

	v, errV := strconv.Atoi(fields[0])
	e, errE := strconv.Atoi(fields[1])
	if errV != nil || errE != nil || e < 0 {
		return nil, 0, false, fmt.Errorf("%q: %w", text, ErrBadHeader)
	}
	if g, err = core.NewGraph(v); err != nil {
		return nil, 0, false, fmt.Errorf("%q: %v: %w", text, err, ErrBadHeader)
	}

	return g, e, isDimacs, nil
}

// parseEdge decodes one edge line in the detected format, returning
// 0-based endpoints.
func parseEdge(text string, isDimacs bool) (int, int, error) {
	fields := strings.Fields(text)
	if isDimacs {
		if len(fields) != 3 || fields[0] != "e" {
			return 0, 0, fmt.Errorf("%q: %w", text, ErrBadEdge)
		}
		fields = fields[1:]
	} else if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", text, ErrBadEdge)
	}

	u, errU := strconv.Atoi(fields[0])
	w, errW := strconv.Atoi(fields[1])
	if errU != nil || errW != nil {
		return 0, 0, fmt.Errorf("%q: %w", text, ErrBadEdge)
	}
	if isDimacs {
		// DIMACS ids are 1-based.
		u--
		w--
	}

	return u, w, nil
}
