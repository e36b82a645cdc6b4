// Package dimacs reads and writes graph instances in the two edge-list
// formats common to coloring benchmarks:
//
//   - the plain format: a header line "V E", then E lines "u w" with
//     0-based vertex ids;
//   - the DIMACS format: a header "p edge V E" (or "p col V E"), then E
//     lines "e u w" with 1-based vertex ids.
//
// Blank lines and comment lines starting with "c" are ignored in both
// formats. Duplicate edge lines are tolerated (benchmark files repeat
// them); self-loops and out-of-range endpoints are not.
//
// # Errors
//
//   - ErrEmptyInput: no header before EOF.
//   - ErrBadHeader:  the first content line fits neither format.
//   - ErrBadEdge:    a malformed or invalid edge line (with line number).
//   - ErrEdgeCount:  fewer or more edge lines than the header declared.
//
// # Example
//
//	g, err := dimacs.ParseFile("queen5_5.col")
//	if err != nil { ... }
//	res, err := color.Solve(g, color.DefaultOptions())
//
// Complexity: Parse and Write are O(V + E) plus scanning cost.
package dimacs
