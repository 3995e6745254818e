// Deterministic multi-line rendering of order graphs for debugging and
// tests. Not a stable machine format.

package order

import (
	"fmt"
	"strings"
)

// String renders the node and everything reachable from it, one edge per
// line, with a default indent step of 4.
func (n *Node) String() string {
	return strings.Join(n.Format(0, 4, "", nil), "\n")
}

// Format renders the subgraph reachable from n as indented lines.
//
// Each node encountered is assigned a compact identifier (i0, i1, …) on
// first sight, recorded in seen; a revisit — including any cycle of ≤
// edges — is abbreviated to just the prefix and that identifier. Edges
// render as indented children prefixed with their operator ("<" strict,
// "<=" non-strict). Pass seen == nil at the top level.
func (n *Node) Format(indent, indentInc int, prefix string, seen map[*Node]string) []string {
	if seen == nil {
		seen = make(map[*Node]string)
	}
	pad := strings.Repeat(" ", indent)
	if prefix != "" {
		prefix += " "
	}

	// Revisit: abbreviate to the assigned identifier.
	if name, ok := seen[n]; ok {
		return []string{pad + prefix + name}
	}
	name := fmt.Sprintf("i%d", len(seen))
	seen[n] = name

	if len(n.relations) == 0 {
		return []string{pad + prefix + name + " = Node(" + n.bounds.String() + ")"}
	}

	lines := []string{pad + prefix + name + " = Node(" + n.bounds.String() + "  {"}
	for _, rel := range n.relations {
		lines = append(lines, rel.target.Format(indent+indentInc, indentInc, rel.kind.String(), seen)...)
	}
	lines = append(lines, pad+strings.Repeat(" ", len(prefix))+"})")

	return lines
}
