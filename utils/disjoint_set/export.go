package disjoint_set

import (
	"fmt"
	"strings"
)

// DefaultGraphName is used by ExportText when no name is given.
const DefaultGraphName = "G"

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// ExportText renders the current parent links of nodes as a Graphviz digraph,
// one "parent" -> "node" edge per node in the order given. Roots appear as
// self-loops. The forest is only read; no paths are compressed.
//
// Pipe the result into dot, e.g. `unionfind | dot -Tsvg > forest.svg`.
func ExportText[T comparable](name string, nodes []Node[T]) string {
	var sb strings.Builder
	sb.WriteString("digraph ")
	sb.WriteString(graphID(name))
	sb.WriteString(" {\n")
	for _, n := range nodes {
		fmt.Fprintf(&sb, "  %s -> %s;\n", quoteID(n.Parent().Value()), quoteID(n.Value()))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// String formats the node as "parent <- node".
func (n Node[T]) String() string {
	if n.forest == nil {
		return "<detached>"
	}
	return fmt.Sprintf("%v <- %v", n.Parent().Value(), n.Value())
}

func quoteID(v any) string {
	return `"` + dotEscaper.Replace(fmt.Sprint(v)) + `"`
}

func graphID(name string) string {
	if name == "" {
		return DefaultGraphName
	}
	switch strings.ToLower(name) {
	case "node", "edge", "graph", "digraph", "subgraph", "strict":
		return quoteID(name)
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return quoteID(name)
		}
	}
	return name
}
