package astdump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/qlast/internal/ast"
)

// WriteDOT writes Graphviz digraph of the node.
func WriteDOT(w io.Writer, n ast.Node) error {
	var (
		sb   strings.Builder
		next int
	)
	sb.WriteString("digraph AST {\n")
	sb.WriteString("\tnode [shape=box];\n")

	var write func(n ast.Node) int
	write = func(n ast.Node) int {
		id := next
		next++
		fmt.Fprintf(&sb, "\tn%d [label=%s];\n", id, strconv.Quote(label(n)))
		for _, e := range ast.Edges(n) {
			child := write(e.Node)
			fmt.Fprintf(&sb, "\tn%d -> n%d [label=%s];\n", id, child, strconv.Quote(e.Role))
		}
		return id
	}
	write(n)
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
