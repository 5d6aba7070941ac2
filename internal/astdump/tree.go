package astdump

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/go-faster/qlast/internal/ast"
)

// WriteTree writes indented text tree of the node.
func WriteTree(w io.Writer, n ast.Node, colored bool) error {
	var (
		roleColor = color.New(color.Faint)
		kindColor = color.New(color.FgCyan, color.Bold)
		keyColor  = color.New(color.FgYellow)
	)
	for _, c := range []*color.Color{roleColor, kindColor, keyColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var sb strings.Builder
	var write func(role string, n ast.Node, depth int)
	write = func(role string, n ast.Node, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		if role != "" {
			sb.WriteString(roleColor.Sprint(role + ":"))
			sb.WriteByte(' ')
		}
		sb.WriteString(kindColor.Sprint(n.Kind().String()))
		for _, a := range attrs(n) {
			sb.WriteByte(' ')
			sb.WriteString(keyColor.Sprint(a.key))
			sb.WriteString(strings.TrimPrefix(a.String(), a.key))
		}
		sb.WriteByte('\n')

		for _, e := range ast.Edges(n) {
			write(e.Role, e.Node, depth+1)
		}
	}
	write("", n, 0)

	_, err := io.WriteString(w, sb.String())
	return err
}
