package ast

// Edge is a labelled link from a node to its direct child.
type Edge struct {
	// Role is a child role in the parent, like "left" or "argument".
	Role string
	Node Node
}

// Edges returns labelled direct children of the node in traversal order.
//
// Nil children are skipped.
func Edges(n Node) (edges []Edge) {
	add := func(role string, c Node) {
		if c != nil {
			edges = append(edges, Edge{Role: role, Node: c})
		}
	}
	expr := func(role string, e Expression) {
		if !isNil(e) {
			add(role, e)
		}
	}
	switch n := n.(type) {
	case *Query:
		for _, op := range n.Operations {
			if !isNilOperation(op) {
				add("operation", op)
			}
		}
	case *Filter:
		expr("trace", n.TraceExpression)
		if n.SpanFilter != nil {
			add("span", n.SpanFilter)
		}
	case *SpanFilter:
		for _, e := range n.Expressions {
			expr("expression", e)
		}
	case *Project:
		for _, p := range n.Projections {
			if p != nil {
				add("projection", p)
			}
		}
	case *ProjectionExpression:
		expr("expression", n.Expression)
	case *BinaryExpression:
		expr("left", n.Left)
		expr("right", n.Right)
	case *UnaryExpression:
		expr("argument", n.Argument)
	case *CallExpression:
		if n.Callee != nil {
			add("callee", n.Callee)
		}
		for _, arg := range n.Arguments {
			expr("arg", arg)
		}
	case *ParenthesizedExpression:
		expr("expression", n.Expr)
	case *SpecialOperatorExpression:
		expr("left", n.Left)
		for _, e := range n.Right {
			expr("right", e)
		}
	case *PathExpression:
		expr("base", n.Base)
		for _, e := range n.Elements {
			expr("index", e.Index)
		}
	}
	return edges
}

// Children returns direct children of the node in traversal order.
func Children(n Node) []Node {
	edges := Edges(n)
	if len(edges) == 0 {
		return nil
	}
	children := make([]Node, len(edges))
	for i, e := range edges {
		children[i] = e.Node
	}
	return children
}

// Walk traverses the tree depth-first, calling fn for every node.
//
// If fn returns false, children of the node are skipped.
func Walk(n Node, fn func(n Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Count returns number of nodes in the tree.
func Count(n Node) (count int) {
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}
