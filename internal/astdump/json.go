package astdump

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/go-faster/jx"

	"github.com/go-faster/qlast/internal/ast"
)

// WriteJSON writes JSON representation of the node.
func WriteJSON(w io.Writer, n ast.Node) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encodeNode(e, "", n)
	_, err := w.Write(e.Bytes())
	return err
}

// Fingerprint returns hash of the node JSON representation.
//
// Structurally equal trees have equal fingerprints.
func Fingerprint(n ast.Node) uint64 {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encodeNode(e, "", n)
	return xxhash.Sum64(e.Bytes())
}

func encodeNode(e *jx.Encoder, role string, n ast.Node) {
	e.ObjStart()
	if role != "" {
		e.FieldStart("role")
		e.Str(role)
	}
	e.FieldStart("kind")
	e.Str(n.Kind().String())
	for _, a := range attrs(n) {
		e.FieldStart(a.key)
		e.Str(a.value)
	}
	if children := ast.Edges(n); len(children) > 0 {
		e.FieldStart("children")
		e.ArrStart()
		for _, c := range children {
			encodeNode(e, c.Role, c.Node)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}
