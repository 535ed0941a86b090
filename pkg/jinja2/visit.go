package jinja2

import (
	"bytes"
	"fmt"
)

type Visitor interface {
	Visit(n Node) error
}

// Walk visits every node reachable from n in source order: the sibling
// chain first to last, with branch and body chains visited before the
// node's successor.
func Walk(v Visitor, n Node) error {
	for ; n != nil; n = n.next() {
		if err := v.Visit(n); err != nil {
			return err
		}
		switch t := n.(type) {
		case *IfNode:
			if err := Walk(v, t.Then); err != nil {
				return err
			}
			if err := Walk(v, t.Else); err != nil {
				return err
			}
		case *ForNode:
			if err := Walk(v, t.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// Pretty returns a line-oriented string representation of a node chain.
func Pretty(root Node) string {
	var buf bytes.Buffer
	ppChain(&buf, 0, root)
	return buf.String()
}

func ppChain(buf *bytes.Buffer, indent int, n Node) {
	ind := func() {
		for i := 0; i < indent; i++ {
			buf.WriteByte(' ')
		}
	}
	for ; n != nil; n = n.next() {
		switch t := n.(type) {
		case *TextNode:
			ind()
			fmt.Fprintf(buf, "Text(%q)\n", t.Text)
		case *ReplaceNode:
			ind()
			fmt.Fprintf(buf, "Replace(%s)\n", t.Path)
		case *IfNode:
			ind()
			fmt.Fprintf(buf, "If(%s == %q)\n", t.Cond, t.RHS.String())
			ppChain(buf, indent+2, t.Then)
			if t.Else != nil {
				ind()
				buf.WriteString("Else\n")
				ppChain(buf, indent+2, t.Else)
			}
		case *ForNode:
			ind()
			fmt.Fprintf(buf, "For(%s in %s)\n", t.Binding, t.Source)
			ppChain(buf, indent+2, t.Body)
		}
	}
}
