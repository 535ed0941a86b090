package jinja2

import (
	"bytes"
	"fmt"
)

// Renderer evaluates a parsed node chain against a context. It holds no
// per-call state; a single Renderer may serve concurrent renders.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// Render evaluates the chain starting at root. On any failure the output
// accumulated so far is discarded and only the error is returned; a
// render never produces partial output. A nil root renders to the empty
// string.
func (r *Renderer) Render(ctx Context, root Node) (string, error) {
	var buf bytes.Buffer
	if err := r.renderChain(&buf, ctx, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderChain walks the sibling chain in order, recursing only into
// branch and body chains. The first failure propagates up through every
// enclosing chain and aborts the render.
func (r *Renderer) renderChain(buf *bytes.Buffer, ctx Context, n Node) error {
	for ; n != nil; n = n.next() {
		switch t := n.(type) {
		case *TextNode:
			buf.WriteString(t.Text)
		case *ReplaceNode:
			s, err := ResolveString(ctx, t.Path)
			if err != nil {
				return err
			}
			buf.WriteString(s)
		case *IfNode:
			s, err := ResolveString(ctx, t.Cond)
			if err != nil {
				return err
			}
			// The condition matches against the literal's textual form, or
			// against the fixed truthy tokens. This is not general boolean
			// coercion.
			if s == t.RHS.String() || s == "True" || s == "true" {
				if err := r.renderChain(buf, ctx, t.Then); err != nil {
					return err
				}
			} else if t.Else != nil {
				if err := r.renderChain(buf, ctx, t.Else); err != nil {
					return err
				}
			}
		case *ForNode:
			v, err := Resolve(ctx, t.Source)
			if err != nil {
				return err
			}
			list, ok := v.(ListValue)
			if !ok {
				return &TypeMismatchError{Path: t.Source, Got: typeName(v)}
			}
			for _, el := range list {
				// The binding goes into the shared context map and stays
				// visible after the loop until overwritten.
				ctx[t.Binding] = el
				if err := r.renderChain(buf, ctx, t.Body); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("unhandled node type: %T", n)
		}
	}
	return nil
}
