package jinja2

import "strings"

// Path addresses a value inside a context: an ordered, non-empty sequence
// of map keys, one per nesting level. Arrays are never indexed by a Path;
// they only ever appear as the final resolved value.
type Path []string

func (p Path) String() string { return strings.Join(p, ".") }

// Node is any node in a parsed template. Nodes at the same nesting level
// form a forward chain through their Next links; branch and body fields
// point at the head of a nested chain. A chain belongs to the render call
// that parsed it and is not retained afterwards.
type Node interface {
	node()
	next() Node
}

// TextNode is literal text between tags.
type TextNode struct {
	Text string
	Next Node
}

func (*TextNode) node()        {}
func (n *TextNode) next() Node { return n.Next }

// ReplaceNode substitutes the value found at Path: {{ key.path }}
type ReplaceNode struct {
	Path Path
	Next Node
}

func (*ReplaceNode) node()        {}
func (n *ReplaceNode) next() Node { return n.Next }

// IfNode compares the value at Cond against a scalar literal:
// {% if key.path == literal %}...{% else %}...{% endif %}
// Then and Else may be nil for empty branches.
type IfNode struct {
	Cond Path
	RHS  Value
	Then Node
	Else Node
	Next Node
}

func (*IfNode) node()        {}
func (n *IfNode) next() Node { return n.Next }

// ForNode iterates the array at Source, binding each element to Binding:
// {% for name in key.path %}...{% endfor %}
type ForNode struct {
	Source  Path
	Binding string
	Body    Node
	Next    Node
}

func (*ForNode) node()        {}
func (n *ForNode) next() Node { return n.Next }

// setNext appends next behind n in the sibling chain.
func setNext(n, next Node) {
	switch t := n.(type) {
	case *TextNode:
		t.Next = next
	case *ReplaceNode:
		t.Next = next
	case *IfNode:
		t.Next = next
	case *ForNode:
		t.Next = next
	}
}
