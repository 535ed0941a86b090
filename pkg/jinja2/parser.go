package jinja2

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses template source into a chain of nodes. It recognizes
// literal text, {{ key.path }} substitutions, if/else/endif blocks with a
// scalar literal right-hand side, for/endfor loops, and {# #} comments
// (which are dropped). The returned head may be nil for a template that
// produces no nodes; that is a legitimate empty result, not an error.
func Parse(src string) (Node, error) {
	p := &parser{l: newLexer(src)}
	head, _, err := p.parseChain(nil)
	if err != nil {
		return nil, err
	}
	return head, nil
}

type parser struct {
	l *lexer
}

// parseChain parses sibling nodes until a statement named in until is
// encountered, returning the chain head and the terminating statement
// name. At end of input it returns an empty name; callers that required a
// closing statement turn that into an error.
func (p *parser) parseChain(until map[string]bool) (head Node, endTag string, err error) {
	var tail Node
	push := func(n Node) {
		if head == nil {
			head = n
		} else {
			setNext(tail, n)
		}
		tail = n
	}
	for {
		tok, err := p.l.nextToken()
		if err != nil {
			return nil, "", err
		}
		switch tok.kind {
		case tokEOF:
			return head, "", nil
		case tokText:
			if tok.val != "" {
				push(&TextNode{Text: tok.val})
			}
		case tokComment:
			// dropped
		case tokVar:
			path, err := parsePath(tok.val)
			if err != nil {
				return nil, "", fmt.Errorf("invalid substitution {{ %s }}: %w", tok.val, err)
			}
			push(&ReplaceNode{Path: path})
		case tokStmt:
			name, args := splitNameArgs(tok.val)
			if until[name] {
				return head, name, nil
			}
			switch name {
			case "if":
				n, err := p.parseIf(args)
				if err != nil {
					return nil, "", err
				}
				push(n)
			case "for":
				n, err := p.parseFor(args)
				if err != nil {
					return nil, "", err
				}
				push(n)
			case "else", "endif", "endfor":
				// A closing statement reaches here only when no enclosing
				// block is waiting for it.
				return nil, "", fmt.Errorf("unexpected {%% %s %%} outside of a block", name)
			default:
				return nil, "", fmt.Errorf("unsupported statement: %q", name)
			}
		}
	}
}

func splitNameArgs(stmt string) (name, args string) {
	s := strings.TrimSpace(stmt)
	i := strings.IndexAny(s, " \t\n\r")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func (p *parser) parseIf(args string) (*IfNode, error) {
	i := strings.Index(args, "==")
	if i < 0 {
		return nil, fmt.Errorf("invalid if statement, expected 'key.path == literal': %q", args)
	}
	cond, err := parsePath(strings.TrimSpace(args[:i]))
	if err != nil {
		return nil, fmt.Errorf("invalid if condition %q: %w", args, err)
	}
	rhs, err := parseLiteral(strings.TrimSpace(args[i+2:]))
	if err != nil {
		return nil, fmt.Errorf("invalid if comparison value in %q: %w", args, err)
	}
	n := &IfNode{Cond: cond, RHS: rhs}
	then, endTag, err := p.parseChain(map[string]bool{"else": true, "endif": true})
	if err != nil {
		return nil, err
	}
	n.Then = then
	if endTag == "else" {
		els, endTag2, err := p.parseChain(map[string]bool{"endif": true})
		if err != nil {
			return nil, err
		}
		if endTag2 != "endif" {
			return nil, fmt.Errorf("missing {%% endif %%} after else")
		}
		n.Else = els
		return n, nil
	}
	if endTag != "endif" {
		return nil, fmt.Errorf("missing {%% endif %%}")
	}
	return n, nil
}

func (p *parser) parseFor(args string) (*ForNode, error) {
	parts := strings.SplitN(args, " in ", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid for statement, expected 'name in key.path': %q", args)
	}
	binding := strings.TrimSpace(parts[0])
	if binding == "" || strings.ContainsAny(binding, ". \t") {
		return nil, fmt.Errorf("invalid loop variable name %q", binding)
	}
	source, err := parsePath(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid for source in %q: %w", args, err)
	}
	n := &ForNode{Source: source, Binding: binding}
	body, endTag, err := p.parseChain(map[string]bool{"endfor": true})
	if err != nil {
		return nil, err
	}
	if endTag != "endfor" {
		return nil, fmt.Errorf("missing {%% endfor %%}")
	}
	n.Body = body
	return n, nil
}

// parsePath splits a dotted key sequence. Every segment must be non-empty
// and free of whitespace.
func parsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty path")
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("empty key in path %q", s)
		}
		if strings.ContainsAny(seg, " \t\n\r") {
			return nil, fmt.Errorf("key %q contains whitespace", seg)
		}
	}
	return Path(segs), nil
}

// parseLiteral parses the scalar right-hand side of an if comparison:
// a quoted string, an integer, a float, or a boolean token.
func parseLiteral(s string) (Value, error) {
	if len(s) >= 2 {
		q := s[0]
		if (q == '\'' || q == '"') && s[len(s)-1] == q {
			return StringValue(s[1 : len(s)-1]), nil
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntValue(n), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FloatValue(f), nil
	}
	switch s {
	case "true", "True":
		return BoolValue(true), nil
	case "false", "False":
		return BoolValue(false), nil
	}
	return nil, fmt.Errorf("not a scalar literal: %q", s)
}
