package jinja2

// The lexer splits template source into literal text and the contents of
// the three delimiter forms: substitutions {{ }}, statements {% %}, and
// comments {# #}.

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokText
	tokVar     // contents of {{ ... }}
	tokStmt    // contents of {% ... %}
	tokComment // contents of {# ... #}
)

type token struct {
	kind tokenKind
	val  string
	pos  int // byte offset in source
}

type lexer struct {
	src string
	i   int
}

func newLexer(src string) *lexer { return &lexer{src: src} }

// openerAt reports the tag kind and closing delimiter if an opening
// delimiter starts at offset i.
func (l *lexer) openerAt(i int) (tokenKind, string, bool) {
	if i+2 > len(l.src) {
		return 0, "", false
	}
	switch l.src[i : i+2] {
	case "{{":
		return tokVar, "}}", true
	case "{%":
		return tokStmt, "%}", true
	case "{#":
		return tokComment, "#}", true
	}
	return 0, "", false
}

// nextToken returns the next token. Tag tokens carry the trimmed text
// between the delimiters; an unterminated tag is an error.
func (l *lexer) nextToken() (token, error) {
	if l.i >= len(l.src) {
		return token{kind: tokEOF, pos: l.i}, nil
	}
	start := l.i
	if kind, closer, ok := l.openerAt(l.i); ok {
		rest := l.src[l.i+2:]
		end := strings.Index(rest, closer)
		if end < 0 {
			return token{}, fmt.Errorf("unterminated %s tag at offset %d", l.src[start:start+2]+" "+closer, start)
		}
		l.i += 2 + end + len(closer)
		return token{kind: kind, val: strings.TrimSpace(rest[:end]), pos: start}, nil
	}
	// Literal text up to the next opening delimiter or end of input.
	j := l.i
	for j < len(l.src) {
		if _, _, ok := l.openerAt(j); ok {
			break
		}
		j++
	}
	val := l.src[l.i:j]
	l.i = j
	return token{kind: tokText, val: val, pos: start}, nil
}
