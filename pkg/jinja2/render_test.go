package jinja2

import (
	"errors"
	"strings"
	"testing"
)

func render(t *testing.T, tpl string, ctx Context) (string, error) {
	t.Helper()
	root, err := Parse(tpl)
	if err != nil {
		t.Fatalf("parse %q error: %v", tpl, err)
	}
	return NewRenderer().Render(ctx, root)
}

func TestRenderTextOnly(t *testing.T) {
	out, err := render(t, "plain text, no tags", Context{"unused": IntValue(1)})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "plain text, no tags" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderReplace(t *testing.T) {
	ctx := Context{"user": DictValue{"name": StringValue("Ada")}}
	out, err := render(t, "Hello {{ user.name }}!", ctx)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "Hello Ada!" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderReplaceInt(t *testing.T) {
	out, err := render(t, "{{ count }} items", Context{"count": IntValue(7)})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "7 items" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderReplaceMissingDiscardsOutput(t *testing.T) {
	ctx := Context{"user": DictValue{}}
	out, err := render(t, "before {{ user.name }} after", ctx)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if out != "" {
		t.Fatalf("partial output leaked: %q", out)
	}
	if !strings.Contains(err.Error(), "user.name") {
		t.Fatalf("diagnostic does not name the path: %q", err)
	}
}

func TestRenderIfMatchesLiteral(t *testing.T) {
	tpl := "{% if user.role == 'admin' %}yes{% else %}no{% endif %}"
	out, err := render(t, tpl, Context{"user": DictValue{"role": StringValue("admin")}})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "yes" {
		t.Fatalf("matching literal: got %q", out)
	}
	out, err = render(t, tpl, Context{"user": DictValue{"role": StringValue("guest")}})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "no" {
		t.Fatalf("else branch: got %q", out)
	}
}

func TestRenderIfTruthyTokens(t *testing.T) {
	// "true" and "True" take the then branch no matter what the declared
	// right-hand side is.
	tpl := "{% if flag == 'never' %}on{% else %}off{% endif %}"
	for _, v := range []string{"true", "True"} {
		out, err := render(t, tpl, Context{"flag": StringValue(v)})
		if err != nil {
			t.Fatalf("render error: %v", err)
		}
		if out != "on" {
			t.Fatalf("flag=%q: got %q, want on", v, out)
		}
	}
	out, err := render(t, tpl, Context{"flag": StringValue("TRUE")})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "off" {
		t.Fatalf("only the two fixed case variants are special: got %q", out)
	}
}

func TestRenderIfIntComparison(t *testing.T) {
	tpl := "{% if n == 42 %}magic{% endif %}done"
	out, err := render(t, tpl, Context{"n": IntValue(42)})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "magicdone" {
		t.Fatalf("got %q", out)
	}
	out, err = render(t, tpl, Context{"n": IntValue(41)})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "done" {
		t.Fatalf("empty else continues with next sibling: got %q", out)
	}
}

func TestRenderIfConditionMissing(t *testing.T) {
	_, err := render(t, "{% if a.b == 'x' %}y{% endif %}", Context{})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestRenderIfBranchFailurePropagates(t *testing.T) {
	tpl := "{% if flag == 'true' %}{{ missing.key }}{% endif %}after"
	out, err := render(t, tpl, Context{"flag": StringValue("true")})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("branch failure must abort the render, got %v", err)
	}
	if out != "" {
		t.Fatalf("output after branch failure: %q", out)
	}
	if nf.Path.String() != "missing.key" {
		t.Fatalf("error path: got %q", nf.Path)
	}
}

func TestRenderForLoop(t *testing.T) {
	ctx := Context{"xs": ListValue{IntValue(1), IntValue(2), IntValue(3)}}
	out, err := render(t, "{% for i in xs %}{{ i }}{% endfor %}", ctx)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "123" {
		t.Fatalf("got %q", out)
	}
	// The binding lives in the shared context map and survives the loop.
	if v, ok := ctx["i"]; !ok || v != IntValue(3) {
		t.Fatalf("loop binding after loop: got %#v", ctx["i"])
	}
}

func TestRenderForLoopNested(t *testing.T) {
	ctx := Context{
		"rows": ListValue{
			DictValue{"cells": ListValue{StringValue("a"), StringValue("b")}},
			DictValue{"cells": ListValue{StringValue("c")}},
		},
	}
	tpl := "{% for row in rows %}[{% for c in row.cells %}{{ c }}{% endfor %}]{% endfor %}"
	out, err := render(t, tpl, ctx)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "[ab][c]" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderForLoopNonArray(t *testing.T) {
	ctx := Context{"xs": StringValue("not a list")}
	out, err := render(t, "{% for i in xs %}{{ i }}{% endfor %}", ctx)
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("want TypeMismatchError, got %v", err)
	}
	if tm.Got != "string" {
		t.Fatalf("got type %q", tm.Got)
	}
	if out != "" {
		t.Fatalf("loop over non-array produced output: %q", out)
	}
}

func TestRenderForLoopBodyFailureAborts(t *testing.T) {
	ctx := Context{"xs": ListValue{
		DictValue{"name": StringValue("ok")},
		DictValue{},
	}}
	out, err := render(t, "{% for x in xs %}{{ x.name }}{% endfor %}", ctx)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError from second iteration, got %v", err)
	}
	if out != "" {
		t.Fatalf("failed render returned partial output: %q", out)
	}
}

func TestRenderForLoopEmptyArray(t *testing.T) {
	ctx := Context{"xs": ListValue{}}
	out, err := render(t, "a{% for i in xs %}{{ i }}{% endfor %}b", ctx)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "ab" {
		t.Fatalf("got %q", out)
	}
	if _, ok := ctx["i"]; ok {
		t.Fatalf("empty loop must not bind the loop variable")
	}
}

func TestRenderNilRoot(t *testing.T) {
	out, err := NewRenderer().Render(Context{}, nil)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "" {
		t.Fatalf("got %q", out)
	}
}
