// Package starlark lets render contexts be authored as Starlark programs:
// the program's exported globals become the context a template is
// rendered against.
package starlark

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"

	"github.com/templatetools/jinjaconv/pkg/jinja2"
)

// Evaluator executes Starlark programs and exposes their globals as an
// engine Context.
type Evaluator struct {
	thread   *starlark.Thread
	builtins starlark.StringDict
	globals  starlark.StringDict
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		thread: &starlark.Thread{Name: "jinjaconv"},
		builtins: starlark.StringDict{
			"print": starlark.NewBuiltin("print", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var buf []string
				for i := 0; i < len(args); i++ {
					buf = append(buf, args[i].String())
				}
				fmt.Println(strings.Join(buf, " "))
				return starlark.None, nil
			}),
		},
		globals: make(starlark.StringDict),
	}
}

// SetGlobal predeclares a value for subsequent programs.
func (e *Evaluator) SetGlobal(name string, value jinja2.Value) {
	e.globals[name] = ToStarlark(value)
}

func (e *Evaluator) predeclared() starlark.StringDict {
	out := make(starlark.StringDict, len(e.builtins)+len(e.globals))
	for k, v := range e.builtins {
		out[k] = v
	}
	for k, v := range e.globals {
		out[k] = v
	}
	return out
}

// ExecFile executes a Starlark program and records the globals it
// defines. src may be nil to read from filename, or a string/[]byte
// holding the program text.
func (e *Evaluator) ExecFile(filename string, src any) error {
	globals, err := starlark.ExecFile(e.thread, filename, src, e.predeclared())
	if err != nil {
		return fmt.Errorf("executing starlark program: %w", err)
	}
	for k, v := range globals {
		e.globals[k] = v
	}
	return nil
}

// Eval evaluates a single Starlark expression against the recorded
// globals and returns the result as an engine value.
func (e *Evaluator) Eval(expr string) (jinja2.Value, error) {
	val, err := starlark.Eval(e.thread, "<eval>", expr, e.predeclared())
	if err != nil {
		return nil, fmt.Errorf("evaluating starlark expression: %w", err)
	}
	return FromStarlark(val), nil
}

// Context exports the recorded globals as a render context. Callables and
// underscore-prefixed names are not exported.
func (e *Evaluator) Context() jinja2.Context {
	ctx := make(jinja2.Context)
	for key, value := range e.globals {
		if key == "" || key[0] == '_' {
			continue
		}
		if _, ok := value.(starlark.Callable); ok {
			continue
		}
		ctx[key] = FromStarlark(value)
	}
	return ctx
}
