package starlark

import (
	"go.starlark.net/starlark"

	"github.com/templatetools/jinjaconv/pkg/jinja2"
)

// ToStarlark converts an engine value to a Starlark value.
func ToStarlark(val jinja2.Value) starlark.Value {
	if val == nil {
		return starlark.None
	}

	switch v := val.(type) {
	case jinja2.StringValue:
		return starlark.String(string(v))
	case jinja2.IntValue:
		return starlark.MakeInt64(int64(v))
	case jinja2.FloatValue:
		return starlark.Float(float64(v))
	case jinja2.BoolValue:
		return starlark.Bool(bool(v))
	case jinja2.ListValue:
		items := make([]starlark.Value, len(v))
		for i, item := range v {
			items[i] = ToStarlark(item)
		}
		return starlark.NewList(items)
	case jinja2.DictValue:
		dict := starlark.NewDict(len(v))
		for key, value := range v {
			dict.SetKey(starlark.String(key), ToStarlark(value))
		}
		return dict
	case jinja2.NoneValue:
		return starlark.None
	default:
		// For unknown types, convert to string
		return starlark.String(val.String())
	}
}

// FromStarlark converts a Starlark value to an engine value.
func FromStarlark(val starlark.Value) jinja2.Value {
	if val == nil || val == starlark.None {
		return jinja2.NoneValue{}
	}

	switch v := val.(type) {
	case starlark.String:
		return jinja2.StringValue(string(v))
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return jinja2.IntValue(i)
		}
		// For very large integers, fall back to the textual form
		return jinja2.StringValue(v.String())
	case starlark.Float:
		return jinja2.FloatValue(float64(v))
	case starlark.Bool:
		return jinja2.BoolValue(bool(v))
	case *starlark.List:
		items := make(jinja2.ListValue, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = FromStarlark(v.Index(i))
		}
		return items
	case *starlark.Dict:
		dict := make(jinja2.DictValue)
		for _, item := range v.Items() {
			key, value := item[0], item[1]
			if keyStr, ok := key.(starlark.String); ok {
				dict[string(keyStr)] = FromStarlark(value)
			} else {
				dict[key.String()] = FromStarlark(value)
			}
		}
		return dict
	default:
		// For unknown types, convert to string
		return jinja2.StringValue(val.String())
	}
}
