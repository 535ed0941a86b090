package jinja2

import "strconv"

// Resolve walks path key by key from the context root. Every intermediate
// step must be a map; arrays are only ever the final resolved value. A
// missing key or a non-map intermediate fails with a NotFoundError
// carrying the full path.
func Resolve(ctx Context, path Path) (Value, error) {
	cur := Value(DictValue(ctx))
	for _, key := range path {
		m, ok := cur.(DictValue)
		if !ok {
			return nil, &NotFoundError{Path: path}
		}
		v, ok := m[key]
		if !ok {
			return nil, &NotFoundError{Path: path}
		}
		cur = v
	}
	return cur, nil
}

// ResolveString resolves path and coerces the result to text. Only String
// (verbatim) and Int (canonical base-10) are coercible; Bool, Float, Null,
// Array and Map are deliberately not, and fail with a TypeMismatchError.
func ResolveString(ctx Context, path Path) (string, error) {
	v, err := Resolve(ctx, path)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case StringValue:
		return string(t), nil
	case IntValue:
		return strconv.FormatInt(int64(t), 10), nil
	default:
		return "", &TypeMismatchError{Path: path, Got: typeName(v)}
	}
}
