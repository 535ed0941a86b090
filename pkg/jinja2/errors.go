package jinja2

// NotFoundError reports a path whose key sequence does not resolve against
// the context. It carries the full original path, not just the failing
// segment, so the diagnostic can name the whole reference.
type NotFoundError struct {
	Path Path
}

func (e *NotFoundError) Error() string {
	return "error while converting the template\n" +
		"    can not find an item at path in the input: " + e.Path.String() + "\n" +
		"    or maybe the item has an unusable shape or is used in an invalid position"
}

// TypeMismatchError reports a resolved value whose type can not be used at
// its position in the template: a loop source that is not an array, or a
// substitution of a value outside the coercible set.
type TypeMismatchError struct {
	Path Path
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return "error while converting the template\n" +
		"    the item at path " + e.Path.String() + " has an unusable type: " + e.Got + "\n" +
		"    it can not be used at this position in the template"
}
