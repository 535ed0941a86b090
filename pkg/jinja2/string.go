package jinja2

import (
	"fmt"
)

// TemplateString is a template carried inside configuration values. It
// decodes as a plain string and can be validated ahead of rendering.
type TemplateString string

func (t TemplateString) Validate() error {
	if _, err := Parse(string(t)); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	return nil
}

func (t TemplateString) Render(ctx Context) (string, error) {
	return NewConverter().Convert(string(t), ctx)
}
