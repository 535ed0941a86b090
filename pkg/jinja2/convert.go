package jinja2

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Converter is the public entry point: parse a template, render it
// against a context, return the result or a descriptive error. A
// Converter keeps no state between calls, so one value can serve
// concurrent conversions; nothing retains the parsed chain after the call
// returns.
type Converter struct {
	renderer *Renderer
}

func NewConverter() *Converter { return &Converter{renderer: NewRenderer()} }

// Convert parses templateText and renders it against ctx. An empty or
// comment-only template converts to the empty string.
func (c *Converter) Convert(templateText string, ctx Context) (string, error) {
	root, err := Parse(templateText)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}
	return c.renderer.Render(ctx, root)
}

// ConvertRaw decodes rawContext as a YAML or JSON mapping and renders
// templateText against it. Malformed context text fails before any
// parsing or rendering happens.
func (c *Converter) ConvertRaw(templateText string, rawContext []byte) (string, error) {
	ctx, err := DecodeContext(rawContext)
	if err != nil {
		return "", err
	}
	return c.Convert(templateText, ctx)
}

// DecodeContext decodes a YAML document (JSON being a subset) into a
// render context. The top level must be a mapping; an empty document
// decodes to an empty context.
func DecodeContext(raw []byte) (Context, error) {
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding context: %w", err)
	}
	return NewContextFromAny(m), nil
}
