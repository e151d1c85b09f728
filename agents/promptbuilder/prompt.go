/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"maps"
	"slices"
)

// stringLiteral only accepts untyped constants at call sites, so templates
// and literal bindings cannot be built from runtime (possibly user) input.
type stringLiteral string

// Prompt is a template with {{name}} placeholders. Binding returns a new
// Prompt; the receiver is never modified.
type Prompt struct {
	template string
	bindings map[string]binding
}

// NewPrompt parses template and records its placeholders.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	bindings := make(map[string]binding)
	if _, err := walkTemplate(string(template), func(name string) (string, error) {
		bindings[name] = nil
		return "", nil
	}); err != nil {
		return nil, err
	}
	return &Prompt{template: string(template), bindings: bindings}, nil
}

// Placeholders returns the placeholder names in the template, sorted.
func (p *Prompt) Placeholders() []string {
	return slices.Sorted(maps.Keys(p.bindings))
}

// BindStringLiteral binds a literal string value to a placeholder.
func (p *Prompt) BindStringLiteral(name string, value stringLiteral) (*Prompt, error) {
	return p.bind(name, literal(string(value)))
}

// BindXML binds data marshaled as indented XML. Use it for untrusted input,
// since the markup delimits the data from the instructions around it.
func (p *Prompt) BindXML(name string, data any) (*Prompt, error) {
	return p.bind(name, xmlBinding(data))
}

// BindJSON binds data marshaled as indented JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, jsonBinding(data))
}

// BindYAML binds data marshaled as YAML.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, yamlBinding(data))
}

func (p *Prompt) bind(name string, b binding) (*Prompt, error) {
	existing, ok := p.bindings[name]
	switch {
	case !ok:
		return nil, fmt.Errorf("binding %q not found in template", name)
	case existing != nil:
		return nil, fmt.Errorf("binding %q already bound", name)
	}

	bindings := maps.Clone(p.bindings)
	bindings[name] = b
	return &Prompt{template: p.template, bindings: bindings}, nil
}

// Build renders the prompt. Every placeholder must be bound.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for _, name := range p.Placeholders() {
		b := p.bindings[name]
		if b == nil {
			return "", fmt.Errorf("unbound placeholder: %s", name)
		}
		v, err := b()
		if err != nil {
			return "", fmt.Errorf("binding %q: %w", name, err)
		}
		values[name] = v
	}

	return walkTemplate(p.template, func(name string) (string, error) {
		return values[name], nil
	})
}
