/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package schema reflects Go types into the JSON schemas that describe
// structured tool parameters to a model.
package schema

import "github.com/invopop/jsonschema"

// Generator wraps jsonschema.Reflector with the settings tool schemas need:
// inline definitions, required fields taken from jsonschema tags, and no
// top-level $ref.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator returns a Generator with the tool schema settings.
func NewGenerator() *Generator {
	return &Generator{
		reflector: jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			ExpandedStruct:             true,
			AllowAdditionalProperties:  true,
			DoNotReference:             true,
		},
	}
}

// Reflect returns the JSON schema for v.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	return g.reflector.Reflect(v)
}

// Reflect is NewGenerator().Reflect(v).
func Reflect(v any) *jsonschema.Schema {
	return NewGenerator().Reflect(v)
}

// ReflectType reflects the zero value of T.
func ReflectType[T any]() *jsonschema.Schema {
	var zero T
	return Reflect(&zero)
}
