/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package googletool

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"google.golang.org/genai"
)

// FromJSONSchema converts a reflected JSON schema into the OpenAPI subset
// Gemini accepts. Keywords Gemini has no equivalent for are dropped.
func FromJSONSchema(s *jsonschema.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description: s.Description,
		Title:       s.Title,
		Format:      s.Format,
		Type:        mapSchemaType(s.Type),
		Pattern:     s.Pattern,
		Default:     s.Default,
	}

	for _, v := range s.Enum {
		out.Enum = append(out.Enum, fmt.Sprint(v))
	}
	out.Required = append(out.Required, s.Required...)
	if len(s.Examples) > 0 {
		out.Example = s.Examples[0]
	}

	out.MaxLength = int64Ptr(s.MaxLength)
	out.MinLength = int64Ptr(s.MinLength)
	out.MaxItems = int64Ptr(s.MaxItems)
	out.MinItems = int64Ptr(s.MinItems)
	if len(s.Maximum) > 0 {
		if v, err := s.Maximum.Float64(); err == nil {
			out.Maximum = &v
		}
	}
	if len(s.Minimum) > 0 {
		if v, err := s.Minimum.Float64(); err == nil {
			out.Minimum = &v
		}
	}

	if s.Properties != nil {
		out.Properties = make(map[string]*genai.Schema, s.Properties.Len())
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Properties[pair.Key] = FromJSONSchema(pair.Value)
			out.PropertyOrdering = append(out.PropertyOrdering, pair.Key)
		}
	}
	if s.Items != nil {
		out.Items = FromJSONSchema(s.Items)
	}
	for _, child := range s.AnyOf {
		out.AnyOf = append(out.AnyOf, FromJSONSchema(child))
	}

	return out
}

func int64Ptr(v *uint64) *int64 {
	if v == nil {
		return nil
	}
	i := int64(*v)
	return &i
}

func mapSchemaType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	case "null":
		return genai.TypeNULL
	default:
		return genai.TypeUnspecified
	}
}
