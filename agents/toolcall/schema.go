/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

import (
	"encoding/json"
)

// Properties returns the JSON schema of each parameter, keyed by name.
func (d Definition) Properties() map[string]any {
	props := make(map[string]any, len(d.Parameters))
	for _, p := range d.Parameters {
		props[p.Name] = p.JSONSchema()
	}
	return props
}

// Required returns the names of the required parameters, in order.
func (d Definition) Required() []string {
	required := []string{}
	for _, p := range d.Parameters {
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return required
}

// JSONSchema returns the object schema describing all parameters.
func (d Definition) JSONSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": d.Properties(),
		"required":   d.Required(),
	}
}

// JSONSchema returns the parameter's schema as a decoded JSON object.
func (p Parameter) JSONSchema() map[string]any {
	if p.Schema != nil {
		if out, err := schemaToMap(p.Schema); err == nil {
			delete(out, "$schema")
			delete(out, "$id")
			if p.Description != "" {
				out["description"] = p.Description
			}
			return out
		}
	}
	return map[string]any{
		"type":        p.Type,
		"description": p.Description,
	}
}

func schemaToMap(s any) (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
