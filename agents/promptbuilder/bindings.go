/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v3"
)

// binding produces the text substituted for one placeholder. A nil binding
// is a placeholder that has not been bound yet.
type binding func() (string, error)

func literal(s string) binding {
	return func() (string, error) { return s, nil }
}

func marshaled(format string, data any, marshal func(any) ([]byte, error)) binding {
	return func() (string, error) {
		b, err := marshal(data)
		if err != nil {
			return "", fmt.Errorf("failed to marshal %s: %w", format, err)
		}
		return string(b), nil
	}
}

func xmlBinding(data any) binding {
	return marshaled("XML", data, func(v any) ([]byte, error) { return xml.MarshalIndent(v, "", "  ") })
}

func jsonBinding(data any) binding {
	return marshaled("JSON", data, func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") })
}

func yamlBinding(data any) binding {
	return marshaled("YAML", data, yaml.Marshal)
}
