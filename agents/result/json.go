/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON returns the JSON document embedded in a model's text reply.
// In order of preference it takes the body of the first ```json fence, the
// body of the first bare ``` fence, or the span from the first '{' to the
// last '}'. Otherwise it returns the trimmed text.
func ExtractJSON(text string) string {
	if body, ok := fenced(text, "```json"); ok {
		return body
	}
	if body, ok := fenced(text, "```"); ok {
		return body
	}

	text = strings.TrimSpace(text)
	start, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

// fenced returns the lines between an opening line equal to open and the
// next line equal to ```. An unterminated fence runs to the end of text.
func fenced(text, open string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != open {
			continue
		}
		body := lines[i+1:]
		for j, l := range body {
			if strings.TrimSpace(l) == "```" {
				body = body[:j]
				break
			}
		}
		return strings.TrimSpace(strings.Join(body, "\n")), true
	}
	return "", false
}

// Extract unmarshals the JSON document found by ExtractJSON into a T.
func Extract[T any](text string) (T, error) {
	var out T
	body := ExtractJSON(text)
	if body == "" {
		return out, fmt.Errorf("no JSON found in response")
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return out, fmt.Errorf("parsing JSON response: %w", err)
	}
	return out, nil
}
