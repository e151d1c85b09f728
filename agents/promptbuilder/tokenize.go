/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// walkTemplate copies template, replacing each {{name}} with resolve(name).
// Space inside the braces is ignored.
func walkTemplate(template string, resolve func(name string) (string, error)) (string, error) {
	var sb strings.Builder
	for {
		before, rest, found := strings.Cut(template, "{{")
		sb.WriteString(before)
		if !found {
			return sb.String(), nil
		}

		inner, after, closed := strings.Cut(rest, "}}")
		if !closed {
			return "", errors.New("unclosed binding: missing '}}'")
		}
		name := strings.TrimSpace(inner)
		if !isValidIdentifier(name) {
			return "", fmt.Errorf("invalid binding identifier %q", name)
		}

		replacement, err := resolve(name)
		if err != nil {
			return "", err
		}
		sb.WriteString(replacement)
		template = after
	}
}

// isValidIdentifier reports whether s is a letter followed by letters,
// digits, or underscores.
func isValidIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
		default:
			return false
		}
	}
	return s != ""
}
