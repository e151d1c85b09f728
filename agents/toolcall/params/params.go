/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package params

import (
	"fmt"
	"maps"
	"strings"
)

// Extract returns the required argument name as a T. JSON numbers decode as
// float64, so integer targets accept whole float64 values.
func Extract[T any](args map[string]any, name string) (T, error) {
	var zero T
	value, exists := args[name]
	if !exists || value == nil {
		return zero, fmt.Errorf("%s parameter is required", name)
	}
	return convert[T](name, value)
}

// ExtractOptional returns the argument name as a T, or defaultValue when it
// is absent or null.
func ExtractOptional[T any](args map[string]any, name string, defaultValue T) (T, error) {
	value, exists := args[name]
	if !exists || value == nil {
		return defaultValue, nil
	}
	return convert[T](name, value)
}

// ExtractString returns the required string argument name with surrounding
// whitespace removed. Blank values are rejected.
func ExtractString(args map[string]any, name string) (string, error) {
	v, err := Extract[string](args, name)
	if err != nil {
		return "", err
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%s parameter must not be empty", name)
	}
	return v, nil
}

func convert[T any](name string, value any) (T, error) {
	if v, ok := value.(T); ok {
		return v, nil
	}

	var zero T
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		switch any(zero).(type) {
		case int:
			return any(int(f)).(T), nil
		case int32:
			return any(int32(f)).(T), nil
		case int64:
			return any(int64(f)).(T), nil
		}
	}
	return zero, fmt.Errorf("%s parameter must be of type %T, got %T", name, zero, value)
}

// Error creates an error response map.
func Error(format string, args ...any) map[string]any {
	return map[string]any{
		"error": fmt.Sprintf(format, args...),
	}
}

// ErrorWithContext creates an error response carrying extra fields, such as
// the arguments that caused it.
func ErrorWithContext(err error, fields map[string]any) map[string]any {
	response := maps.Clone(fields)
	if response == nil {
		response = make(map[string]any, 1)
	}
	response["error"] = err.Error()
	return response
}
