/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"reflect"
	"strings"
)

// OptionsForResponse returns Options read from the `submitresult` struct tag
// on any field of the response type T (conventionally a blank `_ struct{}`).
// The tag is a comma separated list of key=value pairs; the recognized keys
// are name, description, success, payload and payloadDescription, so values
// cannot contain commas. Unset keys are left for Tool to default.
func OptionsForResponse[T any]() Options[T] {
	var opts Options[T]

	tag, ok := responseTag(reflect.TypeFor[T]())
	if !ok {
		return opts
	}
	for part := range strings.SplitSeq(tag, ",") {
		key, value, _ := strings.Cut(part, "=")
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "name":
			opts.ToolName = value
		case "description":
			opts.Description = value
		case "success":
			opts.SuccessMessage = value
		case "payload":
			opts.PayloadFieldName = value
		case "payloadDescription":
			opts.PayloadDescription = value
		}
	}
	return opts
}

func responseTag(t reflect.Type) (string, bool) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", false
	}
	for i := range t.NumField() {
		if tag, ok := t.Field(i).Tag.Lookup("submitresult"); ok {
			return tag, true
		}
	}
	return "", false
}
